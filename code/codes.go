/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// Canonical status codes.
//
// Numeric values follow Linux errno so that codes interoperate with anything
// that already speaks that domain (syscall results, C libraries, wire
// protocols that embed errno values). Only the subset that the library and
// its transport adapters actually classify is named here; passing any other
// uint16 through an Error still works, it just renders generically.
const (
	// OK indicates no error. It is the zero value of Code and is never a
	// meaningful code for a constructed Error; it exists so callers can
	// represent "success" in tables and transport payloads.
	OK Code = 0

	// NotPermitted (EPERM) indicates that the operation is not permitted
	// for the caller. Prefer Access for plain permission checks on a
	// resource; NotPermitted is about the operation itself.
	NotPermitted Code = 1

	// NoEntry (ENOENT) indicates that the referenced object does not exist:
	// a missing file, key, record or registry entry.
	NoEntry Code = 2

	// Interrupted (EINTR) indicates that a blocking operation was
	// interrupted before it could complete.
	Interrupted Code = 4

	// IO (EIO) indicates a low-level input/output failure with no more
	// specific classification.
	IO Code = 5

	// BadDescriptor (EBADF) indicates an operation on a handle that is not
	// valid in this context (closed, never opened, wrong mode).
	BadDescriptor Code = 9

	// Again (EAGAIN) indicates a transient condition: the resource is
	// temporarily unavailable and the operation may succeed if retried.
	Again Code = 11

	// NoMemory (ENOMEM) indicates that a required allocation or reservation
	// could not be satisfied.
	NoMemory Code = 12

	// Access (EACCES) indicates that the caller lacks permission to access
	// the target resource.
	Access Code = 13

	// Busy (EBUSY) indicates that the resource is in use and cannot be
	// acquired or modified right now.
	Busy Code = 16

	// Exists (EEXIST) indicates that the target object already exists and
	// cannot be created again.
	Exists Code = 17

	// NotDirectory (ENOTDIR) indicates that a path component expected to be
	// a directory is not one.
	NotDirectory Code = 20

	// IsDirectory (EISDIR) indicates a file operation attempted on a
	// directory.
	IsDirectory Code = 21

	// Invalid (EINVAL) indicates that an argument or payload violates a
	// structural or semantic invariant.
	Invalid Code = 22

	// NoSpace (ENOSPC) indicates that the underlying device or quota has no
	// room left for the operation.
	NoSpace Code = 28

	// BrokenPipe (EPIPE) indicates a write to a peer that has stopped
	// reading.
	BrokenPipe Code = 32

	// OutOfRange (ERANGE) indicates that a result or argument falls outside
	// the representable or allowed range.
	OutOfRange Code = 34

	// NameTooLong (ENAMETOOLONG) indicates an identifier or path exceeding
	// the permitted length.
	NameTooLong Code = 36

	// NoSys (ENOSYS) indicates that the requested function is not
	// implemented in this build or environment.
	NoSys Code = 38

	// NotEmpty (ENOTEMPTY) indicates an operation that requires an empty
	// container applied to a non-empty one.
	NotEmpty Code = 39

	// NoData (ENODATA) indicates that the requested data is not available
	// even though the containing object exists.
	NoData Code = 61

	// Protocol (EPROTO) indicates a protocol-level violation by a peer or
	// a corrupted exchange.
	Protocol Code = 71

	// Overflow (EOVERFLOW) indicates a value too large to be stored in the
	// target representation.
	Overflow Code = 75

	// MessageSize (EMSGSIZE) indicates a message larger than the transport
	// or buffer allows.
	MessageSize Code = 90

	// NotSupported (EOPNOTSUPP) indicates that the operation is recognized
	// but not supported for this object or configuration.
	NotSupported Code = 95

	// AddressInUse (EADDRINUSE) indicates that the requested address or
	// identity is already taken.
	AddressInUse Code = 98

	// NetUnreachable (ENETUNREACH) indicates that the target network cannot
	// be reached from here.
	NetUnreachable Code = 101

	// ConnReset (ECONNRESET) indicates that the peer closed the connection
	// abruptly.
	ConnReset Code = 104

	// NoBufs (ENOBUFS) indicates that a bounded buffer was too small for
	// the operation. This is also the code the terrors renderer reports
	// through its own insufficient-buffer sentinel.
	NoBufs Code = 105

	// TimedOut (ETIMEDOUT) indicates that the operation exceeded its time
	// budget.
	TimedOut Code = 110

	// ConnRefused (ECONNREFUSED) indicates that the peer actively refused
	// the connection.
	ConnRefused Code = 111

	// HostUnreachable (EHOSTUNREACH) indicates that the target host cannot
	// be reached.
	HostUnreachable Code = 113

	// Canceled (ECANCELED) indicates that the operation was canceled before
	// completion, typically by the caller.
	Canceled Code = 125
)

// descriptions is the strerror analogue: canonical human-readable text per
// code. The wording follows glibc so dumps read familiar, but the table is
// owned here and never consults the platform.
var descriptions = map[Code]string{
	OK:              "Success",
	NotPermitted:    "Operation not permitted",
	NoEntry:         "No such file or directory",
	Interrupted:     "Interrupted system call",
	IO:              "Input/output error",
	BadDescriptor:   "Bad file descriptor",
	Again:           "Resource temporarily unavailable",
	NoMemory:        "Cannot allocate memory",
	Access:          "Permission denied",
	Busy:            "Device or resource busy",
	Exists:          "File exists",
	NotDirectory:    "Not a directory",
	IsDirectory:     "Is a directory",
	Invalid:         "Invalid argument",
	NoSpace:         "No space left on device",
	BrokenPipe:      "Broken pipe",
	OutOfRange:      "Numerical result out of range",
	NameTooLong:     "File name too long",
	NoSys:           "Function not implemented",
	NotEmpty:        "Directory not empty",
	NoData:          "No data available",
	Protocol:        "Protocol error",
	Overflow:        "Value too large for defined data type",
	MessageSize:     "Message too long",
	NotSupported:    "Operation not supported",
	AddressInUse:    "Address already in use",
	NetUnreachable:  "Network is unreachable",
	ConnReset:       "Connection reset by peer",
	NoBufs:          "No buffer space available",
	TimedOut:        "Connection timed out",
	ConnRefused:     "Connection refused",
	HostUnreachable: "No route to host",
	Canceled:        "Operation canceled",
}

// names maps codes to their stable snake_case identifiers. These are the
// values transport adapters put into payload fields and log entries.
var names = map[Code]string{
	OK:              "ok",
	NotPermitted:    "not_permitted",
	NoEntry:         "no_entry",
	Interrupted:     "interrupted",
	IO:              "io",
	BadDescriptor:   "bad_descriptor",
	Again:           "again",
	NoMemory:        "no_memory",
	Access:          "access",
	Busy:            "busy",
	Exists:          "exists",
	NotDirectory:    "not_directory",
	IsDirectory:     "is_directory",
	Invalid:         "invalid",
	NoSpace:         "no_space",
	BrokenPipe:      "broken_pipe",
	OutOfRange:      "out_of_range",
	NameTooLong:     "name_too_long",
	NoSys:           "no_sys",
	NotEmpty:        "not_empty",
	NoData:          "no_data",
	Protocol:        "protocol",
	Overflow:        "overflow",
	MessageSize:     "message_size",
	NotSupported:    "not_supported",
	AddressInUse:    "address_in_use",
	NetUnreachable:  "net_unreachable",
	ConnReset:       "conn_reset",
	NoBufs:          "no_bufs",
	TimedOut:        "timed_out",
	ConnRefused:     "conn_refused",
	HostUnreachable: "host_unreachable",
	Canceled:        "canceled",
}
