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

package mapper

import (
	"net/http"

	"dirpx.dev/terrors/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP defines the library's built-in HTTP mappings for the canonical
// codes. These are only defaults: callers are expected to override them at
// the boundary where HTTP is actually produced when a different policy is
// required. Codes not listed here resolve to the global fallback (500).
var defaultHTTP = map[code.Code]int{
	// 5xx: server, dependency, or transient issues.
	code.IO:              http.StatusInternalServerError, // Unclassified I/O failure; do not expose internals.
	code.NoMemory:        http.StatusInternalServerError, // Allocation/reservation failed server-side.
	code.NoBufs:          http.StatusInternalServerError, // Internal bounded buffer exhausted.
	code.Protocol:        http.StatusBadGateway,          // Peer violated the protocol.
	code.ConnRefused:     http.StatusBadGateway,          // Dependency actively refused the connection.
	code.ConnReset:       http.StatusBadGateway,          // Dependency dropped the connection mid-flight.
	code.NetUnreachable:  http.StatusBadGateway,          // Dependency network cannot be reached.
	code.HostUnreachable: http.StatusBadGateway,          // Dependency host cannot be reached.
	code.Again:           http.StatusServiceUnavailable,  // Transient; client may retry.
	code.Interrupted:     http.StatusServiceUnavailable,  // Operation interrupted before completion.
	code.NoSpace:         http.StatusInsufficientStorage, // Device/quota out of room.
	code.TimedOut:        http.StatusGatewayTimeout,      // Time budget exceeded.
	// Note: 499 is a non-standard but widely used code (nginx) for "client
	// closed request". We default canceled to 408; integrators may switch.
	code.Canceled: http.StatusRequestTimeout,

	// 4xx: client, protocol, or resource issues.
	code.Invalid:     http.StatusBadRequest,            // Malformed input or contract violation.
	code.OutOfRange:  http.StatusBadRequest,            // Value outside the allowed range.
	code.Overflow:    http.StatusBadRequest,            // Value does not fit the target representation.
	code.NameTooLong: http.StatusBadRequest,            // Identifier/path too long.
	code.BrokenPipe:  http.StatusBadRequest,            // Peer stopped reading mid-request.
	code.MessageSize: http.StatusRequestEntityTooLarge, // Payload larger than allowed.

	code.NoEntry: http.StatusNotFound, // Target object does not exist.
	code.NoData:  http.StatusNotFound, // Object exists but holds no data.

	// Conflicts and concurrency.
	code.Exists:       http.StatusConflict, // Creation clash: it already exists.
	code.AddressInUse: http.StatusConflict, // Identity already taken.
	code.Busy:         http.StatusConflict, // Resource currently held.
	code.NotEmpty:     http.StatusConflict, // Container must be empty first.

	// AuthZ.
	code.Access:       http.StatusForbidden, // Caller lacks permission on the resource.
	code.NotPermitted: http.StatusForbidden, // Operation itself is not permitted.

	// Capability.
	code.NoSys:        http.StatusNotImplemented, // Function absent in this build.
	code.NotSupported: http.StatusNotImplemented, // Recognized but unsupported operation.
}

// defaultGRPC defines the library's built-in gRPC mappings for the canonical
// codes, chosen to align with the canonical gRPC status semantics while
// preserving the errno-level meaning. Codes not listed here resolve to the
// global fallback (codes.Internal).
var defaultGRPC = map[code.Code]codes.Code{
	// Internal / server-side / unexpected.
	code.IO:       codes.Internal,
	code.Protocol: codes.Internal, // Corrupted exchange with a peer.

	// Input.
	code.Invalid:     codes.InvalidArgument,
	code.NameTooLong: codes.InvalidArgument,
	code.MessageSize: codes.InvalidArgument, // Message exceeds transport bounds.
	code.OutOfRange:  codes.OutOfRange,
	code.Overflow:    codes.OutOfRange,

	// Resource state.
	code.NoEntry:       codes.NotFound,
	code.NoData:        codes.NotFound,
	code.Exists:        codes.AlreadyExists,
	code.AddressInUse:  codes.AlreadyExists, // Identity clash is an existence clash.
	code.Busy:          codes.Aborted,       // Concurrent holder; retrying later may succeed.
	code.NotEmpty:      codes.FailedPrecondition,
	code.BrokenPipe:    codes.FailedPrecondition, // Peer is gone; the write cannot proceed.
	code.BadDescriptor: codes.FailedPrecondition, // Handle was closed or never valid.

	// AuthZ.
	code.Access:       codes.PermissionDenied,
	code.NotPermitted: codes.PermissionDenied,

	// Capability.
	code.NoSys:        codes.Unimplemented,
	code.NotSupported: codes.Unimplemented,

	// Availability / resources.
	code.Again:           codes.Unavailable,
	code.Interrupted:     codes.Unavailable, // Interrupted mid-operation; safe to retry.
	code.ConnRefused:     codes.Unavailable,
	code.ConnReset:       codes.Unavailable,
	code.NetUnreachable:  codes.Unavailable,
	code.HostUnreachable: codes.Unavailable,
	code.NoMemory:        codes.ResourceExhausted,
	code.NoBufs:          codes.ResourceExhausted,
	code.NoSpace:         codes.ResourceExhausted,

	// Time / cancellation.
	code.TimedOut: codes.DeadlineExceeded,
	code.Canceled: codes.Canceled,
}
