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

package terrors

import (
	"dirpx.dev/terrors/code"
)

// Kind discriminates the active variant of an Error.
type Kind uint8

const (
	// KindNone marks uninitialized storage. The zero Error has this kind;
	// no constructor ever produces it. Operations on a KindNone value are
	// defined (AppendFrame is a no-op, Dump fails with ErrNotSet) instead
	// of reading garbage.
	KindNone Kind = 0

	// KindInt is a status code with no message. The cheapest variant, with
	// no string handling at all.
	KindInt Kind = 1

	// KindStr is a status code plus a borrowed message. The Error stores
	// only the string header; the caller guarantees the text outlives the
	// value.
	KindStr Kind = 2

	// kindFstr is the formatted variant. The exported constant KindFstr is
	// declared in fstr.go and exists only in the default build profile;
	// shared code refers to this unexported value so it compiles in both.
	kindFstr Kind = 3
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindStr:
		return "str"
	case kindFstr:
		return "fstr"
	}
	return "unknown"
}

// Error is the caller-owned, fixed-footprint error value.
//
// An Error is never allocated by this package: callers embed it in their own
// structs, declare it on the stack, or reserve it wherever they see fit.
// Constructors (SetInt, SetStr, Setf and the package-level Int, Str, Format)
// overwrite the value in place and reset its backtrace to the single
// construction site; AppendFrame and Wrap then grow the backtrace as the
// failure is forwarded upward.
//
// The fields are unexported so that the ring and variant invariants cannot
// be broken from outside; use the accessors (Kind, Code, Message, Frames)
// to observe the value.
//
// An Error belongs to exactly one logical call chain. There is no internal
// synchronization: concurrent use of the same value is a caller error.
type Error struct {
	kind    Kind
	code    code.Code
	msg     string // borrowed text for KindStr; unused otherwise
	nframes int
	frames  [BacktraceMax]Frame

	// Formatted-message state; meaningful only for kindFstr. In the
	// optimized profile buf has zero length and these stay zero.
	msgLen int
	trunc  bool
	buf    fstrBuf
}

// reset overwrites the value with a fresh error of the given kind and code,
// and seeds the backtrace with the construction site. Any previous content,
// including a longer previous backtrace, is gone after reset.
func (e *Error) reset(k Kind, c code.Code, site Site) {
	*e = Error{}
	e.kind = k
	e.code = c
	e.frames[0] = Frame{File: site.File, Func: site.Func, Line: site.Line}
	e.nframes = 1
}

// SetInt overwrites e with an integer-only error: status code and
// construction site, nothing else. This is the fastest construction path.
// It returns e for chaining, e.g. `return e.SetInt(code.Busy, terrors.Here())`.
func (e *Error) SetInt(c code.Code, site Site) *Error {
	e.reset(KindInt, c, site)
	return e
}

// SetStr overwrites e with a string error. The message is borrowed, not
// copied: the caller must guarantee msg remains valid for as long as e is
// read. In practice msg should be a constant or otherwise outlive the value.
func (e *Error) SetStr(c code.Code, site Site, msg string) *Error {
	e.reset(KindStr, c, site)
	e.msg = msg
	return e
}

// Int overwrites e with an integer-only error, capturing the caller's site
// automatically. Equivalent to e.SetInt(c, Here()) at the call site.
func Int(e *Error, c code.Code) *Error {
	return e.SetInt(c, HereSkip(1))
}

// Str overwrites e with a string error, capturing the caller's site
// automatically. The message-borrowing contract of SetStr applies.
func Str(e *Error, c code.Code, msg string) *Error {
	return e.SetStr(c, HereSkip(1), msg)
}

// IsSet reports whether e holds a constructed error (any kind other than
// KindNone). The zero Error is not set.
func (e *Error) IsSet() bool {
	return e != nil && e.kind != KindNone
}

// Kind returns the active variant of the error.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindNone
	}
	return e.kind
}

// Code returns the numeric status code. KindNone values report code.OK.
func (e *Error) Code() code.Code {
	if e == nil {
		return code.OK
	}
	return e.code
}

// Message returns the message text, or "" for KindInt and unset values.
//
// For formatted errors the text lives in the Error's embedded buffer, so
// this accessor copies it into a fresh string; the construction and
// propagation paths stay allocation-free, reading the message may not.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	if e.kind == kindFstr {
		return string(e.fstrBytes())
	}
	return e.msg
}

// Truncated reports whether the formatted message was cut to fit the
// embedded buffer. Always false for other kinds and in the optimized
// profile.
func (e *Error) Truncated() bool {
	return e != nil && e.trunc
}

// Error implements the built-in error interface with a concise single line:
//
//	<code name>: <message>
//
// or, when the error carries no message, the code description:
//
//	<code name>: <code description>
//
// The full diagnostic report is produced by Dump / %+v, not by Error().
func (e *Error) Error() string {
	if e == nil || e.kind == KindNone {
		return "<unset>"
	}
	if e.kind == KindInt {
		return e.code.Name() + ": " + e.code.Description()
	}
	return e.code.Name() + ": " + e.Message()
}

// ErrorCode returns the numeric status code as a plain integer. It exists so
// that adapters can classify the error through the apis.CodedError contract
// without importing this package's types.
func (e *Error) ErrorCode() int {
	return int(e.Code())
}
