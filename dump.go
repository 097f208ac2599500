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
	"errors"
	"strconv"
)

var (
	// ErrBufferTooSmall is returned by Dump when the next piece of the
	// report would not fit into the caller's buffer. Whatever was written
	// before the failing piece remains in the buffer; callers must treat a
	// failed dump's contents as partial.
	ErrBufferTooSmall = errors.New("terrors: buffer too small for dump")

	// ErrNotSet is returned by Dump when the error value was never
	// constructed (KindNone). There is nothing to render.
	ErrNotSet = errors.New("terrors: error value is not set")
)

const dumpSeparator = "------------------------\n"

// Dump renders the error as a fixed textual report into buf and returns the
// number of bytes written:
//
//	====== ERROR DUMP ======
//	Error code: <code>
//	Error desc: <description>
//	------------------------
//	 Error msg: <message>        ← only for KindStr / KindFstr
//	------------------------
//	 Backtrace:
//	   [00] <file>:<func>:<line>
//	   [01] <file>:<func>:<line>
//
// The message block (separator plus msg line) is omitted entirely for
// KindInt. Dump never writes past len(buf): the moment a piece would not
// fit it stops and returns the bytes written so far with ErrBufferTooSmall.
// It does not mutate the error and does not allocate.
func (e *Error) Dump(buf []byte) (int, error) {
	if e == nil || e.kind == KindNone {
		return 0, ErrNotSet
	}

	w := boundedWriter{buf: buf}

	w.str("====== ERROR DUMP ======\n")
	w.str("Error code: ")
	w.num(int64(e.code))
	w.str("\n")
	w.str("Error desc: ")
	w.str(e.code.Description())
	w.str("\n")

	if e.kind != KindInt {
		w.str(dumpSeparator)
		w.str(" Error msg: ")
		if e.kind == kindFstr {
			w.bytes(e.fstrBytes())
		} else {
			w.str(e.msg)
		}
		w.str("\n")
	}

	w.str(dumpSeparator)
	w.str(" Backtrace:\n")
	for i := 0; i < e.nframes; i++ {
		f := &e.frames[i]
		w.str("   [")
		w.index(i)
		w.str("] ")
		w.str(f.File)
		w.str(":")
		w.str(f.Func)
		w.str(":")
		w.num(int64(f.Line))
		w.str("\n")
	}

	if w.failed {
		return w.n, ErrBufferTooSmall
	}
	return w.n, nil
}

// DumpString renders the full report into a fresh string. This is the
// allocating convenience for logs and %+v formatting; code that cares about
// the memory budget should call Dump with its own buffer.
func (e *Error) DumpString() string {
	if e == nil || e.kind == KindNone {
		return "<unset>"
	}
	// A dump is usually small; retry with a doubled buffer on the rare
	// overflow (long file paths, deep traces).
	for size := 512; ; size *= 2 {
		buf := make([]byte, size)
		n, err := e.Dump(buf)
		if err == nil {
			return string(buf[:n])
		}
	}
}

// boundedWriter appends pieces to a fixed buffer and latches a failure as
// soon as a piece does not fit. All writes after a failure are no-ops, so
// call sites stay free of error plumbing.
type boundedWriter struct {
	buf     []byte
	n       int
	failed  bool
	scratch [20]byte // strconv staging; enough for any int64
}

func (w *boundedWriter) str(s string) {
	if w.failed || len(s) > len(w.buf)-w.n {
		w.failed = true
		return
	}
	w.n += copy(w.buf[w.n:], s)
}

func (w *boundedWriter) bytes(b []byte) {
	if w.failed || len(b) > len(w.buf)-w.n {
		w.failed = true
		return
	}
	w.n += copy(w.buf[w.n:], b)
}

func (w *boundedWriter) num(v int64) {
	w.bytes(strconv.AppendInt(w.scratch[:0], v, 10))
}

// index writes a backtrace index, zero-padded to two digits to match the
// dump format ("[00]", "[01]", …). Indexes past 99 print at full width.
func (w *boundedWriter) index(i int) {
	if i < 10 {
		w.str("0")
	}
	w.num(int64(i))
}
