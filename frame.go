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

import "strconv"

// Frame is one recorded call-site observation in an error's backtrace.
// Frames are immutable once appended and are owned by the Error that holds
// them; index 0 is always the original failure site.
type Frame struct {
	File string
	Func string
	Line int
}

// String renders the frame as "file:func:line", the same shape used by the
// dump backtrace section and by transport stack entries.
func (f Frame) String() string {
	return f.File + ":" + f.Func + ":" + strconv.Itoa(f.Line)
}

// AppendFrame appends one frame built from site to the backtrace ring.
//
// Once the ring holds BacktraceMax frames this is a no-op: later frames are
// dropped, earlier ones are never overwritten. Calling it past capacity any
// number of times leaves the ring byte-for-byte unchanged. Appending to an
// unset (KindNone) value is also a no-op; there is no trace to extend.
func (e *Error) AppendFrame(site Site) {
	if e == nil || e.kind == KindNone {
		return
	}
	if e.nframes >= BacktraceMax {
		return
	}
	e.frames[e.nframes] = Frame{File: site.File, Func: site.Func, Line: site.Line}
	e.nframes++
}

// Wrap appends the caller's frame to e and returns e, so that forwarding a
// failure and recording the forwarding site stay a single expression:
//
//	if err := step(e); err != nil {
//	    return terrors.Wrap(err)
//	}
//
// Every return path that skips Wrap simply yields a shorter backtrace; the
// error itself is unaffected. Wrap on a nil or unset error returns it
// unchanged.
func Wrap(e *Error) *Error {
	if e == nil {
		return nil
	}
	e.AppendFrame(HereSkip(1))
	return e
}

// WrapSkip is Wrap for helper wrappers: skip=0 behaves like Wrap, skip=1
// records the caller's caller, and so on.
func WrapSkip(e *Error, skip int) *Error {
	if e == nil {
		return nil
	}
	e.AppendFrame(HereSkip(skip + 1))
	return e
}

// Frames returns the recorded backtrace in insertion order (failure site
// first). The returned slice is a read-only view into the Error's own
// storage, not a copy; callers must not modify it and must not keep it past
// the Error's lifetime.
func (e *Error) Frames() []Frame {
	if e == nil {
		return nil
	}
	return e.frames[:e.nframes:e.nframes]
}

// Backtrace returns the recorded frames as "file:func:line" strings, ready
// for transport payloads and structured logs. Unlike Frames, this allocates.
func (e *Error) Backtrace() []string {
	if e == nil || e.nframes == 0 {
		return nil
	}
	out := make([]string, e.nframes)
	for i := 0; i < e.nframes; i++ {
		out[i] = e.frames[i].String()
	}
	return out
}
