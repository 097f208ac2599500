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

//go:build !terrors_optimize

package terrors

import (
	"fmt"

	"dirpx.dev/terrors/code"
)

// KindFstr is the formatted-message variant: the text is rendered into the
// Error's embedded buffer at construction and owned by the value itself.
// This constant and the Setf/Format constructors exist only in the default
// build profile; the "terrors_optimize" tag compiles them out.
const KindFstr = kindFstr

// fstrCap is the maximum visible length of a formatted message. One byte of
// the buffer is held back, mirroring the NUL terminator of the C-compatible
// layout, so a truncated message shows exactly FstrMax-1 characters.
const fstrCap = FstrMax - 1

// Setf overwrites e with a formatted error. The text is rendered into the
// value's embedded buffer; if it does not fit it is cut to fstrCap bytes and
// the truncation is observable via Truncated. Formatting never fails and
// never signals overflow; this is a diagnostic convenience, not a
// correctness-critical path. Callers must not pass unvalidated format
// strings.
func (e *Error) Setf(c code.Code, site Site, format string, args ...any) *Error {
	e.reset(KindFstr, c, site)

	// Render directly into the embedded buffer. Appendf writes in place as
	// long as the result fits within fstrCap; only an overflowing result
	// spills into a temporary, from which we copy the truncated prefix.
	b := fmt.Appendf(e.buf[:0:fstrCap], format, args...)
	if len(b) > fstrCap {
		e.msgLen = copy(e.buf[:fstrCap], b)
		e.trunc = true
	} else {
		e.msgLen = len(b)
	}
	return e
}

// Format overwrites e with a formatted error, capturing the caller's site
// automatically. Equivalent to e.Setf(c, Here(), format, args...) at the
// call site.
func Format(e *Error, c code.Code, format string, args ...any) *Error {
	return e.Setf(c, HereSkip(1), format, args...)
}
