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

// Default build profile: full diagnostics.
//
// Capacities are compile-time constants: the size of an Error is fixed and
// every operation on it is bounded by these numbers. The
// "terrors_optimize" build tag selects the reduced profile in
// profile_optimize.go instead.
const (
	// BacktraceMax is the capacity of the backtrace ring. Appends beyond
	// this are dropped silently; earlier frames are never overwritten.
	BacktraceMax = 16

	// FstrMax is the size in bytes of the embedded buffer that backs
	// formatted (KindFstr) messages. The visible message is capped at
	// FstrMax-1 bytes, mirroring the NUL-terminated convention the format
	// is compatible with.
	FstrMax = 255
)

// fstrBuf is the embedded storage for formatted messages. In the optimized
// profile this collapses to a zero-length array, shrinking the Error value.
type fstrBuf [FstrMax]byte

// fstrBytes returns the formatted message bytes. Valid only while the Error
// holds a KindFstr value; the slice aliases the Error's embedded buffer.
func (e *Error) fstrBytes() []byte {
	return e.buf[:e.msgLen]
}
