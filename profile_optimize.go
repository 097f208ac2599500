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

//go:build terrors_optimize

package terrors

// Optimized build profile: minimal footprint.
//
// The backtrace keeps only the original failure site and the formatted error
// kind does not exist at all: Setf, Format and KindFstr are not declared in
// this profile, so code using them fails to compile rather than misbehaving
// at runtime.
const (
	// BacktraceMax is 1: the ring holds the construction site and every
	// later append saturates into a no-op.
	BacktraceMax = 1
)

// fstrBuf is empty in this profile; KindFstr cannot be constructed, so no
// storage is reserved for formatted messages.
type fstrBuf [0]byte

// fstrBytes exists so shared code (the renderer, accessors) compiles in both
// profiles. It can never be reached with content here.
func (e *Error) fstrBytes() []byte {
	return nil
}
