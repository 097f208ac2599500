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

import "runtime"

// Site identifies one call site: the place an error was constructed or
// forwarded. Sites are plain values; callers may build them literally
//
//	terrors.Site{File: "gen/parser.y", Func: "parse", Line: 120}
//
// or capture the current one with Here / HereSkip. Either way the author
// decides which sites enter a backtrace; nothing is recorded implicitly.
type Site struct {
	// File is the origin file path as supplied by the caller or by the
	// runtime. It is carried verbatim; nothing validates that it exists.
	File string

	// Func is the origin function name. Runtime-captured sites use the
	// fully-qualified form (pkg/path.Func or pkg/path.(*Recv).Method).
	Func string

	// Line is the origin line number.
	Line int
}

// Here captures the call site of its caller.
//
// Capture resolves a single program counter through runtime.CallersFrames,
// which handles inlined calls correctly. Resolving one frame is cheap enough
// to sit on error paths, but it is still only invoked where the author
// writes it.
func Here() Site {
	return HereSkip(1)
}

// HereSkip captures a call site further up the stack: skip=0 is the caller
// of HereSkip, skip=1 its caller, and so on. Helper wrappers that capture on
// behalf of their own caller pass their extra depth here.
func HereSkip(skip int) Site {
	// +2 accounts for runtime.Callers itself and HereSkip, so skip=0 lands
	// on the caller of HereSkip.
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Site{}
	}
	fr, _ := runtime.CallersFrames(pcs[:]).Next()
	return Site{File: fr.File, Func: fr.Function, Line: fr.Line}
}
