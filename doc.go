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

// Package terrors provides a fixed-footprint, allocation-free error value
// with a numeric status code, an optional message and a manually collected
// backtrace.
//
// The model is deliberately close to the classic errno convention, upgraded
// to carry context: an Error is a caller-owned value (never heap-allocated by
// this package) that records which status happened, optionally why, and the
// exact chain of call sites that forwarded the failure.
//
// # Error kinds
//
// An Error is a tagged value over three kinds, ordered by construction cost:
//
//   - KindInt: status code only, no string handling at all;
//   - KindStr: status code plus a borrowed static message;
//   - KindFstr: status code plus a message formatted into an embedded,
//     fixed-size buffer (truncated on overflow, never grown).
//
// The zero Error has KindNone and is explicitly "unset": dumping it fails
// with ErrNotSet instead of reading garbage. Constructors overwrite the value
// in place: there is no accumulation and no cause chain; one error value is
// live per call chain at a time.
//
// # Backtraces
//
// Backtrace collection is manual. Every fallible call site that wants to
// appear in the trace appends its own frame:
//
//	func readConfig(e *terrors.Error, path string) ([]byte, *terrors.Error) {
//	    b, err := os.ReadFile(path)
//	    if err != nil {
//	        return nil, terrors.Format(e, code.NoEntry, "read %s", path)
//	    }
//	    return b, nil
//	}
//
//	func load(e *terrors.Error) *terrors.Error {
//	    if _, err := readConfig(e, "app.yaml"); err != nil {
//	        return terrors.Wrap(err) // adds load()'s frame
//	    }
//	    return nil
//	}
//
// Manual collection is verbose but has real advantages: it is extremely
// cheap, it works identically in every build, and the trace contains only
// frames the author chose to record, with no runtime noise. The ring saturates
// silently at BacktraceMax frames; diagnostics degrade gracefully instead of
// corrupting earlier frames.
//
// # Dumping
//
// Dump renders an Error into a caller-supplied bounded buffer:
//
//	====== ERROR DUMP ======
//	Error code: 2
//	Error desc: No such file or directory
//	------------------------
//	 Error msg: read app.yaml
//	------------------------
//	 Backtrace:
//	   [00] /src/app/config.go:app.readConfig:17
//	   [01] /src/app/app.go:app.load:42
//
// Dump never writes past the buffer; when the next piece of text would not
// fit it aborts with ErrBufferTooSmall, leaving whatever was already written
// in place. %+v formatting produces the same report via an internal buffer.
//
// # Build profiles
//
// The footprint of each feature is fixed at build time. The default profile
// keeps 16 backtrace frames and a 255-byte format buffer. Building with the
// "terrors_optimize" tag shrinks the ring to a single frame and compiles the
// formatted kind out entirely: Setf, Format and KindFstr do not exist in that
// profile, so misuse is a compile error rather than a runtime surprise.
//
// # Concurrency
//
// An Error is owned by exactly one logical call chain; there is no internal
// locking and no operation blocks or allocates. Sharing one Error value
// between goroutines is a caller error. The errno subpackage provides a
// context-scoped "current error" slot for code that wants an implicit
// destination.
package terrors
