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

package apis

// CodedError represents an error classified by a numeric, errno-compatible
// status code.
//
// The code is the primary value transport adapters use to decide which
// status to return to a client. Implementations return the plain integer
// form so that this contract stays free of the concrete code type; the value
// is expected to fit uint16 and to come from the terrors code domain.
//
// Adapters should treat a code of 0 ("ok") on an error as an internal
// inconsistency and fall back to their internal-error mapping.
type CodedError interface {
	error

	// ErrorCode returns the numeric status code of the error.
	ErrorCode() int
}

// TracedError represents an error that carries a manually collected
// backtrace.
//
// Entries are ordered from the original failure site outward and use the
// canonical "file:func:line" shape, ready to be copied into transport
// payloads (e.g. DebugInfo stack entries) or log arrays.
//
// Returning nil is allowed and means "no trace recorded". Implementations
// SHOULD return a fresh slice that callers may keep.
type TracedError interface {
	error

	// Backtrace returns the recorded call-site entries. May return nil.
	Backtrace() []string
}
