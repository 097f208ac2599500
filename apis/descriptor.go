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

// ErrorDescriptor is a flat, transport-friendly snapshot of an error.
//
// This type intentionally uses plain integers and strings (not the internal
// Code / Frame value types) so that it can live in the public "apis" layer
// and be marshaled to JSON, pushed onto a message bus, or attached to a
// structured log entry without further conversion.
type ErrorDescriptor struct {
	// Code is the numeric status code, e.g. 2 for no_entry.
	Code int `json:"code"`

	// Name is the stable snake_case identifier of the code, e.g.
	// "no_entry", or "code_<n>" for codes without a canonical name.
	Name string `json:"name"`

	// Description is the canonical human-readable text for the code, the
	// same strerror-analogue line the dump renderer prints.
	Description string `json:"description"`

	// Message is the error's own message, if the error kind carries one.
	Message string `json:"message,omitempty"`

	// Backtrace lists the recorded call sites as "file:func:line" entries,
	// original failure site first.
	Backtrace []string `json:"backtrace,omitempty"`

	// HTTPStatus is the resolved HTTP status for this error. A value of 0
	// means "not resolved".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the resolved gRPC status (as integer) for this error.
	// A value of 0 means "not resolved" (0 is OK, which an error never maps to).
	GRPCCode int `json:"grpc_code,omitempty"`
}
