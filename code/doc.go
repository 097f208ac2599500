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

// Package code defines the numeric status-code domain used by terrors.
//
// A "code" is the primary, machine-readable classification of an error. The
// domain is POSIX-compatible: the canonical constants below carry the same
// numeric values as the corresponding Linux errno identifiers, so a code can
// cross a process or wire boundary and still mean the same thing on the other
// side.
//
// Codes are meant to be:
//
//   - small and stable (uint16);
//   - renderable without any platform call: Description is a deterministic
//     strerror analogue, identical on every platform and in every build;
//   - nameable for transport payloads and logs: Name returns a snake_case
//     identifier such as "no_entry" or "timed_out".
//
// Unknown codes are not an error anywhere in this package: Description and
// Name degrade to "unknown error <n>" / "code_<n>" so that diagnostics for a
// foreign or future code never fail.
package code
