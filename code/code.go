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

package code

import "strconv"

// Code is the canonical numeric representation of a status code.
//
// It is defined as a separate type (not just uint16) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of arbitrary integers with status codes.
//
// The value 0 (OK) means "no error". Error values constructed by terrors are
// free to carry any Code, including ones this package has no constant for;
// lookups degrade gracefully for such codes.
type Code uint16

// Description returns the human-readable description of the code, the
// deterministic analogue of strerror(3).
//
// Unlike strerror, the result does not depend on the platform or locale: the
// same code always renders the same text, which keeps dumps stable across
// machines and in tests. Unknown codes render as "unknown error <n>".
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "unknown error " + strconv.Itoa(int(c))
}

// Name returns the snake_case identifier of the code, e.g. "no_entry" for
// NoEntry(2). This is the form meant for transport payloads, log fields and
// registries. Unknown codes return "code_<n>".
func (c Code) Name() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "code_" + strconv.Itoa(int(c))
}

// String implements fmt.Stringer. It combines the name and the numeric value
// for log-friendly output, e.g. "no_entry(2)".
func (c Code) String() string {
	return c.Name() + "(" + strconv.Itoa(int(c)) + ")"
}

// Known reports whether this package carries a canonical name and
// description for the code.
func (c Code) Known() bool {
	_, ok := names[c]
	return ok
}
