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

package errno

import (
	"context"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/code"
)

// Format constructs a formatted error into the context's slot, capturing
// the caller's site. Like terrors.Format it exists only in the default build
// profile; under "terrors_optimize" the formatted kind is compiled out.
func Format(ctx context.Context, c code.Code, format string, args ...any) *terrors.Error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return s.err.Setf(c, terrors.HereSkip(1), format, args...)
}
