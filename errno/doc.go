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

// Package errno provides a context-scoped "current error" slot: the classic
// errno convention upgraded to carry a full terrors.Error.
//
// Where the original convention used one global status variable per thread,
// Go code scopes state to a context: a Slot is attached once at the top of a
// task and every function below it can construct into, wrap, or dump "the
// current error" without threading an *terrors.Error parameter through each
// signature.
//
//	ctx, slot := errno.With(ctx)
//	...
//	errno.Str(ctx, code.NoEntry, "state file missing")
//	...
//	if err := errno.Err(ctx); err.IsSet() {
//	    log.Print(err.DumpString())
//	}
//
// A Slot is owned by one logical task, exactly like a bare terrors.Error is
// owned by one call chain; there is no cross-task visibility and no
// synchronization. Two contexts never share a slot unless the caller
// explicitly passes the same one down both.
//
// Every package-level operation degrades to a no-op (returning nil) when the
// context carries no slot, so library code can use them unconditionally.
//
// This package is a convenience wrapper, not part of the core model: not
// importing it removes the facility entirely, the same way the C original
// could compile its errno API out.
package errno
