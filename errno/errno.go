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

package errno

import (
	"context"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/code"
)

// Slot holds one task's current error. The embedded value is caller-owned
// storage in the usual terrors sense; the slot only fixes where it lives.
type Slot struct {
	err terrors.Error
}

// Err returns the slot's error value. The pointer stays valid for the
// slot's lifetime; constructing into the slot later mutates the same value.
func (s *Slot) Err() *terrors.Error {
	if s == nil {
		return nil
	}
	return &s.err
}

type ctxKey struct{}

// With attaches a fresh Slot to ctx and returns both. The slot belongs to
// the task that owns the returned context; sub-contexts derived from it see
// the same slot.
func With(ctx context.Context) (context.Context, *Slot) {
	s := &Slot{}
	return context.WithValue(ctx, ctxKey{}, s), s
}

// FromContext returns the slot attached to ctx, if any.
func FromContext(ctx context.Context) (*Slot, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Slot)
	return s, ok
}

// Err returns the current error of the context's slot, or nil when the
// context carries no slot.
func Err(ctx context.Context) *terrors.Error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return &s.err
}

// Int constructs an integer-only error into the context's slot, capturing
// the caller's site. Returns nil (and does nothing) without a slot.
func Int(ctx context.Context, c code.Code) *terrors.Error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return s.err.SetInt(c, terrors.HereSkip(1))
}

// Str constructs a string error into the context's slot, capturing the
// caller's site. The message-borrowing contract of terrors.SetStr applies.
func Str(ctx context.Context, c code.Code, msg string) *terrors.Error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return s.err.SetStr(c, terrors.HereSkip(1), msg)
}

// Wrap appends the caller's frame to the slot's current error and returns
// it, mirroring terrors.Wrap with the slot as implicit destination.
func Wrap(ctx context.Context) *terrors.Error {
	s, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	s.err.AppendFrame(terrors.HereSkip(1))
	return &s.err
}

// Dump renders the slot's current error into buf. Without a slot, or with
// an unset slot, it reports terrors.ErrNotSet.
func Dump(ctx context.Context, buf []byte) (int, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return 0, terrors.ErrNotSet
	}
	return s.err.Dump(buf)
}
