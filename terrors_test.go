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

import (
	"strings"
	"testing"

	"dirpx.dev/terrors/apis"
	"dirpx.dev/terrors/code"
)

func site(file, fn string, line int) Site {
	return Site{File: file, Func: fn, Line: line}
}

func TestSetInt_Basics(t *testing.T) {
	var e Error
	got := e.SetInt(code.NoEntry, site("fs/open.go", "open", 42))

	if got != &e {
		t.Fatal("SetInt must return its receiver")
	}
	if !e.IsSet() || e.Kind() != KindInt {
		t.Fatalf("kind = %v, want int", e.Kind())
	}
	if e.Code() != code.NoEntry {
		t.Fatalf("code = %v, want %v", e.Code(), code.NoEntry)
	}
	if e.Message() != "" {
		t.Fatalf("Message() = %q, want empty for int kind", e.Message())
	}
	fr := e.Frames()
	if len(fr) != 1 {
		t.Fatalf("frames = %d, want 1 (construction site)", len(fr))
	}
	if fr[0].String() != "fs/open.go:open:42" {
		t.Fatalf("frame[0] = %q", fr[0].String())
	}
}

func TestSetStr_BorrowsMessage(t *testing.T) {
	var e Error
	e.SetStr(code.Busy, site("a.go", "f", 1), "resource held")

	if e.Kind() != KindStr {
		t.Fatalf("kind = %v, want str", e.Kind())
	}
	if e.Message() != "resource held" {
		t.Fatalf("Message() = %q", e.Message())
	}
	if e.Truncated() {
		t.Fatal("str kind never truncates")
	}
}

func TestSet_OverwritesAllResidue(t *testing.T) {
	var e Error
	e.SetStr(code.IO, site("old.go", "old", 1), "old message")
	for i := 0; i < BacktraceMax; i++ {
		e.AppendFrame(site("old.go", "old", 100+i))
	}

	e.SetInt(code.TimedOut, site("new.go", "new", 7))

	if e.Kind() != KindInt || e.Code() != code.TimedOut {
		t.Fatalf("got kind=%v code=%v after overwrite", e.Kind(), e.Code())
	}
	if e.Message() != "" {
		t.Fatalf("message residue survived overwrite: %q", e.Message())
	}
	fr := e.Frames()
	if len(fr) != 1 || fr[0].String() != "new.go:new:7" {
		t.Fatalf("backtrace residue survived overwrite: %v", fr)
	}
}

func TestAppendFrame_SaturatesAndStaysIdempotent(t *testing.T) {
	var e Error
	e.SetInt(code.Invalid, site("origin.go", "origin", 1))

	for i := 1; i < BacktraceMax; i++ {
		e.AppendFrame(site("mid.go", "mid", i))
	}
	if got := len(e.Frames()); got != BacktraceMax {
		t.Fatalf("frames = %d, want %d", got, BacktraceMax)
	}

	before := e.Frames()
	snapshot := make([]Frame, len(before))
	copy(snapshot, before)

	// Past capacity every append is a no-op, any number of times.
	for i := 0; i < 100; i++ {
		e.AppendFrame(site("late.go", "late", i))
	}

	after := e.Frames()
	if len(after) != BacktraceMax {
		t.Fatalf("frames grew past capacity: %d", len(after))
	}
	for i := range snapshot {
		if after[i] != snapshot[i] {
			t.Fatalf("frame %d changed after saturation: %v -> %v", i, snapshot[i], after[i])
		}
	}
	if after[0].String() != "origin.go:origin:1" {
		t.Fatal("earliest frame must never be evicted")
	}
}

func TestAppendFrame_NoOpOnUnset(t *testing.T) {
	var e Error
	e.AppendFrame(site("x.go", "x", 1))
	if len(e.Frames()) != 0 {
		t.Fatal("AppendFrame on unset value must not record anything")
	}
	if e.IsSet() {
		t.Fatal("unset value must stay unset")
	}
}

func TestInt_CapturesCallerSite(t *testing.T) {
	var e Error
	Int(&e, code.Access)

	fr := e.Frames()
	if len(fr) != 1 {
		t.Fatalf("frames = %d, want 1", len(fr))
	}
	if !strings.HasSuffix(fr[0].File, "terrors_test.go") {
		t.Fatalf("file = %q, want this test file", fr[0].File)
	}
	if !strings.Contains(fr[0].Func, "TestInt_CapturesCallerSite") {
		t.Fatalf("func = %q, want the test function", fr[0].Func)
	}
	if fr[0].Line <= 0 {
		t.Fatalf("line = %d", fr[0].Line)
	}
}

func TestWrap_AppendsCallerFrame(t *testing.T) {
	var e Error
	Str(&e, code.ConnRefused, "dial failed")

	if got := Wrap(&e); got != &e {
		t.Fatal("Wrap must return its argument")
	}

	fr := e.Frames()
	if len(fr) != 2 {
		t.Fatalf("frames = %d, want 2", len(fr))
	}
	if !strings.Contains(fr[1].Func, "TestWrap_AppendsCallerFrame") {
		t.Fatalf("wrap frame func = %q", fr[1].Func)
	}
	if Wrap(nil) != nil {
		t.Fatal("Wrap(nil) must return nil")
	}
}

func TestBacktrace_AllocatesFreshStrings(t *testing.T) {
	var e Error
	e.SetInt(code.IO, site("a.go", "f", 1))
	e.AppendFrame(site("b.go", "g", 2))

	bt := e.Backtrace()
	want := []string{"a.go:f:1", "b.go:g:2"}
	if len(bt) != len(want) {
		t.Fatalf("backtrace = %v", bt)
	}
	for i := range want {
		if bt[i] != want[i] {
			t.Fatalf("backtrace[%d] = %q, want %q", i, bt[i], want[i])
		}
	}

	var unset Error
	if unset.Backtrace() != nil {
		t.Fatal("unset backtrace must be nil")
	}
}

func TestError_Text(t *testing.T) {
	var e Error

	if e.Error() != "<unset>" {
		t.Fatalf("unset Error() = %q", e.Error())
	}

	e.SetInt(code.NoEntry, site("a.go", "f", 1))
	if got := e.Error(); got != "no_entry: No such file or directory" {
		t.Fatalf("int Error() = %q", got)
	}

	e.SetStr(code.Busy, site("a.go", "f", 1), "lock held by compactor")
	if got := e.Error(); got != "busy: lock held by compactor" {
		t.Fatalf("str Error() = %q", got)
	}
}

func TestZeroValue_IsInert(t *testing.T) {
	var e Error

	if e.IsSet() || e.Kind() != KindNone {
		t.Fatal("zero value must be KindNone")
	}
	if e.Code() != code.OK {
		t.Fatalf("zero code = %v", e.Code())
	}
	if e.Message() != "" || e.Truncated() {
		t.Fatal("zero value must carry no message state")
	}

	var nilErr *Error
	if nilErr.IsSet() || nilErr.Kind() != KindNone || nilErr.Code() != code.OK {
		t.Fatal("nil receiver accessors must report unset")
	}
	if nilErr.Message() != "" {
		t.Fatal("nil receiver Message must be empty")
	}
}

func TestErrorCode_MatchesCode(t *testing.T) {
	var e Error
	Int(&e, code.TimedOut)
	if e.ErrorCode() != int(code.TimedOut) {
		t.Fatalf("ErrorCode() = %d, want %d", e.ErrorCode(), code.TimedOut)
	}
}

// Ensure Error satisfies the transport contracts.
func TestError_InterfaceSatisfaction(t *testing.T) {
	var _ error = (*Error)(nil)
	var _ apis.CodedError = (*Error)(nil)
	var _ apis.TracedError = (*Error)(nil)
}

func BenchmarkSetInt(b *testing.B) {
	var e Error
	s := site("a.go", "f", 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e.SetInt(code.IO, s)
	}
}

func BenchmarkAppendFrame(b *testing.B) {
	var e Error
	s := site("a.go", "f", 1)
	e.SetInt(code.IO, s)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Re-arm every BacktraceMax iterations so the append is real work.
		if i%BacktraceMax == 0 {
			e.SetInt(code.IO, s)
		}
		e.AppendFrame(s)
	}
}

func BenchmarkHere(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Here()
	}
}
