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
	"errors"
	"fmt"
	"strings"
	"testing"

	"dirpx.dev/terrors/code"
)

func TestDump_StrLayout(t *testing.T) {
	var e Error
	e.SetStr(code.NoEntry, site("store/get.go", "lookup", 57), "key vanished")
	e.AppendFrame(site("store/store.go", "Get", 131))

	want := "====== ERROR DUMP ======\n" +
		"Error code: 2\n" +
		"Error desc: No such file or directory\n" +
		"------------------------\n" +
		" Error msg: key vanished\n" +
		"------------------------\n" +
		" Backtrace:\n" +
		"   [00] store/get.go:lookup:57\n" +
		"   [01] store/store.go:Get:131\n"

	buf := make([]byte, 1024)
	n, err := e.Dump(buf)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got := string(buf[:n]); got != want {
		t.Fatalf("dump mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
}

func TestDump_IntOmitsMessageBlock(t *testing.T) {
	var e Error
	e.SetInt(code.TimedOut, site("net/dial.go", "dial", 12))

	want := "====== ERROR DUMP ======\n" +
		"Error code: 110\n" +
		"Error desc: Connection timed out\n" +
		"------------------------\n" +
		" Backtrace:\n" +
		"   [00] net/dial.go:dial:12\n"

	buf := make([]byte, 1024)
	n, err := e.Dump(buf)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got := string(buf[:n])
	if got != want {
		t.Fatalf("dump mismatch.\n--- want ---\n%s\n--- got ---\n%s", want, got)
	}
	if strings.Contains(got, "Error msg") {
		t.Fatal("int dump must not contain a message line")
	}
}

func TestDump_UnsetFails(t *testing.T) {
	var e Error
	buf := make([]byte, 1024)
	n, err := e.Dump(buf)
	if !errors.Is(err, ErrNotSet) {
		t.Fatalf("err = %v, want ErrNotSet", err)
	}
	if n != 0 {
		t.Fatalf("n = %d, want 0", n)
	}
}

func TestDump_BufferTooSmall(t *testing.T) {
	var e Error
	e.SetStr(code.IO, site("a.go", "f", 1), "disk gone")

	full := make([]byte, 1024)
	fullN, err := e.Dump(full)
	if err != nil {
		t.Fatalf("full dump: %v", err)
	}

	// Every capacity short of the full report must fail, never overrun,
	// and leave only bytes that are a prefix of the full report.
	for size := 0; size < fullN; size++ {
		buf := make([]byte, size)
		n, err := e.Dump(buf)
		if !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("size %d: err = %v, want ErrBufferTooSmall", size, err)
		}
		if n > size {
			t.Fatalf("size %d: wrote %d bytes past the buffer", size, n)
		}
		if string(buf[:n]) != string(full[:n]) {
			t.Fatalf("size %d: partial output is not a prefix of the full dump", size)
		}
	}
}

func TestDump_DoesNotMutate(t *testing.T) {
	var e Error
	e.SetStr(code.Busy, site("a.go", "f", 1), "held")
	e.AppendFrame(site("b.go", "g", 2))

	small := make([]byte, 10)
	if _, err := e.Dump(small); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("expected ErrBufferTooSmall, got %v", err)
	}

	// A failed dump must leave the error renderable.
	big := make([]byte, 1024)
	n1, err := e.Dump(big)
	if err != nil {
		t.Fatalf("dump after failed dump: %v", err)
	}
	n2, err := e.Dump(big)
	if err != nil || n1 != n2 {
		t.Fatalf("dump is not repeatable: n1=%d n2=%d err=%v", n1, n2, err)
	}
}

func TestDumpString_MatchesDump(t *testing.T) {
	var e Error
	e.SetStr(code.Protocol, site("codec/frame.go", "decode", 88), "short frame")
	Wrap(&e)

	buf := make([]byte, 4096)
	n, err := e.Dump(buf)
	if err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got := e.DumpString(); got != string(buf[:n]) {
		t.Fatalf("DumpString diverges from Dump:\n%s\nvs\n%s", got, buf[:n])
	}

	var unset Error
	if unset.DumpString() != "<unset>" {
		t.Fatalf("unset DumpString = %q", unset.DumpString())
	}
}

func TestDump_TwoDigitIndexPadding(t *testing.T) {
	if BacktraceMax < 11 {
		t.Skip("needs a ring deeper than 10 frames")
	}
	var e Error
	e.SetInt(code.IO, site("a.go", "f", 1))
	for i := 1; i < 11; i++ {
		e.AppendFrame(site("a.go", "f", i+1))
	}

	out := e.DumpString()
	if !strings.Contains(out, "   [00] ") || !strings.Contains(out, "   [10] ") {
		t.Fatalf("index padding wrong:\n%s", out)
	}
	if strings.Contains(out, "[010]") {
		t.Fatalf("double padding on two-digit index:\n%s", out)
	}
}

func TestFormatVerbs(t *testing.T) {
	var e Error
	e.SetStr(code.Invalid, site("a.go", "f", 1), "bad input")

	if got := fmt.Sprintf("%v", &e); got != e.Error() {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%s", &e); got != e.Error() {
		t.Fatalf("%%s = %q", got)
	}
	if got := fmt.Sprintf("%q", &e); got != `"invalid: bad input"` {
		t.Fatalf("%%q = %q", got)
	}
	if got := fmt.Sprintf("%+v", &e); got != e.DumpString() {
		t.Fatalf("%%+v must render the full dump, got:\n%s", got)
	}
}

// FuzzDump feeds arbitrary messages and buffer capacities through the
// renderer; it must never overrun the buffer and must report too-small
// buffers instead of corrupting output.
func FuzzDump(f *testing.F) {
	f.Add("disk gone", 0)
	f.Add("", 16)
	f.Add("a longer message with spaces and: punctuation", 200)
	f.Add("msg", 4096)

	f.Fuzz(func(t *testing.T, msg string, size int) {
		if size < 0 || size > 1<<16 {
			t.Skip()
		}
		var e Error
		e.SetStr(code.IO, site("fuzz.go", "fn", 3), msg)
		e.AppendFrame(site("fuzz.go", "caller", 9))

		buf := make([]byte, size)
		n, err := e.Dump(buf)
		if n > size {
			t.Fatalf("wrote %d into %d-byte buffer", n, size)
		}
		if err != nil && !errors.Is(err, ErrBufferTooSmall) {
			t.Fatalf("unexpected error: %v", err)
		}
		if err == nil {
			full := e.DumpString()
			if string(buf[:n]) != full {
				t.Fatal("successful dump diverges from DumpString")
			}
		}
	})
}

func BenchmarkDump(b *testing.B) {
	var e Error
	e.SetStr(code.IO, site("bench.go", "fn", 1), "disk gone")
	for i := 1; i < BacktraceMax; i++ {
		e.AppendFrame(site("bench.go", "caller", i))
	}
	buf := make([]byte, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := e.Dump(buf); err != nil {
			b.Fatal(err)
		}
	}
}
