package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/code"
	"dirpx.dev/terrors/mapper"
)

func newWriter(t *testing.T, withTrace bool) Writer {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New: %v", err)
	}
	return Writer{Mapper: m, IncludeBacktrace: withTrace}
}

func TestWrite_StatusAndBody(t *testing.T) {
	w := newWriter(t, false)

	var e terrors.Error
	e.SetStr(code.NoEntry, terrors.Site{File: "store/get.go", Func: "lookup", Line: 57}, "key vanished")

	rec := httptest.NewRecorder()
	w.Write(rec, &e)

	if rec.Code != 404 {
		t.Fatalf("HTTP status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}

	var body struct {
		Code    int32           `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v\n%s", err, rec.Body.String())
	}
	if body.Code != int32(codes.NotFound) {
		t.Fatalf("body code = %d, want %d", body.Code, codes.NotFound)
	}
	if body.Message != "no_entry: key vanished" {
		t.Fatalf("body message = %q", body.Message)
	}
	if len(body.Details) != 0 {
		t.Fatalf("details must be absent without IncludeBacktrace:\n%s", rec.Body.String())
	}
}

func TestWrite_IncludeBacktrace(t *testing.T) {
	w := newWriter(t, true)

	var e terrors.Error
	e.SetStr(code.IO, terrors.Site{File: "disk/read.go", Func: "read", Line: 9}, "sector gone")
	terrors.Wrap(&e)

	rec := httptest.NewRecorder()
	w.Write(rec, &e)

	body := rec.Body.String()
	if !strings.Contains(body, "google.rpc.DebugInfo") {
		t.Fatalf("DebugInfo detail missing:\n%s", body)
	}
	if !strings.Contains(body, "disk/read.go:read:9") {
		t.Fatalf("stack entry missing:\n%s", body)
	}
}

func TestWrite_UnsetError(t *testing.T) {
	w := newWriter(t, false)

	rec := httptest.NewRecorder()
	var unset terrors.Error
	w.Write(rec, &unset)

	if rec.Code != 500 {
		t.Fatalf("unset error status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal error") {
		t.Fatalf("unset error body = %q", rec.Body.String())
	}

	rec2 := httptest.NewRecorder()
	w.Write(rec2, nil)
	if rec2.Code != 500 {
		t.Fatalf("nil error status = %d, want 500", rec2.Code)
	}
}
