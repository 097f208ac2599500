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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/terrors/apis"
	"dirpx.dev/terrors/code"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance; no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, fallbacks).
//  3. Validate every configured status: HTTP in 100..599, gRPC in 0..16.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate an out-of-range status in the
// configuration.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, fallbacks).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate everything the snapshot will serve. A bad status here is
	// a configuration bug; better to fail the build than emit it on the wire.
	for _, m := range []map[code.Code]int{b.httpDefaults, b.httpOverride} {
		for c, v := range m {
			if err := validHTTPStatus(v); err != nil {
				return nil, fmt.Errorf("mapper: HTTP status for code %s: %w", c, err)
			}
		}
	}
	for _, m := range []map[code.Code]int{b.grpcDefaults, b.grpcOverride} {
		for c, v := range m {
			if err := validGRPCStatus(v); err != nil {
				return nil, fmt.Errorf("mapper: gRPC status for code %s: %w", c, err)
			}
		}
	}
	if err := validHTTPStatus(b.fallbackHTTP); err != nil {
		return nil, fmt.Errorf("mapper: HTTP fallback: %w", err)
	}
	if err := validGRPCStatus(int(b.fallbackGRPC)); err != nil {
		return nil, fmt.Errorf("mapper: gRPC fallback: %w", err)
	}

	// (4) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated.
	m := &mapper{
		httpDefault:  freezeHTTPMap(b.httpDefaults),
		grpcDefault:  freezeGRPCMap(b.grpcDefaults),
		httpOverride: freezeHTTPMap(b.httpOverride),
		grpcOverride: freezeGRPCMap(b.grpcOverride),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults with per-code exact overrides. Lookups are O(1) and safe for
// concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error code.
	// Used when no override is present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. per-code default (library or user overridden);
//  3. global fallback (500 unless reconfigured).
func (m *mapper) HTTPStatus(c code.Code) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Per-code default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Default for this code.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 3. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, default, or fallback) per transport.
//
// Example output:
//
//	code="no_entry(2)"
//	http: source=default -> 404
//	grpc: source=default -> NOTFOUND(5)
//
// Notes:
//   - source ∈ {override | default | fallback}
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c.String())

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(c); src {
	case "override", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(c); src {
	case "override", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "default", "fallback") and a
// formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(c code.Code) (source, line string) {
	if v, ok := m.httpOverride[c]; ok {
		return "override", fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok := m.httpDefault[c]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "default", "fallback") and a
// formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(c code.Code) (source, line string) {
	if v, ok := m.grpcOverride[c]; ok {
		return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	if v, ok := m.grpcDefault[c]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
