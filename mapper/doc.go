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

// Package mapper provides deterministic, immutable mappings from numeric
// terrors codes (dirpx.dev/terrors/code) to transport-level statuses for
// HTTP and gRPC.
//
// # Overview
//
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to turn
// an errno-style numeric code into concrete status codes. Package mapper
// does that in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: callers can change library defaults per code;
//   - dual: HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the code;
//  2. per-code default (library or user-adjusted);
//  3. global fallback (500 / codes.Internal).
//
// # Library defaults
//
// The package ships with defaults for the canonical codes, mapping them to
// standard net/http constants and grpc/codes values (e.g. code.NoEntry ->
// 404 / NotFound, code.Access -> 403 / PermissionDenied, code.TimedOut ->
// 504 / DeadlineExceeded). These can be adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(code.Canceled, 499),   // nginx-style
//	    mapper.WithHTTPDefault(code.NoSpace, 503),
//	)
//	if err != nil {
//	    // out-of-range status, etc.
//	}
//
//	st := m.Status(code.NoEntry)
//	// st.HTTP == 404, st.GRPC == codes.NotFound
//
// New validates every configured status: HTTP values must lie in 100..599
// and gRPC values in the canonical 0..16 range, so a typo surfaces at build
// time instead of at the transport edge.
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular code was resolved, including which tier matched. This is
// intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's options. This
// makes it safe to share a single instance across handlers, goroutines and
// requests.
package mapper
