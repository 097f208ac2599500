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
	"errors"
	"fmt"

	"dirpx.dev/terrors/code"
	"google.golang.org/grpc/codes"
)

var (
	// ErrStatusOutOfRange is returned (wrapped) by New when a configured
	// HTTP or gRPC status lies outside its valid range.
	ErrStatusOutOfRange = errors.New("status out of range")
)

// validHTTPStatus checks that v is a plausible HTTP status code (100..599).
func validHTTPStatus(v int) error {
	if v < 100 || v > 599 {
		return fmt.Errorf("%w: %d (want 100..599)", ErrStatusOutOfRange, v)
	}
	return nil
}

// validGRPCStatus checks that v is a canonical gRPC status code (0..16).
func validGRPCStatus(v int) error {
	if v < int(codes.OK) || v > int(codes.Unauthenticated) {
		return fmt.Errorf("%w: %d (want 0..16)", ErrStatusOutOfRange, v)
	}
	return nil
}

// freezeHTTPMap makes an immutable copy of an HTTP status map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeHTTPMap(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCMap makes an immutable copy of a gRPC status map,
// converting builder-style int values into typed gRPC codes.
func freezeGRPCMap(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}
