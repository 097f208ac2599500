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

// Package apis defines the public Go-level contracts for terrors handling.
//
// The goal of this package is to provide *small, composable* interfaces that
// transport adapters (HTTP, gRPC), loggers and business logic can depend on
// without importing the concrete error implementation in the module root.
//
// Concrete error types should implement these interfaces; callers at the
// boundary should target the interfaces, so that foreign error types that
// happen to carry a numeric code or a trace degrade gracefully instead of
// being dropped.
//
// This package must remain lightweight: interfaces, the Status pair and the
// ErrorDescriptor view type only. The one dependency is the gRPC codes
// enum, which Status needs to be writable at the transport edge.
package apis
