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

// Package adapter converts terrors values into the portable apis types.
//
// The conversions here are the glue between the allocation-free core and the
// transport layers: they snapshot an *terrors.Error into flat strings and
// integers that can be marshaled, logged, or pushed onto a bus without
// holding a reference to the caller-owned error storage.
package adapter

import (
	"dirpx.dev/terrors"
	"dirpx.dev/terrors/apis"
)

// ToDescriptor converts an error together with its resolved transport status
// into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries the numeric code, its stable name and description,
// the error's own message (if its kind has one), the recorded backtrace, and
// the concrete transport statuses (HTTP and gRPC).
//
// The returned value shares no storage with e: the caller may reuse or
// overwrite e immediately.
func ToDescriptor(e *terrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil || !e.IsSet() {
		return apis.ErrorDescriptor{}
	}
	c := e.Code()
	return apis.ErrorDescriptor{
		Code:        int(c),
		Name:        c.Name(),
		Description: c.Description(),
		Message:     e.Message(),
		Backtrace:   e.Backtrace(),
		HTTPStatus:  st.HTTP,
		GRPCCode:    int(st.GRPC),
	}
}

// Describe resolves the status through m and converts in one step.
// It is a convenience for call sites that hold a mapper anyway.
func Describe(e *terrors.Error, m apis.Mapper) apis.ErrorDescriptor {
	if e == nil || !e.IsSet() || m == nil {
		return ToDescriptor(e, apis.Status{})
	}
	return ToDescriptor(e, m.Status(e.Code()))
}
