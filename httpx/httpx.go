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

// Package httpx writes terrors values as HTTP error responses.
//
// The response body is a google.rpc.Status rendered as JSON, so HTTP and
// gRPC clients of the same service see the same error shape.
package httpx

import (
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	spb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/anypb"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/apis"
)

// Writer is a thin adapter that turns a *terrors.Error into an HTTP response
// using the provided status mapper.
type Writer struct {
	Mapper apis.Mapper

	// IncludeBacktrace controls whether the recorded backtrace is attached
	// to the body as a google.rpc.DebugInfo detail. Leave it off on public
	// surfaces; file paths and function names are internal information.
	IncludeBacktrace bool
}

// Write resolves the HTTP status via the Mapper and writes a
// google.rpc.Status JSON body describing err.
//
// Unset errors produce a 500 with a generic body so a handler bug cannot
// turn into an empty 200.
func (w Writer) Write(rw http.ResponseWriter, err *terrors.Error) {
	rw.Header().Set("Content-Type", "application/json")

	if err == nil || !err.IsSet() {
		rw.WriteHeader(http.StatusInternalServerError)
		_, _ = rw.Write([]byte(`{"code":13,"message":"internal error"}`))
		return
	}

	st := w.Mapper.Status(err.Code())

	body := &spb.Status{
		Code:    int32(st.GRPC),
		Message: err.Error(),
	}
	if w.IncludeBacktrace {
		dbg := &errdetails.DebugInfo{
			StackEntries: err.Backtrace(),
			Detail:       err.Message(),
		}
		if a, aerr := anypb.New(dbg); aerr == nil {
			body.Details = append(body.Details, a)
		}
	}

	rw.WriteHeader(st.HTTP)

	// protojson, not encoding/json: Any and json_name handling differ.
	b, _ := (protojson.MarshalOptions{
		EmitUnpopulated: false,
		UseProtoNames:   false,
	}).Marshal(body)
	_, _ = rw.Write(b)
}
