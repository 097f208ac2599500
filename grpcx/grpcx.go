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

// Package grpcx maps terrors values onto gRPC status errors.
//
// The interceptor attaches the standard google.rpc error details so that
// clients see the numeric code, the message, and the recorded backtrace
// without depending on this module's internal types.
package grpcx

import (
	"context"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/terrors"
	"dirpx.dev/terrors/apis"
)

// Domain identifies this error namespace in google.rpc.ErrorInfo details.
const Domain = "terrors.dirpx.dev"

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// *terrors.Error into gRPC status errors.
//
// The provided apis.Mapper resolves the numeric error code into the gRPC
// status code. Two standard detail messages are attached:
//
//   - google.rpc.ErrorInfo with the stable code name as Reason and the
//     numeric code in the metadata;
//   - google.rpc.DebugInfo carrying the recorded backtrace as stack entries
//     and the error's own message as Detail.
//
// Errors that are not *terrors.Error pass through unchanged.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		te, ok := err.(*terrors.Error)
		if !ok || !te.IsSet() {
			// Not ours; return as-is.
			return nil, err
		}

		st := m.Status(te.Code())
		base := gstatus.New(st.GRPC, te.Error())

		errInfo := &errdetails.ErrorInfo{
			Reason: te.Code().Name(),
			Domain: Domain,
			Metadata: map[string]string{
				"code": strconv.Itoa(int(te.Code())),
			},
		}
		dbgInfo := &errdetails.DebugInfo{
			StackEntries: te.Backtrace(),
			Detail:       te.Message(),
		}

		// Attach details; on failure return the bare status.
		if with, derr := base.WithDetails(errInfo, dbgInfo); derr == nil {
			return nil, with.Err()
		}
		return nil, base.Err()
	}
}

// ExtractErrorInfo pulls google.rpc.ErrorInfo out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractDebugInfo pulls google.rpc.DebugInfo out of a gRPC error, if present.
func ExtractDebugInfo(err error) (*errdetails.DebugInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if di, ok := d.(*errdetails.DebugInfo); ok {
			return di, true
		}
	}
	return nil, false
}
