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

// Package zapx logs terrors values as structured zap fields.
//
// The marshaler snapshots the error at log time, so the caller may reuse the
// error storage right after the logging call returns.
package zapx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"dirpx.dev/terrors"
)

// marshaler adapts a *terrors.Error to zapcore.ObjectMarshaler.
type marshaler struct {
	e *terrors.Error
}

// MarshalLogObject encodes the error's code, name, description, message, and
// backtrace into the zap object encoder.
func (m marshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	e := m.e
	if e == nil || !e.IsSet() {
		enc.AddBool("set", false)
		return nil
	}
	c := e.Code()
	enc.AddInt("code", int(c))
	enc.AddString("name", c.Name())
	enc.AddString("description", c.Description())
	if msg := e.Message(); msg != "" {
		enc.AddString("message", msg)
	}
	if e.Truncated() {
		enc.AddBool("truncated", true)
	}
	return enc.AddArray("backtrace", backtrace(e.Frames()))
}

// backtrace encodes frames as an array of "file:func:line" strings.
type backtrace []terrors.Frame

func (bt backtrace) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range bt {
		enc.AppendString(f.String())
	}
	return nil
}

// Object returns a zap field holding the error as a structured object under
// the given key.
//
//	logger.Error("open failed", zapx.Object("error", e))
func Object(key string, e *terrors.Error) zap.Field {
	return zap.Object(key, marshaler{e})
}

// Error returns a zap field under the conventional "error" key.
func Error(e *terrors.Error) zap.Field {
	return Object("error", e)
}
