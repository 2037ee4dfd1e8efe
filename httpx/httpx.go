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

// Package httpx writes rendered errors as HTTP JSON responses.
//
// The status comes from an apis.Mapper; the body is the error view:
//
//	{
//	  "reason": "user.input.error",
//	  "class": "user", "type": "input", "severity": "error",
//	  "encoding": "standard",
//	  "message": "...",
//	  "details": [{"type": "param", "field": "input", "value": "42"}],
//	  "requestId": "..."
//	}
package httpx

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/derrclass/adapter"
	"dirpx.dev/derrclass/apis"
	"dirpx.dev/derrclass/reason"
)

// Meta carries request-level context added on top of the error view.
// All fields are optional.
type Meta struct {
	RequestID string

	// RetryAfter, when positive, is sent as a Retry-After header in whole
	// seconds, rounded up.
	RetryAfter time.Duration
}

// Writer turns errors into HTTP responses using the provided status mapper.
// The zero Log discards.
type Writer struct {
	Mapper apis.Mapper
	Log    logr.Logger
}

// Write resolves the status of err and writes its view as the body. A nil
// error writes nothing.
//
// No redaction happens here: whatever the error and Meta hold is exposed.
func (w Writer) Write(rw http.ResponseWriter, err error, meta Meta) {
	if err == nil {
		return
	}
	v := adapter.ToView(err)
	r, _ := reason.Parse(v.Reason)
	status := w.Mapper.HTTPStatus(r)

	body, merr := Body(v, meta)
	if merr != nil {
		w.Log.Error(merr, "cannot encode error body", "reason", v.Reason)
		http.Error(rw, v.Message, status)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	if meta.RetryAfter > 0 {
		secs := int((meta.RetryAfter + time.Second - 1) / time.Second)
		rw.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	rw.WriteHeader(status)
	if _, werr := rw.Write(body); werr != nil {
		w.Log.V(1).Info("cannot write error body", "error", werr.Error())
	}
	w.Log.V(1).Info("error response written", "reason", v.Reason, "status", status)
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(rw http.ResponseWriter, req *http.Request) error

// Handle adapts h into an http.Handler that writes returned errors with w.
// Meta.RequestID is taken from the X-Request-Id header.
func (w Writer) Handle(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		if err := h(rw, req); err != nil {
			w.Write(rw, err, Meta{RequestID: req.Header.Get("X-Request-Id")})
		}
	})
}

// Body encodes the view as protobuf JSON.
func Body(v apis.ErrorView, meta Meta) ([]byte, error) {
	fields := map[string]any{"message": v.Message}
	set := func(k, val string) {
		if val != "" {
			fields[k] = val
		}
	}
	set("reason", v.Reason)
	set("class", v.Class)
	set("type", v.Type)
	set("severity", v.Severity)
	set("encoding", v.Encoding)
	set("requestId", meta.RequestID)

	if len(v.Details) > 0 {
		ds := make([]any, 0, len(v.Details))
		for _, d := range v.Details {
			m := map[string]any{"type": d.Type, "value": d.Value}
			if d.Field != "" {
				m["field"] = d.Field
			}
			ds = append(ds, m)
		}
		fields["details"] = ds
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	// protojson keeps well-known types in their canonical JSON form.
	return protojson.MarshalOptions{EmitUnpopulated: false}.Marshal(s)
}
