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

package grpcx

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/adapter"
	"dirpx.dev/derrclass/apis"
	"dirpx.dev/derrclass/reason"
)

// Domain is the ErrorInfo domain of every status built here.
const Domain = "derrclass"

// Metadata keys of the ErrorInfo detail.
const (
	keyClass          = "class"
	keyType           = "type"
	keySeverity       = "severity"
	keyEncoding       = "encoding"
	keyParamPrefix    = "param."
	keySolutionPrefix = "solution."
	keyFallback       = "fallback"
	keyDetails        = "details"
)

// Link is a human-facing link added as a google.rpc.Help entry.
type Link struct {
	Description string
	URL         string
}

// Extras holds optional metadata attached next to the ErrorInfo. All fields
// are optional.
type Extras struct {
	// RequestID becomes a google.rpc.RequestInfo.
	RequestID string

	// RetryDelay, when positive, becomes a google.rpc.RetryInfo.
	RetryDelay time.Duration

	// Links become a google.rpc.Help.
	Links []Link
}

// MetaFn extracts Extras from the request context and the error view.
type MetaFn func(ctx context.Context, v apis.ErrorView) Extras

// Classified reports whether err carries a classification this package
// can project. Plain errors and existing gRPC statuses do not.
func Classified(err error) bool {
	if err == nil {
		return false
	}
	var rd *derrclass.Rendered
	var vp apis.ViewProvider
	var re apis.ReasonedError
	var ce apis.ClassifiedError
	return errors.As(err, &rd) || errors.As(err, &vp) || errors.As(err, &re) || errors.As(err, &ce)
}

// Status builds the gRPC status for err. The code is resolved from the
// error's reason with m; unclassified errors get the mapper's fallback.
// If the details cannot be attached the bare status is returned.
func Status(err error, m apis.Mapper, ex Extras) *gstatus.Status {
	v := adapter.ToView(err)
	r, _ := reason.Parse(v.Reason)

	base := gstatus.New(m.GRPCStatus(r), v.Message)

	details := []protoadapt.MessageV1{errorInfo(v)}
	if ex.RequestID != "" {
		details = append(details, &errdetails.RequestInfo{RequestId: ex.RequestID})
	}
	if ex.RetryDelay > 0 {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(ex.RetryDelay)})
	}
	if len(ex.Links) > 0 {
		h := &errdetails.Help{}
		for _, l := range ex.Links {
			h.Links = append(h.Links, &errdetails.Help_Link{Description: l.Description, Url: l.URL})
		}
		details = append(details, h)
	}

	with, derr := base.WithDetails(details...)
	if derr != nil {
		return base
	}
	return with
}

func errorInfo(v apis.ErrorView) *errdetails.ErrorInfo {
	md := make(map[string]string, 4+len(v.Details))
	set := func(k, val string) {
		if val != "" {
			md[k] = val
		}
	}
	set(keyClass, v.Class)
	set(keyType, v.Type)
	set(keySeverity, v.Severity)
	set(keyEncoding, v.Encoding)

	n := 0
	for _, d := range v.Details {
		switch d.Type {
		case apis.DetailParam:
			md[keyParamPrefix+d.Field] = d.Value
		case apis.DetailSolution:
			md[keySolutionPrefix+strconv.Itoa(n)] = d.Value
			n++
		case apis.DetailFallback:
			md[keyFallback] = d.Value
		case apis.DetailDetails:
			md[keyDetails] = d.Value
		}
	}
	return &errdetails.ErrorInfo{Reason: v.Reason, Domain: Domain, Metadata: md}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// classified errors into statuses with rich details. Other errors are
// returned as-is. metaFn may be nil.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, convert(ctx, err, m, metaFn)
	}
}

// StreamServerInterceptor is UnaryServerInterceptor for streaming RPCs.
func StreamServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if err == nil {
			return nil
		}
		return convert(ss.Context(), err, m, metaFn)
	}
}

func convert(ctx context.Context, err error, m apis.Mapper, metaFn MetaFn) error {
	if !Classified(err) {
		return err
	}
	var ex Extras
	if metaFn != nil {
		ex = metaFn(ctx, adapter.ToView(err))
	}
	return Status(err, m, ex).Err()
}

// ExtractErrorInfo pulls the derrclass ErrorInfo out of a gRPC error.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := gstatus.FromError(err)
	if !ok || st == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok && ei.GetDomain() == Domain {
			return ei, true
		}
	}
	return nil, false
}

// ExtractView rebuilds the error view from a gRPC error produced by Status.
// Parameters come back as strings, sorted by name.
func ExtractView(err error) (apis.ErrorView, bool) {
	ei, ok := ExtractErrorInfo(err)
	if !ok {
		return apis.ErrorView{}, false
	}
	st, _ := gstatus.FromError(err)
	md := ei.GetMetadata()
	v := apis.ErrorView{
		Reason:   ei.GetReason(),
		Class:    md[keyClass],
		Type:     md[keyType],
		Severity: md[keySeverity],
		Encoding: md[keyEncoding],
		Message:  st.Message(),
	}

	var o derrclass.ErrorOptions
	for k, val := range md {
		if field, ok := strings.CutPrefix(k, keyParamPrefix); ok {
			if o.Params == nil {
				o.Params = make(map[string]any)
			}
			o.Params[field] = val
		}
	}
	for i := 0; ; i++ {
		s, ok := md[keySolutionPrefix+strconv.Itoa(i)]
		if !ok {
			break
		}
		o.Solutions = append(o.Solutions, s)
	}
	o.Fallback = md[keyFallback]
	o.Details = md[keyDetails]
	v.Details = adapter.Details(o)
	return v, true
}
