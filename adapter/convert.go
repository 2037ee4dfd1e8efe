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

package adapter

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/apis"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/reason"
)

// ToView converts err into an ErrorView. A nil error yields the zero view.
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	var vp apis.ViewProvider
	if errors.As(err, &vp) {
		return vp.ErrorView()
	}
	var rd *derrclass.Rendered
	if errors.As(err, &rd) {
		v := FromRendered(rd)
		v.Message = err.Error()
		return v
	}

	v := apis.ErrorView{Message: err.Error()}
	var ce apis.ClassifiedError
	if errors.As(err, &ce) {
		v.Class, v.Type, v.Severity = ce.ErrorClass(), ce.ErrorType(), ce.ErrorSeverity()
	}
	v.Reason = string(ReasonOf(err))
	return v
}

// FromRendered builds the view of a single rendered error.
func FromRendered(r *derrclass.Rendered) apis.ErrorView {
	if r == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Reason:   string(r.Reason),
		Class:    string(r.Class),
		Type:     string(r.Type),
		Severity: string(r.Severity),
		Encoding: string(r.Encoding),
		Message:  r.Message,
		Details:  Details(r.Options),
	}
}

// Details flattens error options into view details: parameters sorted by
// name, then solutions, fallback and details.
func Details(o derrclass.ErrorOptions) []apis.Detail {
	var ds []apis.Detail
	keys := make([]string, 0, len(o.Params))
	for k := range o.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		ds = append(ds, apis.Detail{Type: apis.DetailParam, Field: k, Value: fmt.Sprint(o.Params[k])})
	}
	for _, s := range o.Solutions {
		ds = append(ds, apis.Detail{Type: apis.DetailSolution, Value: s})
	}
	if o.Fallback != "" {
		ds = append(ds, apis.Detail{Type: apis.DetailFallback, Value: o.Fallback})
	}
	if o.Details != "" {
		ds = append(ds, apis.Detail{Type: apis.DetailDetails, Value: o.Details})
	}
	return ds
}

// ReasonOf extracts the reason of err. Errors without one, or with a
// malformed one, yield reason.Empty.
func ReasonOf(err error) reason.Reason {
	var re apis.ReasonedError
	if errors.As(err, &re) {
		if r, perr := reason.Parse(re.ErrorReason()); perr == nil {
			return r
		}
		return reason.Empty
	}
	var ce apis.ClassifiedError
	if errors.As(err, &ce) && ce.ErrorClass() != "" {
		if r, perr := reason.Parse(string(reason.Of(name.Name(ce.ErrorClass()), name.Name(ce.ErrorType()), name.Name(ce.ErrorSeverity())))); perr == nil {
			return r
		}
	}
	return reason.Empty
}

// ToDescriptor resolves the transport statuses of err with m and returns
// them together with the message.
func ToDescriptor(err error, m apis.Mapper) apis.ErrorDescriptor {
	if err == nil {
		return apis.ErrorDescriptor{}
	}
	v := ToView(err)
	r, _ := reason.Parse(v.Reason)
	st := m.Status(r)
	return apis.ErrorDescriptor{
		Reason:     v.Reason,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    v.Message,
	}
}
