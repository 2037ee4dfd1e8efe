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

package derrclass

import (
	"maps"
	"slices"
)

// ErrorOptions are the per-occurrence inputs of an instance.
//
// Absence is expressed by zero values: a nil Solutions slice and empty
// Fallback / Details strings mean "not provided". A non-nil but empty
// Solutions slice is a shape violation.
type ErrorOptions struct {
	// Params holds the values for the type's parameter specs. Parameters
	// that are not declared by the type are passed through unchecked.
	Params map[string]any `json:"params,omitempty"`

	// Solutions lists potential fixes; every entry must be non-empty.
	Solutions []string `json:"solutions,omitempty"`

	// Fallback describes the mitigation the program is taking.
	Fallback string `json:"fallback,omitempty"`

	// Details is free-form extra information.
	Details string `json:"details,omitempty"`
}

// Clone returns a copy of o that shares no maps or slices with it.
func (o ErrorOptions) Clone() ErrorOptions {
	return ErrorOptions{
		Params:    maps.Clone(o.Params),
		Solutions: slices.Clone(o.Solutions),
		Fallback:  o.Fallback,
		Details:   o.Details,
	}
}

// Option is a functional option for building the ErrorOptions of an
// instance. Options are applied in order.
type Option func(*ErrorOptions)

// WithOptions replaces everything collected so far with a copy of o.
func WithOptions(o ErrorOptions) Option {
	return func(dst *ErrorOptions) {
		*dst = o.Clone()
	}
}

// WithParam sets a single parameter value.
func WithParam(k string, v any) Option {
	return func(o *ErrorOptions) {
		if o.Params == nil {
			o.Params = make(map[string]any, 1)
		}
		o.Params[k] = v
	}
}

// WithParams merges kv into the parameters, kv taking precedence.
func WithParams(kv map[string]any) Option {
	return func(o *ErrorOptions) {
		if len(kv) == 0 {
			return
		}
		if o.Params == nil {
			o.Params = make(map[string]any, len(kv))
		}
		maps.Copy(o.Params, kv)
	}
}

// WithSolutions appends solutions. Calling it with no arguments marks the
// solutions as provided-but-empty, which fails validation.
func WithSolutions(s ...string) Option {
	return func(o *ErrorOptions) {
		merged := make([]string, 0, len(o.Solutions)+len(s))
		merged = append(merged, o.Solutions...)
		o.Solutions = append(merged, s...)
	}
}

// WithFallback sets the fallback description.
func WithFallback(s string) Option {
	return func(o *ErrorOptions) { o.Fallback = s }
}

// WithDetails sets the free-form details.
func WithDetails(s string) Option {
	return func(o *ErrorOptions) { o.Details = s }
}

func buildOptions(opts []Option) ErrorOptions {
	var o ErrorOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
