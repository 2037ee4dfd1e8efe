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
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/derrclass/name"
)

// Context is what an encoder receives about the instance being rendered.
// The option fields are flattened for convenience and also available as a
// whole in Options.
type Context struct {
	Class    name.Name
	Type     name.Name
	Severity name.Name

	Params    map[string]any
	Solutions []string
	Fallback  string
	Details   string

	Options ErrorOptions

	// StringReturn is true when the caller asked for an error value, in which
	// case the encoder must return a string.
	StringReturn bool
}

// CustomOptions carries caller-defined options through to encoders, e.g. a
// message-assembly callback for a non-technical encoding.
type CustomOptions map[string]any

// Get returns the option stored under key.
func (c CustomOptions) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

// Encoder renders one encoding for one (class, type).
type Encoder func(ctx Context, custom CustomOptions) (any, error)

// Encodable is implemented by everything that can be encoded: instances,
// special-class instances and operations.
type Encodable interface {
	EncodeAs(encoding name.Name, opts ...EncodeOption) (any, error)
	EncodeAsDefault(opts ...EncodeOption) (any, error)
}

var _ Encodable = (*Instance)(nil)

// EncodeOption configures one encode call.
type EncodeOption func(*EncodeConfig)

// EncodeConfig is the resolved form of a set of EncodeOptions. It is
// exported so composers can inspect the flags they forward.
type EncodeConfig struct {
	// AsErrorInstance requires a string result and wraps it (default true).
	AsErrorInstance bool
	// Composite returns the string unwrapped; set by operations.
	Composite bool
	// Custom is handed to the encoder as its second argument.
	Custom CustomOptions
}

// ResolveEncodeOptions applies opts over the defaults.
func ResolveEncodeOptions(opts ...EncodeOption) EncodeConfig {
	cfg := EncodeConfig{AsErrorInstance: true, Custom: CustomOptions{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithAsErrorInstance chooses between a wrapped *Rendered (true, the
// default) and the encoder's raw value (false).
func WithAsErrorInstance(b bool) EncodeOption {
	return func(c *EncodeConfig) { c.AsErrorInstance = b }
}

// WithComposite makes a string result come back unwrapped. Operations set it
// on their components; callers rarely need it.
func WithComposite(b bool) EncodeOption {
	return func(c *EncodeConfig) { c.Composite = b }
}

// WithCustom passes a single custom option to the encoder.
func WithCustom(key string, v any) EncodeOption {
	return func(c *EncodeConfig) { c.Custom[key] = v }
}

// WithCustomOptions merges m into the custom options.
func WithCustomOptions(m map[string]any) EncodeOption {
	return func(c *EncodeConfig) { maps.Copy(c.Custom, m) }
}

// EncodeAs renders the instance with the named encoding.
//
// The encoder must be registered on the instance's (class, type). With
// AsErrorInstance (the default) the encoder must return a string: a
// composite call gets that string back, any other call gets a new *Rendered
// holding it. Without AsErrorInstance the encoder's value is returned as is.
func (i *Instance) EncodeAs(encoding name.Name, opts ...EncodeOption) (any, error) {
	cfg := ResolveEncodeOptions(opts...)

	enc, ok := i.ns.encoder(i.class, i.typ, encoding)
	if !ok {
		return nil, violation(ErrEncoderMissing, "the error type %q (on class %q) does not implement the requested encoding %q",
			i.typ, i.class, encoding)
	}

	i.ns.log.V(2).Info("encoding instance", "reason", i.Reason(), "encoding", encoding,
		"asErrorInstance", cfg.AsErrorInstance, "composite", cfg.Composite)

	out, err := enc(i.context(cfg.AsErrorInstance), cfg.Custom)
	if err != nil {
		return nil, fmt.Errorf("derrclass: encoder %q for %s: %w", encoding, i.Reason(), err)
	}
	if !cfg.AsErrorInstance {
		return out, nil
	}
	msg, ok := out.(string)
	if !ok {
		return nil, violation(ErrEncoderContract, "encoder %q for error type %q on class %q was ordered to return a string but returned %T",
			encoding, i.typ, i.class, out)
	}
	if cfg.Composite {
		return msg, nil
	}
	return i.rendered(encoding, msg), nil
}

// EncodeAsDefault renders the instance with the namespace's default
// encoding. Before a default is set it fails with ErrEncoderMissing.
func (i *Instance) EncodeAsDefault(opts ...EncodeOption) (any, error) {
	return i.EncodeAs(i.ns.DefaultEncoding(), opts...)
}

// Render is EncodeAs with the result forced into a *Rendered. Composite and
// AsErrorInstance options passed in opts are overridden.
func (i *Instance) Render(encoding name.Name, opts ...EncodeOption) (*Rendered, error) {
	opts = append(slices.Clone(opts), WithAsErrorInstance(true), WithComposite(false))
	out, err := i.EncodeAs(encoding, opts...)
	if err != nil {
		return nil, err
	}
	return out.(*Rendered), nil
}

func (i *Instance) context(stringReturn bool) Context {
	o := i.opts.Clone()
	return Context{
		Class:        i.class,
		Type:         i.typ,
		Severity:     i.severity,
		Params:       o.Params,
		Solutions:    o.Solutions,
		Fallback:     o.Fallback,
		Details:      o.Details,
		Options:      i.opts.Clone(),
		StringReturn: stringReturn,
	}
}

func (i *Instance) rendered(encoding name.Name, msg string) *Rendered {
	return &Rendered{
		Reason:   i.Reason(),
		Class:    i.class,
		Type:     i.typ,
		Severity: i.severity,
		Encoding: encoding,
		Message:  msg,
		Options:  i.opts.Clone(),
	}
}
