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

package operation

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

// Operation is an ordered, immutable group of components rendered together.
type Operation struct {
	reg        *Registry
	components []derrclass.Encodable
}

// New builds an operation over components. Every component must implement
// derrclass.Encodable and must not already be a rendered error.
func (r *Registry) New(components ...any) (*Operation, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("%w: an operation needs at least one component", derrclass.ErrCompositionMisuse)
	}
	held := make([]derrclass.Encodable, 0, len(components))
	for i, c := range components {
		switch v := c.(type) {
		case nil:
			return nil, fmt.Errorf("%w: component %d is nil", derrclass.ErrCompositionMisuse, i)
		case error:
			return nil, fmt.Errorf("%w: component %d is an already rendered error (%T), pass the instance instead",
				derrclass.ErrCompositionMisuse, i, v)
		case derrclass.Encodable:
			if isNilPointer(v) {
				return nil, fmt.Errorf("%w: component %d is a nil %T", derrclass.ErrCompositionMisuse, i, v)
			}
			held = append(held, v)
		default:
			return nil, fmt.Errorf("%w: component %d of type %T is not an error instance", derrclass.ErrCompositionMisuse, i, v)
		}
	}
	return &Operation{reg: r, components: held}, nil
}

// isNilPointer reports whether v holds a typed nil pointer.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Components returns the held components in construction order.
func (o *Operation) Components() []derrclass.Encodable {
	return slices.Clone(o.components)
}

// Registry returns the registry the operation was built from.
func (o *Operation) Registry() *Registry { return o.reg }

// Option configures one operation encode call.
type Option func(*config)

type config struct {
	asErrorInstance bool
	component       []derrclass.EncodeOption
	operation       derrclass.CustomOptions
}

// WithAsErrorInstance chooses between a *derrclass.Rendered (true, the
// default) and the operation encoder's raw value. The flag is forwarded to
// every component.
func WithAsErrorInstance(b bool) Option {
	return func(c *config) { c.asErrorInstance = b }
}

// WithComponentOptions passes custom options to every component encoder.
func WithComponentOptions(m map[string]any) Option {
	return func(c *config) {
		c.component = append(c.component, derrclass.WithCustomOptions(m))
	}
}

// WithOperationOptions passes custom options to the operation encoder.
func WithOperationOptions(m map[string]any) Option {
	return func(c *config) { maps.Copy(c.operation, m) }
}

// EncodeAs renders every component with encoding and joins the results with
// the operation encoder of the same name.
func (o *Operation) EncodeAs(encoding name.Name, opts ...Option) (any, error) {
	cfg := config{asErrorInstance: true, operation: derrclass.CustomOptions{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return o.encode(encoding, cfg, false)
}

// EncodeAsDefault renders the operation with the registry's default
// encoding.
func (o *Operation) EncodeAsDefault(opts ...Option) (any, error) {
	return o.EncodeAs(o.reg.DefaultEncoding(), opts...)
}

// Render is EncodeAs with the result forced into a *derrclass.Rendered.
func (o *Operation) Render(encoding name.Name, opts ...Option) (*derrclass.Rendered, error) {
	out, err := o.EncodeAs(encoding, append(slices.Clone(opts), WithAsErrorInstance(true))...)
	if err != nil {
		return nil, err
	}
	return out.(*derrclass.Rendered), nil
}

func (o *Operation) encode(encoding name.Name, cfg config, composite bool) (any, error) {
	componentOpts := append(slices.Clone(cfg.component),
		derrclass.WithAsErrorInstance(cfg.asErrorInstance),
		derrclass.WithComposite(true),
	)

	encodings := make([]any, 0, len(o.components))
	for i, c := range o.components {
		out, err := c.EncodeAs(encoding, componentOpts...)
		if err != nil {
			return nil, fmt.Errorf("derrclass: operation component %d: %w", i, err)
		}
		encodings = append(encodings, out)
	}

	fn, ok := o.reg.encoder(encoding)
	if !ok {
		return nil, fmt.Errorf("%w: the operation does not implement the requested encoding %q",
			derrclass.ErrEncoderMissing, encoding)
	}

	o.reg.log.V(2).Info("encoding operation", "encoding", encoding, "components", len(encodings),
		"asErrorInstance", cfg.asErrorInstance)

	out, err := fn(Input{Encodings: encodings, StringReturn: cfg.asErrorInstance}, cfg.operation)
	if err != nil {
		return nil, fmt.Errorf("derrclass: operation encoder %q: %w", encoding, err)
	}
	if !cfg.asErrorInstance {
		return out, nil
	}
	msg, ok := out.(string)
	if !ok {
		return nil, fmt.Errorf("%w: operation encoder %q was ordered to return a string but returned %T",
			derrclass.ErrEncoderContract, encoding, out)
	}
	if composite {
		return msg, nil
	}
	return derrclass.NewRendered(encoding, msg), nil
}

// AsComponent returns a view of o that can be passed to Registry.New, so
// operations can be nested. Custom encode options reach both the components
// and the operation encoder.
func (o *Operation) AsComponent() derrclass.Encodable { return nested{o} }

type nested struct{ o *Operation }

func (n nested) EncodeAs(encoding name.Name, opts ...derrclass.EncodeOption) (any, error) {
	ec := derrclass.ResolveEncodeOptions(opts...)
	cfg := config{
		asErrorInstance: ec.AsErrorInstance,
		component:       []derrclass.EncodeOption{derrclass.WithCustomOptions(ec.Custom)},
		operation:       maps.Clone(ec.Custom),
	}
	return n.o.encode(encoding, cfg, ec.Composite)
}

func (n nested) EncodeAsDefault(opts ...derrclass.EncodeOption) (any, error) {
	return n.EncodeAs(n.o.reg.DefaultEncoding(), opts...)
}
