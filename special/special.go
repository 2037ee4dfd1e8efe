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

// Package special provides single-taxonomy error classes.
//
// A special Class wraps a private namespace holding exactly one class, one
// type and one severity, all named after the Class. It suits catch-all
// errors such as "generic" or "unknown" that do not fit a richer taxonomy.
package special

import (
	"fmt"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

// Class is a facade over a namespace seeded with a single class, type and
// severity named after it.
type Class struct {
	name            name.Name
	ns              *derrclass.Namespace
	defaultEncoding name.Name
}

// New creates a special class called className. The options configure the
// internal namespace.
func New(className name.Name, opts ...derrclass.NamespaceOption) (*Class, error) {
	if err := name.Validate(className); err != nil {
		return nil, fmt.Errorf("%w: special class name: %w", derrclass.ErrMalformedInput, err)
	}
	ns := derrclass.New(opts...)
	_, err := ns.RegisterClasses(map[name.Name]derrclass.ClassData{
		className: {Types: map[name.Name]derrclass.TypeData{
			className: {Severities: []name.Name{className}},
		}},
	})
	if err != nil {
		return nil, err
	}
	return &Class{name: className, ns: ns, defaultEncoding: ns.DefaultEncoding()}, nil
}

// Name returns the class name, which is also its type and severity.
func (c *Class) Name() name.Name { return c.name }

// Namespace returns the internal namespace.
func (c *Class) Namespace() *derrclass.Namespace { return c.ns }

// RegisterEncoders adds encoders to the single seeded type.
func (c *Class) RegisterEncoders(encoders map[name.Name]derrclass.Encoder) (*Class, error) {
	_, err := c.ns.RegisterEncodersOnTypes(derrclass.EncodersRegistration{
		Class:    c.name,
		Types:    []name.Name{c.name},
		Encoders: encoders,
	})
	return c, err
}

// DefaultEncoding returns the default encoding of the class.
func (c *Class) DefaultEncoding() name.Name { return c.defaultEncoding }

// SetDefaultEncoding sets the default encoding on the class and its
// internal namespace.
func (c *Class) SetDefaultEncoding(enc name.Name) *Class {
	c.defaultEncoding = enc
	c.ns.SetDefaultEncoding(enc)
	return c
}

// New builds an instance of the class.
func (c *Class) New(opts ...derrclass.Option) (*Instance, error) {
	inst, err := c.ns.NewInstance(c.name, c.name, c.name, opts...)
	if err != nil {
		return nil, err
	}
	return &Instance{class: c, inst: inst}, nil
}

// Instance is one occurrence of a special class.
type Instance struct {
	class *Class
	inst  *derrclass.Instance
}

var _ derrclass.Encodable = (*Instance)(nil)

// Class returns the special class the instance belongs to.
func (i *Instance) Class() *Class { return i.class }

// Unwrap returns the underlying namespace instance.
func (i *Instance) Unwrap() *derrclass.Instance { return i.inst }

// EncodeAs forwards to the wrapped instance.
func (i *Instance) EncodeAs(encoding name.Name, opts ...derrclass.EncodeOption) (any, error) {
	return i.inst.EncodeAs(encoding, opts...)
}

// EncodeAsDefault forwards to the wrapped instance.
func (i *Instance) EncodeAsDefault(opts ...derrclass.EncodeOption) (any, error) {
	return i.inst.EncodeAsDefault(opts...)
}

// Render forwards to the wrapped instance.
func (i *Instance) Render(encoding name.Name, opts ...derrclass.EncodeOption) (*derrclass.Rendered, error) {
	return i.inst.Render(encoding, opts...)
}
