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
	"slices"

	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/reason"
)

// Instance is one concrete error event, validated against its namespace at
// construction. Instances are immutable; encoding never changes them.
type Instance struct {
	ns       *Namespace
	class    name.Name
	typ      name.Name
	severity name.Name
	opts     ErrorOptions
}

// NewInstance validates and builds an instance. Validation happens in a fixed
// order and stops at the first violation:
//
//  1. the class exists;
//  2. the type exists on the class;
//  3. the severity is listed on the type;
//  4. solutions, fallback and details are well-formed;
//  5. parameters satisfy the type's specs, in declaration order.
func (ns *Namespace) NewInstance(class, typ, severity name.Name, opts ...Option) (*Instance, error) {
	o := buildOptions(opts)

	ns.mu.RLock()
	cd, ok := ns.classes[class]
	if !ok {
		ns.mu.RUnlock()
		return nil, violation(ErrSchemaViolation, "error class %q doesn't exist, register it first or use a different error class", class)
	}
	td, ok := cd.types[typ]
	if !ok {
		ns.mu.RUnlock()
		return nil, violation(ErrSchemaViolation, "error type %q doesn't exist on error class %q, register it first or use a different error type", typ, class)
	}
	severities := td.severities
	params := td.params
	ns.mu.RUnlock()

	if !slices.Contains(severities, severity) {
		return nil, violation(ErrSchemaViolation, "error severity %q doesn't exist on error class %q and error type %q", severity, class, typ)
	}
	if err := checkShape(o); err != nil {
		return nil, err
	}
	for _, p := range params {
		if err := p.check(o.Params); err != nil {
			return nil, violation(err, "for type %q on error class %q", typ, class)
		}
	}

	return &Instance{ns: ns, class: class, typ: typ, severity: severity, opts: o}, nil
}

// checkShape validates the non-parameter options.
func checkShape(o ErrorOptions) error {
	if o.Solutions != nil {
		if len(o.Solutions) == 0 {
			return violation(ErrOptionShape, "option solutions must be a non-empty list of non-empty strings")
		}
		for _, s := range o.Solutions {
			if s == "" {
				return violation(ErrOptionShape, "option solutions must be a non-empty list of non-empty strings")
			}
		}
	}
	// Fallback and Details have no malformed state beyond being set; the
	// empty string means "not provided".
	return nil
}

// Namespace returns the namespace the instance was validated against.
func (i *Instance) Namespace() *Namespace { return i.ns }

// Class returns the error class.
func (i *Instance) Class() name.Name { return i.class }

// Type returns the error type.
func (i *Instance) Type() name.Name { return i.typ }

// Severity returns the severity.
func (i *Instance) Severity() name.Name { return i.severity }

// Reason returns the "class.type.severity" path of the instance.
func (i *Instance) Reason() reason.Reason {
	return reason.Of(i.class, i.typ, i.severity)
}

// Options returns a copy of the instance's options.
func (i *Instance) Options() ErrorOptions { return i.opts.Clone() }
