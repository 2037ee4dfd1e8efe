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
	"sync"

	"github.com/go-logr/logr"

	"dirpx.dev/derrclass/name"
)

// ClassData is the registration shape of one error class.
type ClassData struct {
	Types map[name.Name]TypeData
}

// TypeData is the registration shape of one error type.
type TypeData struct {
	// Severities lists the severities instances of this type may carry.
	Severities []name.Name
	// Params are checked in declaration order at construction time.
	Params []ParamSpec
	// Encoders maps encoding names to their implementation for this type.
	Encoders map[name.Name]Encoder
}

// ConflictPolicy decides what happens when an encoder is registered under a
// name that already exists on a type.
type ConflictPolicy uint8

const (
	// Overwrite replaces the existing encoder (the default).
	Overwrite ConflictPolicy = iota
	// RejectConflicts fails the registration with ErrSchemaViolation.
	RejectConflicts
)

// NamespaceOption configures a Namespace at creation time.
type NamespaceOption func(*Namespace)

// WithLogger sets the logger used for registration (V(1)) and encode (V(2))
// traces. Failures are returned, never logged.
func WithLogger(l logr.Logger) NamespaceOption {
	return func(ns *Namespace) { ns.log = l }
}

// WithEncoderConflict sets the policy for re-registering an encoder name.
func WithEncoderConflict(p ConflictPolicy) NamespaceOption {
	return func(ns *Namespace) { ns.conflict = p }
}

// WithDefaultEncoding presets the default encoding.
func WithDefaultEncoding(enc name.Name) NamespaceOption {
	return func(ns *Namespace) { ns.defaultEncoding = enc }
}

// Namespace is an isolated registry of classes, types, severities, parameter
// specs and encoders. Create one per taxonomy with New.
//
// A namespace is meant to be populated by one owner. Its maps are still
// guarded by a lock so that encoding from other goroutines while a late
// registration happens cannot corrupt them.
type Namespace struct {
	mu              sync.RWMutex
	classes         map[name.Name]*classData
	defaultEncoding name.Name
	conflict        ConflictPolicy
	log             logr.Logger
}

type classData struct {
	types map[name.Name]*typeData
}

type typeData struct {
	severities []name.Name
	params     []ParamSpec
	encoders   map[name.Name]Encoder
}

// New creates an empty namespace. Namespaces never share state.
func New(opts ...NamespaceOption) *Namespace {
	ns := &Namespace{
		classes: make(map[name.Name]*classData),
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(ns)
	}
	return ns
}

// DefaultEncoding returns the encoding used by EncodeAsDefault. It is empty
// until set.
func (ns *Namespace) DefaultEncoding() name.Name {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.defaultEncoding
}

// SetDefaultEncoding sets the encoding used by EncodeAsDefault. The encoding
// is not checked against any type; a missing encoder surfaces at encode time.
func (ns *Namespace) SetDefaultEncoding(enc name.Name) *Namespace {
	ns.mu.Lock()
	ns.defaultEncoding = enc
	ns.mu.Unlock()
	return ns
}

// RegisterClasses merges classes into the namespace. An existing class with
// the same name is replaced as a whole.
func (ns *Namespace) RegisterClasses(classes map[name.Name]ClassData) (*Namespace, error) {
	if len(classes) == 0 {
		return ns, violation(ErrMalformedInput, "no classes provided")
	}
	built := make(map[name.Name]*classData, len(classes))
	for c, cd := range classes {
		if err := name.Validate(c); err != nil {
			return ns, violation(ErrMalformedInput, "class %q is not a valid name", c)
		}
		types, err := buildTypes(c, cd.Types)
		if err != nil {
			return ns, err
		}
		built[c] = &classData{types: types}
	}

	ns.mu.Lock()
	maps.Copy(ns.classes, built)
	ns.mu.Unlock()

	ns.log.V(1).Info("registered classes", "classes", sortedNames(classes))
	return ns, nil
}

// TypesRegistration is the input of RegisterTypesOnClass.
type TypesRegistration struct {
	Class name.Name
	Types map[name.Name]TypeData
}

// RegisterTypesOnClass merges types into an existing class. An existing type
// with the same name is replaced as a whole.
func (ns *Namespace) RegisterTypesOnClass(r TypesRegistration) (*Namespace, error) {
	if len(r.Types) == 0 {
		return ns, violation(ErrMalformedInput, "no types provided")
	}
	if err := name.Validate(r.Class); err != nil {
		return ns, violation(ErrMalformedInput, "invalid class to register on provided")
	}
	types, err := buildTypes(r.Class, r.Types)
	if err != nil {
		return ns, err
	}

	ns.mu.Lock()
	cd, ok := ns.classes[r.Class]
	if !ok {
		ns.mu.Unlock()
		return ns, violation(ErrSchemaViolation, "error class %q to register types on has not been registered", r.Class)
	}
	maps.Copy(cd.types, types)
	ns.mu.Unlock()

	ns.log.V(1).Info("registered types", "class", r.Class, "types", sortedNames(r.Types))
	return ns, nil
}

// SeveritiesRegistration is the input of RegisterSeveritiesOnTypes.
type SeveritiesRegistration struct {
	Class      name.Name
	Types      []name.Name
	Severities []name.Name
}

// RegisterSeveritiesOnTypes appends severities to existing types. Severities
// a type already lists are skipped.
func (ns *Namespace) RegisterSeveritiesOnTypes(r SeveritiesRegistration) (*Namespace, error) {
	if len(r.Severities) == 0 {
		return ns, violation(ErrMalformedInput, "no severities provided")
	}
	for _, s := range r.Severities {
		if err := name.Validate(s); err != nil {
			return ns, violation(ErrMalformedInput, "severity %q is not a valid name", s)
		}
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	targets, err := ns.targetsLocked(r.Class, r.Types)
	if err != nil {
		return ns, err
	}
	for _, td := range targets {
		for _, s := range r.Severities {
			if !slices.Contains(td.severities, s) {
				td.severities = append(td.severities, s)
			}
		}
	}

	ns.log.V(1).Info("registered severities", "class", r.Class, "types", r.Types, "severities", r.Severities)
	return ns, nil
}

// EncodersRegistration is the input of RegisterEncodersOnTypes.
type EncodersRegistration struct {
	Class    name.Name
	Types    []name.Name
	Encoders map[name.Name]Encoder
}

// RegisterEncodersOnTypes merges encoders into existing types. With the
// default Overwrite policy an encoder name that already exists is replaced;
// with RejectConflicts the whole registration fails and nothing is changed.
func (ns *Namespace) RegisterEncodersOnTypes(r EncodersRegistration) (*Namespace, error) {
	if len(r.Encoders) == 0 {
		return ns, violation(ErrMalformedInput, "no encoders provided")
	}
	if err := validateEncoders(r.Encoders); err != nil {
		return ns, err
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	targets, err := ns.targetsLocked(r.Class, r.Types)
	if err != nil {
		return ns, err
	}
	if ns.conflict == RejectConflicts {
		for i, td := range targets {
			for enc := range r.Encoders {
				if _, exists := td.encoders[enc]; exists {
					return ns, violation(ErrSchemaViolation, "encoder %q is already registered on type %q of class %q", enc, r.Types[i], r.Class)
				}
			}
		}
	}
	for _, td := range targets {
		if td.encoders == nil {
			td.encoders = make(map[name.Name]Encoder, len(r.Encoders))
		}
		maps.Copy(td.encoders, r.Encoders)
	}

	ns.log.V(1).Info("registered encoders", "class", r.Class, "types", r.Types, "encoders", sortedNames(r.Encoders))
	return ns, nil
}

// Classes returns a deep copy of the registry. Registration is a pure
// structural merge, so what was registered is exactly what is returned.
func (ns *Namespace) Classes() map[name.Name]ClassData {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	out := make(map[name.Name]ClassData, len(ns.classes))
	for c, cd := range ns.classes {
		types := make(map[name.Name]TypeData, len(cd.types))
		for t, td := range cd.types {
			types[t] = td.export()
		}
		out[c] = ClassData{Types: types}
	}
	return out
}

// Lookup returns a copy of one registered type.
func (ns *Namespace) Lookup(class, typ name.Name) (TypeData, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	cd, ok := ns.classes[class]
	if !ok {
		return TypeData{}, false
	}
	td, ok := cd.types[typ]
	if !ok {
		return TypeData{}, false
	}
	return td.export(), true
}

// targetsLocked resolves the class and every listed type, failing if any is
// unknown. The caller must hold ns.mu.
func (ns *Namespace) targetsLocked(class name.Name, types []name.Name) ([]*typeData, error) {
	if err := name.Validate(class); err != nil {
		return nil, violation(ErrMalformedInput, "invalid class to register on provided")
	}
	cd, ok := ns.classes[class]
	if !ok {
		return nil, violation(ErrSchemaViolation, "error class %q to register on has not been registered", class)
	}
	if len(types) == 0 {
		return nil, violation(ErrMalformedInput, "invalid types to register on error class %q", class)
	}
	out := make([]*typeData, 0, len(types))
	for _, t := range types {
		td, ok := cd.types[t]
		if !ok {
			return nil, violation(ErrSchemaViolation, "error type %q has not been registered on error class %q", t, class)
		}
		out = append(out, td)
	}
	return out, nil
}

// encoder resolves the (class, type, encoding) dispatch entry.
func (ns *Namespace) encoder(class, typ, enc name.Name) (Encoder, bool) {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	cd, ok := ns.classes[class]
	if !ok {
		return nil, false
	}
	td, ok := cd.types[typ]
	if !ok {
		return nil, false
	}
	e, ok := td.encoders[enc]
	return e, ok
}

func (td *typeData) export() TypeData {
	return TypeData{
		Severities: slices.Clone(td.severities),
		Params:     slices.Clone(td.params),
		Encoders:   maps.Clone(td.encoders),
	}
}

// buildTypes validates and copies registration data so that later changes
// to the caller's maps and slices are not observed.
func buildTypes(class name.Name, in map[name.Name]TypeData) (map[name.Name]*typeData, error) {
	out := make(map[name.Name]*typeData, len(in))
	for t, td := range in {
		if err := name.Validate(t); err != nil {
			return nil, violation(ErrMalformedInput, "type %q on class %q is not a valid name", t, class)
		}
		for _, s := range td.Severities {
			if err := name.Validate(s); err != nil {
				return nil, violation(ErrMalformedInput, "severity %q on type %q of class %q is not a valid name", s, t, class)
			}
		}
		seen := make(map[string]struct{}, len(td.Params))
		for _, p := range td.Params {
			if err := name.Validate(name.Name(p.Name)); err != nil {
				return nil, violation(ErrMalformedInput, "parameter %q on type %q of class %q is not a valid name", p.Name, t, class)
			}
			if _, dup := seen[p.Name]; dup {
				return nil, violation(ErrMalformedInput, "parameter %q is declared twice on type %q of class %q", p.Name, t, class)
			}
			if int(p.Kind) >= len(kindNames) {
				return nil, violation(ErrMalformedInput, "parameter %q on type %q of class %q has an unknown kind", p.Name, t, class)
			}
			seen[p.Name] = struct{}{}
		}
		if err := validateEncoders(td.Encoders); err != nil {
			return nil, err
		}
		out[t] = &typeData{
			severities: slices.Clone(td.Severities),
			params:     slices.Clone(td.Params),
			encoders:   maps.Clone(td.Encoders),
		}
	}
	return out, nil
}

func validateEncoders(encoders map[name.Name]Encoder) error {
	for enc, fn := range encoders {
		if err := name.Validate(enc); err != nil {
			return violation(ErrMalformedInput, "encoding %q is not a valid name", enc)
		}
		if fn == nil {
			return violation(ErrMalformedInput, "encoder %q is nil", enc)
		}
	}
	return nil
}

func sortedNames[V any](m map[name.Name]V) []name.Name {
	return slices.Sorted(maps.Keys(m))
}
