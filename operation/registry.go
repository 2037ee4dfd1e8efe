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
	"slices"
	"sync"

	"github.com/go-logr/logr"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

// Input is what an operation encoder receives.
type Input struct {
	// Encodings are the component results, in construction order.
	Encodings []any
	// StringReturn is true when the caller asked for an error value; the
	// encoder must then return a string.
	StringReturn bool
}

// Strings returns Encodings as strings. It reports false if any element is
// not a string.
func (in Input) Strings() ([]string, bool) {
	out := make([]string, len(in.Encodings))
	for i, e := range in.Encodings {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Encoder renders one encoding for a whole operation.
type Encoder func(in Input, custom derrclass.CustomOptions) (any, error)

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration (V(1)) and encode (V(2))
// traces.
func WithLogger(l logr.Logger) RegistryOption {
	return func(r *Registry) { r.log = l }
}

// WithDefaultEncoding sets the initial default encoding.
func WithDefaultEncoding(enc name.Name) RegistryOption {
	return func(r *Registry) { r.defaultEncoding = enc }
}

// Registry holds operation-level encoders and a default encoding. A
// Registry is to operations what a Namespace is to instances.
type Registry struct {
	mu              sync.RWMutex
	encoders        map[name.Name]Encoder
	defaultEncoding name.Name
	log             logr.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		encoders: make(map[name.Name]Encoder),
		log:      logr.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// RegisterEncoders merges encoders into the registry, replacing encoders
// with the same name. Empty input, invalid names and nil encoders fail with
// derrclass.ErrMalformedInput and leave the registry unchanged.
func (r *Registry) RegisterEncoders(encoders map[name.Name]Encoder) (*Registry, error) {
	if len(encoders) == 0 {
		return r, fmt.Errorf("%w: no operation encoders given", derrclass.ErrMalformedInput)
	}
	for enc, fn := range encoders {
		if err := name.Validate(enc); err != nil {
			return r, fmt.Errorf("%w: operation encoder name: %w", derrclass.ErrMalformedInput, err)
		}
		if fn == nil {
			return r, fmt.Errorf("%w: operation encoder %q is nil", derrclass.ErrMalformedInput, enc)
		}
	}

	r.mu.Lock()
	maps.Copy(r.encoders, encoders)
	r.mu.Unlock()

	r.log.V(1).Info("registered operation encoders", "encoders", sortedNames(encoders))
	return r, nil
}

// Encoders returns the registered encoding names, sorted.
func (r *Registry) Encoders() []name.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedNames(r.encoders)
}

// DefaultEncoding returns the encoding used by EncodeAsDefault.
func (r *Registry) DefaultEncoding() name.Name {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultEncoding
}

// SetDefaultEncoding sets the encoding used by EncodeAsDefault.
func (r *Registry) SetDefaultEncoding(enc name.Name) *Registry {
	r.mu.Lock()
	r.defaultEncoding = enc
	r.mu.Unlock()
	return r
}

func (r *Registry) encoder(enc name.Name) (Encoder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.encoders[enc]
	return fn, ok
}

func sortedNames[V any](m map[name.Name]V) []name.Name {
	return slices.Sorted(maps.Keys(m))
}
