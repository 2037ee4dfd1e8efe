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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/apis"
	"dirpx.dev/derrclass/mapper/internal/segmenttrie"
	"dirpx.dev/derrclass/name"
	"dirpx.dev/derrclass/reason"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process:
//
//  1. Apply user-provided options (defaults, overrides, prefix rules).
//  2. Seed the library defaults underneath them, unless WithoutDefaults
//     was given.
//  3. Validate class names and prefixes and build per-class segment tries.
//  4. Freeze all maps into fresh copies.
//
// Errors indicate invalid class names or prefixes.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if !b.skipDefaults {
		b.seed()
	}

	for _, m := range []map[name.Name]int{b.httpDefaults, b.httpOverride} {
		if err := validateClasses(m); err != nil {
			return nil, err
		}
	}
	for _, m := range []map[name.Name]codes.Code{b.grpcDefaults, b.grpcOverride} {
		if err := validateClasses(m); err != nil {
			return nil, err
		}
	}

	httpTrie, err := buildTries("HTTP", b.httpPrefixes)
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTries("gRPC", b.grpcPrefixes)
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpDefault:  freeze(b.httpDefaults),
		grpcDefault:  freeze(b.grpcDefaults),
		httpOverride: freeze(b.httpOverride),
		grpcOverride: freeze(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is New that panics on error. Intended for package-level vars.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func validateClasses[V any](m map[name.Name]V) error {
	for c := range m {
		if err := name.Validate(c); err != nil {
			return fmt.Errorf("mapper: invalid class %q: %w", c, err)
		}
	}
	return nil
}

// mapper combines per-class defaults, per-class overrides and per-class
// segment tries over the rest of the reason. Safe for concurrent use.
type mapper struct {
	httpDefault map[name.Name]int
	grpcDefault map[name.Name]codes.Code

	// Overrides take precedence over everything else for their class.
	httpOverride map[name.Name]int
	grpcOverride map[name.Name]codes.Code

	httpTrie map[name.Name]*segmenttrie.Trie[int]
	grpcTrie map[name.Name]*segmenttrie.Trie[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// source names the tier a status was resolved from.
type source string

const (
	sourceOverride source = "override"
	sourcePrefix   source = "prefix"
	sourceDefault  source = "default"
	sourceFallback source = "fallback"
)

// resolve walks the tiers in order for one transport.
func resolve[V any](
	r reason.Reason,
	override, defaults map[name.Name]V,
	tries map[name.Name]*segmenttrie.Trie[V],
	fallback V,
) (V, source, string) {
	c := r.Class()
	if v, ok := override[c]; ok {
		return v, sourceOverride, ""
	}
	if rest := r.Rest(); rest != "" {
		if v, ok, pat := tries[c].MatchWithPattern(rest); ok {
			return v, sourcePrefix, pat
		}
	}
	if v, ok := defaults[c]; ok {
		return v, sourceDefault, ""
	}
	return fallback, sourceFallback, ""
}

// HTTPStatus resolves an HTTP status for r. It never returns zero.
func (m *mapper) HTTPStatus(r reason.Reason) int {
	v, _, _ := resolve(r, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	return v
}

// GRPCStatus resolves a gRPC status for r.
func (m *mapper) GRPCStatus(r reason.Reason) codes.Code {
	v, _, _ := resolve(r, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	return v
}

// Status resolves both transports for r.
func (m *mapper) Status(r reason.Reason) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(r),
		GRPC: m.GRPCStatus(r),
	}
}

// Explain produces a textual trace of how the statuses for r were chosen.
//
// Example output:
//
//	reason="user.authentication.error"
//	http: source=prefix pattern="authentication" -> 401
//	grpc: source=prefix pattern="authentication" -> UNAUTHENTICATED(16)
func (m *mapper) Explain(r reason.Reason) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "reason=%q\n", r)

	hv, hsrc, hpat := resolve(r, m.httpOverride, m.httpDefault, m.httpTrie, m.fallbackHTTP)
	_, _ = fmt.Fprintf(&b, "http: %s -> %d\n", describe(hsrc, hpat), hv)

	gv, gsrc, gpat := resolve(r, m.grpcOverride, m.grpcDefault, m.grpcTrie, m.fallbackGRPC)
	_, _ = fmt.Fprintf(&b, "grpc: %s -> %s(%d)", describe(gsrc, gpat), grpcName(gv), int(gv))

	return b.String()
}

func describe(src source, pattern string) string {
	if src == sourcePrefix {
		return fmt.Sprintf("source=%s pattern=%q", src, pattern)
	}
	return "source=" + string(src)
}

// grpcName renders a code the way the gRPC wire names it, e.g. "INVALID_ARGUMENT".
func grpcName(c codes.Code) string {
	var b strings.Builder
	var prev rune
	for _, ch := range c.String() {
		if ch >= 'A' && ch <= 'Z' && prev >= 'a' && prev <= 'z' {
			b.WriteByte('_')
		}
		b.WriteRune(ch)
		prev = ch
	}
	return strings.ToUpper(b.String())
}
