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
	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/name"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the default HTTP status of a class.
func WithHTTPDefault(class name.Name, status int) Option {
	return func(b *builder) { b.httpDefaults[class] = status }
}

// WithGRPCDefault sets or replaces the default gRPC status of a class.
func WithGRPCDefault(class name.Name, c codes.Code) Option {
	return func(b *builder) { b.grpcDefaults[class] = c }
}

// WithHTTPOverride forces the HTTP status of every reason in class,
// prefix rules included.
func WithHTTPOverride(class name.Name, status int) Option {
	return func(b *builder) { b.httpOverride[class] = status }
}

// WithGRPCOverride forces the gRPC status of every reason in class.
func WithGRPCOverride(class name.Name, c codes.Code) Option {
	return func(b *builder) { b.grpcOverride[class] = c }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule for class. The
// pattern is matched against the rest of the reason, e.g. "input" or
// "*.critical".
func WithHTTPPrefix(class name.Name, pattern string, status int) Option {
	return func(b *builder) {
		b.httpPrefixes[class] = append(b.httpPrefixes[class], prefixRule[int]{pattern, status})
	}
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule for class.
func WithGRPCPrefix(class name.Name, pattern string, c codes.Code) Option {
	return func(b *builder) {
		b.grpcPrefixes[class] = append(b.grpcPrefixes[class], prefixRule[codes.Code]{pattern, c})
	}
}

// WithFallback replaces the statuses used for classes without any rule.
func WithFallback(status int, c codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = status
		b.fallbackGRPC = c
	}
}

// WithoutDefaults builds a mapper from the given options only.
func WithoutDefaults() Option {
	return func(b *builder) { b.skipDefaults = true }
}
