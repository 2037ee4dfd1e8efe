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
	"net/http"

	"google.golang.org/grpc/codes"

	"dirpx.dev/derrclass/name"
)

type prefixRule[V any] struct {
	// pattern is the dot-separated rest-of-reason prefix (may contain "*").
	pattern string
	val     V
}

type builder struct {
	httpDefaults map[name.Name]int
	grpcDefaults map[name.Name]codes.Code

	httpOverride map[name.Name]int
	grpcOverride map[name.Name]codes.Code

	httpPrefixes map[name.Name][]prefixRule[int]
	grpcPrefixes map[name.Name][]prefixRule[codes.Code]

	fallbackHTTP int
	fallbackGRPC codes.Code

	skipDefaults bool
}

func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[name.Name]int, len(defaultHTTP)),
		grpcDefaults: make(map[name.Name]codes.Code, len(defaultGRPC)),
		httpOverride: make(map[name.Name]int),
		grpcOverride: make(map[name.Name]codes.Code),
		httpPrefixes: make(map[name.Name][]prefixRule[int]),
		grpcPrefixes: make(map[name.Name][]prefixRule[codes.Code]),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}

// seed copies the library defaults under any user-provided rules. Default
// prefixes come first so a user rule for the same pattern replaces them.
func (b *builder) seed() {
	for c, v := range defaultHTTP {
		if _, ok := b.httpDefaults[c]; !ok {
			b.httpDefaults[c] = v
		}
	}
	for c, v := range defaultGRPC {
		if _, ok := b.grpcDefaults[c]; !ok {
			b.grpcDefaults[c] = v
		}
	}
	for _, p := range defaultPrefixes {
		b.httpPrefixes[p.class] = append([]prefixRule[int]{{p.pattern, p.http}}, b.httpPrefixes[p.class]...)
		b.grpcPrefixes[p.class] = append([]prefixRule[codes.Code]{{p.pattern, p.grpc}}, b.grpcPrefixes[p.class]...)
	}
}
