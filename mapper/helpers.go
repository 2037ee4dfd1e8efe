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
	"maps"
	"strings"

	"dirpx.dev/derrclass/mapper/internal/segmenttrie"
	"dirpx.dev/derrclass/name"
)

// freeze makes an immutable copy of m, normalizing an empty map to nil.
func freeze[V any](m map[name.Name]V) map[name.Name]V {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}

// buildTries compiles per-class prefix rules into segment tries.
func buildTries[V any](transport string, rules map[name.Name][]prefixRule[V]) (map[name.Name]*segmenttrie.Trie[V], error) {
	out := make(map[name.Name]*segmenttrie.Trie[V], len(rules))
	for c, rs := range rules {
		if len(rs) == 0 {
			continue
		}
		if err := name.Validate(c); err != nil {
			return nil, fmt.Errorf("mapper: invalid %s class %q: %w", transport, c, err)
		}
		t := segmenttrie.New[V]()
		for _, r := range rs {
			p, err := normalizePrefix(r.pattern)
			if err != nil {
				return nil, fmt.Errorf("mapper: invalid %s prefix %q for class %q: %w", transport, r.pattern, c, err)
			}
			if err := t.Insert(p, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert %s prefix %q for class %q: %w", transport, p, c, err)
			}
		}
		out[c] = t
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// normalizePrefix trims spaces and rejects empty and all-wildcard patterns.
// Segment syntax is checked by the trie.
func normalizePrefix(raw string) (string, error) {
	p := strings.Trim(strings.TrimSpace(raw), ".")
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	for seg := range strings.SplitSeq(p, ".") {
		if seg != "*" {
			return p, nil
		}
	}
	return "", fmt.Errorf("prefix cannot consist of '*' only")
}
