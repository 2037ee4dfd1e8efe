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

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys such as
// "authentication.error". Each node is one segment; the wildcard "*" matches
// exactly one segment. Lookups return the deepest matching rule.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the dotted prefix as inserted, kept for Explain output.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty segments, contains invalid characters, or consists only of
// wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix:
//
//	"authentication"
//	"input.warning"
//	"*.critical"
//
// Inserting the same prefix twice replaces the value.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil || prefix == "" {
		return ErrInvalidPrefix
	}
	segs := strings.Split(prefix, ".")
	allWild := true
	for _, s := range segs {
		if !validSegment(s, true) {
			return ErrInvalidPrefix
		}
		if s != "*" {
			allWild = false
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, ok := cur.children[s]
		if !ok {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Len reports the number of stored prefixes.
func (t *Trie[T]) Len() int {
	if t == nil {
		return 0
	}
	n := 0
	if t.hasVal {
		n++
	}
	for _, c := range t.children {
		n += c.Len()
	}
	return n
}

// Match returns the value of the deepest prefix matching key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched prefix as it was
// inserted. At equal depth an exact segment beats the wildcard.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	var best *Trie[T]
	bestDepth := -1

	var walk func(n *Trie[T], off, depth int)
	walk = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			best, bestDepth = n, depth
		}
		if off >= len(key) {
			return
		}
		end := segmentEnd(key, off)
		if end < 0 {
			return
		}
		seg := key[off:end]
		next := end
		if next < len(key) {
			next++ // skip '.'
		}
		if c, ok := n.children[seg]; ok {
			walk(c, next, depth+1)
		}
		if c, ok := n.children["*"]; ok {
			walk(c, next, depth+1)
		}
	}
	walk(t, 0, 0)

	if best == nil {
		return zero, false, ""
	}
	return best.val, true, best.pattern
}

// segmentEnd returns the end offset of the segment starting at off, or -1
// if the segment is not a valid name.
func segmentEnd(key string, off int) int {
	if !isLetter(key[off]) {
		return -1
	}
	i := off + 1
	for i < len(key) && key[i] != '.' {
		if !isNameByte(key[i]) {
			return -1
		}
		i++
	}
	return i
}

// validSegment reports whether seg is a name ([A-Za-z][A-Za-z0-9_-]*) or,
// when allowed, the wildcard.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	return segmentEnd(seg, 0) == len(seg)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}
