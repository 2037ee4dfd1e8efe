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
	"math/rand/v2"
	"strings"
	"testing"
)

const (
	letters   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	nameBytes = letters + "0123456789_-"
)

// genName returns a random valid segment of length n.
func genName(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.WriteByte(letters[rng.IntN(len(letters))])
	for i := 1; i < n; i++ {
		b.WriteByte(nameBytes[rng.IntN(len(nameBytes))])
	}
	return b.String()
}

// makeKey builds a dotted key of depth segments, using "*" for every
// wildcardEvery-th segment when wildcardEvery > 0.
func makeKey(rng *rand.Rand, depth, wildcardEvery int) string {
	segs := make([]string, depth)
	for i := range segs {
		if wildcardEvery > 0 && (i+1)%wildcardEvery == 0 {
			segs[i] = "*"
			continue
		}
		segs[i] = genName(rng, 3+rng.IntN(6))
	}
	return strings.Join(segs, ".")
}

// buildTrie inserts n prefixes and returns keys that extend each prefix by
// one segment, plus a few misses.
func buildTrie(b *testing.B, n, depth, wildcardEvery int) (*Trie[int], []string) {
	b.Helper()
	rng := rand.New(rand.NewPCG(1, 2))
	tr := New[int]()
	keys := make([]string, 0, n+n/8+1)
	for i := range n {
		p := makeKey(rng, depth, wildcardEvery)
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert %q: %v", p, err)
		}
		parts := strings.Split(p, ".")
		for j := range parts {
			if parts[j] == "*" {
				parts[j] = genName(rng, 4)
			}
		}
		keys = append(keys, strings.Join(parts, ".")+"."+genName(rng, 5))
	}
	for range n/8 + 1 {
		keys = append(keys, makeKey(rng, depth+1, 0))
	}
	return tr, keys
}

func BenchmarkTrieInsert_N64_Depth2(b *testing.B)   { benchInsert(b, 64, 2, 0) }
func BenchmarkTrieInsert_N1024_Depth2(b *testing.B) { benchInsert(b, 1024, 2, 0) }
func BenchmarkTrieInsert_N1024_Depth3(b *testing.B) { benchInsert(b, 1024, 3, 2) }

func benchInsert(b *testing.B, n, depth, wildcardEvery int) {
	rng := rand.New(rand.NewPCG(3, 4))
	prefixes := make([]string, n)
	for i := range prefixes {
		prefixes[i] = makeKey(rng, depth, wildcardEvery)
	}
	b.ReportAllocs()
	for b.Loop() {
		tr := New[int]()
		for j, p := range prefixes {
			if err := tr.Insert(p, j); err != nil {
				b.Fatalf("insert: %v", err)
			}
		}
	}
}

func BenchmarkTrieMatch_N64_Depth2(b *testing.B)                  { benchMatch(b, 64, 2, 0) }
func BenchmarkTrieMatch_N1024_Depth2(b *testing.B)                { benchMatch(b, 1024, 2, 0) }
func BenchmarkTrieMatch_N1024_Depth3_WildcardEvery2(b *testing.B) { benchMatch(b, 1024, 3, 2) }

func benchMatch(b *testing.B, n, depth, wildcardEvery int) {
	tr, keys := buildTrie(b, n, depth, wildcardEvery)
	b.ReportAllocs()
	i, sum := 0, 0
	for b.Loop() {
		if v, ok := tr.Match(keys[i]); ok {
			sum += v
		}
		if i++; i == len(keys) {
			i = 0
		}
	}
	if sum == 0 {
		b.Fatal("no key matched")
	}
}

func BenchmarkTrieMatchParallel_N1024_Depth2(b *testing.B) {
	tr, keys := buildTrie(b, 1024, 2, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewPCG(5, 6))
		for pb.Next() {
			_, _ = tr.Match(keys[rng.IntN(len(keys))])
		}
	})
}
