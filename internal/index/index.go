// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"slices"
	"sort"
)

type keyed[V any] struct {
	key   string
	value V
}

// Index is a generic sorted array index over string keys.
type Index[V any] struct {
	// sorted by key. Values with equal keys keep their original order.
	entries []keyed[V]

	cmp func(string, string) int
}

// New creates an index over values using key to compute each value's search
// key. cmp(a, b) should return a negative number when a < b, a positive
// number when a > b and zero when a == b.
func New[V any](values []V, key func(V) string, cmp func(string, string) int) *Index[V] {
	entries := make([]keyed[V], 0, len(values))
	for _, v := range values {
		entries = append(entries, keyed[V]{key: key(v), value: v})
	}
	slices.SortStableFunc(entries, func(a, b keyed[V]) int {
		return cmp(a.key, b.key)
	})

	return &Index[V]{
		entries: entries,
		cmp:     cmp,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search performs a binary search over the index and returns the values whose
// key matches query in their original order.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(query, idx.entries[i].key)
	})
	if !found {
		return nil
	}

	var result []V
	for j := i; j < len(idx.entries) && idx.cmp(query, idx.entries[j].key) == 0; j++ {
		result = append(result, idx.entries[j].value)
	}
	return result
}
