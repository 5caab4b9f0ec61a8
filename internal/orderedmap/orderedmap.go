/**
 * Copyright (c) 2024, the mearie authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package orderedmap provides a name-keyed map that remembers insertion
// order, generalizing the teacher's TypeMap (graphql/schema.go: a
// map[string]Type populated incrementally, walked in whatever order
// range happens to produce) into something that iterates deterministically.
// The schema index, document index and generator all depend on
// insertion-order iteration (spec §9 "Deterministic iteration"): a plain Go
// map's range order is randomized, so every one of those packages keeps its
// lookup table in one of these instead.
package orderedmap

// Map is a hash map that also remembers the order keys were first inserted
// in. The zero value is not ready to use; call New.
type Map[V any] struct {
	index map[string]int
	keys  []string
	vals  []V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// Set inserts or overwrites the value stored under key. Overwriting an
// existing key does not change its position in iteration order.
func (m *Map[V]) Set(key string, value V) {
	if i, ok := m.index[key]; ok {
		m.vals[i] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, value)
}

// Get returns the value stored under key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.vals[i], true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Len reports the number of entries.
func (m *Map[V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated.
func (m *Map[V]) Keys() []string {
	return m.keys
}

// Values returns the values in insertion (key) order. The returned slice
// must not be mutated.
func (m *Map[V]) Values() []V {
	return m.vals
}

// Each calls fn for every entry in insertion order.
func (m *Map[V]) Each(fn func(key string, value V)) {
	for i, k := range m.keys {
		fn(k, m.vals[i])
	}
}
