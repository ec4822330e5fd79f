// SPDX-License-Identifier: MIT

// Package ordered provides a string-keyed map that iterates in the same order
// as a JavaScript object: canonical array-index keys first, ascending, then
// every other key in insertion order.
package ordered

import (
	"bytes"
	"iter"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Map is an insertion-ordered map. The zero value is ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
	// number of leading index keys in keys
	indexed int
}

// New returns an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// IsIndex reports whether key is a canonical array index ("0", "7", "42" but not "07" or "-1").
func IsIndex(key string) bool {
	if key == "" || len(key) > 10 {
		return false
	}
	if len(key) > 1 && key[0] == '0' {
		return false
	}
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return false
	}
	return n < 1<<32-1
}

// Set stores value under key. An existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; ok {
		m.values[key] = value
		return
	}
	m.values[key] = value

	if !IsIndex(key) {
		m.keys = append(m.keys, key)
		return
	}

	n, _ := strconv.ParseUint(key, 10, 64)
	pos := sort.Search(m.indexed, func(i int) bool {
		k, _ := strconv.ParseUint(m.keys[i], 10, 64)
		return k > n
	})
	m.keys = append(m.keys, "")
	copy(m.keys[pos+1:], m.keys[pos:])
	m.keys[pos] = key
	m.indexed++
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil || m.values == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key if present.
func (m *Map[V]) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			if i < m.indexed {
				m.indexed--
			}
			return
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in iteration order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates over the entries in order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[V]) Clone() *Map[V] {
	out := New[V]()
	if m == nil {
		return out
	}
	out.keys = append(out.keys, m.keys...)
	out.indexed = m.indexed
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// Assign copies every entry of src into m, like Object.assign.
func (m *Map[V]) Assign(src *Map[V]) *Map[V] {
	for k, v := range src.All() {
		m.Set(k, v)
	}
	return m
}

// MarshalJSON writes the entries as a JSON object in iteration order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML keeps iteration order by emitting a yaml.MapSlice.
func (m *Map[V]) MarshalYAML() (any, error) {
	slice := make(yaml.MapSlice, 0, m.Len())
	for k, v := range m.All() {
		slice = append(slice, yaml.MapItem{Key: k, Value: v})
	}
	return slice, nil
}
