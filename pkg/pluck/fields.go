// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Fields is a mapping from field name to T that remembers insertion order.
// Every Fields produced by this package is ordered like its selector.
// The zero value is an empty mapping ready to use.
type Fields[T any] struct {
	keys   []string
	values map[string]T
}

// Entry is one key/value pair of a Fields, with the value boxed.
type Entry struct {
	Field string
	Value any
}

func newFields[T any](capacity int) Fields[T] {
	return Fields[T]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]T, capacity),
	}
}

// set stores v under key, appending key on first use.
func (f *Fields[T]) set(key string, v T) {
	if f.values == nil {
		f.values = make(map[string]T)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = v
}

// Len returns the number of fields.
func (f Fields[T]) Len() int { return len(f.keys) }

// Keys returns the field names in order.
func (f Fields[T]) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Get returns the value stored for key.
func (f Fields[T]) Get(key string) (T, bool) {
	v, ok := f.values[key]
	return v, ok
}

// All iterates over the fields in order.
func (f Fields[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range f.keys {
			if !yield(k, f.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy as a plain Go map.
func (f Fields[T]) Map() map[string]T {
	m := make(map[string]T, len(f.keys))
	for _, k := range f.keys {
		m[k] = f.values[k]
	}
	return m
}

// Entries returns the fields in order with their values boxed. Encoders that
// cannot see the type parameter use it to preserve order.
func (f Fields[T]) Entries() []Entry {
	entries := make([]Entry, 0, len(f.keys))
	for _, k := range f.keys {
		entries = append(entries, Entry{Field: k, Value: f.values[k]})
	}
	return entries
}

// MarshalJSON encodes f as a JSON object with keys in order.
func (f Fields[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range f.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.values[k])
		if err != nil {
			return nil, fmt.Errorf("encoding field %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
