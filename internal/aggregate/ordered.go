// Steamstats - Game Catalog Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/steamstats

package aggregate

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

// Result is an aggregation outcome ready to be encoded as a JSON object.
type Result interface {
	json.Marshaler
	Len() int
}

// Entry is one key/value pair of an Ordered result.
type Entry[V any] struct {
	Key   string
	Value V
}

// Ordered is a JSON object whose key order is significant.
type Ordered[V any] []Entry[V]

// Len returns the number of entries.
func (o Ordered[V]) Len() int {
	return len(o)
}

// Get returns the value stored under key.
func (o Ordered[V]) Get(key string) (V, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// MarshalJSON encodes the entries as an object, in order.
func (o Ordered[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, fmt.Errorf("encode key %q: %w", e.Key, err)
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("encode value for %q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// counter accumulates per-key values, remembering where each key was first
// seen.
type counter[V int | float64] struct {
	index   map[string]int
	entries Ordered[V]
}

func newCounter[V int | float64]() *counter[V] {
	return &counter[V]{index: make(map[string]int)}
}

// add sums v into key.
func (c *counter[V]) add(key string, v V) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value += v
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry[V]{Key: key, Value: v})
}

// put replaces the value of key, keeping its first-seen position.
func (c *counter[V]) put(key string, v V) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Value = v
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry[V]{Key: key, Value: v})
}

func (c *counter[V]) result() Ordered[V] {
	return c.entries
}

// TopN returns at most n entries sorted by descending value. Entries with
// equal values keep their relative order.
func TopN[V cmp.Ordered](o Ordered[V], n int) Ordered[V] {
	sorted := slices.Clone(o)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return cmp.Compare(b.Value, a.Value)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
