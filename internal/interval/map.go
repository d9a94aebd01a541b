// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package interval provides an interval map: a mapping whose keys are
// closed intervals over an ordered type.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Matches btree's generic bounds.
)

// Map maps closed intervals with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K constraints.Ordered, V any] struct {
	// Keys in this tree are the *ends* of the intervals in the map, so that
	// Seek(k) finds the least interval that could contain k.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry in a [Map]. Both endpoints are inclusive.
type Interval[K constraints.Ordered, V any] struct {
	Start, End K

	// The value associated with this interval. A nil Value marks the
	// "not found" return of [Map.Get] and [Map.Insert].
	Value *V
}

// Get looks up the interval containing key, if one exists.
//
// If no such interval exists, the Value of the returned [Interval] is nil.
func (m *Map[K, V]) Get(key K) Interval[K, V] {
	it := m.tree.Iter()
	if !it.Seek(key) || key < it.Value().start {
		// It is already implicit that key <= end; only the start needs
		// checking.
		return Interval[K, V]{}
	}

	return Interval[K, V]{
		Start: it.Value().start,
		End:   it.Key(),
		Value: &it.Value().value,
	}
}

// Insert inserts a new interval into this map with the given value.
//
// If [start, end] overlaps an interval already present, nothing is
// inserted, and the overlapping interval with the least start is returned;
// this case is distinguished by overlap.Value != nil.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	it := m.tree.Iter()
	if !it.Seek(start) || end < it.Value().start {
		// Either no interval has start <= its end, or the least such
		// interval begins after ours ends. No overlap.
		m.tree.Set(end, &entry[K, V]{start: start, value: value})
		return Interval[K, V]{}
	}

	// it now points at the least interval whose end is >= our start, and
	// that interval begins at or before our end, so they overlap.
	return Interval[K, V]{
		Start: it.Value().start,
		End:   it.Key(),
		Value: &it.Value().value,
	}
}

// Remove removes the interval ending at end, if present.
func (m *Map[K, V]) Remove(end K) {
	m.tree.Delete(end)
}

// Intervals returns an iterator over the intervals in this map, in
// ascending order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(Interval[K, V]{
				Start: it.Value().start,
				End:   it.Key(),
				Value: &it.Value().value,
			}) {
				return
			}
		}
	}
}

type entry[K constraints.Ordered, V any] struct {
	start K
	value V
}
