// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ordmap implements an ordered map with unique keys on top of an
// unbalanced binary search tree of key-value pairs.
//
// Note: a map is not thread safe.
package ordmap

import (
	"iter"

	"github.com/9rum/ordtree/internal/bst"
	"github.com/9rum/ordtree/internal/data"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ErrKeyNotFound is returned by At when the key is absent.
var ErrKeyNotFound = errors.New("ordmap: key not found")

// Pair is a single entry of a map.
type Pair[K, V any] = data.Pair[K, V]

// Iterator is a cursor on an entry of a map.
type Iterator[K, V any] = bst.Iterator[Pair[K, V]]

// FreeList is a node free list that several maps may share.
type FreeList[K, V any] = bst.FreeList[Pair[K, V]]

// NewFreeList creates a free list for maps of the given key and value types.
// A positive limit caps the number of entries across all maps sharing it.
func NewFreeList[K, V any](size, limit int) *FreeList[K, V] {
	return bst.NewBoundedFreeList[Pair[K, V]](size, limit)
}

// Map is an ordered collection of key-value pairs with unique keys.
type Map[K, V any] struct {
	tree *bst.Tree[Pair[K, V]]
}

// New creates a new, empty map with naturally ordered keys.
func New[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{tree: bst.NewFunc(data.ByKey[K, V])}
}

// NewFunc creates a new, empty map with keys ordered by less.
func NewFunc[K, V any](less bst.LessFunc[K]) *Map[K, V] {
	return &Map[K, V]{tree: bst.NewFunc(data.ByKeyFunc[K, V](less))}
}

// NewWithFreeList creates a new, empty map with keys ordered by less that
// allocates its nodes from f.
func NewWithFreeList[K, V any](less bst.LessFunc[K], f *FreeList[K, V]) *Map[K, V] {
	return &Map[K, V]{tree: bst.NewWithFreeList(data.ByKeyFunc[K, V](less), f)}
}

// FromPairs creates a new map with keys ordered by less holding pairs.  Of
// several pairs with equal keys, the first one is kept.
func FromPairs[K, V any](less bst.LessFunc[K], pairs []Pair[K, V]) (*Map[K, V], error) {
	tree, err := bst.FromSlice(data.ByKeyFunc[K, V](less), pairs, true)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// keyPair returns a pair holding only key, to be compared against the entries.
func keyPair[K, V any](key K) (p Pair[K, V]) {
	p.Key = key
	return
}

// Insert adds the entry unless key is already present, in which case the
// existing value is kept.  It returns an iterator to the entry holding key
// and whether it was newly added.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool, error) {
	return m.tree.Insert(data.NewPair(key, value), true)
}

// Set associates value with key, overwriting any existing value.  It returns
// true if the key was newly added.
func (m *Map[K, V]) Set(key K, value V) (bool, error) {
	p := data.NewPair(key, value)
	if it := m.tree.Find(p); it.Valid() {
		m.tree.Replace(it, p)
		return false, nil
	}
	_, _, err := m.tree.Insert(p, true)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns the value associated with key and whether it was found.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	if it := m.Find(key); it.Valid() {
		return it.Value().Value, true
	}
	return
}

// At returns the value associated with key, or an error wrapping
// ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	value, ok := m.Get(key)
	if !ok {
		return value, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}
	return value, nil
}

// Find returns an iterator to the entry holding key, or End.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return m.tree.Find(keyPair[K, V](key))
}

// Contains returns true if key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.Find(key).Valid()
}

// Delete removes the entry holding key and returns the number of entries
// removed, zero or one.
func (m *Map[K, V]) Delete(key K) int {
	it := m.Find(key)
	if !it.Valid() {
		return 0
	}
	m.tree.Erase(it)
	return 1
}

// Erase removes the entry referenced by it and returns its successor.
func (m *Map[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	return m.tree.Erase(it)
}

// EraseRange removes the entries in [first, last) and returns last.
func (m *Map[K, V]) EraseRange(first, last Iterator[K, V]) Iterator[K, V] {
	return m.tree.EraseRange(first, last)
}

// LowerBound returns an iterator to the first entry whose key is not less than
// key.
func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return m.tree.LowerBound(keyPair[K, V](key))
}

func (m *Map[K, V]) Begin() Iterator[K, V] { return m.tree.Begin() }
func (m *Map[K, V]) End() Iterator[K, V]   { return m.tree.End() }
func (m *Map[K, V]) Last() Iterator[K, V]  { return m.tree.Last() }
func (m *Map[K, V]) Len() int              { return m.tree.Len() }
func (m *Map[K, V]) Empty() bool           { return m.tree.Empty() }
func (m *Map[K, V]) Clear()                { m.tree.Clear() }

// Height returns the height of the underlying tree.
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Clone returns a deep copy of the map.  Values are copied shallowly.
func (m *Map[K, V]) Clone() (*Map[K, V], error) {
	tree, err := m.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// CopyFrom replaces the contents of m with a copy of src, reusing the nodes m
// already holds.  On error m is unchanged.
func (m *Map[K, V]) CopyFrom(src *Map[K, V]) error {
	return m.tree.CopyFrom(src.tree)
}

// Move transfers the contents of src to m, leaving src empty.
func (m *Map[K, V]) Move(src *Map[K, V]) {
	m.tree.Move(src.tree)
}

// Swap exchanges the contents of m and other.
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// All returns an iterator over the entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Ascend(func(p Pair[K, V]) bool {
			return yield(p.Key, p.Value)
		})
	}
}

// Backward returns an iterator over the entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.tree.Descend(func(p Pair[K, V]) bool {
			return yield(p.Key, p.Value)
		})
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.tree.Ascend(func(p Pair[K, V]) bool {
			return yield(p.Key)
		})
	}
}
