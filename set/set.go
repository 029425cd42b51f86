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

// Package set implements an ordered set of unique elements on top of an
// unbalanced binary search tree.
//
// Note: a set is not thread safe.
package set

import (
	"iter"

	"github.com/9rum/ordtree/internal/bst"
	"golang.org/x/exp/constraints"
)

// Iterator is a cursor on an element of a set.
type Iterator[T any] = bst.Iterator[T]

// LessFunc determines how to order the elements of a set.
type LessFunc[T any] = bst.LessFunc[T]

// FreeList is a node free list that several sets may share.
type FreeList[T any] = bst.FreeList[T]

// Set is an ordered collection of unique elements.
type Set[T any] struct {
	tree *bst.Tree[T]
}

// New creates a new, empty set of an ordered type.
func New[T constraints.Ordered]() *Set[T] {
	return &Set[T]{tree: bst.New[T]()}
}

// NewFunc creates a new, empty set ordered by less.
func NewFunc[T any](less LessFunc[T]) *Set[T] {
	return &Set[T]{tree: bst.NewFunc(less)}
}

// NewWithFreeList creates a new, empty set ordered by less that allocates its
// nodes from f.
func NewWithFreeList[T any](less LessFunc[T], f *FreeList[T]) *Set[T] {
	return &Set[T]{tree: bst.NewWithFreeList(less, f)}
}

// FromSlice creates a new set ordered by less holding the distinct values.
func FromSlice[T any](less LessFunc[T], values []T) (*Set[T], error) {
	tree, err := bst.FromSlice(less, values, true)
	if err != nil {
		return nil, err
	}
	return &Set[T]{tree: tree}, nil
}

// Insert adds value unless an equal element is present.  It returns an
// iterator to the element equal to value and whether it was newly added.
func (s *Set[T]) Insert(value T) (Iterator[T], bool, error) {
	return s.tree.Insert(value, true)
}

// Find returns an iterator to the element equal to value, or End.
func (s *Set[T]) Find(value T) Iterator[T] {
	return s.tree.Find(value)
}

// Contains returns true if an element equal to value is in the set.
func (s *Set[T]) Contains(value T) bool {
	return s.tree.Contains(value)
}

// Delete removes the element equal to value and returns the number of elements
// removed, zero or one.
func (s *Set[T]) Delete(value T) int {
	it := s.tree.Find(value)
	if !it.Valid() {
		return 0
	}
	s.tree.Erase(it)
	return 1
}

// Erase removes the element referenced by it and returns its successor.
func (s *Set[T]) Erase(it Iterator[T]) Iterator[T] {
	return s.tree.Erase(it)
}

// EraseRange removes the elements in [first, last) and returns last.
func (s *Set[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	return s.tree.EraseRange(first, last)
}

// LowerBound returns an iterator to the first element not less than value.
func (s *Set[T]) LowerBound(value T) Iterator[T] {
	return s.tree.LowerBound(value)
}

func (s *Set[T]) Begin() Iterator[T] { return s.tree.Begin() }
func (s *Set[T]) End() Iterator[T]   { return s.tree.End() }
func (s *Set[T]) Last() Iterator[T]  { return s.tree.Last() }
func (s *Set[T]) Len() int           { return s.tree.Len() }
func (s *Set[T]) Empty() bool        { return s.tree.Empty() }
func (s *Set[T]) Clear()             { s.tree.Clear() }

// Clone returns a deep copy of the set.
func (s *Set[T]) Clone() (*Set[T], error) {
	tree, err := s.tree.Clone()
	if err != nil {
		return nil, err
	}
	return &Set[T]{tree: tree}, nil
}

// CopyFrom replaces the contents of s with a copy of src, reusing the nodes s
// already holds.  On error s is unchanged.
func (s *Set[T]) CopyFrom(src *Set[T]) error {
	return s.tree.CopyFrom(src.tree)
}

// Move transfers the contents of src to s, leaving src empty.
func (s *Set[T]) Move(src *Set[T]) {
	s.tree.Move(src.tree)
}

// Swap exchanges the contents of s and other.
func (s *Set[T]) Swap(other *Set[T]) {
	s.tree.Swap(other.tree)
}

// All returns an iterator over the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return s.tree.All()
}

// Backward returns an iterator over the elements in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return s.tree.Backward()
}
