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

// Package bst implements an in-memory binary search tree with parent pointers
// to allow bidirectional iteration through the nodes.
//
// The tree is ordered by a strict weak ordering supplied at construction.
// Equal elements may be stored side by side (they sort to the right of each
// other) unless the caller asks for uniqueness on insert.
//
// The tree is not balanced: its height depends on the insertion order and is
// linear in the worst case (e.g., sorted input).  Every node still carries a
// red-black color marker, which no operation relies on.
//
// Clear, deep copy, Check and Print walk the tree iteratively, so skewed trees
// of any depth are safe.
//
// Note: an individual tree is not thread safe, so either access it from a
// single goroutine or use a mutex to restrict access.
package bst

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree of elements of type T.
//
// The zero value is not usable; create trees with New, NewFunc or
// NewWithFreeList.
type Tree[T any] struct {
	root     *node[T]
	length   int
	less     LessFunc[T]
	freelist *FreeList[T]
}

// New creates a new, empty tree of an ordered type.
func New[T constraints.Ordered]() *Tree[T] {
	return NewFunc(Ordered[T])
}

// NewFunc creates a new, empty tree ordered by less.
func NewFunc[T any](less LessFunc[T]) *Tree[T] {
	return NewWithFreeList(less, NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates a new, empty tree ordered by less that uses the
// given node free list.
func NewWithFreeList[T any](less LessFunc[T], f *FreeList[T]) *Tree[T] {
	if less == nil {
		panic("nil less function")
	}
	if f == nil {
		f = NewFreeList[T](DefaultFreeListSize)
	}
	return &Tree[T]{
		less:     less,
		freelist: f,
	}
}

// FromSlice creates a new tree ordered by less holding values, inserted in
// sequence order.  With unique set, later duplicates are dropped.
func FromSlice[T any](less LessFunc[T], values []T, unique bool) (*Tree[T], error) {
	t := NewFunc(less)
	if err := t.Assign(values, unique); err != nil {
		return nil, err
	}
	return t, nil
}

// equal tests whether neither a < b nor b < a.
func (t *Tree[T]) equal(a, b T) bool {
	return !t.less(a, b) && !t.less(b, a)
}

func (t *Tree[T]) iterator(n *node[T]) Iterator[T] {
	return Iterator[T]{node: n, tree: t}
}

// Len returns the number of elements currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Empty returns true if the tree holds no elements.
func (t *Tree[T]) Empty() bool {
	return t.length == 0
}

// FreeList returns the node free list used by the tree.
func (t *Tree[T]) FreeList() *FreeList[T] {
	return t.freelist
}

// Begin returns an iterator to the lowest element, or End if the tree is empty.
func (t *Tree[T]) Begin() Iterator[T] {
	return t.iterator(t.root.first())
}

// End returns the end sentinel.
func (t *Tree[T]) End() Iterator[T] {
	return t.iterator(nil)
}

// Last returns an iterator to the highest element, or End if the tree is empty.
func (t *Tree[T]) Last() Iterator[T] {
	return t.iterator(t.root.last())
}

// Insert adds value to the tree.  If unique is true and an equal element is
// already present, the tree is left unchanged and an iterator to the existing
// element is returned with false.  Otherwise, the returned iterator references
// the new element and the second return value is true.
//
// If no node can be allocated, Insert returns (End, false, err) where err
// wraps ErrAllocation.
func (t *Tree[T]) Insert(value T, unique bool) (Iterator[T], bool, error) {
	if t.root == nil {
		n, err := t.freelist.newNode(value)
		if err != nil {
			return t.End(), false, err
		}
		t.root = n
		t.length = 1
		return t.iterator(n), true, nil
	}

	p := t.root
	for {
		if unique && t.equal(value, p.data) {
			return t.iterator(p), false, nil
		}
		if t.less(value, p.data) {
			if p.left != nil {
				p = p.left
				continue
			}
		} else if p.right != nil {
			p = p.right
			continue
		}
		break
	}

	n, err := t.freelist.newNode(value)
	if err != nil {
		return t.End(), false, err
	}
	if t.less(value, p.data) {
		p.setLeft(n)
	} else {
		p.setRight(n)
	}
	t.length++

	for t.root.parent != nil {
		t.root = t.root.parent
	}
	return t.iterator(n), true, nil
}

// Find looks for an element equal to value, returning End if there is none.
func (t *Tree[T]) Find(value T) Iterator[T] {
	for p := t.root; p != nil; {
		switch {
		case t.less(value, p.data):
			p = p.left
		case t.less(p.data, value):
			p = p.right
		default:
			return t.iterator(p)
		}
	}
	return t.End()
}

// Contains returns true if an element equal to value is in the tree.
func (t *Tree[T]) Contains(value T) bool {
	return t.Find(value).Valid()
}

// LowerBound returns an iterator to the first element that is not less than
// value, or End if every element is less than value.
func (t *Tree[T]) LowerBound(value T) Iterator[T] {
	var bound *node[T]
	for p := t.root; p != nil; {
		if t.less(p.data, value) {
			p = p.right
		} else {
			bound = p
			p = p.left
		}
	}
	return t.iterator(bound)
}

// Replace overwrites the element referenced by it with value, which must be
// equal to it under the tree's ordering.  It returns false, leaving the tree
// unchanged, if it is End or value is not equal to the current element.
func (t *Tree[T]) Replace(it Iterator[T], value T) bool {
	if it.node == nil || !t.equal(it.node.data, value) {
		return false
	}
	it.node.data = value
	return true
}

// Erase removes the element referenced by it and returns an iterator to the
// element that followed it.  Erasing End is a no-op that returns End.
//
// it must reference a live node of this tree; any other iterator to the same
// node is invalid afterwards.
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	d := it.node
	if d == nil {
		return t.End()
	}

	var next Iterator[T]
	switch {
	case d.left == nil:
		next = t.iterator(d).Next()
		t.transplant(d, d.right)
	case d.right == nil:
		next = t.iterator(d).Next()
		t.transplant(d, d.left)
	default:
		// splice the in-order successor into d's place
		s := d.right.first()
		s.setLeft(d.left)
		if s != d.right {
			if s.right != nil {
				s.right.parent = s.parent
			}
			s.parent.left = s.right
			s.setRight(d.right)
		}
		t.transplant(d, s)
		next = t.iterator(s)
	}

	t.length--
	t.freelist.freeNode(d)
	return next
}

// EraseRange erases every element from first up to, but not including, last
// and returns last.
func (t *Tree[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for first.Valid() && !first.Equal(last) {
		first = t.Erase(first)
	}
	return last
}

// transplant puts c into the slot of d in d's parent (or the root).
func (t *Tree[T]) transplant(d, c *node[T]) {
	switch p := d.parent; {
	case p == nil:
		t.root = c
	case p.left == d:
		p.left = c
	default:
		p.right = c
	}
	if c != nil {
		c.parent = d.parent
	}
}

// Clear removes all elements from the tree, returning every node to the free
// list.  Nodes are released children first by walking parent links, so no
// stack is needed.
func (t *Tree[T]) Clear() {
	t.release(t.root)
	t.root, t.length = nil, 0
}

// release frees the subtree rooted at n in post-order and detaches it from its
// parent, if any.
func (t *Tree[T]) release(n *node[T]) {
	if n == nil {
		return
	}
	top := n.parent
	for n != top {
		switch {
		case n.left != nil:
			n = n.left
		case n.right != nil:
			n = n.right
		default:
			p := n.parent
			if p != nil {
				if p.left == n {
					p.left = nil
				} else {
					p.right = nil
				}
			}
			t.freelist.freeNode(n)
			n = p
		}
	}
}

// Move replaces the contents of t with those of src, leaving src empty.
// t takes over the ordering and free list of src along with its nodes.
func (t *Tree[T]) Move(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.root, t.length, t.less, t.freelist = src.root, src.length, src.less, src.freelist
	src.root, src.length = nil, 0
}

// Swap exchanges the contents of t and other.
func (t *Tree[T]) Swap(other *Tree[T]) {
	*t, *other = *other, *t
}

// Ascend calls the iterator for every value in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	for it := t.Begin(); it.Valid(); it = it.Next() {
		if !iterator(it.node.data) {
			return
		}
	}
}

// AscendRange calls the iterator for every value in the tree within the range
// [greaterOrEqual, lessThan), until iterator returns false.
func (t *Tree[T]) AscendRange(greaterOrEqual, lessThan T, iterator ItemIterator[T]) {
	for it := t.LowerBound(greaterOrEqual); it.Valid() && t.less(it.node.data, lessThan); it = it.Next() {
		if !iterator(it.node.data) {
			return
		}
	}
}

// Descend calls the iterator for every value in the tree in descending order,
// until iterator returns false.
func (t *Tree[T]) Descend(iterator ItemIterator[T]) {
	for it := t.Last(); it.Valid(); it = it.Prev() {
		if !iterator(it.node.data) {
			return
		}
	}
}

// All returns an iterator over the elements in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Ascend(yield)
	}
}

// Backward returns an iterator over the elements in descending order.
func (t *Tree[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Descend(yield)
	}
}
