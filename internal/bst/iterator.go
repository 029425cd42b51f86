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

package bst

// Iterator is a cursor on a single element of a tree, or the end sentinel
// which references no element.  An Iterator does not own its node; it stays
// valid across any mutation except the erasure of that very node.
//
// The end sentinel remembers the tree it came from, so that stepping back
// from it lands on the last element.
type Iterator[T any] struct {
	node *node[T]
	tree *Tree[T]
}

// Valid reports whether the iterator references an element, i.e. it is not
// the end sentinel.
func (it Iterator[T]) Valid() bool {
	return it.node != nil
}

// Value returns the referenced element, or the zero value at the end.
// Elements cannot be modified through an iterator since that could break the
// ordering of the tree.
func (it Iterator[T]) Value() (_ T) {
	if it.node == nil {
		return
	}
	return it.node.data
}

// Equal reports whether both iterators reference the same node.  Two end
// iterators are equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Next returns an iterator to the in-order successor, or the end sentinel if
// there is none.  Next of the end sentinel is the end sentinel.
func (it Iterator[T]) Next() Iterator[T] {
	n := it.node
	if n == nil {
		return it
	}
	if n.right != nil {
		return Iterator[T]{node: n.right.first(), tree: it.tree}
	}
	// climb past right children; the first ancestor reached from its left
	// side is the successor
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return Iterator[T]{node: p, tree: it.tree}
}

// Prev returns an iterator to the in-order predecessor, or the end sentinel if
// the iterator is at the first element.  Prev of the end sentinel is the last
// element of the tree (or the end sentinel if the tree is empty).
func (it Iterator[T]) Prev() Iterator[T] {
	n := it.node
	if n == nil {
		if it.tree == nil {
			return it
		}
		return it.tree.Last()
	}
	if n.left != nil {
		return Iterator[T]{node: n.left.last(), tree: it.tree}
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return Iterator[T]{node: p, tree: it.tree}
}
