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

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrAllocation is returned when a node cannot be obtained from the free list
// because its node limit has been reached.  The tree is left unmodified.
var ErrAllocation = errors.New("bst: unable to allocate a node")

// color is the red-black marker carried by every node.  No balancing logic
// reads it.
type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "r"
	}
	return "b"
}

// node is a single vertex in a tree.  left and right are owned by the node;
// parent is used only for navigation.
type node[T any] struct {
	data   T
	left   *node[T]
	right  *node[T]
	parent *node[T]
	color  color
}

// setLeft attaches c as the left child, reparenting it if non-nil.
func (n *node[T]) setLeft(c *node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

// setRight attaches c as the right child, reparenting it if non-nil.
func (n *node[T]) setRight(c *node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// first returns the lowest node in the subtree rooted at n.
func (n *node[T]) first() *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// last returns the highest node in the subtree rooted at n.
func (n *node[T]) last() *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

const DefaultFreeListSize = 32

// FreeList represents a free list of tree nodes.  By default each Tree has its
// own FreeList, but multiple trees can share the same FreeList.
// Two trees using the same freelist are safe for concurrent write access.
//
// A FreeList may carry a limit on the number of live nodes it hands out; once
// reached, allocations fail with ErrAllocation.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
	live     int
	limit    int
}

// NewFreeList creates a new free list.
// size is the maximum number of reclaimed nodes kept for reuse.
func NewFreeList[T any](size int) *FreeList[T] {
	return NewBoundedFreeList[T](size, 0)
}

// NewBoundedFreeList creates a new free list that hands out at most limit live
// nodes.  A limit of zero or less means unlimited.
func NewBoundedFreeList[T any](size, limit int) *FreeList[T] {
	if limit < 0 {
		limit = 0
	}
	return &FreeList[T]{
		freelist: make([]*node[T], 0, size),
		limit:    limit,
	}
}

// Live returns the number of nodes currently handed out by the free list.
func (f *FreeList[T]) Live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

// Limit returns the maximum number of live nodes, or zero if unlimited.
func (f *FreeList[T]) Limit() int {
	return f.limit
}

func (f *FreeList[T]) newNode(data T) (*node[T], error) {
	nodes, err := f.newNodes(1, 0)
	if err != nil {
		return nil, err
	}
	nodes[0].data = data
	return nodes[0], nil
}

// newNodes hands out count blank red nodes at once, or none at all if that
// would exceed the limit.  credit is the number of live nodes the caller is
// about to release; they count against the limit as already freed.
func (f *FreeList[T]) newNodes(count, credit int) ([]*node[T], error) {
	f.mu.Lock()
	if 0 < f.limit && f.limit < f.live+count-credit {
		live := f.live
		f.mu.Unlock()
		return nil, errors.Wrapf(ErrAllocation, "%d nodes requested, %d to be released, with %d of %d in use", count, credit, live, f.limit)
	}
	f.live += count
	out := make([]*node[T], 0, count)
	for len(out) < count && 0 < len(f.freelist) {
		index := len(f.freelist) - 1
		out = append(out, f.freelist[index])
		f.freelist[index] = nil
		f.freelist = f.freelist[:index]
	}
	f.mu.Unlock()

	for len(out) < count {
		out = append(out, new(node[T]))
	}
	for _, n := range out {
		n.color = red
	}
	return out, nil
}

// freeNode returns the given node to the list, returning true if it was kept
// for reuse and false if it was left to the garbage collector.
func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	// clear to allow GC
	var zero T
	n.data = zero
	n.left, n.right, n.parent = nil, nil, nil

	f.mu.Lock()
	f.live--
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}
