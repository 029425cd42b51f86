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
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Check verifies the structure of the tree: the ordering of the elements, the
// parent pointers and the element count.  It returns an assertion failure
// describing the first violation found.
func (t *Tree[T]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return errors.AssertionFailedf("bst: root %v has a parent", t.root.data)
	}

	// bound is the nearest ancestor whose left subtree holds n; equal
	// elements always go right, so n must be strictly less than it
	type frame struct {
		n, bound *node[T]
	}
	var (
		stack []frame
		prev  *node[T]
		count int
	)
	for n, bound := t.root, (*node[T])(nil); n != nil || 0 < len(stack); {
		for ; n != nil; n, bound = n.left, n {
			if n.left != nil && n.left.parent != n {
				return errors.AssertionFailedf("bst: left child of %v points to the wrong parent", n.data)
			}
			if n.right != nil && n.right.parent != n {
				return errors.AssertionFailedf("bst: right child of %v points to the wrong parent", n.data)
			}
			if bound != nil && !t.less(n.data, bound.data) {
				return errors.AssertionFailedf("bst: left subtree of %v holds %v", bound.data, n.data)
			}
			stack = append(stack, frame{n, bound})
			if t.length < count+len(stack) {
				return errors.AssertionFailedf("bst: more than %d nodes reachable", t.length)
			}
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if prev != nil && t.less(f.n.data, prev.data) {
			return errors.AssertionFailedf("bst: %v follows %v", f.n.data, prev.data)
		}
		count++
		prev, n, bound = f.n, f.n.right, f.bound
	}

	if count != t.length {
		return errors.AssertionFailedf("bst: %d nodes reachable, length is %d", count, t.length)
	}
	return nil
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, zero for an empty tree.
func (t *Tree[T]) Height() (height int) {
	level := make([]*node[T], 0, 1)
	if t.root != nil {
		level = append(level, t.root)
	}
	for 0 < len(level) {
		height++
		next := make([]*node[T], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return
}

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Print writes an ASCII graphic representation of the tree to w, rotated so
// that the root is on the left and higher elements are on top.  Each node is
// shown with its parent and color.  It returns the height of the tree.
func (t *Tree[T]) Print(w io.Writer) (height int) {
	type frame struct {
		n      *node[T]
		prefix string
		br     branch
		depth  int
		// the right subtree has been printed
		visited bool
	}
	if t.root == nil {
		return 0
	}
	stack := []frame{{n: t.root, br: rootBranch, depth: 1}}
	for 0 < len(stack) {
		f := stack[len(stack)-1]
		height = max(height, f.depth)

		if !f.visited {
			stack[len(stack)-1].visited = true
			if f.n.right != nil {
				pad := "       "
				if f.br == leftBranch {
					pad = "|      "
				}
				stack = append(stack, frame{n: f.n.right, prefix: f.prefix + pad, br: rightBranch, depth: f.depth + 1})
			}
			continue
		}
		stack = stack[:len(stack)-1]

		switch f.br {
		case rootBranch:
			fmt.Fprintf(w, "%s|------+ ", f.prefix)
		case leftBranch:
			fmt.Fprintf(w, "%s\\------+ ", f.prefix)
		case rightBranch:
			fmt.Fprintf(w, "%s/------+ ", f.prefix)
		}
		var up interface{}
		if f.n.parent != nil {
			up = f.n.parent.data
		}
		fmt.Fprintf(w, "%v ^%v %s\n", f.n.data, up, f.n.color)

		if f.n.left != nil {
			pad := "       "
			if f.br == rightBranch {
				pad = "|      "
			}
			stack = append(stack, frame{n: f.n.left, prefix: f.prefix + pad, br: leftBranch, depth: f.depth + 1})
		}
	}
	return
}
