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

// Clone returns a deep copy of the tree.  The copy shares the ordering and the
// free list of t but no nodes, so either tree can be modified without
// affecting the other.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	out := NewWithFreeList(t.less, t.freelist)
	if err := out.CopyFrom(t); err != nil {
		return nil, err
	}
	return out, nil
}

// CopyFrom makes t a structurally identical copy of src.  Nodes already owned
// by t are reused in place wherever src has a node at the same position;
// subtrees of t with no counterpart in src are released.  Repeatedly copying
// trees of a similar shape therefore allocates little.
//
// All missing nodes are obtained before t is touched: if that fails, CopyFrom
// returns an error wrapping ErrAllocation and t is unchanged.  The nodes the
// copy releases are credited against the node limit, so a copy succeeds
// whenever its result fits.
func (t *Tree[T]) CopyFrom(src *Tree[T]) error {
	if t == src {
		return nil
	}

	need, surplus := t.shortfall(src)
	fresh, err := t.freelist.newNodes(need, surplus)
	if err != nil {
		return err
	}

	type slot struct {
		src    *node[T]
		dst    **node[T]
		parent *node[T]
	}
	stack := []slot{{src: src.root, dst: &t.root}}
	for 0 < len(stack) {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.src == nil {
			if d := *s.dst; d != nil {
				*s.dst = nil
				d.parent = nil
				t.release(d)
			}
			continue
		}

		d := *s.dst
		if d == nil {
			d, fresh = fresh[len(fresh)-1], fresh[:len(fresh)-1]
			*s.dst = d
		}
		d.data, d.color, d.parent = s.src.data, s.src.color, s.parent
		stack = append(stack,
			slot{src: s.src.right, dst: &d.right, parent: d},
			slot{src: s.src.left, dst: &d.left, parent: d})
	}

	t.length = src.length
	t.less = src.less
	return nil
}

// shortfall counts the nodes of src that have no counterpart in t, i.e. the
// number of allocations CopyFrom needs, and the nodes of t with no
// counterpart in src, which CopyFrom releases.
func (t *Tree[T]) shortfall(src *Tree[T]) (need, surplus int) {
	type pair struct {
		src, dst *node[T]
	}
	stack := []pair{{src.root, t.root}}
	for 0 < len(stack) {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		var sl, sr, dl, dr *node[T]
		switch {
		case p.src == nil && p.dst == nil:
			continue
		case p.dst == nil:
			need++
		case p.src == nil:
			surplus++
		}
		if p.src != nil {
			sl, sr = p.src.left, p.src.right
		}
		if p.dst != nil {
			dl, dr = p.dst.left, p.dst.right
		}
		stack = append(stack, pair{sl, dl}, pair{sr, dr})
	}
	return
}

// Assign replaces the contents of t with values, inserted in sequence order.
// With unique set, later duplicates are dropped.  On error t is unchanged.
func (t *Tree[T]) Assign(values []T, unique bool) error {
	tmp := NewWithFreeList(t.less, t.freelist)
	for _, v := range values {
		if _, _, err := tmp.Insert(v, unique); err != nil {
			tmp.Clear()
			return err
		}
	}
	t.Move(tmp)
	return nil
}
