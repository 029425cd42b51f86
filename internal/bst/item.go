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

import "golang.org/x/exp/constraints"

// LessFunc reports whether a sorts before b.
//
// This must provide a strict weak ordering; if !less(a, b) && !less(b, a),
// we treat this to mean a == b.
type LessFunc[T any] func(a, b T) bool

// Item represents a single object in the tree that knows how to order itself.
type Item[T any] interface {
	// Less tests whether the current item is less than the given argument.
	Less(than T) bool
}

// Less adapts an Item to a LessFunc.
func Less[T Item[T]](a, b T) bool {
	return a.Less(b)
}

// Ordered is the LessFunc of the built-in ordered types.
func Ordered[T constraints.Ordered](a, b T) bool {
	return a < b
}

// ItemIterator allows callers of {A/De}scend* to iterate in-order over portions
// of the tree.  When this function returns false, iteration will stop and the
// associated {A/De}scend* function will immediately return.
type ItemIterator[T any] func(T) bool
