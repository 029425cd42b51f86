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

// Package data provides the element types stored by the ordered containers.
package data

import (
	"fmt"

	"github.com/9rum/ordtree/internal/bst"
	"golang.org/x/exp/constraints"
)

// Pair represents a single key-value entry.  Pairs are ordered by key only,
// so two pairs with equal keys are equal regardless of their values.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// NewPair creates a new pair with the given arguments.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{
		Key:   key,
		Value: value,
	}
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v: %v", p.Key, p.Value)
}

// ByKey orders pairs by their naturally ordered keys.
func ByKey[K constraints.Ordered, V any](a, b Pair[K, V]) bool {
	return a.Key < b.Key
}

// ByKeyFunc lifts a key ordering to pairs.
func ByKeyFunc[K, V any](less bst.LessFunc[K]) bst.LessFunc[Pair[K, V]] {
	return func(a, b Pair[K, V]) bool {
		return less(a.Key, b.Key)
	}
}
