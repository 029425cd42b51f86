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

package data

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/9rum/ordtree/internal/bst"
)

func TestByKey(t *testing.T) {
	const size = 1000
	tr := bst.NewFunc(ByKey[int, string])
	for _, key := range rand.Perm(size) {
		if _, ok, err := tr.Insert(NewPair(key, "first"), true); !ok || err != nil {
			t.Fatalf("could not insert %d", key)
		}
	}
	// values do not take part in the ordering
	for _, key := range rand.Perm(size) {
		if _, ok, _ := tr.Insert(NewPair(key, "second"), true); ok {
			t.Fatalf("inserted %d twice", key)
		}
	}

	key := 0
	for p := range tr.All() {
		if p.Key != key || p.Value != "first" {
			t.Fatalf("got %v want %d: first", p, key)
		}
		key++
	}
	if key != size {
		t.Fatalf("visited %d pairs", key)
	}
}

func TestByKeyFunc(t *testing.T) {
	less := ByKeyFunc[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	if !less(NewPair("a", 2), NewPair("B", 1)) {
		t.Fatal("a is not less than B")
	}
	if less(NewPair("A", 1), NewPair("a", 2)) || less(NewPair("a", 2), NewPair("A", 1)) {
		t.Fatal("A and a are not equal")
	}
}

func TestPairString(t *testing.T) {
	if got := NewPair("answer", 42).String(); got != "answer: 42" {
		t.Fatalf("got %q", got)
	}
}
