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

// Package store implements an ordered key-value store served over gRPC.
// Entries are kept in an ordered map sorted by key, next to a single snapshot
// that can be taken and restored at any time.  Both share one node free list,
// so the node limit of the server bounds the live entries and the snapshot
// together.
package store

import (
	"sync"

	"github.com/9rum/ordtree/ordmap"
	"google.golang.org/protobuf/types/known/structpb"
)

// Entry is a single key-value pair of the store.
type Entry = ordmap.Pair[string, *structpb.Value]

// Range selects the keys in [From, To).  A nil bound is open.
type Range struct {
	From *string
	To   *string
}

// ScanOptions controls a scan over the store.
type ScanOptions struct {
	Range
	Reverse bool
	// Limit caps the number of returned entries if positive.
	Limit int
}

// Stats describes the current state of the store.
type Stats struct {
	Size     int
	Height   int
	Snapshot int
}

// Store is an ordered key-value store safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	live     *ordmap.Map[string, *structpb.Value]
	snapshot *ordmap.Map[string, *structpb.Value]
}

// New creates a new, empty store.  freelistSize is the number of released
// nodes kept for reuse and maxNodes, if positive, the maximum number of
// entries held by the store and its snapshot together.
func New(freelistSize, maxNodes int) *Store {
	f := ordmap.NewFreeList[string, *structpb.Value](freelistSize, maxNodes)
	return &Store{
		live:     ordmap.NewWithFreeList(less, f),
		snapshot: ordmap.NewWithFreeList(less, f),
	}
}

func less(a, b string) bool {
	return a < b
}

// Insert adds the entry unless key is already present.  It returns true if
// the entry was added.
func (s *Store) Insert(key string, value *structpb.Value) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.live.Insert(key, value)
	return ok, err
}

// Put associates value with key, overwriting any existing value.  It returns
// true if key was newly added.
func (s *Store) Put(key string, value *structpb.Value) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live.Set(key, value)
}

// Get returns the value associated with key.
func (s *Store) Get(key string) (*structpb.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live.Get(key)
}

// Delete removes key from the store, returning true if it was present.
func (s *Store) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live.Delete(key) == 1
}

// bounds returns the iterators delimiting r.  An empty or inverted range
// yields two equal iterators.
func (s *Store) bounds(r Range) (first, last ordmap.Iterator[string, *structpb.Value]) {
	if r.From != nil && r.To != nil && *r.To <= *r.From {
		return s.live.End(), s.live.End()
	}
	first, last = s.live.Begin(), s.live.End()
	if r.From != nil {
		first = s.live.LowerBound(*r.From)
	}
	if r.To != nil {
		last = s.live.LowerBound(*r.To)
	}
	return
}

// Scan returns the entries within the range of opts in key order, or in
// reverse key order if opts.Reverse is set.
func (s *Store) Scan(opts ScanOptions) (out []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := func() bool {
		return 0 < opts.Limit && opts.Limit <= len(out)
	}

	first, last := s.bounds(opts.Range)
	if !opts.Reverse {
		for it := first; !it.Equal(last) && !full(); it = it.Next() {
			out = append(out, it.Value())
		}
		return
	}

	if first.Equal(last) {
		return
	}
	// stepping back from the end lands on the last entry
	for it := last.Prev(); !full(); it = it.Prev() {
		out = append(out, it.Value())
		if it.Equal(first) {
			break
		}
	}
	return
}

// DeleteRange removes the entries within r and returns how many were removed.
func (s *Store) DeleteRange(r Range) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.live.Len()
	first, last := s.bounds(r)
	s.live.EraseRange(first, last)
	return size - s.live.Len()
}

// Len returns the number of entries in the store.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.live.Len()
}

// Clear removes all entries.  The snapshot is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.Clear()
}

// Snapshot replaces the snapshot with a copy of the current entries and
// returns its size.  Nodes of the previous snapshot are reused.
func (s *Store) Snapshot() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.snapshot.CopyFrom(s.live); err != nil {
		return 0, err
	}
	return s.snapshot.Len(), nil
}

// Restore replaces the current entries with a copy of the snapshot and
// returns the resulting size.
func (s *Store) Restore() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.live.CopyFrom(s.snapshot); err != nil {
		return 0, err
	}
	return s.live.Len(), nil
}

// Stats returns the current statistics of the store.
func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Size:     s.live.Len(),
		Height:   s.live.Height(),
		Snapshot: s.snapshot.Len(),
	}
}
