// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package feed

import (
	"sync"
)

// DefaultCapacity is the number of most recent records a feed holds, unless configured otherwise
const DefaultCapacity = 10

// Observer is called after every mutation with a copy of the feed, newest first
type Observer[T any] func(records []T)

// Store is a bounded list of the most recent records of one kind, newest first.
// Records are ordered by arrival: a bulk Replace, then each Push is prepended.
type Store[T any] struct {
	mux       sync.RWMutex
	capacity  int
	records   []T
	observers []Observer[T]
}

func NewStore[T any](capacity int) *Store[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store[T]{
		capacity: capacity,
		records:  make([]T, 0, capacity),
	}
}

func (s *Store[T]) Capacity() int {
	return s.capacity
}

// AddObserver registers a function to be notified synchronously after each mutation
func (s *Store[T]) AddObserver(o Observer[T]) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.observers = append(s.observers, o)
}

// Replace sets the feed to exactly the given records, truncated to the first capacity records
func (s *Store[T]) Replace(records []T) {
	s.mux.Lock()
	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	s.records = append(s.records[:0], records...)
	s.notifyLocked()
}

// Push prepends one record, dropping the oldest once over capacity
func (s *Store[T]) Push(record T) {
	s.mux.Lock()
	if len(s.records) < s.capacity {
		var zero T
		s.records = append(s.records, zero)
	}
	copy(s.records[1:], s.records)
	s.records[0] = record
	s.notifyLocked()
}

// Clear empties the feed
func (s *Store[T]) Clear() {
	s.mux.Lock()
	s.records = s.records[:0]
	s.notifyLocked()
}

// notifyLocked releases the lock before calling observers, so they can read the store
func (s *Store[T]) notifyLocked() {
	snapshot := s.copyLocked()
	observers := s.observers
	s.mux.Unlock()
	for _, o := range observers {
		o(snapshot)
	}
}

func (s *Store[T]) copyLocked() []T {
	c := make([]T, len(s.records))
	copy(c, s.records)
	return c
}

// Records returns a copy of the feed, newest first
func (s *Store[T]) Records() []T {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.copyLocked()
}

func (s *Store[T]) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.records)
}
