// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package set provides a generic unordered set.
package set

var empty = struct{}{}

// Set is a set of comparable items. The zero value is not usable, create one
// with New.
type Set[T comparable] struct {
	items map[T]struct{}
}

// New creates a set holding the given items.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = empty
	}

	return s
}

// Add inserts item and reports whether it was absent before.
func (s *Set[T]) Add(item T) bool {
	if _, ok := s.items[item]; ok {
		return false
	}
	s.items[item] = empty

	return true
}

// Remove deletes item from the set.
func (s *Set[T]) Remove(item T) {
	delete(s.items, item)
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Empty reports whether the set has no items.
func (s *Set[T]) Empty() bool {
	return len(s.items) == 0
}

// Clear removes all items.
func (s *Set[T]) Clear() {
	s.items = make(map[T]struct{})
}
