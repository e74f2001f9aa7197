// Package pqueue provides a binary min-heap priority queue. The smallest
// element is always at the root and can be peeked in O(1) and polled in
// O(log n).
package pqueue

import "cmp"

// MinHeap is a binary min-heap stored in a slice where the children of
// index i live at 2i+1 and 2i+2
type MinHeap[T cmp.Ordered] struct {
	data []T
}

// New returns a heap holding items, built bottom up in O(n). The items
// slice is copied.
func New[T cmp.Ordered](items ...T) *MinHeap[T] {
	h := &MinHeap[T]{data: make([]T, len(items))}
	copy(h.data, items)
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.sink(i)
	}
	return h
}

// Len returns the number of elements in the heap
func (h *MinHeap[T]) Len() int {
	return len(h.data)
}

// IsEmpty reports whether the heap is empty
func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.data) == 0
}

// Clear removes every element
func (h *MinHeap[T]) Clear() {
	clear(h.data)
	h.data = h.data[:0]
}

// Peek returns the smallest element without removing it
func (h *MinHeap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		return *new(T), false
	}
	return h.data[0], true
}

// Poll removes and returns the smallest element
func (h *MinHeap[T]) Poll() (T, bool) {
	if len(h.data) == 0 {
		return *new(T), false
	}
	return h.removeAt(0), true
}

// Add inserts elem in O(log n)
func (h *MinHeap[T]) Add(elem T) {
	h.data = append(h.data, elem)
	h.swim(len(h.data) - 1)
}

// Contains reports whether elem is in the heap. It is a linear scan.
func (h *MinHeap[T]) Contains(elem T) bool {
	return h.indexOf(elem) >= 0
}

// Remove deletes one occurrence of elem and reports whether it was found
func (h *MinHeap[T]) Remove(elem T) bool {
	i := h.indexOf(elem)
	if i < 0 {
		return false
	}
	h.removeAt(i)
	return true
}

func (h *MinHeap[T]) indexOf(elem T) int {
	for i := range h.data {
		if h.data[i] == elem {
			return i
		}
	}
	return -1
}

func (h *MinHeap[T]) less(i, j int) bool {
	return cmp.Less(h.data[i], h.data[j])
}

func (h *MinHeap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// swim moves the element at i up until its parent is not larger
func (h *MinHeap[T]) swim(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

// sink moves the element at i down, following the smaller child
func (h *MinHeap[T]) sink(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		if left >= n {
			return
		}
		smallest := left
		if right < n && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			return
		}
		h.swap(smallest, i)
		i = smallest
	}
}

// removeAt swaps the element at i with the last one, shrinks the heap
// and restores order around i
func (h *MinHeap[T]) removeAt(i int) T {
	last := len(h.data) - 1
	removed := h.data[i]
	h.swap(i, last)
	h.data[last] = *new(T)
	h.data = h.data[:last]
	if i == last {
		return removed
	}
	moved := h.data[i]
	h.sink(i)
	if h.data[i] == moved {
		h.swim(i)
	}
	return removed
}

// isMinHeap checks the heap property for the subtree rooted at i
func (h *MinHeap[T]) isMinHeap(i int) bool {
	n := len(h.data)
	if i >= n {
		return true
	}
	left, right := 2*i+1, 2*i+2
	if left < n && h.less(left, i) {
		return false
	}
	if right < n && h.less(right, i) {
		return false
	}
	return h.isMinHeap(left) && h.isMinHeap(right)
}
