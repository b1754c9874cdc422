// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package pqueue implements the transient min-priority queue used while
// merging huffman nodes. A queue is owned by one build and never shared.
package pqueue

import "container/heap"

// Queue is a min-priority queue ordered by a single composite comparator.
type Queue[T any] struct {
	h items[T]
}

type items[T any] struct {
	elems []T
	less  func(a, b T) bool
}

// Len is the number of elements in the collection.
func (h items[T]) Len() int { return len(h.elems) }

// Less compare two elements
func (h items[T]) Less(i, j int) bool { return h.less(h.elems[i], h.elems[j]) }

// Swap swaps the elements with indexes i and j.
func (h items[T]) Swap(i, j int) { h.elems[i], h.elems[j] = h.elems[j], h.elems[i] }

func (h *items[T]) Push(x any) { h.elems = append(h.elems, x.(T)) }

func (h *items[T]) Pop() any {
	old := h.elems
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero
	h.elems = old[:n-1]
	return x
}

// New creates a queue holding init. less must be a strict weak ordering;
// Pop returns the element for which less reports true against all others.
func New[T any](less func(a, b T) bool, init ...T) *Queue[T] {
	q := &Queue[T]{h: items[T]{
		elems: append(make([]T, 0, len(init)), init...),
		less:  less,
	}}
	heap.Init(&q.h)
	return q
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.h.Len() }

// Push inserts x.
func (q *Queue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the lowest element. It panics on an empty queue.
func (q *Queue[T]) Pop() T { return heap.Pop(&q.h).(T) }

// Peek returns the lowest element without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.elems) == 0 {
		return x, false
	}
	return q.h.elems[0], true
}
