// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides a binary min-heap over a slice of values.
//
// The minimum element is always at index 0. Callers that need to
// find an element again after it has moved (for example to lower its
// key in place) can supply a setIndex function, which is told the new
// slot of every element whenever the heap moves it.
package heap

// New returns a binary heap on the items slice, using less to compare.
// If setIndex is non-nil, it will be called when an item in the heap
// is moved, and passed a pointer to the item that has moved
// and its new index in the slice.
func New[E any](items []E, less func(E, E) bool, setIndex func(e *E, i int)) *Heap[E] {
	h := &Heap[E]{
		Items:    items,
		less:     less,
		setIndex: setIndex,
	}
	h.Init()
	return h
}

// Heap implements a binary min-heap.
type Heap[E any] struct {
	// Items holds all the items in the heap. The first item is less
	// than or equal to all the others.
	Items    []E
	less     func(E, E) bool
	setIndex func(*E, int)
}

// Len returns the number of items in the heap.
func (h *Heap[E]) Len() int {
	return len(h.Items)
}

// Init establishes the heap invariants. It reports every item's index
// to setIndex, so it is also the way to seed the index of items
// passed to New.
// The complexity is O(n) where n = h.Len().
func (h *Heap[E]) Init() {
	n := len(h.Items)
	if h.setIndex != nil {
		for i := range h.Items {
			h.setIndex(&h.Items[i], i)
		}
	}
	for i := n/2 - 1; i >= 0; i-- {
		h.down(i, n)
	}
}

// Push pushes x onto the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Push(x E) {
	h.Items = append(h.Items, x)
	i := len(h.Items) - 1
	if h.setIndex != nil {
		h.setIndex(&h.Items[i], i)
	}
	h.up(i)
}

// Peek returns the minimum element without removing it.
// It reports false if the heap is empty.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.Items) == 0 {
		var zero E
		return zero, false
	}
	return h.Items[0], true
}

// Pop removes and returns the minimum element (according to the less
// function) from the heap. Pop panics if the heap is empty.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Pop() E {
	n := len(h.Items) - 1
	h.swap(0, n)
	h.down(0, n)
	return h.pop()
}

// Fix re-establishes the heap ordering after the element at index i
// has changed its value in either direction.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Fix(i int) {
	if !h.down(i, len(h.Items)) {
		h.up(i)
	}
}

// Up re-establishes the heap ordering after the element at index i
// has decreased. An element whose key only got smaller can never need
// to move towards the leaves, so only the path to the root is examined.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Up(i int) {
	h.up(i)
}

// Remove removes and returns the element at index i from the heap.
// The complexity is O(log n) where n = h.Len().
func (h *Heap[E]) Remove(i int) E {
	n := len(h.Items) - 1
	if n != i {
		h.swap(i, n)
		if !h.down(i, n) {
			h.up(i)
		}
	}
	return h.pop()
}

func (h *Heap[E]) swap(i, j int) {
	h.Items[i], h.Items[j] = h.Items[j], h.Items[i]
	if h.setIndex != nil {
		h.setIndex(&h.Items[i], i)
		h.setIndex(&h.Items[j], j)
	}
}

func (h *Heap[E]) pop() E {
	n := len(h.Items) - 1
	x := h.Items[n]
	var zero E
	h.Items[n] = zero // don't hold on to popped references
	h.Items = h.Items[0:n]
	return x
}

func (h *Heap[E]) up(j int) {
	for j > 0 {
		i := (j - 1) / 2 // parent
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[E]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(h.Items[j2], h.Items[j1]) {
			j = j2 // right child
		}
		if !h.less(h.Items[j], h.Items[i]) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}
