package astar

import (
	"github.com/rogpeppe/gridpath/grid"
	"github.com/rogpeppe/gridpath/heap"
)

// PriorityQueue is the open set of a search: a binary min-heap of
// nodes ordered by F, with ties going to the smaller H.
//
// Each queued node records its own heap slot and the queue indexes
// nodes by position, so UpdatePriority finds its target in constant
// time rather than by scanning the heap.
type PriorityQueue struct {
	heap  *heap.Heap[*SearchNode]
	byPos map[grid.Point]*SearchNode
}

// NewPriorityQueue returns an empty queue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{
		heap: heap.New[*SearchNode](nil, (*SearchNode).less, func(n **SearchNode, i int) {
			(*n).heapIndex = i
		}),
		byPos: make(map[grid.Point]*SearchNode),
	}
}

// Insert adds n to the queue.
func (q *PriorityQueue) Insert(n *SearchNode) {
	q.heap.Push(n)
	q.byPos[n.Position] = n
}

// ExtractMin removes and returns the node with the smallest key,
// or nil if the queue is empty.
func (q *PriorityQueue) ExtractMin() *SearchNode {
	if q.heap.Len() == 0 {
		return nil
	}
	n := q.heap.Pop()
	n.heapIndex = -1
	if q.byPos[n.Position] == n {
		delete(q.byPos, n.Position)
	}
	return n
}

// UpdatePriority finds the queued node at n's position and, if g is
// strictly less than its current G, sets its parent, G and H and
// restores the heap order. Otherwise it does nothing. It reports
// whether the node was updated. A search always passes the same H,
// so the node only ever moves towards the root.
func (q *PriorityQueue) UpdatePriority(n, parent *SearchNode, g, h float64) bool {
	queued, ok := q.byPos[n.Position]
	if !ok || g >= queued.G {
		return false
	}
	old := *queued
	queued.Parent = parent
	queued.G = g
	queued.H = h
	if old.less(queued) {
		// Only possible if the caller passed a larger H than before.
		q.heap.Fix(queued.heapIndex)
	} else {
		q.heap.Up(queued.heapIndex)
	}
	return true
}

// Contains reports whether a node at p is queued.
func (q *PriorityQueue) Contains(p grid.Point) bool {
	_, ok := q.byPos[p]
	return ok
}

// Len returns the number of queued nodes.
func (q *PriorityQueue) Len() int {
	return q.heap.Len()
}

// IsEmpty reports whether the queue holds no nodes.
func (q *PriorityQueue) IsEmpty() bool {
	return q.heap.Len() == 0
}
