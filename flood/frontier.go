// Copyright 2015 the GoSpatial Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// licence that can be found in the LICENCE.txt file.

package flood

import "container/heap"

// frontierItem is one entry on the priority frontier: a candidate cell
// waiting to be flooded, keyed by elevation with insertion order as the
// tie-break so equal-elevation cells drain in FIFO order.
type frontierItem[T Number] struct {
	z   T
	seq uint64
	x   int
	y   int
}

type frontierHeap[T Number] []frontierItem[T]

func (h frontierHeap[T]) Len() int { return len(h) }

func (h frontierHeap[T]) Less(i, j int) bool {
	if h[i].z != h[j].z {
		return h[i].z < h[j].z
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap[T]) Push(x any) {
	*h = append(*h, x.(frontierItem[T]))
}

func (h *frontierHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Frontier is the monotonic priority queue at the heart of every
// Priority-Flood variant: a min-heap ordered by (elevation, insertion
// sequence). container/heap is the idiomatic stdlib mechanism here; no
// third-party generic heap implementation appears across the reference
// corpus, so the frontier is built directly on it rather than adapting the
// teacher's structures.PQueue, which is keyed by a single int priority and
// cannot express the stable elevation/sequence tie-break the algorithms
// require.
type Frontier[T Number] struct {
	items frontierHeap[T]
	seq   uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier[T Number]() *Frontier[T] {
	f := &Frontier[T]{}
	heap.Init(&f.items)
	return f
}

// Push inserts (x,y) at elevation z, recording the current insertion
// sequence for the stable tie-break.
func (f *Frontier[T]) Push(x, y int, z T) {
	heap.Push(&f.items, frontierItem[T]{z: z, seq: f.seq, x: x, y: y})
	f.seq++
}

// Pop removes and returns the lowest-elevation, earliest-inserted cell.
func (f *Frontier[T]) Pop() (x, y int, z T) {
	item := heap.Pop(&f.items).(frontierItem[T])
	return item.x, item.y, item.z
}

// Peek returns the lowest-elevation cell without removing it.
func (f *Frontier[T]) Peek() (x, y int, z T) {
	item := f.items[0]
	return item.x, item.y, item.z
}

// Len reports the number of cells waiting on the frontier.
func (f *Frontier[T]) Len() int { return len(f.items) }

// Empty reports whether the frontier holds no cells.
func (f *Frontier[T]) Empty() bool { return len(f.items) == 0 }

// pitRecord is one entry on the FIFO pit queue: a cell known to sit inside
// (or on the shore of) a plateau being drained at a fixed elevation.
type pitRecord[T Number] struct {
	z T
	x int
	y int
}

// pitQueue is a FIFO companion to Frontier. Draining a flat plateau through
// the heap would cost O(log n) per cell for no benefit, since every cell on
// the plateau shares the same elevation; the pit queue drains them in O(1)
// each, the optimization that distinguishes Improved from Original.
type pitQueue[T Number] struct {
	items []pitRecord[T]
	head  int
}

func newPitQueue[T Number]() *pitQueue[T] {
	return &pitQueue[T]{}
}

func (q *pitQueue[T]) push(x, y int, z T) {
	q.items = append(q.items, pitRecord[T]{z: z, x: x, y: y})
}

func (q *pitQueue[T]) pop() pitRecord[T] {
	r := q.items[q.head]
	q.head++
	if q.head > 4096 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return r
}

func (q *pitQueue[T]) front() pitRecord[T] {
	return q.items[q.head]
}

func (q *pitQueue[T]) empty() bool {
	return q.head >= len(q.items)
}
