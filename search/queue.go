// SPDX-License-Identifier: MIT

package search

import "container/heap"

// openHeap is a min-heap of arena indices. Each node records its current heap
// position so that A* can remove an arbitrary entry in O(log n).
type openHeap struct {
	items []int
	a     *arena
	less  func(x, y *searchNode) bool
}

func newOpenHeap(a *arena, less func(x, y *searchNode) bool) *openHeap {
	return &openHeap{a: a, less: less}
}

// Len returns the number of items in the heap.
func (h *openHeap) Len() int { return len(h.items) }

// Less delegates to the strategy ordering.
func (h *openHeap) Less(i, j int) bool {
	return h.less(h.a.at(h.items[i]), h.a.at(h.items[j]))
}

// Swap swaps two entries and keeps their recorded positions in sync.
func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.a.at(h.items[i]).pos = i
	h.a.at(h.items[j]).pos = j
}

// Push is called by heap.Push; x must be an int arena index.
func (h *openHeap) Push(x interface{}) {
	i := x.(int)
	h.a.at(i).pos = len(h.items)
	h.items = append(h.items, i)
}

// Pop is called by heap.Pop.
func (h *openHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	i := old[n-1]
	h.items = old[:n-1]
	h.a.at(i).pos = -1

	return i
}

func (h *openHeap) push(i int) { heap.Push(h, i) }

func (h *openHeap) pop() int { return heap.Pop(h).(int) }

// remove deletes arena node i if it is currently queued.
func (h *openHeap) remove(i int) {
	if p := h.a.at(i).pos; p >= 0 {
		heap.Remove(h, p)
	}
}

// byCostThenID orders uniform-cost search: ascending g, then ID, then
// insertion order so equal (g, ID) duplicates pop deterministically.
func byCostThenID(x, y *searchNode) bool {
	if x.g != y.g {
		return x.g < y.g
	}
	if x.id != y.id {
		return x.id < y.id
	}

	return x.seq < y.seq
}

// byEstimateThenInsertion orders A*: ascending f, then insertion order.
func byEstimateThenInsertion(x, y *searchNode) bool {
	if x.f != y.f {
		return x.f < y.f
	}

	return x.seq < y.seq
}
