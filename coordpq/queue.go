package coordpq

import (
	"container/heap"

	"github.com/jrjojr/byul/coord"
)

// Entry is one (cost, coord) pair held by the queue.
type Entry struct {
	Cost  float32
	Value coord.Coord
	seq   int64
}

type innerHeap []Entry

func (h innerHeap) Len() int { return len(h) }
func (h innerHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}
	return h[i].seq < h[j].seq // FIFO tie-break by insertion order
}
func (h innerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x any)   { *h = append(*h, x.(Entry)) }
func (h *innerHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Queue is a min-heap of (cost, Coord) entries with insertion-order
// tie-break on equal cost.
type Queue struct {
	h       innerHeap
	nextSeq int64
}

// New builds an empty Queue.
func New() *Queue {
	q := &Queue{}
	heap.Init(&q.h)
	return q
}

// Push inserts (cost, value). Tie-break order is this call's position
// relative to other Push calls with the same cost.
func (q *Queue) Push(cost float32, value coord.Coord) {
	heap.Push(&q.h, Entry{Cost: cost, Value: value, seq: q.nextSeq})
	q.nextSeq++
}

// Pop removes and returns the lowest-cost entry; ok is false if empty.
func (q *Queue) Pop() (Entry, bool) {
	if q.h.Len() == 0 {
		return Entry{}, false
	}
	return heap.Pop(&q.h).(Entry), true
}

// Peek returns the lowest-cost entry without removing it.
func (q *Queue) Peek() (Entry, bool) {
	if q.h.Len() == 0 {
		return Entry{}, false
	}
	return q.h[0], true
}

// PeekCost returns the lowest cost currently queued.
func (q *Queue) PeekCost() (float32, bool) {
	e, ok := q.Peek()
	return e.Cost, ok
}

// Contains reports whether any entry matches value, regardless of cost.
func (q *Queue) Contains(value coord.Coord) bool {
	for _, e := range q.h {
		if e.Value.Equal(value) {
			return true
		}
	}
	return false
}

// Remove deletes the entry matching both cost and value, reporting
// whether one was found. O(n) scan + O(log n) heap fix.
func (q *Queue) Remove(cost float32, value coord.Coord) bool {
	for i, e := range q.h {
		if e.Cost == cost && e.Value.Equal(value) {
			heap.Remove(&q.h, i)
			return true
		}
	}
	return false
}

// Len returns the number of queued entries.
func (q *Queue) Len() int { return q.h.Len() }

// Entries returns a snapshot copy of every queued entry, in no particular
// order. Used by callers (e.g. SMA*) that need to know exactly which
// values a trim operation discarded.
func (q *Queue) Entries() []Entry {
	out := make([]Entry, len(q.h))
	copy(out, q.h)
	return out
}

// TrimWorst drops the n highest-cost entries, used by SMA*'s memory
// bound. Ties among the worst entries are dropped oldest-insertion-first,
// consistent with the queue's own FIFO tie-break.
func (q *Queue) TrimWorst(n int) {
	if n <= 0 {
		return
	}
	sorted := make(innerHeap, len(q.h))
	copy(sorted, q.h)
	// Sort worst-first: by cost descending, and within equal cost by seq
	// ascending, so the oldest entry among ties is dropped first.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			a, b := sorted[j-1], sorted[j]
			swap := a.Cost < b.Cost || (a.Cost == b.Cost && a.seq > b.seq)
			if !swap {
				break
			}
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	drop := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		drop[sorted[i].seq] = true
	}
	kept := make(innerHeap, 0, len(q.h)-n)
	for _, e := range q.h {
		if !drop[e.seq] {
			kept = append(kept, e)
		}
	}
	q.h = kept
	heap.Init(&q.h)
}
