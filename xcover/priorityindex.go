package xcover

import "container/heap"

// priorityIndex is an ordered collection of the currently-active mandatory
// items, keyed by their available-option count ascending, with
// lexicographic (handle-order) tie-breaking so that repeated runs visit
// branches in the same order.
//
// It is implemented as an indexed binary heap: each entry tracks its own
// position in the heap so pop_min/remove/insert/update are all O(log n).
type priorityIndex struct {
	pq      pqueue
	entries map[ItemID]*pqEntry
}

type pqEntry struct {
	item    ItemID
	count   int
	heapIdx int // index within pq; -1 when not on the heap
}

func newPriorityIndex() *priorityIndex {
	return &priorityIndex{entries: make(map[ItemID]*pqEntry)}
}

// insert adds item to the index with the given available-option count. An
// item that was popped or removed earlier is pushed back with the new count.
// It is a no-op if item is currently on the heap (its stored count is left
// unchanged); callers needing to change the count of such an item should use
// update.
func (p *priorityIndex) insert(item ItemID, count int) {
	if e, ok := p.entries[item]; ok {
		if e.heapIdx < 0 {
			e.count = count
			heap.Push(&p.pq, e)
		}
		return
	}
	e := &pqEntry{item: item, count: count, heapIdx: -1}
	p.entries[item] = e
	heap.Push(&p.pq, e)
}

// remove deletes item from the index. It is a no-op if item is absent or
// already removed (e.g. an optional item, which is never indexed, or a
// mandatory item already popped by popMin).
func (p *priorityIndex) remove(item ItemID) {
	e, ok := p.entries[item]
	if !ok || e.heapIdx < 0 {
		return
	}
	heap.Remove(&p.pq, e.heapIdx)
}

// update changes the stored count for item and re-heapifies around it. It
// is a no-op if item is not currently on the heap (e.g. it was already
// popped as the current branch item, or is an optional item).
func (p *priorityIndex) update(item ItemID, newCount int) {
	e, ok := p.entries[item]
	if !ok || e.heapIdx < 0 {
		return
	}
	e.count = newCount
	heap.Fix(&p.pq, e.heapIdx)
}

// popMin extracts and returns the item with the fewest available options,
// or ok=false if the index is empty.
func (p *priorityIndex) popMin() (item ItemID, ok bool) {
	if len(p.pq) == 0 {
		return 0, false
	}
	e := heap.Pop(&p.pq).(*pqEntry)
	return e.item, true
}

func (p *priorityIndex) empty() bool { return len(p.pq) == 0 }

// pqueue implements heap.Interface over *pqEntry, breaking ties on item
// handle (equivalent to declaration order) so enumeration order is
// reproducible across runs.
type pqueue []*pqEntry

func (pq pqueue) Len() int { return len(pq) }

func (pq pqueue) Less(i, j int) bool {
	if pq[i].count != pq[j].count {
		return pq[i].count < pq[j].count
	}
	return pq[i].item < pq[j].item
}

func (pq pqueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].heapIdx = i
	pq[j].heapIdx = j
}

func (pq *pqueue) Push(x any) {
	e := x.(*pqEntry)
	e.heapIdx = len(*pq)
	*pq = append(*pq, e)
}

func (pq *pqueue) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	e.heapIdx = -1
	*pq = old[:n-1]
	return e
}
