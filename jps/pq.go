package jps

import "github.com/c2huc2hu/jps/field"

// nodeItem is the per-position search record: parent link for path
// reconstruction, g/h/f costs, the direction of arrival, a monotonic
// insertion counter for tie-breaking, and the item's heap index so the
// open set supports true decrease-key via heap.Fix.
type nodeItem struct {
	pos       field.Point
	parent    field.Point
	hasParent bool      // false only for the start node
	dir       direction // direction of arrival; meaningless when !hasParent
	g         float64   // cost-so-far from start
	h         float64   // heuristic estimate to the nearest goal
	fCost     float64   // g + h
	order     int64     // insertion sequence number
	index     int       // position in the heap, maintained by nodePQ
}

// nodePQ is a min-heap of *nodeItem implementing container/heap.
// Ordering: lower fCost, then lower h, then lower insertion order.
// The third key makes extraction fully deterministic, which in turn fixes
// which of several equal-cost optimal paths a search returns.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller fCost → higher priority,
// ties broken by smaller h, then by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].fCost != pq[j].fCost {
		return pq[i].fCost < pq[j].fCost
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].order < pq[j].order
}

// Swap swaps two elements and keeps their heap indices current.
func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds a new element x onto the heap. Called by heap.Push;
// x must be of type *nodeItem.
func (pq *nodePQ) Push(x any) {
	item := x.(*nodeItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

// Pop removes and returns the last element. Called by heap.Pop after the
// minimum has been swapped to the end.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*pq = old[:n-1]

	return item
}
