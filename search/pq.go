package search

// pqItem is a heap entry: a cell index, its priority (g for Dijkstra, g+h
// for A*) and the push sequence number that orders equal priorities.
type pqItem struct {
	idx  int32
	prio float64
	seq  uint64
}

// nodePQ is a min-heap of pqItem for container/heap. Entries are never
// updated in place; a better distance pushes a new entry and the stale one
// is skipped when popped.
type nodePQ []pqItem

// Len returns the number of entries.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by push order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio < pq[j].prio
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

// Pop removes the last entry; called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
