package sokosolve

// stateHeap is the best-first frontier: a binary min-heap on state
// priority driven through container/heap. Swap keeps every state's
// heapIndex equal to its physical slot so the reopen path can sift a
// state from wherever it currently sits; Pop leaves the -1 sentinel
// behind, which is what marks a state as expanded.
type stateHeap []*state

func (h stateHeap) Len() int {
	return len(h)
}

func (h stateHeap) Less(i, j int) bool {
	return h[i].priority < h[j].priority
}

func (h stateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = int32(i)
	h[j].heapIndex = int32(j)
}

func (h *stateHeap) Push(x any) {
	s := x.(*state)
	s.heapIndex = int32(len(*h))
	*h = append(*h, s)
}

func (h *stateHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.heapIndex = -1
	*h = old[:n-1]
	return s
}
