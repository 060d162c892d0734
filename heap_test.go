package sokosolve

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkHeapIndices(t *testing.T, h stateHeap) {
	t.Helper()
	for i, s := range h {
		require.Equal(t, int32(i), s.heapIndex, "state at slot %d carries index %d", i, s.heapIndex)
	}
}

func TestHeapPopsByPriority(t *testing.T) {
	h := make(stateHeap, 0, 8)
	for _, p := range []float64{5, 1, 4, 2, 3} {
		s := &state{priority: p, heapIndex: -1}
		heap.Push(&h, s)
		checkHeapIndices(t, h)
	}
	var got []float64
	for h.Len() > 0 {
		s := heap.Pop(&h).(*state)
		require.Equal(t, int32(-1), s.heapIndex)
		got = append(got, s.priority)
		checkHeapIndices(t, h)
	}
	require.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestHeapDecreaseKey(t *testing.T) {
	h := make(stateHeap, 0, 8)
	states := make([]*state, 0, 5)
	for _, p := range []float64{10, 20, 30, 40, 50} {
		s := &state{priority: p, heapIndex: -1}
		states = append(states, s)
		heap.Push(&h, s)
	}

	// Rewrite the worst state in place and sift it, as the reopen path
	// does, then make sure it surfaces first.
	worst := states[4]
	worst.priority = 1
	heap.Fix(&h, int(worst.heapIndex))
	checkHeapIndices(t, h)

	first := heap.Pop(&h).(*state)
	require.Same(t, worst, first)
	require.Equal(t, int32(-1), first.heapIndex)
	checkHeapIndices(t, h)
}
