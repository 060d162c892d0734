package sokosolve

import "github.com/bits-and-blooms/bitset"

// state is one node of the search graph. States live in the context's
// arena; parent and nextDup point at other arena slots. The crate set is
// a borrow: either the problem's initial set (root), the parent's set
// (non-pushing moves) or a stride of the context's crate arena.
type state struct {
	priority  float64
	heuristic int
	cost      int
	parent    *state
	nextDup   *state // collision chain of the dedup index
	crates    *bitset.BitSet
	heapIndex int32 // position in the frontier heap, -1 when absent
	action    byte
	player    uint16
}

// Context owns the pre-allocated machinery one search needs: the state
// arena, the crate-set arena, the deduplication index and, for informed
// search, the frontier heap. A context is not safe for concurrent use;
// independent searches need disjoint contexts. It may be reused across
// searches and problems of the same geometry.
type Context struct {
	geometry

	capacity int // distinct states a search may admit

	states     []state          // capacity+1 records, slot 0 is the root
	crateWords []uint64         // backing storage for crate strides
	crateSets  []*bitset.BitSet // pre-built views, one per stride
	freeState  int              // next unused state record
	freeBits   int              // next unused crate stride

	index *stateIndex
	heap  stateHeap
}

// NewContext creates a context for levels of the given unpadded size.
// capacity bounds the number of distinct states a search may admit;
// arena sizes scale with it. Returns nil for a degenerate size.
func NewContext(width, height uint8, capacity int) *Context {
	if width == 0 || height == 0 || capacity <= 0 {
		return nil
	}
	c := &Context{
		geometry: newGeometry(width, height),
		capacity: capacity,
	}
	count := capacity + 1 // one extra slot for the root state
	c.states = make([]state, count)
	c.crateWords = make([]uint64, count*c.words)
	c.crateSets = make([]*bitset.BitSet, count)
	for i := range c.crateSets {
		c.crateSets[i] = tileSetOver(c.crateWords[i*c.words : (i+1)*c.words])
	}
	c.index = newStateIndex(count, c.words)
	return c
}

// reset rewinds the arenas and clears the index so a fresh search can
// run. Previously admitted states become garbage in place; nothing is
// freed.
func (c *Context) reset() {
	c.freeState = 0
	c.freeBits = 0
	c.index.clear()
	c.heap = c.heap[:0]
}

// nextState returns the arena slot a candidate child is staged in. The
// slot is only consumed (cursor advanced) once the dedup index admits
// the candidate, so a rejected child leaves no trace.
func (c *Context) nextState() *state {
	return &c.states[c.freeState]
}

// full reports whether the state arena is exhausted. Checked after each
// admission; the staging slot must always stay available.
func (c *Context) full() bool {
	return c.freeState == len(c.states)
}

// nextCrates takes the next crate stride. The matching rollback is
// releaseCrates; it is only legal while no other state references the
// stride, which holds for a pushed child rejected by the dedup index.
func (c *Context) nextCrates() *bitset.BitSet {
	s := c.crateSets[c.freeBits]
	c.freeBits++
	return s
}

func (c *Context) releaseCrates() {
	c.freeBits--
}
