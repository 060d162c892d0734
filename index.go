package sokosolve

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// stateIndex deduplicates states by (player, crate set). It is a hash
// table from the combined key hash to a chain of arena states linked
// through their nextDup field, so the hot loop never allocates chain
// nodes. The table is pre-sized from the arena capacity at construction
// and cleared, not rebuilt, between searches.
type stateIndex struct {
	table   map[uint64]*state
	scratch []byte // reused encoding buffer for crate-set hashing
}

func newStateIndex(capacity, words int) *stateIndex {
	return &stateIndex{
		table:   make(map[uint64]*state, capacity),
		scratch: make([]byte, words*8),
	}
}

// hash combines the player hash with the shifted crate-set hash. The
// shift keeps the combination from degenerating to either component
// alone when one side collides.
func (ix *stateIndex) hash(s *state) uint64 {
	var player [2]byte
	binary.LittleEndian.PutUint16(player[:], s.player)
	for i, w := range s.crates.Bytes() {
		binary.LittleEndian.PutUint64(ix.scratch[i*8:], w)
	}
	return xxhash.Sum64(player[:]) ^ (xxhash.Sum64(ix.scratch) << 1)
}

// lookup returns the indexed twin of s, or nil, along with the key hash
// so a following insert does not rehash.
func (ix *stateIndex) lookup(s *state) (*state, uint64) {
	h := ix.hash(s)
	for twin := ix.table[h]; twin != nil; twin = twin.nextDup {
		if twin.player == s.player && compareTileSets(twin.crates, s.crates) == 0 {
			return twin, h
		}
	}
	return nil, h
}

// insert adds s under the hash returned by lookup. The caller must have
// established that no twin exists.
func (ix *stateIndex) insert(s *state, h uint64) {
	s.nextDup = ix.table[h]
	ix.table[h] = s
}

func (ix *stateIndex) clear() {
	clear(ix.table)
}
