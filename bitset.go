package sokosolve

import "github.com/bits-and-blooms/bitset"

// Tile sets are bitset.BitSet views over word slices that the context or
// problem owns. Every set spans whole words (stride*64 logical bits) and
// bits at or beyond the grid area are written exactly once, at
// initialization, so word-level equality and comparison stay meaningful
// across sets of the same geometry.

// newTileSet allocates a zeroed tile set of the given word count.
func newTileSet(words int) *bitset.BitSet {
	return bitset.FromWithLength(uint(words*64), make([]uint64, words))
}

// tileSetOver wraps existing word storage without copying. The caller
// keeps ownership of the slice; this is how arena strides are viewed.
func tileSetOver(storage []uint64) *bitset.BitSet {
	return bitset.FromWithLength(uint(len(storage)*64), storage)
}

// fillTileSet sets every word, including the tail past the grid area.
func fillTileSet(s *bitset.BitSet) {
	words := s.Bytes()
	for i := range words {
		words[i] = ^uint64(0)
	}
}

// compareTileSets orders two equally sized tile sets word-lexicographically
// with word 0 most significant. Returns -1, 0 or 1. The dedup index relies
// on this being a total order consistent with Equal.
func compareTileSets(a, b *bitset.BitSet) int {
	aw, bw := a.Bytes(), b.Bytes()
	for i, w := range aw {
		switch {
		case w < bw[i]:
			return -1
		case w > bw[i]:
			return 1
		}
	}
	return 0
}
