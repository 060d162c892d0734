package sokosolve

// The grid is the level padded with a one tile wall border, flattened
// row-major into a single index space. With the border in place every
// non-wall tile has all four neighbours inside the grid, so direction
// arithmetic needs no bounds checks, only a wall test.

// actions pairs with the direction order below: index i is the plain
// move, index i+4 the same move pushing a crate. The order is part of
// the solver contract; it fixes tie-breaking and therefore the exact
// action strings breadth-first search produces.
const actions = "lrduLRDU"

// geometry describes the padded grid shared by a context and the
// problems solved with it.
type geometry struct {
	width  int // padded width (level width + 2)
	height int // padded height (level height + 2)
	area   int
	words  int // words per tile set
}

func newGeometry(width, height uint8) geometry {
	w := int(width) + 2
	h := int(height) + 2
	return geometry{
		width:  w,
		height: h,
		area:   w * h,
		words:  (w*h + 63) / 64,
	}
}

// directions returns the four cardinal offsets in visit order:
// left, right, down, up.
func (g geometry) directions() [4]int {
	return [4]int{-1, 1, g.width, -g.width}
}

// orthogonal returns the offset perpendicular to d. Horizontal and
// vertical offsets sum with their perpendicular to width+1 in absolute
// terms, which gives a branch-free derivation.
func (g geometry) orthogonal(d int) int {
	return g.width + 1 - abs(d)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
