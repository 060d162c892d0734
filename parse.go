package sokosolve

import "strings"

// The tile alphabet. Parsing is deliberately forgiving: anything
// outside the alphabet (whitespace included) is skipped, a NUL byte or
// the end of the string stops parsing, and tiles past the declared area
// are ignored.
//
//	.    empty floor
//	W w  wall
//	A a  player
//	0    goal
//	1    crate
//	g G  crate on goal
//	+    player on goal
//	\0   stop

// Parse fills the problem from a row-major level string and runs every
// preprocessing pass. It returns whether the level is compilable; the
// solvability verdict lands in PotentiallySolvable. A problem may be
// reused to parse another level.
func (p *Problem) Parse(level string) bool {
	// Everything starts as wall so the border needs no special casing;
	// recognized tiles carve the interior out.
	fillTileSet(p.walls)
	p.goals.ClearAll()
	p.crates.ClearAll()

	position := p.width + 1 // tile (1,1), the first interior tile
	goalCount, crateCount, playerCount := 0, 0, 0
	index := 0
scan:
	for y := 2; y < p.height; y++ {
		for x := 2; x < p.width; x++ {
			for {
				if index >= len(level) {
					break scan
				}
				ch := level[index]
				index++
				if ch == 0 {
					break scan
				}
				switch ch {
				case 'W', 'w':
					// wall tiles are already set
				case '.':
					p.walls.Clear(uint(position))
				case '0':
					p.walls.Clear(uint(position))
					p.goals.Set(uint(position))
					goalCount++
				case '1':
					p.walls.Clear(uint(position))
					p.crates.Set(uint(position))
					crateCount++
				case 'A', 'a':
					p.walls.Clear(uint(position))
					p.player = uint16(position)
					playerCount++
				case 'g', 'G':
					p.walls.Clear(uint(position))
					p.goals.Set(uint(position))
					p.crates.Set(uint(position))
					goalCount++
					crateCount++
				case '+':
					p.walls.Clear(uint(position))
					p.goals.Set(uint(position))
					p.player = uint16(position)
					goalCount++
					playerCount++
				default:
					continue // unrecognized, try the next character
				}
				break
			}
			position++
		}
		position += 2 // jump over the right and left border columns
	}

	p.goalCount = goalCount
	// A level that is already solved has nothing to search, so it is
	// rejected here together with the count mismatches. Zero crates
	// fall out of the same equality test.
	valid := playerCount == 1 && goalCount == crateCount && !p.crates.Equal(p.goals)
	p.Compilable = valid

	if valid {
		valid = !p.anyWindowDeadlocked()
	}
	if valid {
		p.buildDeadlockMap()
		valid = p.crates.IntersectionCardinality(p.deadlocks) == 0
	}
	if valid {
		valid = p.playerReachesAll()
	}
	p.PotentiallySolvable = valid
	return p.Compilable
}

// Format renders the padded grid back to the tile alphabet, rows joined
// by separator. The output includes the border, so it parses back only
// into a problem whose unpadded size is this problem's padded size;
// there the border becomes a ring of interior walls and the result is
// an equivalent problem.
func (p *Problem) Format(separator string) string {
	var b strings.Builder
	b.Grow(p.area + (p.height-1)*len(separator))
	position := 0
	for y := 0; y < p.height; y++ {
		if y > 0 {
			b.WriteString(separator)
		}
		for x := 0; x < p.width; x++ {
			tile := uint(position)
			var ch byte
			switch {
			case p.walls.Test(tile):
				ch = 'W'
			case p.goals.Test(tile):
				ch = '0'
				if int(p.player) == position {
					ch = '+'
				} else if p.crates.Test(tile) {
					ch = 'g'
				}
			default:
				ch = '.'
				if int(p.player) == position {
					ch = 'A'
				} else if p.crates.Test(tile) {
					ch = '1'
				}
			}
			b.WriteByte(ch)
			position++
		}
	}
	return b.String()
}
