package sokosolve

import "github.com/bits-and-blooms/bitset"

// Problem is one level's immutable snapshot plus everything the
// preprocessing passes derive from it: the deadlock map, the
// pull-distance heuristic and the cheap solvability verdicts. It is
// read-only during search, so one problem may back any number of
// sequential searches, and its maps are shared by every state.
type Problem struct {
	geometry

	goalCount  int
	player     uint16
	walls      *bitset.BitSet
	goals      *bitset.BitSet
	crates     *bitset.BitSet // initial crate layout
	deadlocks  *bitset.BitSet // tiles no crate can ever leave towards a goal
	heuristics []int          // push distance to the nearest goal, area when unreachable

	// Compilable reports structural validity: exactly one player, as
	// many crates as goals (at least one), and not already solved.
	Compilable bool
	// PotentiallySolvable additionally requires that the fast rejection
	// tests pass: no initial 2x2 deadlock, no crate on a deadlock tile,
	// and the player able to reach every unpaired crate and goal. Only
	// potentially solvable problems are searched.
	PotentiallySolvable bool
}

// NewProblem allocates an empty problem matching the context geometry.
// Parse fills it; a problem may be re-parsed to hold another level.
func (c *Context) NewProblem() *Problem {
	return &Problem{
		geometry:   c.geometry,
		walls:      newTileSet(c.words),
		goals:      newTileSet(c.words),
		crates:     newTileSet(c.words),
		deadlocks:  newTileSet(c.words),
		heuristics: make([]int, c.area),
	}
}

// buildDeadlockMap runs a breadth-first search from every goal over
// reverse pushes: a crate on tile t+d can be pushed back to t only if
// the player could stand on t+2d, so the reverse step from t to t+d is
// admissible only when t+2d is not a wall. Visited tiles leave the
// deadlock set and record their push distance; everything else keeps
// the area sentinel and stays deadlocked.
func (p *Problem) buildDeadlockMap() {
	fillTileSet(p.deadlocks)
	for i := range p.heuristics {
		p.heuristics[i] = p.area
	}
	dirs := p.directions()
	queue := make([]int, 0, p.area)
	for goal := 0; goal < p.area; goal++ {
		if !p.goals.Test(uint(goal)) {
			continue
		}
		queue = append(queue[:0], goal)
		p.deadlocks.Clear(uint(goal))
		p.heuristics[goal] = 0
		for front := 0; front < len(queue); front++ {
			current := queue[front]
			cost := p.heuristics[current] + 1
			for _, d := range dirs {
				next := current + d
				if p.walls.Test(uint(next)) {
					continue
				}
				if !p.deadlocks.Test(uint(next)) && p.heuristics[next] <= cost {
					continue
				}
				if p.walls.Test(uint(next + d)) {
					continue
				}
				queue = append(queue, next)
				p.deadlocks.Clear(uint(next))
				p.heuristics[next] = cost
			}
		}
	}
}

// playerReachesAll flood-fills from the player across non-wall tiles
// (crates do not block: they may be pushed out of the way eventually)
// and requires the fill to cover every tile holding exactly one of
// crate or goal.
func (p *Problem) playerReachesAll() bool {
	reach := newTileSet(p.words)
	dirs := p.directions()
	stack := make([]int, 1, p.area)
	stack[0] = int(p.player)
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reach.Set(uint(current))
		for _, d := range dirs {
			next := current + d
			if p.walls.Test(uint(next)) || reach.Test(uint(next)) {
				continue
			}
			stack = append(stack, next)
		}
	}
	unpaired := p.crates.SymmetricDifference(p.goals)
	return reach.IsSuperSet(unpaired)
}

// anyWindowDeadlocked slides a 2x2 window over the padded grid. A
// window whose four tiles are all wall or crate freezes its crates
// forever; if any of them is off-goal the level is lost before the
// first move.
func (p *Problem) anyWindowDeadlocked() bool {
	window := [4]int{0, 1, p.width, p.width + 1}
	position := 0
	for y := 0; y < p.height-1; y++ {
		for x := 0; x < p.width-1; x++ {
			stuck := 0
			for _, offset := range window {
				tile := uint(position + offset)
				crate, wall := p.crates.Test(tile), p.walls.Test(tile)
				if !crate && !wall {
					stuck = 0
					break
				}
				if crate && !p.goals.Test(tile) {
					stuck++
				}
			}
			if stuck > 0 {
				return true
			}
			position++
		}
		position++ // skip the last column of the row
	}
	return false
}
