package sokosolve

import "github.com/bits-and-blooms/bitset"

// Shared successor generation for both drivers. A transition either
// walks the player onto a free tile, in which case the child borrows
// the parent's crate set, or pushes a crate, in which case a fresh
// stride is taken from the crate arena. Pushes are pruned against
// walls, other crates, the static deadlock map and the single-push 2x2
// guard before the stride is taken.

// step computes the transition out of parent in direction index di.
// ok is false when the move is illegal or pruned. When pushed is true
// the returned crate set is a freshly taken arena stride; the caller
// must either admit the child or release the stride.
func (c *Context) step(p *Problem, parent *state, di int) (player int, crates *bitset.BitSet, action byte, pushed, ok bool) {
	d := c.directions()[di]
	player = int(parent.player) + d
	if p.walls.Test(uint(player)) {
		return
	}
	action = actions[di]
	crates = parent.crates
	if crates.Test(uint(player)) {
		next := player + d
		if p.walls.Test(uint(next)) || crates.Test(uint(next)) || p.deadlocks.Test(uint(next)) {
			return
		}
		if pushDeadlocks(p, crates, next, d) {
			return
		}
		fresh := c.nextCrates()
		parent.crates.Copy(fresh)
		fresh.Set(uint(next))
		fresh.Clear(uint(player))
		crates = fresh
		action = actions[di+4]
		pushed = true
	}
	ok = true
	return
}

// pushDeadlocks is the single-push 2x2 guard: given the tile a crate is
// being pushed onto and the push direction, it examines the tile ahead,
// the two orthogonal neighbours and their completing diagonals. If
// either side closes a full 2x2 of walls and crates containing any
// off-goal crate, the pushed crate can never be recovered.
func pushDeadlocks(p *Problem, crates *bitset.BitSet, position, direction int) bool {
	stuck := 0
	if !p.goals.Test(uint(position)) {
		stuck = 1
	}
	ahead := position + direction
	aheadCrate, aheadWall := crates.Test(uint(ahead)), p.walls.Test(uint(ahead))
	if !aheadCrate && !aheadWall {
		// The crate can move at least one more step; no 2x2 can close.
		return false
	}
	if aheadCrate && !p.goals.Test(uint(ahead)) {
		stuck++
	}
	ortho := p.orthogonal(direction)
	for _, o := range [2]int{ortho, -ortho} {
		sideStuck := stuck // each side closes its own 2x2
		side := position + o
		sideCrate, sideWall := crates.Test(uint(side)), p.walls.Test(uint(side))
		if !sideCrate && !sideWall {
			continue
		}
		if sideCrate && !p.goals.Test(uint(side)) {
			sideStuck++
		}
		diagonal := ahead + o
		diagCrate, diagWall := crates.Test(uint(diagonal)), p.walls.Test(uint(diagonal))
		if !diagCrate && !diagWall {
			continue
		}
		if diagCrate && !p.goals.Test(uint(diagonal)) {
			sideStuck++
		}
		if sideStuck > 0 {
			return true
		}
	}
	return false
}

// heuristicFor sums the pull distance of every crate. Only pushing
// transitions change it, so non-pushing children inherit the parent's
// value without calling this.
func heuristicFor(p *Problem, crates *bitset.BitSet) int {
	h := 0
	for i, ok := crates.NextSet(0); ok; i, ok = crates.NextSet(i + 1) {
		h += p.heuristics[i]
	}
	return h
}

// seed stages the root state. Its crate set borrows the problem's
// initial layout; no arena stride is consumed for it.
func (c *Context) seed(p *Problem) *state {
	root := c.nextState()
	*root = state{
		player:    p.player,
		crates:    p.crates,
		heapIndex: -1,
	}
	c.freeState++
	_, h := c.index.lookup(root)
	c.index.insert(root, h)
	return root
}

// reconstruct walks the parent chain back to the root, writing actions
// right to left. action is the final edge, cost its total path length.
func reconstruct(parent *state, action byte, cost int) string {
	buf := make([]byte, cost)
	buf[cost-1] = action
	for i := cost - 2; i >= 0; i-- {
		buf[i] = parent.action
		parent = parent.parent
	}
	return string(buf)
}
