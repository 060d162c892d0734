package sokosolve

// solveBFS is the uninformed driver. Every edge costs one, so
// breadth-first order yields a shortest solution. The frontier needs no
// queue of its own: states are admitted into the arena in expansion
// order, so the arena region between front and the free cursor is the
// FIFO frontier.
func solveBFS(c *Context, p *Problem, maxIterations uint64) Result {
	if !p.PotentiallySolvable {
		return Result{}
	}
	c.reset()
	c.seed(p)

	front := 0
	var iterations uint64
	for front != c.freeState {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{Iterations: iterations, LimitExceeded: true}
		}
		iterations++
		parent := &c.states[front]
		front++
		cost := parent.cost + 1
		for di := 0; di < 4; di++ {
			player, crates, action, pushed, ok := c.step(p, parent, di)
			if !ok {
				continue
			}
			// Only a push can complete the level, and with unit costs
			// the goal test may run at generation time.
			if pushed && crates.Equal(p.goals) {
				return Result{
					Solved:     true,
					Actions:    reconstruct(parent, action, cost),
					Iterations: iterations,
				}
			}
			child := c.nextState()
			child.player = uint16(player)
			child.crates = crates
			child.action = action
			child.cost = cost
			child.parent = parent
			child.heapIndex = -1
			if twin, h := c.index.lookup(child); twin == nil {
				c.freeState++
				c.index.insert(child, h)
				if c.full() {
					return Result{Iterations: iterations, LimitExceeded: true}
				}
			} else if pushed {
				c.releaseCrates()
			}
		}
	}
	return Result{Iterations: iterations}
}
