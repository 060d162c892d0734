package sokosolve

import "container/heap"

// solveAStar is the informed driver. Priority is
// hFactor*heuristic + gFactor*cost, so (1,1) is A*, (0,1) uniform cost
// and (1,0) greedy best-first. The frontier is the indexed min-heap;
// when a successor hits a twin that is still queued at a higher cost,
// the twin is rewritten in place and sifted (decrease-key). Twins that
// already left the heap are never reopened.
func solveAStar(c *Context, p *Problem, hFactor, gFactor float64, maxIterations uint64) Result {
	if !p.PotentiallySolvable {
		return Result{}
	}
	c.reset()
	if c.heap == nil {
		c.heap = make(stateHeap, 0, len(c.states))
	}
	root := c.seed(p)
	root.heuristic = heuristicFor(p, root.crates)
	root.priority = hFactor * float64(root.heuristic) // cost is zero
	heap.Push(&c.heap, root)

	var iterations uint64
	for c.heap.Len() > 0 {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{Iterations: iterations, LimitExceeded: true}
		}
		iterations++
		parent := heap.Pop(&c.heap).(*state) // leaves heapIndex == -1
		cost := parent.cost + 1
		for di := 0; di < 4; di++ {
			player, crates, action, pushed, ok := c.step(p, parent, di)
			if !ok {
				continue
			}
			// Unit edge costs let the goal test run at generation time
			// instead of waiting for the state to leave the heap.
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
			twin, h := c.index.lookup(child)
			if twin == nil {
				if pushed {
					child.heuristic = heuristicFor(p, crates)
				} else {
					child.heuristic = parent.heuristic
				}
				child.priority = hFactor*float64(child.heuristic) + gFactor*float64(cost)
				c.freeState++
				c.index.insert(child, h)
				heap.Push(&c.heap, child)
				if c.full() {
					return Result{Iterations: iterations, LimitExceeded: true}
				}
				continue
			}
			if pushed {
				c.releaseCrates()
			}
			if twin.heapIndex >= 0 && twin.cost > cost {
				// Reached a queued state over a cheaper path: redirect
				// it and let it bubble up from where it sits.
				twin.parent = parent
				twin.action = action
				twin.cost = cost
				twin.priority = hFactor*float64(twin.heuristic) + gFactor*float64(cost)
				heap.Fix(&c.heap, int(twin.heapIndex))
			}
		}
	}
	return Result{Iterations: iterations}
}
