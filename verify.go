package sokosolve

// Verify replays an action string against the problem's initial
// configuration and reports whether it is a legal, complete solution:
// every step stays out of walls, pushes are marked as pushes and move
// their crate onto a free tile, and the final crate layout covers the
// goals exactly. The problem is not modified.
func Verify(p *Problem, actions string) bool {
	crates := newTileSet(p.words)
	p.crates.Copy(crates)
	player := int(p.player)
	for i := 0; i < len(actions); i++ {
		var d int
		switch actions[i] {
		case 'l', 'L':
			d = -1
		case 'r', 'R':
			d = 1
		case 'd', 'D':
			d = p.width
		case 'u', 'U':
			d = -p.width
		default:
			return false
		}
		player += d
		if p.walls.Test(uint(player)) {
			return false
		}
		if crates.Test(uint(player)) {
			if actions[i] >= 'a' {
				return false // walked into a crate without declaring a push
			}
			next := player + d
			if p.walls.Test(uint(next)) || crates.Test(uint(next)) {
				return false
			}
			crates.Clear(uint(player))
			crates.Set(uint(next))
		}
	}
	return crates.Equal(p.goals)
}
