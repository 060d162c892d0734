package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, width, height uint8, level string, capacity int) (*Context, *Problem) {
	t.Helper()
	ctx := NewContext(width, height, capacity)
	require.NotNil(t, ctx)
	p := ctx.NewProblem()
	p.Parse(level)
	return ctx, p
}

func TestParseCompilability(t *testing.T) {
	tests := []struct {
		name          string
		width, height uint8
		level         string
		compilable    bool
	}{
		{"minimal pushable level", 3, 1, "01A", true},
		{"already solved", 2, 1, "Ag", false},
		{"crate without goal", 3, 1, "A1.", false},
		{"goal without crate", 3, 1, "A0.", false},
		{"two players", 4, 1, "AA10", false},
		{"no player", 3, 1, "10.", false},
		{"player on goal counts once", 3, 1, "+1.", true},
		{"goals outnumber crates", 3, 1, "+0.", false},
		{"crate on goal adds to both counts", 4, 1, "+1.g", true},
		{"unbalanced crate on goal", 5, 1, "A1.g0", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewContext(tc.width, tc.height, 16)
			p := ctx.NewProblem()
			require.Equal(t, tc.compilable, p.Parse(tc.level))
			require.Equal(t, tc.compilable, p.Compilable)
		})
	}
}

func TestParseSkipsNoiseAndStopsAtNul(t *testing.T) {
	ctx := NewContext(3, 1, 16)
	p := ctx.NewProblem()

	// Unrecognized characters are skipped wherever they appear.
	require.True(t, p.Parse(" 0\n1 x A "))
	require.True(t, p.PotentiallySolvable)

	// Trailing garbage past the declared area is ignored.
	q := ctx.NewProblem()
	require.True(t, q.Parse("01AWWWW11"))
	require.Equal(t, 1, q.goalCount)

	// A NUL byte terminates parsing; the rest of the grid stays wall.
	r := ctx.NewProblem()
	require.False(t, r.Parse("01\x00A"))
}

func TestHeuristicAndDeadlockMaps(t *testing.T) {
	_, p := mustParse(t, 5, 1, "A1.0.", 16)
	require.True(t, p.PotentiallySolvable)

	at := func(x, y int) int { return y*p.width + x }

	// Pull distances walk away from the goal only while the player
	// would have room behind the crate.
	assert.Equal(t, 0, p.heuristics[at(4, 1)])
	assert.Equal(t, 1, p.heuristics[at(3, 1)])
	assert.Equal(t, 2, p.heuristics[at(2, 1)])

	// The tile against the right wall can never be pushed out of, and
	// the tile against the left wall can never be pushed into the
	// corridor; both stay deadlocked with the sentinel distance.
	for _, tile := range []int{at(5, 1), at(1, 1)} {
		assert.True(t, p.deadlocks.Test(uint(tile)))
		assert.Equal(t, p.area, p.heuristics[tile])
	}
	for _, tile := range []int{at(2, 1), at(3, 1), at(4, 1)} {
		assert.False(t, p.deadlocks.Test(uint(tile)))
	}
}

func TestInitialWindowDeadlock(t *testing.T) {
	// The crate sits in the top-left corner: with the border walls it
	// completes a 2x2 of wall-or-crate while off goal.
	_, p := mustParse(t, 2, 2, "1.0A", 16)
	require.True(t, p.Compilable)
	require.False(t, p.PotentiallySolvable)
	require.True(t, p.anyWindowDeadlocked())
}

func TestReachabilitySegregation(t *testing.T) {
	// A wall column seals the player away from a crate and goal that
	// are otherwise fine: the level compiles but cannot be solved.
	_, p := mustParse(t, 7, 3, ".W.....AW.1..0.W.....", 64)
	require.True(t, p.Compilable)
	require.False(t, p.PotentiallySolvable)

	// The rejection comes from reachability, not the deadlock map.
	require.False(t, p.anyWindowDeadlocked())
	require.Zero(t, p.crates.IntersectionCardinality(p.deadlocks))
	require.False(t, p.playerReachesAll())
}

func TestFormatRoundTrip(t *testing.T) {
	ctx, p := mustParse(t, 5, 1, "A1.0.", 16)
	formatted := p.Format("\n")
	require.Equal(t, "WWWWWWW\nWA1.0.W\nWWWWWWW", formatted)

	// Reparsing the formatted grid (border included) yields an
	// equivalent problem: same verdicts, same tile counts, and the
	// same solution.
	ctx2 := NewContext(uint8(p.width), uint8(p.height), 16)
	p2 := ctx2.NewProblem()
	require.True(t, p2.Parse(p.Format("")))
	require.Equal(t, p.Compilable, p2.Compilable)
	require.Equal(t, p.PotentiallySolvable, p2.PotentiallySolvable)
	require.Equal(t, p.goalCount, p2.goalCount)
	require.Equal(t, p.crates.Count(), p2.crates.Count())

	first := NewSolver(ctx, p).Algorithm(BreadthFirst).Solve()
	second := NewSolver(ctx2, p2).Algorithm(BreadthFirst).Solve()
	require.Equal(t, first.Actions, second.Actions)
}

func TestProblemReuse(t *testing.T) {
	ctx, p := mustParse(t, 3, 1, "01A", 16)
	require.True(t, NewSolver(ctx, p).Algorithm(BreadthFirst).Solve().Solved)

	// Re-parsing replaces the level in place.
	require.False(t, p.Parse("0.A"))
	require.False(t, p.Compilable)

	require.True(t, p.Parse("01A"))
	result := NewSolver(ctx, p).Algorithm(BreadthFirst).Solve()
	require.Equal(t, "L", result.Actions)
}
