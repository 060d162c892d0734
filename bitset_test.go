package sokosolve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareTileSets(t *testing.T) {
	tests := []struct {
		name string
		a, b []uint
		want int
	}{
		{"both empty", nil, nil, 0},
		{"equal", []uint{3, 70}, []uint{3, 70}, 0},
		{"first word decides low", []uint{1}, []uint{2}, -1},
		{"first word decides high", []uint{5}, []uint{2}, 1},
		{"word zero outweighs later words", []uint{63, 64, 65}, []uint{62, 100, 101}, 1},
		{"later word breaks tie", []uint{10, 70}, []uint{10, 71}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := newTileSet(2), newTileSet(2)
			for _, i := range tc.a {
				a.Set(i)
			}
			for _, i := range tc.b {
				b.Set(i)
			}
			require.Equal(t, tc.want, compareTileSets(a, b))
			require.Equal(t, -tc.want, compareTileSets(b, a))
			require.Equal(t, tc.want == 0, a.Equal(b))
		})
	}
}

func TestTileSetOverSharesStorage(t *testing.T) {
	words := make([]uint64, 2)
	s := tileSetOver(words)
	s.Set(65)
	require.Equal(t, uint64(2), words[1])
	words[0] = 1
	require.True(t, s.Test(0))
}

func TestFillTileSetCoversTail(t *testing.T) {
	s := newTileSet(2)
	fillTileSet(s)
	for _, w := range s.Bytes() {
		require.Equal(t, ^uint64(0), w)
	}
}
