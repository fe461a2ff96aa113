package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRegions_Conn4 verifies region detection with 4-neighbor connectivity.
func TestRegions_Conn4(t *testing.T) {
	// . # .
	// . # .
	// # # .
	g, err := New([][]bool{
		{false, true, false},
		{false, true, false},
		{true, true, false},
	})
	require.NoError(t, err)

	regions := g.Regions(Conn4)
	require.Len(t, regions, 2)
	require.ElementsMatch(t, []Cell{{0, 0}, {1, 0}}, regions[0])
	require.ElementsMatch(t, []Cell{{0, 2}, {1, 2}, {2, 2}}, regions[1])
}

// TestRegions_Conn8 verifies diagonal joins under Conn8, including corner pinches.
func TestRegions_Conn8(t *testing.T) {
	// . #
	// # .
	g, err := New([][]bool{
		{false, true},
		{true, false},
	})
	require.NoError(t, err)

	require.Len(t, g.Regions(Conn4), 2)
	require.Len(t, g.Regions(Conn8), 1)
}

func TestConnected(t *testing.T) {
	g, err := New([][]bool{
		{false, true, false},
		{false, true, false},
		{false, false, false},
	})
	require.NoError(t, err)

	require.True(t, g.Connected(Cell{0, 0}, Cell{0, 2}, Conn4))
	require.False(t, g.Connected(Cell{0, 0}, Cell{0, 1}, Conn4), "blocked endpoint")
	require.False(t, g.Connected(Cell{0, 0}, Cell{5, 5}, Conn4), "out-of-bounds endpoint")

	walled, err := New([][]bool{
		{false, true, false},
		{false, true, false},
	})
	require.NoError(t, err)
	require.False(t, walled.Connected(Cell{0, 0}, Cell{1, 2}, Conn8))
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := Open(3, 5)
	require.NoError(t, err)
	for i := 0; i < 15; i++ {
		require.Equal(t, i, g.index(g.cell(i)))
	}
}
