package movement_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/movement"
)

func open(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.Open(rows, cols)
	require.NoError(t, err)
	return g
}

func TestNeighbors_InBoundsOnly(t *testing.T) {
	g := open(t, 3, 3)
	cases := []struct {
		name string
		m    movement.Movement
		at   grid.Cell
		want int
	}{
		{"FourCorner", movement.FourWay{}, grid.Cell{Row: 0, Col: 0}, 2},
		{"FourEdge", movement.FourWay{}, grid.Cell{Row: 0, Col: 1}, 3},
		{"FourCenter", movement.FourWay{}, grid.Cell{Row: 1, Col: 1}, 4},
		{"EightCorner", movement.EightWay{}, grid.Cell{Row: 2, Col: 2}, 3},
		{"EightEdge", movement.EightWay{}, grid.Cell{Row: 1, Col: 0}, 5},
		{"EightCenter", movement.EightWay{}, grid.Cell{Row: 1, Col: 1}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nbs := tc.m.Neighbors(g, tc.at)
			assert.Len(t, nbs, tc.want)
			for _, nb := range nbs {
				assert.True(t, g.InBounds(nb.Cell), "neighbor %v out of bounds", nb.Cell)
				assert.Equal(t, nb.Cell, tc.at.Add(nb.Delta))
			}
		})
	}
}

func TestMoveCost(t *testing.T) {
	card := grid.Delta{DRow: 1, DCol: 0}
	diag := grid.Delta{DRow: -1, DCol: 1}

	assert.Equal(t, 1.0, movement.FourWay{}.MoveCost(card))
	assert.Equal(t, 1.0, movement.EightWay{}.MoveCost(card))
	assert.InDelta(t, math.Sqrt2, movement.EightWay{}.MoveCost(diag), 1e-12)
}

func TestHeuristic(t *testing.T) {
	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 5}
	assert.Equal(t, 8.0, movement.FourWay{}.Heuristic(a, b))
	assert.Equal(t, 5.0, movement.EightWay{}.Heuristic(a, b))
	assert.Equal(t, movement.FourWay{}.Heuristic(b, a), movement.FourWay{}.Heuristic(a, b))
	assert.Zero(t, movement.EightWay{}.Heuristic(b, b))
}

// TestCutsCorner covers the 2×2 pinch: (0,1) and (1,0) blocked.
func TestCutsCorner(t *testing.T) {
	g, err := grid.New([][]bool{
		{false, true},
		{true, false},
	})
	require.NoError(t, err)

	from := grid.Cell{Row: 0, Col: 0}
	to := grid.Cell{Row: 1, Col: 1}
	assert.True(t, movement.CutsCorner(g, from, to.Sub(from)))
	assert.False(t, movement.Legal(g, movement.EightWay{}, from, to))

	// only one side blocked still rejects the move
	half, err := grid.New([][]bool{
		{false, true},
		{false, false},
	})
	require.NoError(t, err)
	assert.True(t, movement.CutsCorner(half, from, to.Sub(from)))
	assert.True(t, movement.Legal(half, movement.EightWay{}, from, grid.Cell{Row: 1, Col: 0}))

	assert.False(t, movement.CutsCorner(g, from, grid.Delta{DRow: 0, DCol: 1}), "cardinal steps never cut")
}

func TestLegal(t *testing.T) {
	g := open(t, 3, 3)
	a := grid.Cell{Row: 1, Col: 1}

	assert.True(t, movement.Legal(g, movement.FourWay{}, a, grid.Cell{Row: 0, Col: 1}))
	assert.False(t, movement.Legal(g, movement.FourWay{}, a, grid.Cell{Row: 0, Col: 0}), "diagonal under FourWay")
	assert.True(t, movement.Legal(g, movement.EightWay{}, a, grid.Cell{Row: 0, Col: 0}))
	assert.False(t, movement.Legal(g, movement.EightWay{}, a, a), "staying put")
	assert.False(t, movement.Legal(g, movement.EightWay{}, a, grid.Cell{Row: 1, Col: 3}), "not adjacent")
}

func TestByName(t *testing.T) {
	for _, name := range []string{"four", "4", "Cardinal"} {
		m, err := movement.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, "four", m.Name())
	}
	for _, name := range []string{"eight", "8", " DIAGONAL "} {
		m, err := movement.ByName(name)
		require.NoError(t, err)
		assert.Equal(t, "eight", m.Name())
	}
	_, err := movement.ByName("hex")
	assert.ErrorIs(t, err, movement.ErrUnknownMovement)
}
