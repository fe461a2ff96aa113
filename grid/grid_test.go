package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]bool
		err   error
	}{
		{"EmptyRows", [][]bool{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{false, true}, {false}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]bool{{false, false}, {false, true}}
	g, err := grid.New(in)
	require.NoError(t, err)

	in[0][0] = true
	assert.False(t, g.Blocked(grid.Cell{Row: 0, Col: 0}))
	assert.True(t, g.Blocked(grid.Cell{Row: 1, Col: 1}))

	m := g.Matrix()
	m[1][1] = false
	assert.True(t, g.Blocked(grid.Cell{Row: 1, Col: 1}), "Matrix must return a copy")
}

// TestInBounds checks InBounds and Blocked on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New([][]bool{
		{false, true, false},
		{true, false, true},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.BlockedCount())

	for _, c := range []grid.Cell{{0, 0}, {1, 2}, {1, 1}} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []grid.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if !g.Blocked(c) {
			t.Errorf("Blocked(%v)=false; out-of-bounds cells must count as blocked", c)
		}
	}
	assert.True(t, g.Free(grid.Cell{Row: 1, Col: 1}))
	assert.False(t, g.Free(grid.Cell{Row: 0, Col: 1}))
}

func TestOpen(t *testing.T) {
	g, err := grid.Open(3, 4)
	require.NoError(t, err)
	assert.Zero(t, g.BlockedCount())
	assert.Len(t, g.Cells(), 12)
	assert.Equal(t, grid.Cell{Row: 0, Col: 1}, g.Cells()[1])

	_, err = grid.Open(0, 4)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

//----------------------------------------------------------------------------//
// Cell and Delta Tests
//----------------------------------------------------------------------------//

func TestCell_Arithmetic(t *testing.T) {
	c := grid.Cell{Row: 2, Col: 3}
	d := grid.Delta{DRow: -1, DCol: 1}

	assert.Equal(t, grid.Cell{Row: 1, Col: 4}, c.Add(d))
	assert.Equal(t, d, c.Add(d).Sub(c))
	assert.True(t, d.Diagonal())
	assert.False(t, grid.Delta{DRow: 0, DCol: 1}.Diagonal())
	assert.Equal(t, "(2,3)", c.String())
}

func TestCell_Less(t *testing.T) {
	assert.True(t, grid.Cell{Row: 0, Col: 5}.Less(grid.Cell{Row: 1, Col: 0}))
	assert.True(t, grid.Cell{Row: 1, Col: 0}.Less(grid.Cell{Row: 1, Col: 1}))
	assert.False(t, grid.Cell{Row: 1, Col: 1}.Less(grid.Cell{Row: 1, Col: 1}))
}

func TestConnectivity_Offsets(t *testing.T) {
	assert.Len(t, grid.Conn4.Offsets(), 4)
	assert.Len(t, grid.Conn8.Offsets(), 8)
	for _, d := range grid.Conn4.Offsets() {
		assert.False(t, d.Diagonal(), "Conn4 offset %v must be cardinal", d)
	}
	// cardinal moves come first under Conn8
	for i, d := range grid.Conn8.Offsets() {
		assert.Equal(t, i >= 4, d.Diagonal(), "Conn8 offset %d = %v", i, d)
	}
	assert.Equal(t, "conn4", grid.Conn4.String())
	assert.Equal(t, "conn8", grid.Conn8.String())
}
