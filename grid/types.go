package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal directions to Conn4.
	Conn8
)

var (
	orthogonalOffsets = []Delta{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = []Delta{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allOffsets        = append(append([]Delta{}, orthogonalOffsets...), diagonalOffsets...)
)

// Offsets returns the step offsets for the connectivity, cardinal moves first.
// The returned slice is shared; callers must not modify it.
func (c Connectivity) Offsets() []Delta {
	if c == Conn8 {
		return allOffsets
	}
	return orthogonalOffsets
}

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Cell identifies a grid position by row and column, both 0-indexed.
type Cell struct {
	Row, Col int
}

// Add returns the cell reached from c by applying d.
func (c Cell) Add(d Delta) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Sub returns the offset that leads from o to c.
func (c Cell) Sub(o Cell) Delta {
	return Delta{DRow: c.Row - o.Row, DCol: c.Col - o.Col}
}

// Less orders cells by row, then by column.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Delta is a step offset between two cells.
type Delta struct {
	DRow, DCol int
}

// Diagonal reports whether both components of d are non-zero.
func (d Delta) Diagonal() bool {
	return d.DRow != 0 && d.DCol != 0
}

// Grid is an immutable rectangular map of free and blocked cells.
// blocked is stored row-major: index = row*cols + col.
type Grid struct {
	rows, cols int
	blocked    []bool
}
