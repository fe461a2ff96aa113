package grid

// New constructs a Grid from a non-empty, rectangular 2D slice where
// blocked[r][c] == true marks an obstacle.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the input has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		copy(cells[r*cols:(r+1)*cols], blocked[r])
	}

	return &Grid{rows: rows, cols: cols, blocked: cells}, nil
}

// Open returns a rows×cols grid with every cell free.
// Returns ErrEmptyGrid if either dimension is < 1.
func Open(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	return &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether c is an obstacle. Cells outside the grid count as blocked.
// Complexity: O(1).
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// Free reports whether c is inside the grid and not blocked.
func (g *Grid) Free(c Cell) bool {
	return !g.Blocked(c)
}

// Cells returns every cell of the grid in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.rows*g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// BlockedCount returns the number of obstacle cells.
func (g *Grid) BlockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// Matrix returns a fresh copy of the traversability flags (true = blocked).
func (g *Grid) Matrix() [][]bool {
	out := make([][]bool, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]bool, g.cols)
		copy(out[r], g.blocked[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// index maps c to a row-major index: Row*cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// cell converts a row-major index back to a Cell.
func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}
