package maze

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrBadDimensions indicates a random maze with fewer than one row or column.
	ErrBadDimensions = errors.New("maze: rows and cols must be at least 1")
	// ErrBadDensity indicates an obstacle density outside [0,1].
	ErrBadDensity = errors.New("maze: density must be within [0,1]")
)

// Random generates a rows×cols maze in which each cell is blocked with
// probability density. Start is (0,0) and End is (rows-1, cols-1); both are
// always free. The same seed always yields the same maze.
// A solvable maze is not guaranteed.
func Random(rows, cols int, density float64, seed uint64) (*Maze, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}

	rng := rand.New(rand.NewSource(seed))
	start := grid.Cell{Row: 0, Col: 0}
	end := grid.Cell{Row: rows - 1, Col: cols - 1}

	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
		for c := range cells[r] {
			cells[r][c] = rng.Float64() < density
		}
	}
	cells[start.Row][start.Col] = false
	cells[end.Row][end.Col] = false

	g, err := grid.New(cells)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	return &Maze{Grid: g, Start: start, End: end}, nil
}
