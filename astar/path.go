package astar

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/movement"
)

// Cost returns the total step cost of p under m. See PathCost.
func (p Path) Cost(m movement.Movement) float64 {
	return PathCost(p, m)
}

// Steps returns the number of moves in p (len-1, or 0 for an empty path).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Diagonals counts the steps of p whose row and column both change.
func (p Path) Diagonals() int {
	n := 0
	for i := 1; i < len(p); i++ {
		if p[i].Sub(p[i-1]).Diagonal() {
			n++
		}
	}
	return n
}

// Validate checks that every consecutive pair of p is a legal single step
// on g under m: adjacent per m, destination free, no corner cut.
// The first cell must be free too.
// Returns ErrEmptyPath or a wrapped ErrIllegalMove naming the offending step.
func (p Path) Validate(g *grid.Grid, m movement.Movement) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if g.Blocked(p[0]) {
		return fmt.Errorf("%w: start %v is blocked", ErrIllegalMove, p[0])
	}
	for i := 1; i < len(p); i++ {
		if !movement.Legal(g, m, p[i-1], p[i]) {
			return fmt.Errorf("%w: step %d %v→%v", ErrIllegalMove, i, p[i-1], p[i])
		}
	}

	return nil
}

// Connects reports an error unless p runs from start to end.
func (p Path) Connects(start, end grid.Cell) error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	if p[0] != start || p[len(p)-1] != end {
		return fmt.Errorf("%w: got %v→%v, want %v→%v",
			ErrEndpointMismatch, p[0], p[len(p)-1], start, end)
	}
	return nil
}

// Pairs returns the path as [row, col] pairs, e.g. for JSON encoding.
func (p Path) Pairs() [][2]int {
	out := make([][2]int, len(p))
	for i, c := range p {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}
