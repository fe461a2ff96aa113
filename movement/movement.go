// Package movement defines how a path search may step between grid cells:
// which neighbors exist, what each step costs, and how far the goal is
// estimated to be.
//
// Two strategies are provided:
//
//   - FourWay:  up/down/left/right, unit cost, Manhattan heuristic.
//   - EightWay: FourWay plus diagonals costing √2, Chebyshev heuristic.
//
// Both heuristics are admissible and consistent for their cost structure,
// so a search that closes a cell on first pop still returns optimal paths.
//
// Diagonal steps must not cut corners: a diagonal move is legal only when
// both orthogonal cells it passes between are free (see CutsCorner).
package movement

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownMovement is returned by ByName for an unrecognized strategy name.
var ErrUnknownMovement = errors.New("movement: unknown movement strategy")

// Neighbor is a candidate next cell together with the step that reaches it.
type Neighbor struct {
	Cell  grid.Cell
	Delta grid.Delta
}

// Movement is the strategy consulted by searches for neighbor generation,
// step cost and goal estimation. Implementations must be stateless.
type Movement interface {
	// Name returns a short identifier, e.g. "four" or "eight".
	Name() string
	// Neighbors returns the in-bounds cells adjacent to c. Blocked cells and
	// corner-cutting diagonals are not filtered here.
	Neighbors(g *grid.Grid, c grid.Cell) []Neighbor
	// MoveCost returns the cost of a single step d.
	MoveCost(d grid.Delta) float64
	// Heuristic estimates the remaining cost from a to b without overestimating it.
	Heuristic(a, b grid.Cell) float64
}

// FourWay moves in the four cardinal directions at unit cost.
type FourWay struct{}

// EightWay moves in all eight directions; diagonals cost √2.
type EightWay struct{}

var (
	_ Movement = FourWay{}
	_ Movement = EightWay{}
)

// Name implements Movement.
func (FourWay) Name() string { return "four" }

// Neighbors implements Movement.
func (FourWay) Neighbors(g *grid.Grid, c grid.Cell) []Neighbor {
	return neighbors(g, c, grid.Conn4)
}

// MoveCost implements Movement. Every cardinal step costs 1.
func (FourWay) MoveCost(grid.Delta) float64 { return 1 }

// Heuristic implements Movement using the Manhattan distance |Δrow| + |Δcol|.
func (FourWay) Heuristic(a, b grid.Cell) float64 {
	dr, dc := absDiff(a, b)
	return float64(dr + dc)
}

// Name implements Movement.
func (EightWay) Name() string { return "eight" }

// Neighbors implements Movement.
func (EightWay) Neighbors(g *grid.Grid, c grid.Cell) []Neighbor {
	return neighbors(g, c, grid.Conn8)
}

// MoveCost implements Movement: 1 for cardinal steps, √2 for diagonal ones.
func (EightWay) MoveCost(d grid.Delta) float64 {
	if d.Diagonal() {
		return math.Sqrt2
	}
	return 1
}

// Heuristic implements Movement using the Chebyshev distance max(|Δrow|, |Δcol|).
func (EightWay) Heuristic(a, b grid.Cell) float64 {
	dr, dc := absDiff(a, b)
	return float64(max(dr, dc))
}

// CutsCorner reports whether the step d from c is a diagonal that would pass
// between blocked cells: the cell sharing c's column with the target
// (c.Row+d.DRow, c.Col) or the one sharing c's row (c.Row, c.Col+d.DCol).
// Cardinal steps never cut corners.
func CutsCorner(g *grid.Grid, c grid.Cell, d grid.Delta) bool {
	if !d.Diagonal() {
		return false
	}
	return g.Blocked(grid.Cell{Row: c.Row + d.DRow, Col: c.Col}) ||
		g.Blocked(grid.Cell{Row: c.Row, Col: c.Col + d.DCol})
}

// Legal reports whether a single step from -> to is allowed under m:
// to must be one of m's neighbors of from, free, and not cut a corner.
func Legal(g *grid.Grid, m Movement, from, to grid.Cell) bool {
	for _, nb := range m.Neighbors(g, from) {
		if nb.Cell != to {
			continue
		}
		return g.Free(to) && !CutsCorner(g, from, nb.Delta)
	}
	return false
}

// ByName resolves a strategy from a user-supplied name.
// Accepted (case-insensitive): "four", "4", "cardinal", "eight", "8", "diagonal".
func ByName(name string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "four", "4", "cardinal":
		return FourWay{}, nil
	case "eight", "8", "diagonal":
		return EightWay{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMovement, name)
	}
}

// neighbors yields the in-bounds cells around c for the given connectivity.
func neighbors(g *grid.Grid, c grid.Cell, conn grid.Connectivity) []Neighbor {
	offsets := conn.Offsets()
	out := make([]Neighbor, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, Neighbor{Cell: n, Delta: d})
		}
	}
	return out
}

func absDiff(a, b grid.Cell) (dr, dc int) {
	dr, dc = a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr, dc
}
