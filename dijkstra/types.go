// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on grids.
//
// Dijkstra computes the minimum-cost distance from a single source cell to
// every reachable cell of a grid.Grid under a movement.Movement strategy.
// Steps follow exactly the rules used by A*: blocked cells are impassable and
// diagonals may not cut corners.
//
// Complexity:
//
//	– Time:  O(N log N)   where N = R×C×d (d = 4 or 8 neighbors per cell)
//	   • Each cell is finalized at most once.
//	   • Each relaxation may push into the priority queue (lazy decrease-key).
//	– Space: O(R×C)
//
// Options:
//
//	– Source:      starting cell (must be in bounds and free).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; cells beyond it are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGrid           if the provided grid pointer is nil.
//	– ErrNilMovement       if no movement strategy is supplied.
//	– ErrSourceOutOfBounds if the source cell lies outside the grid.
//	– ErrSourceBlocked     if the source cell is an obstacle.
//	– ErrBadMaxDistance    if MaxDistance < 0.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Distances(
//	    g, movement.EightWay{},
//	    dijkstra.Source(grid.Cell{Row: 0, Col: 0}),
//	    dijkstra.WithReturnPath(),
//	)
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Distances.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNilMovement indicates that no movement strategy was supplied.
	ErrNilMovement = errors.New("dijkstra: movement is nil")

	// ErrSourceOutOfBounds indicates that the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source cell out of bounds")

	// ErrSourceBlocked indicates that the source cell is an obstacle.
	ErrSourceBlocked = errors.New("dijkstra: source cell is blocked")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell (must be in bounds and free).
// ReturnPath  – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance – optional cap on distances to explore (cells beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      grid.Cell // The source cell
	ReturnPath  bool      // Whether to return the predecessor map
	MaxDistance float64   // Maximum distance to explore

	err error // recorded by invalid options, surfaced by Distances
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Defaults to (0,0).
func Source(c grid.Cell) Option {
	return func(o *Options) {
		o.Source = c
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Cells whose shortest distance would exceed this value are not reported.
// Negative values are recorded and surface as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Source:      (0,0).
//   - ReturnPath:  false (predecessor map not returned).
//   - MaxDistance: +Inf (explore everything reachable).
func DefaultOptions() Options {
	return Options{
		Source:      grid.Cell{},
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
