// Package astar defines the options, result and path types for A* search
// over a grid.Grid.
//
// Options:
//
//	– OnExpand: called each time a cell is closed (its optimal cost is final).
//	– OnPush:   called each time an entry is pushed onto the frontier.
//
// Errors (sentinel, path validation only; Search itself never fails):
//
//	– ErrEmptyPath   if a path has no cells.
//	– ErrIllegalMove if two consecutive cells are not a legal single step.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Path.Validate.
var (
	// ErrEmptyPath indicates that a path without any cell was supplied.
	ErrEmptyPath = errors.New("astar: path is empty")

	// ErrIllegalMove indicates that two consecutive cells of a path are not
	// connected by a legal step of the movement strategy.
	ErrIllegalMove = errors.New("astar: illegal move in path")

	// ErrEndpointMismatch indicates that a path does not start or end where expected.
	ErrEndpointMismatch = errors.New("astar: path endpoints do not match")
)

// Path is an ordered sequence of cells from start to goal, both inclusive.
type Path []grid.Cell

// Options configures the hooks of a single Search call.
//
// OnExpand – invoked with the cell and its final cost when it is closed.
// OnPush   – invoked with the cell, its estimated total cost and cost so far
//
//	whenever an entry is pushed onto the frontier (including the start).
type Options struct {
	OnExpand func(c grid.Cell, cost float64)
	OnPush   func(c grid.Cell, estimate, cost float64)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithOnExpand registers a callback run each time a cell is closed.
func WithOnExpand(fn func(c grid.Cell, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run on every frontier push.
func WithOnPush(fn func(c grid.Cell, estimate, cost float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Cell, float64) {},
		OnPush:   func(grid.Cell, float64, float64) {},
	}
}

// Result summarizes a search run by Find.
//
// Path     – the optimal path, nil when Found is false.
// Found    – whether the goal was reached.
// Cost     – total step cost of Path (0 when not found).
// Expanded – number of cells closed.
// Pushed   – number of frontier pushes, stale duplicates included.
type Result struct {
	Path     Path
	Found    bool
	Cost     float64
	Expanded int
	Pushed   int
}
