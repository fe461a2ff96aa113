// Package render turns a grid and a found path into human-viewable output:
// annotated text, PNG images and GeoJSON documents.
//
// Text symbols:
//
//	.  free cell
//	#  blocked cell
//	S  start
//	E  end
//	P  any other cell on the path
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Symbols used by Annotate.
const (
	Free    = '.'
	Blocked = '#'
	Start   = 'S'
	End     = 'E'
	OnPath  = 'P'
)

// ErrBadScale indicates a PNG cell scale below one pixel.
var ErrBadScale = errors.New("render: scale must be at least 1")

// Annotate returns a fresh rune matrix of g with the path marked.
// start and end are marked even when path is empty, so an unsolved maze
// still shows its endpoints. Path cells outside g are ignored.
func Annotate(g *grid.Grid, start, end grid.Cell, path []grid.Cell) [][]rune {
	out := make([][]rune, g.Rows())
	for r := range out {
		out[r] = make([]rune, g.Cols())
		for c := range out[r] {
			if g.Blocked(grid.Cell{Row: r, Col: c}) {
				out[r][c] = Blocked
			} else {
				out[r][c] = Free
			}
		}
	}
	for _, c := range path {
		if g.InBounds(c) {
			out[c.Row][c.Col] = OnPath
		}
	}
	if g.InBounds(start) {
		out[start.Row][start.Col] = Start
	}
	if g.InBounds(end) {
		out[end.Row][end.Col] = End
	}

	return out
}

// Lines renders Annotate's output as rows of space-separated symbols.
func Lines(g *grid.Grid, start, end grid.Cell, path []grid.Cell) []string {
	marked := Annotate(g, start, end, path)
	out := make([]string, len(marked))
	parts := make([]string, g.Cols())
	for r, row := range marked {
		for c, sym := range row {
			parts[c] = string(sym)
		}
		out[r] = strings.Join(parts, " ")
	}
	return out
}

// Text writes Lines to w, one row per line.
func Text(w io.Writer, g *grid.Grid, start, end grid.Cell, path []grid.Cell) error {
	for _, line := range Lines(g, start, end, path) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("render: write text: %w", err)
		}
	}
	return nil
}
