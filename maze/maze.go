// Package maze builds grids from text and generates random test mazes.
//
// Text format, one row per line:
//
//	S  start cell (free)
//	E  end cell (free)
//	0  free cell
//	1  blocked cell
//
// Surrounding whitespace on a line is ignored and blank lines are skipped.
// Exactly one S and one E are required.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Cell symbols of the text format.
const (
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolFree    = '0'
	SymbolBlocked = '1'
)

// Sentinel errors for maze construction.
var (
	// ErrInvalidCellValue indicates a symbol outside the recognized set.
	ErrInvalidCellValue = errors.New("maze: invalid cell value")
	// ErrMissingEndpoint indicates no start or no end marker was found.
	ErrMissingEndpoint = errors.New("maze: maze must contain both S and E")
	// ErrDuplicateEndpoint indicates a second start or end marker.
	ErrDuplicateEndpoint = errors.New("maze: maze must contain exactly one S and one E")
)

// Maze is a grid together with its start and end cells.
type Maze struct {
	Grid       *grid.Grid
	Start, End grid.Cell
}

// Parse reads a maze from r. See ParseLines for the rules.
func Parse(r io.Reader) (*Maze, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	return ParseLines(lines)
}

// ParseLines builds a Maze from text rows.
// Returns ErrInvalidCellValue for an unknown symbol, ErrMissingEndpoint or
// ErrDuplicateEndpoint for bad markers, and wraps grid.ErrEmptyGrid or
// grid.ErrNonRectangular for malformed shapes.
func ParseLines(lines []string) (*Maze, error) {
	var (
		cells      [][]bool
		start, end *grid.Cell
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		r := len(cells)
		row := make([]bool, 0, len(line))
		for c, sym := range []rune(line) {
			at := grid.Cell{Row: r, Col: c}
			switch sym {
			case SymbolStart:
				if start != nil {
					return nil, fmt.Errorf("%w: second S at %v", ErrDuplicateEndpoint, at)
				}
				start = &at
				row = append(row, false)
			case SymbolEnd:
				if end != nil {
					return nil, fmt.Errorf("%w: second E at %v", ErrDuplicateEndpoint, at)
				}
				end = &at
				row = append(row, false)
			case SymbolFree:
				row = append(row, false)
			case SymbolBlocked:
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidCellValue, sym, at)
			}
		}
		cells = append(cells, row)
	}

	g, err := grid.New(cells)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if start == nil || end == nil {
		return nil, ErrMissingEndpoint
	}

	return &Maze{Grid: g, Start: *start, End: *end}, nil
}

// Lines encodes the maze back into its text form.
func (m *Maze) Lines() []string {
	out := make([]string, m.Grid.Rows())
	var sb strings.Builder
	for r := range out {
		sb.Reset()
		for c := 0; c < m.Grid.Cols(); c++ {
			at := grid.Cell{Row: r, Col: c}
			switch {
			case at == m.Start:
				sb.WriteRune(SymbolStart)
			case at == m.End:
				sb.WriteRune(SymbolEnd)
			case m.Grid.Blocked(at):
				sb.WriteRune(SymbolBlocked)
			default:
				sb.WriteRune(SymbolFree)
			}
		}
		out[r] = sb.String()
	}
	return out
}

// String returns the text form with newline-separated rows.
func (m *Maze) String() string {
	return strings.Join(m.Lines(), "\n")
}
