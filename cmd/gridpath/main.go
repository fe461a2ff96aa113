// Command gridpath finds the shortest path through a text maze.
//
// Usage:
//
//	gridpath [-maze FILE] [-movement four|eight] [-png FILE] [-geojson FILE] [-verify]
//	gridpath -random 40x60 -density 0.3 -seed 7 -movement eight
//
// Without -maze or -random the maze is read from stdin. The exit status is 1
// when no path exists and 2 on usage or input errors.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/movement"
	"github.com/katalvlaran/gridpath/render"
)

const (
	exitOK      = 0
	exitNoPath  = 1
	exitFailure = 2

	// paths longer than this are printed as head ... tail
	listLimit = 10
	listEdge  = 5
)

var errVerify = errors.New("gridpath: dijkstra disagrees with astar")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	mazeFile string
	movement string
	pngFile  string
	scale    int
	geoFile  string
	verify   bool
	random   string
	density  float64
	seed     uint64
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mazeFile, "maze", "", "maze file (default stdin)")
	fs.StringVar(&o.movement, "movement", "four", "movement strategy: four or eight")
	fs.StringVar(&o.pngFile, "png", "", "write a PNG rendering to this file")
	fs.IntVar(&o.scale, "scale", 16, "PNG pixels per cell")
	fs.StringVar(&o.geoFile, "geojson", "", "write a GeoJSON FeatureCollection to this file")
	fs.BoolVar(&o.verify, "verify", false, "cross-check the path cost with dijkstra")
	fs.StringVar(&o.random, "random", "", "generate a random maze of size RxC instead of reading one")
	fs.Float64Var(&o.density, "density", 0.25, "obstacle density for -random")
	fs.Uint64Var(&o.seed, "seed", 1, "seed for -random")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	err := fs.Parse(args)
	return o, err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return exitFailure
	}
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	mv, err := movement.ByName(o.movement)
	if err != nil {
		logger.Error("bad flag", slog.String("error", err.Error()))
		return exitFailure
	}
	m, err := loadMaze(o, stdin)
	if err != nil {
		logger.Error("load maze", slog.String("error", err.Error()))
		return exitFailure
	}
	logger.Debug("maze loaded",
		slog.Int("rows", m.Grid.Rows()),
		slog.Int("cols", m.Grid.Cols()),
		slog.Int("blocked", m.Grid.BlockedCount()),
		slog.String("movement", mv.Name()),
	)

	res := astar.Find(m.Grid, m.Start, m.End, mv)
	logger.Debug("search done", slog.Int("expanded", res.Expanded), slog.Int("pushed", res.Pushed))

	if o.verify {
		if err := verify(m, mv, res); err != nil {
			logger.Error("verify", slog.String("error", err.Error()))
			return exitFailure
		}
		logger.Debug("verified against dijkstra")
	}
	if err := export(o, m, res.Path); err != nil {
		logger.Error("export", slog.String("error", err.Error()))
		return exitFailure
	}

	if !res.Found {
		fmt.Fprintln(stdout, "no path found")
		suggestBridge(stdout, m)
		return exitNoPath
	}
	report(stdout, m, res)
	return exitOK
}

func loadMaze(o options, stdin io.Reader) (*maze.Maze, error) {
	if o.random != "" {
		rows, cols, err := parseSize(o.random)
		if err != nil {
			return nil, err
		}
		return maze.Random(rows, cols, o.density, o.seed)
	}
	if o.mazeFile == "" {
		return maze.Parse(stdin)
	}
	f, err := os.Open(o.mazeFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return maze.Parse(f)
}

// parseSize reads "RxC", e.g. "20x30".
func parseSize(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("gridpath: size %q: want RxC", s)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("gridpath: size %q: %w", s, err)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("gridpath: size %q: %w", s, err)
	}
	return rows, cols, nil
}

// verify checks res against an exhaustive dijkstra run from the start.
func verify(m *maze.Maze, mv movement.Movement, res astar.Result) error {
	dist, _, err := dijkstra.Distances(m.Grid, mv, dijkstra.Source(m.Start))
	if err != nil {
		return err
	}
	want, reachable := dist[m.End]
	switch {
	case reachable != res.Found:
		return fmt.Errorf("%w: reachable=%v found=%v", errVerify, reachable, res.Found)
	case !res.Found:
		return nil
	case math.Abs(want-res.Cost) > 1e-9:
		return fmt.Errorf("%w: cost %.6f, want %.6f", errVerify, res.Cost, want)
	}
	return res.Path.Validate(m.Grid, mv)
}

func export(o options, m *maze.Maze, path astar.Path) error {
	if o.pngFile != "" {
		if err := writeFile(o.pngFile, func(w io.Writer) error {
			return render.PNG(w, m.Grid, m.Start, m.End, path, o.scale)
		}); err != nil {
			return err
		}
	}
	if o.geoFile != "" {
		return writeFile(o.geoFile, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(render.GeoJSON(m.Grid, m.Start, m.End, path))
		})
	}
	return nil
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return f.Close()
}

// suggestBridge prints the fewest obstacles whose removal joins start and end.
// A 4-connected bridge is legal under every movement.
func suggestBridge(w io.Writer, m *maze.Maze) {
	_, cleared, err := m.Grid.Bridge(m.Start, m.End, grid.Conn4)
	if err != nil || len(cleared) == 0 {
		return
	}
	cells := make([]string, len(cleared))
	for i, c := range cleared {
		cells[i] = c.String()
	}
	fmt.Fprintf(w, "clearing %d obstacle(s) would connect S and E: %s\n", len(cleared), strings.Join(cells, " "))
}

func report(w io.Writer, m *maze.Maze, res astar.Result) {
	p := res.Path
	fmt.Fprintln(w, "path (row, col):")
	for i, c := range p {
		if len(p) > listLimit && i == listEdge {
			fmt.Fprintln(w, "     ...")
		}
		if len(p) > listLimit && i >= listEdge && i < len(p)-listEdge {
			continue
		}
		fmt.Fprintf(w, "%3d. %v\n", i+1, c)
	}
	diag := p.Diagonals()
	fmt.Fprintf(w, "\nlength: %d cells, %d steps\n", len(p), p.Steps())
	fmt.Fprintf(w, "cost: %.3f\n", res.Cost)
	fmt.Fprintf(w, "diagonal moves: %d\n", diag)
	fmt.Fprintf(w, "cardinal moves: %d\n\n", p.Steps()-diag)
	_ = render.Text(w, m.Grid, m.Start, m.End, p)
}
