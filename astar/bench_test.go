package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
)

// BenchmarkSearch_Open measures corner-to-corner search on an open 200×200 grid.
func BenchmarkSearch_Open(b *testing.B) {
	const n = 200
	g, err := grid.Open(n, n)
	if err != nil {
		b.Fatalf("setup Open failed: %v", err)
	}
	start, end := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: n - 1, Col: n - 1}

	for _, mv := range strategies {
		b.Run(mv.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = astar.Search(g, start, end, mv)
			}
		})
	}
}

// BenchmarkSearch_Random measures search on a seeded 200×200 maze with 30% obstacles.
func BenchmarkSearch_Random(b *testing.B) {
	m, err := maze.Random(200, 200, 0.3, 42)
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}

	for _, mv := range strategies {
		b.Run(mv.Name(), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = astar.Search(m.Grid, m.Start, m.End, mv)
			}
		})
	}
}
