package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridpath/grid"
)

// Palette used by PNG.
var (
	ColorFree    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	ColorBlocked = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	ColorPath    = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	ColorStart   = color.RGBA{R: 0, G: 170, B: 0, A: 255}
	ColorEnd     = color.RGBA{R: 0, G: 90, B: 220, A: 255}
)

// PNG draws g as a Cols*scale × Rows*scale image and encodes it to w.
// Cells are filled squares, the path is a polyline through cell centers,
// start and end are discs. Returns ErrBadScale if scale < 1.
func PNG(w io.Writer, g *grid.Grid, start, end grid.Cell, path []grid.Cell, scale int) error {
	if scale < 1 {
		return fmt.Errorf("%w: got %d", ErrBadScale, scale)
	}
	dc := gg.NewContext(g.Cols()*scale, g.Rows()*scale)
	s := float64(scale)
	center := func(c grid.Cell) (x, y float64) {
		return float64(c.Col)*s + s/2, float64(c.Row)*s + s/2
	}

	dc.SetColor(ColorFree)
	dc.Clear()

	dc.SetColor(ColorBlocked)
	for _, c := range g.Cells() {
		if g.Blocked(c) {
			dc.DrawRectangle(float64(c.Col)*s, float64(c.Row)*s, s, s)
			dc.Fill()
		}
	}

	if len(path) > 1 {
		dc.SetColor(ColorPath)
		dc.SetLineWidth(max(1, s/3))
		dc.MoveTo(center(path[0]))
		for _, c := range path[1:] {
			dc.LineTo(center(c))
		}
		dc.Stroke()
	}

	for _, mark := range []struct {
		cell grid.Cell
		col  color.Color
	}{{start, ColorStart}, {end, ColorEnd}} {
		if !g.InBounds(mark.cell) {
			continue
		}
		x, y := center(mark.cell)
		dc.SetColor(mark.col)
		dc.DrawCircle(x, y, s/2)
		dc.Fill()
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
