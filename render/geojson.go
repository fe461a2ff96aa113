package render

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/grid"
)

// point maps a cell to planar coordinates: x = column, y = row.
func point(c grid.Cell) orb.Point {
	return orb.Point{float64(c.Col), float64(c.Row)}
}

// GeoJSON describes the grid and path as a feature collection in planar
// cell coordinates (x = column, y = row):
//
//   - "path":      LineString through the path cells, with a "length"
//     property equal to the Euclidean length of the polyline (the 8-way cost)
//     and a "cells" property with the number of cells. Omitted for paths of
//     fewer than two cells.
//   - "obstacles": MultiPoint of blocked cells.
//   - "start", "end": Points.
//
// Every feature has a "kind" property naming its role.
func GeoJSON(g *grid.Grid, start, end grid.Cell, path []grid.Cell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(path) > 1 {
		ls := make(orb.LineString, len(path))
		for i, c := range path {
			ls[i] = point(c)
		}
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = "path"
		f.Properties["cells"] = len(path)
		f.Properties["length"] = planar.Length(ls)
		fc.Append(f)
	}

	var obstacles orb.MultiPoint
	for _, c := range g.Cells() {
		if g.Blocked(c) {
			obstacles = append(obstacles, point(c))
		}
	}
	obs := geojson.NewFeature(obstacles)
	obs.Properties["kind"] = "obstacles"
	obs.Properties["rows"] = g.Rows()
	obs.Properties["cols"] = g.Cols()
	fc.Append(obs)

	s := geojson.NewFeature(point(start))
	s.Properties["kind"] = "start"
	fc.Append(s)
	e := geojson.NewFeature(point(end))
	e.Properties["kind"] = "end"
	fc.Append(e)

	return fc
}
