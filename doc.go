// Package gridpath finds shortest paths through rectangular grids of free and
// blocked cells.
//
// What is in the box?
//
//	grid/       immutable Grid, Cell and Delta types, connected regions
//	movement/   FourWay (Manhattan) and EightWay (Chebyshev, √2 diagonals)
//	astar/      A* search with a closed set, Path helpers and search hooks
//	dijkstra/   exhaustive distance field, used as an optimality oracle
//	maze/       S/E/0/1 text format and seeded random mazes
//	render/     annotated text, PNG and GeoJSON output
//	server/     HTTP API with Prometheus metrics and OpenTelemetry spans
//
// Binaries live under cmd/: gridpath (CLI) and gridpathd (HTTP daemon).
//
// Quick example:
//
//	S 0 0        S P P        S . .
//	0 0 0   →    . . P   or   . P .     (four-way vs eight-way)
//	0 0 E        . . E        . . E
//
// Diagonal moves never cut a corner: (0,0)→(1,1) is refused when either
// (0,1) or (1,0) is blocked.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
