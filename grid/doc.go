// Package grid models a 2D map of free and blocked cells as an immutable,
// rectangular value that path searches can share without coordination.
//
// What:
//
//   - Cell is a (Row, Col) coordinate, 0-indexed, comparable and usable as a map key.
//   - Delta is a single-step offset between two cells.
//   - Grid wraps a rectangular [][]bool (true = blocked) and is immutable once built.
//   - Regions finds connected components ("rooms") of free cells.
//   - Bridge finds the fewest blocked cells to clear so two cells connect.
//
// Why:
//
//   - Search algorithms need a read-only, bounds-checked view of the map.
//   - Region analysis gives a cheap reachability answer that is independent
//     of any particular search strategy.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - Blocked:   O(1).
//   - Regions:   O(R×C×d), Memory: O(R×C)    (d = number of neighbors, 4 or 8).
//   - Bridge:    O(R×C×d), Memory: O(R×C)    (0-1 BFS).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a Bridge endpoint lies outside the grid.
package grid
