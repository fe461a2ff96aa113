// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// It processes cells in order of increasing distance using a min-heap
// priority queue and relaxes each cell's steps once the cell is finalized.
// Because it explores every reachable cell with no goal bias, its distances
// are the reference against which A* results are checked.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - Unreachable cells are absent from the returned distance map.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/movement"
)

// Distances computes shortest distances from the source cell (Options.Source)
// to all reachable free cells of g, stepping according to m.
//
// Returns:
//
//   - dist: map from cell to minimum distance. Unreachable cells are absent.
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     The source has no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. m must be non-nil (ErrNilMovement).
//  3. options must be valid (ErrBadMaxDistance).
//  4. Source must be in bounds (ErrSourceOutOfBounds) and free (ErrSourceBlocked).
func Distances(g *grid.Grid, m movement.Movement, opts ...Option) (map[grid.Cell]float64, map[grid.Cell]grid.Cell, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if m == nil {
		return nil, nil, ErrNilMovement
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, ErrSourceOutOfBounds
	}
	if g.Blocked(cfg.Source) {
		return nil, nil, ErrSourceBlocked
	}

	// 3) Prepare state and run
	n := g.Rows() * g.Cols()
	r := &runner{
		g:       g,
		m:       m,
		options: cfg,
		dist:    make(map[grid.Cell]float64, n),
		prev:    make(map[grid.Cell]grid.Cell, n),
		visited: make(map[grid.Cell]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	// 4) Drop tentative distances of cells never finalized (beyond MaxDistance)
	for c := range r.dist {
		if !r.visited[c] {
			delete(r.dist, c)
			delete(r.prev, c)
		}
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}
	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→dest path from a predecessor map returned by
// Distances with WithReturnPath. ok is false if dest was not reached.
func PathTo(dist map[grid.Cell]float64, prev map[grid.Cell]grid.Cell, dest grid.Cell) (path []grid.Cell, ok bool) {
	if _, reached := dist[dest]; !reached {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		p, has := prev[cur]
		if !has {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid              // The input grid; read-only.
	m       movement.Movement       // Step rules and costs.
	options Options                 // Configuration options.
	dist    map[grid.Cell]float64   // Cell → current best distance from Source.
	prev    map[grid.Cell]grid.Cell // Cell → predecessor on the shortest path.
	visited map[grid.Cell]bool      // Tracks if a cell's distance is finalized.
	pq      nodePQ                  // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner) init() {
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{cell: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the cell with the minimum
// distance and relaxes its steps, until the heap is empty or the minimum
// distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.cell

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax attempts to improve distances of u's neighbors.
// Assumes r.dist[u] is finalized.
func (r *runner) relax(u grid.Cell) {
	for _, nb := range r.m.Neighbors(r.g, u) {
		v := nb.Cell
		if r.g.Blocked(v) || movement.CutsCorner(r.g, u, nb.Delta) {
			continue
		}
		newDist := r.dist[u] + r.m.MoveCost(nb.Delta)
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{cell: v, dist: newDist})
	}
}

// nodeItem represents a cell and its current distance from the source.
type nodeItem struct {
	cell grid.Cell
	dist float64
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
