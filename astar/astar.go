// Package astar implements A* shortest-path search on a grid.Grid with a
// pluggable movement.Movement strategy.
//
// The search keeps a min-heap frontier of (estimate, cost, cell) entries
// ordered by estimate, then by cost. Improved costs are pushed as new entries
// and stale ones are discarded on pop by checking the closed set, so no
// decrease-key operation is needed. A cell is closed on its first pop and never
// reopened; the strategies' heuristics are consistent, which keeps this optimal.
//
// Complexity:
//
//   - Time:  O(N log N), N = R×C×d pushes in the worst case (d = 4 or 8).
//   - Space: O(R×C) for cost, predecessor and closed maps plus the heap.
//
// Every call owns its state; concurrent searches over one Grid are safe.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/movement"
)

// Search finds a minimum-cost path from start to end on g under m.
// It returns the path and true, or nil and false when end is unreachable.
//
// Start and end are expected to be free in-bounds cells; this is not
// validated. An out-of-bounds end is simply never reached. start == end
// yields the single-cell path [start].
func Search(g *grid.Grid, start, end grid.Cell, m movement.Movement, opts ...Option) (Path, bool) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &searcher{
		g:        g,
		m:        m,
		end:      end,
		options:  cfg,
		gScore:   map[grid.Cell]float64{start: 0},
		cameFrom: make(map[grid.Cell]grid.Cell),
		visited:  make(map[grid.Cell]bool),
	}
	heap.Init(&s.frontier)
	s.push(start, 0)

	return s.run()
}

// PathCost returns the total step cost of p under m: the sum of
// m.MoveCost over consecutive pairs. A path of 0 or 1 cells costs 0.
func PathCost(p Path, m movement.Movement) float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += m.MoveCost(p[i].Sub(p[i-1]))
	}
	return total
}

// Find runs Search and reports the path together with its cost and
// expansion counters.
func Find(g *grid.Grid, start, end grid.Cell, m movement.Movement, opts ...Option) Result {
	user := DefaultOptions()
	for _, opt := range opts {
		opt(&user)
	}

	var res Result
	res.Path, res.Found = Search(g, start, end, m,
		WithOnExpand(func(c grid.Cell, cost float64) {
			res.Expanded++
			user.OnExpand(c, cost)
		}),
		WithOnPush(func(c grid.Cell, estimate, cost float64) {
			res.Pushed++
			user.OnPush(c, estimate, cost)
		}),
	)
	if res.Found {
		res.Cost = PathCost(res.Path, m)
	}
	return res
}

// searcher holds the mutable state for a single A* execution.
type searcher struct {
	g        *grid.Grid
	m        movement.Movement
	end      grid.Cell
	options  Options
	gScore   map[grid.Cell]float64   // best known cost from start
	cameFrom map[grid.Cell]grid.Cell // predecessor on the best known path
	visited  map[grid.Cell]bool      // closed set
	frontier frontier
}

// run is the main loop: pop, skip stale, test goal, close, relax.
func (s *searcher) run() (Path, bool) {
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*entry)
		cur := item.cell

		if s.visited[cur] {
			continue
		}
		if cur == s.end {
			return s.reconstruct(cur), true
		}
		s.visited[cur] = true
		s.options.OnExpand(cur, item.cost)

		s.relax(cur, item.cost)
	}

	return nil, false
}

// relax examines each neighbor of cur and pushes those whose cost improves.
func (s *searcher) relax(cur grid.Cell, cost float64) {
	for _, nb := range s.m.Neighbors(s.g, cur) {
		if s.g.Blocked(nb.Cell) {
			continue
		}
		if movement.CutsCorner(s.g, cur, nb.Delta) {
			continue
		}

		tentative := cost + s.m.MoveCost(nb.Delta)
		best, ok := s.gScore[nb.Cell]
		if !ok {
			best = math.Inf(1)
		}
		if tentative >= best {
			continue
		}

		s.cameFrom[nb.Cell] = cur
		s.gScore[nb.Cell] = tentative
		s.push(nb.Cell, tentative)
	}
}

// push adds c with cost-so-far cost to the frontier.
func (s *searcher) push(c grid.Cell, cost float64) {
	estimate := cost + s.m.Heuristic(c, s.end)
	heap.Push(&s.frontier, &entry{estimate: estimate, cost: cost, cell: c})
	s.options.OnPush(c, estimate, cost)
}

// reconstruct follows cameFrom back from goal to the start (which has no
// predecessor) and returns the cells in start→goal order.
func (s *searcher) reconstruct(goal grid.Cell) Path {
	path := Path{goal}
	for cur := goal; ; {
		prev, ok := s.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// entry is a frontier record. Several entries for one cell may coexist;
// only the first one popped is used.
type entry struct {
	estimate float64 // cost + heuristic
	cost     float64 // cost from start
	cell     grid.Cell
}

// frontier is a min-heap of *entry ordered by estimate, then by cost.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].estimate != f[j].estimate {
		return f[i].estimate < f[j].estimate
	}
	return f[i].cost < f[j].cost
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
