package grid

// Regions finds all contiguous regions of free cells according to conn.
// Returns a slice of regions; each region lists its cells in BFS order
// starting from the region's smallest cell in row-major order.
//
// Under Conn8 two diagonal cells are joined even if both orthogonal cells
// between them are blocked, so Conn8 regions over-approximate what a
// corner-respecting search can reach.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) [][]Cell {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Cell
	offsets := conn.Offsets()

	for i0 := range g.blocked {
		if g.blocked[i0] || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var region []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.cell(queue[qi])
			region = append(region, u)
			for _, d := range offsets {
				v := u.Add(d)
				if g.Blocked(v) {
					continue
				}
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}

// Connected reports whether free cells a and b share a region under conn.
// Returns false if either cell is blocked or out of bounds.
func (g *Grid) Connected(a, b Cell, conn Connectivity) bool {
	if g.Blocked(a) || g.Blocked(b) {
		return false
	}
	for _, region := range g.Regions(conn) {
		hasA, hasB := false, false
		for _, c := range region {
			hasA = hasA || c == a
			hasB = hasB || c == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}
