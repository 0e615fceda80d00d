package engine

// find returns the canonical representative of i's component, path
// compressing every node visited along the way. It ignores cell
// values entirely; callers are responsible for only ever union-ing
// cells that share the same player (see localUnionAt).
func (g *Game) find(i int) int {
	root := i
	for g.parent[root] != root {
		root = g.parent[root]
	}
	for i != root {
		next := g.parent[i]
		g.parent[i] = root
		i = next
	}
	return root
}

// union merges the components containing i and j by rank. On a rank
// tie the deterministic choice is to attach j's root under i's root
// and bump i's rank — this tie-break must stay fixed, since
// rebuildForest replays unions in a fixed order and depends on it
// being reproducible.
func (g *Game) union(i, j int) {
	ri, rj := g.find(i), g.find(j)
	if ri == rj {
		return
	}
	switch {
	case g.rank[ri] > g.rank[rj]:
		g.parent[rj] = ri
	case g.rank[ri] < g.rank[rj]:
		g.parent[ri] = rj
	default:
		g.parent[rj] = ri
		g.rank[ri]++
	}
}

// localUnionAt unions the cell at (x,y) with every orthogonal
// neighbor holding the same value. It is called once after a stone is
// placed (ordinary or golden move) to stitch the new stone into any
// adjacent same-player components. Empty cells are never unioned: the
// DSU only represents same-player equivalence among occupied cells,
// and rebuildForest calls this on every cell including empty ones.
func (g *Game) localUnionAt(x, y int) {
	idx := g.index(x, y)
	v := g.cells[idx]
	if v == 0 {
		return
	}
	var buf [4]int
	for _, n := range g.neighbors(x, y, buf[:0]) {
		if g.cells[n] == v {
			g.union(idx, n)
		}
	}
}

// rebuildForest resets the disjoint-set forest and re-derives it from
// scratch by replaying localUnionAt over every cell in row-major
// order. It is the bounded, deterministic way the golden move's
// stone removal — which can split a region into up to four pieces —
// gets reflected in the DSU: there is no cheap way to "un-union" a
// node, so a full O(N·α(N)) rebuild is used instead of trying to
// patch the old forest.
func (g *Game) rebuildForest() {
	for i := range g.parent {
		g.parent[i] = i
		g.rank[i] = 0
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.localUnionAt(x, y)
		}
	}
}

// distinctRootCount returns the number of distinct find() roots among
// the given neighbor indices, deduping with a bounded linear scan
// (at most 4 entries) rather than a map — there are never more than
// four orthogonal neighbors to consider.
func (g *Game) distinctRootCount(indices []int) int {
	var roots [4]int
	n := 0
	for _, idx := range indices {
		r := g.find(idx)
		seen := false
		for i := 0; i < n; i++ {
			if roots[i] == r {
				seen = true
				break
			}
		}
		if !seen {
			roots[n] = r
			n++
		}
	}
	return n
}

// playerRegionsAdjacent returns the number of distinct components of
// value p among the orthogonal neighbors of (x,y), i.e. how many of
// p's existing regions touch this cell.
func (g *Game) playerRegionsAdjacent(p, x, y int) int {
	var buf [4]int
	var same [4]int
	n := 0
	for _, idx := range g.neighbors(x, y, buf[:0]) {
		if g.cells[idx] == p {
			same[n] = idx
			n++
		}
	}
	return g.distinctRootCount(same[:n])
}
