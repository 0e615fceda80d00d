package engine

// isPAdjacent reports whether the empty cell at index e has at least
// one orthogonal neighbor with value p, given the board's *current*
// state. Callers control which "before/after" snapshot this sees by
// calling it before or after mutating g.cells.
func (g *Game) isPAdjacent(e, p int) bool {
	x, y := e%g.width, e/g.width
	var buf [4]int
	for _, n := range g.neighbors(x, y, buf[:0]) {
		if g.cells[n] == p {
			return true
		}
	}
	return false
}

// applyPlacementFreeAdj performs the "new p-adjacency" half of the
// free-adjacent bookkeeping for a stone of value p about to be written
// at (x,y): every empty neighbor that was not already p-adjacent
// becomes p-adjacent and bumps freeAdj[p]. The loss of (x,y) itself as
// a free cell is not handled here (see decrementOtherOccupiedNeighbors
// and Move). It
// must run while g.cells[index(x,y)] still holds the pre-move value
// (0 for an ordinary move, or 0 for a golden move after the tentative
// removal), so "before" neighbors of e exclude the stone being placed.
func (g *Game) applyPlacementFreeAdj(p, x, y int) {
	var buf [4]int
	neighbors := g.neighbors(x, y, buf[:0])

	for _, n := range neighbors {
		if g.cells[n] == 0 && !g.isPAdjacent(n, p) {
			g.freeAdj[p]++
		}
	}
}

// decrementOtherOccupiedNeighbors performs the "other distinct
// occupied-neighbor player q loses (x,y) as a free cell" half of the
// ordinary-move free_adj update. It is NOT run for golden moves: a
// golden move replaces an already-occupied cell, so no neighbor's
// adjacency to (x,y) changes on that side.
func (g *Game) decrementOtherOccupiedNeighbors(p, x, y int) {
	var buf [4]int
	neighbors := g.neighbors(x, y, buf[:0])

	var seen [4]int
	n := 0
	for _, idx := range neighbors {
		q := g.cells[idx]
		if q == 0 || q == p {
			continue
		}
		dup := false
		for i := 0; i < n; i++ {
			if seen[i] == q {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		seen[n] = q
		n++
		g.freeAdj[q]--
	}
}

// applyRemovalFreeAdj mirrors applyPlacementFreeAdj for a stone of
// value victim that was just removed from (x,y) (g.cells[index(x,y)]
// already holds 0): every empty neighbor that is no longer
// victim-adjacent loses its contribution to freeAdj[victim].
func (g *Game) applyRemovalFreeAdj(victim, x, y int) {
	var buf [4]int
	for _, n := range g.neighbors(x, y, buf[:0]) {
		if g.cells[n] == 0 && !g.isPAdjacent(n, victim) {
			g.freeAdj[victim]--
		}
	}
}
