package engine

// Move attempts to place player p's stone at (x,y). It returns false
// and leaves the game state bit-identical if the move is illegal:
// game nil, p out of range, (x,y) out of bounds, the target cell
// already occupied, or placing an isolated stone would push p past
// its region limit.
func (g *Game) Move(p, x, y int) bool {
	if g == nil || !g.validPlayer(p) || !g.inBounds(x, y) {
		return false
	}
	idx := g.index(x, y)
	if g.cells[idx] != 0 {
		return false
	}

	// adjSameP must be computed on the pre-move DSU/board state: the
	// cell at (x,y) is still empty, so it can't be one of its own
	// neighbors' same-player components.
	adjSameP := g.playerRegionsAdjacent(p, x, y)
	isolated := adjSameP == 0
	if isolated && g.regions[p] == g.areaLimit {
		return false
	}

	// free_adj bookkeeping reads "before" state, so it runs before
	// the cell is written.
	g.applyPlacementFreeAdj(p, x, y)
	g.decrementOtherOccupiedNeighbors(p, x, y)
	// (x,y) itself stops being a free cell for p if it touched one of
	// p's stones.
	if adjSameP > 0 {
		g.freeAdj[p]--
	}

	g.cells[idx] = p
	g.occupied[p]++
	g.busyFields++
	g.regions[p] += 1 - adjSameP
	g.localUnionAt(x, y)

	return true
}
