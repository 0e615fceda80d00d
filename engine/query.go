package engine

// BusyFields returns the number of cells occupied by player p, or 0 if
// p is out of range.
func (g *Game) BusyFields(p int) int {
	if g == nil || !g.validPlayer(p) {
		return 0
	}
	return g.occupied[p]
}

// FreeFields returns how many empty cells player p could still place
// a stone on. While p has not reached its region limit, every empty
// cell is reachable (a new region can always be started), so the
// answer is simply the total empty-cell count — even if p currently
// owns zero stones, matching the reference implementation's behavior.
// Once p is at the region limit, only cells already adjacent to one
// of p's regions are usable, so the answer is freeAdj[p].
func (g *Game) FreeFields(p int) int {
	if g == nil || !g.validPlayer(p) {
		return 0
	}
	if g.regions[p] < g.areaLimit {
		return g.width*g.height - g.busyFields
	}
	return g.freeAdj[p]
}

// GoldenPossible reports whether player p could legally execute a
// golden move right now: p hasn't used its golden move yet, some
// cell is owned by a different player, and at least one such cell
// admits a legal capture under the full two-sided check in
// evaluateGoldenRemoval. Evaluating a candidate perturbs the board and
// forest, so every candidate's pre-trial state is snapshotted and
// restored before the next is tried or before returning — this is a
// query, it must never leave a visible trace.
func (g *Game) GoldenPossible(p int) bool {
	if g == nil || !g.validPlayer(p) {
		return false
	}
	if g.goldenUsed[p] {
		return false
	}
	if g.busyFields <= g.occupied[p] {
		return false
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := g.index(x, y)
			v := g.cells[idx]
			if v == 0 || v == p {
				continue
			}
			if g.isolatedFastReject(p, x, y) {
				continue
			}
			snap := g.snapshotForest()
			trial := g.evaluateGoldenRemoval(p, x, y)
			g.cells[idx] = v
			g.restoreForest(snap)
			if trial.legal {
				return true
			}
		}
	}
	return false
}
