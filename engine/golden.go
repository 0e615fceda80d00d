package engine

// goldenTrial captures the outcome of tentatively removing the stone
// at (x,y) and rebuilding the forest around it, so GoldenMove and
// GoldenPossible can share the exact same legality computation from
// spec §4.3.2 steps 2-5.
type goldenTrial struct {
	legal   bool
	victim  int
	execAdj int
	vicAdj  int
}

// isolatedFastReject implements step 1 of §4.3.2: if p has no
// same-value orthogonal neighbor at (x,y) and already sits at its
// region cap, the capture is illegal without touching the board at
// all — adding the recaptured stone back would start an isolated new
// region past the limit.
func (g *Game) isolatedFastReject(p, x, y int) bool {
	return g.playerRegionsAdjacent(p, x, y) == 0 && g.regions[p] == g.areaLimit
}

// evaluateGoldenRemoval performs the tentative removal, full forest
// rebuild, and two-sided legality check (§4.3.2 steps 2-5). It always
// leaves cells and the forest in the post-removal state on return —
// restoring pre-call state when a trial isn't committed is the
// caller's job, using a snapshot taken before this runs. That keeps a
// rejected call bit-identical to its pre-call state (the spec's
// reject-idempotence law) rather than merely logically equivalent:
// rebuildForest's fixed traversal order can produce a differently
// shaped (if equally correct) forest than the one a sequence of
// incremental unions built up.
func (g *Game) evaluateGoldenRemoval(p, x, y int) goldenTrial {
	idx := g.index(x, y)
	victim := g.cells[idx]

	g.cells[idx] = 0
	g.rebuildForest()

	execAdj := g.playerRegionsAdjacent(p, x, y)
	vicAdj := g.playerRegionsAdjacent(victim, x, y)

	legal := g.regions[p]+1-execAdj <= g.areaLimit &&
		g.regions[victim]+vicAdj-1 <= g.areaLimit

	return goldenTrial{legal: legal, victim: victim, execAdj: execAdj, vicAdj: vicAdj}
}

// forestSnapshot is a byte-exact copy of the disjoint-set arrays,
// used to undo a tentative removal without relying on local_union_at
// to reconstruct an equivalent (but not necessarily identical) tree
// shape.
type forestSnapshot struct {
	parent []int
	rank   []int
}

func (g *Game) snapshotForest() forestSnapshot {
	return forestSnapshot{
		parent: append([]int(nil), g.parent...),
		rank:   append([]int(nil), g.rank...),
	}
}

func (g *Game) restoreForest(s forestSnapshot) {
	copy(g.parent, s.parent)
	copy(g.rank, s.rank)
}

// GoldenMove removes the opposing stone at (x,y) and replaces it with
// player p's stone. It is legal only once per player (see
// GoldenPossible) and only if both players stay within their region
// limit afterward — removal can split the victim's region into up to
// four pieces, so the legality check rebuilds the disjoint-set forest
// before deciding.
func (g *Game) GoldenMove(p, x, y int) bool {
	if g == nil || !g.validPlayer(p) || !g.inBounds(x, y) {
		return false
	}
	idx := g.index(x, y)
	victim := g.cells[idx]
	if victim == 0 || victim == p {
		return false
	}
	// GoldenPossible and isolatedFastReject call find, whose path
	// compression rewrites parent, so the snapshot is taken first.
	snap := g.snapshotForest()
	if !g.GoldenPossible(p) {
		g.restoreForest(snap)
		return false
	}
	if g.isolatedFastReject(p, x, y) {
		g.restoreForest(snap)
		return false
	}

	trial := g.evaluateGoldenRemoval(p, x, y)
	if !trial.legal {
		g.cells[idx] = victim
		g.restoreForest(snap)
		return false
	}

	// Cell is currently 0 (post-removal); freeAdj deltas read that
	// state before the stone is re-placed, per §4.3.3's golden-move
	// rules (no "other occupied neighbors" pass — those neighbors'
	// adjacency to (x,y) hasn't changed, it was already occupied).
	g.applyPlacementFreeAdj(p, x, y)
	g.applyRemovalFreeAdj(trial.victim, x, y)

	g.regions[p] += 1 - trial.execAdj
	g.occupied[p]++
	g.goldenUsed[p] = true

	g.regions[trial.victim] += trial.vicAdj - 1
	g.occupied[trial.victim]--

	// idx was left as an isolated singleton by the rebuild above (the
	// dsu.go localUnionAt guard never unions an empty cell into
	// anything), but resetting it explicitly here keeps this commit
	// correct independent of that invariant.
	g.parent[idx] = idx
	g.rank[idx] = 0
	g.cells[idx] = p
	g.localUnionAt(x, y)

	g.logf("golden move: player %d captured (%d,%d) from player %d", p, x, y, trial.victim)

	return true
}
