package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertInvariants checks I1, I2, I3, I4, and I6 from spec §8 against
// a brute-force recomputation, after any sequence of public-API
// calls. It deliberately recomputes everything from g.cells rather
// than trusting the incremental aggregates, so it can catch drift
// between them.
func assertInvariants(t *testing.T, g *Game) {
	t.Helper()

	occupied := make([]int, g.players+1)
	totalBusy := 0
	for _, v := range g.cells {
		if v != 0 {
			occupied[v]++
			totalBusy++
		}
	}
	for p := 1; p <= g.players; p++ {
		assert.Equalf(t, occupied[p], g.occupied[p], "I1: occupied[%d]", p)
	}
	assert.Equalf(t, totalBusy, g.busyFields, "I6: busyFields")

	for p := 1; p <= g.players; p++ {
		assert.LessOrEqualf(t, g.regions[p], g.areaLimit, "I3: regions[%d] <= area limit", p)
		assert.Equalf(t, countRegions(g, p), g.regions[p], "I2: regions[%d]", p)
	}

	for p := 1; p <= g.players; p++ {
		assert.Equalf(t, countFreeAdjacent(g, p), g.freeAdj[p], "I4: freeAdj[%d]", p)
	}
}

// countRegions brute-force counts 4-connected components of value p
// using its own flood fill, independent of the DSU under test.
func countRegions(g *Game, p int) int {
	visited := make([]bool, len(g.cells))
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := g.index(x, y)
			if g.cells[idx] != p || visited[idx] {
				continue
			}
			count++
			stack := []int{idx}
			visited[idx] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				cx, cy := cur%g.width, cur/g.width
				var buf [4]int
				for _, n := range g.neighbors(cx, cy, buf[:0]) {
					if !visited[n] && g.cells[n] == p {
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
		}
	}
	return count
}

// countFreeAdjacent brute-force counts empty cells with at least one
// orthogonal neighbor of value p.
func countFreeAdjacent(g *Game, p int) int {
	count := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			idx := g.index(x, y)
			if g.cells[idx] != 0 {
				continue
			}
			if g.isPAdjacent(idx, p) {
				count++
			}
		}
	}
	return count
}
