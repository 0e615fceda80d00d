package engine

import (
	"math/rand"
	"testing"
)

// TestProperty_randomizedMovesPreserveInvariants drives a bounded
// sequence of random moves, golden moves, and queries against a small
// board and re-checks I1-I4 and I6 (via assertInvariants) after every
// single call, mutating or not. A fixed seed keeps the run
// reproducible; the point isn't broad coverage of one run but a cheap
// tripwire for any aggregate/DSU drift a future change introduces.
func TestProperty_randomizedMovesPreserveInvariants(t *testing.T) {
	const (
		width   = 5
		height  = 5
		players = 3
		area    = 3
		steps   = 500
	)

	rng := rand.New(rand.NewSource(1))
	g, err := New(width, height, players, area)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < steps; i++ {
		p := rng.Intn(players) + 1
		x := rng.Intn(width)
		y := rng.Intn(height)

		switch rng.Intn(5) {
		case 0:
			g.Move(p, x, y)
		case 1:
			g.GoldenMove(p, x, y)
		case 2:
			g.BusyFields(p)
		case 3:
			g.FreeFields(p)
		case 4:
			g.GoldenPossible(p)
		}

		assertInvariants(t, g)
	}
}
