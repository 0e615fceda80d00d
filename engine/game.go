// Package engine implements the Gamma territorial board game: a
// rectangular grid on which numbered players place stones, bounded by
// a per-player limit on disjoint connected regions, plus a one-time
// "golden" capture move per player.
//
// The package keeps three aggregates consistent on every mutation: a
// per-player connected-region count (backed by an incremental
// disjoint-set forest with path compression and union-by-rank), a
// per-player free-adjacent-cell count, and a per-player occupied-cell
// count. See DESIGN.md for the grounding of each piece in the
// retrieval pack this module was built from.
package engine

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

// Game is the aggregate root: board, disjoint-set forest, and the
// four per-player aggregates (regions, occupied, free-adjacent,
// golden-used). All fields are owned exclusively by the Game; callers
// never reach into it directly.
type Game struct {
	id string

	width, height int
	players       int
	areaLimit     int

	cells []int // row-major, 0 = empty, else player number

	parent []int
	rank   []int

	regions     []int // index 1..players
	occupied    []int
	freeAdj     []int
	goldenUsed  []bool
	busyFields int

	// logger is nil by default (silent engine, per the "rule
	// rejections are silent" policy); cmd/gamma sets it. It records
	// successful golden moves and is never consulted for rule decisions.
	logger *log.Logger
}

// New creates a Game with the given board dimensions, player count,
// and per-player region limit. It fails with ErrInvalidParameters if
// any of width, height, players, or area is zero, matching gamma_new's
// InvalidParameters contract.
func New(width, height, players, area int) (*Game, error) {
	if width <= 0 || height <= 0 || players <= 0 || area <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d players=%d area=%d",
			ErrInvalidParameters, width, height, players, area)
	}

	n := width * height
	g := &Game{
		id:        uuid.New().String(),
		width:     width,
		height:    height,
		players:   players,
		areaLimit: area,
		cells:     make([]int, n),
		parent:    make([]int, n),
		rank:      make([]int, n),

		// index 0 is unused padding so player numbers (1..players)
		// can index these slices directly.
		regions:    make([]int, players+1),
		occupied:   make([]int, players+1),
		freeAdj:    make([]int, players+1),
		goldenUsed: make([]bool, players+1),
	}
	for i := range g.parent {
		g.parent[i] = i
	}
	return g, nil
}

// Delete releases a Game's resources. Go's garbage collector does the
// actual reclamation; Delete exists only to preserve the new/delete
// pairing named in the library surface, and accepting a nil Game is a
// no-op, matching gamma_delete(NULL).
func (g *Game) Delete() {
	if g == nil {
		return
	}
	g.cells = nil
	g.parent = nil
	g.rank = nil
	g.regions = nil
	g.occupied = nil
	g.freeAdj = nil
	g.goldenUsed = nil
}

// ID returns the session identifier assigned at construction. It has
// no effect on game semantics; it exists so log lines from different
// games can be told apart (cmd/gamma includes it when it logs a game's
// initialization).
func (g *Game) ID() string {
	if g == nil {
		return ""
	}
	return g.id
}

// SetLogger attaches a diagnostic logger. The engine writes one line
// to it for each successful golden move; rejected moves are never
// logged, and the logger is never consulted for rule decisions.
func (g *Game) SetLogger(l *log.Logger) {
	if g == nil {
		return
	}
	g.logger = l
}

func (g *Game) logf(format string, args ...any) {
	if g != nil && g.logger != nil {
		g.logger.Printf(format, args...)
	}
}

// Width returns the board width.
func (g *Game) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// Height returns the board height.
func (g *Game) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Players returns the number of players.
func (g *Game) Players() int {
	if g == nil {
		return 0
	}
	return g.players
}

func (g *Game) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Game) index(x, y int) int {
	return y*g.width + x
}

func (g *Game) validPlayer(p int) bool {
	return p >= 1 && p <= g.players
}

// neighbors appends the orthogonal in-bounds neighbor indices of (x,y)
// to dst and returns the extended slice. Boards have at most 4
// orthogonal neighbors, so callers pass a small stack-allocated
// backing array and never need a heap allocation here.
func (g *Game) neighbors(x, y int, dst []int) []int {
	if x > 0 {
		dst = append(dst, g.index(x-1, y))
	}
	if x < g.width-1 {
		dst = append(dst, g.index(x+1, y))
	}
	if y > 0 {
		dst = append(dst, g.index(x, y-1))
	}
	if y < g.height-1 {
		dst = append(dst, g.index(x, y+1))
	}
	return dst
}

// String renders the game for debugging (the %v / log.Printf path);
// it is distinct from Board(), which implements the spec's printable
// rendering contract.
func (g *Game) String() string {
	if g == nil {
		return "<nil game>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Game(%s) %dx%d players=%d area=%d busy=%d",
		g.id, g.width, g.height, g.players, g.areaLimit, g.busyFields)
	return b.String()
}
