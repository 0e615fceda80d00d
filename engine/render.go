package engine

import (
	"strconv"
	"strings"
)

// Board renders the current board to a printable string. For up to 9
// players each cell is a single character; at 10 or more players each
// cell widens to fit the largest player number. Row y=0 of the
// logical board is printed last (the board is flipped vertically so
// the output reads top-down the way a board is usually drawn).
//
// The returned string for the P<=9 layout carries a trailing NUL byte
// after the final newline. That mirrors gamma_board in the original C
// implementation, which hands back a malloc'd, NUL-terminated buffer;
// callers porting fixtures from that implementation can compare byte
// for byte against it.
func (g *Game) Board() (string, error) {
	if g == nil {
		return "", ErrNilGame
	}
	if g.players <= 9 {
		return g.renderNarrow(), nil
	}
	return g.renderWide(), nil
}

func (g *Game) renderNarrow() string {
	var b strings.Builder
	b.Grow(g.height*(g.width+1) + 1)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			v := g.cells[g.index(x, y)]
			if v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + v))
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte(0)
	return b.String()
}

func (g *Game) renderWide() string {
	digits := len(strconv.Itoa(g.players))
	fieldWidth := digits + 1

	buf := make([]byte, 0, g.height*g.width*fieldWidth)
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			v := g.cells[g.index(x, y)]
			if v == 0 {
				buf = append(buf, '.')
				for i := 0; i < digits; i++ {
					buf = append(buf, ' ')
				}
			} else {
				s := strconv.Itoa(v)
				buf = append(buf, s...)
				for i := len(s); i < digits; i++ {
					buf = append(buf, ' ')
				}
				buf = append(buf, ' ')
			}
		}
		buf[len(buf)-1] = '\n'
	}
	return string(buf)
}
