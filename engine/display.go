package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Width returns the number of grid columns. A half plate is laid out as two
// side-by-side blocks, one per half.
func (d *Deck) Width() int {
	if d.mode.FullPlate {
		return side(len(d.cells))
	}
	return 2 * side(d.pairs)
}

// Height returns the number of grid rows.
func (d *Deck) Height() int {
	if d.mode.FullPlate {
		return ceilDiv(len(d.cells), d.Width())
	}
	return ceilDiv(d.pairs, d.Width()/2)
}

// Position returns the grid column and row of cell idx.
func (d *Deck) Position(idx int) (x, y int) {
	if d.mode.FullPlate {
		w := d.Width()
		return idx % w, idx / w
	}
	hw := d.Width() / 2
	half, j := idx/d.pairs, idx%d.pairs
	return half*hw + j%hw, j / hw
}

func side(n int) int {
	w := int(math.Round(math.Sqrt(float64(n))))
	if w < 1 {
		w = 1
	}
	return w
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// String renders the layout as a grid of fixed-width card codes. It is a
// debugging aid, not a stable format.
func (d *Deck) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mode: rule=%s combo=%t full_plate=%t duel=%t\n",
		d.mode.Rule, d.mode.Combo, d.mode.FullPlate, d.mode.Duel)

	w, h := d.Width(), d.Height()
	cw := len(strconv.Itoa(int(d.ranks)*int(d.suits)-1)) + 1

	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = strings.Repeat(" ", cw)
		}
	}
	for i, c := range d.cells {
		x, y := d.Position(i)
		grid[y][x] = fmt.Sprintf("%*d", cw, c.card)
	}

	border := 2
	if !d.mode.FullPlate {
		border++
	}
	line := strings.Repeat("-", w*cw+border)
	b.WriteString(line)
	b.WriteByte('\n')
	for _, row := range grid {
		b.WriteByte('|')
		for x, s := range row {
			if !d.mode.FullPlate && x == w/2 {
				b.WriteByte('|')
			}
			b.WriteString(s)
		}
		b.WriteString("|\n")
	}
	b.WriteString(line)
	return b.String()
}
