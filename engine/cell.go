package engine

// maxOpens is the largest open count a cell tracks; further flips saturate.
const maxOpens = 1<<14 - 1

// maxOwner is the largest owner id (2-bit field).
const maxOwner = 3

// Cell is one position of the layout. The card never changes after
// generation; owner is 0 while the cell is in play and the 1-based id of the
// matching player afterwards; opens counts face-up flips.
type Cell struct {
	card  Card
	owner uint8
	opens uint16
}

// Card returns the card code held by the cell.
func (c Cell) Card() Card { return c.card }

// Owner returns 0 for an unmatched cell, otherwise the 1-based player id.
func (c Cell) Owner() uint8 { return c.owner }

// Opens returns how many times the cell has been flipped face up.
func (c Cell) Opens() uint16 { return c.opens }

// Revealed reports whether the cell has been permanently matched.
func (c Cell) Revealed() bool { return c.owner > 0 }

func (c *Cell) flip() {
	if c.opens < maxOpens {
		c.opens++
	}
}

func (c *Cell) claim(player uint8) {
	id := player + 1
	if id > maxOwner {
		panic("engine: owner id out of range")
	}
	c.owner = id
}
