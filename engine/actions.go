package engine

import "fmt"

// Play flips the card at cell for the current player.
//
// The first flip of a pair only turns the card face up. The second flip
// evaluates the match rule: a match gives both cells to the current player,
// may score, and may end the game; a miss passes the turn. Without Combo the
// turn also passes after a match.
//
// Play panics if the game is over or cell is not an available move. Callers
// must consult Outcome and IsAvailableMove (or AvailableMoves) first.
func (d *Deck) Play(cell int) {
	if d.over {
		panic(fmt.Sprintf("engine: play(%d) on a finished game\n%v", cell, d))
	}
	if !d.IsAvailableMove(cell) {
		panic(fmt.Sprintf("engine: %d is not available on\n%v", cell, d))
	}

	if d.opened.Resolved() {
		d.opened.clear()
	}
	d.opened.push(cell)
	d.cells[cell].flip()

	if !d.opened.Resolved() {
		return
	}

	if !d.matchFound() {
		d.advance()
		return
	}

	first, second := &d.cells[d.opened.At(0)], &d.cells[d.opened.At(1)]
	first.claim(d.current)
	second.claim(d.current)

	complete := d.allOwned()
	if complete || first.opens > 1 || second.opens > 1 {
		d.scores[d.current] += int(first.opens) + int(second.opens)
	}
	if complete {
		d.finish()
	}
	if !d.mode.Combo {
		d.advance()
	}
}

// matchFound evaluates the active rule on the two opened cells.
func (d *Deck) matchFound() bool {
	l := d.cells[d.opened.At(0)].card
	r := d.cells[d.opened.At(1)].card
	return Matches(d.mode.Rule, l, r, d.ranks)
}

// Matches reports whether l and r form a pair under rule in a layout with
// the given rank count.
func Matches(rule MatchRule, l, r Card, ranks uint16) bool {
	eq := l.Rank(ranks) == r.Rank(ranks)
	switch rule {
	case AnyColor:
		return eq
	case Zebra:
		return eq && l.Red(ranks) != r.Red(ranks)
	case SameColor:
		return eq && l.Red(ranks) == r.Red(ranks)
	case TwoDecks:
		return l == r
	case CheckeredDeck:
		deck := Card(SuitsPerDeck * ranks)
		return l%deck == r%deck
	}
	return false
}

// advance passes the turn to the next seat.
func (d *Deck) advance() {
	d.current = (d.current + 1) % d.players
}

func (d *Deck) allOwned() bool {
	for _, c := range d.cells {
		if c.owner == 0 {
			return false
		}
	}
	return true
}
