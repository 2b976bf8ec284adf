// Package engine implements the memory (concentration) match engine.
//
// It generates shuffled multi-rule layouts, tracks per-cell ownership and
// flip counts, applies moves, evaluates the active match rule and reports the
// terminal outcome. It has no I/O and no logging; callers drive it one Play
// at a time and read state back to render.
package engine

import (
	"fmt"
	"math/rand/v2"
)

// Rand is the random source used for generation. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// ---------------------------------------------------------------------------
// xorshift64 source
// ---------------------------------------------------------------------------

// XorShift is a seedable xorshift64 rand.Source.
type XorShift struct {
	state uint64
}

// NewXorShift seeds a source; a zero seed is corrected to 1.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	return &XorShift{state: seed}
}

// Uint64 implements rand.Source.
func (x *XorShift) Uint64() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// NewRand returns a reproducible generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewXorShift(seed))
}

// ---------------------------------------------------------------------------
// Opened buffer
// ---------------------------------------------------------------------------

// Opened holds the face-up, unresolved cells of the current pair.
type Opened struct {
	cells [2]int
	n     uint8
}

// Len returns the number of face-up cells (0, 1 or 2).
func (o Opened) Len() int { return int(o.n) }

// At returns the i-th opened cell.
func (o Opened) At(i int) int {
	if i >= int(o.n) {
		panic("engine: opened index out of range")
	}
	return o.cells[i]
}

// Cells returns a copy of the opened cells in flip order.
func (o Opened) Cells() []int {
	out := make([]int, o.n)
	copy(out, o.cells[:o.n])
	return out
}

// Contains reports whether cell is currently face up.
func (o Opened) Contains(cell int) bool {
	for i := uint8(0); i < o.n; i++ {
		if o.cells[i] == cell {
			return true
		}
	}
	return false
}

// AwaitingFirst reports whether the next flip starts a new pair.
func (o Opened) AwaitingFirst() bool { return o.n != 1 }

// AwaitingSecond reports whether one card is face up and the next flip
// completes the pair.
func (o Opened) AwaitingSecond() bool { return o.n == 1 }

// Resolved reports whether a full pair is face up, left for display until the
// next flip clears it.
func (o Opened) Resolved() bool { return o.n == 2 }

func (o *Opened) push(cell int) {
	o.cells[o.n] = cell
	o.n++
}

func (o *Opened) clear() { o.n = 0 }

// ---------------------------------------------------------------------------
// Deck
// ---------------------------------------------------------------------------

// Deck is the complete state of one memory game.
type Deck struct {
	mode    Mode
	ranks   uint16
	suits   uint16
	pairs   int
	cells   []Cell
	opened  Opened
	current uint8
	players uint8
	scores  [MaxPlayers]int
	outcome Outcome
	over    bool
}

// NewDeck generates a layout from p and starts a game on it.
func NewDeck(rng Rand, p Params) (*Deck, error) {
	cards, err := Generate(rng, p)
	if err != nil {
		return nil, err
	}
	return newDeck(cards, p), nil
}

// NewDeckFromLayout starts a game on a fixed layout, e.g. for replays.
func NewDeckFromLayout(cards []Card, p Params) (*Deck, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(cards) != 2*p.Pairs {
		return nil, fmt.Errorf("%w: layout has %d cells, want %d", ErrInvalidParams, len(cards), 2*p.Pairs)
	}
	limit := p.Ranks * int(p.Suits())
	for i, c := range cards {
		if int(c) >= limit {
			return nil, fmt.Errorf("%w: cell %d holds card %d, want < %d", ErrInvalidParams, i, c, limit)
		}
	}
	return newDeck(cards, p), nil
}

func newDeck(cards []Card, p Params) *Deck {
	d := &Deck{
		mode:    p.Mode,
		ranks:   uint16(p.Ranks),
		suits:   p.Suits(),
		pairs:   p.Pairs,
		cells:   make([]Cell, len(cards)),
		players: p.Players,
	}
	for i, c := range cards {
		d.cells[i].card = c
	}
	return d
}

// Clone returns an independent copy of the deck.
func (d *Deck) Clone() *Deck {
	c := *d
	c.cells = make([]Cell, len(d.cells))
	copy(c.cells, d.cells)
	return &c
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Mode returns the rule variant and flags.
func (d *Deck) Mode() Mode { return d.mode }

// Len returns the number of cells.
func (d *Deck) Len() int { return len(d.cells) }

// Pairs returns the number of pairs in the layout.
func (d *Deck) Pairs() int { return d.pairs }

// Ranks returns the rank count used to decode card codes.
func (d *Deck) Ranks() uint16 { return d.ranks }

// Suits returns the number of suit indices used by the layout.
func (d *Deck) Suits() uint16 { return d.suits }

// PlayerCount returns the number of seats.
func (d *Deck) PlayerCount() uint8 { return d.players }

// Player returns the 0-based id of the player to move.
func (d *Deck) Player() uint8 { return d.current }

// Cell returns the cell at idx.
func (d *Deck) Cell(idx int) Cell { return d.cells[idx] }

// Card returns the card at idx.
func (d *Deck) Card(idx int) Card { return d.cells[idx].card }

// Owner returns the owner field of the cell at idx.
func (d *Deck) Owner(idx int) uint8 { return d.cells[idx].owner }

// Opens returns how many times the cell at idx was flipped.
func (d *Deck) Opens(idx int) uint16 { return d.cells[idx].opens }

// IsRevealed reports whether the cell at idx is permanently matched.
func (d *Deck) IsRevealed(idx int) bool { return d.cells[idx].Revealed() }

// Opened returns the face-up, unresolved cells.
func (d *Deck) Opened() Opened { return d.opened }

// Cards returns a copy of the layout's card codes.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cells))
	for i, c := range d.cells {
		out[i] = c.card
	}
	return out
}

// OwnedBy counts the cells matched by the 0-based player.
func (d *Deck) OwnedBy(player uint8) int {
	n := 0
	for _, c := range d.cells {
		if c.owner == player+1 {
			n++
		}
	}
	return n
}
