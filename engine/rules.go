package engine

import (
	"errors"
	"fmt"
)

// MaxPlayers is bounded by the 2-bit owner field of a Cell.
const MaxPlayers = 3

const maxCode = 1<<16 - 1

var (
	// ErrInvalidParams reports malformed construction parameters.
	ErrInvalidParams = errors.New("invalid deck parameters")
	// ErrUnsatisfiable reports a pair count that the rank count cannot host
	// under the active rule.
	ErrUnsatisfiable = errors.New("pair count not satisfiable")
)

// Params holds everything needed to build a layout.
type Params struct {
	Pairs   int   // pairs placed face down
	Ranks   int   // distinct ranks available
	Mode    Mode  // rule and flags
	Players uint8 // number of seats, 1..MaxPlayers
}

// Capacity returns the largest pair count Ranks can host under the rule.
func (p Params) Capacity() int {
	return p.Ranks * p.Mode.Rule.SlotsPerRank()
}

// Suits returns the number of suit indices the layout can use.
func (p Params) Suits() uint16 {
	if p.Mode.Rule == CheckeredDeck {
		return 2 * SuitsPerDeck
	}
	return SuitsPerDeck
}

// Validate checks the parameters before generation.
func (p Params) Validate() error {
	if !p.Mode.Rule.Valid() {
		return fmt.Errorf("%w: unknown rule %d", ErrInvalidParams, uint8(p.Mode.Rule))
	}
	if p.Pairs < 1 {
		return fmt.Errorf("%w: pairs = %d, want >= 1", ErrInvalidParams, p.Pairs)
	}
	if p.Ranks < 1 {
		return fmt.Errorf("%w: ranks = %d, want >= 1", ErrInvalidParams, p.Ranks)
	}
	if p.Ranks*int(p.Suits()) > maxCode+1 {
		return fmt.Errorf("%w: ranks = %d overflows card codes", ErrInvalidParams, p.Ranks)
	}
	if p.Players < 1 || p.Players > MaxPlayers {
		return fmt.Errorf("%w: players = %d, want 1..%d", ErrInvalidParams, p.Players, MaxPlayers)
	}
	if p.Mode.Duel && p.Players != 2 {
		return fmt.Errorf("%w: duel needs exactly 2 players, got %d", ErrInvalidParams, p.Players)
	}
	if p.Pairs > p.Capacity() {
		return fmt.Errorf("%w: %d pairs from %d ranks under %s (at most %d)",
			ErrUnsatisfiable, p.Pairs, p.Ranks, p.Mode.Rule, p.Capacity())
	}
	return nil
}
