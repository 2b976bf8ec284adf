package game

import (
	"fmt"

	"github.com/azarmadr/recall-stones/engine"
	"github.com/google/uuid"
)

// Kind tells a human seat from a bot seat.
type Kind uint8

const (
	KindHuman Kind = iota
	KindBot
)

func (k Kind) String() string {
	if k == KindBot {
		return "bot"
	}
	return "human"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Player is one seat of a MemoryGame.
type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Kind  Kind      `json:"kind"`
	Turns int       `json:"turns"` // Resolved pairs flipped by this player.
}

// IsBot reports whether the seat is computer-controlled.
func (p *Player) IsBot() bool { return p.Kind == KindBot }

// NewRoster seats humans and bots. Seat 0 is always human; each later seat
// is human with probability proportional to the humans still unseated.
func NewRoster(rng engine.Rand, humans, bots int) []*Player {
	if humans < 1 {
		panic("game: roster needs at least one human")
	}
	players := make([]*Player, 0, humans+bots)
	players = append(players, newPlayer(0, KindHuman))
	humans--
	for seat := 1; humans+bots > 0; seat++ {
		kind := KindBot
		if rng.IntN(humans+bots) < humans {
			kind = KindHuman
		}
		if kind == KindHuman {
			humans--
		} else {
			bots--
		}
		players = append(players, newPlayer(seat, kind))
	}
	return players
}

func newPlayer(seat int, kind Kind) *Player {
	name := fmt.Sprintf("Human %d", seat)
	if kind == KindBot {
		name = fmt.Sprintf("Bot %d", seat)
	}
	return &Player{ID: uuid.New(), Name: name, Kind: kind}
}
