// Package bot picks moves for computer-controlled seats.
package bot

import (
	"fmt"

	"github.com/azarmadr/recall-stones/engine"
)

// Level selects a bot strategy.
type Level int

const (
	// LevelRandom picks uniformly among the available cells.
	LevelRandom Level = iota
)

func (l Level) String() string {
	switch l {
	case LevelRandom:
		return "random"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Brain is the interface every bot strategy implements.
type Brain interface {
	// Choose returns one of moves, or false when moves is empty.
	Choose(moves []int) (int, bool)
}

// NewBrain creates a brain for the given level drawing from rng.
func NewBrain(level Level, rng engine.Rand) (Brain, error) {
	if rng == nil {
		return nil, fmt.Errorf("bot: nil random source")
	}
	switch level {
	case LevelRandom:
		return &RandomBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// RandomBot flips a uniformly random available cell.
type RandomBot struct {
	rng engine.Rand
}

func (b *RandomBot) Choose(moves []int) (int, bool) {
	if len(moves) == 0 {
		return 0, false
	}
	return moves[b.rng.IntN(len(moves))], true
}
