package game

import (
	"context"
	"time"
)

// BotMove lets the bot in the current seat flip one cell and returns it.
// Assumes lock is held by caller.
func (g *MemoryGame) BotMove() (int, error) {
	if g.GameOver || g.Deck.IsTerminal() {
		return -1, ErrGameOver
	}
	current := g.CurrentPlayer()
	brain, ok := g.brains[current.ID]
	if !ok {
		return -1, ErrNotBotTurn
	}
	cell, ok := brain.Choose(g.Deck.AvailableMovesList())
	if !ok {
		return -1, ErrGameOver
	}
	return cell, g.HandleFlip(current.ID, cell)
}

// Autoplay flips for bots, waiting Options.BotDelay before each flip, until
// a human is to move, the game ends or ctx is done. It returns the number of
// flips made. The lock is taken per flip, so Autoplay must be called without
// holding it.
func (g *MemoryGame) Autoplay(ctx context.Context) (int, error) {
	flips := 0
	for {
		g.Mu.Lock()
		idle := g.GameOver || !g.CurrentPlayer().IsBot()
		g.Mu.Unlock()
		if idle {
			return flips, nil
		}

		if err := g.wait(ctx); err != nil {
			return flips, err
		}

		g.Mu.Lock()
		cell, err := g.BotMove()
		g.Mu.Unlock()
		if err != nil {
			return flips, err
		}
		g.Log.WithField("cell", cell).Trace("bot flip")
		flips++
	}
}

func (g *MemoryGame) wait(ctx context.Context) error {
	if g.Options.BotDelay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.Options.BotDelay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
