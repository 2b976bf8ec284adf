package engine

// Outcome is the result of a finished game.
//
// Winner is the player with the strictly highest score. When the top score
// is shared Draw is set and Winner holds the lowest-indexed leader.
type Outcome struct {
	Winner uint8
	Draw   bool
}

// Outcome returns the result and true once every cell is owned.
func (d *Deck) Outcome() (Outcome, bool) {
	return d.outcome, d.over
}

// IsTerminal returns true when the game is over.
func (d *Deck) IsTerminal() bool { return d.over }

// Score returns the 0-based player's points.
func (d *Deck) Score(player uint8) int { return d.scores[player] }

// Scores returns the points of every seat.
func (d *Deck) Scores() []int {
	out := make([]int, d.players)
	copy(out, d.scores[:d.players])
	return out
}

// finish records the outcome. It is only called once, from Play.
func (d *Deck) finish() {
	d.outcome = computeOutcome(d.scores[:d.players])
	d.over = true
}

func computeOutcome(scores []int) Outcome {
	var o Outcome
	for p := 1; p < len(scores); p++ {
		switch {
		case scores[p] > scores[o.Winner]:
			o.Winner = uint8(p)
			o.Draw = false
		case scores[p] == scores[o.Winner]:
			o.Draw = true
		}
	}
	return o
}
