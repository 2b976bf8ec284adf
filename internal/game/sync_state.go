// internal/game/sync_state.go
package game

import (
	"github.com/azarmadr/recall-stones/engine"
	"github.com/google/uuid"
)

// CardFace describes a card that is visible to every player.
type CardFace struct {
	Code int    `json:"code"`
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
	Red  bool   `json:"red"`
}

// CellState represents one cell for rendering. Card is set only while the
// cell is face up or owned.
type CellState struct {
	Cell    int       `json:"cell"`
	X       int       `json:"x"`
	Y       int       `json:"y"`
	Known   bool      `json:"known"`
	Card    *CardFace `json:"card,omitempty"`
	OwnerID uuid.UUID `json:"ownerId"` // uuid.Nil while unmatched.
	Opens   int       `json:"opens"`
}

// PlayerState represents the score board line of one seat.
type PlayerState struct {
	PlayerID      uuid.UUID `json:"playerId"`
	Name          string    `json:"name"`
	Kind          Kind      `json:"kind"`
	Score         int       `json:"score"`
	Turns         int       `json:"turns"`
	Owned         int       `json:"owned"` // Cells matched by this player.
	IsCurrentTurn bool      `json:"isCurrentTurn"`
}

// BoardState is a snapshot of the whole game in which face-down cards stay
// hidden.
type BoardState struct {
	GameID          uuid.UUID     `json:"gameId"`
	Mode            engine.Mode   `json:"mode"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Pairs           int           `json:"pairs"`
	GameOver        bool          `json:"gameOver"`
	CurrentPlayerID uuid.UUID     `json:"currentPlayerId"`
	Cells           []CellState   `json:"cells"`
	Players         []PlayerState `json:"players"`
	WinnerID        uuid.UUID     `json:"winnerId,omitempty"`
	Draw            bool          `json:"draw,omitempty"`
}

// Snapshot captures the board for renderers.
// Assumes lock is held by caller.
func (g *MemoryGame) Snapshot() BoardState {
	d := g.Deck
	st := BoardState{
		GameID:   g.ID,
		Mode:     d.Mode(),
		Width:    d.Width(),
		Height:   d.Height(),
		Pairs:    d.Pairs(),
		GameOver: g.GameOver || d.IsTerminal(),
	}
	if !st.GameOver {
		st.CurrentPlayerID = g.EngineToPlayer[d.Player()]
	}
	if outcome, over := d.Outcome(); over {
		st.WinnerID = g.EngineToPlayer[outcome.Winner]
		st.Draw = outcome.Draw
	}

	opened := d.Opened()
	ranks := d.Ranks()
	st.Cells = make([]CellState, d.Len())
	for i := range st.Cells {
		cell := d.Cell(i)
		x, y := d.Position(i)
		cs := CellState{
			Cell:  i,
			X:     x,
			Y:     y,
			Known: cell.Revealed() || opened.Contains(i),
			Opens: int(cell.Opens()),
		}
		if cell.Revealed() {
			cs.OwnerID = g.EngineToPlayer[cell.Owner()-1]
		}
		if cs.Known {
			c := cell.Card()
			cs.Card = &CardFace{
				Code: int(c),
				Rank: int(c.Rank(ranks)),
				Suit: suitName(c.Suit(ranks)),
				Red:  c.Red(ranks),
			}
		}
		st.Cells[i] = cs
	}

	st.Players = make([]PlayerState, len(g.Players))
	for seat, p := range g.Players {
		st.Players[seat] = PlayerState{
			PlayerID:      p.ID,
			Name:          p.Name,
			Kind:          p.Kind,
			Score:         d.Score(uint8(seat)),
			Turns:         p.Turns,
			Owned:         d.OwnedBy(uint8(seat)),
			IsCurrentTurn: !st.GameOver && d.Player() == uint8(seat),
		}
	}
	return st
}

// suitName converts an engine suit index to a short name. Second-deck suits
// of a checkered layout are lower case.
func suitName(suit uint16) string {
	names := [...]string{"H", "C", "D", "S", "h", "c", "d", "s"}
	if int(suit) < len(names) {
		return names[suit]
	}
	return "?"
}
