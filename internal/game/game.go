// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/azarmadr/recall-stones/engine"
	"github.com/azarmadr/recall-stones/internal/bot"
	"github.com/azarmadr/recall-stones/internal/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Errors returned by HandleFlip and BotMove.
var (
	ErrGameOver        = errors.New("game is over")
	ErrUnknownPlayer   = errors.New("player is not seated in this game")
	ErrNotYourTurn     = errors.New("not this player's turn")
	ErrUnavailableCell = errors.New("cell is not available")
	ErrNotBotTurn      = errors.New("seat to move is not a bot")
)

// OnGameEndFunc defines the signature for a callback function executed when a game ends.
// It receives the game ID, the top scorer's ID, whether the top score is shared, and the final scores.
type OnGameEndFunc func(gameID uuid.UUID, winner uuid.UUID, draw bool, scores map[uuid.UUID]int)

// GameEventType represents the type of a game-related event.
type GameEventType string

// Constants defining the various GameEvent types.
const (
	EventCardFlip    GameEventType = "card_flip"    // A cell was turned face up.
	EventPairMatched GameEventType = "pair_matched" // The two face-up cells matched and were claimed.
	EventPairMissed  GameEventType = "pair_missed"  // The two face-up cells did not match.
	EventPlayerTurn  GameEventType = "player_turn"  // The turn passed to another seat.
	EventGameEnd     GameEventType = "game_end"     // Every cell is owned; includes results.
)

// EventUser identifies a user within a GameEvent payload.
type EventUser struct {
	ID uuid.UUID `json:"id"`
}

// EventCard identifies a face-up cell within a GameEvent payload.
type EventCard struct {
	Cell  int    `json:"cell"`
	Code  int    `json:"code"`
	Rank  int    `json:"rank"`
	Suit  string `json:"suit"`
	Opens int    `json:"opens"`
}

// GameEvent is the standard structure for broadcasting game state changes and actions.
type GameEvent struct {
	Type  GameEventType `json:"type"`
	User  *EventUser    `json:"user,omitempty"`  // The user initiating or targeted by the event.
	Card  *EventCard    `json:"card,omitempty"`  // The flipped cell.
	Card1 *EventCard    `json:"card1,omitempty"` // First cell of a resolved pair.
	Card2 *EventCard    `json:"card2,omitempty"` // Second cell of a resolved pair.

	Payload map[string]interface{} `json:"payload,omitempty"`
}

// MemoryGame is one memory game session: a deck, its seated players and the
// callbacks that publish what happens on it.
type MemoryGame struct {
	ID      uuid.UUID
	Options config.Options

	Players []*Player // Indexed by seat, which is also the engine player index.

	Deck           *engine.Deck
	PlayerToEngine map[uuid.UUID]uint8
	EngineToPlayer [engine.MaxPlayers]uuid.UUID

	brains      map[uuid.UUID]bot.Brain
	actionIndex int

	GameOver bool
	Mu       sync.Mutex

	BroadcastFn func(ev GameEvent)
	OnGameEnd   OnGameEndFunc

	// Log carries game_id; replace it to redirect the action log.
	Log *logrus.Entry
}

// NewMemoryGame generates a deck for opts and seats humans and bots.
func NewMemoryGame(opts config.Options, rng engine.Rand) (*MemoryGame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	deck, err := engine.NewDeck(rng, opts.Params())
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return newMemoryGame(opts, deck, rng)
}

// NewMemoryGameFromLayout seats players on a fixed layout, e.g. to replay a
// recorded game.
func NewMemoryGameFromLayout(opts config.Options, cards []engine.Card, rng engine.Rand) (*MemoryGame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	deck, err := engine.NewDeckFromLayout(cards, opts.Params())
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return newMemoryGame(opts, deck, rng)
}

func newMemoryGame(opts config.Options, deck *engine.Deck, rng engine.Rand) (*MemoryGame, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("game: id: %w", err)
	}
	g := &MemoryGame{
		ID:             id,
		Options:        opts,
		Players:        NewRoster(rng, opts.Humans, opts.Bots),
		Deck:           deck,
		PlayerToEngine: make(map[uuid.UUID]uint8),
		brains:         make(map[uuid.UUID]bot.Brain),
		Log:            logrus.WithField("game_id", id),
	}
	for seat, p := range g.Players {
		g.PlayerToEngine[p.ID] = uint8(seat)
		g.EngineToPlayer[seat] = p.ID
		if p.Kind == KindBot {
			brain, err := bot.NewBrain(bot.LevelRandom, rng)
			if err != nil {
				return nil, fmt.Errorf("game: seat %d: %w", seat, err)
			}
			g.brains[p.ID] = brain
		}
	}
	return g, nil
}

// CurrentPlayer returns the player to move.
// Assumes lock is held by caller.
func (g *MemoryGame) CurrentPlayer() *Player {
	return g.Players[g.Deck.Player()]
}

// HandleFlip validates and applies a flip of cell by playerID.
// Assumes lock is held by caller.
func (g *MemoryGame) HandleFlip(playerID uuid.UUID, cell int) error {
	if g.GameOver || g.Deck.IsTerminal() {
		return ErrGameOver
	}
	seat, ok := g.PlayerToEngine[playerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	if g.Deck.Player() != seat {
		return fmt.Errorf("%w: %s", ErrNotYourTurn, g.Players[seat].Name)
	}
	if !g.Deck.IsAvailableMove(cell) {
		return fmt.Errorf("%w: %d", ErrUnavailableCell, cell)
	}

	completesPair := g.Deck.Opened().AwaitingSecond()
	g.Deck.Play(cell)

	g.fireEvent(GameEvent{
		Type: EventCardFlip,
		User: &EventUser{ID: playerID},
		Card: g.eventCard(cell),
	})
	g.logAction(playerID, string(EventCardFlip), logrus.Fields{
		"cell":  cell,
		"card":  int(g.Deck.Card(cell)),
		"opens": int(g.Deck.Opens(cell)),
	})
	if !completesPair {
		return nil
	}

	player := g.Players[seat]
	player.Turns++

	opened := g.Deck.Opened()
	first, second := opened.At(0), opened.At(1)
	matched := g.Deck.IsRevealed(first)
	evType := EventPairMissed
	if matched {
		evType = EventPairMatched
	}
	g.fireEvent(GameEvent{
		Type:  evType,
		User:  &EventUser{ID: playerID},
		Card1: g.eventCard(first),
		Card2: g.eventCard(second),
		Payload: map[string]interface{}{
			"score": g.Deck.Score(seat),
			"turns": player.Turns,
		},
	})
	g.logAction(playerID, string(evType), logrus.Fields{
		"player":  seat,
		"cells":   []int{first, second},
		"matched": matched,
		"score":   g.Deck.Score(seat),
	})

	if g.Deck.IsTerminal() {
		g.endGame()
		return nil
	}
	if g.Deck.Player() != seat {
		g.broadcastPlayerTurn()
	}
	return nil
}

// broadcastPlayerTurn notifies all players of the current player's turn.
// Assumes lock is held by caller.
func (g *MemoryGame) broadcastPlayerTurn() {
	current := g.CurrentPlayer()
	g.fireEvent(GameEvent{
		Type: EventPlayerTurn,
		User: &EventUser{ID: current.ID},
		Payload: map[string]interface{}{
			"seat": int(g.Deck.Player()),
			"name": current.Name,
		},
	})
	g.logAction(current.ID, string(EventPlayerTurn), logrus.Fields{"player": g.Deck.Player()})
}

// endGame marks the game finished, broadcasts results, and triggers the OnGameEnd callback.
// Assumes lock is held by caller.
func (g *MemoryGame) endGame() {
	if g.GameOver {
		return
	}
	g.GameOver = true

	outcome, _ := g.Deck.Outcome()
	winner := g.EngineToPlayer[outcome.Winner]
	scores := make(map[uuid.UUID]int, len(g.Players))
	payloadScores := make(map[string]int, len(g.Players))
	for seat, p := range g.Players {
		s := g.Deck.Score(uint8(seat))
		scores[p.ID] = s
		payloadScores[p.ID.String()] = s
	}

	g.logAction(uuid.Nil, string(EventGameEnd), logrus.Fields{
		"winner": winner,
		"draw":   outcome.Draw,
		"scores": payloadScores,
	})
	g.fireEvent(GameEvent{
		Type: EventGameEnd,
		User: &EventUser{ID: winner},
		Payload: map[string]interface{}{
			"scores": payloadScores,
			"winner": winner.String(),
			"draw":   outcome.Draw,
		},
	})
	if g.OnGameEnd != nil {
		g.OnGameEnd(g.ID, winner, outcome.Draw, scores)
	}
	g.Log.WithFields(logrus.Fields{"winner": g.Players[outcome.Winner].Name, "draw": outcome.Draw}).Info("game ended")
}

// fireEvent broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *MemoryGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
		return
	}
	g.Log.WithField("event", ev.Type).Trace("no broadcaster")
}

func (g *MemoryGame) eventCard(cell int) *EventCard {
	c := g.Deck.Card(cell)
	ranks := g.Deck.Ranks()
	return &EventCard{
		Cell:  cell,
		Code:  int(c),
		Rank:  int(c.Rank(ranks)),
		Suit:  suitName(c.Suit(ranks)),
		Opens: int(g.Deck.Opens(cell)),
	}
}

// logAction records one game action with an increasing index.
// Assumes lock is held by caller.
func (g *MemoryGame) logAction(actorID uuid.UUID, actionType string, fields logrus.Fields) {
	g.actionIndex++
	entry := g.Log.WithFields(logrus.Fields{
		"action_index": g.actionIndex,
		"action":       actionType,
	})
	if actorID != uuid.Nil {
		entry = entry.WithField("actor", actorID)
	}
	entry.WithFields(fields).Debug("game action")
}
