package engine

import "fmt"

// Suit constants for a single physical deck. A suit's color is its parity:
// even suits are red, odd suits are black.
const (
	SuitHearts   uint16 = 0
	SuitClubs    uint16 = 1
	SuitDiamonds uint16 = 2
	SuitSpades   uint16 = 3
)

const (
	// SuitsPerDeck is the number of suits in one physical deck.
	SuitsPerDeck uint16 = 4
	// CheckeredOffset is added to a suit index to place a card in the second,
	// differently-backed deck used by CheckeredDeck.
	CheckeredOffset uint16 = SuitsPerDeck
)

// Card is a card code: suit*ranks + rank. The number of ranks is a property of
// the layout, so rank and suit are recovered with the layout's rank count.
type Card uint16

// NewCard constructs a Card from suit and rank for a layout with the given
// number of ranks.
func NewCard(suit, rank, ranks uint16) Card {
	return Card(suit*ranks + rank)
}

// Rank returns the rank of the card.
func (c Card) Rank(ranks uint16) uint16 { return uint16(c) % ranks }

// Suit returns the suit index of the card (0..7; 4..7 only under CheckeredDeck).
func (c Card) Suit(ranks uint16) uint16 { return uint16(c) / ranks }

// Red reports whether the card's suit is red.
func (c Card) Red(ranks uint16) bool { return c.Suit(ranks)%2 == 0 }

// MatchRule selects which two cards count as a pair.
type MatchRule uint8

const (
	// AnyColor pairs need only to be of same rank -- 2 == 2.
	AnyColor MatchRule = iota
	// SameColor pairs need same rank and color -- 2red == 2red.
	SameColor
	// Zebra pairs need same rank but opposite color -- 2red == 2black.
	Zebra
	// TwoDecks pairs need same rank and suit -- 2redHearts == 2redHearts.
	TwoDecks
	// CheckeredDeck is TwoDecks with a differently-backed second deck.
	CheckeredDeck
)

var ruleNames = [...]string{
	AnyColor:      "any_color",
	SameColor:     "same_color",
	Zebra:         "zebra",
	TwoDecks:      "two_decks",
	CheckeredDeck: "checkered_deck",
}

// Rules lists every match rule in declaration order.
func Rules() []MatchRule {
	return []MatchRule{AnyColor, SameColor, Zebra, TwoDecks, CheckeredDeck}
}

// Valid reports whether r is a known rule.
func (r MatchRule) Valid() bool { return int(r) < len(ruleNames) }

func (r MatchRule) String() string {
	if !r.Valid() {
		return fmt.Sprintf("rule(%d)", uint8(r))
	}
	return ruleNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r MatchRule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown rule %d", ErrInvalidParams, uint8(r))
	}
	return []byte(ruleNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *MatchRule) UnmarshalText(text []byte) error {
	rule, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// ParseRule parses a rule name such as "zebra" or "two_decks".
func ParseRule(s string) (MatchRule, error) {
	for i, name := range ruleNames {
		if name == s {
			return MatchRule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rule %q", ErrInvalidParams, s)
}

// SlotsPerRank returns how many pairs a single rank can host under r.
// One deck holds 4 cards of a rank (2 pairs); two decks hold 8 (4 pairs).
func (r MatchRule) SlotsPerRank() int {
	switch r {
	case TwoDecks, CheckeredDeck:
		return 4
	default:
		return 2
	}
}

// Example returns a short illustration of what the rule accepts.
func (r MatchRule) Example() string {
	switch r {
	case AnyColor:
		return "2 == 2"
	case SameColor:
		return "2red == 2red"
	case Zebra:
		return "2red == 2black"
	case TwoDecks, CheckeredDeck:
		return "2redHearts == 2redHearts"
	}
	return ""
}

func (r MatchRule) description() string {
	switch r {
	case AnyColor:
		return "Pairs need only to be of same rank"
	case SameColor:
		return "Pairs need to be of same rank and color"
	case Zebra:
		return "Pairs need to be of same rank but color should be of opposite"
	case TwoDecks:
		return "Pairs need to be of same rank and suite"
	case CheckeredDeck:
		return "Pairs need to be of same rank and suite,\ncards have different backs for easy differentiation"
	}
	return ""
}

// Mode is a rule variant plus its flags.
type Mode struct {
	Rule MatchRule `yaml:"rule" json:"rule"`
	// Combo lets a player who matched a pair keep the turn.
	Combo bool `yaml:"combo" json:"combo"`
	// FullPlate shuffles the whole layout; otherwise the layout is split into
	// two independently shuffled halves, one card of each pair per half.
	FullPlate bool `yaml:"full_plate" json:"full_plate"`
	// Duel is the two-player-only variant.
	Duel bool `yaml:"duel" json:"duel"`
}

// DefaultMode returns Zebra with combo on a full plate.
func DefaultMode() Mode {
	return Mode{Rule: Zebra, Combo: true, FullPlate: true}
}

// Describe returns a human readable summary of the mode.
func (m Mode) Describe() string {
	combo := "One Flip per turn"
	if m.Combo {
		combo = "Allowed"
	}
	access := "Half Plate"
	if m.FullPlate {
		access = "Full Plate"
	}
	s := fmt.Sprintf("Rule: %s\nCombo: %s\nAccess: %s", m.Rule.description(), combo, access)
	if m.Duel {
		s += "\nDuel"
	}
	return s
}
