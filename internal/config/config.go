// Package config holds the options a memory game is started with: the
// difficulty level, the rule variant and flags, the seat mix and pacing.
// Options come from defaults, an optional YAML preset, a .env file and the
// process environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/azarmadr/recall-stones/engine"
	"gopkg.in/yaml.v3"
)

// MaxLevel is the highest difficulty level.
const MaxLevel = 5

// ErrInvalidOption reports an option outside its allowed range.
var ErrInvalidOption = errors.New("invalid option")

// Options configures one game.
type Options struct {
	Level    int           `yaml:"level" json:"level"`
	Mode     engine.Mode   `yaml:"mode" json:"mode"`
	Humans   int           `yaml:"humans" json:"humans"`
	Bots     int           `yaml:"bots" json:"bots"`
	Seed     uint64        `yaml:"seed" json:"seed"` // 0 picks a random seed
	BotDelay time.Duration `yaml:"bot_delay" json:"bot_delay"`
}

// Default returns the options of a fresh install: level 0 Zebra with combo
// on a full plate, one human against one bot.
func Default() Options {
	return Options{
		Level:    0,
		Mode:     engine.DefaultMode(),
		Humans:   1,
		Bots:     1,
		BotDelay: 500 * time.Millisecond,
	}
}

// Players returns the number of seats.
func (o Options) Players() int { return o.Humans + o.Bots }

// DeckParams returns the pair and rank counts for the current level.
func (o Options) DeckParams() (pairs, ranks int) {
	ranks = 4 + 2*o.Level
	switch o.Mode.Rule {
	case engine.TwoDecks, engine.CheckeredDeck:
		pairs = 6 + 10*o.Level
	default:
		pairs = 3 + 5*o.Level
	}
	return pairs, ranks
}

// Params builds the engine parameters for these options.
func (o Options) Params() engine.Params {
	pairs, ranks := o.DeckParams()
	return engine.Params{
		Pairs:   pairs,
		Ranks:   ranks,
		Mode:    o.Mode,
		Players: uint8(o.Players()),
	}
}

// Validate checks every option and that the resulting deck can be built.
func (o Options) Validate() error {
	if o.Level < 0 || o.Level > MaxLevel {
		return fmt.Errorf("%w: level %d, want 0..%d", ErrInvalidOption, o.Level, MaxLevel)
	}
	if !o.Mode.Rule.Valid() {
		return fmt.Errorf("%w: unknown rule %d", ErrInvalidOption, uint8(o.Mode.Rule))
	}
	if o.Humans < 1 {
		return fmt.Errorf("%w: humans %d, seat 0 must be human", ErrInvalidOption, o.Humans)
	}
	if o.Bots < 0 {
		return fmt.Errorf("%w: bots %d", ErrInvalidOption, o.Bots)
	}
	if n := o.Players(); n > engine.MaxPlayers {
		return fmt.Errorf("%w: %d players, at most %d", ErrInvalidOption, n, engine.MaxPlayers)
	}
	if o.BotDelay < 0 {
		return fmt.Errorf("%w: bot delay %v", ErrInvalidOption, o.BotDelay)
	}
	if err := o.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	return nil
}

// LevelUp raises the level by one, stopping at MaxLevel.
func (o *Options) LevelUp() int {
	if o.Level < MaxLevel {
		o.Level++
	}
	return o.Level
}

// LevelDown lowers the level by one, stopping at 0.
func (o *Options) LevelDown() int {
	if o.Level > 0 {
		o.Level--
	}
	return o.Level
}

func (o Options) String() string {
	pairs, ranks := o.DeckParams()
	var b strings.Builder
	b.WriteString(o.Mode.Describe())
	fmt.Fprintf(&b, "\nLevel: %d (%d pairs, %d ranks)", o.Level, pairs, ranks)
	fmt.Fprintf(&b, "\nPlayers: %d human, %d bot", o.Humans, o.Bots)
	return b.String()
}

// Load reads a YAML preset from path. Fields the preset omits keep their
// Default values.
func Load(path string) (Options, error) {
	o := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &o); err != nil {
		return o, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := o.Validate(); err != nil {
		return o, fmt.Errorf("config: %s: %w", path, err)
	}
	return o, nil
}

// Save writes o to path as a YAML preset.
func Save(path string, o Options) error {
	b, err := yaml.Marshal(o)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
