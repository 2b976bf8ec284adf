package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/azarmadr/recall-stones/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	o := Default()
	require.NoError(t, o.Validate())
	assert.Equal(t, engine.Zebra, o.Mode.Rule)
	assert.True(t, o.Mode.Combo)
	assert.True(t, o.Mode.FullPlate)
	assert.Equal(t, 2, o.Players())
	assert.Equal(t, 500*time.Millisecond, o.BotDelay)
}

func TestDeckParams(t *testing.T) {
	tests := []struct {
		rule         engine.MatchRule
		level        int
		pairs, ranks int
	}{
		{engine.Zebra, 0, 3, 4},
		{engine.AnyColor, 1, 8, 6},
		{engine.SameColor, 5, 28, 14},
		{engine.TwoDecks, 0, 6, 4},
		{engine.CheckeredDeck, 2, 26, 8},
		{engine.TwoDecks, 5, 56, 14},
	}
	for _, tt := range tests {
		o := Default()
		o.Mode.Rule = tt.rule
		o.Level = tt.level
		pairs, ranks := o.DeckParams()
		assert.Equal(t, tt.pairs, pairs, "%v level %d pairs", tt.rule, tt.level)
		assert.Equal(t, tt.ranks, ranks, "%v level %d ranks", tt.rule, tt.level)
	}
}

// TestEveryLevelBuilds verifies each rule and level yields a satisfiable deck.
func TestEveryLevelBuilds(t *testing.T) {
	for _, r := range engine.Rules() {
		for level := 0; level <= MaxLevel; level++ {
			o := Default()
			o.Mode.Rule = r
			o.Level = level
			require.NoError(t, o.Validate(), "%v level %d", r, level)
			_, err := engine.NewDeck(engine.NewRand(1), o.Params())
			require.NoError(t, err, "%v level %d", r, level)
		}
	}
}

func TestLevelClamp(t *testing.T) {
	o := Default()
	assert.Equal(t, 0, o.LevelDown())
	for i := 0; i < MaxLevel+3; i++ {
		o.LevelUp()
	}
	assert.Equal(t, MaxLevel, o.Level)
	assert.Equal(t, MaxLevel-1, o.LevelDown())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Options)
	}{
		{"negative level", func(o *Options) { o.Level = -1 }},
		{"level too high", func(o *Options) { o.Level = MaxLevel + 1 }},
		{"no humans", func(o *Options) { o.Humans = 0; o.Bots = 2 }},
		{"negative bots", func(o *Options) { o.Bots = -1 }},
		{"too many seats", func(o *Options) { o.Humans = 2; o.Bots = 2 }},
		{"unknown rule", func(o *Options) { o.Mode.Rule = engine.MatchRule(77) }},
		{"negative delay", func(o *Options) { o.BotDelay = -time.Second }},
		{"duel with three", func(o *Options) { o.Mode.Duel = true; o.Bots = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Default()
			tt.edit(&o)
			assert.ErrorIs(t, o.Validate(), ErrInvalidOption)
		})
	}
}

func TestLoadPresetOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := "level: 2\nmode:\n  rule: same_color\n  full_plate: false\nbot_delay: 1s\n"
	require.NoError(t, os.WriteFile(path, []byte(preset), 0o644))

	o, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Level)
	assert.Equal(t, engine.SameColor, o.Mode.Rule)
	assert.False(t, o.Mode.FullPlate)
	assert.True(t, o.Mode.Combo, "combo should keep its default")
	assert.Equal(t, time.Second, o.BotDelay)
	assert.Equal(t, 1, o.Humans)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("mode:\n  rule: pexeso\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	out := filepath.Join(dir, "range.yaml")
	require.NoError(t, os.WriteFile(out, []byte("level: 9\n"), 0o644))
	_, err = Load(out)
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	o := Default()
	o.Level = 3
	o.Mode = engine.Mode{Rule: engine.CheckeredDeck, Duel: true}
	o.Seed = 1234
	require.NoError(t, Save(path, o))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "rule: checkered_deck")

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, o, back)
}

func TestStringMentionsLevel(t *testing.T) {
	s := Default().String()
	assert.Contains(t, s, "Level: 0 (3 pairs, 4 ranks)")
	assert.Contains(t, s, "Players: 1 human, 1 bot")
}
