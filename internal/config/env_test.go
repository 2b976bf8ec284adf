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

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "4")
	t.Setenv(EnvRule, "two_decks")
	t.Setenv(EnvCombo, "false")
	t.Setenv(EnvFullPlate, "0")
	t.Setenv(EnvDuel, "true")
	t.Setenv(EnvHumans, "2")
	t.Setenv(EnvBots, "0")
	t.Setenv(EnvSeed, "77")
	t.Setenv(EnvBotDelay, "250ms")

	o, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, Options{
		Level:    4,
		Mode:     engine.Mode{Rule: engine.TwoDecks, Duel: true},
		Humans:   2,
		Bots:     0,
		Seed:     77,
		BotDelay: 250 * time.Millisecond,
	}, o)
	assert.NoError(t, o.Validate())
}

func TestFromEnvUnsetKeepsValues(t *testing.T) {
	o, err := FromEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}

func TestFromEnvInvalid(t *testing.T) {
	for key, val := range map[string]string{
		EnvLevel:    "hard",
		EnvRule:     "pexeso",
		EnvCombo:    "maybe",
		EnvBots:     "x",
		EnvSeed:     "-1",
		EnvBotDelay: "soon",
	} {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := FromEnv(Default())
			assert.ErrorIs(t, err, ErrInvalidOption)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "RECALL_DOTENV_TEST"
	t.Cleanup(func() { os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestLoadDotEnvKeepsProcessEnv(t *testing.T) {
	t.Setenv(EnvLevel, "1")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvLevel+"=3\n"), 0o644))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "1", os.Getenv(EnvLevel))
}

func TestLoadDotEnvMissing(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
