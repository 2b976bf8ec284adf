package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/azarmadr/recall-stones/engine"
	"github.com/joho/godotenv"
)

// Environment variables read by FromEnv.
const (
	EnvLevel     = "RECALL_LEVEL"
	EnvRule      = "RECALL_RULE"
	EnvCombo     = "RECALL_COMBO"
	EnvFullPlate = "RECALL_FULL_PLATE"
	EnvDuel      = "RECALL_DUEL"
	EnvHumans    = "RECALL_HUMANS"
	EnvBots      = "RECALL_BOTS"
	EnvSeed      = "RECALL_SEED"
	EnvBotDelay  = "RECALL_BOT_DELAY"
	EnvLogLevel  = "RECALL_LOG_LEVEL"
)

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. Missing files are skipped. Variables already set in the process
// environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: %w", err)
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}

// FromEnv overlays RECALL_* variables on o. Unset variables leave the
// option untouched.
func FromEnv(o Options) (Options, error) {
	var err error
	if v, ok := os.LookupEnv(EnvLevel); ok {
		if o.Level, err = strconv.Atoi(v); err != nil {
			return o, envErr(EnvLevel, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvRule); ok {
		if o.Mode.Rule, err = engine.ParseRule(v); err != nil {
			return o, envErr(EnvRule, v, err)
		}
	}
	for key, dst := range map[string]*bool{
		EnvCombo:     &o.Mode.Combo,
		EnvFullPlate: &o.Mode.FullPlate,
		EnvDuel:      &o.Mode.Duel,
	} {
		if v, ok := os.LookupEnv(key); ok {
			if *dst, err = strconv.ParseBool(v); err != nil {
				return o, envErr(key, v, err)
			}
		}
	}
	for key, dst := range map[string]*int{
		EnvHumans: &o.Humans,
		EnvBots:   &o.Bots,
	} {
		if v, ok := os.LookupEnv(key); ok {
			if *dst, err = strconv.Atoi(v); err != nil {
				return o, envErr(key, v, err)
			}
		}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		if o.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return o, envErr(EnvSeed, v, err)
		}
	}
	if v, ok := os.LookupEnv(EnvBotDelay); ok {
		if o.BotDelay, err = time.ParseDuration(v); err != nil {
			return o, envErr(EnvBotDelay, v, err)
		}
	}
	return o, nil
}

func envErr(key, val string, err error) error {
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalidOption, key, val, err)
}
