// Command recall plays a memory (concentration) game in the terminal.
// Humans type cell numbers on stdin; bot seats play themselves.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/azarmadr/recall-stones/engine"
	"github.com/azarmadr/recall-stones/internal/config"
	"github.com/azarmadr/recall-stones/internal/game"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logrus.WithError(err).Error("recall failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	setupLogging()

	opts, savePath, err := parseOptions(args)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, opts); err != nil {
			return err
		}
		logrus.WithField("path", savePath).Info("preset saved")
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	g, err := game.NewMemoryGame(opts, engine.NewRand(seed))
	if err != nil {
		return err
	}
	g.Log = g.Log.WithField("seed", seed)
	g.BroadcastFn = func(ev game.GameEvent) { printEvent(out, g, ev) }

	fmt.Fprintln(out, opts)
	fmt.Fprintln(out, "Example:", opts.Mode.Rule.Example())
	return play(ctx, g, bufio.NewScanner(in), out)
}

// setupLogging configures the global logger from RECALL_LOG_LEVEL.
func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	level := logrus.InfoLevel
	if v := os.Getenv(config.EnvLogLevel); v != "" {
		parsed, err := logrus.ParseLevel(v)
		if err != nil {
			logrus.WithError(err).Warn("ignoring log level")
		} else {
			level = parsed
		}
	}
	logrus.SetLevel(level)
}

// parseOptions layers defaults, the preset file, the environment and
// explicitly set flags.
func parseOptions(args []string) (config.Options, string, error) {
	fs := flag.NewFlagSet("recall", flag.ContinueOnError)
	preset := fs.String("config", "", "YAML preset to start from")
	save := fs.String("save", "", "write the resulting options to this YAML file")
	level := fs.Int("level", 0, "difficulty level 0..5")
	rule := fs.String("rule", "", "match rule: any_color, same_color, zebra, two_decks, checkered_deck")
	humans := fs.Int("humans", 1, "human seats")
	bots := fs.Int("bots", 1, "bot seats")
	seed := fs.Uint64("seed", 0, "layout seed, 0 for random")
	combo := fs.Bool("combo", true, "keep the turn after a match")
	fullPlate := fs.Bool("full-plate", true, "lay cards out as one plate instead of two halves")
	duel := fs.Bool("duel", false, "two-player duel")
	delay := fs.Duration("delay", 500*time.Millisecond, "bot think time")
	if err := fs.Parse(args); err != nil {
		return config.Options{}, "", err
	}

	opts := config.Default()
	if *preset != "" {
		var err error
		if opts, err = config.Load(*preset); err != nil {
			return opts, "", err
		}
	}
	opts, err := config.FromEnv(opts)
	if err != nil {
		return opts, "", err
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			opts.Level = *level
		case "rule":
			r, err := engine.ParseRule(*rule)
			if err != nil {
				flagErr = err
				return
			}
			opts.Mode.Rule = r
		case "humans":
			opts.Humans = *humans
		case "bots":
			opts.Bots = *bots
		case "seed":
			opts.Seed = *seed
		case "combo":
			opts.Mode.Combo = *combo
		case "full-plate":
			opts.Mode.FullPlate = *fullPlate
		case "duel":
			opts.Mode.Duel = *duel
		case "delay":
			opts.BotDelay = *delay
		}
	})
	if flagErr != nil {
		return opts, "", flagErr
	}
	if err := opts.Validate(); err != nil {
		return opts, "", err
	}
	return opts, *save, nil
}

// play runs the game loop until the game ends, input runs out or ctx is
// done.
func play(ctx context.Context, g *game.MemoryGame, sc *bufio.Scanner, out io.Writer) error {
	for {
		g.Mu.Lock()
		over := g.GameOver
		current := g.CurrentPlayer()
		st := g.Snapshot()
		g.Mu.Unlock()

		if over {
			printResult(out, st)
			return nil
		}
		if current.IsBot() {
			if _, err := g.Autoplay(ctx); err != nil {
				return err
			}
			continue
		}

		printBoard(out, st)
		fmt.Fprintf(out, "%s, flip a cell (q to quit): ", current.Name)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return err
			}
			return nil
		}
		line := strings.TrimSpace(sc.Text())
		if line == "q" {
			return nil
		}
		cell, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "not a cell number: %q\n", line)
			continue
		}

		g.Mu.Lock()
		err = g.HandleFlip(current.ID, cell)
		g.Mu.Unlock()
		if err != nil {
			fmt.Fprintln(out, err)
		}
	}
}
