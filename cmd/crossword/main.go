package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"pokercrossword/internal/config"
	"pokercrossword/internal/rng"
	"pokercrossword/pkg/crossword"
)

// Version is the crossword version
var Version = "v0.0.0-dev"

func main() {
	if err := config.Load(); err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	cfg := config.Instance()

	n := flag.Int("n", cfg.Puzzles, "the number of puzzles to generate")
	rows := flag.Int("rows", cfg.Rows, "the number of rows in each puzzle")
	seed := flag.Int64("seed", cfg.Seed, "the random seed (0 uses crypto/rand)")
	workers := flag.Int("workers", cfg.Workers, "the number of puzzles to build at once")
	asJSON := flag.Bool("json", cfg.Output.JSON, "print the puzzles as JSON")
	flag.Parse()

	setupLogger(cfg)

	strengths, err := cfg.HandStrengths()
	if err != nil {
		logrus.WithError(err).Fatal("invalid hand strengths")
	}

	opts := crossword.Options{
		Rows:      *rows,
		Strengths: strengths,
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"puzzles": *n,
		"rows":    opts.Rows,
		"seed":    *seed,
	}).Debug("generating puzzles")

	puzzles, err := crossword.GenerateMany(context.Background(), logrus.StandardLogger(), rng.New(*seed), opts, *n, *workers)
	if err != nil {
		logrus.WithError(err).Fatal("could not generate puzzles")
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(puzzles); err != nil {
			logrus.WithError(err).Fatal("could not encode puzzles")
		}

		return
	}

	color := cfg.Output.Color && term.IsTerminal(int(os.Stdout.Fd()))
	if err := render(puzzles, color); err != nil {
		logrus.WithError(err).Fatal("could not render puzzles")
	}
}

func setupLogger(cfg config.Config) {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
