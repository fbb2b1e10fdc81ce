package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/lox/drawoffate/internal/statistics"
)

// UniformityCmd runs the chi-square uniformity check against the deck shuffle
type UniformityCmd struct {
	Count   int   `short:"n" default:"5" help:"Number of cards per shuffle"`
	Trials  int   `short:"t" default:"100000" help:"Number of shuffles"`
	Workers int   `short:"w" help:"Parallel workers (defaults to GOMAXPROCS)"`
	Seed    int64 `help:"Deterministic seed (0 is random)"`
	Verbose bool  `help:"Enable debug logging"`
}

func (c *UniformityCmd) Run() error {
	logger := newLogger(c.Verbose)

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, cancel := signalContext(logger)
	defer cancel()

	logger.Debug("Running uniformity check", "cards", c.Count, "trials", c.Trials, "workers", workers)
	report, err := statistics.Run(ctx, c.Count, c.Trials, workers, c.Seed, statistics.DeckShuffle)
	if err != nil {
		return err
	}

	fmt.Fprint(os.Stdout, report.String())
	if !report.Uniform() {
		return fmt.Errorf("shuffle failed uniformity check: chi-square %.2f exceeds %.2f",
			report.ChiSquare, report.Critical)
	}
	return nil
}
