package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
	"github.com/lox/drawoffate/internal/config"
	"github.com/lox/drawoffate/internal/game"
	"github.com/lox/drawoffate/internal/preset"
	"github.com/lox/drawoffate/internal/randutil"
	"github.com/lox/drawoffate/internal/tui"
	"github.com/muesli/termenv"
)

// PlayCmd runs the interactive game
type PlayCmd struct {
	Config      string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	Count       int    `short:"n" help:"Number of cards (overrides config)"`
	Preset      string `short:"p" help:"Start with a preset card set"`
	Presets     string `type:"path" help:"YAML file with extra presets"`
	Seed        int64  `help:"Deterministic shuffle seed (0 is random)"`
	LogLevel    string `short:"l" help:"Log level (overrides config)"`
	LogFile     string `help:"Log file path (overrides config)"`
	NoColor     bool   `help:"Disable colours"`
	SkipWelcome bool   `help:"Start on the card entry screen"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// Apply command line overrides
	if c.Count != 0 {
		cfg.Deck.DefaultCount = c.Count
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var texts []string
	if c.Preset != "" {
		lib, err := preset.Load(c.Presets)
		if err != nil {
			return err
		}
		p, err := lib.Find(c.Preset)
		if err != nil {
			return err
		}
		texts = p.Cards
	}

	logger, closer, err := openLogFile(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger.Info("Starting Draw of Fate",
		"version", version,
		"config", c.Config,
		"count", cfg.Deck.DefaultCount,
		"preset", c.Preset,
		"seeded", c.Seed != 0)

	ctx, cancel := signalContext(logger)
	defer cancel()

	opts := append(cfg.MachineOptions(), game.WithRNG(randutil.FromSeed(c.Seed)))
	return tui.Run(ctx, tui.Options{
		Logger:         logger,
		Clock:          quartz.NewReal(),
		Timing:         cfg.Timing(),
		MachineOptions: opts,
		Texts:          texts,
		SkipWelcome:    c.SkipWelcome,
	})
}
