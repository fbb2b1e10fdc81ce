// Package config loads the Draw of Fate HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/drawoffate/internal/game"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "drawoffate.hcl"

// Config represents the complete configuration
type Config struct {
	Deck      DeckSettings
	Animation AnimationSettings
	Log       LogSettings
}

// file mirrors Config with optional blocks
type file struct {
	Deck      *DeckSettings      `hcl:"deck,block"`
	Animation *AnimationSettings `hcl:"animation,block"`
	Log       *LogSettings       `hcl:"log,block"`
}

// DeckSettings controls the card slots and the reset/resize policies
type DeckSettings struct {
	DefaultCount int    `hcl:"default_count,optional"`
	ResetPolicy  string `hcl:"reset_policy,optional"`
	ResizePolicy string `hcl:"resize_policy,optional"`
}

// AnimationSettings holds animation durations in milliseconds
type AnimationSettings struct {
	DealMS   int `hcl:"deal_ms,optional"`
	RevealMS int `hcl:"reveal_ms,optional"`
	ResetMS  int `hcl:"reset_ms,optional"`
	FrameMS  int `hcl:"frame_ms,optional"`
}

// LogSettings controls where the interactive game writes its log
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Deck: DeckSettings{
			DefaultCount: game.MinCards,
			ResetPolicy:  "preserve",
			ResizePolicy: "preserve",
		},
		Animation: AnimationSettings{
			DealMS:   1000,
			RevealMS: 800,
			ResetMS:  500,
			FrameMS:  33,
		},
		Log: LogSettings{
			Level: "info",
			File:  "drawoffate.log",
		},
	}
}

// Load reads configuration from filename. A missing file yields Default.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(hclFile.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if raw.Deck != nil {
		config.Deck = *raw.Deck
	}
	if raw.Animation != nil {
		config.Animation = *raw.Animation
	}
	if raw.Log != nil {
		config.Log = *raw.Log
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Deck.DefaultCount == 0 {
		c.Deck.DefaultCount = defaults.Deck.DefaultCount
	}
	if c.Deck.ResetPolicy == "" {
		c.Deck.ResetPolicy = defaults.Deck.ResetPolicy
	}
	if c.Deck.ResizePolicy == "" {
		c.Deck.ResizePolicy = defaults.Deck.ResizePolicy
	}

	if c.Animation.DealMS == 0 {
		c.Animation.DealMS = defaults.Animation.DealMS
	}
	if c.Animation.RevealMS == 0 {
		c.Animation.RevealMS = defaults.Animation.RevealMS
	}
	if c.Animation.ResetMS == 0 {
		c.Animation.ResetMS = defaults.Animation.ResetMS
	}
	if c.Animation.FrameMS == 0 {
		c.Animation.FrameMS = defaults.Animation.FrameMS
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Deck.DefaultCount < game.MinCards || c.Deck.DefaultCount > game.MaxCards {
		return fmt.Errorf("default_count must be between %d and %d, got %d",
			game.MinCards, game.MaxCards, c.Deck.DefaultCount)
	}
	if _, err := game.ParseResetPolicy(c.Deck.ResetPolicy); err != nil {
		return err
	}
	if _, err := game.ParseResizePolicy(c.Deck.ResizePolicy); err != nil {
		return err
	}

	durations := map[string]int{
		"deal_ms":   c.Animation.DealMS,
		"reveal_ms": c.Animation.RevealMS,
		"reset_ms":  c.Animation.ResetMS,
		"frame_ms":  c.Animation.FrameMS,
	}
	for name, ms := range durations {
		if ms <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, ms)
		}
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	return nil
}

// MachineOptions translates the deck settings into game options.
// Call Validate first; invalid policies fall back to preserve.
func (c *Config) MachineOptions() []game.MachineOption {
	reset, _ := game.ParseResetPolicy(c.Deck.ResetPolicy)
	resize, _ := game.ParseResizePolicy(c.Deck.ResizePolicy)
	return []game.MachineOption{
		game.WithCount(c.Deck.DefaultCount),
		game.WithResetPolicy(reset),
		game.WithResizePolicy(resize),
	}
}

// Timing returns the animation durations
func (c *Config) Timing() Timing {
	return Timing{
		Deal:   ms(c.Animation.DealMS),
		Reveal: ms(c.Animation.RevealMS),
		Reset:  ms(c.Animation.ResetMS),
		Frame:  ms(c.Animation.FrameMS),
	}
}

// LogLevel returns the parsed log level, defaulting to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Timing holds the animation durations
type Timing struct {
	Deal   time.Duration
	Reveal time.Duration
	Reset  time.Duration
	Frame  time.Duration
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
