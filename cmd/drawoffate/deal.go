package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lox/drawoffate/internal/deck"
	"github.com/lox/drawoffate/internal/fileutil"
	"github.com/lox/drawoffate/internal/game"
	"github.com/lox/drawoffate/internal/preset"
	"github.com/lox/drawoffate/internal/randutil"
)

// DealCmd deals a deck headlessly
type DealCmd struct {
	Texts   []string `arg:"" optional:"" help:"Card texts (2-10)"`
	Preset  string   `short:"p" help:"Deal a preset card set instead of TEXTS"`
	Presets string   `type:"path" help:"YAML file with extra presets"`
	Seed    int64    `help:"Deterministic shuffle seed (0 is random)"`
	Reveal  bool     `help:"Reveal every card after dealing"`
	JSON    bool     `name:"json" help:"Print the result as JSON"`
	Out     string   `short:"o" type:"path" help:"Also write the result as JSON to this file"`
	Verbose bool     `help:"Log machine transitions to stderr"`
}

// dealResult is the transcript of one headless deal
type dealResult struct {
	Deal     string      `json:"deal"`
	Seed     int64       `json:"seed,omitempty"`
	Cards    []deck.Card `json:"cards"`
	Revealed int         `json:"revealed"`
}

func (c *DealCmd) Run() error {
	_, err := c.run(os.Stdout)
	return err
}

func (c *DealCmd) run(w io.Writer) (*dealResult, error) {
	texts, err := c.resolveTexts()
	if err != nil {
		return nil, err
	}
	if len(texts) < game.MinCards || len(texts) > game.MaxCards {
		return nil, fmt.Errorf("need between %d and %d cards, got %d", game.MinCards, game.MaxCards, len(texts))
	}

	rec := game.NewRecorder()
	m := game.NewMachine(rec,
		game.WithRNG(randutil.FromSeed(c.Seed)),
		game.WithLogger(newLogger(c.Verbose)),
	)
	m.Load(texts)
	if err := m.Deal(); err != nil {
		var verr *game.ValidationError
		if errors.As(err, &verr) {
			return nil, fmt.Errorf("%s: %w", game.EmptyFieldMessage, err)
		}
		return nil, err
	}
	rec.CompleteAll(m)

	if c.Reveal {
		m.RevealAll(m.Complete)
	}

	result := &dealResult{
		Deal:     m.DealID(),
		Seed:     c.Seed,
		Cards:    m.Cards(),
		Revealed: m.Revealed(),
	}

	if c.JSON {
		err = fileutil.WriteJSON(w, "-", result)
	} else {
		err = printDeal(w, result)
	}
	if err != nil {
		return nil, err
	}

	if c.Out != "" {
		if err := fileutil.WriteJSON(w, c.Out, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (c *DealCmd) resolveTexts() ([]string, error) {
	if c.Preset == "" {
		return c.Texts, nil
	}
	if len(c.Texts) > 0 {
		return nil, errors.New("pass either card texts or --preset, not both")
	}
	lib, err := preset.Load(c.Presets)
	if err != nil {
		return nil, err
	}
	p, err := lib.Find(c.Preset)
	if err != nil {
		return nil, err
	}
	return p.Cards, nil
}

func printDeal(w io.Writer, r *dealResult) error {
	if _, err := fmt.Fprintf(w, "deal %s\n", r.Deal); err != nil {
		return err
	}
	for pos, card := range r.Cards {
		if _, err := fmt.Fprintf(w, "%2d. %s\n", pos+1, card); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "revealed %d/%d\n", r.Revealed, len(r.Cards))
	return err
}
