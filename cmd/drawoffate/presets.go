package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/drawoffate/internal/preset"
)

// PresetsCmd lists the available preset card sets
type PresetsCmd struct {
	Presets string `type:"path" help:"YAML file with extra presets"`
}

func (c *PresetsCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *PresetsCmd) run(w io.Writer) error {
	lib, err := preset.Load(c.Presets)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "CARDS", "DESCRIPTION", "TEXTS")
	for _, p := range lib.Presets {
		t.Row(p.Name, strconv.Itoa(len(p.Cards)), p.Description, strings.Join(p.Cards, ", "))
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}
