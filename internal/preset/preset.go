// Package preset loads named card sets from YAML so a game can start with
// its texts already filled in.
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lox/drawoffate/internal/deck"
	"github.com/lox/drawoffate/internal/game"
	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// ErrNotFound is returned by Find for an unknown preset name
var ErrNotFound = errors.New("preset not found")

// Preset is a named list of card texts
type Preset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Cards       []string `yaml:"cards"`
}

// Library is the contents of a preset file
type Library struct {
	Presets []Preset `yaml:"presets"`
}

// Parse decodes and validates a preset file
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Builtin returns the presets shipped with the binary
func Builtin() *Library {
	lib, err := Parse(builtinYAML)
	if err != nil {
		panic("invalid builtin presets: " + err.Error())
	}
	return lib
}

// Load reads filename and appends its presets to the builtin ones; a
// preset with the same name as a builtin replaces it. An empty filename or
// a missing file yields the builtin library.
func Load(filename string) (*Library, error) {
	lib := Builtin()
	if filename == "" {
		return lib, nil
	}

	data, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return lib, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}

	user, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	lib.merge(user)
	return lib, nil
}

// Find returns the preset called name
func (l *Library) Find(name string) (Preset, error) {
	for _, p := range l.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the preset names in file order
func (l *Library) Names() []string {
	names := make([]string, len(l.Presets))
	for i, p := range l.Presets {
		names[i] = p.Name
	}
	return names
}

// Validate checks every preset fits on the table
func (l *Library) Validate() error {
	seen := make(map[string]bool, len(l.Presets))
	for i, p := range l.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("preset %d: name is required", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("preset %s: duplicate name", p.Name)
		}
		seen[p.Name] = true

		if len(p.Cards) < game.MinCards || len(p.Cards) > game.MaxCards {
			return fmt.Errorf("preset %s: needs %d-%d cards, got %d",
				p.Name, game.MinCards, game.MaxCards, len(p.Cards))
		}
		for j, text := range p.Cards {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("preset %s: card %d is empty", p.Name, j+1)
			}
			if utf8.RuneCountInString(text) > deck.MaxTextLen {
				return fmt.Errorf("preset %s: card %d is longer than %d characters", p.Name, j+1, deck.MaxTextLen)
			}
		}
	}
	return nil
}

func (l *Library) merge(other *Library) {
	for _, p := range other.Presets {
		replaced := false
		for i := range l.Presets {
			if l.Presets[i].Name == p.Name {
				l.Presets[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			l.Presets = append(l.Presets, p)
		}
	}
}
