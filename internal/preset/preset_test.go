package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	lib := Builtin()
	require.NotEmpty(t, lib.Presets)

	p, err := lib.Find("court")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ace", "King", "Queen", "Jack"}, p.Cards)

	_, err = lib.Find("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLoadMergesUserPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
presets:
  - name: coin
    cards: ["Obverse", "Reverse"]
  - name: team
    description: Who presents
    cards: ["Ana", "Ben", "Cy"]
`), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)

	coin, err := lib.Find("coin")
	require.NoError(t, err)
	assert.Equal(t, []string{"Obverse", "Reverse"}, coin.Cards)

	team, err := lib.Find("team")
	require.NoError(t, err)
	assert.Equal(t, "Who presents", team.Description)
	assert.Equal(t, "team", lib.Names()[len(lib.Names())-1])
}

func TestLoadMissingFile(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Builtin().Names(), lib.Names())

	lib, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin().Names(), lib.Names())
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{"bad yaml", "presets: [", "parse presets"},
		{"no name", `presets: [{cards: ["a", "b"]}]`, "name is required"},
		{"duplicate", `presets: [{name: x, cards: ["a", "b"]}, {name: x, cards: ["c", "d"]}]`, "duplicate"},
		{"too few", `presets: [{name: x, cards: ["a"]}]`, "needs 2-10 cards"},
		{"too many", `presets: [{name: x, cards: ["1","2","3","4","5","6","7","8","9","10","11"]}]`, "needs 2-10 cards"},
		{"blank card", `presets: [{name: x, cards: ["a", "  "]}]`, "card 2 is empty"},
		{"long card", `presets: [{name: x, cards: ["a", "this text is far too long"]}]`, "longer than 20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
