package deck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "Ace", "Ace"},
		{"exactly max", strings.Repeat("a", MaxTextLen), strings.Repeat("a", MaxTextLen)},
		{"too long", strings.Repeat("b", MaxTextLen+5), strings.Repeat("b", MaxTextLen)},
		{"multibyte", strings.Repeat("♠", MaxTextLen+1), strings.Repeat("♠", MaxTextLen)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateText(tt.in))
		})
	}
}

func TestCardString(t *testing.T) {
	card := Card{ID: 2, Text: "Queen"}
	assert.Equal(t, "?", card.String())

	card.Revealed = true
	assert.Equal(t, "Queen", card.String())
	assert.Equal(t, `Card{ID: 2, Text: "Queen", Revealed: true}`, card.GoString())
}

func TestInputsAndFaceDown(t *testing.T) {
	inputs := Inputs("Ace", "King")
	assert.Equal(t, []CardInput{{Index: 0, Text: "Ace"}, {Index: 1, Text: "King"}}, inputs)

	cards := FaceDown([]CardInput{inputs[1], inputs[0]})
	assert.Equal(t, []Card{{ID: 1, Text: "King"}, {ID: 0, Text: "Ace"}}, cards)
}
