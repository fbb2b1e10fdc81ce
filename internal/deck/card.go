package deck

import (
	"fmt"
	"unicode/utf8"
)

// MaxTextLen is the longest card text accepted, counted in runes.
const MaxTextLen = 20

// CardInput is one text slot filled in by the user before the deal.
// Index is the slot's stable identity and becomes the ID of the dealt card.
type CardInput struct {
	Index int
	Text  string
}

// Card is a dealt card. ID is the Index of the CardInput it came from.
type Card struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Revealed bool   `json:"revealed"`
}

// String returns "?" for a face-down card and the card text otherwise
func (c Card) String() string {
	if !c.Revealed {
		return "?"
	}
	return c.Text
}

// GoString is used by %#v and includes the identity of the card
func (c Card) GoString() string {
	return fmt.Sprintf("Card{ID: %d, Text: %q, Revealed: %t}", c.ID, c.Text, c.Revealed)
}

// TruncateText cuts s down to MaxTextLen runes.
func TruncateText(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxTextLen])
}

// Inputs builds CardInputs for texts, indexed in order.
func Inputs(texts ...string) []CardInput {
	inputs := make([]CardInput, len(texts))
	for i, text := range texts {
		inputs[i] = CardInput{Index: i, Text: text}
	}
	return inputs
}

// FaceDown turns shuffled inputs into unrevealed cards, keeping the order.
func FaceDown(shuffled []CardInput) []Card {
	cards := make([]Card, len(shuffled))
	for i, in := range shuffled {
		cards[i] = Card{ID: in.Index, Text: in.Text}
	}
	return cards
}
