// Package deck holds the card types and the shuffler used to turn the
// user's card texts into a face-down deck.
package deck

import (
	"github.com/lox/drawoffate/internal/randutil"
)

// Shuffle returns a uniformly random permutation of items using
// Fisher-Yates. The caller's slice is left untouched. A nil rng uses the
// process-wide generator.
func Shuffle[T any](items []T, rng randutil.Source) []T {
	if rng == nil {
		rng = randutil.Global()
	}

	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal shuffles inputs and lays them out face down.
func Deal(inputs []CardInput, rng randutil.Source) []Card {
	return FaceDown(Shuffle(inputs, rng))
}

// IsPermutation reports whether cards hold every input index exactly once
// and nothing else.
func IsPermutation(inputs []CardInput, cards []Card) bool {
	if len(inputs) != len(cards) {
		return false
	}

	want := make(map[int]string, len(inputs))
	for _, in := range inputs {
		want[in.Index] = in.Text
	}
	for _, c := range cards {
		text, ok := want[c.ID]
		if !ok || text != c.Text {
			return false
		}
		delete(want, c.ID)
	}
	return len(want) == 0
}
