package game

import (
	"strings"

	"github.com/lox/drawoffate/internal/deck"
)

const (
	MinCards = 2
	MaxCards = 10
)

// ClampCount limits n to [MinCards, MaxCards].
func ClampCount(n int) int {
	return max(MinCards, min(n, MaxCards))
}

// Collector holds the texts typed for each card slot.
type Collector struct {
	texts  []string
	resize ResizePolicy
}

// NewCollector creates a collector with n empty slots (clamped).
func NewCollector(n int, resize ResizePolicy) *Collector {
	return &Collector{
		texts:  make([]string, ClampCount(n)),
		resize: resize,
	}
}

// Count returns the number of slots
func (c *Collector) Count() int {
	return len(c.texts)
}

// SetCount clamps n and resizes the slot list according to the resize
// policy. It returns the resulting count.
func (c *Collector) SetCount(n int) int {
	n = ClampCount(n)

	next := make([]string, n)
	if c.resize == ResizePreserve {
		copy(next, c.texts)
	}
	c.texts = next
	return n
}

// SetText stores value for slot index, truncated to deck.MaxTextLen.
// It reports false when index is out of range.
func (c *Collector) SetText(index int, value string) bool {
	if index < 0 || index >= len(c.texts) {
		return false
	}
	c.texts[index] = deck.TruncateText(value)
	return true
}

// Text returns the text of slot index, or "" when out of range
func (c *Collector) Text(index int) string {
	if index < 0 || index >= len(c.texts) {
		return ""
	}
	return c.texts[index]
}

// Clear empties every slot without changing the count
func (c *Collector) Clear() {
	for i := range c.texts {
		c.texts[i] = ""
	}
}

// ValidateAll fails with a *ValidationError when any slot is blank.
func (c *Collector) ValidateAll() error {
	var empty []int
	for i, text := range c.texts {
		if strings.TrimSpace(text) == "" {
			empty = append(empty, i)
		}
	}
	if len(empty) > 0 {
		return &ValidationError{Slots: empty}
	}
	return nil
}

// Inputs returns a copy of the slots as CardInputs
func (c *Collector) Inputs() []deck.CardInput {
	return deck.Inputs(c.texts...)
}
