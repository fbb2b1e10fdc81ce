package game

import (
	"errors"
	"fmt"
)

// EmptyFieldMessage is shown to the user when a deal fails validation.
const EmptyFieldMessage = "Please enter values for all cards"

// ErrEmptyField is returned when at least one card text is blank.
var ErrEmptyField = errors.New("empty card text")

// ValidationError lists the slots that failed validation.
type ValidationError struct {
	Slots []int
}

func (e *ValidationError) Error() string {
	if len(e.Slots) == 1 {
		return fmt.Sprintf("card %d: %s", e.Slots[0]+1, ErrEmptyField)
	}
	return fmt.Sprintf("%d cards: %s", len(e.Slots), ErrEmptyField)
}

func (e *ValidationError) Unwrap() error {
	return ErrEmptyField
}
