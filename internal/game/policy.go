package game

import "fmt"

// ResetPolicy decides what happens to the typed card texts on reset.
type ResetPolicy int

const (
	// ResetPreserve keeps the texts so the same cards can be dealt again.
	ResetPreserve ResetPolicy = iota
	// ResetClear empties every text.
	ResetClear
)

// ResizePolicy decides what happens to the typed card texts when the card
// count changes.
type ResizePolicy int

const (
	// ResizePreserve keeps texts by index, padding or truncating the list.
	ResizePreserve ResizePolicy = iota
	// ResizeClear empties every slot.
	ResizeClear
)

func (p ResetPolicy) String() string {
	if p == ResetClear {
		return "clear"
	}
	return "preserve"
}

func (p ResizePolicy) String() string {
	if p == ResizeClear {
		return "clear"
	}
	return "preserve"
}

// ParseResetPolicy accepts "preserve" or "clear"
func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch s {
	case "preserve":
		return ResetPreserve, nil
	case "clear":
		return ResetClear, nil
	default:
		return 0, fmt.Errorf("invalid reset policy %q", s)
	}
}

// ParseResizePolicy accepts "preserve" or "clear"
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch s {
	case "preserve":
		return ResizePreserve, nil
	case "clear":
		return ResizeClear, nil
	default:
		return 0, fmt.Errorf("invalid resize policy %q", s)
	}
}
