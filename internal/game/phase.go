package game

import "fmt"

// Phase is the stage the deck is in
type Phase int

const (
	Collecting Phase = iota
	Dealing
	Dealt
	Resetting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Collecting:
		return "collecting"
	case Dealing:
		return "dealing"
	case Dealt:
		return "dealt"
	case Resetting:
		return "resetting"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// OpKind identifies the kind of animation in flight
type OpKind int

const (
	OpNone OpKind = iota
	OpDeal
	OpReveal
	OpReset
)

// String returns the op kind name
func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpDeal:
		return "deal"
	case OpReveal:
		return "reveal"
	case OpReset:
		return "reset"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is a pending operation token. CardID is only meaningful for OpReveal.
type Op struct {
	Kind   OpKind
	CardID int
}

var (
	noOp    = Op{Kind: OpNone}
	dealOp  = Op{Kind: OpDeal}
	resetOp = Op{Kind: OpReset}
)

func revealOp(cardID int) Op {
	return Op{Kind: OpReveal, CardID: cardID}
}

// Busy reports whether the op represents an animation in flight
func (o Op) Busy() bool {
	return o.Kind != OpNone
}

// String returns a short description such as "reveal(3)"
func (o Op) String() string {
	if o.Kind == OpReveal {
		return fmt.Sprintf("reveal(%d)", o.CardID)
	}
	return o.Kind.String()
}
