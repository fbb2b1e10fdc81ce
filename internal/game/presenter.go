package game

import (
	"fmt"

	"github.com/lox/drawoffate/internal/deck"
)

// Presenter renders the machine's state and plays its animations.
//
// Render methods are called on phase entry and whenever the visible state
// changes. Animate is called once per accepted Deal, Reveal and Reset; the
// presenter must later call Machine.Complete with the same Op exactly once.
// Slices passed to a Presenter are copies.
type Presenter interface {
	RenderCollecting(inputs []deck.CardInput)
	RenderDealt(cards []deck.Card)
	RenderCollectingReset()
	Animate(op Op)
}

// Recorder is a Presenter that records every call and queues animations
// until they are completed explicitly. It backs the headless CLI and tests.
type Recorder struct {
	Calls    []string
	Queue    []Op
	Inputs   []deck.CardInput
	Cards    []deck.Card
	Resets   int
	Animated int
}

var _ Presenter = (*Recorder)(nil)

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RenderCollecting(inputs []deck.CardInput) {
	r.Calls = append(r.Calls, "collecting")
	r.Inputs = inputs
	r.Cards = nil
}

func (r *Recorder) RenderDealt(cards []deck.Card) {
	r.Calls = append(r.Calls, "dealt")
	r.Cards = cards
}

func (r *Recorder) RenderCollectingReset() {
	r.Calls = append(r.Calls, "reset")
	r.Resets++
}

func (r *Recorder) Animate(op Op) {
	r.Calls = append(r.Calls, fmt.Sprintf("animate:%s", op))
	r.Queue = append(r.Queue, op)
	r.Animated++
}

// CompleteNext finishes the oldest queued animation. It returns false when
// nothing is queued.
func (r *Recorder) CompleteNext(m *Machine) bool {
	if len(r.Queue) == 0 {
		return false
	}
	op := r.Queue[0]
	r.Queue = r.Queue[1:]
	m.Complete(op)
	return true
}

// CompleteAll finishes queued animations until the queue is empty and
// returns how many were completed.
func (r *Recorder) CompleteAll(m *Machine) int {
	n := 0
	for r.CompleteNext(m) {
		n++
	}
	return n
}
