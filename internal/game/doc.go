// Package game implements the shuffle-and-reveal deck state machine behind
// Draw of Fate.
//
// The main type is Machine. It owns the card texts typed by the user, the
// dealt cards and the single pending animation. A Presenter renders the
// machine's state and reports back when each animation has finished.
//
// # Basic Usage
//
//	rec := game.NewRecorder()
//	m := game.NewMachine(rec, game.WithCount(3))
//	m.SetText(0, "Ace")
//	m.SetText(1, "King")
//	m.SetText(2, "Queen")
//	if err := m.Deal(); err != nil {
//	    // errors.Is(err, game.ErrEmptyField)
//	}
//	rec.CompleteAll(m) // finish the deal animation
//	m.Reveal(m.Cards()[0].ID)
//
// # Busy Gate
//
// Deal, Reveal and Reset each start an animation. Until the presenter calls
// Complete with the matching Op, every further Deal, Reveal, Reset, SetCount
// and SetText is ignored. Calls made in the wrong phase are ignored as well;
// only a failed validation is reported back to the caller.
//
// # Deterministic Testing
//
// Pass WithRNG(randutil.New(seed)) to get a reproducible shuffle.
//
// A Machine is not safe for concurrent use. Front ends must serialise calls,
// for example by only touching it from an event loop.
package game
