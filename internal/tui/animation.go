package tui

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/drawoffate/internal/config"
	"github.com/lox/drawoffate/internal/game"
)

// animationDoneMsg is delivered when the timer for op fires
type animationDoneMsg struct {
	op game.Op
}

// frameMsg asks for a redraw while an animation is running. gen ties the
// frame to the animation that scheduled it.
type frameMsg struct {
	gen int
}

// animation tracks the transition currently being played
type animation struct {
	op       game.Op
	start    time.Time
	duration time.Duration
}

// progress returns how far through the animation we are, in [0, 1]
func (a *animation) progress(clock quartz.Clock) float64 {
	if a == nil || a.duration <= 0 {
		return 1
	}
	p := float64(clock.Since(a.start, "animation", "progress")) / float64(a.duration)
	return math.Max(0, math.Min(1, p))
}

// flipWidth scales a card's width during a flip: full width at the start
// and end, edge-on at the midpoint.
func flipWidth(full int, p float64) int {
	w := int(math.Round(float64(full) * math.Abs(math.Cos(math.Pi*p))))
	return max(1, w)
}

// durationFor picks the configured duration for an op
func durationFor(timing config.Timing, op game.Op) time.Duration {
	switch op.Kind {
	case game.OpDeal:
		return timing.Deal
	case game.OpReveal:
		return timing.Reveal
	case game.OpReset:
		return timing.Reset
	default:
		return 0
	}
}

// waitFor starts a timer for op immediately and returns a command that
// delivers animationDoneMsg once it fires. Creating the timer up front keeps
// its start aligned with the animation's start time.
func waitFor(clock quartz.Clock, op game.Op, d time.Duration) tea.Cmd {
	timer := clock.NewTimer(d, "animation", op.Kind.String())
	return func() tea.Msg {
		<-timer.C
		return animationDoneMsg{op: op}
	}
}

// nextFrame schedules a redraw after d; a zero interval disables frames
func nextFrame(clock quartz.Clock, d time.Duration, gen int) tea.Cmd {
	if d <= 0 {
		return nil
	}
	timer := clock.NewTimer(d, "animation", "frame")
	return func() tea.Msg {
		<-timer.C
		return frameMsg{gen: gen}
	}
}
