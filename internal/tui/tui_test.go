package tui

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawoffate/internal/config"
	"github.com/lox/drawoffate/internal/game"
	"github.com/lox/drawoffate/internal/randutil"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

var testTiming = config.Timing{
	Deal:   time.Second,
	Reveal: 800 * time.Millisecond,
	Reset:  500 * time.Millisecond,
}

func newTestModel(t *testing.T, clock quartz.Clock, texts ...string) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	return NewModel(Options{
		Logger:         logger,
		Clock:          clock,
		Timing:         testTiming,
		MachineOptions: []game.MachineOption{game.WithRNG(randutil.New(42))},
		Texts:          texts,
		SkipWelcome:    true,
	})
}

func press(m *Model, keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	pgup  = tea.KeyMsg{Type: tea.KeyPgUp}
	pgdn  = tea.KeyMsg{Type: tea.KeyPgDown}
)

// complete delivers the completion for whatever animation is running
func complete(t *testing.T, m *Model) {
	t.Helper()
	require.True(t, m.machine.Busy(), "no animation in flight")
	m.Update(animationDoneMsg{op: m.machine.Pending()})
}

func TestWelcomeScreen(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m := NewModel(Options{Logger: logger, Clock: quartz.NewMock(t), Timing: testTiming})

	assert.Contains(t, m.View(), "WELCOME")
	assert.Contains(t, m.View(), "DRAW OF FATE")

	press(m, runes("x"))
	assert.Contains(t, m.View(), "NUMBER OF CARDS")
	assert.Equal(t, "", m.machine.Text(0), "the key that dismisses the welcome card is not typed")

	press(m, esc)
	assert.Contains(t, m.View(), "WELCOME", "esc goes back")

	cmd := press(m, esc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTypingUpdatesMachine(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t))

	press(m, runes("Ace"), tab, runes("King"))
	assert.Equal(t, "Ace", m.machine.Text(0))
	assert.Equal(t, "King", m.machine.Text(1))

	press(m, tab)
	assert.Equal(t, 0, m.focus, "focus wraps around")
}

func TestStepper(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t))

	press(m, pgdn)
	assert.Equal(t, game.MinCards, m.machine.Count())

	press(m, pgup, pgup)
	assert.Equal(t, 4, m.machine.Count())
	assert.Len(t, m.inputs, 4)
	assert.Equal(t, "Card 4", m.inputs[3].Placeholder)

	press(m, tab, tab, tab)
	assert.Equal(t, 3, m.focus)
	press(m, pgdn)
	assert.Len(t, m.inputs, 3)
	assert.Equal(t, 2, m.focus, "focus follows the removed slot")
}

func TestDealValidation(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t))

	press(m, runes("Ace"), enter)
	assert.Equal(t, game.Collecting, m.machine.Phase())
	assert.Contains(t, m.View(), game.EmptyFieldMessage)

	press(m, tab, runes("K"))
	assert.NotContains(t, m.View(), game.EmptyFieldMessage)
}

func TestGameFlow(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t), "Ace", "King", "Queen")

	press(m, enter)
	require.Equal(t, game.Dealing, m.machine.Phase())
	require.Len(t, m.cards, 3)

	// input while dealing is ignored by the gate
	press(m, runes("1"))
	assert.Equal(t, 0, m.machine.Revealed())

	complete(t, m)
	assert.Equal(t, game.Dealt, m.machine.Phase())
	assert.Nil(t, m.anim)
	assert.Contains(t, m.View(), "Revealed 0/3")

	first := m.cards[0]
	press(m, runes("1"))
	assert.Equal(t, game.Op{Kind: game.OpReveal, CardID: first.ID}, m.machine.Pending())

	// a second reveal while flipping is ignored
	press(m, runes("2"))
	assert.Equal(t, 1, m.machine.Revealed())

	complete(t, m)
	assert.Contains(t, m.View(), first.Text)
	assert.Contains(t, m.View(), "Revealed 1/3")

	// selection moved to the second card with the ignored "2"
	press(m, enter)
	complete(t, m)
	press(m, runes("3"))
	complete(t, m)
	assert.Contains(t, m.View(), "All cards revealed")

	press(m, runes("r"))
	assert.Equal(t, game.Resetting, m.machine.Phase())
	complete(t, m)
	assert.Equal(t, game.Collecting, m.machine.Phase())
	assert.Nil(t, m.cards)
	assert.Equal(t, "Ace", m.inputs[0].Value(), "texts are preserved by default")
}

func TestSelectionWraps(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t), "a", "b", "c")
	press(m, enter)
	complete(t, m)

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.selected)
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.selected)

	press(m, runes("9"))
	assert.Equal(t, 0, m.selected, "positions past the last card are ignored")
	assert.False(t, m.machine.Busy())
}

func TestAnimationTimers(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clock := quartz.NewMock(t)
	m := newTestModel(t, clock, "Ace", "King")

	cmd := press(m, enter)
	require.NotNil(t, cmd)
	msgs := run(cmd)

	clock.Advance(500 * time.Millisecond).MustWait(ctx)
	assert.InDelta(t, 0.5, m.anim.progress(clock), 1e-9)

	clock.Advance(500 * time.Millisecond).MustWait(ctx)
	msg := await[animationDoneMsg](t, msgs)
	assert.Equal(t, game.Op{Kind: game.OpDeal}, msg.op)

	m.Update(msg)
	assert.Equal(t, game.Dealt, m.machine.Phase())
}

func TestStaleAnimationMessageIgnored(t *testing.T) {
	m := newTestModel(t, quartz.NewMock(t), "Ace", "King")
	press(m, enter)

	m.Update(animationDoneMsg{op: game.Op{Kind: game.OpReset}})
	assert.Equal(t, game.Dealing, m.machine.Phase())
	assert.NotNil(t, m.anim)
}

func TestFlipWidth(t *testing.T) {
	assert.Equal(t, cardWidth, flipWidth(cardWidth, 0))
	assert.Equal(t, 1, flipWidth(cardWidth, 0.5))
	assert.Equal(t, cardWidth, flipWidth(cardWidth, 1))
	assert.Less(t, flipWidth(cardWidth, 0.25), cardWidth)
}

func TestDurationFor(t *testing.T) {
	assert.Equal(t, testTiming.Deal, durationFor(testTiming, game.Op{Kind: game.OpDeal}))
	assert.Equal(t, testTiming.Reveal, durationFor(testTiming, game.Op{Kind: game.OpReveal, CardID: 3}))
	assert.Equal(t, testTiming.Reset, durationFor(testTiming, game.Op{Kind: game.OpReset}))
	assert.Zero(t, durationFor(testTiming, game.Op{}))
}

// run executes cmd in the background, unpacking batches, and streams the
// resulting messages.
func run(cmd tea.Cmd) <-chan tea.Msg {
	out := make(chan tea.Msg, 16)
	var exec func(tea.Cmd)
	exec = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, inner := range batch {
					exec(inner)
				}
				return
			}
			out <- msg
		}()
	}
	exec(cmd)
	return out
}

func await[T tea.Msg](t *testing.T, msgs <-chan tea.Msg) T {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case msg := <-msgs:
			if typed, ok := msg.(T); ok {
				return typed
			}
		case <-timeout:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}
