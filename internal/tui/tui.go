// Package tui is the terminal front end for Draw of Fate. The Model is a
// Bubble Tea model that also acts as the deck machine's Presenter, so every
// machine call and callback happens on the Bubble Tea event loop.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/drawoffate/internal/config"
	"github.com/lox/drawoffate/internal/deck"
	"github.com/lox/drawoffate/internal/game"
)

type screen int

const (
	screenWelcome screen = iota
	screenTable
)

// Options configures a Model
type Options struct {
	Logger         *log.Logger
	Clock          quartz.Clock
	Timing         config.Timing
	MachineOptions []game.MachineOption
	// Texts pre-fills the card slots, e.g. from a preset
	Texts []string
	// SkipWelcome starts on the table instead of the welcome card
	SkipWelcome bool
}

// Model represents the Bubble Tea model for the game
type Model struct {
	machine *game.Machine
	logger  *log.Logger
	clock   quartz.Clock
	timing  config.Timing

	keys keyMap
	help help.Model

	screen   screen
	inputs   []textinput.Model
	focus    int
	cards    []deck.Card
	selected int
	anim     *animation
	frames   int

	// commands produced by presenter callbacks, flushed at the end of Update
	cmds []tea.Cmd

	width    int
	height   int
	quitting bool
}

var _ game.Presenter = (*Model)(nil)

// NewModel creates the model and its deck machine
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	m := &Model{
		logger: opts.Logger.WithPrefix("tui"),
		clock:  opts.Clock,
		timing: opts.Timing,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if opts.SkipWelcome {
		m.screen = screenTable
	}

	machineOpts := append([]game.MachineOption{game.WithLogger(opts.Logger)}, opts.MachineOptions...)
	m.machine = game.NewMachine(m, machineOpts...)
	if len(opts.Texts) > 0 {
		m.machine.Load(opts.Texts)
	}
	m.focusInput(0)
	return m
}

// Machine exposes the deck machine driving this model
func (m *Model) Machine() *game.Machine {
	return m.machine
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case animationDoneMsg:
		if m.anim != nil && m.anim.op == msg.op {
			m.anim = nil
		}
		m.machine.Complete(msg.op)

	case frameMsg:
		if m.anim != nil && msg.gen == m.frames {
			m.queue(nextFrame(m.clock, m.timing.Frame, m.frames))
		}

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case screenWelcome:
			m.updateWelcome(msg)
		case screenTable:
			if m.machine.Phase() == game.Collecting {
				m.updateCollecting(msg)
			} else {
				m.updateTable(msg)
			}
		}

	default:
		// cursor blink and other component messages
		if m.focus < len(m.inputs) {
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			m.queue(cmd)
		}
	}

	return m, m.flush()
}

func (m *Model) updateWelcome(msg tea.KeyMsg) {
	if key.Matches(msg, m.keys.Back) {
		m.quitting = true
		m.queue(tea.Quit)
		return
	}
	m.screen = screenTable
	m.queue(m.focusInput(m.focus))
}

func (m *Model) updateCollecting(msg tea.KeyMsg) {
	if m.machine.Busy() {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenWelcome
	case key.Matches(msg, m.keys.Next):
		m.queue(m.focusInput((m.focus + 1) % len(m.inputs)))
	case key.Matches(msg, m.keys.Prev):
		m.queue(m.focusInput((m.focus + len(m.inputs) - 1) % len(m.inputs)))
	case key.Matches(msg, m.keys.More):
		m.machine.Increment()
	case key.Matches(msg, m.keys.Fewer):
		m.machine.Decrement()
		m.queue(m.focusInput(min(m.focus, len(m.inputs)-1)))
	case key.Matches(msg, m.keys.Deal):
		if err := m.machine.Deal(); err != nil {
			m.logger.Debug("Deal rejected", "error", err)
		}
	default:
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.queue(cmd)
		m.machine.SetText(m.focus, m.inputs[m.focus].Value())
	}
}

func (m *Model) updateTable(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenWelcome
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Reveal):
		m.revealSelected()
	case key.Matches(msg, m.keys.Position):
		pos := 9
		if k := msg.String(); k != "0" {
			pos = int(k[0] - '1')
		}
		if pos < len(m.cards) {
			m.selected = pos
			m.revealSelected()
		}
	case key.Matches(msg, m.keys.Restart):
		m.machine.Reset()
	}
}

func (m *Model) moveSelection(delta int) {
	if len(m.cards) == 0 {
		return
	}
	m.selected = (m.selected + delta + len(m.cards)) % len(m.cards)
}

func (m *Model) revealSelected() {
	if m.selected >= len(m.cards) {
		return
	}
	m.machine.Reveal(m.cards[m.selected].ID)
}

// RenderCollecting implements game.Presenter
func (m *Model) RenderCollecting(inputs []deck.CardInput) {
	m.cards = nil
	if len(m.inputs) != len(inputs) {
		resized := make([]textinput.Model, len(inputs))
		copy(resized, m.inputs)
		for i := len(m.inputs); i < len(inputs); i++ {
			resized[i] = newInput(i)
		}
		m.inputs = resized
	}
	for i, in := range inputs {
		if m.inputs[i].Value() != in.Text {
			m.inputs[i].SetValue(in.Text)
		}
	}
	if m.focus >= len(m.inputs) {
		m.focus = len(m.inputs) - 1
	}
}

// RenderDealt implements game.Presenter
func (m *Model) RenderDealt(cards []deck.Card) {
	if m.cards == nil {
		m.selected = 0
		for i := range m.inputs {
			m.inputs[i].Blur()
		}
	}
	m.cards = cards
}

// RenderCollectingReset implements game.Presenter
func (m *Model) RenderCollectingReset() {
	m.cards = nil
	m.selected = 0
	m.queue(m.focusInput(0))
}

// Animate implements game.Presenter
func (m *Model) Animate(op game.Op) {
	d := durationFor(m.timing, op)
	m.anim = &animation{op: op, start: m.clock.Now(), duration: d}
	m.frames++
	m.logger.Debug("Starting animation", "op", op, "duration", d)
	m.queue(waitFor(m.clock, op, d))
	m.queue(nextFrame(m.clock, m.timing.Frame, m.frames))
}

func (m *Model) queue(cmd tea.Cmd) {
	if cmd != nil {
		m.cmds = append(m.cmds, cmd)
	}
}

func (m *Model) flush() tea.Cmd {
	if len(m.cmds) == 0 {
		return nil
	}
	cmds := m.cmds
	m.cmds = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) focusInput(i int) tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func newInput(i int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("Card %d", i+1)
	ti.CharLimit = deck.MaxTextLen
	ti.Width = deck.MaxTextLen
	ti.Prompt = ""
	return ti
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.screen == screenWelcome:
		body = m.viewWelcome()
	case m.machine.Phase() == game.Collecting:
		body = m.viewCollecting()
	default:
		body = m.viewTable()
	}

	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body)
	}
	return body
}

func (m *Model) viewWelcome() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Render("WELCOME"),
		"TO",
		HeaderStyle.Render("DRAW OF FATE"),
		"",
		InfoStyle.Render("Press any key to continue"),
	)
	return WelcomeStyle.Render(content)
}

func (m *Model) viewCollecting() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("DRAW OF FATE"))
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("NUMBER OF CARDS"))
	b.WriteString("\n")
	b.WriteString(m.viewStepper())
	b.WriteString("\n\n")

	rows := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		style := InputStyle
		if i == m.focus {
			style = FocusedInputStyle
		}
		rows[i] = style.Render(in.View())
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n")

	if msg := m.machine.ErrorMessage(); msg != "" {
		b.WriteString(ErrorStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(collectingKeys{m.keys}))
	return b.String()
}

func (m *Model) viewStepper() string {
	minus, plus := "[-]", "[+]"
	if m.machine.Count() <= game.MinCards {
		minus = InfoStyle.Render(minus)
	}
	if m.machine.Count() >= game.MaxCards {
		plus = InfoStyle.Render(plus)
	}
	return minus + CountStyle.Render(fmt.Sprintf("%d", m.machine.Count())) + plus
}

func (m *Model) viewTable() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("DRAW OF FATE"))
	b.WriteString("\n\n")

	p := m.anim.progress(m.clock)
	rendered := make([]string, len(m.cards))
	for i, c := range m.cards {
		rendered[i] = m.viewCard(i, c, p)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, rendered...))
	b.WriteString("\n\n")

	status := fmt.Sprintf("Revealed %d/%d", m.machine.Revealed(), len(m.cards))
	if m.machine.Revealed() == len(m.cards) && len(m.cards) > 0 {
		status = SuccessStyle.Render("All cards revealed")
	}
	b.WriteString(InfoStyle.Render(status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(tableKeys{m.keys}))
	return b.String()
}

// viewCard renders the card at table position pos, taking the running
// animation into account.
func (m *Model) viewCard(pos int, c deck.Card, p float64) string {
	faceUp := c.Revealed
	width := cardWidth

	if m.anim != nil {
		switch m.anim.op.Kind {
		case game.OpDeal:
			// cards land one after another
			if p < float64(pos)/float64(len(m.cards)) {
				return EmptySlotStyle.Width(cardWidth).Height(cardHeight).Render("")
			}
		case game.OpReveal:
			if c.ID == m.anim.op.CardID {
				faceUp = p >= 0.5
				width = flipWidth(cardWidth, p)
			}
		case game.OpReset:
			if c.Revealed {
				faceUp = p < 0.5
				width = flipWidth(cardWidth, p)
			}
		}
	}

	style := CardBackStyle
	text := "?"
	if faceUp {
		style = CardFaceStyle
		text = c.Text
	}
	if pos == m.selected {
		style = style.BorderForeground(lavender)
	}
	if width < 4 {
		text = ""
	}
	return style.Width(width).Height(cardHeight).Render(text)
}

// Run starts the interactive program and blocks until it exits
func Run(ctx context.Context, opts Options) error {
	model := NewModel(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
