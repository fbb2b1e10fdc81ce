package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lox/drawoffate/internal/deck"
	"github.com/lox/drawoffate/internal/randutil"
)

// MachineOption configures a Machine during creation.
type MachineOption func(*machineConfig)

type machineConfig struct {
	rng    randutil.Source
	logger *log.Logger
	count  int
	reset  ResetPolicy
	resize ResizePolicy
}

// WithRNG sets the random source used for shuffling
func WithRNG(rng randutil.Source) MachineOption {
	return func(c *machineConfig) { c.rng = rng }
}

// WithLogger sets the logger; the machine logs under the "deck" prefix
func WithLogger(logger *log.Logger) MachineOption {
	return func(c *machineConfig) { c.logger = logger }
}

// WithCount sets the initial number of card slots (clamped)
func WithCount(n int) MachineOption {
	return func(c *machineConfig) { c.count = n }
}

// WithResetPolicy sets what Reset does to the typed texts
func WithResetPolicy(p ResetPolicy) MachineOption {
	return func(c *machineConfig) { c.reset = p }
}

// WithResizePolicy sets what SetCount does to the typed texts
func WithResizePolicy(p ResizePolicy) MachineOption {
	return func(c *machineConfig) { c.resize = p }
}

// Machine is the deck state machine. See the package documentation.
type Machine struct {
	presenter Presenter
	logger    *log.Logger
	rng       randutil.Source

	inputs      *Collector
	resetPolicy ResetPolicy

	phase   Phase
	pending Op
	cards   []deck.Card
	errMsg  string

	dealID string
	deals  int
}

// NewMachine creates a machine in the Collecting phase with empty slots.
// The presenter receives an initial RenderCollecting.
func NewMachine(presenter Presenter, opts ...MachineOption) *Machine {
	if presenter == nil {
		panic("presenter is required")
	}

	cfg := &machineConfig{
		count: MinCards,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rng == nil {
		cfg.rng = randutil.Global()
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	m := &Machine{
		presenter:   presenter,
		logger:      cfg.logger.WithPrefix("deck"),
		rng:         cfg.rng,
		inputs:      NewCollector(cfg.count, cfg.resize),
		resetPolicy: cfg.reset,
		phase:       Collecting,
		pending:     noOp,
	}
	m.presenter.RenderCollecting(m.inputs.Inputs())
	return m
}

// Phase returns the current phase
func (m *Machine) Phase() Phase { return m.phase }

// Pending returns the animation in flight, if any
func (m *Machine) Pending() Op { return m.pending }

// Busy reports whether an animation is in flight
func (m *Machine) Busy() bool { return m.pending.Busy() }

// Count returns the number of card slots
func (m *Machine) Count() int { return m.inputs.Count() }

// ErrorMessage returns the user-facing error, or "" when there is none
func (m *Machine) ErrorMessage() string { return m.errMsg }

// DealID identifies the current deal; it is empty before the first deal
func (m *Machine) DealID() string { return m.dealID }

// Deals returns how many deals have been accepted
func (m *Machine) Deals() int { return m.deals }

// Inputs returns a copy of the card slots while collecting, nil otherwise
func (m *Machine) Inputs() []deck.CardInput {
	if m.phase != Collecting {
		return nil
	}
	return m.inputs.Inputs()
}

// Text returns the text typed for slot index
func (m *Machine) Text(index int) string {
	return m.inputs.Text(index)
}

// Cards returns a copy of the dealt cards in table order, nil while
// collecting
func (m *Machine) Cards() []deck.Card {
	if m.phase == Collecting {
		return nil
	}
	out := make([]deck.Card, len(m.cards))
	copy(out, m.cards)
	return out
}

// Card returns the dealt card with the given ID
func (m *Machine) Card(id int) (deck.Card, bool) {
	i := m.cardIndex(id)
	if i < 0 {
		return deck.Card{}, false
	}
	return m.cards[i], true
}

// Revealed returns how many dealt cards are face up
func (m *Machine) Revealed() int {
	n := 0
	for _, c := range m.cards {
		if c.Revealed {
			n++
		}
	}
	return n
}

// ValidateAll checks that every slot holds non-blank text.
func (m *Machine) ValidateAll() error {
	return m.inputs.ValidateAll()
}

// SetCount changes the number of card slots, clamped to [MinCards, MaxCards].
// A dealt deck is discarded. Ignored while an animation is in flight.
func (m *Machine) SetCount(n int) {
	if m.ignoreBusy("set count") {
		return
	}

	if m.phase != Collecting {
		m.logger.Debug("Discarding dealt deck", "deal", m.dealID)
		m.cards = nil
		m.phase = Collecting
	}

	got := m.inputs.SetCount(n)
	m.errMsg = ""
	m.logger.Debug("Card count changed", "requested", n, "count", got)
	m.presenter.RenderCollecting(m.inputs.Inputs())
}

// Increment adds a card slot unless already at MaxCards
func (m *Machine) Increment() {
	if m.Count() >= MaxCards {
		return
	}
	m.SetCount(m.Count() + 1)
}

// Decrement removes the last card slot unless already at MinCards
func (m *Machine) Decrement() {
	if m.Count() <= MinCards {
		return
	}
	m.SetCount(m.Count() - 1)
}

// SetText stores the text for one slot, truncated to deck.MaxTextLen, and
// clears the error message. Ignored outside Collecting, while busy, or when
// index is out of range.
func (m *Machine) SetText(index int, value string) {
	if m.ignoreBusy("set text") || m.ignorePhase("set text", Collecting) {
		return
	}
	if !m.inputs.SetText(index, value) {
		m.logger.Debug("Ignoring text for unknown slot", "index", index, "count", m.Count())
		return
	}
	m.errMsg = ""
	m.presenter.RenderCollecting(m.inputs.Inputs())
}

// Load replaces every slot with texts, resizing to len(texts) (clamped).
// Texts beyond MaxCards are dropped. Ignored outside Collecting or while busy.
func (m *Machine) Load(texts []string) {
	if m.ignoreBusy("load") || m.ignorePhase("load", Collecting) {
		return
	}

	m.inputs.SetCount(len(texts))
	m.inputs.Clear()
	for i, text := range texts {
		m.inputs.SetText(i, text)
	}
	m.errMsg = ""
	m.logger.Debug("Loaded card texts", "count", m.Count())
	m.presenter.RenderCollecting(m.inputs.Inputs())
}

// Deal validates the slots, shuffles them and starts the deal animation.
// A validation failure is returned and leaves the phase unchanged; calls in
// any other phase or while busy are ignored and return nil.
func (m *Machine) Deal() error {
	if m.ignoreBusy("deal") || m.ignorePhase("deal", Collecting) {
		return nil
	}

	if err := m.inputs.ValidateAll(); err != nil {
		m.errMsg = EmptyFieldMessage
		m.logger.Debug("Deal rejected", "error", err)
		return err
	}

	m.errMsg = ""
	m.cards = deck.Deal(m.inputs.Inputs(), m.rng)
	m.dealID = newDealID()
	m.deals++
	m.phase = Dealing
	m.pending = dealOp

	m.logger.Info("Dealing cards", "deal", m.dealID, "count", len(m.cards))
	m.presenter.RenderDealt(m.Cards())
	m.presenter.Animate(m.pending)
	return nil
}

// Reveal flips the card with the given ID face up and starts its animation.
// It reports whether the request was accepted; repeated or out-of-phase
// requests are ignored.
func (m *Machine) Reveal(cardID int) bool {
	if m.ignoreBusy("reveal") || m.ignorePhase("reveal", Dealt) {
		return false
	}

	i := m.cardIndex(cardID)
	if i < 0 {
		m.logger.Debug("Ignoring reveal of unknown card", "card", cardID)
		return false
	}
	if m.cards[i].Revealed {
		m.logger.Debug("Card already revealed", "card", cardID)
		return false
	}

	m.cards[i].Revealed = true
	m.pending = revealOp(cardID)

	m.logger.Info("Revealing card", "deal", m.dealID, "card", cardID, "position", i)
	m.presenter.RenderDealt(m.Cards())
	m.presenter.Animate(m.pending)
	return true
}

// RevealAll requests a reveal for every face-down card in table order,
// completing each animation through complete before moving on. It returns
// the number of reveals accepted.
func (m *Machine) RevealAll(complete func(Op)) int {
	n := 0
	for _, c := range m.Cards() {
		if c.Revealed {
			continue
		}
		if !m.Reveal(c.ID) {
			break
		}
		n++
		if complete != nil {
			complete(m.pending)
		}
	}
	return n
}

// Reset starts flipping the cards back. The cards are cleared once the
// animation completes. Ignored outside Dealt or while busy.
func (m *Machine) Reset() bool {
	if m.ignoreBusy("reset") || m.ignorePhase("reset", Dealt) {
		return false
	}

	m.phase = Resetting
	m.pending = resetOp

	m.logger.Info("Resetting deck", "deal", m.dealID, "revealed", m.Revealed())
	m.presenter.Animate(m.pending)
	return true
}

// Complete is called by the presenter when the animation for op has
// finished. A token that does not match the pending op is ignored.
func (m *Machine) Complete(op Op) {
	switch op.Kind {
	case OpDeal:
		m.DealAnimationComplete()
	case OpReveal:
		m.RevealAnimationComplete(op.CardID)
	case OpReset:
		m.ResetAnimationComplete()
	default:
		m.logger.Debug("Ignoring completion", "op", op)
	}
}

// DealAnimationComplete finishes a deal
func (m *Machine) DealAnimationComplete() {
	if !m.settle(dealOp) {
		return
	}
	m.phase = Dealt
	m.presenter.RenderDealt(m.Cards())
}

// RevealAnimationComplete finishes the reveal of cardID
func (m *Machine) RevealAnimationComplete(cardID int) {
	if !m.settle(revealOp(cardID)) {
		return
	}
	m.presenter.RenderDealt(m.Cards())
}

// ResetAnimationComplete clears the deck and returns to Collecting
func (m *Machine) ResetAnimationComplete() {
	if !m.settle(resetOp) {
		return
	}

	m.cards = nil
	m.phase = Collecting
	if m.resetPolicy == ResetClear {
		m.inputs.Clear()
	}

	m.presenter.RenderCollectingReset()
	m.presenter.RenderCollecting(m.inputs.Inputs())
}

// settle clears the gate when op is the pending operation.
func (m *Machine) settle(op Op) bool {
	if m.pending != op {
		m.logger.Debug("Ignoring stale completion", "op", op, "pending", m.pending)
		return false
	}
	m.pending = noOp
	return true
}

func (m *Machine) ignoreBusy(action string) bool {
	if !m.pending.Busy() {
		return false
	}
	m.logger.Debug("Ignoring "+action+" while animating", "pending", m.pending)
	return true
}

func (m *Machine) ignorePhase(action string, want Phase) bool {
	if m.phase == want {
		return false
	}
	m.logger.Debug("Ignoring "+action+" out of phase", "phase", m.phase)
	return true
}

func (m *Machine) cardIndex(id int) int {
	for i, c := range m.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func newDealID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
