package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Back     key.Binding
	Next     key.Binding
	Prev     key.Binding
	More     key.Binding
	Fewer    key.Binding
	Deal     key.Binding
	Left     key.Binding
	Right    key.Binding
	Reveal   key.Binding
	Restart  key.Binding
	Position key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next card"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous card"),
		),
		More: key.NewBinding(
			key.WithKeys("pgup", "ctrl+n"),
			key.WithHelp("pgup", "more cards"),
		),
		Fewer: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+p"),
			key.WithHelp("pgdn", "fewer cards"),
		),
		Deal: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start game"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "select"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "reveal"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Position: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "reveal card"),
		),
	}
}

// collectingKeys implements help.KeyMap for the input screen
type collectingKeys struct{ keyMap }

func (k collectingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.More, k.Fewer, k.Deal, k.Back, k.Quit}
}

func (k collectingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// tableKeys implements help.KeyMap for the dealt screen
type tableKeys struct{ keyMap }

func (k tableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Reveal, k.Position, k.Restart, k.Back, k.Quit}
}

func (k tableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
