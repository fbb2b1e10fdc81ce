package tui

import "github.com/charmbracelet/lipgloss"

const (
	cardWidth  = 14
	cardHeight = 7
)

var (
	violet    = lipgloss.Color("#7D56F4")
	lavender  = lipgloss.Color("#C4B5FD")
	deepBlue  = lipgloss.Color("#3B82F6")
	dimGrey   = lipgloss.Color("#626262")
	snow      = lipgloss.Color("#FAFAFA")
	softRed   = lipgloss.Color("#FF6B6B")
	mintGreen = lipgloss.Color("#96CEB4")
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(snow).
			Background(violet).
			Bold(true).
			Padding(0, 3)

	WelcomeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lavender).
			Foreground(snow).
			Padding(1, 6).
			Align(lipgloss.Center)

	TitleStyle = lipgloss.NewStyle().
			Foreground(lavender).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lavender)

	CountStyle = lipgloss.NewStyle().
			Foreground(snow).
			Bold(true).
			Padding(0, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(softRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(mintGreen).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(dimGrey)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimGrey).
			Padding(0, 1)

	FocusedInputStyle = InputStyle.
				BorderForeground(lavender)

	CardBackStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(violet).
			Foreground(snow).
			Bold(true).
			Align(lipgloss.Center, lipgloss.Center)

	CardFaceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(deepBlue).
			Foreground(snow).
			Align(lipgloss.Center, lipgloss.Center)

	EmptySlotStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder())
)
