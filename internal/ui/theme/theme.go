package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: bright, chalk-on-slate
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Highlight
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Stats
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Tiles
var (
	// Tile is a letter waiting in the supply.
	Tile = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary)

	// TileUsed is a supply tile already placed in a slot.
	TileUsed = lipgloss.NewStyle().
			Foreground(Border).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// Slot is an answer position.
	Slot = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.NormalBorder()).
		BorderForeground(Border)

	// SlotActive is the position the next tile goes to.
	SlotActive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.ThickBorder()).
			BorderForeground(ArcadeYellow)

	// CardHidden is a face-down pexeso card.
	CardHidden = lipgloss.NewStyle().
			Foreground(Primary).
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)

	// CardRevealed is a face-up pexeso card.
	CardRevealed = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)

	// CardMatched is a card whose pair was found.
	CardMatched = lipgloss.NewStyle().
			Foreground(Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
