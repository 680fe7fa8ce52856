// Package pexeso is the pair-matching screen.
package pexeso

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	core "github.com/abhisek/pismenka/internal/pexeso"
	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
)

// Screen shows a pexeso board as a grid moved over with the arrow keys.
type Screen struct {
	game     *core.Game
	settings *settings.Manager
	cursor   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates a screen for game.
func New(game *core.Game, s *settings.Manager) *Screen {
	return &Screen{game: game, settings: s}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Pexeso"
}

func (s *Screen) Status() string {
	return fmt.Sprintf("pairs %d/%d   moves %d", s.game.MatchedPairs(), s.game.TotalPairs(), s.game.Moves())
}

func (s *Screen) CapturesEscape() bool {
	return s.game.ShowWinDialog()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.game.ShowWinDialog():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Play again"},
			{Key: "Esc", Description: "Close"},
		}
	case s.game.AwaitingAck():
		return []layout.KeyHint{
			{Key: "any key", Description: "Turn back"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Move"},
		{Key: "Enter", Description: "Flip"},
		{Key: "Ctrl+R", Description: "New game"},
		{Key: "Esc", Description: "Back"},
	}
}

// columns is the grid width for n cards: close to square, at most six.
func columns(n int) int {
	if n <= 0 {
		return 1
	}
	return min(int(math.Ceil(math.Sqrt(float64(n)))), 6)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	if s.game.ShowWinDialog() {
		switch kmsg.String() {
		case "enter", "space", "ctrl+r":
			s.game.Reset()
			s.cursor = 0
		case "esc":
			s.game.DismissWin()
		}
		return s, nil
	}

	// A mismatched pair stays visible until the next key press.
	if s.game.AwaitingAck() {
		s.game.Acknowledge()
		return s, nil
	}

	n := len(s.game.Cards())
	cols := columns(n)
	switch kmsg.String() {
	case "left", "h":
		if s.cursor%cols > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor%cols < cols-1 && s.cursor < n-1 {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-cols >= 0 {
			s.cursor -= cols
		}
	case "down", "j":
		if s.cursor+cols < n {
			s.cursor += cols
		}
	case "enter", "space":
		s.game.Flip(s.cursor)
	case "ctrl+r":
		s.game.Reset()
		s.cursor = 0
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	cards := s.game.Cards()
	if len(cards) == 0 {
		return layout.Centered(theme.Hint.Render(
			"No words yet.\nGenerate and confirm some on the Words screen."), width, height)
	}

	face := components.FaceOf(s.settings)
	cardWidth := 0
	for _, c := range cards {
		cardWidth = max(cardWidth, lipgloss.Width(c.Word))
	}
	cardWidth += 2 * face.Padding()

	cols := columns(len(cards))
	var rows []string
	for start := 0; start < len(cards); start += cols {
		var row []string
		for i := start; i < min(start+cols, len(cards)); i++ {
			row = append(row, s.renderCard(i, cards[i], face, cardWidth))
		}
		rows = append(rows, components.Row(row))
	}

	board := strings.Join(rows, "\n")
	if s.game.ShowWinDialog() {
		board += "\n\n" + s.renderWin(components.ContentWidth(width))
	}
	return layout.Centered(board, width, height)
}

func (s *Screen) renderCard(i int, c core.Card, face components.LetterFace, w int) string {
	var style lipgloss.Style
	text := c.Word
	switch {
	case c.Matched:
		style = theme.CardMatched
	case c.Revealed:
		style = theme.CardRevealed
	default:
		style = theme.CardHidden
		text = strings.Repeat("░", lipgloss.Width(c.Word))
	}
	style = style.Width(w).Align(lipgloss.Center)
	if i == s.cursor && !s.game.ShowWinDialog() {
		style = style.BorderStyle(lipgloss.ThickBorder()).BorderForeground(theme.ArcadeYellow)
	}
	return face.Apply(style, text)
}

func (s *Screen) renderWin(cw int) string {
	msg := theme.Correct.Render("Výborne! All pairs found.") + "\n" +
		theme.Body.Render(fmt.Sprintf("%d pairs in %d moves", s.game.TotalPairs(), s.game.Moves()))
	return components.ArcadeCard(msg, cw)
}
