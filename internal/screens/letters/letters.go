// Package letters is the screen where the player picks which letters the
// games may use.
package letters

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/characters"
	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
)

const columns = 8

// Screen toggles letters of characters.Alphabet in the pool.
type Screen struct {
	pool     *characters.Pool
	settings *settings.Manager
	alphabet []string
	cursor   int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates the screen for pool.
func New(pool *characters.Pool, s *settings.Manager) *Screen {
	return &Screen{pool: pool, settings: s, alphabet: characters.Alphabet}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Letters"
}

func (s *Screen) Status() string {
	return fmt.Sprintf("%d active", s.pool.Len())
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a-ž", Description: "Toggle letter"},
		{Key: "Space", Description: "Toggle selected"},
		{Key: "Ctrl+A", Description: "All"},
		{Key: "Ctrl+X", Description: "None"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	n := len(s.alphabet)
	switch kmsg.String() {
	case "left":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right":
		if s.cursor < n-1 {
			s.cursor++
		}
	case "up":
		if s.cursor-columns >= 0 {
			s.cursor -= columns
		}
	case "down":
		if s.cursor+columns < n {
			s.cursor += columns
		}
	case "space", "enter":
		s.pool.Toggle(s.alphabet[s.cursor])
	case "ctrl+a":
		s.pool.SelectAll(s.alphabet)
	case "ctrl+x":
		s.pool.ClearAll()
	default:
		if utf8.RuneCountInString(kmsg.Text) == 1 {
			s.toggleTyped(kmsg.Text)
		}
	}
	return s, nil
}

// toggleTyped toggles the typed letter if it is in the alphabet and moves
// the cursor onto it.
func (s *Screen) toggleTyped(text string) {
	for i, l := range s.alphabet {
		if l == text {
			s.cursor = i
			s.pool.Toggle(l)
			return
		}
	}
}

func (s *Screen) View(width, height int) string {
	face := components.FaceOf(s.settings)

	var rows []string
	for start := 0; start < len(s.alphabet); start += columns {
		var row []string
		for i := start; i < min(start+columns, len(s.alphabet)); i++ {
			row = append(row, s.renderLetter(i, face))
		}
		rows = append(rows, components.Row(row))
	}

	active := s.pool.Active()
	summary := theme.Hint.Render("No letters selected. Games need at least a few.")
	if len(active) > 0 {
		summary = lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Join(active, " "))
	}

	content := strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Width(components.ContentWidth(width)).Align(lipgloss.Center).Render(summary)
	return layout.Centered(content, width, height)
}

func (s *Screen) renderLetter(i int, face components.LetterFace) string {
	letter := s.alphabet[i]
	style := theme.TileUsed
	if s.pool.IsActive(letter) {
		style = theme.Tile.Foreground(theme.Success).BorderForeground(theme.Success)
	}
	if i == s.cursor {
		style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
	}
	return face.Apply(style, letter)
}
