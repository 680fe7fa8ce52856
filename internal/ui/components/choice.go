package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/ui/theme"
)

// Choice is a horizontal selector moved with the left and right keys.
type Choice struct {
	Options  []string
	Selected int
}

// NewChoice creates a selector with selected highlighted.
func NewChoice(options []string, selected int) Choice {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Choice{Options: options, Selected: selected}
}

// Update handles left/right navigation. It reports whether the selection
// changed.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Options) == 0 {
		return c, false
	}

	switch kmsg.String() {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
			return c, true
		}
	case "right", "l":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
			return c, true
		}
	}
	return c, false
}

// View renders the options on one line.
func (c Choice) View() string {
	parts := make([]string, len(c.Options))
	for i, opt := range c.Options {
		if i == c.Selected {
			parts[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" " + opt + " ")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + opt + " ")
		}
	}
	return "◂ " + strings.Join(parts, " ") + " ▸"
}
