package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/settings"
)

// LetterFace turns the player's font settings into a lipgloss treatment for
// tile letters.
type LetterFace struct {
	Font settings.FontOption
	Size int
}

// FaceOf returns the face for the current settings of m. A nil manager
// gives the default face.
func FaceOf(m *settings.Manager) LetterFace {
	if m == nil {
		return LetterFace{Font: settings.FontOptions[0], Size: settings.DefaultFontSize}
	}
	return LetterFace{Font: m.Font(), Size: m.Settings().FontSize}
}

// Padding is the horizontal padding inside a tile: one cell for the
// smallest size and one more for each step up.
func (f LetterFace) Padding() int {
	pad := 1
	for _, o := range settings.SizeOptions[1:] {
		if f.Size >= o.Value {
			pad++
		}
	}
	return pad
}

// Apply adds the face to base and renders letter inside it.
func (f LetterFace) Apply(base lipgloss.Style, letter string) string {
	style := base.Padding(0, f.Padding())
	switch f.Font.Style {
	case settings.StyleBold:
		style = style.Bold(true)
	case settings.StyleItalic:
		style = style.Italic(true)
	case settings.StyleUnderline:
		style = style.Underline(true)
	case settings.StyleWide:
		letter = spaced(letter)
	}
	return style.Render(letter)
}

func spaced(s string) string {
	rs := []rune(s)
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Row joins rendered tiles horizontally with a one-cell gap.
func Row(items []string) string {
	if len(items) == 0 {
		return ""
	}
	withGaps := make([]string, 0, 2*len(items)-1)
	for i, it := range items {
		if i > 0 {
			withGaps = append(withGaps, " ")
		}
		withGaps = append(withGaps, it)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, withGaps...)
}
