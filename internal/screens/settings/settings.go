// Package settings is the screen for letter face, letter size and voice.
package settings

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/screen"
	gamesettings "github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/speech"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
)

// sample is shown with the chosen face and spoken with the chosen voice.
const sample = "ahoj"

type row int

const (
	rowFont row = iota
	rowSize
	rowVoice
)

// Screen edits the game settings and the voice preference.
type Screen struct {
	settings *gamesettings.Manager
	voices   *speech.Preference
	speaker  speech.Speaker
	row      row
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the screen. voices and speaker may be nil when speech is
// unavailable.
func New(s *gamesettings.Manager, voices *speech.Preference, speaker speech.Speaker) *Screen {
	return &Screen{settings: s, voices: voices, speaker: speaker}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Settings"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Listen"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) rows() int {
	if s.hasVoices() {
		return 3
	}
	return 2
}

func (s *Screen) hasVoices() bool {
	return s.voices != nil && len(s.voices.Voices()) > 0
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if int(s.row) < s.rows()-1 {
			s.row++
		}
	case "left", "h":
		s.step(-1)
	case "right", "l":
		s.step(1)
	case "enter", "space":
		if s.speaker != nil {
			s.speaker.Speak(sample)
		}
	}
	return s, nil
}

// step moves the current row's value by delta, wrapping around.
func (s *Screen) step(delta int) {
	switch s.row {
	case rowFont:
		opts := gamesettings.FontOptions
		i := slices.Index(opts, s.settings.Font())
		s.settings.SetFontFamily(opts[wrap(i+delta, len(opts))].Value)
	case rowSize:
		opts := gamesettings.SizeOptions
		s.settings.SetFontSize(opts[wrap(s.settings.SizeIndex()+delta, len(opts))].Value)
	case rowVoice:
		voices := s.voices.Voices()
		i := slices.IndexFunc(voices, func(v speech.Voice) bool { return v.Name == s.voices.Selected() })
		s.voices.Select(voices[wrap(i+delta, len(voices))].Name)
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (s *Screen) View(width, height int) string {
	font := s.settings.Font()
	size := gamesettings.SizeOptions[s.settings.SizeIndex()]

	lines := []string{
		s.renderRow(rowFont, "Letters", font.Name),
		s.renderRow(rowSize, "Size", size.Name),
	}
	if s.hasVoices() {
		voice := "none"
		if v, ok := s.voices.Current(); ok {
			voice = v.Label()
		}
		lines = append(lines, s.renderRow(rowVoice, "Voice", voice))
	}

	face := components.FaceOf(s.settings)
	var tiles []string
	for _, r := range sample {
		tiles = append(tiles, face.Apply(theme.Tile, string(r)))
	}
	preview := components.ArcadeCard(components.Row(tiles), components.ContentWidth(width))

	content := strings.Join(lines, "\n\n") + "\n\n" + preview
	return layout.Centered(content, width, height)
}

func (s *Screen) renderRow(r row, label, value string) string {
	labelStyle := lipgloss.NewStyle().Width(10).Foreground(theme.TextDim)
	if r == s.row {
		return labelStyle.Foreground(theme.Primary).Bold(true).Render("▸ "+label) +
			theme.Selected.Render("◂ "+value+" ▸")
	}
	return labelStyle.Render("  "+label) + theme.Unselected.Render("  "+value)
}
