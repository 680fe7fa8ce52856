// Package words is the word setup screen: generate candidate words from the
// active letters, edit them, and confirm the list the games use.
package words

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
	"github.com/abhisek/pismenka/internal/wordgen"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Screen edits a wordgen.Setup.
type Screen struct {
	setup    *wordgen.Setup
	mode     mode
	selected int
	input    components.TextInput
	notice   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)
var _ screen.EscapeHandler = (*Screen)(nil)

// New creates the screen for setup.
func New(setup *wordgen.Setup) *Screen {
	return &Screen{
		setup: setup,
		input: components.NewTextInput("new word", 24, setup.ValidateWord),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Words"
}

func (s *Screen) Status() string {
	st := s.setup.State()
	status := fmt.Sprintf("%d confirmed", len(st.ConfirmedWords))
	if st.Dirty {
		status += " •"
	}
	return status
}

func (s *Screen) CapturesEscape() bool {
	return s.mode != modeList
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.mode != modeList {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "g", Description: "Generate"},
		{Key: "c", Description: "Confirm"},
		{Key: "a/e/d", Description: "Add/Edit/Delete"},
		{Key: "[ ]", Description: "Min"},
		{Key: "< >", Description: "Max"},
		{Key: "- +", Description: "Count"},
		{Key: "x", Description: "Clear"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.mode != modeList {
		return s.updateInput(msg)
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	s.notice = ""

	st := s.setup.State()
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(st.Words)-1 {
			s.selected++
		}
	case "g":
		s.setup.Generate()
		s.selected = 0
		if len(s.setup.State().Words) == 0 {
			s.notice = "Pick some letters first."
		}
	case "c":
		s.setup.Confirm()
		s.notice = fmt.Sprintf("%d words ready to play.", len(s.setup.ConfirmedWords()))
	case "x":
		s.setup.Clear()
		s.selected = 0
	case "a":
		return s, s.startInput(modeAdd, "")
	case "e", "enter":
		if s.selected < len(st.Words) {
			return s, s.startInput(modeEdit, st.Words[s.selected])
		}
	case "d", "delete", "backspace":
		s.setup.RemoveWord(s.selected)
		s.selected = max(min(s.selected, len(st.Words)-2), 0)
	case "[":
		s.setup.SetBounds(max(st.MinLength-1, 1), st.MaxLength, st.Count)
	case "]":
		s.setup.SetBounds(st.MinLength+1, max(st.MaxLength, st.MinLength+1), st.Count)
	case "<":
		s.setup.SetBounds(min(st.MinLength, max(st.MaxLength-1, 1)), max(st.MaxLength-1, 1), st.Count)
	case ">":
		s.setup.SetBounds(st.MinLength, st.MaxLength+1, st.Count)
	case "-":
		s.setup.SetBounds(st.MinLength, st.MaxLength, max(st.Count-1, 1))
	case "+", "=":
		s.setup.SetBounds(st.MinLength, st.MaxLength, min(st.Count+1, wordgen.MaxCount))
	}
	return s, nil
}

func (s *Screen) startInput(m mode, value string) tea.Cmd {
	s.mode = m
	s.input.Reset()
	s.input.SetValue(value)
	return s.input.Init()
}

func (s *Screen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.mode = modeList
			return s, nil
		case "enter":
			value := s.input.Value()
			if s.mode == modeAdd {
				s.setup.AddWord(value)
				s.selected = max(len(s.setup.State().Words)-1, 0)
			} else {
				s.setup.UpdateWord(s.selected, value)
			}
			s.mode = modeList
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	st := s.setup.State()
	cw := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var sections []string
	sections = append(sections, theme.Body.Render(fmt.Sprintf(
		"Length %d–%d   Count %d", st.MinLength, st.MaxLength, st.Count)))

	if len(st.Words) == 0 {
		sections = append(sections, theme.Hint.Render("No words yet. Press g to generate or a to add one."))
	} else {
		sections = append(sections, s.renderWords(st.Words))
	}

	if s.mode != modeList {
		label := "Add word: "
		if s.mode == modeEdit {
			label = "Edit word: "
		}
		sections = append(sections, theme.Body.Render(label)+s.input.View())
	}

	if s.setup.HasInvalid() {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
			Render("Words marked ✗ will be left out when you confirm."))
	}

	confirmed := "none"
	if len(st.ConfirmedWords) > 0 {
		confirmed = strings.Join(st.ConfirmedWords, ", ")
	}
	sections = append(sections, dim.Width(cw).Render("Confirmed: "+confirmed))

	if s.notice != "" {
		sections = append(sections, theme.Correct.Render(s.notice))
	}

	return layout.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderWords(words []string) string {
	lines := make([]string, len(words))
	for i, w := range words {
		mark := theme.Correct.Render("✓")
		if !s.setup.ValidateWord(w) {
			mark = theme.Incorrect.Render("✗")
		}
		line := fmt.Sprintf("%s %s", mark, w)
		if i == s.selected {
			lines[i] = theme.Selected.Render("▸ ") + line
		} else {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
