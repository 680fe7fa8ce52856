package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/prefs"
	"github.com/abhisek/pismenka/internal/settings"
)

func TestLetterFace_Padding(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{16, 1},
		{20, 2},
		{24, 3},
		{32, 4},
		{40, 5},
		{18, 1},
	}
	for _, tt := range tests {
		f := LetterFace{Font: settings.FontOptions[0], Size: tt.size}
		if got := f.Padding(); got != tt.want {
			t.Errorf("Padding() for size %d = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestFaceOf(t *testing.T) {
	if f := FaceOf(nil); f.Font != settings.FontOptions[0] || f.Size != settings.DefaultFontSize {
		t.Errorf("FaceOf(nil) = %+v, want default face", f)
	}

	m := settings.Load(prefs.NewMemory())
	m.SetFontFamily(settings.FontOptions[5].Value)
	m.SetFontSize(32)
	f := FaceOf(m)
	if f.Font.Style != settings.StyleWide || f.Size != 32 {
		t.Errorf("FaceOf = %+v, want wide face at 32", f)
	}
}

func TestLetterFace_ApplyWideSpacesLetters(t *testing.T) {
	f := LetterFace{Font: settings.FontOption{Style: settings.StyleWide}, Size: 16}
	out := f.Apply(lipgloss.NewStyle(), "ch")
	if !strings.Contains(out, "c h") {
		t.Errorf("Apply() = %q, want spaced letters", out)
	}
}

func TestRow(t *testing.T) {
	if Row(nil) != "" {
		t.Error("Row(nil) should be empty")
	}
	if got := Row([]string{"a", "b"}); got != "a b" {
		t.Errorf("Row = %q, want %q", got, "a b")
	}
}

func TestChoice_Update(t *testing.T) {
	c := NewChoice([]string{"easy", "medium", "hard"}, 7)
	if c.Selected != 0 {
		t.Fatalf("out of range selection should reset to 0, got %d", c.Selected)
	}

	c, changed := c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if changed || c.Selected != 0 {
		t.Errorf("left at start: changed=%v selected=%d", changed, c.Selected)
	}
	c, changed = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if !changed || c.Selected != 1 {
		t.Errorf("right: changed=%v selected=%d, want true 1", changed, c.Selected)
	}
	c, _ = c.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	c, changed = c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if changed || c.Selected != 2 {
		t.Errorf("right at end: changed=%v selected=%d", changed, c.Selected)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var chosen string
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			chosen = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("off", true), item("one", false), item("gone", true), item("two", false)})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Errorf("down should skip disabled item, Selected = %d", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if chosen != "two" {
		t.Errorf("enter ran %q, want two", chosen)
	}
	if got := m.Labels(); len(got) != 4 || got[0] != "off" {
		t.Errorf("Labels() = %v", got)
	}
}

func TestProgressBar_Clamps(t *testing.T) {
	out := NewProgressBar("", 250, true, 20).View()
	if !strings.Contains(out, "250%") {
		t.Errorf("percent label missing from %q", out)
	}
}
