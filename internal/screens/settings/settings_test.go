package settings

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pismenka/internal/prefs"
	gamesettings "github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/speech"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testVoices(mem prefs.Storage) *speech.Preference {
	return speech.NewPreference(mem, []speech.Voice{
		{Name: "English", Lang: "en"},
		{Name: "Slovak", Lang: "sk"},
		{Name: "Czech", Lang: "cs"},
	}, speech.DefaultLanguages)
}

func TestSettingsScreen_CyclesFontAndSize(t *testing.T) {
	mem := prefs.NewMemory()
	m := gamesettings.Load(mem)
	s := New(m, nil, nil)

	s.Update(specialKey(tea.KeyRight))
	if got := m.Settings().FontFamily; got != gamesettings.FontOptions[1].Value {
		t.Errorf("FontFamily = %q, want %q", got, gamesettings.FontOptions[1].Value)
	}

	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	last := gamesettings.FontOptions[len(gamesettings.FontOptions)-1].Value
	if got := m.Settings().FontFamily; got != last {
		t.Errorf("left from the first face: FontFamily = %q, want %q", got, last)
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyRight))
	if m.Settings().FontSize != 24 {
		t.Errorf("FontSize = %d, want 24", m.Settings().FontSize)
	}

	s.Update(specialKey(tea.KeyDown))
	if s.row != rowSize {
		t.Errorf("row = %d, want the size row when there are no voices", s.row)
	}
	if mem.SaveCount(prefs.KeyGameSettings) == 0 {
		t.Error("settings were never saved")
	}
}

func TestSettingsScreen_Voice(t *testing.T) {
	mem := prefs.NewMemory()
	voices := testVoices(mem)
	if voices.Selected() != "Slovak" {
		t.Fatalf("Selected = %q, want Slovak", voices.Selected())
	}

	var said []string
	s := New(gamesettings.Load(mem), voices, speech.Func(func(text string) { said = append(said, text) }))

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.row != rowVoice {
		t.Fatalf("row = %d, want the voice row", s.row)
	}

	s.Update(specialKey(tea.KeyRight))
	if voices.Selected() != "Czech" {
		t.Errorf("Selected = %q, want Czech", voices.Selected())
	}
	s.Update(specialKey(tea.KeyRight))
	if voices.Selected() != "English" {
		t.Errorf("Selected = %q, want English", voices.Selected())
	}

	if stored, ok := mem.Load(prefs.KeySpeechVoice); !ok || stored != "English" {
		t.Errorf("stored voice = %v, %v, want English", stored, ok)
	}

	s.Update(specialKey(tea.KeyEnter))
	if !slices.Equal(said, []string{sample}) {
		t.Errorf("said %v, want the sample sentence", said)
	}

	if !strings.Contains(s.View(80, 30), "English (en)") {
		t.Error("view should show the selected voice")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{-1, 3, 2},
		{3, 3, 0},
		{1, 3, 1},
	}
	for _, tt := range tests {
		if got := wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
