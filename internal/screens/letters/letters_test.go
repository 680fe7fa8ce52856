package letters

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pismenka/internal/characters"
	"github.com/abhisek/pismenka/internal/prefs"
)

func testScreen() (*Screen, *prefs.Memory) {
	mem := prefs.NewMemory()
	return New(characters.New(mem, nil), nil), mem
}

func TestLettersScreen_TypingToggles(t *testing.T) {
	s, mem := testScreen()

	s.Update(tea.KeyPressMsg{Code: 'š', Text: "š"})
	if !s.pool.IsActive("š") {
		t.Fatal("typing š should activate it")
	}
	if s.alphabet[s.cursor] != "š" {
		t.Errorf("cursor on %q, want š", s.alphabet[s.cursor])
	}
	if mem.SaveCount(prefs.KeyActiveChars) != 1 {
		t.Errorf("toggle should persist once, saved %d times", mem.SaveCount(prefs.KeyActiveChars))
	}

	s.Update(tea.KeyPressMsg{Code: 'š', Text: "š"})
	if s.pool.IsActive("š") {
		t.Error("typing š again should deactivate it")
	}

	s.Update(tea.KeyPressMsg{Code: '7', Text: "7"})
	if s.pool.Len() != 0 {
		t.Error("symbols outside the alphabet should be ignored")
	}
}

func TestLettersScreen_CursorToggle(t *testing.T) {
	s, _ := testScreen()

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	want := s.alphabet[1+columns]
	s.Update(tea.KeyPressMsg{Code: ' '})
	if !slices.Equal(s.pool.Active(), []string{want}) {
		t.Errorf("Active = %v, want [%s]", s.pool.Active(), want)
	}
}

func TestLettersScreen_AllAndNone(t *testing.T) {
	s, _ := testScreen()

	s.Update(tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl})
	if s.pool.Len() != len(characters.Alphabet) {
		t.Errorf("ctrl+a: Len = %d, want %d", s.pool.Len(), len(characters.Alphabet))
	}
	if s.Status() != "43 active" {
		t.Errorf("Status = %q", s.Status())
	}

	s.Update(tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl})
	if s.pool.Len() != 0 {
		t.Errorf("ctrl+x: Len = %d, want 0", s.pool.Len())
	}
	if !strings.Contains(s.View(80, 30), "No letters selected") {
		t.Error("empty pool should be explained")
	}
}
