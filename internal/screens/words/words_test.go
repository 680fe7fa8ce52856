package words

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pismenka/internal/prefs"
	"github.com/abhisek/pismenka/internal/wordgen"
)

type letters []string

func (l letters) Active() []string { return slices.Clone(l) }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen(pool ...string) *Screen {
	setup := wordgen.New(letters(pool), prefs.NewMemory(), wordgen.WithRand(rand.New(rand.NewPCG(5, 6))))
	return New(setup)
}

func assertWords(t *testing.T, s *Screen, want ...string) {
	t.Helper()
	if got := s.setup.State().Words; !slices.Equal(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestWordsScreen_AddAndConfirm(t *testing.T) {
	s := testScreen("m", "a", "l")

	s.Update(keyPress('a'))
	if s.mode != modeAdd {
		t.Fatalf("mode = %d, want add", s.mode)
	}
	if !s.CapturesEscape() {
		t.Error("the add form should capture escape")
	}

	s.input.SetValue("mama")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.mode != modeList {
		t.Errorf("mode = %d, want list", s.mode)
	}
	assertWords(t, s, "mama")
	if s.Status() != "0 confirmed •" {
		t.Errorf("Status = %q", s.Status())
	}

	s.Update(keyPress('c'))
	if got := s.setup.ConfirmedWords(); !slices.Equal(got, []string{"mama"}) {
		t.Errorf("ConfirmedWords = %v, want [mama]", got)
	}
	if s.Status() != "1 confirmed" {
		t.Errorf("Status = %q", s.Status())
	}
	if !strings.Contains(s.notice, "1 words ready") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestWordsScreen_EscCancelsInput(t *testing.T) {
	s := testScreen("m", "a")

	s.Update(keyPress('a'))
	s.input.SetValue("ma")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if s.mode != modeList || s.CapturesEscape() {
		t.Errorf("mode = %d, CapturesEscape = %v, want the list", s.mode, s.CapturesEscape())
	}
	assertWords(t, s)
}

func TestWordsScreen_EditAndDelete(t *testing.T) {
	s := testScreen("m", "a", "l")
	s.setup.AddWord("ma")
	s.setup.AddWord("la")

	s.Update(keyPress('j'))
	s.Update(keyPress('e'))
	if s.mode != modeEdit {
		t.Fatalf("mode = %d, want edit", s.mode)
	}
	if s.input.Value() != "la" {
		t.Errorf("input = %q, want la", s.input.Value())
	}

	s.input.SetValue("lama")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assertWords(t, s, "ma", "lama")

	s.Update(keyPress('d'))
	assertWords(t, s, "ma")
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestWordsScreen_Generate(t *testing.T) {
	s := testScreen("m", "a", "l", "e")

	s.Update(keyPress('g'))
	words := s.setup.State().Words
	if len(words) == 0 {
		t.Fatal("nothing generated")
	}
	for _, w := range words {
		if !s.setup.ValidateWord(w) {
			t.Errorf("generated %q should be valid", w)
		}
	}
}

func TestWordsScreen_GenerateWithoutLetters(t *testing.T) {
	s := testScreen()
	s.Update(keyPress('g'))
	if s.notice != "Pick some letters first." {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestWordsScreen_Bounds(t *testing.T) {
	s := testScreen("m", "a")

	s.Update(keyPress(']'))
	s.Update(keyPress('>'))
	s.Update(keyPress('+'))
	st := s.setup.State()
	if st.MinLength != wordgen.DefaultMinLength+1 || st.MaxLength != wordgen.DefaultMaxLength+1 || st.Count != wordgen.DefaultCount+1 {
		t.Errorf("bounds = %d..%d x%d, want each one above the defaults", st.MinLength, st.MaxLength, st.Count)
	}

	for range 10 {
		s.Update(keyPress('['))
		s.Update(keyPress('<'))
	}
	st = s.setup.State()
	if st.MinLength != 1 || st.MaxLength != 1 {
		t.Errorf("bounds = %d..%d, want 1..1", st.MinLength, st.MaxLength)
	}
}

func TestWordsScreen_ViewMarksInvalidWords(t *testing.T) {
	s := testScreen("m", "a")
	s.setup.AddWord("xyz")

	view := s.View(80, 30)
	for _, want := range []string{"✗", "left out"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
