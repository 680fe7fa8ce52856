package spell

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/pismenka/internal/spell"
	"github.com/abhisek/pismenka/internal/things"
)

type fakeSource map[things.Difficulty][]things.Thing

func (f fakeSource) ByDifficulty(d things.Difficulty) []things.Thing { return f[d] }
func (f fakeSource) CountByDifficulty(d things.Difficulty) int      { return len(f[d]) }
func (f fakeSource) Random() (things.Thing, bool)                   { return things.Thing{}, false }

type letters []string

func (l letters) Active() []string { return l }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) *Screen {
	t.Helper()
	src := fakeSource{
		things.Easy: {{Word: "pes", Emoji: "🐕", Difficulty: things.Easy}},
	}
	game := core.New(letters{"a", "b", "c"}, src, core.WithRand(rand.New(rand.NewPCG(1, 2))))
	s := New("Spell", game, nil)
	s.Init()
	if !game.Started() {
		t.Fatal("Init should start the game")
	}
	return s
}

func typeWord(s *Screen, w string) {
	for _, r := range w {
		s.Update(keyPress(r))
	}
}

func TestSpellScreen_TypingSpellsWord(t *testing.T) {
	s := testScreen(t)

	typeWord(s, "pes")
	if got := s.game.CurrentWord(); got != "pes" {
		t.Fatalf("CurrentWord = %q, want %q", got, "pes")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.game.Round() != core.RoundCorrect {
		t.Fatalf("Round = %v, want correct", s.game.Round())
	}
	if s.game.Score() != 3 {
		t.Errorf("Score = %d, want 3", s.game.Score())
	}
	if s.Status() != "★ 3" {
		t.Errorf("Status = %q", s.Status())
	}
	if len(s.KeyHints()) != 3 {
		t.Errorf("scored round should show 3 hints, got %d", len(s.KeyHints()))
	}
}

func TestSpellScreen_UppercaseMatchesTile(t *testing.T) {
	s := testScreen(t)
	typeWord(s, "P")
	if got := s.game.CurrentWord(); got != "p" {
		t.Errorf("CurrentWord = %q, want %q", got, "p")
	}
}

func TestSpellScreen_BackspaceTakesLetterBack(t *testing.T) {
	s := testScreen(t)
	typeWord(s, "pe")
	s.Update(specialKey(tea.KeyBackspace))
	if got := s.game.CurrentWord(); got != "p" {
		t.Errorf("CurrentWord after backspace = %q, want %q", got, "p")
	}
}

func TestSpellScreen_CheckEmptyShowsMessage(t *testing.T) {
	s := testScreen(t)
	s.Update(specialKey(tea.KeyEnter))
	if s.game.Round() != core.RoundInProgress {
		t.Errorf("empty answer should not be scored, Round = %v", s.game.Round())
	}
	if !strings.Contains(s.renderFeedback(), "Place some letters") {
		t.Errorf("feedback = %q", s.renderFeedback())
	}
}

func TestSpellScreen_WrongAnswerThenRetry(t *testing.T) {
	s := testScreen(t)
	typeWord(s, "sep")
	s.Update(specialKey(tea.KeyEnter))
	if s.game.Round() != core.RoundIncorrect {
		t.Fatalf("Round = %v, want incorrect", s.game.Round())
	}

	s.Update(specialKey(tea.KeyBackspace))
	if s.game.Round() != core.RoundInProgress {
		t.Errorf("backspace after a miss should reopen the round, Round = %v", s.game.Round())
	}
	if s.game.CurrentWord() != "" {
		t.Errorf("retry should clear the answer, got %q", s.game.CurrentWord())
	}
}

func TestSpellScreen_SpacePlacesTileUnderCursor(t *testing.T) {
	s := testScreen(t)
	first := s.game.Tiles()[0]
	s.Update(specialKey(' '))
	if got := s.game.CurrentWord(); got != first.Letter {
		t.Errorf("CurrentWord = %q, want %q", got, first.Letter)
	}
}

func TestSpellScreen_TabChangesDifficulty(t *testing.T) {
	s := testScreen(t)
	s.Update(specialKey(tea.KeyTab))
	if s.game.Difficulty() != things.Medium {
		t.Errorf("Difficulty = %v, want medium", s.game.Difficulty())
	}
	if !strings.Contains(s.errMsg, "No words for medium") {
		t.Errorf("errMsg = %q, want no-words message", s.errMsg)
	}
}

func TestSpellScreen_View(t *testing.T) {
	s := testScreen(t)
	view := s.View(80, 30)
	if !strings.Contains(view, "🐕") {
		t.Error("view should show the picture")
	}
	if s.Title() != "Spell" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSpellScreen_TypingOverFilledSlotReplacesLetter(t *testing.T) {
	s := testScreen(t)
	typeWord(s, "pe")
	s.Update(specialKey(tea.KeyUp))
	s.Update(specialKey(tea.KeyUp))
	if s.game.ActivePosition() != 0 {
		t.Fatalf("ActivePosition = %d, want 0", s.game.ActivePosition())
	}

	typeWord(s, "s")
	if s.errMsg != "" {
		t.Errorf("errMsg = %q, want none", s.errMsg)
	}
	if got := s.game.Slots()[0]; got == nil || got.Letter != "s" {
		t.Fatalf("slot 0 = %v, want s", got)
	}
	for _, tile := range s.game.Tiles() {
		if tile.Letter == "p" && tile.Selected {
			t.Error("replaced p should be back in the supply")
		}
	}
}
