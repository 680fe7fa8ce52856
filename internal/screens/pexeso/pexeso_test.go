package pexeso

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/pismenka/internal/pexeso"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(words ...string) *Screen {
	game := core.New(words, core.WithRand(rand.New(rand.NewPCG(3, 4))))
	return New(game, nil)
}

func positions(s *Screen, word string) []int {
	var out []int
	for i, c := range s.game.Cards() {
		if c.Word == word {
			out = append(out, i)
		}
	}
	return out
}

func flipAt(s *Screen, i int) {
	s.cursor = i
	s.Update(specialKey(tea.KeyEnter))
}

func TestColumns(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {2, 2}, {4, 2}, {8, 3}, {16, 4}, {50, 6},
	}
	for _, tt := range tests {
		if got := columns(tt.n); got != tt.want {
			t.Errorf("columns(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestPexesoScreen_Navigation(t *testing.T) {
	s := testScreen("ma", "ta")

	s.Update(specialKey(tea.KeyRight))
	if s.cursor != 1 {
		t.Fatalf("cursor after right = %d, want 1", s.cursor)
	}
	s.Update(specialKey(tea.KeyRight))
	if s.cursor != 1 {
		t.Errorf("right at row end should stay, cursor = %d", s.cursor)
	}
	s.Update(specialKey(tea.KeyDown))
	if s.cursor != 3 {
		t.Errorf("cursor after down = %d, want 3", s.cursor)
	}
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor after left, up = %d, want 0", s.cursor)
	}
}

func TestPexesoScreen_MatchAndWin(t *testing.T) {
	s := testScreen("ma", "ta")

	for _, w := range []string{"ma", "ta"} {
		pos := positions(s, w)
		flipAt(s, pos[0])
		flipAt(s, pos[1])
	}

	if !s.game.IsWon() {
		t.Fatal("board should be won")
	}
	if !s.CapturesEscape() {
		t.Error("win dialog should capture Esc")
	}
	if !strings.Contains(s.View(80, 30), "All pairs found") {
		t.Error("view should show the win dialog")
	}

	s.Update(specialKey(tea.KeyEscape))
	if s.game.ShowWinDialog() {
		t.Error("Esc should dismiss the win dialog")
	}
	if s.CapturesEscape() {
		t.Error("Esc should go back once the dialog is closed")
	}
}

func TestPexesoScreen_PlayAgainFromWinDialog(t *testing.T) {
	s := testScreen("ma")
	pos := positions(s, "ma")
	flipAt(s, pos[0])
	flipAt(s, pos[1])

	s.Update(specialKey(tea.KeyEnter))
	if s.game.Moves() != 0 || s.game.MatchedPairs() != 0 {
		t.Errorf("Enter on win dialog should redeal, moves=%d pairs=%d", s.game.Moves(), s.game.MatchedPairs())
	}
}

func TestPexesoScreen_MismatchWaitsForKey(t *testing.T) {
	s := testScreen("ma", "ta")
	ma := positions(s, "ma")
	ta := positions(s, "ta")

	flipAt(s, ma[0])
	flipAt(s, ta[0])
	if !s.game.AwaitingAck() {
		t.Fatal("mismatch should wait for acknowledgement")
	}
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints while waiting = %v", s.KeyHints())
	}

	s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if s.game.AwaitingAck() || s.game.Locked() {
		t.Error("any key should turn the pair back")
	}
	for i, c := range s.game.Cards() {
		if c.Revealed {
			t.Errorf("card %d still revealed", i)
		}
	}
}

func TestPexesoScreen_EmptyBoard(t *testing.T) {
	s := testScreen()
	if !strings.Contains(s.View(80, 30), "No words yet") {
		t.Error("empty board should explain how to add words")
	}
	if s.Status() != "pairs 0/0   moves 0" {
		t.Errorf("Status = %q", s.Status())
	}
}
