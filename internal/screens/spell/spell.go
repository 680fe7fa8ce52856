// Package spell is the spelling game screen: the player sees a picture and
// places letter tiles into slots to spell it.
package spell

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/text/cases"

	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/settings"
	core "github.com/abhisek/pismenka/internal/spell"
	"github.com/abhisek/pismenka/internal/things"
	"github.com/abhisek/pismenka/internal/tiles"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
)

// Screen drives a spelling game from the keyboard.
type Screen struct {
	game       *core.Game
	settings   *settings.Manager
	title      string
	cursor     int // index into the tile supply
	difficulty components.Choice
	errMsg     string
	fold       cases.Caser
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates a screen for game. The game is started at its current
// difficulty on Init unless a round is already running.
func New(title string, game *core.Game, s *settings.Manager) *Screen {
	names := make([]string, len(things.Difficulties))
	for i, d := range things.Difficulties {
		names[i] = d.String()
	}
	return &Screen{
		game:       game,
		settings:   s,
		title:      title,
		difficulty: components.NewChoice(names, int(game.Difficulty())),
		fold:       cases.Fold(),
	}
}

func (s *Screen) Init() tea.Cmd {
	if !s.game.Started() {
		s.start(s.game.Difficulty())
	}
	return nil
}

func (s *Screen) Title() string {
	return s.title
}

func (s *Screen) Status() string {
	return fmt.Sprintf("★ %d", s.game.Score())
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.game.Round().Scored() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next word"},
			{Key: "Bksp", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "a-ž", Description: "Place letter"},
		{Key: "←→ Space", Description: "Pick tile"},
		{Key: "Bksp", Description: "Take back"},
		{Key: "Enter", Description: "Check"},
		{Key: "?", Description: "Listen"},
		{Key: "Tab", Description: "Level"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	s.errMsg = ""

	switch kmsg.String() {
	case "tab", "shift+tab":
		return s.changeDifficulty(kmsg)
	case "?":
		s.game.Listen()
		return s, nil
	}

	if !s.game.Started() {
		return s, nil
	}

	if s.game.Round().Scored() {
		return s.handleScoredKey(kmsg)
	}
	return s.handleRoundKey(kmsg)
}

func (s *Screen) handleRoundKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	supply := s.game.Tiles()

	switch msg.String() {
	case "left":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right":
		if s.cursor < len(supply)-1 {
			s.cursor++
		}
	case "space":
		if s.cursor < len(supply) {
			s.report(s.game.Select(supply[s.cursor].ID))
		}
	case "backspace":
		if i := s.lastFilled(); i >= 0 {
			s.report(s.game.RemoveSelected(i))
		}
	case "up":
		s.moveSlot(-1)
	case "down":
		s.moveSlot(1)
	case "enter":
		if errors.Is(s.game.Check(), core.ErrEmptyAnswer) {
			s.errMsg = "Place some letters first."
		}
	case "ctrl+r":
		s.game.ResetRound()
	default:
		if r, ok := typedLetter(msg); ok {
			s.placeLetter(string(r))
		}
	}
	return s, nil
}

func (s *Screen) handleScoredKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter", "space":
		if err := s.game.NextRound(); err != nil {
			s.report(err)
		}
		s.cursor = 0
	case "backspace", "ctrl+r":
		s.game.ResetRound()
	}
	return s, nil
}

func (s *Screen) changeDifficulty(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	n := len(things.Difficulties)
	i := s.difficulty.Selected + 1
	if msg.String() == "shift+tab" {
		i = s.difficulty.Selected + n - 1
	}
	s.difficulty.Selected = i % n
	s.start(things.Difficulties[s.difficulty.Selected])
	return s, nil
}

func (s *Screen) start(d things.Difficulty) {
	s.cursor = 0
	if err := s.game.Start(d); err != nil {
		s.report(err)
	}
}

// placeLetter selects the first free tile showing letter, ignoring case.
func (s *Screen) placeLetter(letter string) {
	want := s.fold.String(letter)
	for i, t := range s.game.Tiles() {
		if !t.Selected && s.fold.String(t.Letter) == want {
			s.cursor = i
			s.report(s.game.Select(t.ID))
			return
		}
	}
}

func (s *Screen) lastFilled() int {
	slots := s.game.Slots()
	active := s.game.ActivePosition()
	if active > 0 && active <= len(slots) && slots[active-1] != nil {
		return active - 1
	}
	for i := len(slots) - 1; i >= 0; i-- {
		if slots[i] != nil {
			return i
		}
	}
	return -1
}

func (s *Screen) moveSlot(delta int) {
	n := len(s.game.Slots())
	if n == 0 {
		return
	}
	s.report(s.game.SetActivePosition((s.game.ActivePosition() + delta + n) % n))
}

func (s *Screen) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, core.ErrNoWords):
		s.errMsg = fmt.Sprintf("No words for %s. Add some on the Words screen.", s.game.Difficulty())
	case errors.Is(err, tiles.ErrNoRoom):
		s.errMsg = "There is no word to spell yet."
	case errors.Is(err, tiles.ErrAlreadySelected):
	default:
		s.errMsg = err.Error()
	}
}

// typedLetter returns the single letter a key press typed, if any.
func typedLetter(msg tea.KeyPressMsg) (rune, bool) {
	if utf8.RuneCountInString(msg.Text) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(msg.Text)
	return r, unicode.IsLetter(r)
}
