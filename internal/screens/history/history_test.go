package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pismenka/internal/router"
	"github.com/abhisek/pismenka/internal/store"
)

type fakeEvents struct {
	rounds []store.SpellRoundEvent
	stats  store.Stats
	err    error
}

func (f *fakeEvents) SpellRounds(_ context.Context, opts store.QueryOpts) ([]store.SpellRoundEvent, error) {
	if opts.Limit != recentLimit {
		return nil, errors.New("unexpected limit")
	}
	return f.rounds, nil
}

func (f *fakeEvents) Stats(context.Context) (store.Stats, error) {
	return f.stats, f.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	msg := s.Init()()
	s.Update(msg)
	if !s.loaded {
		t.Fatal("screen should be loaded after Init message")
	}
}

func TestHistoryScreen_ShowsRoundsAndTotals(t *testing.T) {
	events := &fakeEvents{
		rounds: []store.SpellRoundEvent{
			{Timestamp: time.Now(), SpellRoundEventData: store.SpellRoundEventData{
				SessionID: "0123456789", Word: "pes", Difficulty: "easy", Correct: true, Points: 3, RoundAttempts: 1, PotentialPoints: 3,
			}},
			{Timestamp: time.Now(), SpellRoundEventData: store.SpellRoundEventData{
				Word: "mačka", Difficulty: "medium", RoundAttempts: 1, PotentialPoints: 6,
			}},
		},
		stats: store.Stats{SpellAttempts: 2, SpellCorrect: 1, SpellPoints: 3, WordsSpelled: 1, PexesoWins: 2, BestPexesoRun: 7},
	}
	s := New(events)
	load(t, s)

	view := s.View(100, 30)
	for _, want := range []string{"pes", "mačka", "1/2", "pexeso wins", "best"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "session 01234567") {
		t.Error("expanded round should show its session")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&fakeEvents{})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "No words spelled yet") {
		t.Error("empty history should say so")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&fakeEvents{err: errors.New("disk on fire")})
	load(t, s)
	if !strings.Contains(s.View(100, 30), "disk on fire") {
		t.Error("error should be shown")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&fakeEvents{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("Esc should pop the screen")
	}
}
