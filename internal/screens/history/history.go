package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/router"
	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/store"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
)

// recentLimit is how many spelling attempts are listed.
const recentLimit = 50

// Events is the part of store.EventRepo the screen reads.
type Events interface {
	SpellRounds(ctx context.Context, opts store.QueryOpts) ([]store.SpellRoundEvent, error)
	Stats(ctx context.Context) (store.Stats, error)
}

type historyLoadedMsg struct {
	Rounds []store.SpellRoundEvent
	Stats  store.Stats
	Err    error
}

// HistoryScreen displays totals and recent spelling attempts.
type HistoryScreen struct {
	events   Events
	rounds   []store.SpellRoundEvent
	stats    store.Stats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events Events) *HistoryScreen {
	return &HistoryScreen{
		events:   events,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := s.events.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		rounds, err := s.events.SpellRounds(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{Stats: stats, Err: err}
		}
		return historyLoadedMsg{Rounds: rounds, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.rounds = msg.Rounds
		s.stats = msg.Stats
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.rounds)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Render(renderTotals(s.stats)))
	b.WriteString("\n\n")

	if len(s.rounds) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).
			Render("No words spelled yet. Time to play!"))
		return b.String()
	}

	for i, r := range s.rounds {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		mark := theme.Correct.Render("✓")
		if !r.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		line := fmt.Sprintf("%s%s  %-12s %-6s +%d", prefix, r.Timestamp.Format("Jan 02 15:04"), r.Word, r.Difficulty, r.Points)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+" "+mark))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    attempt %d, worth %d, session %s", r.RoundAttempts, r.PotentialPoints, shortID(r.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderTotals(st store.Stats) string {
	accent := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := []string{
		accent.Render(fmt.Sprintf("★ %d", st.SpellPoints)) + dim.Render(" points"),
		accent.Render(fmt.Sprintf("%d/%d", st.SpellCorrect, st.SpellAttempts)) + dim.Render(" correct"),
		accent.Render(fmt.Sprintf("%d", st.WordsSpelled)) + dim.Render(" words"),
		accent.Render(fmt.Sprintf("%d", st.PexesoWins)) + dim.Render(" pexeso wins"),
	}
	if st.BestPexesoRun > 0 {
		parts = append(parts, dim.Render("best ")+accent.Render(fmt.Sprintf("%d", st.BestPexesoRun))+dim.Render(" moves"))
	}
	return strings.Join(parts, "   ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
