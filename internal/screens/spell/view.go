package spell

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/abhisek/pismenka/internal/spell"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(s.difficulty.View()))

	if !s.game.Started() {
		sections = append(sections, center.Render(renderError(s.errMsg)))
		return layout.Centered(strings.Join(sections, "\n\n"), width, height)
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("%d/%d", s.game.CompletedCount(), s.game.TotalWords()),
		s.game.ProgressPercentage(), true, cw)
	sections = append(sections, progress.View())
	sections = append(sections, components.ArcadeCard(s.renderPicture(), cw))
	sections = append(sections, center.Render(s.renderSlots()))
	sections = append(sections, center.Render(s.renderSupply()))
	sections = append(sections, center.Render(s.renderFeedback()))

	return layout.Centered(strings.Join(sections, "\n\n"), width, height)
}

func (s *Screen) renderPicture() string {
	thing, _ := s.game.Thing()
	if thing.Emoji == "" {
		return theme.Hint.Render("Press ? to hear the word")
	}
	return thing.Emoji
}

func (s *Screen) renderSlots() string {
	face := components.FaceOf(s.settings)
	round := s.game.Round()
	active := s.game.ActivePosition()

	var items []string
	for i, t := range s.game.Slots() {
		style := theme.Slot
		switch {
		case round == core.RoundCorrect:
			style = style.BorderForeground(theme.Success).Foreground(theme.Success)
		case round == core.RoundIncorrect:
			style = style.BorderForeground(theme.Error).Foreground(theme.Error)
		case i == active:
			style = theme.SlotActive
		}
		letter := "_"
		if t != nil {
			letter = t.Letter
		}
		items = append(items, face.Apply(style, letter))
	}
	return components.Row(items)
}

func (s *Screen) renderSupply() string {
	face := components.FaceOf(s.settings)
	scored := s.game.Round().Scored()

	var items []string
	for i, t := range s.game.Tiles() {
		style := theme.Tile
		switch {
		case t.Selected:
			style = theme.TileUsed
		case i == s.cursor && !scored:
			style = style.BorderForeground(theme.ArcadeYellow).Bold(true)
		}
		items = append(items, face.Apply(style, t.Letter))
	}
	return components.Row(items)
}

func (s *Screen) renderFeedback() string {
	if s.errMsg != "" {
		return renderError(s.errMsg)
	}
	switch s.game.Round() {
	case core.RoundCorrect:
		return theme.Correct.Render("Správne! ") +
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(fmt.Sprintf("+%d ★", s.game.PotentialPoints()))
	case core.RoundIncorrect:
		return theme.Incorrect.Render("Not quite. ") + theme.Hint.Render("Backspace to try again, Enter for the next word.")
	}
	return theme.Hint.Render(fmt.Sprintf("Worth %d ★   attempts %d", s.game.PotentialPoints(), s.game.RoundAttempts()))
}

func renderError(msg string) string {
	if msg == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render(msg)
}
