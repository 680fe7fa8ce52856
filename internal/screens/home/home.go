package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pismenka/internal/characters"
	"github.com/abhisek/pismenka/internal/pexeso"
	"github.com/abhisek/pismenka/internal/router"
	"github.com/abhisek/pismenka/internal/screen"
	"github.com/abhisek/pismenka/internal/screens/history"
	"github.com/abhisek/pismenka/internal/screens/letters"
	pexesoscreen "github.com/abhisek/pismenka/internal/screens/pexeso"
	settingsscreen "github.com/abhisek/pismenka/internal/screens/settings"
	spellscreen "github.com/abhisek/pismenka/internal/screens/spell"
	"github.com/abhisek/pismenka/internal/screens/words"
	"github.com/abhisek/pismenka/internal/settings"
	"github.com/abhisek/pismenka/internal/speech"
	"github.com/abhisek/pismenka/internal/spell"
	"github.com/abhisek/pismenka/internal/ui/components"
	"github.com/abhisek/pismenka/internal/ui/layout"
	"github.com/abhisek/pismenka/internal/ui/theme"
	"github.com/abhisek/pismenka/internal/wordgen"
)

// Deps are the shared instances the home screen hands to the screens it
// opens. Voices, Speaker and Events may be nil.
type Deps struct {
	Pool       *characters.Pool
	Setup      *wordgen.Setup
	Settings   *settings.Manager
	Voices     *speech.Preference
	Speaker    speech.Speaker
	Spell      *spell.Game // words from the picture catalog
	SpellWords *spell.Game // confirmed words
	Pexeso     *pexeso.Game
	Events     history.Events
}

// Menu positions.
const (
	itemSpell = iota
	itemSpellWords
	itemPexeso
	itemLetters
	itemWords
	itemSettings
	itemHistory
	itemExit
)

// HomeScreen is the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		itemSpell: {Label: "SPELL", Action: func() tea.Cmd {
			return router.Push(spellscreen.New("Spell", deps.Spell, deps.Settings))
		}},
		itemSpellWords: {Label: "SPELL MY WORDS", Action: func() tea.Cmd {
			return router.Push(spellscreen.New("My words", deps.SpellWords, deps.Settings))
		}},
		itemPexeso: {Label: "PEXESO", Action: func() tea.Cmd {
			return router.Push(pexesoscreen.New(deps.Pexeso, deps.Settings))
		}},
		itemLetters: {Label: "LETTERS", Action: func() tea.Cmd {
			return router.Push(letters.New(deps.Pool, deps.Settings))
		}},
		itemWords: {Label: "WORDS", Action: func() tea.Cmd {
			return router.Push(words.New(deps.Setup))
		}},
		itemSettings: {Label: "SETTINGS", Action: func() tea.Cmd {
			return router.Push(settingsscreen.New(deps.Settings, deps.Voices, deps.Speaker))
		}},
		itemHistory: {Label: "HISTORY", Action: func() tea.Cmd {
			return router.Push(history.New(deps.Events))
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{deps: deps, menu: components.NewMenu(items)}
	h.refresh()
	return h
}

// refresh enables the items whose data is available right now.
func (h *HomeScreen) refresh() {
	noWords := len(h.deps.Setup.ConfirmedWords()) == 0
	h.menu.Items[itemSpellWords].Disabled = noWords
	h.menu.Items[itemPexeso].Disabled = noWords
	h.menu.Items[itemHistory].Disabled = h.deps.Events == nil

	if h.menu.Items[h.menu.Selected].Disabled {
		h.menu.Selected = itemSpell
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	h.refresh()
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	return fmt.Sprintf("★ %d", h.points())
}

func (h *HomeScreen) points() int {
	return h.deps.Spell.Score() + h.deps.SpellWords.Score()
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case h.deps.Pool.Len() == 0:
		return MascotAlert
	case h.points() > 0 || h.deps.Pexeso.ShowWinDialog():
		return MascotCelebrating
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()
	compact := height < 30 || width < 90
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(renderTitle(compact)))
	if !compact {
		sections = append(sections, center.Render(RenderMascot(h.mascot())))
	}
	sections = append(sections, renderStatsBar(h.deps.Pool.Len(), len(h.deps.Setup.ConfirmedWords()), h.points(), cw))
	sections = append(sections, components.ArcadeMenu(h.menu, cw, compact))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

const title = "PÍSMENKÁ"

// renderTitle spells the title in tiles, or in spaced letters when compact.
func renderTitle(compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	if compact {
		return style.Render(strings.Join(strings.Split(title, ""), " · "))
	}
	var tiles []string
	for _, r := range title {
		tiles = append(tiles, theme.Tile.Foreground(theme.ArcadeYellow).Bold(true).Padding(0, 1).Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderStatsBar(letterCount, wordCount, points, cw int) string {
	lettersStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	wordsStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	pointsStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		lettersStyle.Render(fmt.Sprintf("✎ %d LETTERS", letterCount)),
		wordsStyle.Render(fmt.Sprintf("◆ %d WORDS", wordCount)),
		pointsStyle.Render(fmt.Sprintf("★ %d POINTS", points)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// KeyHints for the home menu.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
