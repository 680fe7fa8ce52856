// Package settings holds the player's display preferences.
package settings

import (
	"slices"

	"github.com/abhisek/pismenka/internal/prefs"
)

// FontOption is a selectable letter face. The terminal cannot change its
// font, so Style names the lipgloss treatment used for tile letters.
type FontOption struct {
	Name  string
	Value string
	Style Style
}

// Style is how tile letters are drawn for a font.
type Style int

const (
	StylePlain Style = iota
	StyleBold
	StyleItalic
	StyleUnderline
	StyleWide
)

// SizeOption is a selectable letter size in points. The UI maps it to
// tile padding.
type SizeOption struct {
	Name  string
	Value int
}

// FontOptions lists the available faces; the first one is the default.
var FontOptions = []FontOption{
	{Name: "Default", Value: "Roboto, sans-serif", Style: StylePlain},
	{Name: "Ms Madi (Handwritten)", Value: `"Ms Madi", cursive`, Style: StyleItalic},
	{Name: "Comic Sans (Playful)", Value: `"Comic Sans MS", "Comic Sans", cursive`, Style: StyleBold},
	{Name: "Arial (Simple)", Value: "Arial, sans-serif", Style: StylePlain},
	{Name: "Georgia (Serif)", Value: "Georgia, serif", Style: StyleUnderline},
	{Name: "Courier New (Monospace)", Value: `"Courier New", Courier, monospace`, Style: StyleWide},
	{Name: "Verdana (Clear)", Value: "Verdana, sans-serif", Style: StyleBold},
	{Name: "Trebuchet MS (Friendly)", Value: `"Trebuchet MS", sans-serif`, Style: StyleItalic},
	{Name: "Times New Roman (Classic)", Value: `"Times New Roman", Times, serif`, Style: StyleUnderline},
}

// SizeOptions lists the available sizes.
var SizeOptions = []SizeOption{
	{Name: "Small", Value: 16},
	{Name: "Medium", Value: 20},
	{Name: "Large", Value: 24},
	{Name: "Extra Large", Value: 32},
	{Name: "Huge", Value: 40},
}

// DefaultFontSize is Medium.
const DefaultFontSize = 20

// Settings is the persisted value of prefs.KeyGameSettings.
type Settings struct {
	FontFamily string `json:"fontFamily"`
	FontSize   int    `json:"fontSize"`
}

// Default returns the settings used when nothing is stored.
func Default() Settings {
	return Settings{FontFamily: FontOptions[0].Value, FontSize: DefaultFontSize}
}

// Manager owns the current Settings and saves every change.
type Manager struct {
	current Settings
	storage prefs.Storage
}

// Load reads stored settings. Each field is taken independently: a
// non-empty fontFamily string and a numeric fontSize override the
// defaults, anything else is ignored.
func Load(storage prefs.Storage) *Manager {
	m := &Manager{current: Default(), storage: storage}
	if storage == nil {
		return m
	}
	v, ok := storage.Load(prefs.KeyGameSettings)
	if !ok {
		return m
	}
	obj, ok := prefs.Object(v)
	if !ok {
		return m
	}
	if f, ok := obj["fontFamily"].(string); ok && f != "" {
		m.current.FontFamily = f
	}
	if n, ok := obj["fontSize"].(float64); ok {
		m.current.FontSize = int(n)
	}
	return m
}

// Settings returns the current settings.
func (m *Manager) Settings() Settings { return m.current }

// SetFontFamily stores a face by its Value. Unknown values are accepted so
// a setting written by a newer build survives.
func (m *Manager) SetFontFamily(value string) {
	if value == "" || value == m.current.FontFamily {
		return
	}
	m.current.FontFamily = value
	m.save()
}

// SetFontSize stores a size in points. Non-positive sizes are ignored.
func (m *Manager) SetFontSize(size int) {
	if size <= 0 || size == m.current.FontSize {
		return
	}
	m.current.FontSize = size
	m.save()
}

// Font returns the option matching the current face, or the default one.
func (m *Manager) Font() FontOption {
	i := slices.IndexFunc(FontOptions, func(o FontOption) bool { return o.Value == m.current.FontFamily })
	if i < 0 {
		return FontOptions[0]
	}
	return FontOptions[i]
}

// SizeIndex returns the index in SizeOptions of the largest option not
// above the current size, clamped to the valid range.
func (m *Manager) SizeIndex() int {
	idx := 0
	for i, o := range SizeOptions {
		if o.Value <= m.current.FontSize {
			idx = i
		}
	}
	return idx
}

// CycleFont moves to the next face, wrapping around.
func (m *Manager) CycleFont() {
	i := slices.IndexFunc(FontOptions, func(o FontOption) bool { return o.Value == m.current.FontFamily })
	m.SetFontFamily(FontOptions[(i+1)%len(FontOptions)].Value)
}

// CycleSize moves to the next size, wrapping around.
func (m *Manager) CycleSize() {
	m.SetFontSize(SizeOptions[(m.SizeIndex()+1)%len(SizeOptions)].Value)
}

func (m *Manager) save() {
	if m.storage != nil {
		m.storage.Save(prefs.KeyGameSettings, m.current)
	}
}
