package speech

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/abhisek/pismenka/internal/prefs"
)

// DefaultLanguages are preferred when picking a voice: Slovak, then Czech.
var DefaultLanguages = []language.Tag{language.Slovak, language.Czech}

// Preference is the selected voice among the enumerated ones.
type Preference struct {
	voices   []Voice
	selected string
	storage  prefs.Storage
}

// NewPreference picks the voice that best matches preferred, falling back
// to the first voice. A stored voice name wins if it is still enumerated.
func NewPreference(storage prefs.Storage, voices []Voice, preferred []language.Tag) *Preference {
	p := &Preference{voices: slices.Clone(voices), storage: storage}
	if len(voices) == 0 {
		return p
	}

	p.selected = p.voices[bestMatch(p.voices, preferred)].Name

	if storage != nil {
		if v, ok := storage.Load(prefs.KeySpeechVoice); ok {
			if name, ok := v.(string); ok && p.has(name) {
				p.selected = name
			}
		}
	}
	return p
}

// bestMatch returns the index of the voice whose language matches
// preferred best, or 0 when nothing matches.
func bestMatch(voices []Voice, preferred []language.Tag) int {
	if len(preferred) == 0 {
		return 0
	}

	var (
		tags  []language.Tag
		index []int
	)
	for i, v := range voices {
		t, err := language.Parse(v.Lang)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		index = append(index, i)
	}
	if len(tags) == 0 {
		return 0
	}

	_, i, conf := language.NewMatcher(tags).Match(preferred...)
	if conf == language.No {
		return 0
	}
	return index[i]
}

func (p *Preference) has(name string) bool {
	return slices.ContainsFunc(p.voices, func(v Voice) bool { return v.Name == name })
}

// Voices returns the enumerated voices.
func (p *Preference) Voices() []Voice { return slices.Clone(p.voices) }

// Selected is the selected voice name, empty when there are no voices.
func (p *Preference) Selected() string { return p.selected }

// Current returns the selected voice.
func (p *Preference) Current() (Voice, bool) {
	i := slices.IndexFunc(p.voices, func(v Voice) bool { return v.Name == p.selected })
	if i < 0 {
		return Voice{}, false
	}
	return p.voices[i], true
}

// Select chooses the voice called name and stores it. It reports false
// and changes nothing when name is not enumerated.
func (p *Preference) Select(name string) bool {
	if !p.has(name) {
		return false
	}
	p.selected = name
	if p.storage != nil {
		p.storage.Save(prefs.KeySpeechVoice, name)
	}
	return true
}
