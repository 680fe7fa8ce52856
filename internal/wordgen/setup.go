// Package wordgen generates and curates the word list used by the games.
//
// A Setup draws candidate words from the active character pool under length
// and phonetic constraints, lets the player edit the list, and confirms the
// subset that passes validation. The words and confirmed words are
// persisted after every change.
package wordgen

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/abhisek/pismenka/internal/prefs"
)

// Generation limits.
const (
	MaxCount        = 50
	vowelRetries    = 20
	attemptsPerWord = 200
)

// Defaults for a fresh setup.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 4
	DefaultCount     = 8
)

// PoolReader is the read side of the character pool.
type PoolReader interface {
	Active() []string
}

// State is a snapshot of the setup.
type State struct {
	MinLength      int
	MaxLength      int
	Count          int
	Words          []string
	ConfirmedWords []string
	Dirty          bool
	Generating     bool
}

// persisted is the stored shape under prefs.KeyWordSetup.
type persisted struct {
	Words          []string `json:"words"`
	ConfirmedWords []string `json:"confirmedWords"`
}

// Setup owns the word setup state.
type Setup struct {
	pool    PoolReader
	storage prefs.Storage
	rng     *rand.Rand
	log     zerolog.Logger
	state   State

	onConfirm []func([]string)
}

// Option configures a Setup.
type Option func(*Setup)

// WithRand sets the random source used for generation.
func WithRand(r *rand.Rand) Option {
	return func(s *Setup) { s.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Setup) { s.log = l }
}

// New creates a Setup reading letters from pool. Persisted words are loaded
// from storage when present.
func New(pool PoolReader, storage prefs.Storage, opts ...Option) *Setup {
	s := &Setup{
		pool:    pool,
		storage: storage,
		log:     zerolog.Nop(),
		state: State{
			MinLength:      DefaultMinLength,
			MaxLength:      DefaultMaxLength,
			Count:          DefaultCount,
			Words:          []string{},
			ConfirmedWords: []string{},
		},
	}
	for _, o := range opts {
		o(s)
	}
	s.load()
	return s
}

func (s *Setup) load() {
	if s.storage == nil {
		return
	}
	v, ok := s.storage.Load(prefs.KeyWordSetup)
	if !ok {
		return
	}
	obj, ok := prefs.Object(v)
	if !ok {
		return
	}
	if words, ok := prefs.Strings(obj["words"]); ok {
		s.state.Words = words
	}
	if confirmed, ok := prefs.Strings(obj["confirmedWords"]); ok {
		s.state.ConfirmedWords = confirmed
	}
}

func (s *Setup) persist() {
	if s.storage == nil {
		return
	}
	s.storage.Save(prefs.KeyWordSetup, persisted{
		Words:          s.state.Words,
		ConfirmedWords: s.state.ConfirmedWords,
	})
}

// SetBounds sets the generation parameters. Values are clamped when
// generation runs, not here.
func (s *Setup) SetBounds(minLength, maxLength, count int) {
	s.state.MinLength = minLength
	s.state.MaxLength = maxLength
	s.state.Count = count
}

// clamp normalises the bounds in place.
func (s *Setup) clamp() {
	st := &s.state
	if st.MinLength < 1 {
		st.MinLength = 1
	}
	if st.MaxLength < st.MinLength {
		st.MaxLength = st.MinLength
	}
	st.Count = min(max(st.Count, 1), MaxCount)
}

// Generate replaces the word list with up to Count new words. It stops
// early when the attempt budget runs out and does nothing when the pool
// is empty.
func (s *Setup) Generate() {
	letters := s.pool.Active()
	if len(letters) == 0 {
		s.log.Debug().Msg("generate skipped: no active letters")
		return
	}
	s.clamp()
	s.state.Generating = true
	defer func() { s.state.Generating = false }()

	st := s.state
	budget := st.Count * attemptsPerWord
	seen := make(map[string]bool, st.Count)
	words := make([]string, 0, st.Count)

	attempts := 0
	for len(words) < st.Count && attempts < budget {
		attempts++
		n := st.MinLength + s.intN(st.MaxLength-st.MinLength+1)
		w, ok := s.candidate(letters, n)
		if !ok || !diverse(w) || hasAdjacentConsonants(w) || seen[w] {
			continue
		}
		seen[w] = true
		words = append(words, w)
	}

	s.log.Debug().
		Int("requested", st.Count).
		Int("generated", len(words)).
		Int("attempts", attempts).
		Msg("words generated")

	s.state.Words = words
	s.state.Dirty = true
	s.persist()
}

// candidate builds one word of n letters. After a consonant it keeps drawing
// until it finds a vowel; a word that cannot find one is abandoned.
func (s *Setup) candidate(letters []string, n int) (string, bool) {
	var b strings.Builder
	prev := letters[s.intN(len(letters))]
	b.WriteString(prev)
	for i := 1; i < n; i++ {
		next := letters[s.intN(len(letters))]
		if !isVowel(prev) {
			found := isVowel(next)
			for try := 1; !found && try < vowelRetries; try++ {
				next = letters[s.intN(len(letters))]
				found = isVowel(next)
			}
			if !found {
				return "", false
			}
		}
		b.WriteString(next)
		prev = next
	}
	return b.String(), true
}

func (s *Setup) intN(n int) int {
	if s.rng != nil {
		return s.rng.IntN(n)
	}
	return rand.IntN(n)
}

// ValidateWord reports whether w is non-empty, within the length bounds,
// made only of active letters and diverse enough.
func (s *Setup) ValidateWord(w string) bool {
	if w == "" {
		return false
	}
	n := utf8.RuneCountInString(w)
	if n < s.state.MinLength || n > s.state.MaxLength {
		return false
	}
	active := s.pool.Active()
	for _, r := range w {
		if !slices.Contains(active, string(r)) {
			return false
		}
	}
	return diverse(w)
}

// Confirm recomputes the confirmed words from the current list.
func (s *Setup) Confirm() {
	confirmed := make([]string, 0, len(s.state.Words))
	for _, w := range s.state.Words {
		if s.ValidateWord(w) {
			confirmed = append(confirmed, w)
		}
	}
	s.state.ConfirmedWords = confirmed
	s.state.Dirty = false
	s.persist()
	s.notify()
}

// Clear empties both lists.
func (s *Setup) Clear() {
	s.state.Words = []string{}
	s.state.ConfirmedWords = []string{}
	s.state.Dirty = false
	s.persist()
	s.notify()
}

// AddWord appends w after trimming it. Blank words are ignored.
func (s *Setup) AddWord(w string) {
	w = strings.TrimSpace(w)
	if w == "" {
		return
	}
	s.state.Words = append(s.state.Words, w)
	s.state.Dirty = true
	s.persist()
}

// UpdateWord replaces the word at index. Out of range indices are ignored.
func (s *Setup) UpdateWord(index int, w string) {
	if index < 0 || index >= len(s.state.Words) {
		return
	}
	s.state.Words[index] = strings.TrimSpace(w)
	s.state.Dirty = true
	s.persist()
}

// RemoveWord deletes the word at index. Out of range indices are ignored.
func (s *Setup) RemoveWord(index int) {
	if index < 0 || index >= len(s.state.Words) {
		return
	}
	s.state.Words = slices.Delete(s.state.Words, index, index+1)
	s.state.Dirty = true
	s.persist()
}

// HasInvalid reports whether any listed word would be dropped by Confirm.
func (s *Setup) HasInvalid() bool {
	for _, w := range s.state.Words {
		if !s.ValidateWord(w) {
			return true
		}
	}
	return false
}

// State returns a copy of the current state.
func (s *Setup) State() State {
	st := s.state
	st.Words = slices.Clone(s.state.Words)
	st.ConfirmedWords = slices.Clone(s.state.ConfirmedWords)
	return st
}

// ConfirmedWords returns a copy of the confirmed words.
func (s *Setup) ConfirmedWords() []string {
	return slices.Clone(s.state.ConfirmedWords)
}

// OnConfirm registers fn to receive the confirmed words whenever they are
// recomputed.
func (s *Setup) OnConfirm(fn func([]string)) {
	s.onConfirm = append(s.onConfirm, fn)
}

func (s *Setup) notify() {
	for _, fn := range s.onConfirm {
		fn(s.ConfirmedWords())
	}
}
