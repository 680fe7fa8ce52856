// Package prefs is the persistence boundary for player preferences.
//
// Values are stored as JSON under well-known keys. Everything read back is
// validated against the key's schema before it reaches a caller, and every
// storage or decoding failure is logged and reported as "absent" so that a
// corrupt or missing value never breaks a game.
package prefs

import (
	"context"
	"encoding/json"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Well-known preference keys.
const (
	KeyActiveChars  = "active_chars"
	KeyGameSettings = "game_settings"
	KeySpeechVoice  = "speech_voice"
	KeyWordSetup    = "word_setup"
)

// Storage is the key-value persistence capability injected into components.
// Load returns the decoded JSON value for key, or false when the key is
// absent or its value is malformed. Save never fails from the caller's
// point of view.
type Storage interface {
	Load(key string) (any, bool)
	Save(key string, value any)
}

// Repo is the raw byte-level backend behind a Store.
type Repo interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store implements Storage on top of a Repo.
type Store struct {
	repo Repo
	log  zerolog.Logger
}

var _ Storage = (*Store)(nil)

// NewStore creates a Store backed by repo.
func NewStore(repo Repo, log zerolog.Logger) *Store {
	return &Store{repo: repo, log: log.With().Str("component", "prefs").Logger()}
}

func (s *Store) Load(key string) (any, bool) {
	raw, ok, err := s.repo.Get(context.Background(), key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("load preference")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return decode(s.log, key, raw)
}

func (s *Store) Save(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("encode preference")
		return
	}
	if err := s.repo.Put(context.Background(), key, b); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("save preference")
	}
}

// Memory is an in-process Storage, used by tests and when no database is
// available. Values round-trip through JSON exactly like a persistent Store.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	saves  map[string]int
	logger zerolog.Logger
}

var _ Storage = (*Memory)(nil)

// NewMemory creates an empty Memory storage.
func NewMemory() *Memory {
	return &Memory{
		data:   make(map[string][]byte),
		saves:  make(map[string]int),
		logger: zerolog.Nop(),
	}
}

func (m *Memory) Load(key string) (any, bool) {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return nil, false
	}
	return decode(m.logger, key, raw)
}

func (m *Memory) Save(key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	m.saves[key]++
}

// SetRaw stores raw bytes under key without validation.
func (m *Memory) SetRaw(key string, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(raw)
}

// Raw returns the stored bytes for key.
func (m *Memory) Raw(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	return string(b), ok
}

// SaveCount returns how many times key has been saved.
func (m *Memory) SaveCount(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[key]
}

// decode parses raw JSON and validates it against the key's schema.
func decode(log zerolog.Logger, key string, raw []byte) (any, bool) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed preference")
		return nil, false
	}
	if err := validate(key, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("preference failed schema")
		return nil, false
	}
	return v, true
}

// Strings keeps only the string elements of a decoded JSON array.
func Strings(v any) ([]string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// Symbols keeps only distinct single-rune strings of a decoded JSON array.
func Symbols(v any) ([]string, bool) {
	strs, ok := Strings(v)
	if !ok {
		return nil, false
	}
	seen := make(map[string]bool, len(strs))
	out := strs[:0]
	for _, s := range strs {
		if utf8.RuneCountInString(s) != 1 || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, true
}

// Object returns v as a JSON object.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}
