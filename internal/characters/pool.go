// Package characters manages the set of letters a player has enabled.
package characters

import (
	"slices"
	"unicode/utf8"

	"github.com/abhisek/pismenka/internal/prefs"
)

// Alphabet is the Slovak alphabet restricted to single-rune letters.
// Digraphs (ch, dz, dž) are not tiles on their own.
var Alphabet = []string{
	"a", "á", "ä", "b", "c", "č", "d", "ď", "e", "é", "f", "g", "h", "i", "í",
	"j", "k", "l", "ĺ", "ľ", "m", "n", "ň", "o", "ó", "ô", "p", "q", "r", "ŕ",
	"s", "š", "t", "ť", "u", "ú", "v", "w", "x", "y", "ý", "z", "ž",
}

// LatinAlphabet is the plain a-z alphabet.
var LatinAlphabet = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
}

// Pool is the ordered set of active symbols. Insertion order is selection
// order. Every mutation is written to storage.
type Pool struct {
	active      []string
	storage     prefs.Storage
	subscribers []func([]string)
}

// New creates a Pool. A well-formed persisted set wins; otherwise startup
// is used; otherwise the pool starts empty.
func New(storage prefs.Storage, startup []string) *Pool {
	p := &Pool{storage: storage}
	if storage != nil {
		if v, ok := storage.Load(prefs.KeyActiveChars); ok {
			if syms, ok := prefs.Symbols(v); ok {
				p.active = syms
				return p
			}
		}
	}
	p.active = dedupe(startup)
	return p
}

// Toggle adds sym if absent, otherwise removes it. Anything other than a
// single character is ignored.
func (p *Pool) Toggle(sym string) {
	if utf8.RuneCountInString(sym) != 1 {
		return
	}
	if i := slices.Index(p.active, sym); i >= 0 {
		p.active = slices.Delete(p.active, i, i+1)
	} else {
		p.active = append(p.active, sym)
	}
	p.changed()
}

// IsActive reports whether sym is in the pool.
func (p *Pool) IsActive(sym string) bool {
	return slices.Contains(p.active, sym)
}

// SelectAll replaces the pool with syms.
func (p *Pool) SelectAll(syms []string) {
	p.active = dedupe(syms)
	p.changed()
}

// ClearAll empties the pool.
func (p *Pool) ClearAll() {
	p.active = []string{}
	p.changed()
}

// Active returns a copy of the active symbols in selection order.
func (p *Pool) Active() []string {
	return slices.Clone(p.active)
}

// Len returns the number of active symbols.
func (p *Pool) Len() int {
	return len(p.active)
}

// Subscribe registers fn to be called with the new set after every mutation.
func (p *Pool) Subscribe(fn func([]string)) {
	p.subscribers = append(p.subscribers, fn)
}

func (p *Pool) changed() {
	if p.storage != nil {
		p.storage.Save(prefs.KeyActiveChars, p.active)
	}
	for _, fn := range p.subscribers {
		fn(p.Active())
	}
}

func dedupe(syms []string) []string {
	out := make([]string, 0, len(syms))
	for _, s := range syms {
		if utf8.RuneCountInString(s) != 1 || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
