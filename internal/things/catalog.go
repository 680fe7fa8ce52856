package things

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/abhisek/pismenka/internal/shuffle"
)

//go:embed things.json
var builtinJSON []byte

// Catalog is the built-in list of things plus any custom additions.
type Catalog struct {
	things []Thing
	rng    *rand.Rand
}

var _ Source = (*Catalog)(nil)

// NewCatalog loads the built-in things and appends custom ones. A custom
// thing whose word is already present replaces the built-in entry.
func NewCatalog(custom ...Thing) (*Catalog, error) {
	var builtin []Thing
	if err := json.Unmarshal(builtinJSON, &builtin); err != nil {
		return nil, fmt.Errorf("parse built-in things: %w", err)
	}
	c := &Catalog{}
	for _, t := range builtin {
		c.Add(t)
	}
	for _, t := range custom {
		c.Add(t)
	}
	return c, nil
}

// WithRand sets the random source used by Random.
func (c *Catalog) WithRand(r *rand.Rand) *Catalog {
	c.rng = r
	return c
}

// Add inserts t, replacing any thing with the same word.
func (c *Catalog) Add(t Thing) {
	t.Word = strings.TrimSpace(t.Word)
	if t.Word == "" {
		return
	}
	if i := slices.IndexFunc(c.things, func(o Thing) bool { return o.Word == t.Word }); i >= 0 {
		c.things[i] = t
		return
	}
	c.things = append(c.things, t)
}

// All returns every thing.
func (c *Catalog) All() []Thing {
	return slices.Clone(c.things)
}

// Contains reports whether word is in the catalog.
func (c *Catalog) Contains(word string) bool {
	return slices.ContainsFunc(c.things, func(t Thing) bool { return t.Word == word })
}

func (c *Catalog) ByDifficulty(d Difficulty) []Thing {
	var out []Thing
	for _, t := range c.things {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) CountByDifficulty(d Difficulty) int {
	return len(c.ByDifficulty(d))
}

func (c *Catalog) Random() (Thing, bool) {
	return shuffle.Pick(c.rng, c.things)
}
