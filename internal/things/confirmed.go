package things

import (
	"math/rand/v2"

	"github.com/abhisek/pismenka/internal/shuffle"
)

// WordLister exposes a list of confirmed words.
type WordLister interface {
	ConfirmedWords() []string
}

// Confirmed serves the player's confirmed words as things. Every word is
// offered at every difficulty; difficulty only changes the distractors.
type Confirmed struct {
	words WordLister
	rng   *rand.Rand
}

var _ Source = (*Confirmed)(nil)

// NewConfirmed adapts words into a Source.
func NewConfirmed(words WordLister) *Confirmed {
	return &Confirmed{words: words}
}

func (c *Confirmed) ByDifficulty(d Difficulty) []Thing {
	words := c.words.ConfirmedWords()
	out := make([]Thing, 0, len(words))
	for _, w := range words {
		out = append(out, Thing{Word: w, Difficulty: d})
	}
	return out
}

func (c *Confirmed) CountByDifficulty(Difficulty) int {
	return len(c.words.ConfirmedWords())
}

func (c *Confirmed) Random() (Thing, bool) {
	w, ok := shuffle.Pick(c.rng, c.words.ConfirmedWords())
	if !ok {
		return Thing{}, false
	}
	return Thing{Word: w}, true
}
