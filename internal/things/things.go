// Package things supplies the words a spelling game asks the player to
// spell, grouped by difficulty.
package things

import (
	"fmt"
	"strings"
)

// Difficulty of a spelling round.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in increasing order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses the lower-case name of a difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Thing is a word to spell with the picture shown for it.
type Thing struct {
	Word       string     `json:"word"`
	Emoji      string     `json:"emoji,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
}

// Source supplies things by difficulty.
type Source interface {
	ByDifficulty(d Difficulty) []Thing
	CountByDifficulty(d Difficulty) int
	Random() (Thing, bool)
}
