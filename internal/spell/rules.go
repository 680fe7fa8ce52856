package spell

import "github.com/abhisek/pismenka/internal/things"

// distractorCount is how many wrong letters are mixed into the tiles.
func distractorCount(d things.Difficulty) int {
	switch d {
	case things.Medium:
		return 2
	case things.Hard:
		return 5
	default:
		return 0
	}
}

// difficultyBonus is added to the word length to get the round's points.
func difficultyBonus(d things.Difficulty) int {
	switch d {
	case things.Medium:
		return 1
	case things.Hard:
		return 2
	default:
		return 0
	}
}

// splitLetters splits a word into single-character letters.
func splitLetters(w string) []string {
	out := make([]string, 0, len(w))
	for _, r := range w {
		out = append(out, string(r))
	}
	return out
}
