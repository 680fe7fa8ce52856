package wordgen

import (
	"golang.org/x/text/cases"
)

// vowels are compared after case folding.
var vowels = map[string]bool{
	"a": true, "e": true, "i": true, "o": true, "u": true, "y": true,
	"á": true, "ä": true, "é": true, "í": true, "ó": true, "ô": true, "ú": true, "ý": true,
}

// IsVowel reports whether sym is a vowel, ignoring case.
func IsVowel(sym string) bool { return isVowel(sym) }

func isVowel(sym string) bool {
	return vowels[cases.Fold().String(sym)]
}

// diverse rejects words longer than two letters built from a single letter.
func diverse(w string) bool {
	var first rune
	n := 0
	for _, r := range w {
		if n == 0 {
			first = r
		} else if r != first {
			return true
		}
		n++
	}
	return n <= 2
}

func hasAdjacentConsonants(w string) bool {
	prevConsonant := false
	for _, r := range w {
		c := !isVowel(string(r))
		if c && prevConsonant {
			return true
		}
		prevConsonant = c
	}
	return false
}
