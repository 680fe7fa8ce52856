package thinggen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You help a young child learn to spell in Slovak by suggesting words that can be pictured.

Rules:
- Suggest concrete, everyday nouns a five to eight year old knows: animals, food, toys, things at home, vehicles, nature.
- Write every word in lower case, nominative singular, with correct Slovak diacritics.
- Each word gets exactly one emoji that clearly pictures it.
- easy words have 2 to 4 letters, medium 5 to 6, hard 7 or more.
- When allowed letters are given, use only those letters. Diacritics count as different letters.
- Never repeat a word from the "already known" list and never repeat a word within the reply.`

// buildUserMessage renders the request for input.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)
	fmt.Fprintf(&b, "How many: %d\n", input.Count)

	if len(input.Letters) > 0 {
		fmt.Fprintf(&b, "Allowed letters: %s\n", strings.Join(input.Letters, " "))
	} else {
		b.WriteString("Allowed letters: any\n")
	}

	b.WriteString("\nAlready known:\n")
	b.WriteString(buildExclude(input.Exclude, cfg.MaxExclude))

	return b.String()
}

// buildExclude lists the last max known words, or "None".
func buildExclude(words []string, max int) string {
	if len(words) == 0 {
		return "None"
	}
	if max > 0 && len(words) > max {
		words = words[len(words)-max:]
	}
	return strings.Join(words, ", ")
}
