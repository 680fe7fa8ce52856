package thinggen

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/abhisek/pismenka/internal/things"
)

// Validator checks one suggestion.
type Validator interface {
	Name() string
	Validate(t things.Thing, b *Batch) *ValidationError
}

// ValidationError says why a suggestion was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Batch is the validation context of one Generate call: the request and
// the words accepted so far.
type Batch struct {
	Input   Input
	letters map[string]bool
	seen    map[string]bool
	fold    cases.Caser
}

func newBatch(input Input) *Batch {
	b := &Batch{
		Input: input,
		seen:  make(map[string]bool),
		fold:  cases.Fold(),
	}
	if len(input.Letters) > 0 {
		b.letters = make(map[string]bool, len(input.Letters))
		for _, l := range input.Letters {
			b.letters[l] = true
		}
	}
	for _, w := range input.Exclude {
		b.seen[b.key(w)] = true
	}
	return b
}

func (b *Batch) key(word string) string {
	return b.fold.String(strings.TrimSpace(word))
}

// Known reports whether word was excluded or already accepted, ignoring
// case.
func (b *Batch) Known(word string) bool { return b.seen[b.key(word)] }

// Allowed reports whether letter may appear. Without a letter restriction
// everything is allowed.
func (b *Batch) Allowed(letter string) bool {
	return b.letters == nil || b.letters[letter]
}

func (b *Batch) accept(word string) { b.seen[b.key(word)] = true }

// normalizeWord trims whitespace and lower-cases the word.
func normalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
