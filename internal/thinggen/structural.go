package thinggen

import (
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/pismenka/internal/things"
)

const maxWordLen = 14

// StructuralValidator checks the word is a single lower-case word of
// letters and that an emoji is present.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t things.Thing, _ *Batch) *ValidationError {
	n := utf8.RuneCountInString(t.Word)
	switch {
	case n == 0:
		return v.fail("word is empty")
	case n < 2:
		return v.fail("word is shorter than 2 letters")
	case n > maxWordLen:
		return v.fail("word is longer than 14 letters")
	}
	for _, r := range t.Word {
		if !unicode.IsLetter(r) {
			return v.fail("word contains a non-letter")
		}
	}
	if t.Emoji == "" {
		return v.fail("emoji is empty")
	}
	if utf8.RuneCountInString(t.Emoji) > 8 {
		return v.fail("emoji is not a single picture")
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// LettersValidator rejects words that use a letter outside Input.Letters.
type LettersValidator struct{}

func (v *LettersValidator) Name() string { return "letters" }

func (v *LettersValidator) Validate(t things.Thing, b *Batch) *ValidationError {
	for _, r := range t.Word {
		if !b.Allowed(string(r)) {
			return &ValidationError{Validator: v.Name(), Message: "letter " + string(r) + " is not in the pool"}
		}
	}
	return nil
}

// DedupValidator rejects words that are excluded or already accepted.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(t things.Thing, b *Batch) *ValidationError {
	if b.Known(t.Word) {
		return &ValidationError{Validator: v.Name(), Message: "word " + t.Word + " is already known"}
	}
	return nil
}
