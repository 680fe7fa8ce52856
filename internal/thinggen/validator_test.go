package thinggen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/pismenka/internal/things"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	b := newBatch(Input{})

	tests := []struct {
		word, emoji string
		wantErr     bool
	}{
		{"mačka", "🐈", false},
		{"ďateľ", "🐦", false},
		{"", "🐈", true},
		{"m", "🐈", true},
		{"nepredstaviteľný", "❓", true},
		{"auto2", "🚗", true},
		{"auto", "", true},
		{"auto", "🚗🚗🚗🚗🚗🚗🚗🚗🚗", true},
	}
	for _, tt := range tests {
		err := v.Validate(things.Thing{Word: tt.word, Emoji: tt.emoji}, b)
		assert.Equal(t, tt.wantErr, err != nil, "word %q emoji %q: %v", tt.word, tt.emoji, err)
	}
}

func TestLettersValidator(t *testing.T) {
	v := &LettersValidator{}

	open := newBatch(Input{})
	assert.Nil(t, v.Validate(things.Thing{Word: "čučoriedka"}, open))

	pool := newBatch(Input{Letters: []string{"m", "a", "č"}})
	assert.Nil(t, v.Validate(things.Thing{Word: "mača"}, pool))
	assert.Nil(t, v.Validate(things.Thing{Word: "mama"}, pool))
	err := v.Validate(things.Thing{Word: "máma"}, pool)
	if assert.NotNil(t, err) {
		assert.Equal(t, "letters", err.Validator)
		assert.Contains(t, err.Error(), "á")
	}
}

func TestDedupValidator(t *testing.T) {
	v := &DedupValidator{}
	b := newBatch(Input{Exclude: []string{" Pes "}})

	assert.NotNil(t, v.Validate(things.Thing{Word: "pes"}, b))
	assert.Nil(t, v.Validate(things.Thing{Word: "les"}, b))

	b.accept("les")
	assert.NotNil(t, v.Validate(things.Thing{Word: "LES"}, b))
}
