package things

import (
	"encoding/json"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDifficulty(%q) = %v, %v", d.String(), got, err)
		}
	}
	got, err := ParseDifficulty(" HARD ")
	if err != nil || got != Hard {
		t.Errorf("ParseDifficulty(\" HARD \") = %v, %v, want hard", got, err)
	}

	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestThingJSON(t *testing.T) {
	var th Thing
	if err := json.Unmarshal([]byte(`{"word":"pes","difficulty":"medium"}`), &th); err != nil {
		t.Fatal(err)
	}
	if want := (Thing{Word: "pes", Difficulty: Medium}); th != want {
		t.Errorf("got %+v, want %+v", th, want)
	}

	if err := json.Unmarshal([]byte(`{"word":"pes","difficulty":"x"}`), &th); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestCatalog_Builtin(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range Difficulties {
		things := c.ByDifficulty(d)
		if len(things) == 0 {
			t.Errorf("no %s things", d)
		}
		if c.CountByDifficulty(d) != len(things) {
			t.Errorf("CountByDifficulty(%s) = %d, want %d", d, c.CountByDifficulty(d), len(things))
		}
		for _, th := range things {
			if th.Difficulty != d {
				t.Errorf("%s listed under %s", th.Word, d)
			}
			if th.Emoji == "" {
				t.Errorf("%s has no picture", th.Word)
			}
		}
	}
	if !c.Contains("pes") {
		t.Error("catalog should contain pes")
	}
}

func TestCatalog_CustomReplacesAndAppends(t *testing.T) {
	c, err := NewCatalog(
		Thing{Word: "pes", Emoji: "🐶", Difficulty: Hard},
		Thing{Word: "  ", Difficulty: Easy},
		Thing{Word: "sova", Emoji: "🦉", Difficulty: Easy},
	)
	if err != nil {
		t.Fatal(err)
	}

	var words []string
	for _, th := range c.ByDifficulty(Easy) {
		words = append(words, th.Word)
	}
	if slices.Contains(words, "pes") {
		t.Error("pes should have moved to hard")
	}
	if !slices.Contains(words, "sova") {
		t.Error("sova should be added to easy")
	}
	if !slices.Contains(c.ByDifficulty(Hard), Thing{Word: "pes", Emoji: "🐶", Difficulty: Hard}) {
		t.Error("custom pes missing from hard")
	}
}

func TestCatalog_Random(t *testing.T) {
	c, err := NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	c.WithRand(rand.New(rand.NewPCG(1, 1)))
	th, ok := c.Random()
	if !ok || !c.Contains(th.Word) {
		t.Errorf("Random() = %+v, %v", th, ok)
	}
}

type words []string

func (w words) ConfirmedWords() []string { return w }

func TestConfirmed(t *testing.T) {
	c := NewConfirmed(words{"ma", "ta"})
	for _, d := range Difficulties {
		want := []Thing{{Word: "ma", Difficulty: d}, {Word: "ta", Difficulty: d}}
		if got := c.ByDifficulty(d); !slices.Equal(got, want) {
			t.Errorf("ByDifficulty(%s) = %v, want %v", d, got, want)
		}
		if c.CountByDifficulty(d) != 2 {
			t.Errorf("CountByDifficulty(%s) = %d, want 2", d, c.CountByDifficulty(d))
		}
	}
	th, ok := c.Random()
	if !ok || !slices.Contains([]string{"ma", "ta"}, th.Word) {
		t.Errorf("Random() = %+v, %v", th, ok)
	}

	if _, ok := NewConfirmed(words{}).Random(); ok {
		t.Error("Random() on no words should fail")
	}
}
