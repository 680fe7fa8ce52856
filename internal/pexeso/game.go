// Package pexeso implements the pair-matching memory game.
package pexeso

import (
	"math/rand/v2"
	"slices"

	"github.com/rs/zerolog"

	"github.com/abhisek/pismenka/internal/shuffle"
)

// Card is one face of the deck.
type Card struct {
	Word     string
	Revealed bool
	Matched  bool
}

// Speaker says a word out loud without blocking.
type Speaker interface {
	Speak(text string)
}

// Win describes a finished board.
type Win struct {
	Pairs int
	Moves int
}

// Recorder is told about every finished board.
type Recorder interface {
	RecordWin(Win)
}

const none = -1

// Game is one pexeso board. It is not safe for concurrent use.
type Game struct {
	words    []string
	cards    []Card
	rng      *rand.Rand
	speaker  Speaker
	recorder Recorder
	log      zerolog.Logger

	first, second int
	moves         int
	matched       int
	locked        bool
	awaitingAck   bool
	showWin       bool
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used to shuffle the deck.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithSpeaker makes every flipped card say its word.
func WithSpeaker(s Speaker) Option {
	return func(g *Game) { g.speaker = s }
}

// WithRecorder reports finished boards to r.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New creates a board for words and deals it.
func New(words []string, opts ...Option) *Game {
	g := &Game{
		words: slices.Clone(words),
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(g)
	}
	g.Init()
	return g
}

// Init deals a fresh shuffled deck with two cards per word and clears all
// counters.
func (g *Game) Init() {
	deck := make([]Card, 0, 2*len(g.words))
	for _, w := range g.words {
		deck = append(deck, Card{Word: w}, Card{Word: w})
	}
	g.cards = shuffle.ShuffleWith(g.rng, deck)
	g.first, g.second = none, none
	g.moves = 0
	g.matched = 0
	g.locked = false
	g.awaitingAck = false
	g.showWin = false
	g.log.Debug().Int("cards", len(g.cards)).Msg("board dealt")
}

// Reset dismisses the win dialog and deals again.
func (g *Game) Reset() {
	g.showWin = false
	g.Init()
}

// SetWords replaces the word list and redeals, discarding the game in play.
func (g *Game) SetWords(words []string) {
	g.words = slices.Clone(words)
	g.Init()
}

// CanFlip reports whether the card at index may be turned over now.
func (g *Game) CanFlip(index int) bool {
	if index < 0 || index >= len(g.cards) {
		return false
	}
	c := g.cards[index]
	return !g.locked && !c.Matched && !c.Revealed && index != g.first
}

// Flip turns over the card at index. The second card of a move either
// completes a pair or locks the board until Acknowledge.
func (g *Game) Flip(index int) {
	if !g.CanFlip(index) {
		return
	}
	card := &g.cards[index]
	card.Revealed = true
	if g.speaker != nil {
		g.speaker.Speak(card.Word)
	}

	if g.first == none {
		g.first = index
		return
	}

	g.second = index
	g.moves++
	prev := &g.cards[g.first]
	if prev.Word != card.Word {
		g.locked = true
		g.awaitingAck = true
		return
	}

	prev.Matched = true
	card.Matched = true
	g.matched++
	g.first, g.second = none, none
	if g.IsWon() {
		g.showWin = true
		g.log.Info().Int("pairs", g.matched).Int("moves", g.moves).Msg("board won")
		if g.recorder != nil {
			g.recorder.RecordWin(Win{Pairs: g.matched, Moves: g.moves})
		}
	}
}

// Acknowledge turns a mismatched pair face down again and unlocks the
// board. It does nothing unless a mismatch is waiting.
func (g *Game) Acknowledge() {
	if !g.awaitingAck {
		return
	}
	for _, i := range []int{g.first, g.second} {
		if i != none {
			g.cards[i].Revealed = false
		}
	}
	g.first, g.second = none, none
	g.awaitingAck = false
	g.locked = false
}

// DismissWin hides the win dialog without redealing.
func (g *Game) DismissWin() { g.showWin = false }

// IsWon reports whether every pair has been found.
func (g *Game) IsWon() bool { return g.matched == g.TotalPairs() }

// ShowWinDialog reports whether the win dialog should be visible.
func (g *Game) ShowWinDialog() bool { return g.showWin }

// Cards returns a snapshot of the deck.
func (g *Game) Cards() []Card { return slices.Clone(g.cards) }

// Words returns the words the board was dealt from.
func (g *Game) Words() []string { return slices.Clone(g.words) }

func (g *Game) Moves() int { return g.moves }
func (g *Game) MatchedPairs() int { return g.matched }
func (g *Game) TotalPairs() int { return len(g.words) }
func (g *Game) Started() bool { return g.moves > 0 }
func (g *Game) AwaitingAck() bool { return g.awaitingAck }
func (g *Game) Locked() bool { return g.locked }
