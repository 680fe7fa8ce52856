// Package spell implements the spelling game: the player sees a thing and
// places letter tiles into slots to spell its name.
package spell

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"

	"github.com/abhisek/pismenka/internal/shuffle"
	"github.com/abhisek/pismenka/internal/things"
	"github.com/abhisek/pismenka/internal/tiles"
)

// ErrNoWords is returned when the source has nothing at the current
// difficulty. The game keeps its previous state and can be retried.
var ErrNoWords = errors.New("spell: no words available for difficulty")

// Diagnostics for operations that do not apply in the current round state.
var (
	ErrRoundInProgress = errors.New("spell: round not scored yet")
	ErrNotInProgress   = errors.New("spell: no round in progress")
	ErrEmptyAnswer     = errors.New("spell: no letters placed")
)

// Round is the state of the current round.
type Round int

const (
	RoundIdle Round = iota
	RoundInProgress
	RoundCorrect
	RoundIncorrect
)

func (r Round) String() string {
	switch r {
	case RoundInProgress:
		return "in progress"
	case RoundCorrect:
		return "correct"
	case RoundIncorrect:
		return "incorrect"
	default:
		return "idle"
	}
}

// Scored reports whether the round has a result.
func (r Round) Scored() bool {
	return r == RoundCorrect || r == RoundIncorrect
}

// PoolReader is the read side of the character pool.
type PoolReader interface {
	Active() []string
}

// Speaker says a word out loud without blocking.
type Speaker interface {
	Speak(text string)
}

// Result describes a scored attempt.
type Result struct {
	Word            string
	Difficulty      things.Difficulty
	Correct         bool
	RoundAttempts   int
	PointsAwarded   int
	PotentialPoints int
}

// Recorder receives every scored attempt.
type Recorder interface {
	RecordRound(Result)
}

// Game is a spelling session. It is not safe for concurrent use.
type Game struct {
	pool     PoolReader
	source   things.Source
	queue    *tiles.Queue
	rng      *rand.Rand
	log      zerolog.Logger
	recorder Recorder
	speaker  Speaker

	difficulty      things.Difficulty
	thing           *things.Thing
	round           Round
	attempts        int
	roundAttempts   int
	score           int
	potentialPoints int
	completed       map[string]bool
	totalWords      int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source for word choice, distractors and tiles.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithRecorder reports scored attempts to r.
func WithRecorder(r Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithSpeaker sets the speaker used by Listen.
func WithSpeaker(s Speaker) Option {
	return func(g *Game) { g.speaker = s }
}

// New creates an idle game drawing distractors from pool and words from source.
func New(pool PoolReader, source things.Source, opts ...Option) *Game {
	g := &Game{
		pool:      pool,
		source:    source,
		log:       zerolog.Nop(),
		completed: make(map[string]bool),
	}
	for _, o := range opts {
		o(g)
	}
	g.queue = tiles.New(tiles.WithRand(g.rng))
	return g
}

// Start resets the session at difficulty d and begins the first round.
func (g *Game) Start(d things.Difficulty) error {
	g.difficulty = d
	g.attempts = 0
	g.score = 0
	g.completed = make(map[string]bool)
	g.totalWords = g.source.CountByDifficulty(d)
	return g.InitRound()
}

// InitRound picks a new target, preferring words not completed yet, and
// deals its tiles together with the difficulty's distractors. With nothing to
// pick the game goes back to idle and ErrNoWords is returned.
func (g *Game) InitRound() error {
	available := g.source.ByDifficulty(g.difficulty)
	remaining := make([]things.Thing, 0, len(available))
	for _, t := range available {
		if !g.completed[t.Word] {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == 0 {
		remaining = available
	}
	thing, ok := shuffle.Pick(g.rng, remaining)
	if !ok {
		g.log.Error().Stringer("difficulty", g.difficulty).Msg("no things available")
		g.thing = nil
		g.round = RoundIdle
		g.roundAttempts = 0
		g.potentialPoints = 0
		g.queue.SetQueue(nil, 0)
		return ErrNoWords
	}

	letters := splitLetters(thing.Word)
	g.thing = &thing
	g.round = RoundInProgress
	g.roundAttempts = 0
	g.potentialPoints = len(letters) + difficultyBonus(g.difficulty)

	set := make([]tiles.Tile, 0, len(letters)+5)
	for i, l := range letters {
		set = append(set, tiles.Tile{Letter: l, ID: i})
	}
	for i, l := range g.distractors(letters) {
		set = append(set, tiles.Tile{Letter: l, ID: len(letters) + i})
	}
	g.queue.SetQueue(set, len(letters))

	g.log.Debug().
		Str("word", thing.Word).
		Stringer("difficulty", g.difficulty).
		Int("tiles", len(set)).
		Msg("round started")
	return nil
}

// distractors draws pool letters that do not occur in the target.
func (g *Game) distractors(target []string) []string {
	n := distractorCount(g.difficulty)
	if n == 0 {
		return nil
	}
	fold := cases.Fold()
	inWord := make(map[string]bool, len(target))
	for _, l := range target {
		inWord[fold.String(l)] = true
	}
	var candidates []string
	for _, c := range g.pool.Active() {
		if !inWord[fold.String(c)] {
			candidates = append(candidates, c)
		}
	}
	candidates = shuffle.ShuffleWith(g.rng, candidates)
	return candidates[:min(n, len(candidates))]
}

// Select places the tile with id into the active slot.
func (g *Game) Select(id int) error {
	return g.queue.Select(id)
}

// RemoveSelected takes the tile in slot index back.
func (g *Game) RemoveSelected(index int) error {
	return g.queue.RemoveSelected(index)
}

// SetActivePosition moves the slot cursor.
func (g *Game) SetActivePosition(p int) error {
	return g.queue.SetActivePosition(p)
}

// Check scores the current answer against the target.
func (g *Game) Check() error {
	if g.round != RoundInProgress {
		return ErrNotInProgress
	}
	if g.queue.Filled() == 0 {
		return ErrEmptyAnswer
	}
	g.attempts++
	g.roundAttempts++

	res := Result{
		Word:            g.thing.Word,
		Difficulty:      g.difficulty,
		RoundAttempts:   g.roundAttempts,
		PotentialPoints: g.potentialPoints,
	}
	if g.CurrentWord() == g.TargetWord() {
		g.round = RoundCorrect
		res.Correct = true
		res.PointsAwarded = max(1, g.potentialPoints)
		g.score += res.PointsAwarded
		g.completed[g.thing.Word] = true
	} else {
		g.round = RoundIncorrect
		g.potentialPoints = max(1, g.potentialPoints-1)
	}
	g.queue.Freeze()

	g.log.Debug().
		Str("word", res.Word).
		Bool("correct", res.Correct).
		Int("points", res.PointsAwarded).
		Msg("answer checked")
	if g.recorder != nil {
		g.recorder.RecordRound(res)
	}
	return nil
}

// ResetRound clears the answer and reopens the round. Potential points are
// kept.
func (g *Game) ResetRound() {
	g.queue.ResetSelections()
	if g.round.Scored() {
		g.round = RoundInProgress
	}
}

// NextRound starts a new round once the current one has been scored.
func (g *Game) NextRound() error {
	if !g.round.Scored() {
		return ErrRoundInProgress
	}
	return g.InitRound()
}

// DecrementPotentialPoints applies a hint penalty, never going below 1.
func (g *Game) DecrementPotentialPoints() {
	g.potentialPoints = max(1, g.potentialPoints-1)
}

// Listen speaks the target word and charges a hint penalty while the round
// is open.
func (g *Game) Listen() {
	if g.thing == nil {
		return
	}
	if g.speaker != nil {
		g.speaker.Speak(g.thing.Word)
	}
	if g.round == RoundInProgress {
		g.DecrementPotentialPoints()
	}
}

// Thing returns the current target.
func (g *Game) Thing() (things.Thing, bool) {
	if g.thing == nil {
		return things.Thing{}, false
	}
	return *g.thing, true
}

// TargetWord returns the word to spell, or "" before the first round.
func (g *Game) TargetWord() string {
	if g.thing == nil {
		return ""
	}
	return g.thing.Word
}

// CurrentWord returns the letters placed so far in slot order.
func (g *Game) CurrentWord() string { return g.queue.Word() }

// IsComplete reports whether every slot is filled.
func (g *Game) IsComplete() bool {
	return g.thing != nil && g.queue.IsComplete()
}

// ProgressPercentage is the rounded share of words completed this session.
func (g *Game) ProgressPercentage() int {
	if g.totalWords == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(g.completed)) / float64(g.totalWords)))
}

func (g *Game) Round() Round { return g.round }
func (g *Game) Difficulty() things.Difficulty { return g.difficulty }
func (g *Game) Attempts() int { return g.attempts }
func (g *Game) RoundAttempts() int { return g.roundAttempts }
func (g *Game) Score() int { return g.score }
func (g *Game) PotentialPoints() int { return g.potentialPoints }
func (g *Game) CompletedCount() int { return len(g.completed) }
func (g *Game) TotalWords() int { return g.totalWords }
func (g *Game) Started() bool { return g.thing != nil }
func (g *Game) Tiles() []tiles.Tile { return g.queue.Tiles() }
func (g *Game) Available() []tiles.Tile { return g.queue.Available() }
func (g *Game) Slots() []*tiles.Tile { return g.queue.Slots() }
func (g *Game) ActivePosition() int { return g.queue.ActivePosition() }
