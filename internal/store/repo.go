package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int   // max results (0 = unlimited)
	After int64 // sequence > After
}

// SpellRoundEventData captures one scored spelling attempt.
type SpellRoundEventData struct {
	SessionID       string
	Word            string
	Difficulty      string
	Correct         bool
	RoundAttempts   int
	Points          int
	PotentialPoints int
}

// SpellRoundEvent is a stored spelling attempt.
type SpellRoundEvent struct {
	Sequence  int64
	Timestamp time.Time
	SpellRoundEventData
}

// PexesoWinEventData captures a finished pexeso board.
type PexesoWinEventData struct {
	SessionID string
	Pairs     int
	Moves     int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates the LLM requests made with one model.
type LLMUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Stats aggregates everything recorded so far.
type Stats struct {
	SpellAttempts   int
	SpellCorrect    int
	SpellPoints     int
	WordsSpelled    int
	PexesoWins      int
	BestPexesoRun   int // fewest moves on a finished board, 0 when none
	LLMRequests     int
	LLMInputTokens  int
	LLMOutputTokens int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendSpellRound records a scored spelling attempt.
	AppendSpellRound(ctx context.Context, data SpellRoundEventData) error

	// AppendPexesoWin records a finished pexeso board.
	AppendPexesoWin(ctx context.Context, data PexesoWinEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLMRequests returns LLM request events, newest first.
	LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// SpellRounds returns spelling attempts, newest first.
	SpellRounds(ctx context.Context, opts QueryOpts) ([]SpellRoundEvent, error)

	// Stats aggregates all recorded events.
	Stats(ctx context.Context) (Stats, error)
}

// CustomThing is a word added by the player or suggested by an LLM.
type CustomThing struct {
	Word       string
	Emoji      string
	Difficulty string
	Source     string
	CreatedAt  time.Time
}

// ThingRepo stores custom things.
type ThingRepo interface {
	// Save inserts or replaces a thing keyed by its word.
	Save(ctx context.Context, t CustomThing) error

	// List returns all custom things, oldest first.
	List(ctx context.Context) ([]CustomThing, error)

	// Delete removes the thing with the given word. Missing words are not
	// an error.
	Delete(ctx context.Context, word string) error
}
