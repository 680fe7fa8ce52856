// Package thinggen asks a language model for new things to spell and
// filters the reply through a chain of validators before anything reaches
// the catalog.
package thinggen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abhisek/pismenka/internal/llm"
	"github.com/abhisek/pismenka/internal/things"
)

// Input describes the batch to generate.
type Input struct {
	Difficulty things.Difficulty

	// Letters restricts words to these single-letter strings. Empty means
	// no restriction.
	Letters []string

	Count int

	// Exclude lists words that already exist and must not be suggested.
	Exclude []string
}

// Rejection is a suggestion that failed validation.
type Rejection struct {
	Thing things.Thing
	Err   *ValidationError
}

// Result is the validated batch.
type Result struct {
	Things   []things.Thing
	Rejected []Rejection
}

// Generator produces things to spell.
type Generator interface {
	Generate(ctx context.Context, input Input) (*Result, error)
}

// LLMGenerator implements Generator with an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      zerolog.Logger
}

var _ Generator = (*LLMGenerator)(nil)

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config, log zerolog.Logger) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// batchOutput is the raw model reply.
type batchOutput struct {
	Things []struct {
		Word       string `json:"word"`
		Emoji      string `json:"emoji"`
		Difficulty string `json:"difficulty"`
	} `json:"things"`
}

// decode converts the reply, giving fallback to entries whose difficulty
// is missing or unknown.
func (b batchOutput) decode(fallback things.Difficulty) []things.Thing {
	out := make([]things.Thing, 0, len(b.Things))
	for _, r := range b.Things {
		t := things.Thing{Word: normalizeWord(r.Word), Emoji: r.Emoji, Difficulty: fallback}
		if d, err := things.ParseDifficulty(r.Difficulty); err == nil {
			t.Difficulty = d
		}
		out = append(out, t)
	}
	return out
}

// Suggestions decodes a logged model reply into the things it suggested,
// before validation.
func Suggestions(content string, fallback things.Difficulty) ([]things.Thing, error) {
	var raw batchOutput
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse thing batch: %w", err)
	}
	return raw.decode(fallback), nil
}

// Generate requests input.Count things. Suggestions that fail a validator
// are dropped and reported in Result.Rejected; the call fails only when
// the model request itself fails.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) (*Result, error) {
	if input.Count <= 0 {
		input.Count = g.config.DefaultCount
	}
	if g.config.MaxCount > 0 {
		input.Count = min(input.Count, g.config.MaxCount)
	}

	req := llm.UserPrompt(systemPrompt, buildUserMessage(input, g.config))
	req.Schema = ThingSchema
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeThings), req)
	if err != nil {
		return nil, fmt.Errorf("thing generation failed: %w", err)
	}

	var raw batchOutput
	if err := resp.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse thing batch: %w", err)
	}

	batch := newBatch(input)
	res := &Result{}
	for _, t := range raw.decode(input.Difficulty) {
		if verr := g.validate(t, batch); verr != nil {
			g.log.Debug().Str("word", t.Word).Str("validator", verr.Validator).Msg(verr.Message)
			res.Rejected = append(res.Rejected, Rejection{Thing: t, Err: verr})
			continue
		}
		batch.accept(t.Word)
		res.Things = append(res.Things, t)
		if len(res.Things) == input.Count {
			break
		}
	}

	g.log.Info().
		Str("difficulty", input.Difficulty.String()).
		Int("accepted", len(res.Things)).
		Int("rejected", len(res.Rejected)).
		Msg("generated things")
	return res, nil
}

func (g *LLMGenerator) validate(t things.Thing, b *Batch) *ValidationError {
	for _, v := range g.config.Validators {
		if verr := v.Validate(t, b); verr != nil {
			return verr
		}
	}
	return nil
}
