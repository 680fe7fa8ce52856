package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// Suggestion is one picture request and the custom things that were saved
// from its reply.
type Suggestion struct {
	Request LLMRequestEvent
	Saved   []CustomThing
}

// Suggestions returns the newest limit requests made for purpose, newest
// first. Custom things from source are attributed to the latest request
// made at or before their creation time.
func (s *Store) Suggestions(ctx context.Context, purpose, source string, limit int) ([]Suggestion, error) {
	events := &eventRepo{drv: s.drv, seq: s.seq}
	reqs, err := events.queryLLM(ctx, entsql.EQ("purpose", purpose), limit)
	if err != nil {
		return nil, fmt.Errorf("suggestions: %w", err)
	}
	saved, err := s.ThingRepo().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggestions: %w", err)
	}

	out := make([]Suggestion, len(reqs))
	for i, r := range reqs {
		out[i].Request = r
	}
	for _, t := range saved {
		if t.Source != source {
			continue
		}
		// reqs is newest first, so the first request not after t owns it.
		for i, r := range reqs {
			if !r.Timestamp.After(t.CreatedAt) {
				out[i].Saved = append(out[i].Saved, t)
				break
			}
		}
	}
	return out, nil
}
