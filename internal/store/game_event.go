package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSpellRound(ctx context.Context, data SpellRoundEventData) error {
	err := r.append(ctx, spellRoundsTable.Name,
		[]string{"session_id", "word", "difficulty", "correct", "round_attempts", "points", "potential_points"},
		[]any{data.SessionID, data.Word, data.Difficulty, data.Correct, data.RoundAttempts, data.Points, data.PotentialPoints},
	)
	if err != nil {
		return fmt.Errorf("save spell round event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPexesoWin(ctx context.Context, data PexesoWinEventData) error {
	err := r.append(ctx, pexesoWinsTable.Name,
		[]string{"session_id", "pairs", "moves"},
		[]any{data.SessionID, data.Pairs, data.Moves},
	)
	if err != nil {
		return fmt.Errorf("save pexeso win event: %w", err)
	}
	return nil
}

type spellRoundRow struct {
	Sequence        int64  `sql:"sequence"`
	CreatedAt       int64  `sql:"created_at"`
	SessionID       string `sql:"session_id"`
	Word            string `sql:"word"`
	Difficulty      string `sql:"difficulty"`
	Correct         bool   `sql:"correct"`
	RoundAttempts   int    `sql:"round_attempts"`
	Points          int    `sql:"points"`
	PotentialPoints int    `sql:"potential_points"`
}

func (r *eventRepo) SpellRounds(ctx context.Context, opts QueryOpts) ([]SpellRoundEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("sequence", "created_at", "session_id", "word", "difficulty",
			"correct", "round_attempts", "points", "potential_points").
		From(entsql.Table(spellRoundsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query spell rounds: %w", err)
	}
	defer rows.Close()

	var scanned []spellRoundRow
	if err := entsql.ScanSlice(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scan spell rounds: %w", err)
	}

	events := make([]SpellRoundEvent, len(scanned))
	for i, row := range scanned {
		events[i] = SpellRoundEvent{
			Sequence:  row.Sequence,
			Timestamp: time.UnixMilli(row.CreatedAt),
			SpellRoundEventData: SpellRoundEventData{
				SessionID:       row.SessionID,
				Word:            row.Word,
				Difficulty:      row.Difficulty,
				Correct:         row.Correct,
				RoundAttempts:   row.RoundAttempts,
				Points:          row.Points,
				PotentialPoints: row.PotentialPoints,
			},
		}
	}
	return events, nil
}

type pexesoWinRow struct {
	Pairs int `sql:"pairs"`
	Moves int `sql:"moves"`
}

func (r *eventRepo) pexesoWins(ctx context.Context) ([]pexesoWinRow, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("pairs", "moves").
		From(entsql.Table(pexesoWinsTable.Name)).
		Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query pexeso wins: %w", err)
	}
	defer rows.Close()

	var out []pexesoWinRow
	if err := entsql.ScanSlice(rows, &out); err != nil {
		return nil, fmt.Errorf("scan pexeso wins: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	rounds, err := r.SpellRounds(ctx, QueryOpts{})
	if err != nil {
		return st, err
	}
	spelled := make(map[string]bool)
	for _, e := range rounds {
		st.SpellAttempts++
		st.SpellPoints += e.Points
		if e.Correct {
			st.SpellCorrect++
			spelled[e.Word] = true
		}
	}
	st.WordsSpelled = len(spelled)

	wins, err := r.pexesoWins(ctx)
	if err != nil {
		return st, err
	}
	st.PexesoWins = len(wins)
	for _, w := range wins {
		if st.BestPexesoRun == 0 || w.Moves < st.BestPexesoRun {
			st.BestPexesoRun = w.Moves
		}
	}

	usage, err := r.LLMUsageByModel(ctx)
	if err != nil {
		return st, err
	}
	for _, u := range usage {
		st.LLMRequests += u.Calls
		st.LLMInputTokens += u.InputTokens
		st.LLMOutputTokens += u.OutputTokens
	}
	return st, nil
}
