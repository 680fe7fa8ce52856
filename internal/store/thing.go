package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

type thingRepo struct {
	drv *entsql.Driver
}

func (r *thingRepo) Save(ctx context.Context, t CustomThing) error {
	word := strings.TrimSpace(t.Word)
	if word == "" {
		return fmt.Errorf("save custom thing: empty word")
	}
	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(customThingsTable.Name).
		Columns("word", "emoji", "difficulty", "source", "created_at").
		Values(word, t.Emoji, t.Difficulty, t.Source, created.UnixMilli()).
		OnConflict(entsql.ConflictColumns("word"), entsql.ResolveWithNewValues()).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save custom thing %q: %w", word, err)
	}
	return nil
}

type customThingRow struct {
	Word       string `sql:"word"`
	Emoji      string `sql:"emoji"`
	Difficulty string `sql:"difficulty"`
	Source     string `sql:"source"`
	CreatedAt  int64  `sql:"created_at"`
}

func (r *thingRepo) List(ctx context.Context) ([]CustomThing, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("word", "emoji", "difficulty", "source", "created_at").
		From(entsql.Table(customThingsTable.Name)).
		OrderBy("created_at", "word").
		Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query custom things: %w", err)
	}
	defer rows.Close()

	var scanned []customThingRow
	if err := entsql.ScanSlice(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scan custom things: %w", err)
	}
	out := make([]CustomThing, len(scanned))
	for i, row := range scanned {
		out[i] = CustomThing{
			Word:       row.Word,
			Emoji:      row.Emoji,
			Difficulty: row.Difficulty,
			Source:     row.Source,
			CreatedAt:  time.UnixMilli(row.CreatedAt),
		}
	}
	return out, nil
}

func (r *thingRepo) Delete(ctx context.Context, word string) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Delete(customThingsTable.Name).
		Where(entsql.EQ("word", word)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete custom thing %q: %w", word, err)
	}
	return nil
}
