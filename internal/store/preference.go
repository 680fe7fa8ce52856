package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// PreferenceRepo is a key-value table of JSON-encoded preferences.
type PreferenceRepo struct {
	drv *entsql.Driver
}

// Get returns the stored value for key.
func (r *PreferenceRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table(preferencesTable.Name)).
		Where(entsql.EQ("key", key)).
		Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, false, fmt.Errorf("query preference %q: %w", key, err)
	}
	defer rows.Close()

	var values []string
	if err := entsql.ScanSlice(rows, &values); err != nil {
		return nil, false, fmt.Errorf("scan preference %q: %w", key, err)
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	return []byte(values[0]), true, nil
}

// Put inserts or replaces the value for key.
func (r *PreferenceRepo) Put(ctx context.Context, key string, value []byte) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Insert(preferencesTable.Name).
		Columns("key", "value", "updated_at").
		Values(key, string(value), time.Now().UnixMilli()).
		OnConflict(entsql.ConflictColumns("key"), entsql.ResolveWithNewValues()).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save preference %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Missing keys are not an error.
func (r *PreferenceRepo) Delete(ctx context.Context, key string) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Delete(preferencesTable.Name).
		Where(entsql.EQ("key", key)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

type preferenceRow struct {
	Key   string `sql:"key"`
	Value string `sql:"value"`
}

// All returns every stored preference keyed by name.
func (r *PreferenceRepo) All(ctx context.Context) (map[string]string, error) {
	q, args := entsql.Dialect(dialect.SQLite).
		Select("key", "value").
		From(entsql.Table(preferencesTable.Name)).
		OrderBy("key").
		Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	var scanned []preferenceRow
	if err := entsql.ScanSlice(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scan preferences: %w", err)
	}
	out := make(map[string]string, len(scanned))
	for _, row := range scanned {
		out[row.Key] = row.Value
	}
	return out, nil
}
