package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	preferencesColumns = []*schema.Column{
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	preferencesTable = &schema.Table{
		Name:       "preferences",
		Columns:    preferencesColumns,
		PrimaryKey: []*schema.Column{preferencesColumns[0]},
	}

	spellRoundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "round_attempts", Type: field.TypeInt},
		{Name: "points", Type: field.TypeInt},
		{Name: "potential_points", Type: field.TypeInt},
	}
	spellRoundsTable = &schema.Table{
		Name:       "spell_round_events",
		Columns:    spellRoundsColumns,
		PrimaryKey: []*schema.Column{spellRoundsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "spellround_word", Columns: []*schema.Column{spellRoundsColumns[4]}},
		},
	}

	pexesoWinsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "pairs", Type: field.TypeInt},
		{Name: "moves", Type: field.TypeInt},
	}
	pexesoWinsTable = &schema.Table{
		Name:       "pexeso_win_events",
		Columns:    pexesoWinsColumns,
		PrimaryKey: []*schema.Column{pexesoWinsColumns[0]},
	}

	llmRequestsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt},
		{Name: "output_tokens", Type: field.TypeInt},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmRequestsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmRequestsColumns,
		PrimaryKey: []*schema.Column{llmRequestsColumns[0]},
	}

	customThingsColumns = []*schema.Column{
		{Name: "word", Type: field.TypeString, Unique: true},
		{Name: "emoji", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeInt64},
	}
	customThingsTable = &schema.Table{
		Name:       "custom_things",
		Columns:    customThingsColumns,
		PrimaryKey: []*schema.Column{customThingsColumns[0]},
	}

	tables = []*schema.Table{
		preferencesTable,
		spellRoundsTable,
		pexesoWinsTable,
		llmRequestsTable,
		customThingsTable,
	}
)

// migrate creates missing tables and columns. It never drops anything.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv, schema.WithForeignKeys(false))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}
