package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on top of the ent SQL builder and the
// global sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

// append inserts one event row, stamping it with the next sequence number
// and the current time.
func (r *eventRepo) append(ctx context.Context, table string, columns []string, values []any) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns(append([]string{"sequence", "created_at"}, columns...)...).
		Values(append([]any{seqNum, time.Now().UnixMilli()}, values...)...).
		Query()
	return r.drv.Exec(ctx, q, args, nil)
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	err := r.append(ctx, llmRequestsTable.Name,
		[]string{"provider", "model", "purpose", "input_tokens", "output_tokens", "latency_ms",
			"success", "error_message", "request_body", "response_body"},
		[]any{data.Provider, data.Model, data.Purpose, data.InputTokens, data.OutputTokens, data.LatencyMs,
			data.Success, data.ErrorMessage, data.RequestBody, data.ResponseBody},
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

type llmRequestRow struct {
	ID           int    `sql:"id"`
	Sequence     int64  `sql:"sequence"`
	CreatedAt    int64  `sql:"created_at"`
	Provider     string `sql:"provider"`
	Model        string `sql:"model"`
	Purpose      string `sql:"purpose"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
	LatencyMs    int64  `sql:"latency_ms"`
	Success      bool   `sql:"success"`
	ErrorMessage string `sql:"error_message"`
	RequestBody  string `sql:"request_body"`
	ResponseBody string `sql:"response_body"`
}

func (row llmRequestRow) event() LLMRequestEvent {
	return LLMRequestEvent{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: time.UnixMilli(row.CreatedAt),
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}

func (r *eventRepo) queryLLM(ctx context.Context, where *entsql.Predicate, limit int) ([]LLMRequestEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "created_at", "provider", "model", "purpose", "input_tokens",
			"output_tokens", "latency_ms", "success", "error_message", "request_body", "response_body").
		From(entsql.Table(llmRequestsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if where != nil {
		sel.Where(where)
	}
	if limit > 0 {
		sel.Limit(limit)
	}

	q, args := sel.Query()
	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}
	defer rows.Close()

	var scanned []llmRequestRow
	if err := entsql.ScanSlice(rows, &scanned); err != nil {
		return nil, fmt.Errorf("scan LLM requests: %w", err)
	}
	events := make([]LLMRequestEvent, len(scanned))
	for i, row := range scanned {
		events[i] = row.event()
	}
	return events, nil
}

func (r *eventRepo) LLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	var where *entsql.Predicate
	if opts.After > 0 {
		where = entsql.GT("sequence", opts.After)
	}
	return r.queryLLM(ctx, where, opts.Limit)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.queryLLM(ctx, nil, 0)
	if err != nil {
		return nil, err
	}

	byModel := make(map[string]*LLMUsage)
	var order []string
	latency := make(map[string]int64)
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &LLMUsage{Model: e.Model}
			byModel[e.Model] = u
			order = append(order, e.Model)
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[e.Model] += e.LatencyMs
	}

	out := make([]LLMUsage, 0, len(order))
	for _, model := range order {
		u := *byModel[model]
		u.AvgLatencyMs = latency[model] / int64(u.Calls)
		out = append(out, u)
	}
	slices.SortStableFunc(out, func(a, b LLMUsage) int { return cmp.Compare(b.Calls, a.Calls) })
	return out, nil
}
