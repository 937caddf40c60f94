package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

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

// LLMUsage aggregates token consumption for one model.
type LLMUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// UsageByModel returns per-model token totals across all recorded requests.
	UsageByModel(ctx context.Context) ([]LLMUsage, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_requests (
			provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage,
		data.RequestBody, data.ResponseBody, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM llm_requests
		GROUP BY model
		ORDER BY model`)
	if err != nil {
		return nil, fmt.Errorf("query llm usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Model, &u.Requests, &u.InputTokens, &u.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan llm usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
