package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// QuestResult is one finished session as persisted. Write-once.
type QuestResult struct {
	ID            string
	QuestType     string
	Score         int
	Accuracy      float64 // 0-100
	XPEarned      int
	Items         int
	Errors        int
	MaxCombo      int
	BestLatencyMs int
	AvgLatencyMs  int
	DurationMs    int
	CompletedAt   time.Time
}

// ResultRepo stores and queries finished quest sessions.
type ResultRepo interface {
	// Insert appends one finished session.
	Insert(ctx context.Context, r QuestResult) error

	// All returns the full history, oldest first.
	All(ctx context.Context) ([]QuestResult, error)

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]QuestResult, error)

	// Count returns the total number of sessions.
	Count(ctx context.Context) (int, error)
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Insert(ctx context.Context, res QuestResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_results (
			id, quest_type, score, accuracy, xp_earned, items_completed,
			errors, max_combo, best_latency_ms, avg_latency_ms, duration_ms,
			completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.QuestType, res.Score, res.Accuracy, res.XPEarned,
		res.Items, res.Errors, res.MaxCombo, res.BestLatencyMs,
		res.AvgLatencyMs, res.DurationMs, res.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quest result: %w", err)
	}
	return nil
}

const resultColumns = `id, quest_type, score, accuracy, xp_earned,
	items_completed, errors, max_combo, best_latency_ms, avg_latency_ms,
	duration_ms, completed_at`

func (r *resultRepo) All(ctx context.Context) ([]QuestResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resultColumns+` FROM quest_results ORDER BY completed_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query quest results: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *resultRepo) Recent(ctx context.Context, limit int) ([]QuestResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resultColumns+` FROM quest_results ORDER BY completed_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *resultRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quest_results`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count quest results: %w", err)
	}
	return n, nil
}

func scanResults(rows *sql.Rows) ([]QuestResult, error) {
	var out []QuestResult
	for rows.Next() {
		var res QuestResult
		if err := rows.Scan(
			&res.ID, &res.QuestType, &res.Score, &res.Accuracy, &res.XPEarned,
			&res.Items, &res.Errors, &res.MaxCombo, &res.BestLatencyMs,
			&res.AvgLatencyMs, &res.DurationMs, &res.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quest result: %w", err)
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quest results: %w", err)
	}
	return out, nil
}
