package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Profile is the single-player aggregate state.
type Profile struct {
	XP           int
	Level        int
	FocusScore   int
	MemoryScore  int
	SpeedScore   int
	SwitchScore  int
	CalmScore    int
	StreakDays   int
	LastPlayedAt time.Time // zero when never played
}

// ProfileRepo loads and saves the player profile.
type ProfileRepo interface {
	// Load returns the profile, creating a fresh one on first run.
	Load(ctx context.Context) (Profile, error)

	// Save writes the profile back.
	Save(ctx context.Context, p Profile) error
}

type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Load(ctx context.Context) (Profile, error) {
	p := Profile{Level: 1}

	var lastPlayed sql.NullTime
	err := r.db.QueryRowContext(ctx, `
		SELECT xp_points, current_level, focus_score, memory_score,
			speed_score, switch_score, calm_score, streak_days, last_played_at
		FROM profile WHERE id = 1`).Scan(
		&p.XP, &p.Level, &p.FocusScore, &p.MemoryScore, &p.SpeedScore,
		&p.SwitchScore, &p.CalmScore, &p.StreakDays, &lastPlayed,
	)
	if err == sql.ErrNoRows {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO profile (id, current_level) VALUES (1, 1)`); err != nil {
			return Profile{}, fmt.Errorf("create profile: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("load profile: %w", err)
	}

	if lastPlayed.Valid {
		p.LastPlayedAt = lastPlayed.Time
	}
	return p, nil
}

func (r *profileRepo) Save(ctx context.Context, p Profile) error {
	var lastPlayed any
	if !p.LastPlayedAt.IsZero() {
		lastPlayed = p.LastPlayedAt
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (
			id, xp_points, current_level, focus_score, memory_score,
			speed_score, switch_score, calm_score, streak_days, last_played_at
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			xp_points = excluded.xp_points,
			current_level = excluded.current_level,
			focus_score = excluded.focus_score,
			memory_score = excluded.memory_score,
			speed_score = excluded.speed_score,
			switch_score = excluded.switch_score,
			calm_score = excluded.calm_score,
			streak_days = excluded.streak_days,
			last_played_at = excluded.last_played_at`,
		p.XP, p.Level, p.FocusScore, p.MemoryScore, p.SpeedScore,
		p.SwitchScore, p.CalmScore, p.StreakDays, lastPlayed,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
