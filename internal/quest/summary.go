package quest

import "time"

// Summary is the finalized, read-only result of one session, handed to
// the persistence layer and the summary screen.
type Summary struct {
	Score    int
	XP       int
	Accuracy float64 // 0-100

	Rounds  int
	Correct int
	Wrong   int
	Timeout int

	MaxCombo int
	// Items is the quest's best-metric (targets found, longest sequence).
	// Defaults to the correct count; games override it where the metric
	// differs.
	Items int

	BestLatencyMs int
	AvgLatencyMs  int

	Duration time.Duration
}

// Finalize derives the session summary from a finished tally. Pure: no
// I/O, safe on an empty tally (zero rounds yields zero accuracy, zero
// latencies, zero XP unless the quest awards flat XP).
func Finalize(cfg Config, t Tally, elapsed time.Duration) Summary {
	s := Summary{
		Score:         t.Score,
		Accuracy:      t.Accuracy(),
		Rounds:        t.Rounds,
		Correct:       t.Correct,
		Wrong:         t.Wrong,
		Timeout:       t.Timeout,
		MaxCombo:      t.MaxCombo,
		Items:         t.Correct,
		BestLatencyMs: t.BestLatencyMs(),
		AvgLatencyMs:  t.AvgLatencyMs(),
		Duration:      elapsed,
	}
	s.XP = xpFor(cfg, t, elapsed)
	return s
}

// xpFor applies the quest's XP policy: a flat award, or a multiplier over
// the score plus optional time and combo bonuses.
func xpFor(cfg Config, t Tally, elapsed time.Duration) int {
	if cfg.FlatXP > 0 {
		return cfg.FlatXP
	}

	base := t.Score
	if cfg.TimeBonusPerSec > 0 && cfg.TimeBudget > 0 && elapsed < cfg.TimeBudget {
		unspent := int((cfg.TimeBudget - elapsed).Seconds())
		base += unspent * cfg.TimeBonusPerSec
	}

	xp := int(float64(base) * cfg.XPMultiplier)

	if cfg.ComboBonusXP > 0 && cfg.ComboThreshold > 0 && t.MaxCombo >= cfg.ComboThreshold {
		xp += cfg.ComboBonusXP
	}
	if xp < 0 {
		xp = 0
	}
	return xp
}
