package quest

import (
	"fmt"
	"time"
)

// Config parameterizes one quest's round machine. Either Rounds or
// TimeBudget (or both) must be set; whichever is exhausted first ends
// the session.
type Config struct {
	// Rounds is the fixed round count (0 = governed by TimeBudget).
	Rounds int
	// TimeBudget is the overall session time limit (0 = governed by Rounds).
	TimeBudget time.Duration

	// WarmupDelay is a non-scored ready phase before the first round.
	WarmupDelay time.Duration
	// RoundDeadline is the per-round response deadline (0 = no deadline).
	// A stimulus may override it via Stimulus.Deadline.
	RoundDeadline time.Duration
	// FeedbackPause is the non-scored pause after a round resolves.
	FeedbackPause time.Duration

	// RuleCount and RuleSwitchEvery enable rule cycling: after every
	// RuleSwitchEvery rounds the active rule advances through the cycle,
	// with a RuleSwitchPause before the next stimulus.
	RuleCount       int
	RuleSwitchEvery int
	RuleSwitchPause time.Duration

	// Scoring.
	BasePoints      int
	ComboThreshold  int // combo length at which the multiplier applies (0 = none)
	ComboMultiplier int
	WrongPenalty    int // points subtracted on a wrong response (0 = track only)
	StartScore      int // initial tally score (0 for most quests)

	// TimeoutIsCorrect counts a deadline expiry on a non-target stimulus
	// as a correct rejection rather than a timeout.
	TimeoutIsCorrect bool

	// XP policy.
	XPMultiplier   float64
	ComboBonusXP   int // flat bonus when MaxCombo reaches ComboThreshold
	FlatXP         int // fixed XP regardless of score (0 = use multiplier)
	TimeBonusPerSec int // score bonus per unspent second when finishing early
}

// Validate checks that the configuration describes a playable session.
func (c Config) Validate() error {
	if c.Rounds <= 0 && c.TimeBudget <= 0 {
		return fmt.Errorf("quest config: either Rounds or TimeBudget must be positive")
	}
	if c.ComboThreshold > 0 && c.ComboMultiplier < 1 {
		return fmt.Errorf("quest config: ComboMultiplier must be >= 1 when ComboThreshold is set")
	}
	if c.RuleSwitchEvery > 0 && c.RuleCount < 2 {
		return fmt.Errorf("quest config: rule switching requires at least 2 rules")
	}
	if c.FlatXP == 0 && c.XPMultiplier <= 0 {
		return fmt.Errorf("quest config: XPMultiplier must be positive unless FlatXP is set")
	}
	return nil
}
