package quest

import (
	"testing"
	"time"
)

func TestFinalizeEmptyTally(t *testing.T) {
	cfg := Config{Rounds: 5, XPMultiplier: 1.5}
	s := Finalize(cfg, Tally{}, 0)

	if s.Accuracy != 0 {
		t.Errorf("accuracy = %v, want 0", s.Accuracy)
	}
	if s.XP != 0 {
		t.Errorf("xp = %d, want 0", s.XP)
	}
	if s.BestLatencyMs != 0 || s.AvgLatencyMs != 0 {
		t.Errorf("latencies = %d/%d, want 0/0", s.BestLatencyMs, s.AvgLatencyMs)
	}
}

func TestFinalizeMultiplierXP(t *testing.T) {
	cfg := Config{Rounds: 5, XPMultiplier: 1.5}
	tally := Tally{Score: 85, Rounds: 5, Correct: 4, Wrong: 1}

	s := Finalize(cfg, tally, 30*time.Second)
	if s.XP != 127 { // floor(85 * 1.5)
		t.Errorf("xp = %d, want 127", s.XP)
	}
	if s.Accuracy != 80 {
		t.Errorf("accuracy = %v, want 80", s.Accuracy)
	}
}

func TestFinalizeComboBonus(t *testing.T) {
	cfg := Config{
		TimeBudget:      30 * time.Second,
		ComboThreshold:  5,
		ComboMultiplier: 2,
		ComboBonusXP:    50,
		XPMultiplier:    1.2,
	}

	with := Finalize(cfg, Tally{Score: 100, Rounds: 10, Correct: 10, MaxCombo: 7}, 30*time.Second)
	if with.XP != 170 { // floor(100*1.2) + 50
		t.Errorf("xp with combo = %d, want 170", with.XP)
	}

	without := Finalize(cfg, Tally{Score: 100, Rounds: 10, Correct: 10, MaxCombo: 4}, 30*time.Second)
	if without.XP != 120 {
		t.Errorf("xp without combo = %d, want 120", without.XP)
	}
}

func TestFinalizeTimeBonus(t *testing.T) {
	cfg := Config{
		TimeBudget:      30 * time.Second,
		XPMultiplier:    1.5,
		TimeBonusPerSec: 2,
	}
	tally := Tally{Score: 150, Rounds: 15, Correct: 15}

	// Finished 10 seconds early: bonus 10*2 = 20, XP = floor(170*1.5).
	s := Finalize(cfg, tally, 20*time.Second)
	if s.XP != 255 {
		t.Errorf("xp with time bonus = %d, want 255", s.XP)
	}

	// Budget fully spent: no bonus.
	full := Finalize(cfg, tally, 30*time.Second)
	if full.XP != 225 {
		t.Errorf("xp without time bonus = %d, want 225", full.XP)
	}
}

func TestFinalizeFlatXP(t *testing.T) {
	cfg := Config{Rounds: 5, FlatXP: 100}
	s := Finalize(cfg, Tally{Score: 60, Rounds: 5, Correct: 5}, 80*time.Second)

	if s.XP != 100 {
		t.Errorf("xp = %d, want flat 100", s.XP)
	}
	if s.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", s.Accuracy)
	}
}

func TestFinalizeItemsDefaultsToCorrect(t *testing.T) {
	cfg := Config{Rounds: 5, XPMultiplier: 1}
	s := Finalize(cfg, Tally{Rounds: 5, Correct: 3, Wrong: 2}, time.Minute)

	if s.Items != 3 {
		t.Errorf("items = %d, want 3", s.Items)
	}
}
