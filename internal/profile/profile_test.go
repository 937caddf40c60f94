package profile

import (
	"testing"
	"time"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/store"
)

func day(d int) time.Time {
	return time.Date(2026, 8, d, 18, 30, 0, 0, time.UTC)
}

func TestApplySessionXPAndLevel(t *testing.T) {
	p := store.Profile{Level: 1}
	def, err := games.ByType(games.TypeFocus)
	if err != nil {
		t.Fatal(err)
	}

	ApplySession(&p, def, quest.Summary{XP: 150}, day(1))
	if p.XP != 150 || p.Level != 2 {
		t.Errorf("after first session: xp=%d level=%d, want 150/2", p.XP, p.Level)
	}
	if p.FocusScore != 2 {
		t.Errorf("focus score = %d, want 2", p.FocusScore)
	}
	if p.StreakDays != 1 {
		t.Errorf("streak = %d, want 1", p.StreakDays)
	}
}

func TestSkillScoreCap(t *testing.T) {
	p := store.Profile{Level: 1, CalmScore: 99}
	def, err := games.ByType(games.TypeCalm)
	if err != nil {
		t.Fatal(err)
	}

	ApplySession(&p, def, quest.Summary{XP: 100}, day(1))
	if p.CalmScore != SkillScoreCap {
		t.Errorf("calm score = %d, want capped at %d", p.CalmScore, SkillScoreCap)
	}
}

func TestStreakProgression(t *testing.T) {
	def, err := games.ByType(games.TypeSpeed)
	if err != nil {
		t.Fatal(err)
	}

	p := store.Profile{Level: 1}

	ApplySession(&p, def, quest.Summary{}, day(1))
	if p.StreakDays != 1 {
		t.Fatalf("day 1 streak = %d, want 1", p.StreakDays)
	}

	// Second session the same day does not double count.
	ApplySession(&p, def, quest.Summary{}, day(1).Add(2*time.Hour))
	if p.StreakDays != 1 {
		t.Errorf("same-day streak = %d, want 1", p.StreakDays)
	}

	ApplySession(&p, def, quest.Summary{}, day(2))
	if p.StreakDays != 2 {
		t.Errorf("next-day streak = %d, want 2", p.StreakDays)
	}

	ApplySession(&p, def, quest.Summary{}, day(3))
	if p.StreakDays != 3 {
		t.Errorf("third-day streak = %d, want 3", p.StreakDays)
	}

	// Skipping a day resets the streak.
	ApplySession(&p, def, quest.Summary{}, day(5))
	if p.StreakDays != 1 {
		t.Errorf("streak after gap = %d, want 1", p.StreakDays)
	}
}
