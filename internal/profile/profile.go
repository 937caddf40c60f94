// Package profile folds finished sessions into the player's aggregate
// stats: XP, level, per-skill scores, and the daily streak.
package profile

import (
	"time"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/leveling"
	"github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/store"
)

// SkillScoreCap is the maximum value a per-skill score can reach.
const SkillScoreCap = 100

// ApplySession folds one finished session into the profile: XP and level,
// the trained skill's score (capped), and the daily streak. The caller
// persists the updated profile.
func ApplySession(p *store.Profile, def games.Definition, sum quest.Summary, now time.Time) {
	p.XP += sum.XP
	p.Level = leveling.LevelForXP(p.XP)

	bumpSkill(p, def.Skill, def.SkillPoints)
	updateStreak(p, now)
	p.LastPlayedAt = now
}

func bumpSkill(p *store.Profile, skill games.Skill, points int) {
	target := skillField(p, skill)
	if target == nil {
		return
	}
	*target += points
	if *target > SkillScoreCap {
		*target = SkillScoreCap
	}
}

func skillField(p *store.Profile, skill games.Skill) *int {
	switch skill {
	case games.SkillFocus:
		return &p.FocusScore
	case games.SkillMemory:
		return &p.MemoryScore
	case games.SkillSpeed:
		return &p.SpeedScore
	case games.SkillSwitch:
		return &p.SwitchScore
	case games.SkillCalm:
		return &p.CalmScore
	default:
		return nil
	}
}

// updateStreak advances the consecutive-day counter: playing on the day
// after the last session extends it, a same-day session leaves it alone,
// and a gap resets it to one.
func updateStreak(p *store.Profile, now time.Time) {
	if p.LastPlayedAt.IsZero() {
		p.StreakDays = 1
		return
	}

	last := dateOf(p.LastPlayedAt)
	today := dateOf(now)

	switch today.Sub(last) {
	case 0:
		// Already counted today.
	case 24 * time.Hour:
		p.StreakDays++
	default:
		p.StreakDays = 1
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
