package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Reaction Run (premium): targets pop up on a 3x3 pad for 1.2 seconds
// each across a 30-second run. Faster hits score more: 20 under 300ms,
// 15 under 500ms, 10 otherwise. A target that expires is a miss.
func reactionRunDefinition() Definition {
	d := Definition{
		Type:        TypeReactionRun,
		Title:       "Reaction Run",
		Tagline:     "Hit the target the instant it appears",
		Skill:       SkillSpeed,
		Premium:     true,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			TimeBudget:    30 * time.Second,
			WarmupDelay:   time.Second,
			RoundDeadline: 1200 * time.Millisecond,
			FeedbackPause: 400 * time.Millisecond,
			XPMultiplier:  1.2,
		}

		gen := func(rng *rand.Rand, _, _ int) (quest.Stimulus, error) {
			cells := make([]quest.Cell, 9)
			for i := range cells {
				cells[i] = quest.Cell{Label: "·"}
			}
			hot := rng.IntN(9)
			cells[hot] = quest.Cell{Label: "◉", Target: true}
			return quest.Stimulus{
				Kind:    quest.KindGrid,
				Prompt:  "Hit the target",
				Cells:   cells,
				Columns: 3,
			}, nil
		}

		allOpts := append([]quest.Option{quest.WithScorer(reactionScore)}, opts...)
		m, err := quest.NewMachine(cfg, gen, allOpts...)
		if err != nil {
			return nil, err
		}
		return &Session{Def: d, Machine: m}, nil
	}
	return d
}

// reactionScore grades a hit by latency.
func reactionScore(_ quest.Config, _ quest.Stimulus, _ quest.Response, out quest.Outcome, latencyMs int, _ quest.Tally) int {
	if out != quest.OutcomeCorrect {
		return 0
	}
	switch {
	case latencyMs < 300:
		return 20
	case latencyMs < 500:
		return 15
	default:
		return 10
	}
}
