package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Breath phase durations for one box-breathing cycle.
const (
	BreatheIn   = 4 * time.Second
	BreatheHold = 4 * time.Second
	BreatheOut  = 8 * time.Second
)

// Calm Breathing: five guided box-breathing cycles with no scored input.
// Every cycle completes on its own timer, so the session always finishes
// with full accuracy and a flat 100 XP.
func calmDefinition() Definition {
	d := Definition{
		Type:        TypeCalm,
		Title:       "Calm Breathing",
		Tagline:     "Five slow cycles. In, hold, out.",
		Skill:       SkillCalm,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			Rounds:           5,
			RoundDeadline:    BreatheIn + BreatheHold + BreatheOut,
			BasePoints:       12,
			TimeoutIsCorrect: true,
			FlatXP:           100,
		}

		gen := func(_ *rand.Rand, round, _ int) (quest.Stimulus, error) {
			return quest.Stimulus{
				Kind:   quest.KindPassive,
				Prompt: "Follow the breath",
			}, nil
		}

		m, err := quest.NewMachine(cfg, gen, opts...)
		if err != nil {
			return nil, err
		}
		return &Session{Def: d, Machine: m}, nil
	}
	return d
}
