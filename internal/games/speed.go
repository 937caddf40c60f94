package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

var speedColors = []string{"green", "red", "blue", "yellow"}

// Speed Tap: circles flash for up to two seconds each; tap only the green
// ones. 70% of stimuli are green. No penalty for a wrong tap, but it
// breaks the combo; from a combo of five each hit scores double. Letting
// a non-green circle pass is a correct rejection worth nothing.
func speedDefinition() Definition {
	d := Definition{
		Type:        TypeSpeed,
		Title:       "Speed Tap",
		Tagline:     "Tap the green circles, ignore the rest",
		Skill:       SkillSpeed,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			TimeBudget:       30 * time.Second,
			WarmupDelay:      2 * time.Second,
			RoundDeadline:    2 * time.Second,
			FeedbackPause:    200 * time.Millisecond,
			BasePoints:       10,
			ComboThreshold:   5,
			ComboMultiplier:  2,
			TimeoutIsCorrect: true,
			XPMultiplier:     1.2,
			ComboBonusXP:     50,
		}

		gen := func(rng *rand.Rand, _, _ int) (quest.Stimulus, error) {
			color := speedColors[0]
			if rng.IntN(10) >= 7 {
				color = speedColors[1+rng.IntN(len(speedColors)-1)]
			}
			return quest.Stimulus{
				Kind:    quest.KindSingle,
				Prompt:  "Tap only green",
				Display: "●",
				Color:   color,
				Target:  color == "green",
			}, nil
		}

		allOpts := append([]quest.Option{quest.WithScorer(speedScore)}, opts...)
		m, err := quest.NewMachine(cfg, gen, allOpts...)
		if err != nil {
			return nil, err
		}
		return &Session{Def: d, Machine: m}, nil
	}
	return d
}

// speedScore awards combo-multiplied points only for tapped targets;
// correct rejections and wrong taps score zero.
func speedScore(cfg quest.Config, stim quest.Stimulus, resp quest.Response, out quest.Outcome, _ int, t quest.Tally) int {
	if out != quest.OutcomeCorrect || !stim.Target || !resp.Go {
		return 0
	}
	points := cfg.BasePoints
	if t.Combo+1 >= cfg.ComboThreshold {
		points *= cfg.ComboMultiplier
	}
	return points
}
