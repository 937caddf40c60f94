package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

var memoryColors = []string{"Red", "Blue", "Green", "Yellow"}

// Memory Sequence: five rounds of color sequences, growing from three to
// seven items. Each sequence is shown, then recalled in order within 45
// seconds. Recall is all-or-nothing: 20 points for an exact match, a
// 5-point consolation otherwise.
func memoryDefinition() Definition {
	d := Definition{
		Type:        TypeMemory,
		Title:       "Memory Sequence",
		Tagline:     "Watch the colors, repeat them in order",
		Skill:       SkillMemory,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			Rounds:        5,
			FeedbackPause: time.Second,
			XPMultiplier:  1.5,
		}

		gen := func(rng *rand.Rand, round, _ int) (quest.Stimulus, error) {
			length := 2 + round
			seq := make([]int, length)
			for i := range seq {
				seq[i] = rng.IntN(len(memoryColors))
			}
			return quest.Stimulus{
				Kind:     quest.KindSequence,
				Prompt:   "Memorize the sequence",
				Options:  memoryColors,
				Sequence: seq,
				ShowFor:  2*time.Second + time.Duration(length)*500*time.Millisecond,
				Deadline: 45 * time.Second,
			}, nil
		}

		allOpts := append([]quest.Option{quest.WithScorer(memoryScore)}, opts...)
		m, err := quest.NewMachine(cfg, gen, allOpts...)
		if err != nil {
			return nil, err
		}

		longest := 0
		return &Session{
			Def:     d,
			Machine: m,
			observe: func(stim quest.Stimulus, _ quest.Response, ro quest.RoundOutcome) {
				if ro.Outcome == quest.OutcomeCorrect && len(stim.Sequence) > longest {
					longest = len(stim.Sequence)
				}
			},
			items: func() (int, bool) { return longest, true },
		}, nil
	}
	return d
}

// memoryScore: exact recall earns 20, a near miss earns a 5-point
// consolation, a timeout earns nothing.
func memoryScore(_ quest.Config, _ quest.Stimulus, _ quest.Response, out quest.Outcome, _ int, _ quest.Tally) int {
	switch out {
	case quest.OutcomeCorrect:
		return 20
	case quest.OutcomeWrong:
		return 5
	default:
		return 0
	}
}
