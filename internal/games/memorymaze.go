package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Memory Maze (premium): a 4x4 board lights up a path of distinct cells,
// growing from three to eight across six rounds. The path is shown one
// cell at a time, then retraced in order. Retracing is all-or-nothing
// and a complete path scores ten points per cell.
func memoryMazeDefinition() Definition {
	d := Definition{
		Type:        TypeMemoryMaze,
		Title:       "Memory Maze",
		Tagline:     "Retrace the lit path, one cell at a time",
		Skill:       SkillMemory,
		Premium:     true,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			Rounds:        6,
			FeedbackPause: time.Second,
			XPMultiplier:  1.5,
		}

		const gridSize = 16

		gen := func(rng *rand.Rand, round, _ int) (quest.Stimulus, error) {
			length := 2 + round // 3..8
			path, err := pickDistinct(rng, length, gridSize)
			if err != nil {
				return quest.Stimulus{}, err
			}

			cells := make([]quest.Cell, gridSize)
			for i := range cells {
				cells[i] = quest.Cell{Label: "·"}
			}
			return quest.Stimulus{
				Kind:     quest.KindSequence,
				Prompt:   "Watch the path",
				Cells:    cells,
				Columns:  4,
				Sequence: path,
				ShowFor:  time.Duration(length) * 600 * time.Millisecond,
				Deadline: 60 * time.Second,
			}, nil
		}

		allOpts := append([]quest.Option{quest.WithScorer(mazeScore)}, opts...)
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

// mazeScore awards ten points per path cell for a complete retrace.
func mazeScore(_ quest.Config, stim quest.Stimulus, _ quest.Response, out quest.Outcome, _ int, _ quest.Tally) int {
	if out != quest.OutcomeCorrect {
		return 0
	}
	return len(stim.Sequence) * 10
}
