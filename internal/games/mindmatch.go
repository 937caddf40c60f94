package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Mind Match (premium): a concentration board of eight hidden pairs.
// Each round is one two-card attempt; a match earns 50 points, a miss
// costs 10 from a starting stake of 1000. The session ends when every
// pair is cleared or three minutes pass.
func mindMatchDefinition() Definition {
	d := Definition{
		Type:        TypeMindMatch,
		Title:       "Mind Match",
		Tagline:     "Clear the board in as few flips as you can",
		Skill:       SkillMemory,
		Premium:     true,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			TimeBudget:    3 * time.Minute,
			FeedbackPause: 700 * time.Millisecond,
			StartScore:    1000,
			XPMultiplier:  1.2,
		}

		var board []quest.Cell
		pairsLeft := 8

		gen := func(rng *rand.Rand, _, _ int) (quest.Stimulus, error) {
			if board == nil {
				board = dealPairs(rng)
			}
			if pairsLeft == 0 {
				return quest.Stimulus{}, quest.ErrSessionComplete
			}
			cells := make([]quest.Cell, len(board))
			copy(cells, board)
			return quest.Stimulus{
				Kind:    quest.KindGrid,
				Prompt:  "Flip two cards",
				Cells:   cells,
				Columns: 4,
			}, nil
		}

		allOpts := append([]quest.Option{
			quest.WithChecker(matchCheck),
			quest.WithScorer(matchScore),
		}, opts...)
		m, err := quest.NewMachine(cfg, gen, allOpts...)
		if err != nil {
			return nil, err
		}

		return &Session{
			Def:     d,
			Machine: m,
			observe: func(_ quest.Stimulus, resp quest.Response, ro quest.RoundOutcome) {
				if ro.Outcome != quest.OutcomeCorrect || len(resp.Sequence) != 2 {
					return
				}
				board[resp.Sequence[0]].Matched = true
				board[resp.Sequence[1]].Matched = true
				pairsLeft--
			},
		}, nil
	}
	return d
}

// dealPairs shuffles eight symbol pairs onto a 16-cell board.
func dealPairs(rng *rand.Rand) []quest.Cell {
	cells := make([]quest.Cell, 0, 16)
	for _, sym := range boardSymbols {
		cells = append(cells,
			quest.Cell{Label: sym},
			quest.Cell{Label: sym},
		)
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}

// matchCheck accepts a response naming two distinct unmatched cells with
// the same symbol.
func matchCheck(stim quest.Stimulus, resp quest.Response) bool {
	if len(resp.Sequence) != 2 {
		return false
	}
	a, b := resp.Sequence[0], resp.Sequence[1]
	if a == b || a < 0 || b < 0 || a >= len(stim.Cells) || b >= len(stim.Cells) {
		return false
	}
	ca, cb := stim.Cells[a], stim.Cells[b]
	if ca.Matched || cb.Matched {
		return false
	}
	return ca.Label == cb.Label
}

// matchScore: +50 for a match, -10 for a miss.
func matchScore(_ quest.Config, _ quest.Stimulus, _ quest.Response, out quest.Outcome, _ int, _ quest.Tally) int {
	if out == quest.OutcomeCorrect {
		return 50
	}
	return -10
}
