package games

import (
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Focus Grid: a 64-cell board hides 15 targets; find them all before the
// 30-second budget runs out. Correct finds earn 10, wrong clicks cost 5,
// unspent seconds add a time bonus to the XP base.
func focusDefinition() Definition {
	d := Definition{
		Type:        TypeFocus,
		Title:       "Focus Grid",
		Tagline:     "Spot every target before time runs out",
		Skill:       SkillFocus,
		SkillPoints: 2,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		return newBoardSession(d, boardParams{
			size:        64,
			columns:     8,
			targets:     15,
			budget:      30 * time.Second,
			wrongCost:   5,
			regenerates: false,
		}, opts...)
	}
	return d
}

// Focus Flip (premium): a tighter 16-cell board with 6 targets over 45
// seconds; the board regenerates whenever it is cleared, so the score is
// open-ended. Wrong clicks cost only 2.
func focusFlipDefinition() Definition {
	d := Definition{
		Type:        TypeFocusFlip,
		Title:       "Focus Flip",
		Tagline:     "Clear board after board of shifting symbols",
		Skill:       SkillFocus,
		Premium:     true,
		SkillPoints: 2,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		return newBoardSession(d, boardParams{
			size:        16,
			columns:     4,
			targets:     6,
			budget:      45 * time.Second,
			wrongCost:   2,
			regenerates: true,
		}, opts...)
	}
	return d
}

type boardParams struct {
	size, columns, targets int
	budget                 time.Duration
	wrongCost              int
	regenerates            bool
}

func newBoardSession(def Definition, p boardParams, opts ...quest.Option) (*Session, error) {
	cfg := quest.Config{
		TimeBudget:      p.budget,
		FeedbackPause:   150 * time.Millisecond,
		BasePoints:      10,
		WrongPenalty:    p.wrongCost,
		XPMultiplier:    1.5,
		TimeBonusPerSec: 2,
	}
	if p.regenerates {
		// Open-ended play has no early finish, so no time bonus.
		cfg.TimeBonusPerSec = 0
	}

	var board *symbolBoard
	totalFound := 0

	gen := func(rng *rand.Rand, _, _ int) (quest.Stimulus, error) {
		if board == nil || (board.remaining == 0 && p.regenerates) {
			b, err := newSymbolBoard(rng, p.size, p.columns, p.targets)
			if err != nil {
				return quest.Stimulus{}, err
			}
			board = b
		}
		if board.remaining == 0 {
			return quest.Stimulus{}, quest.ErrSessionComplete
		}
		return board.stimulus(), nil
	}

	m, err := quest.NewMachine(cfg, gen, opts...)
	if err != nil {
		return nil, err
	}

	return &Session{
		Def:     def,
		Machine: m,
		observe: func(_ quest.Stimulus, resp quest.Response, ro quest.RoundOutcome) {
			if ro.Outcome == quest.OutcomeCorrect && board != nil {
				board.mark(resp.Cell)
				totalFound++
			}
		},
		items: func() (int, bool) { return totalFound, true },
	}, nil
}
