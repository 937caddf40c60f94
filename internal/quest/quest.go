// Package quest implements the generic round state machine shared by all
// mini-games: stimulus generation, round deadlines, scoring, combo tracking,
// and session finalization. Each game supplies a stimulus generator plus
// configuration; the machine owns the round lifecycle.
package quest

import (
	"errors"
	"math/rand/v2"
	"time"
)

// ErrSessionComplete is returned by a Generator when the game has no more
// stimuli to offer (all targets found, all pairs matched). The machine
// finishes the session early.
var ErrSessionComplete = errors.New("session complete")

// StimulusKind discriminates how a stimulus is presented and answered.
type StimulusKind int

const (
	// KindSingle is one item with a go/no-go response.
	KindSingle StimulusKind = iota
	// KindGrid is a board of cells; the response selects one cell.
	KindGrid
	// KindOptions is a prompt with a closed set of answer options.
	KindOptions
	// KindSequence is a shown sequence recalled in order.
	KindSequence
	// KindPassive is a timed phase with no scored input.
	KindPassive
)

// Cell is one position on a grid stimulus.
type Cell struct {
	Label   string
	Target  bool
	Matched bool // already cleared, no longer selectable
}

// Stimulus is one unit shown to the user in a round. Immutable once shown.
type Stimulus struct {
	Kind    StimulusKind
	Prompt  string
	Display string
	Color   string // ink color for word stimuli
	Target  bool   // whether the go-response is the correct one

	Cells   []Cell
	Columns int

	Options []string
	Answer  int // index of the correct option

	Sequence []int // target order, indexes into Cells or Options

	// ShowFor is a memorization display before input opens (0 = none).
	ShowFor time.Duration
	// Deadline overrides Config.RoundDeadline when > 0.
	Deadline time.Duration
}

// Response is the user's answer for one round.
type Response struct {
	Go       bool
	Cell     int
	Option   int
	Sequence []int
}

// Outcome classifies how a round resolved.
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeWrong
	OutcomeTimeout
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeWrong:
		return "wrong"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// RoundOutcome is the immutable result of one resolved round.
type RoundOutcome struct {
	Outcome   Outcome
	LatencyMs int
	Points    int
}

// Generator produces the stimulus for a round. Generators may hold game
// state in a closure (remaining targets, board layout). Returning
// ErrSessionComplete ends the session.
type Generator func(rng *rand.Rand, round, rule int) (Stimulus, error)

// Checker decides whether a response matches the stimulus.
type Checker func(stim Stimulus, resp Response) bool

// Scorer computes the points delta for a resolved round. The tally is the
// state before the outcome is applied.
type Scorer func(cfg Config, stim Stimulus, resp Response, out Outcome, latencyMs int, t Tally) int

// defaultCheck matches a response against a stimulus by kind.
func defaultCheck(stim Stimulus, resp Response) bool {
	switch stim.Kind {
	case KindSingle:
		return resp.Go == stim.Target
	case KindGrid:
		if resp.Cell < 0 || resp.Cell >= len(stim.Cells) {
			return false
		}
		c := stim.Cells[resp.Cell]
		return c.Target && !c.Matched
	case KindOptions:
		return resp.Option == stim.Answer
	case KindSequence:
		// All-or-nothing: element-by-element in order, no partial credit.
		if len(resp.Sequence) != len(stim.Sequence) {
			return false
		}
		for i, v := range stim.Sequence {
			if resp.Sequence[i] != v {
				return false
			}
		}
		return true
	case KindPassive:
		return true
	default:
		return false
	}
}

// defaultScore awards base points with the combo multiplier on correct
// responses and the configured penalty on wrong ones.
func defaultScore(cfg Config, _ Stimulus, _ Response, out Outcome, _ int, t Tally) int {
	switch out {
	case OutcomeCorrect:
		points := cfg.BasePoints
		if cfg.ComboThreshold > 0 && t.Combo+1 >= cfg.ComboThreshold {
			points *= cfg.ComboMultiplier
		}
		return points
	case OutcomeWrong:
		return -cfg.WrongPenalty
	default:
		return 0
	}
}
