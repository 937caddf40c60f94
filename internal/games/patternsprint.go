package games

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

var sprintShapes = []string{"▲", "■", "●", "◆", "★"}

// Pattern Sprint (premium): fifteen untimed pattern-completion puzzles
// with four options each. A correct answer scores 10 plus 2 per step of
// the running streak; a wrong answer resets the streak.
func patternSprintDefinition() Definition {
	d := Definition{
		Type:        TypePatternSprint,
		Title:       "Pattern Sprint",
		Tagline:     "What comes next?",
		Skill:       SkillSwitch,
		Premium:     true,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			Rounds:        15,
			FeedbackPause: 600 * time.Millisecond,
			XPMultiplier:  1.3,
		}

		allOpts := append([]quest.Option{quest.WithScorer(sprintScore)}, opts...)
		m, err := quest.NewMachine(cfg, sprintStimulus, allOpts...)
		if err != nil {
			return nil, err
		}
		return &Session{Def: d, Machine: m}, nil
	}
	return d
}

// sprintScore: 10 plus 2 per streak step already held going into the
// answer.
func sprintScore(_ quest.Config, _ quest.Stimulus, _ quest.Response, out quest.Outcome, _ int, t quest.Tally) int {
	if out != quest.OutcomeCorrect {
		return 0
	}
	return 10 + t.Combo*2
}

// sprintStimulus builds a number- or shape-pattern puzzle with four
// distinct options.
func sprintStimulus(rng *rand.Rand, _, _ int) (quest.Stimulus, error) {
	if rng.IntN(2) == 0 {
		return numberPattern(rng), nil
	}
	return shapePattern(rng), nil
}

// numberPattern shows three terms of an arithmetic progression.
func numberPattern(rng *rand.Rand) quest.Stimulus {
	start := 1 + rng.IntN(9)
	step := 2 + rng.IntN(8)
	next := start + 3*step

	options, answer := shuffleOptions(rng, next, func() int {
		// Distractors near the answer, resampled until distinct.
		return next + (rng.IntN(2)*2-1)*(1+rng.IntN(step))
	})

	labels := make([]string, len(options))
	for i, v := range options {
		labels[i] = fmt.Sprintf("%d", v)
	}
	return quest.Stimulus{
		Kind:    quest.KindOptions,
		Prompt:  "Complete the pattern",
		Display: fmt.Sprintf("%d  %d  %d  ?", start, start+step, start+2*step),
		Options: labels,
		Answer:  answer,
	}
}

// shapePattern cycles three shapes and asks for the next in the cycle.
func shapePattern(rng *rand.Rand) quest.Stimulus {
	cycleIdx, _ := pickDistinct(rng, 3, len(sprintShapes))
	cycle := []string{sprintShapes[cycleIdx[0]], sprintShapes[cycleIdx[1]], sprintShapes[cycleIdx[2]]}

	shown := 4 + rng.IntN(3) // 4..6 items shown
	display := ""
	for i := 0; i < shown; i++ {
		display += cycle[i%3] + "  "
	}
	display += "?"
	next := cycle[shown%3]

	// Options are the three cycle shapes plus one outsider.
	outsider := cycle[0]
	for outsider == cycle[0] || outsider == cycle[1] || outsider == cycle[2] {
		outsider = sprintShapes[rng.IntN(len(sprintShapes))]
	}
	options := []string{cycle[0], cycle[1], cycle[2], outsider}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	answer := 0
	for i, o := range options {
		if o == next {
			answer = i
			break
		}
	}
	return quest.Stimulus{
		Kind:    quest.KindOptions,
		Prompt:  "Complete the pattern",
		Display: display,
		Options: options,
		Answer:  answer,
	}
}

// shuffleOptions places the correct value among three generated
// distractors, rejecting duplicates, and returns the labels with the
// correct index.
func shuffleOptions(rng *rand.Rand, correct int, distract func() int) ([]int, int) {
	values := []int{correct}
	for len(values) < 4 {
		v := distract()
		dup := false
		for _, existing := range values {
			if v == existing {
				dup = true
				break
			}
		}
		if !dup {
			values = append(values, v)
		}
	}
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	for i, v := range values {
		if v == correct {
			return values, i
		}
	}
	return values, 0
}
