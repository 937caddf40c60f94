package games

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// The six switching rules, cycled every six items.
const (
	ruleEven = iota
	ruleOdd
	ruleInkBlue
	ruleInkRed
	ruleWordMatchesInk
	ruleWordSaysBlue
	ruleCount
)

var switchInks = []string{"blue", "red", "green", "yellow"}
var switchWords = []string{"Blue", "Red", "Green", "Yellow"}

// rulePrompt describes the active rule to the player.
func rulePrompt(rule int) string {
	switch rule {
	case ruleEven:
		return "Tap EVEN numbers"
	case ruleOdd:
		return "Tap ODD numbers"
	case ruleInkBlue:
		return "Tap when the ink is BLUE"
	case ruleInkRed:
		return "Tap when the ink is RED"
	case ruleWordMatchesInk:
		return "Tap when the word matches its ink"
	case ruleWordSaysBlue:
		return "Tap when the word says BLUE"
	default:
		return ""
	}
}

// Brain Switch: 24 go/no-go items with the matching rule changing every
// sixth item. Tapping a match or withholding on a non-match both score
// 10; each item allows 2.5 seconds.
func brainSwitchDefinition() Definition {
	d := Definition{
		Type:        TypeSwitch,
		Title:       "Brain Switch",
		Tagline:     "The rule keeps changing. Keep up.",
		Skill:       SkillSwitch,
		SkillPoints: 3,
	}
	d.build = func(opts ...quest.Option) (*Session, error) {
		cfg := quest.Config{
			Rounds:           24,
			RoundDeadline:    2500 * time.Millisecond,
			FeedbackPause:    300 * time.Millisecond,
			RuleCount:        ruleCount,
			RuleSwitchEvery:  6,
			RuleSwitchPause:  time.Second,
			BasePoints:       10,
			TimeoutIsCorrect: true,
			XPMultiplier:     1.5,
		}

		m, err := quest.NewMachine(cfg, switchStimulus, opts...)
		if err != nil {
			return nil, err
		}
		return &Session{Def: d, Machine: m}, nil
	}
	return d
}

// switchStimulus generates one item for the active rule. Number rules get
// colored digits, ink and word rules get Stroop color words.
func switchStimulus(rng *rand.Rand, _, rule int) (quest.Stimulus, error) {
	stim := quest.Stimulus{
		Kind:   quest.KindSingle,
		Prompt: rulePrompt(rule),
	}

	switch rule {
	case ruleEven, ruleOdd:
		n := 2 + rng.IntN(8) // 2..9
		stim.Display = fmt.Sprintf("%d", n)
		stim.Color = switchInks[rng.IntN(len(switchInks))]
		if rule == ruleEven {
			stim.Target = n%2 == 0
		} else {
			stim.Target = n%2 == 1
		}

	case ruleInkBlue, ruleInkRed:
		word, ink := stroopPair(rng, rng.IntN(2) == 0)
		stim.Display = word
		stim.Color = ink
		if rule == ruleInkBlue {
			stim.Target = ink == "blue"
		} else {
			stim.Target = ink == "red"
		}

	case ruleWordMatchesInk:
		// Half the items match by construction, half are mismatched
		// by reject-and-resample.
		match := rng.IntN(2) == 0
		word, ink := stroopPair(rng, match)
		stim.Display = word
		stim.Color = ink
		stim.Target = match

	case ruleWordSaysBlue:
		word, ink := stroopPair(rng, rng.IntN(2) == 0)
		stim.Display = word
		stim.Color = ink
		stim.Target = word == "Blue"

	default:
		return quest.Stimulus{}, fmt.Errorf("brain switch: unknown rule %d", rule)
	}

	return stim, nil
}

// stroopPair returns a color word and an ink color that either match or
// deliberately differ. The mismatch resample loop is bounded: with four
// inks, a non-matching ink always exists.
func stroopPair(rng *rand.Rand, match bool) (word, ink string) {
	i := rng.IntN(len(switchWords))
	word = switchWords[i]
	if match {
		return word, switchInks[i]
	}
	ink = switchInks[i]
	for ink == switchInks[i] {
		ink = switchInks[rng.IntN(len(switchInks))]
	}
	return word, ink
}
