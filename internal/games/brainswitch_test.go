package games

import (
	"strconv"
	"testing"
)

func TestStroopPair(t *testing.T) {
	rng := testRand()

	for i := 0; i < 200; i++ {
		word, ink := stroopPair(rng, true)
		wordIdx := -1
		for j, w := range switchWords {
			if w == word {
				wordIdx = j
			}
		}
		if wordIdx == -1 {
			t.Fatalf("unknown word %q", word)
		}
		if ink != switchInks[wordIdx] {
			t.Errorf("matching pair %q/%q does not match", word, ink)
		}

		word, ink = stroopPair(rng, false)
		for j, w := range switchWords {
			if w == word && ink == switchInks[j] {
				t.Errorf("mismatched pair %q/%q matches", word, ink)
			}
		}
	}
}

func TestSwitchStimulusTargets(t *testing.T) {
	rng := testRand()

	for i := 0; i < 300; i++ {
		for rule := 0; rule < ruleCount; rule++ {
			stim, err := switchStimulus(rng, 1, rule)
			if err != nil {
				t.Fatalf("rule %d: %v", rule, err)
			}
			if stim.Prompt == "" {
				t.Fatalf("rule %d: empty prompt", rule)
			}

			switch rule {
			case ruleEven, ruleOdd:
				n, err := strconv.Atoi(stim.Display)
				if err != nil {
					t.Fatalf("rule %d: non-numeric display %q", rule, stim.Display)
				}
				if n < 2 || n > 9 {
					t.Errorf("digit %d out of range", n)
				}
				wantTarget := n%2 == 0
				if rule == ruleOdd {
					wantTarget = !wantTarget
				}
				if stim.Target != wantTarget {
					t.Errorf("rule %d: digit %d target = %v", rule, n, stim.Target)
				}
			case ruleInkBlue:
				if stim.Target != (stim.Color == "blue") {
					t.Errorf("ink-blue: color %q target %v", stim.Color, stim.Target)
				}
			case ruleInkRed:
				if stim.Target != (stim.Color == "red") {
					t.Errorf("ink-red: color %q target %v", stim.Color, stim.Target)
				}
			case ruleWordSaysBlue:
				if stim.Target != (stim.Display == "Blue") {
					t.Errorf("word-blue: word %q target %v", stim.Display, stim.Target)
				}
			}
		}
	}
}

func TestSwitchStimulusWordMatchRule(t *testing.T) {
	rng := testRand()

	sawMatch, sawMismatch := false, false
	for i := 0; i < 100; i++ {
		stim, err := switchStimulus(rng, 1, ruleWordMatchesInk)
		if err != nil {
			t.Fatal(err)
		}

		wordIdx := -1
		for j, w := range switchWords {
			if w == stim.Display {
				wordIdx = j
			}
		}
		if wordIdx == -1 {
			t.Fatalf("unknown word %q", stim.Display)
		}
		matches := stim.Color == switchInks[wordIdx]
		if stim.Target != matches {
			t.Errorf("word %q ink %q: target %v, want %v", stim.Display, stim.Color, stim.Target, matches)
		}
		if matches {
			sawMatch = true
		} else {
			sawMismatch = true
		}
	}
	if !sawMatch || !sawMismatch {
		t.Error("word-match rule never produced both match and mismatch items")
	}
}
