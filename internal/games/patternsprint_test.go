package games

import "testing"

func TestSprintStimulusOptions(t *testing.T) {
	rng := testRand()

	for i := 0; i < 200; i++ {
		stim, err := sprintStimulus(rng, 1, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(stim.Options) != 4 {
			t.Fatalf("options = %d, want 4", len(stim.Options))
		}
		if stim.Answer < 0 || stim.Answer >= 4 {
			t.Fatalf("answer index %d out of range", stim.Answer)
		}

		seen := make(map[string]bool)
		for _, o := range stim.Options {
			if seen[o] {
				t.Errorf("duplicate option %q in %v", o, stim.Options)
			}
			seen[o] = true
		}
		if stim.Display == "" {
			t.Error("empty pattern display")
		}
	}
}
