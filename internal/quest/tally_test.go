package quest

import "testing"

func TestTallyFoldInvariant(t *testing.T) {
	outcomes := []RoundOutcome{
		{Outcome: OutcomeCorrect, Points: 10, LatencyMs: 400},
		{Outcome: OutcomeCorrect, Points: 10, LatencyMs: 350},
		{Outcome: OutcomeWrong, Points: -5},
		{Outcome: OutcomeTimeout},
		{Outcome: OutcomeCorrect, Points: 10, LatencyMs: 500},
	}

	var tally Tally
	for _, ro := range outcomes {
		tally.Apply(ro)
	}

	if got := tally.Correct + tally.Wrong + tally.Timeout; got != len(outcomes) {
		t.Errorf("correct+wrong+timeout = %d, want %d", got, len(outcomes))
	}
	if tally.Rounds != len(outcomes) {
		t.Errorf("Rounds = %d, want %d", tally.Rounds, len(outcomes))
	}
	if tally.Score != 25 {
		t.Errorf("Score = %d, want 25", tally.Score)
	}
}

func TestTallyComboResets(t *testing.T) {
	var tally Tally

	for i := 0; i < 3; i++ {
		tally.Apply(RoundOutcome{Outcome: OutcomeCorrect, Points: 10})
	}
	if tally.Combo != 3 || tally.MaxCombo != 3 {
		t.Fatalf("after 3 correct: combo = %d maxCombo = %d, want 3/3", tally.Combo, tally.MaxCombo)
	}

	tally.Apply(RoundOutcome{Outcome: OutcomeWrong})
	if tally.Combo != 0 {
		t.Errorf("combo after wrong = %d, want 0", tally.Combo)
	}
	if tally.MaxCombo != 3 {
		t.Errorf("maxCombo after wrong = %d, want 3", tally.MaxCombo)
	}

	tally.Apply(RoundOutcome{Outcome: OutcomeCorrect, Points: 10})
	tally.Apply(RoundOutcome{Outcome: OutcomeTimeout})
	if tally.Combo != 0 {
		t.Errorf("combo after timeout = %d, want 0", tally.Combo)
	}
	if tally.MaxCombo < tally.Combo {
		t.Errorf("maxCombo %d below combo %d", tally.MaxCombo, tally.Combo)
	}
}

func TestTallyScoreFloorsAtZero(t *testing.T) {
	var tally Tally
	tally.Apply(RoundOutcome{Outcome: OutcomeCorrect, Points: 10})
	tally.Apply(RoundOutcome{Outcome: OutcomeWrong, Points: -50})

	if tally.Score != 0 {
		t.Errorf("Score = %d, want floor at 0", tally.Score)
	}
}

func TestTallyAccuracyZeroSafe(t *testing.T) {
	var tally Tally
	if acc := tally.Accuracy(); acc != 0 {
		t.Errorf("empty tally accuracy = %v, want 0", acc)
	}
	if best := tally.BestLatencyMs(); best != 0 {
		t.Errorf("empty tally best latency = %d, want 0", best)
	}
	if avg := tally.AvgLatencyMs(); avg != 0 {
		t.Errorf("empty tally avg latency = %d, want 0", avg)
	}
}

func TestTallyLatencies(t *testing.T) {
	var tally Tally
	tally.Apply(RoundOutcome{Outcome: OutcomeCorrect, LatencyMs: 420})
	tally.Apply(RoundOutcome{Outcome: OutcomeCorrect, LatencyMs: 280})
	tally.Apply(RoundOutcome{Outcome: OutcomeTimeout})

	if best := tally.BestLatencyMs(); best != 280 {
		t.Errorf("best latency = %d, want 280", best)
	}
	if avg := tally.AvgLatencyMs(); avg != 350 {
		t.Errorf("avg latency = %d, want 350", avg)
	}
}
