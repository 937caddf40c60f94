package quest

// Tally is the running aggregate over a session: a strict left-fold over
// the ordered sequence of round outcomes.
type Tally struct {
	Score   int
	Rounds  int
	Correct int
	Wrong   int
	Timeout int

	Combo    int
	MaxCombo int

	LatenciesMs []int
}

// Apply folds one round outcome into the tally. The score is floored at
// zero; combo resets on any non-correct outcome and max-combo never
// decreases.
func (t *Tally) Apply(ro RoundOutcome) {
	t.Rounds++

	switch ro.Outcome {
	case OutcomeCorrect:
		t.Correct++
		t.Combo++
		if t.Combo > t.MaxCombo {
			t.MaxCombo = t.Combo
		}
		if ro.LatencyMs > 0 {
			t.LatenciesMs = append(t.LatenciesMs, ro.LatencyMs)
		}
	case OutcomeWrong:
		t.Wrong++
		t.Combo = 0
	case OutcomeTimeout:
		t.Timeout++
		t.Combo = 0
	}

	t.Score += ro.Points
	if t.Score < 0 {
		t.Score = 0
	}
}

// Accuracy returns the correct fraction as a 0-100 percentage,
// zero-safe for an empty tally.
func (t Tally) Accuracy() float64 {
	if t.Rounds == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Rounds) * 100
}

// BestLatencyMs returns the fastest recorded latency, 0 when none.
func (t Tally) BestLatencyMs() int {
	best := 0
	for _, l := range t.LatenciesMs {
		if best == 0 || l < best {
			best = l
		}
	}
	return best
}

// AvgLatencyMs returns the mean recorded latency, 0 when none.
func (t Tally) AvgLatencyMs() int {
	if len(t.LatenciesMs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range t.LatenciesMs {
		sum += l
	}
	return sum / len(t.LatenciesMs)
}
