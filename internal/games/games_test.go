package games

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("catalog size = %d, want 10", len(all))
	}

	free, premium := 0, 0
	for _, d := range all {
		if d.Premium {
			premium++
		} else {
			free++
		}
		if d.Title == "" || d.Skill == "" || d.SkillPoints == 0 {
			t.Errorf("%s: incomplete definition %+v", d.Type, d)
		}
	}
	if free != 5 || premium != 5 {
		t.Errorf("free/premium = %d/%d, want 5/5", free, premium)
	}

	for _, typ := range FreeTypes {
		d, err := ByType(typ)
		if err != nil {
			t.Errorf("ByType(%s): %v", typ, err)
		}
		if d.Premium {
			t.Errorf("%s listed as free but marked premium", typ)
		}
	}

	if _, err := ByType("juggling"); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestEveryDefinitionBuilds(t *testing.T) {
	for _, d := range All() {
		s, err := d.NewSession(quest.WithRand(rand.New(rand.NewPCG(1, uint64(len(d.Type))))))
		if err != nil {
			t.Errorf("%s: NewSession: %v", d.Type, err)
			continue
		}
		if s.Machine == nil {
			t.Errorf("%s: session has no machine", d.Type)
		}
	}
}

// Drives a full Focus Grid session: find all 15 targets, verify the
// early finish, items metric and time-bonus XP.
func TestFocusSessionPlaythrough(t *testing.T) {
	def, err := ByType(TypeFocus)
	if err != nil {
		t.Fatal(err)
	}
	s, err := def.NewSession(quest.WithRand(rand.New(rand.NewPCG(3, 9))))
	if err != nil {
		t.Fatal(err)
	}

	now := time.Unix(5000, 0)
	m := s.Machine
	m.Start(now)

	for found := 0; found < 15; found++ {
		stim, err := m.BeginRound(now)
		if err != nil {
			t.Fatalf("find %d: %v", found, err)
		}
		m.OpenInput(now)

		target := -1
		for i, c := range stim.Cells {
			if c.Target && !c.Matched {
				target = i
				break
			}
		}
		if target == -1 {
			t.Fatalf("find %d: no unmatched target on board", found)
		}

		resp := quest.Response{Cell: target}
		ro, ok := m.Respond(resp, now.Add(400*time.Millisecond))
		if !ok || ro.Outcome != quest.OutcomeCorrect {
			t.Fatalf("find %d: ok=%v outcome=%v", found, ok, ro.Outcome)
		}
		s.Observe(stim, resp, ro)
		m.Advance(now.Add(time.Second))
		now = now.Add(time.Second)
	}

	if _, err := m.BeginRound(now); err != quest.ErrSessionComplete {
		t.Fatalf("board cleared but BeginRound = %v", err)
	}

	sum := s.Summarize(now)
	if sum.Items != 15 {
		t.Errorf("items = %d, want 15", sum.Items)
	}
	if sum.Score != 150 {
		t.Errorf("score = %d, want 150", sum.Score)
	}
	// 15 seconds unspent of the 30s budget: XP = floor((150 + 15*2) * 1.5).
	if sum.XP != 270 {
		t.Errorf("xp = %d, want 270", sum.XP)
	}
	if sum.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", sum.Accuracy)
	}
}

func TestSpeedScore(t *testing.T) {
	cfg := quest.Config{BasePoints: 10, ComboThreshold: 5, ComboMultiplier: 2}
	green := quest.Stimulus{Kind: quest.KindSingle, Target: true}
	red := quest.Stimulus{Kind: quest.KindSingle, Target: false}

	tests := []struct {
		name  string
		stim  quest.Stimulus
		resp  quest.Response
		out   quest.Outcome
		combo int
		want  int
	}{
		{"hit", green, quest.Response{Go: true}, quest.OutcomeCorrect, 0, 10},
		{"hit at combo", green, quest.Response{Go: true}, quest.OutcomeCorrect, 4, 20},
		{"correct rejection scores nothing", red, quest.Response{}, quest.OutcomeCorrect, 4, 0},
		{"wrong tap unpunished", red, quest.Response{Go: true}, quest.OutcomeWrong, 3, 0},
		{"missed green", green, quest.Response{}, quest.OutcomeTimeout, 3, 0},
	}

	for _, tt := range tests {
		got := speedScore(cfg, tt.stim, tt.resp, tt.out, 250, quest.Tally{Combo: tt.combo})
		if got != tt.want {
			t.Errorf("%s: speedScore = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestMemoryScore(t *testing.T) {
	if got := memoryScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeCorrect, 0, quest.Tally{}); got != 20 {
		t.Errorf("correct recall = %d, want 20", got)
	}
	if got := memoryScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeWrong, 0, quest.Tally{}); got != 5 {
		t.Errorf("consolation = %d, want 5", got)
	}
	if got := memoryScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeTimeout, 0, quest.Tally{}); got != 0 {
		t.Errorf("timeout = %d, want 0", got)
	}
}

func TestReactionScoreTiers(t *testing.T) {
	tests := []struct {
		latency int
		want    int
	}{
		{150, 20},
		{299, 20},
		{300, 15},
		{499, 15},
		{500, 10},
		{1100, 10},
	}
	for _, tt := range tests {
		got := reactionScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeCorrect, tt.latency, quest.Tally{})
		if got != tt.want {
			t.Errorf("reactionScore(latency=%d) = %d, want %d", tt.latency, got, tt.want)
		}
	}
	if got := reactionScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeTimeout, 0, quest.Tally{}); got != 0 {
		t.Errorf("expired target = %d, want 0", got)
	}
}

func TestSprintScoreStreak(t *testing.T) {
	tests := []struct {
		combo int
		want  int
	}{
		{0, 10},
		{1, 12},
		{5, 20},
	}
	for _, tt := range tests {
		got := sprintScore(quest.Config{}, quest.Stimulus{}, quest.Response{}, quest.OutcomeCorrect, 0, quest.Tally{Combo: tt.combo})
		if got != tt.want {
			t.Errorf("sprintScore(combo=%d) = %d, want %d", tt.combo, got, tt.want)
		}
	}
}
