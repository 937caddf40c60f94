package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestResultRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, qt := range []string{"focus", "speed", "memory"} {
		err := repo.Insert(ctx, QuestResult{
			ID:          qt + "-1",
			QuestType:   qt,
			Score:       100 + i,
			Accuracy:    90.5,
			XPEarned:    150,
			Items:       10,
			Errors:      2,
			MaxCombo:    6,
			AvgLatencyMs: 420,
			DurationMs:  30000,
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("insert %s: %v", qt, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("All returned %d results, want 3", len(all))
	}
	if all[0].QuestType != "focus" || all[2].QuestType != "memory" {
		t.Errorf("All not ordered oldest first: %v %v", all[0].QuestType, all[2].QuestType)
	}
	if all[0].Score != 100 || all[0].Accuracy != 90.5 {
		t.Errorf("round trip mismatch: %+v", all[0])
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].QuestType != "memory" {
		t.Errorf("Recent(2) = %v", recent)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestProfileFirstRun(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.ProfileRepo().Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.XP != 0 || p.Level != 1 || p.StreakDays != 0 {
		t.Errorf("fresh profile = %+v", p)
	}
	if !p.LastPlayedAt.IsZero() {
		t.Errorf("fresh profile has last played %v", p.LastPlayedAt)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	if _, err := repo.Load(ctx); err != nil {
		t.Fatal(err)
	}

	want := Profile{
		XP:           1234,
		Level:        6,
		FocusScore:   24,
		MemoryScore:  18,
		SpeedScore:   33,
		SwitchScore:  9,
		CalmScore:    12,
		StreakDays:   4,
		LastPlayedAt: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.XP != want.XP || got.Level != want.Level || got.StreakDays != want.StreakDays {
		t.Errorf("profile round trip = %+v, want %+v", got, want)
	}
	if !got.LastPlayedAt.Equal(want.LastPlayedAt) {
		t.Errorf("last played = %v, want %v", got.LastPlayedAt, want.LastPlayedAt)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "insights",
		InputTokens:  120,
		OutputTokens: 60,
		LatencyMs:    800,
		Success:      true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM llm_requests`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("llm_requests count = %d, want 1", n)
	}
}

func TestUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "insights", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "insights", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "insights", InputTokens: 90, OutputTokens: 40, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	usage, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d models, want 2", len(usage))
	}
	if usage[0].Model != "claude-haiku" || usage[0].Requests != 2 ||
		usage[0].InputTokens != 300 || usage[0].OutputTokens != 130 {
		t.Errorf("claude-haiku usage = %+v", usage[0])
	}
	if usage[1].Model != "gpt-4o-mini" || usage[1].Requests != 1 {
		t.Errorf("gpt-4o-mini usage = %+v", usage[1])
	}
}
