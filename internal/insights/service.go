// Package insights generates personalized training tips from quest
// history via an LLM provider, with a static fallback when no provider
// is available or the call fails.
package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/devika/neuroquest/internal/llm"
	"github.com/devika/neuroquest/internal/store"
)

// recentLimit is how many recent results are included in the prompt.
const recentLimit = 10

// Fallback is shown when insight generation is unavailable.
var Fallback = []string{
	"Keep up your daily training to maintain your streak!",
	"Try mixing different quest types for balanced cognitive development.",
	"Your consistency is paying off - you're making great progress!",
}

// Service generates training insights.
type Service struct {
	provider llm.Provider
	profiles store.ProfileRepo
	results  store.ResultRepo

	maxTokens   int
	temperature float64
}

// New creates an insights service. provider may be nil, in which case
// Generate always returns the fallback tips.
func New(provider llm.Provider, profiles store.ProfileRepo, results store.ResultRepo) *Service {
	return &Service{
		provider:    provider,
		profiles:    profiles,
		results:     results,
		maxTokens:   1024,
		temperature: 0.7,
	}
}

// insightsOutput is the raw LLM response shape.
type insightsOutput struct {
	Insights []string `json:"insights"`
}

// Generate returns exactly 3 tips for the player. On any provider
// failure it falls back to the static tips along with the error, so
// callers can still render something useful.
func (s *Service) Generate(ctx context.Context) ([]string, error) {
	if s.provider == nil {
		return Fallback, nil
	}

	p, err := s.profiles.Load(ctx)
	if err != nil {
		return Fallback, fmt.Errorf("load profile: %w", err)
	}
	recent, err := s.results.Recent(ctx, recentLimit)
	if err != nil {
		return Fallback, fmt.Errorf("load recent results: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "insights")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p, recent)},
		},
		Schema:      InsightsSchema,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Fallback, fmt.Errorf("generate insights: %w", err)
	}

	var out insightsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback, fmt.Errorf("parse insights response: %w", err)
	}
	if len(out.Insights) != 3 {
		return Fallback, fmt.Errorf("expected 3 insights, got %d", len(out.Insights))
	}

	return out.Insights, nil
}
