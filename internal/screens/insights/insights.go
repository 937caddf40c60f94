// Package insights renders AI coaching tips generated from the player's
// recent training history.
package insights

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/insights"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/ui/components"
	"github.com/devika/neuroquest/internal/ui/layout"
	"github.com/devika/neuroquest/internal/ui/theme"
)

// generateTimeout bounds one insights generation, retries included.
const generateTimeout = 2 * time.Minute

// tipsMsg delivers the generated tips. fallback marks canned advice shown
// because the provider was unavailable or returned garbage.
type tipsMsg struct {
	tips     []string
	fallback bool
}

// InsightsScreen shows three coaching tips, with a spinner while the
// provider call is in flight.
type InsightsScreen struct {
	svc     *insights.Service
	spinner components.Spinner

	loading  bool
	tips     []string
	fallback bool
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates the insights screen; generation starts on Init.
func New(svc *insights.Service) *InsightsScreen {
	return &InsightsScreen{
		svc:     svc,
		spinner: components.NewSpinner("Analyzing your training..."),
		loading: true,
	}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Init(), s.generate())
}

func (s *InsightsScreen) generate() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		tips, err := svc.Generate(ctx)
		return tipsMsg{tips: tips, fallback: err != nil}
	}
}

func (s *InsightsScreen) Title() string {
	return "AI Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	if !s.loading {
		hints = append([]layout.KeyHint{{Key: "R", Description: "Regenerate"}}, hints...)
	}
	return hints
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipsMsg:
		s.loading = false
		s.tips = msg.tips
		s.fallback = msg.fallback
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if !s.loading {
				s.loading = true
				return s, tea.Batch(s.spinner.Init(), s.generate())
			}
		}
		return s, nil
	}

	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n\n" + s.spinner.View())
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your coach says"))
	b.WriteString("\n\n")

	wrap := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-12, 64))
	for i, tip := range s.tips {
		bullet := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  ◆ ")
		b.WriteString(bullet)
		b.WriteString(wrap.Render(tip))
		if i < len(s.tips)-1 {
			b.WriteString("\n\n")
		}
	}

	if s.fallback {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Offline tips. Set an API key for personalized coaching."))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
