// Package achievements renders the achievement gallery with per-award
// progress bars.
package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/achievements"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/components"
	"github.com/devika/neuroquest/internal/ui/layout"
	"github.com/devika/neuroquest/internal/ui/theme"
)

// AchievementsScreen lists every achievement with its unlock state.
type AchievementsScreen struct {
	records []achievements.Record
	errMsg  string
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New evaluates the achievement set against the stored history.
func New(st *store.Store) *AchievementsScreen {
	s := &AchievementsScreen{}

	history, err := st.ResultRepo().All(context.Background())
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.records = achievements.Evaluate(history)
	return s
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return nil
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}

	var b strings.Builder

	unlocked := achievements.UnlockedCount(s.records)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(s.records))))
	b.WriteString("\n\n")

	barWidth := min(width-40, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	for _, r := range s.records {
		icon := "🔒"
		nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if r.Unlocked {
			icon = "🏆"
			nameStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}

		b.WriteString(fmt.Sprintf("  %s %s\n", icon, nameStyle.Render(r.Name)))
		b.WriteString("     " + theme.Hint.Render(r.Description) + "\n")

		bar := components.NewProgressBar("", r.Progress, false, barWidth)
		counter := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", r.Current, r.Requirement))
		b.WriteString("     " + bar.View() + counter + "\n\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
