// Package progress renders the training report: level standing, skill
// scores, and per-quest aggregates over the stored history.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/leveling"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/components"
	"github.com/devika/neuroquest/internal/ui/layout"
	"github.com/devika/neuroquest/internal/ui/theme"
)

// questStats is the per-quest aggregate over the full history.
type questStats struct {
	def       games.Definition
	plays     int
	bestScore int
	avgAcc    float64
	bestItems int
}

// ProgressScreen shows the training report.
type ProgressScreen struct {
	profile store.Profile
	stats   []questStats
	total   int
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New loads the history and folds it into per-quest aggregates.
func New(st *store.Store) *ProgressScreen {
	s := &ProgressScreen{}
	ctx := context.Background()

	prof, err := st.ProfileRepo().Load(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.profile = prof

	history, err := st.ResultRepo().All(ctx)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.total = len(history)
	s.stats = aggregate(history)
	return s
}

// aggregate folds results into catalog order, skipping quests never played.
func aggregate(history []store.QuestResult) []questStats {
	byType := make(map[string]*questStats)
	for _, def := range games.All() {
		byType[string(def.Type)] = &questStats{def: def}
	}

	for _, r := range history {
		qs, ok := byType[r.QuestType]
		if !ok {
			continue
		}
		qs.plays++
		qs.avgAcc += r.Accuracy
		if r.Score > qs.bestScore {
			qs.bestScore = r.Score
		}
		if r.Items > qs.bestItems {
			qs.bestItems = r.Items
		}
	}

	var out []questStats
	for _, def := range games.All() {
		qs := byType[string(def.Type)]
		if qs.plays == 0 {
			continue
		}
		qs.avgAcc /= float64(qs.plays)
		out = append(out, *qs)
	}
	return out
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Title() string {
	return "Progress Report"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}

	var b strings.Builder
	p := s.profile

	// Level standing.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  Level %d · %s", p.Level, leveling.TitleForLevel(p.Level))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d XP · %d quests played · ★ %d day streak",
			p.XP, s.total, p.StreakDays)))
	b.WriteString("\n\n")

	levelBar := components.NewProgressBar("  Next level", leveling.LevelProgress(p.XP), true, min(width-10, 52))
	b.WriteString(levelBar.View())
	b.WriteString("\n\n")

	// Skill scores.
	b.WriteString(sectionHeader("Skills", width))
	skills := []struct {
		name  string
		score int
	}{
		{"Focus", p.FocusScore},
		{"Memory", p.MemoryScore},
		{"Speed", p.SpeedScore},
		{"Switching", p.SwitchScore},
		{"Calm", p.CalmScore},
	}
	barWidth := min(width-26, 32)
	for _, sk := range skills {
		bar := components.NewProgressBar(fmt.Sprintf("  %-9s", sk.name),
			float64(sk.score)/100, false, barWidth)
		b.WriteString(bar.View())
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d", sk.score)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Per-quest table.
	b.WriteString(sectionHeader("Quests", width))
	if len(s.stats) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing played yet. Pick a quest from the menu."))
		b.WriteString("\n")
		return b.String()
	}

	header := fmt.Sprintf("  %-16s %6s %8s %10s %6s", "Quest", "Plays", "Best", "Accuracy", "Peak")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(header))
	b.WriteString("\n")
	for _, qs := range s.stats {
		line := fmt.Sprintf("  %-16s %6d %8d %9.0f%% %6d",
			qs.def.Title, qs.plays, qs.bestScore, qs.avgAcc, qs.bestItems)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func sectionHeader(label string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 56)))
	return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  "+label) +
		"\n  " + divider + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
