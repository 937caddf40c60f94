// Package summary displays the results of one finished quest session.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/leveling"
	"github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/layout"
	"github.com/devika/neuroquest/internal/ui/theme"
)

// Data carries everything the summary shows: the finalized session, the
// updated profile, and any achievements the run unlocked. SaveErr is set
// when persistence failed and the run was not recorded.
type Data struct {
	Def       games.Definition
	Summary   quest.Summary
	Profile   store.Profile
	PrevLevel int
	Unlocked  []string
	SaveErr   error
}

// SummaryScreen implements screen.Screen for the post-quest recap.
type SummaryScreen struct {
	data   Data
	replay func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. replay builds a fresh session of the
// same quest; it may return nil when one cannot be started.
func New(data Data, replay func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{data: data, replay: replay}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.data.Def.Title
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		if s.replay == nil {
			return s, nil
		}
		next := s.replay()
		if next == nil {
			return s, nil
		}
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.data.Summary

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quest complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d:%02d", s.data.Def.Title, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Accuracy: %.0f%%        XP: +%d",
		sum.Score, sum.Accuracy, sum.XP)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	detail := fmt.Sprintf("Correct: %d   Wrong: %d   Best combo: %dx",
		sum.Correct, sum.Wrong+sum.Timeout, sum.MaxCombo)
	if sum.AvgLatencyMs > 0 {
		detail += fmt.Sprintf("   Avg: %dms", sum.AvgLatencyMs)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")

	if s.data.SaveErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Could not save this run: %v", s.data.SaveErr)))
		b.WriteString("\n")
		return b.String()
	}

	// Level line, highlighted on a level-up.
	prof := s.data.Profile
	levelLine := fmt.Sprintf("Level %d %s · %d XP total",
		prof.Level, leveling.TitleForLevel(prof.Level), prof.XP)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if prof.Level > s.data.PrevLevel {
		levelLine = fmt.Sprintf("⬆ Level up!  %s", levelLine)
		levelStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(levelStyle.Render(levelLine)))
	b.WriteString("\n")

	if prof.StreakDays > 1 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("★ %d day streak", prof.StreakDays)))
		b.WriteString("\n")
	}

	if len(s.data.Unlocked) > 0 {
		b.WriteString("\n")
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Achievements")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, name := range s.data.Unlocked {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().
					Foreground(theme.Accent).
					Bold(true).
					Render("🏆 "+name)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
