package quest

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/games"
	qst "github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/ui/theme"
)

func (s *QuestScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if s.quitConfirm {
		return s.renderQuitConfirm(width)
	}

	switch s.state {
	case stateWarmup:
		return s.renderWarmup(width)
	case stateRulePause:
		return s.renderRulePause(width)
	case stateSaving:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Saving...")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.state == stateShowing {
		b.WriteString(s.renderShowing(width))
	} else {
		b.WriteString(s.renderStimulus(width))
	}

	if s.state == stateFeedback {
		b.WriteString("\n\n")
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderStatusLine shows round progress and score on the left, the
// running clock on the right.
func (s *QuestScreen) renderStatusLine(width int) string {
	m := s.session.Machine
	t := m.Tally()

	var progress string
	if m.Config().Rounds > 0 {
		progress = fmt.Sprintf("Round %d/%d", m.Round(), m.Config().Rounds)
	} else {
		progress = fmt.Sprintf("Round %d", m.Round())
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + progress)
	left += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("   Score %d", t.Score))
	if t.Combo >= 2 {
		left += lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("   %dx combo", t.Combo))
	}

	var clock string
	if m.Config().TimeBudget > 0 {
		clock = formatClock(m.TimeLeft(s.now))
	} else if !s.deadline.IsZero() && s.state == stateInput {
		clock = formatClock(s.deadline.Sub(s.now))
	}
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(clock)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		return left + strings.Repeat(" ", pad) + right
	}
	return left
}

func (s *QuestScreen) renderWarmup(width int) string {
	secs := int(s.warmupEnds.Sub(s.now).Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	msg := fmt.Sprintf("Get ready... %d", secs)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("\n\n\n" + msg)
}

func (s *QuestScreen) renderRulePause(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("\n\n\n⟳ Rule change!")
}

func (s *QuestScreen) renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n\nAbandon this quest? Progress will be lost.\n\n" +
			"Press Y to quit, N to keep playing")
}

// renderShowing draws the memorization display: a color sequence all at
// once, or a board path lit one cell at a time.
func (s *QuestScreen) renderShowing(width int) string {
	stim := s.stim

	if len(stim.Cells) > 0 {
		revealed := len(stim.Sequence)
		if n := len(stim.Sequence); n > 0 && stim.ShowFor > 0 {
			step := stim.ShowFor / time.Duration(n)
			if step > 0 {
				revealed = int(s.now.Sub(s.showStarted)/step) + 1
				if revealed > n {
					revealed = n
				}
			}
		}
		cells := make([]qst.Cell, len(stim.Cells))
		copy(cells, stim.Cells)
		for i, pos := range stim.Sequence {
			if i >= revealed {
				break
			}
			cells[pos].Label = fmt.Sprintf("%d", i+1)
		}
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(stim.Prompt))
		b.WriteString("\n\n")
		b.WriteString(s.renderGrid(width, cells, -1, false))
		return b.String()
	}

	var parts []string
	for _, idx := range stim.Sequence {
		if idx < 0 || idx >= len(stim.Options) {
			continue
		}
		name := stim.Options[idx]
		parts = append(parts, lipgloss.NewStyle().
			Foreground(inkColor(name)).
			Bold(true).
			Render("■ "+name))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stim.Prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   ")))
	return b.String()
}

func (s *QuestScreen) renderStimulus(width int) string {
	stim := s.stim

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(stim.Prompt))
	b.WriteString("\n\n")

	switch stim.Kind {
	case qst.KindSingle:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(inkColor(stim.Color)).
			Bold(true).
			Render(stim.Display))

	case qst.KindGrid:
		b.WriteString(s.renderGrid(width, s.gridCells(), s.cursor, s.pairQuest()))

	case qst.KindOptions:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render(stim.Display))
		b.WriteString("\n\n")
		b.WriteString(s.renderOptions(width))

	case qst.KindSequence:
		if len(stim.Cells) > 0 {
			b.WriteString(s.renderGrid(width, s.entryCells(), s.cursor, false))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Step %d of %d", len(s.entry)+1, len(stim.Sequence))))
		} else {
			b.WriteString(s.renderColorKeys(width))
			b.WriteString("\n\n")
			b.WriteString(s.renderEntry(width))
		}

	case qst.KindPassive:
		b.WriteString(s.renderBreathing(width))
	}

	return b.String()
}

// gridCells prepares the board for display. Pair quests hide unmatched
// labels except the first flipped card.
func (s *QuestScreen) gridCells() []qst.Cell {
	cells := make([]qst.Cell, len(s.stim.Cells))
	copy(cells, s.stim.Cells)

	if !s.pairQuest() {
		return cells
	}
	for i := range cells {
		switch {
		case cells[i].Matched:
			// Cleared pairs stay face up.
		case i == s.picked:
			// The first flip stays revealed until the second lands.
		case s.state == stateFeedback && len(s.lastResp.Sequence) == 2 &&
			(i == s.lastResp.Sequence[0] || i == s.lastResp.Sequence[1]):
			// Both cards of the attempt show during feedback.
		default:
			cells[i].Label = "▢"
		}
	}
	return cells
}

// entryCells overlays the retraced path on a board stimulus.
func (s *QuestScreen) entryCells() []qst.Cell {
	cells := make([]qst.Cell, len(s.stim.Cells))
	copy(cells, s.stim.Cells)
	for i, pos := range s.entry {
		if pos >= 0 && pos < len(cells) {
			cells[pos].Label = fmt.Sprintf("%d", i+1)
		}
	}
	return cells
}

func (s *QuestScreen) renderGrid(width int, cells []qst.Cell, cursor int, hideMatched bool) string {
	cols := s.stim.Columns
	if cols <= 0 {
		cols = 1
	}

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		var row strings.Builder
		for i := start; i < end; i++ {
			cell := cells[i]
			label := " " + cell.Label + " "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			switch {
			case i == cursor && s.state == stateInput:
				style = theme.CellCursor
			case cell.Matched && hideMatched:
				style = theme.Locked
			case cell.Matched:
				style = lipgloss.NewStyle().Foreground(theme.Success)
			}
			row.WriteString(style.Render(label))
		}
		rows = append(rows, row.String())
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(rows, "\n"))
}

func (s *QuestScreen) renderOptions(width int) string {
	var b strings.Builder
	for i, opt := range s.stim.Options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderColorKeys shows the number-to-color legend for sequence recall.
func (s *QuestScreen) renderColorKeys(width int) string {
	var parts []string
	for i, name := range s.stim.Options {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(inkColor(name)).
			Render(fmt.Sprintf("%d %s", i+1, name)))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "   "))
}

func (s *QuestScreen) renderEntry(width int) string {
	if len(s.entry) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Enter %d colors", len(s.stim.Sequence)))
	}

	var parts []string
	for _, idx := range s.entry {
		if idx < 0 || idx >= len(s.stim.Options) {
			continue
		}
		name := s.stim.Options[idx]
		parts = append(parts, lipgloss.NewStyle().
			Foreground(inkColor(name)).
			Bold(true).
			Render("■"))
	}
	for i := len(s.entry); i < len(s.stim.Sequence); i++ {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(theme.Border).
			Render("·"))
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, " "))
}

// renderBreathing draws the guided phase of the current breathing cycle
// from the time remaining on the round deadline.
func (s *QuestScreen) renderBreathing(width int) string {
	cycle := games.BreatheIn + games.BreatheHold + games.BreatheOut
	elapsed := cycle
	if !s.deadline.IsZero() {
		elapsed = cycle - s.deadline.Sub(s.now)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > cycle {
		elapsed = cycle
	}

	var phase string
	var phaseStart, phaseLen time.Duration
	switch {
	case elapsed < games.BreatheIn:
		phase, phaseStart, phaseLen = "Breathe in", 0, games.BreatheIn
	case elapsed < games.BreatheIn+games.BreatheHold:
		phase, phaseStart, phaseLen = "Hold", games.BreatheIn, games.BreatheHold
	default:
		phase, phaseStart, phaseLen = "Breathe out", games.BreatheIn+games.BreatheHold, games.BreatheOut
	}

	frac := float64(elapsed-phaseStart) / float64(phaseLen)
	barWidth := 24
	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(phase))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	return b.String()
}

func (s *QuestScreen) renderFeedback(width int) string {
	var msg string
	var style lipgloss.Style

	switch s.last.Outcome {
	case qst.OutcomeCorrect:
		msg = "✓ Correct"
		if s.last.Points > 0 {
			msg = fmt.Sprintf("✓ +%d", s.last.Points)
		}
		style = theme.Correct
	case qst.OutcomeWrong:
		msg = "✗ Wrong"
		if s.last.Points < 0 {
			msg = fmt.Sprintf("✗ %d", s.last.Points)
		}
		style = theme.Incorrect
	default:
		msg = "⏱ Too slow"
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(style.Render(msg))
}

// inkColor maps a stimulus color name to the palette.
func inkColor(name string) color.Color {
	switch strings.ToLower(name) {
	case "green":
		return theme.Success
	case "red":
		return theme.Error
	case "blue":
		return theme.Secondary
	case "yellow":
		return theme.Accent
	case "purple":
		return theme.Primary
	default:
		return theme.Text
	}
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
