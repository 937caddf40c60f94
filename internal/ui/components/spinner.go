package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with NeuroQuest styling.
type Spinner struct {
	Model spinner.Model
	Label string
}

// NewSpinner creates a styled spinner with an optional label.
func NewSpinner(label string) Spinner {
	m := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Secondary)),
	)
	return Spinner{Model: m, Label: label}
}

// Init starts the spinner animation.
func (s Spinner) Init() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the spinner with its label.
func (s Spinner) View() string {
	out := s.Model.View()
	if s.Label != "" {
		out += " " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
	}
	return out
}
