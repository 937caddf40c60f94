// Package app wires the Bubble Tea program: the screen router, the shared
// header and footer chrome, and the dependencies screens draw on.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/entitlement"
	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/insights"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/screens/home"
	questscreen "github.com/devika/neuroquest/internal/screens/quest"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/layout"
)

// Deps carries the shared services screens depend on.
type Deps struct {
	Store       *store.Store
	Entitlement entitlement.Entitlement
	Insights    *insights.Service
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps    Deps
	router  *router.Router
	stats   layout.HeaderStats
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates an AppModel rooted at the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Store, deps.Entitlement, deps.Insights)
	m := AppModel{
		deps:   deps,
		router: router.New(homeScreen),
	}
	m.loadHeaderStats()
	return m
}

// loadHeaderStats refreshes the level, XP, and streak shown in the header.
func (m *AppModel) loadHeaderStats() {
	prof, err := m.deps.Store.ProfileRepo().Load(context.Background())
	if err != nil {
		return
	}
	m.stats = layout.HeaderStats{
		Level:      prof.Level,
		XP:         prof.XP,
		StreakDays: prof.StreakDays,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Navigation away from a quest means the profile may have changed;
	// refresh the header and give the newly active screen a chance to
	// reload its data.
	switch msg.(type) {
	case router.PopScreenMsg, router.ReplaceScreenMsg:
		cmd := m.router.Update(msg)
		m.loadHeaderStats()
		if r, ok := m.router.Active().(screen.Refresher); ok {
			cmd = tea.Batch(cmd, r.Refresh())
		}
		return m, cmd
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.stats, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for hints, falling back to the
// stock navigation set.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the program at the home screen.
func Run(deps Deps) error {
	return run(newAppModel(deps))
}

// RunQuest starts the program directly inside a quest session, with the
// home screen beneath it on the stack.
func RunQuest(deps Deps, def games.Definition) error {
	m := newAppModel(deps)
	qs, err := questscreen.New(def, deps.Store)
	if err != nil {
		return err
	}
	m.initCmd = m.router.Push(qs)
	return run(m)
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
