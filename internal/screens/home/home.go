// Package home implements the main menu: the quest catalog with premium
// gating, plus entries for progress, achievements, and AI insights.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devika/neuroquest/internal/achievements"
	"github.com/devika/neuroquest/internal/entitlement"
	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/insights"
	"github.com/devika/neuroquest/internal/leveling"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	achievementsscreen "github.com/devika/neuroquest/internal/screens/achievements"
	insightsscreen "github.com/devika/neuroquest/internal/screens/insights"
	"github.com/devika/neuroquest/internal/screens/progress"
	questscreen "github.com/devika/neuroquest/internal/screens/quest"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/components"
	"github.com/devika/neuroquest/internal/ui/theme"
)

// HomeScreen is the application's main menu.
type HomeScreen struct {
	st  *store.Store
	ent entitlement.Entitlement

	menu components.Menu

	profile      store.Profile
	questsPlayed int
	unlocked     int
	totalAwards  int
	errMsg       string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and loads the stats strip.
func New(st *store.Store, ent entitlement.Entitlement, insightsSvc *insights.Service) *HomeScreen {
	h := &HomeScreen{st: st, ent: ent}

	var items []components.MenuItem
	for _, def := range games.All() {
		def := def
		locked := !ent.Allows(def)
		label := def.Title
		if def.Premium {
			label += " ✦"
		}
		items = append(items, components.MenuItem{
			Label:    label,
			Tagline:  def.Tagline,
			Disabled: locked,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					qs, err := questscreen.New(def, st)
					if err != nil {
						return nil
					}
					return router.PushScreenMsg{Screen: qs}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "Progress Report", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(st)}
			}
		}},
		components.MenuItem{Label: "Achievements", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievementsscreen.New(st)}
			}
		}},
		components.MenuItem{Label: "AI Insights", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: insightsscreen.New(insightsSvc)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	h.loadStats()
	return h
}

// loadStats pulls the profile and history aggregates shown in the strip.
func (h *HomeScreen) loadStats() {
	ctx := context.Background()

	prof, err := h.st.ProfileRepo().Load(ctx)
	if err != nil {
		h.errMsg = err.Error()
		return
	}
	h.profile = prof

	count, err := h.st.ResultRepo().Count(ctx)
	if err != nil {
		h.errMsg = err.Error()
		return
	}
	h.questsPlayed = count

	history, err := h.st.ResultRepo().All(ctx)
	if err != nil {
		h.errMsg = err.Error()
		return
	}
	records := achievements.Evaluate(history)
	h.unlocked = achievements.UnlockedCount(records)
	h.totalAwards = len(records)
	h.errMsg = ""
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads the stats strip after a session finishes.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.loadStats()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(renderStatsStrip(h.profile, h.questsPlayed, h.unlocked, h.totalAwards, width))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  " + h.errMsg))
	}

	if !h.ent.Premium {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  ✦ premium quests unlock with NEUROQUEST_PREMIUM=1"))
	}

	return b.String()
}

// renderStatsStrip shows the player's standing above the menu.
func renderStatsStrip(p store.Profile, played, unlocked, total, width int) string {
	title := leveling.TitleForLevel(p.Level)

	line := fmt.Sprintf("  Lv %d %s   ·   %d XP   ·   ★ %d day streak   ·   %d quests   ·   🏆 %d/%d",
		p.Level, title, p.XP, p.StreakDays, played, unlocked, total)

	bar := components.NewProgressBar("", leveling.LevelProgress(p.XP), false, min(width-6, 48))

	return lipgloss.NewStyle().Foreground(theme.Text).Render(line) +
		"\n  " + bar.View()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
