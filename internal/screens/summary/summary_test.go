package summary

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/store"
)

func testData() Data {
	def, _ := games.ByType(games.TypeSpeed)
	return Data{
		Def: def,
		Summary: quest.Summary{
			Score:    180,
			XP:       216,
			Accuracy: 90,
			Rounds:   30,
			Correct:  27,
			Wrong:    3,
			MaxCombo: 12,
			Duration: 45 * time.Second,
		},
		Profile: store.Profile{
			XP:         450,
			Level:      3,
			StreakDays: 4,
		},
		PrevLevel: 2,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testData(), nil)
	if s.Title() != "Speed Tap" {
		t.Errorf("Title = %q, want %q", s.Title(), "Speed Tap")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testData(), nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "180") {
		t.Error("expected view to show the score")
	}
	if !strings.Contains(view, "Level up") {
		t.Error("expected level-up callout when the level increased")
	}
}

func TestSummaryScreen_UnlockedAchievements(t *testing.T) {
	data := testData()
	data.Unlocked = []string{"Lightning Reflexes"}
	s := New(data, nil)

	view := s.View(80, 24)
	if !strings.Contains(view, "Lightning Reflexes") {
		t.Error("expected newly unlocked achievement in view")
	}
}

func TestSummaryScreen_SaveError(t *testing.T) {
	data := testData()
	data.SaveErr = errors.New("disk full")
	s := New(data, nil)

	view := s.View(80, 24)
	if !strings.Contains(view, "disk full") {
		t.Error("expected save error in view")
	}
	if strings.Contains(view, "Level up") {
		t.Error("level line should be omitted when the run was not saved")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testData(), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message on enter")
	}
}

func TestSummaryScreen_Replay(t *testing.T) {
	replayed := false
	replay := func() screen.Screen {
		replayed = true
		return New(testData(), nil)
	}
	s := New(testData(), replay)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on replay")
	}
	if !replayed {
		t.Error("expected replay constructor to run")
	}
}
