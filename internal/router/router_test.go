package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/neuroquest/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after popping bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run on replacement screen")
	}

	// Popping should land on the original bottom, not the replaced screen.
	r.Pop()
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first' after pop, got %q", r.Active().Title())
	}
}

func TestUpdateNavigationMessages(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after push message, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "third"}})
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop message, got %d", r.Depth())
	}
}
