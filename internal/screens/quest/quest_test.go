package quest

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/devika/neuroquest/internal/games"
	qst "github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testScreen(t *testing.T, typ games.Type) *QuestScreen {
	t.Helper()
	def, err := games.ByType(typ)
	if err != nil {
		t.Fatalf("lookup quest: %v", err)
	}
	s, err := New(def, testStore(t))
	if err != nil {
		t.Fatalf("new quest screen: %v", err)
	}
	return s
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestQuestScreen_Title(t *testing.T) {
	s := testScreen(t, games.TypeSpeed)
	if s.Title() != "Speed Tap" {
		t.Errorf("Title = %q, want %q", s.Title(), "Speed Tap")
	}
}

func TestQuestScreen_WarmupThenInput(t *testing.T) {
	s := testScreen(t, games.TypeSpeed)

	s.Init()
	if s.state != stateWarmup {
		t.Fatalf("state after Init = %d, want warmup", s.state)
	}

	s.Update(warmupDoneMsg{seq: s.seq})
	if s.state != stateInput {
		t.Fatalf("state after warmup = %d, want input", s.state)
	}
	if s.session.Machine.Round() != 1 {
		t.Errorf("Round = %d, want 1", s.session.Machine.Round())
	}
}

func TestQuestScreen_TapResolvesRound(t *testing.T) {
	s := testScreen(t, games.TypeSpeed)
	s.Init()
	s.Update(warmupDoneMsg{seq: s.seq})

	s.Update(specialKey(tea.KeyEnter))

	tally := s.session.Machine.Tally()
	if tally.Rounds != 1 {
		t.Fatalf("Rounds = %d, want 1", tally.Rounds)
	}
	if s.state != stateFeedback {
		t.Errorf("state = %d, want feedback", s.state)
	}
}

func TestQuestScreen_StaleTimerIgnored(t *testing.T) {
	s := testScreen(t, games.TypeSpeed)
	s.Init()
	oldSeq := s.seq
	s.Update(warmupDoneMsg{seq: oldSeq})

	// A stale deadline from before the transition must not resolve
	// the fresh round.
	s.Update(deadlineMsg{seq: oldSeq, token: 0})
	if got := s.session.Machine.Tally().Rounds; got != 0 {
		t.Errorf("stale deadline resolved a round: Rounds = %d", got)
	}
}

func TestQuestScreen_GridCursor(t *testing.T) {
	s := testScreen(t, games.TypeFocus)
	s.Init()
	if s.state != stateInput {
		// Focus has no warm-up; BeginRound runs inside Init.
		t.Fatalf("state after Init = %d, want input", s.state)
	}
	if s.stim.Columns != 8 {
		t.Fatalf("Columns = %d, want 8", s.stim.Columns)
	}

	s.Update(keyPress('l'))
	s.Update(keyPress('l'))
	s.Update(keyPress('j'))
	if s.cursor != 10 {
		t.Errorf("cursor = %d, want 10", s.cursor)
	}

	s.Update(keyPress('h'))
	s.Update(keyPress('k'))
	if s.cursor != 1 {
		t.Errorf("cursor = %d, want 1", s.cursor)
	}

	// The cursor cannot leave the board.
	s.cursor = 0
	s.Update(keyPress('h'))
	s.Update(keyPress('k'))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0 at the corner", s.cursor)
	}
}

func TestQuestScreen_SequenceAutoSubmit(t *testing.T) {
	s := testScreen(t, games.TypeMemory)
	now := time.Now()

	s.session.Machine.Start(now)
	s.beginRound(now)
	if s.state != stateShowing {
		t.Fatalf("state = %d, want showing", s.state)
	}
	s.openInput(now)

	// Type the exact sequence; the last digit submits.
	for _, v := range s.stim.Sequence {
		s.handleSequenceKey(string(rune('1' + v)))
	}

	tally := s.session.Machine.Tally()
	if tally.Rounds != 1 {
		t.Fatalf("Rounds = %d, want 1", tally.Rounds)
	}
	if tally.Correct != 1 {
		t.Errorf("Correct = %d, want 1 for an exact recall", tally.Correct)
	}
}

func TestQuestScreen_SequenceBackspace(t *testing.T) {
	s := testScreen(t, games.TypeMemory)
	now := time.Now()

	s.session.Machine.Start(now)
	s.beginRound(now)
	s.openInput(now)

	s.handleSequenceKey("1")
	s.handleSequenceKey("2")
	s.handleSequenceKey("backspace")
	if len(s.entry) != 1 || s.entry[0] != 0 {
		t.Errorf("entry = %v, want [0] after backspace", s.entry)
	}
}

func TestQuestScreen_QuitConfirm(t *testing.T) {
	s := testScreen(t, games.TypeSpeed)
	s.Init()
	s.Update(warmupDoneMsg{seq: s.seq})

	s.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.quitConfirm {
		t.Fatal("expected quit confirmation dismissed by n")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a pop message after confirming quit")
	}
}

func TestDigitIndex(t *testing.T) {
	tests := []struct {
		key    string
		n      int
		want   int
		wantOK bool
	}{
		{"1", 4, 0, true},
		{"4", 4, 3, true},
		{"5", 4, 0, false},
		{"0", 4, 0, false},
		{"a", 4, 0, false},
		{"enter", 4, 0, false},
	}
	for _, tt := range tests {
		got, ok := digitIndex(tt.key, tt.n)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("digitIndex(%q, %d) = (%d, %v), want (%d, %v)",
				tt.key, tt.n, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNewlyUnlocked(t *testing.T) {
	before := []store.QuestResult{}
	after := []store.QuestResult{
		{ID: "r1", QuestType: string(games.TypeSpeed), Accuracy: 80},
	}

	names := newlyUnlocked(before, after)
	if len(names) != 1 || names[0] != "First Steps" {
		t.Errorf("newlyUnlocked = %v, want [First Steps]", names)
	}

	// No change in history means nothing newly unlocked.
	if got := newlyUnlocked(after, after); len(got) != 0 {
		t.Errorf("expected no new unlocks, got %v", got)
	}
}

func TestQuestScreen_PairSelection(t *testing.T) {
	s := testScreen(t, games.TypeMindMatch)
	now := time.Now()

	s.session.Machine.Start(now)
	s.beginRound(now)
	s.openInput(now)

	if s.stim.Kind != qst.KindGrid {
		t.Fatalf("Kind = %d, want grid", s.stim.Kind)
	}

	// First enter flips a card, second on the same cell is a no-op.
	s.Update(specialKey(tea.KeyEnter))
	if s.picked != 0 {
		t.Fatalf("picked = %d, want 0", s.picked)
	}
	s.Update(specialKey(tea.KeyEnter))
	if got := s.session.Machine.Tally().Rounds; got != 0 {
		t.Fatalf("same-cell flip resolved a round: Rounds = %d", got)
	}

	// A second distinct cell resolves the attempt.
	s.Update(keyPress('l'))
	s.Update(specialKey(tea.KeyEnter))
	if got := s.session.Machine.Tally().Rounds; got != 1 {
		t.Errorf("Rounds = %d, want 1 after a pair attempt", got)
	}
}
