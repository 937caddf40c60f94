// Package quest implements the quest play screen: it drives the round
// machine with Bubble Tea timers, translates keys into responses per
// stimulus kind, and persists the session when the machine finishes.
package quest

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/devika/neuroquest/internal/achievements"
	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/profile"
	qst "github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/router"
	"github.com/devika/neuroquest/internal/screen"
	"github.com/devika/neuroquest/internal/screens/summary"
	"github.com/devika/neuroquest/internal/store"
	"github.com/devika/neuroquest/internal/ui/layout"
)

// uiState is the screen's presentation phase. It shadows the machine's
// phase but adds states the machine doesn't know about (quit confirm,
// saving).
type uiState int

const (
	stateWarmup uiState = iota
	stateShowing
	stateInput
	stateFeedback
	stateRulePause
	stateSaving
	stateError
)

// tickInterval is the render clock for countdowns and the breathing guide.
const tickInterval = 200 * time.Millisecond

// QuestScreen implements screen.Screen for one active quest session.
type QuestScreen struct {
	session *games.Session
	st      *store.Store

	state uiState
	seq   int // bumped on every transition so stale timers are ignored

	stim   qst.Stimulus
	token  int // deadline token for the active round
	now    time.Time

	// Grid input.
	cursor int
	picked int // first flipped card in a pair quest, -1 when none

	// Sequence input.
	entry []int

	deadline    time.Time // zero when the round has no deadline
	warmupEnds  time.Time
	showStarted time.Time

	last        qst.RoundOutcome
	lastResp    qst.Response
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*QuestScreen)(nil)
var _ screen.KeyHintProvider = (*QuestScreen)(nil)

// New starts a fresh session of the given quest.
func New(def games.Definition, st *store.Store) (*QuestScreen, error) {
	sess, err := def.NewSession()
	if err != nil {
		return nil, err
	}
	return &QuestScreen{
		session: sess,
		st:      st,
		picked:  -1,
	}, nil
}

func (s *QuestScreen) Init() tea.Cmd {
	now := time.Now()
	s.now = now

	delay := s.session.Machine.Start(now)
	if delay <= 0 {
		cmd := s.beginRound(now)
		return tea.Batch(tickCmd(), cmd)
	}

	s.state = stateWarmup
	s.warmupEnds = now.Add(delay)
	s.seq++
	return tea.Batch(tickCmd(), after(delay, warmupDoneMsg{seq: s.seq}))
}

func (s *QuestScreen) Title() string {
	return s.session.Def.Title
}

func (s *QuestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick(msg)

	case warmupDoneMsg:
		if msg.seq != s.seq || s.state != stateWarmup {
			return s, nil
		}
		return s, s.beginRound(time.Now())

	case showDoneMsg:
		if msg.seq != s.seq || s.state != stateShowing {
			return s, nil
		}
		return s, s.openInput(time.Now())

	case deadlineMsg:
		if msg.seq != s.seq {
			return s, nil
		}
		now := time.Now()
		ro, ok := s.session.Machine.ExpireDeadline(msg.token, now)
		if !ok {
			return s, nil
		}
		s.session.Observe(s.stim, qst.Response{}, ro)
		s.last = ro
		s.lastResp = qst.Response{}
		return s, s.enterFeedback(now)

	case feedbackDoneMsg:
		if msg.seq != s.seq || s.state != stateFeedback {
			return s, nil
		}
		return s, s.advance(time.Now())

	case rulePauseDoneMsg:
		if msg.seq != s.seq || s.state != stateRulePause {
			return s, nil
		}
		return s, s.beginRound(time.Now())

	case savedMsg:
		return s, s.showSummary(summary.Data{
			Def:       s.session.Def,
			Summary:   msg.summary,
			Profile:   msg.profile,
			PrevLevel: msg.prevLevel,
			Unlocked:  msg.unlocked,
		})

	case saveFailedMsg:
		sum := s.session.Summarize(time.Now())
		return s, s.showSummary(summary.Data{
			Def:     s.session.Def,
			Summary: sum,
			SaveErr: msg.err,
		})

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuestScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	s.now = time.Time(msg)

	if s.state == stateSaving || s.state == stateError {
		return s, nil
	}

	// A hard stop when the session time budget runs out mid-round.
	m := s.session.Machine
	if m.Config().TimeBudget > 0 && m.Expired(s.now) && m.Phase() != qst.PhaseFinished {
		m.Finish(s.now)
		return s, s.finish(s.now)
	}

	return s, tickCmd()
}

func (s *QuestScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		if s.state == stateSaving || s.state == stateError {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.quitConfirm = true
		return s, nil
	}

	if s.state != stateInput {
		return s, nil
	}

	switch s.stim.Kind {
	case qst.KindSingle:
		if key == "space" || key == " " || key == "enter" {
			return s, s.resolve(qst.Response{Go: true})
		}

	case qst.KindGrid:
		return s.handleGridKey(key)

	case qst.KindOptions:
		if i, ok := digitIndex(key, len(s.stim.Options)); ok {
			return s, s.resolve(qst.Response{Option: i})
		}

	case qst.KindSequence:
		return s.handleSequenceKey(key)
	}

	return s, nil
}

// handleGridKey moves the cursor and selects cells. Pair quests collect
// two cells into Response.Sequence; every other grid quest answers with
// the single cursor cell.
func (s *QuestScreen) handleGridKey(key string) (screen.Screen, tea.Cmd) {
	cols := s.stim.Columns
	if cols <= 0 {
		cols = 1
	}
	n := len(s.stim.Cells)

	switch key {
	case "left", "h":
		if s.cursor%cols > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor%cols < cols-1 && s.cursor+1 < n {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-cols >= 0 {
			s.cursor -= cols
		}
	case "down", "j":
		if s.cursor+cols < n {
			s.cursor += cols
		}
	case "enter", "space", " ":
		if s.cursor < 0 || s.cursor >= n || s.stim.Cells[s.cursor].Matched {
			return s, nil
		}
		if s.pairQuest() {
			if s.picked < 0 {
				s.picked = s.cursor
				return s, nil
			}
			if s.cursor == s.picked {
				return s, nil
			}
			return s, s.resolve(qst.Response{Sequence: []int{s.picked, s.cursor}})
		}
		return s, s.resolve(qst.Response{Cell: s.cursor})
	}
	return s, nil
}

// handleSequenceKey collects the recall. Color sequences use number keys;
// board paths are retraced with the grid cursor. The answer submits
// itself once it reaches the target length.
func (s *QuestScreen) handleSequenceKey(key string) (screen.Screen, tea.Cmd) {
	if key == "backspace" && len(s.entry) > 0 {
		s.entry = s.entry[:len(s.entry)-1]
		return s, nil
	}

	if len(s.stim.Cells) > 0 {
		cols := s.stim.Columns
		if cols <= 0 {
			cols = 1
		}
		n := len(s.stim.Cells)
		switch key {
		case "left", "h":
			if s.cursor%cols > 0 {
				s.cursor--
			}
		case "right", "l":
			if s.cursor%cols < cols-1 && s.cursor+1 < n {
				s.cursor++
			}
		case "up", "k":
			if s.cursor-cols >= 0 {
				s.cursor -= cols
			}
		case "down", "j":
			if s.cursor+cols < n {
				s.cursor += cols
			}
		case "enter", "space", " ":
			s.entry = append(s.entry, s.cursor)
			if len(s.entry) == len(s.stim.Sequence) {
				return s, s.resolve(qst.Response{Sequence: s.entry})
			}
		}
		return s, nil
	}

	if i, ok := digitIndex(key, len(s.stim.Options)); ok {
		s.entry = append(s.entry, i)
		if len(s.entry) == len(s.stim.Sequence) {
			return s, s.resolve(qst.Response{Sequence: s.entry})
		}
	}
	return s, nil
}

// pairQuest reports whether grid selections come in twos.
func (s *QuestScreen) pairQuest() bool {
	return s.session.Def.Type == games.TypeMindMatch
}

func (s *QuestScreen) beginRound(now time.Time) tea.Cmd {
	stim, err := s.session.Machine.BeginRound(now)
	if err != nil {
		if err == qst.ErrSessionComplete {
			return s.finish(now)
		}
		s.state = stateError
		s.errMsg = err.Error()
		return nil
	}

	s.stim = stim
	s.cursor = 0
	s.picked = -1
	s.entry = nil
	s.deadline = time.Time{}
	s.seq++

	if stim.ShowFor > 0 {
		s.state = stateShowing
		s.showStarted = now
		return after(stim.ShowFor, showDoneMsg{seq: s.seq})
	}
	return s.openInput(now)
}

func (s *QuestScreen) openInput(now time.Time) tea.Cmd {
	d, token := s.session.Machine.OpenInput(now)
	s.token = token
	s.state = stateInput
	s.seq++

	if d > 0 {
		s.deadline = now.Add(d)
		return after(d, deadlineMsg{seq: s.seq, token: token})
	}
	s.deadline = time.Time{}
	return nil
}

func (s *QuestScreen) resolve(resp qst.Response) tea.Cmd {
	now := time.Now()
	ro, ok := s.session.Machine.Respond(resp, now)
	if !ok {
		return nil
	}
	s.session.Observe(s.stim, resp, ro)
	s.last = ro
	s.lastResp = resp
	return s.enterFeedback(now)
}

func (s *QuestScreen) enterFeedback(now time.Time) tea.Cmd {
	pause := s.session.Machine.Config().FeedbackPause
	if pause <= 0 {
		return s.advance(now)
	}
	s.state = stateFeedback
	s.seq++
	return after(pause, feedbackDoneMsg{seq: s.seq})
}

func (s *QuestScreen) advance(now time.Time) tea.Cmd {
	switch s.session.Machine.Advance(now) {
	case qst.StepFinished:
		return s.finish(now)
	case qst.StepRuleSwitch:
		pause := s.session.Machine.Config().RuleSwitchPause
		if pause <= 0 {
			return s.beginRound(now)
		}
		s.state = stateRulePause
		s.seq++
		return after(pause, rulePauseDoneMsg{seq: s.seq})
	default:
		return s.beginRound(now)
	}
}

func (s *QuestScreen) finish(now time.Time) tea.Cmd {
	s.state = stateSaving
	s.seq++
	sum := s.session.Summarize(now)
	return s.persistCmd(sum, now)
}

// persistCmd stores the result, folds the session into the profile, and
// diffs achievement state to find newly unlocked ones.
func (s *QuestScreen) persistCmd(sum qst.Summary, now time.Time) tea.Cmd {
	def := s.session.Def
	st := s.st
	return func() tea.Msg {
		ctx := context.Background()
		results := st.ResultRepo()
		profiles := st.ProfileRepo()

		before, err := results.All(ctx)
		if err != nil {
			return saveFailedMsg{err: err}
		}

		prof, err := profiles.Load(ctx)
		if err != nil {
			return saveFailedMsg{err: err}
		}
		prevLevel := prof.Level

		res := store.QuestResult{
			ID:            uuid.NewString(),
			QuestType:     string(def.Type),
			Score:         sum.Score,
			Accuracy:      sum.Accuracy,
			XPEarned:      sum.XP,
			Items:         sum.Items,
			Errors:        sum.Wrong + sum.Timeout,
			MaxCombo:      sum.MaxCombo,
			BestLatencyMs: sum.BestLatencyMs,
			AvgLatencyMs:  sum.AvgLatencyMs,
			DurationMs:    int(sum.Duration.Milliseconds()),
			CompletedAt:   now,
		}
		if err := results.Insert(ctx, res); err != nil {
			return saveFailedMsg{err: err}
		}

		profile.ApplySession(&prof, def, sum, now)
		if err := profiles.Save(ctx, prof); err != nil {
			return saveFailedMsg{err: err}
		}

		after, err := results.All(ctx)
		if err != nil {
			return saveFailedMsg{err: err}
		}

		return savedMsg{
			result:    res,
			summary:   sum,
			profile:   prof,
			prevLevel: prevLevel,
			unlocked:  newlyUnlocked(before, after),
		}
	}
}

// newlyUnlocked returns the names of achievements unlocked by the latest
// session, by diffing the evaluations before and after its insert.
func newlyUnlocked(before, after []store.QuestResult) []string {
	was := make(map[string]bool)
	for _, r := range achievements.Evaluate(before) {
		if r.Unlocked {
			was[r.ID] = true
		}
	}
	var names []string
	for _, r := range achievements.Evaluate(after) {
		if r.Unlocked && !was[r.ID] {
			names = append(names, r.Name)
		}
	}
	return names
}

// showSummary swaps this screen for the summary so Esc returns straight
// to the menu.
func (s *QuestScreen) showSummary(data summary.Data) tea.Cmd {
	def := s.session.Def
	st := s.st
	replay := func() screen.Screen {
		next, err := New(def, st)
		if err != nil {
			return nil
		}
		return next
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(data, replay)}
	}
}

func (s *QuestScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon quest"},
			{Key: "N", Description: "Keep playing"},
		}
	}

	if s.state != stateInput {
		return []layout.KeyHint{{Key: "Esc", Description: "Quit"}}
	}

	var hints []layout.KeyHint
	switch s.stim.Kind {
	case qst.KindSingle:
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Tap"})
	case qst.KindGrid:
		hints = append(hints,
			layout.KeyHint{Key: "↑↓←→", Description: "Move"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	case qst.KindOptions:
		hints = append(hints, layout.KeyHint{Key: "1-4", Description: "Answer"})
	case qst.KindSequence:
		if len(s.stim.Cells) > 0 {
			hints = append(hints,
				layout.KeyHint{Key: "↑↓←→", Description: "Move"},
				layout.KeyHint{Key: "Enter", Description: "Step"},
			)
		} else {
			hints = append(hints,
				layout.KeyHint{Key: "1-4", Description: "Color"},
				layout.KeyHint{Key: "Backspace", Description: "Undo"},
			)
		}
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

// digitIndex maps a number key to a zero-based index within bounds.
func digitIndex(key string, n int) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	i := int(key[0] - '1')
	if i >= n {
		return 0, false
	}
	return i, true
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
