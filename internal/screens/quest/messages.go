package quest

import (
	"time"

	"github.com/devika/neuroquest/internal/quest"
	"github.com/devika/neuroquest/internal/store"
)

// tickMsg drives countdown rendering and the session time budget check.
type tickMsg time.Time

// warmupDoneMsg ends the get-ready phase. seq guards against stale timers
// after a screen transition.
type warmupDoneMsg struct {
	seq int
}

// showDoneMsg ends the memorization display and opens input.
type showDoneMsg struct {
	seq int
}

// deadlineMsg fires when the round deadline elapses. The machine token
// makes a late timer for an already-resolved round a no-op.
type deadlineMsg struct {
	seq   int
	token int
}

// feedbackDoneMsg ends the post-round feedback pause.
type feedbackDoneMsg struct {
	seq int
}

// rulePauseDoneMsg ends the rule-switch announcement pause.
type rulePauseDoneMsg struct {
	seq int
}

// savedMsg reports a persisted session: the stored result, the updated
// profile, and any achievements the session unlocked.
type savedMsg struct {
	result    store.QuestResult
	summary   quest.Summary
	profile   store.Profile
	prevLevel int
	unlocked  []string
}

// saveFailedMsg reports a persistence failure. The session summary is
// still shown so the run is not silently lost.
type saveFailedMsg struct {
	err error
}
