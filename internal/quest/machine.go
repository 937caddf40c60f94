package quest

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Phase is the machine's lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseShowing
	PhaseActive
	PhaseResolved
	PhaseFinished
)

// Step tells the driver what comes after a resolved round.
type Step int

const (
	StepNextRound Step = iota
	StepRuleSwitch
	StepFinished
)

// Machine drives one quest session. It is not safe for concurrent use;
// a Bubble Tea update loop (or a test) drives it from a single goroutine.
// Timers live in the driver — the machine hands out deadline tokens so
// a stale timer expiry can never resolve a later round.
type Machine struct {
	cfg   Config
	gen   Generator
	check Checker
	score Scorer
	rng   *rand.Rand

	phase    Phase
	round    int // rounds begun so far
	rule     int
	token    int
	resolved bool

	stim        Stimulus
	tally       Tally
	lastOutcome RoundOutcome

	startedAt     time.Time // session start (includes warm-up)
	playStartedAt time.Time // first round start (time budget base)
	roundOpenedAt time.Time // input-open time for latency measurement
}

// Option customizes a Machine.
type Option func(*Machine)

// WithChecker overrides the default response matcher.
func WithChecker(c Checker) Option {
	return func(m *Machine) { m.check = c }
}

// WithScorer overrides the default points policy.
func WithScorer(s Scorer) Option {
	return func(m *Machine) { m.score = s }
}

// WithRand sets the random source, for deterministic tests.
func WithRand(rng *rand.Rand) Option {
	return func(m *Machine) { m.rng = rng }
}

// NewMachine builds a machine for one session.
func NewMachine(cfg Config, gen Generator, opts ...Option) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, fmt.Errorf("quest machine: generator is required")
	}

	m := &Machine{
		cfg:   cfg,
		gen:   gen,
		check: defaultCheck,
		score: defaultScore,
		phase: PhaseIdle,
	}
	m.tally.Score = cfg.StartScore

	for _, opt := range opts {
		opt(m)
	}

	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return m, nil
}

func (m *Machine) Phase() Phase          { return m.phase }
func (m *Machine) Round() int            { return m.round }
func (m *Machine) Rule() int             { return m.rule }
func (m *Machine) Stimulus() Stimulus    { return m.stim }
func (m *Machine) Tally() Tally          { return m.tally }
func (m *Machine) Config() Config        { return m.cfg }
func (m *Machine) LastOutcome() RoundOutcome { return m.lastOutcome }

// Start enters the warm-up phase and returns how long the driver should
// wait before beginning the first round (0 = begin immediately).
func (m *Machine) Start(now time.Time) time.Duration {
	m.startedAt = now
	m.phase = PhaseShowing
	return m.cfg.WarmupDelay
}

// BeginRound asks the generator for the next stimulus and enters the
// active phase. Returns ErrSessionComplete when the generator signals
// the session is over.
func (m *Machine) BeginRound(now time.Time) (Stimulus, error) {
	if m.phase != PhaseShowing && m.phase != PhaseResolved {
		return Stimulus{}, fmt.Errorf("quest machine: BeginRound in phase %d", m.phase)
	}

	stim, err := m.gen(m.rng, m.round+1, m.rule)
	if err != nil {
		if err == ErrSessionComplete {
			m.finish(now)
			return Stimulus{}, ErrSessionComplete
		}
		return Stimulus{}, fmt.Errorf("generate stimulus: %w", err)
	}

	if m.playStartedAt.IsZero() {
		m.playStartedAt = now
	}
	m.round++
	m.stim = stim
	m.resolved = false
	m.phase = PhaseActive
	m.roundOpenedAt = now
	return stim, nil
}

// OpenInput marks the moment the user may respond (after any ShowFor
// display) and arms the round deadline. It returns the deadline duration
// (0 = none) and the token the driver must present when the deadline
// timer fires.
func (m *Machine) OpenInput(now time.Time) (time.Duration, int) {
	m.roundOpenedAt = now
	m.token++

	deadline := m.cfg.RoundDeadline
	if m.stim.Deadline > 0 {
		deadline = m.stim.Deadline
	}
	return deadline, m.token
}

// Respond resolves the current round with a user response. Returns false
// if the round is already resolved (the at-most-once guard) or no round
// is active.
func (m *Machine) Respond(resp Response, now time.Time) (RoundOutcome, bool) {
	if m.phase != PhaseActive || m.resolved {
		return RoundOutcome{}, false
	}

	m.resolved = true
	m.token++ // cancel any pending deadline for this round

	latency := int(now.Sub(m.roundOpenedAt).Milliseconds())
	if latency < 0 {
		latency = 0
	}

	out := OutcomeWrong
	if m.check(m.stim, resp) {
		out = OutcomeCorrect
	}

	ro := RoundOutcome{
		Outcome:   out,
		LatencyMs: latency,
		Points:    m.score(m.cfg, m.stim, resp, out, latency, m.tally),
	}
	m.applyOutcome(ro)
	return ro, true
}

// ExpireDeadline resolves the current round as a deadline expiry. A stale
// token (the round already resolved or a new round started) is ignored
// and the recorded outcome is left untouched.
func (m *Machine) ExpireDeadline(token int, now time.Time) (RoundOutcome, bool) {
	if m.phase != PhaseActive || m.resolved || token != m.token {
		return RoundOutcome{}, false
	}

	m.resolved = true

	out := OutcomeTimeout
	if m.cfg.TimeoutIsCorrect && !m.stim.Target {
		// Withholding a response to a non-target stimulus is the
		// correct rejection.
		out = OutcomeCorrect
	}

	ro := RoundOutcome{
		Outcome: out,
		Points:  m.score(m.cfg, m.stim, Response{}, out, 0, m.tally),
	}
	m.applyOutcome(ro)
	return ro, true
}

func (m *Machine) applyOutcome(ro RoundOutcome) {
	m.tally.Apply(ro)
	m.lastOutcome = ro
	m.phase = PhaseResolved
}

// Advance moves past a resolved round: to the next round, through a rule
// switch, or to the finished state when the round count or time budget
// is exhausted.
func (m *Machine) Advance(now time.Time) Step {
	if m.phase == PhaseFinished {
		return StepFinished
	}
	if m.phase != PhaseResolved {
		return StepNextRound
	}

	if m.cfg.Rounds > 0 && m.round >= m.cfg.Rounds {
		m.finish(now)
		return StepFinished
	}
	if m.Expired(now) {
		m.finish(now)
		return StepFinished
	}

	m.phase = PhaseShowing

	if m.cfg.RuleSwitchEvery > 0 && m.round%m.cfg.RuleSwitchEvery == 0 {
		m.rule = (m.rule + 1) % m.cfg.RuleCount
		return StepRuleSwitch
	}
	return StepNextRound
}

// Expired reports whether the session time budget has run out.
func (m *Machine) Expired(now time.Time) bool {
	if m.cfg.TimeBudget <= 0 || m.playStartedAt.IsZero() {
		return false
	}
	return now.Sub(m.playStartedAt) >= m.cfg.TimeBudget
}

// TimeLeft returns the remaining session time budget, 0 when exhausted
// or when the quest has no time budget.
func (m *Machine) TimeLeft(now time.Time) time.Duration {
	if m.cfg.TimeBudget <= 0 {
		return 0
	}
	if m.playStartedAt.IsZero() {
		return m.cfg.TimeBudget
	}
	left := m.cfg.TimeBudget - now.Sub(m.playStartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Finish ends the session immediately (budget expiry mid-round, or the
// generator signalling completion). An unresolved in-flight round is
// discarded, not scored.
func (m *Machine) Finish(now time.Time) {
	m.finish(now)
}

func (m *Machine) finish(now time.Time) {
	m.phase = PhaseFinished
	m.token++ // cancel any pending deadline
}

// Elapsed returns the scored play time (excluding warm-up).
func (m *Machine) Elapsed(now time.Time) time.Duration {
	if m.playStartedAt.IsZero() {
		return 0
	}
	d := now.Sub(m.playStartedAt)
	if m.cfg.TimeBudget > 0 && d > m.cfg.TimeBudget {
		d = m.cfg.TimeBudget
	}
	return d
}

// Summarize finalizes the tally into a session summary.
func (m *Machine) Summarize(now time.Time) Summary {
	return Finalize(m.cfg, m.tally, m.Elapsed(now))
}
