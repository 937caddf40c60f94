// Package games defines the quest catalog: each mini-game instantiates the
// generic round machine with its own stimulus generator, scoring policy,
// and presentation hints.
package games

import (
	"fmt"
	"time"

	"github.com/devika/neuroquest/internal/quest"
)

// Type identifies a quest. The string value is the persisted tag.
type Type string

const (
	TypeFocus         Type = "focus"
	TypeSpeed         Type = "speed"
	TypeMemory        Type = "memory"
	TypeSwitch        Type = "switch"
	TypeCalm          Type = "calm"
	TypeFocusFlip     Type = "focus_flip"
	TypeMemoryMaze    Type = "memory_maze"
	TypeMindMatch     Type = "mind_match"
	TypePatternSprint Type = "pattern_sprint"
	TypeReactionRun   Type = "reaction_run"
)

// Skill is the cognitive skill a quest trains.
type Skill string

const (
	SkillFocus  Skill = "focus"
	SkillMemory Skill = "memory"
	SkillSpeed  Skill = "speed"
	SkillSwitch Skill = "switch"
	SkillCalm   Skill = "calm"
)

// FreeTypes lists the five quests available without premium, in menu order.
var FreeTypes = []Type{TypeFocus, TypeSpeed, TypeMemory, TypeSwitch, TypeCalm}

// Definition describes one quest in the catalog.
type Definition struct {
	Type    Type
	Title   string
	Tagline string
	Skill   Skill
	Premium bool
	// SkillPoints is the per-session profile increment for Skill.
	SkillPoints int

	build func(opts ...quest.Option) (*Session, error)
}

// NewSession starts a fresh session of this quest.
func (d Definition) NewSession(opts ...quest.Option) (*Session, error) {
	return d.build(opts...)
}

// Session couples a configured round machine with game-specific hooks:
// board mutation after a resolved round and the quest's best-metric.
type Session struct {
	Def     Definition
	Machine *quest.Machine

	observe func(stim quest.Stimulus, resp quest.Response, ro quest.RoundOutcome)
	items   func() (int, bool)
}

// Observe lets the game react to a resolved round (mark a found target,
// clear a matched pair, track the longest recalled sequence).
func (s *Session) Observe(stim quest.Stimulus, resp quest.Response, ro quest.RoundOutcome) {
	if s.observe != nil {
		s.observe(stim, resp, ro)
	}
}

// Summarize finalizes the session, substituting the game's own items
// metric when it tracks one.
func (s *Session) Summarize(now time.Time) quest.Summary {
	sum := s.Machine.Summarize(now)
	if s.items != nil {
		if v, ok := s.items(); ok {
			sum.Items = v
		}
	}
	return sum
}

var catalog = []Definition{
	focusDefinition(),
	speedDefinition(),
	memoryDefinition(),
	brainSwitchDefinition(),
	calmDefinition(),
	focusFlipDefinition(),
	memoryMazeDefinition(),
	mindMatchDefinition(),
	patternSprintDefinition(),
	reactionRunDefinition(),
}

// All returns the full catalog: free quests first, then premium.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// ByType looks up a quest definition by its persisted tag.
func ByType(t Type) (Definition, error) {
	for _, d := range catalog {
		if d.Type == t {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("unknown quest type %q", t)
}
