// Package achievements evaluates unlock conditions against quest history.
package achievements

import (
	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/store"
)

// Record is the evaluated state of one achievement.
type Record struct {
	ID          string
	Name        string
	Description string
	Requirement int
	Current     int
	Unlocked    bool
	Progress    float64 // 0..1
}

type definition struct {
	ID          string
	Name        string
	Description string
	Requirement int
	current     func(stats) int
}

// stats is the per-history aggregate the conditions read from.
type stats struct {
	total        int
	perType      map[games.Type]int
	bestAccuracy map[games.Type]float64
	bestItems    map[games.Type]int
}

func collect(history []store.QuestResult) stats {
	st := stats{
		perType:      make(map[games.Type]int),
		bestAccuracy: make(map[games.Type]float64),
		bestItems:    make(map[games.Type]int),
	}
	for _, r := range history {
		qt := games.Type(r.QuestType)
		st.total++
		st.perType[qt]++
		if r.Accuracy > st.bestAccuracy[qt] {
			st.bestAccuracy[qt] = r.Accuracy
		}
		if r.Items > st.bestItems[qt] {
			st.bestItems[qt] = r.Items
		}
	}
	return st
}

func (s stats) typesPlayed(types []games.Type) int {
	n := 0
	for _, t := range types {
		if s.perType[t] > 0 {
			n++
		}
	}
	return n
}

var definitions = []definition{
	{
		ID:          "first_quest",
		Name:        "First Steps",
		Description: "Complete your first quest",
		Requirement: 1,
		current:     func(s stats) int { return s.total },
	},
	{
		ID:          "quest_collector",
		Name:        "Quest Collector",
		Description: "Play every free quest at least once",
		Requirement: len(games.FreeTypes),
		current:     func(s stats) int { return s.typesPlayed(games.FreeTypes) },
	},
	{
		ID:          "eagle_eye",
		Name:        "Eagle Eye",
		Description: "Finish Focus Grid with 95% accuracy or better",
		Requirement: 95,
		current:     func(s stats) int { return int(s.bestAccuracy[games.TypeFocus]) },
	},
	{
		ID:          "memory_master",
		Name:        "Memory Master",
		Description: "Recall a sequence of 7 in Memory Sequence",
		Requirement: 7,
		current:     func(s stats) int { return s.bestItems[games.TypeMemory] },
	},
	{
		ID:          "lightning_reflexes",
		Name:        "Lightning Reflexes",
		Description: "Complete 10 Speed Tap sessions",
		Requirement: 10,
		current:     func(s stats) int { return s.perType[games.TypeSpeed] },
	},
	{
		ID:          "mental_gymnast",
		Name:        "Mental Gymnast",
		Description: "Finish Brain Switch with 90% accuracy or better",
		Requirement: 90,
		current:     func(s stats) int { return int(s.bestAccuracy[games.TypeSwitch]) },
	},
	{
		ID:          "zen_master",
		Name:        "Zen Master",
		Description: "Complete 10 Calm Breathing sessions",
		Requirement: 10,
		current:     func(s stats) int { return s.perType[games.TypeCalm] },
	},
	{
		ID:          "dedicated_learner",
		Name:        "Dedicated Learner",
		Description: "Complete 50 quests in total",
		Requirement: 50,
		current:     func(s stats) int { return s.total },
	},
}

// Evaluate computes every achievement against the full quest history.
// Records come back in a fixed catalog order.
func Evaluate(history []store.QuestResult) []Record {
	st := collect(history)

	out := make([]Record, 0, len(definitions))
	for _, d := range definitions {
		cur := d.current(st)
		progress := 0.0
		if d.Requirement > 0 {
			progress = float64(cur) / float64(d.Requirement)
			if progress > 1 {
				progress = 1
			}
		}
		out = append(out, Record{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Requirement: d.Requirement,
			Current:     cur,
			Unlocked:    cur >= d.Requirement,
			Progress:    progress,
		})
	}
	return out
}

// UnlockedCount returns how many records are unlocked.
func UnlockedCount(records []Record) int {
	n := 0
	for _, r := range records {
		if r.Unlocked {
			n++
		}
	}
	return n
}
