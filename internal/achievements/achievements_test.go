package achievements

import (
	"testing"
	"time"

	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/store"
)

func result(qt games.Type, accuracy float64, items int) store.QuestResult {
	return store.QuestResult{
		QuestType:   string(qt),
		Accuracy:    accuracy,
		Items:       items,
		CompletedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func byID(t *testing.T, records []Record, id string) Record {
	t.Helper()
	for _, r := range records {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no record %q", id)
	return Record{}
}

func TestEmptyHistoryAllLocked(t *testing.T) {
	records := Evaluate(nil)
	if len(records) != len(definitions) {
		t.Fatalf("got %d records, want %d", len(records), len(definitions))
	}
	for _, r := range records {
		if r.Unlocked {
			t.Errorf("%s unlocked with no history", r.ID)
		}
		if r.Current != 0 || r.Progress != 0 {
			t.Errorf("%s current=%d progress=%v, want zeros", r.ID, r.Current, r.Progress)
		}
	}
	if UnlockedCount(records) != 0 {
		t.Errorf("UnlockedCount = %d, want 0", UnlockedCount(records))
	}
}

func TestFirstQuest(t *testing.T) {
	records := Evaluate([]store.QuestResult{result(games.TypeFocus, 80, 12)})

	first := byID(t, records, "first_quest")
	if !first.Unlocked || first.Progress != 1 {
		t.Errorf("first_quest = %+v, want unlocked", first)
	}

	collector := byID(t, records, "quest_collector")
	if collector.Unlocked || collector.Current != 1 {
		t.Errorf("quest_collector = %+v, want locked at 1/%d", collector, len(games.FreeTypes))
	}
}

func TestAccuracyThresholds(t *testing.T) {
	records := Evaluate([]store.QuestResult{
		result(games.TypeFocus, 94.9, 14),
		result(games.TypeSwitch, 91.7, 22),
	})

	if byID(t, records, "eagle_eye").Unlocked {
		t.Error("eagle_eye unlocked below 95% accuracy")
	}
	if !byID(t, records, "mental_gymnast").Unlocked {
		t.Error("mental_gymnast locked at 91.7% accuracy")
	}

	records = Evaluate([]store.QuestResult{result(games.TypeFocus, 100, 15)})
	if !byID(t, records, "eagle_eye").Unlocked {
		t.Error("eagle_eye locked at 100% accuracy")
	}
}

func TestMemoryMasterUsesBestRun(t *testing.T) {
	records := Evaluate([]store.QuestResult{
		result(games.TypeMemory, 60, 4),
		result(games.TypeMemory, 80, 7),
		result(games.TypeMemory, 40, 3),
	})
	mm := byID(t, records, "memory_master")
	if !mm.Unlocked || mm.Current != 7 {
		t.Errorf("memory_master = %+v, want unlocked with current 7", mm)
	}
}

func TestSessionCounters(t *testing.T) {
	var history []store.QuestResult
	for i := 0; i < 10; i++ {
		history = append(history, result(games.TypeSpeed, 70, 10))
	}
	for i := 0; i < 4; i++ {
		history = append(history, result(games.TypeCalm, 100, 5))
	}

	records := Evaluate(history)

	if !byID(t, records, "lightning_reflexes").Unlocked {
		t.Error("lightning_reflexes locked after 10 speed sessions")
	}
	zen := byID(t, records, "zen_master")
	if zen.Unlocked || zen.Current != 4 {
		t.Errorf("zen_master = %+v, want locked at 4", zen)
	}
	dedicated := byID(t, records, "dedicated_learner")
	if dedicated.Current != 14 || dedicated.Progress != 14.0/50.0 {
		t.Errorf("dedicated_learner = %+v", dedicated)
	}
}

func TestQuestCollector(t *testing.T) {
	var history []store.QuestResult
	for _, qt := range games.FreeTypes {
		history = append(history, result(qt, 50, 5))
	}
	records := Evaluate(history)
	if !byID(t, records, "quest_collector").Unlocked {
		t.Error("quest_collector locked after playing every free quest")
	}
}
