package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/devika/neuroquest/internal/achievements"
	"github.com/devika/neuroquest/internal/games"
	"github.com/devika/neuroquest/internal/leveling"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		prof, err := st.ProfileRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		history, err := st.ResultRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		fmt.Printf("Level %d %s — %d XP (%.0f%% to next)\n",
			prof.Level, leveling.TitleForLevel(prof.Level), prof.XP,
			leveling.LevelProgress(prof.XP)*100)
		fmt.Printf("Streak: %d days   Quests played: %d\n",
			prof.StreakDays, len(history))
		fmt.Printf("Skills: focus %d  memory %d  speed %d  switch %d  calm %d\n",
			prof.FocusScore, prof.MemoryScore, prof.SpeedScore,
			prof.SwitchScore, prof.CalmScore)

		if len(history) == 0 {
			fmt.Println("\nNo quests played yet.")
			return nil
		}

		// Per-quest aggregates.
		type agg struct {
			plays     int
			bestScore int
			sumAcc    float64
		}
		byType := make(map[string]*agg)
		for _, r := range history {
			a := byType[r.QuestType]
			if a == nil {
				a = &agg{}
				byType[r.QuestType] = a
			}
			a.plays++
			a.sumAcc += r.Accuracy
			if r.Score > a.bestScore {
				a.bestScore = r.Score
			}
		}

		fmt.Println()
		fmt.Printf("%-16s  %6s  %8s  %9s\n", "Quest", "Plays", "Best", "Accuracy")
		fmt.Println(strings.Repeat("─", 46))
		for _, def := range games.All() {
			a := byType[string(def.Type)]
			if a == nil {
				continue
			}
			fmt.Printf("%-16s  %6d  %8d  %8.0f%%\n",
				def.Title, a.plays, a.bestScore, a.sumAcc/float64(a.plays))
		}

		records := achievements.Evaluate(history)
		fmt.Printf("\nAchievements: %d of %d unlocked\n",
			achievements.UnlockedCount(records), len(records))

		return nil
	},
}
