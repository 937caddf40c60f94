package cmd

import (
	"context"
	"fmt"

	"github.com/devika/neuroquest/internal/achievements"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and unlock progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		history, err := st.ResultRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		records := achievements.Evaluate(history)
		fmt.Printf("%d of %d unlocked\n\n",
			achievements.UnlockedCount(records), len(records))

		for _, r := range records {
			mark := " "
			if r.Unlocked {
				mark = "✓"
			}
			fmt.Printf("%s %-20s %3d/%-3d  %s\n",
				mark, r.Name, r.Current, r.Requirement, r.Description)
		}
		return nil
	},
}
