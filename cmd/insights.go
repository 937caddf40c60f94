package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print AI coaching tips for your recent training",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deps := buildDeps(cmd, st)

		tips, err := deps.Insights.Generate(cmd.Context())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Using offline tips:", err)
		}
		for _, tip := range tips {
			fmt.Println("•", tip)
		}
		return nil
	},
}
