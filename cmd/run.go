package cmd

import (
	"fmt"
	"os"

	"github.com/devika/neuroquest/internal/app"
	"github.com/devika/neuroquest/internal/entitlement"
	"github.com/devika/neuroquest/internal/insights"
	"github.com/devika/neuroquest/internal/llm"
	"github.com/devika/neuroquest/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(buildDeps(cmd, st))
}

// openStore resolves the database path and opens the SQLite store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildDeps assembles app dependencies. The LLM provider is optional;
// insights fall back to canned tips without one.
func buildDeps(cmd *cobra.Command, st *store.Store) app.Deps {
	deps := app.Deps{
		Store:       st,
		Entitlement: entitlement.FromEnv(),
	}

	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		p, err := llm.NewProvider(cmd.Context(), cfg, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "AI insights will use offline tips.")
		} else {
			provider = p
		}
	}
	deps.Insights = insights.New(provider, st.ProfileRepo(), st.ResultRepo())

	return deps
}
