package cmd

import (
	"fmt"
	"strings"

	"github.com/devika/neuroquest/internal/app"
	"github.com/devika/neuroquest/internal/games"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [quest]",
	Short: "Jump straight into a quest",
	Long: "Start a quest session directly, skipping the menu.\n\n" +
		"Available quests: " + strings.Join(questTags(), ", "),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deps := buildDeps(cmd, st)

		if len(args) == 0 {
			return app.Run(deps)
		}

		def, err := games.ByType(games.Type(args[0]))
		if err != nil {
			return fmt.Errorf("%w (try one of: %s)", err, strings.Join(questTags(), ", "))
		}
		if !deps.Entitlement.Allows(def) {
			return fmt.Errorf("%s is a premium quest; set NEUROQUEST_PREMIUM=1 to play it", def.Title)
		}

		return app.RunQuest(deps, def)
	},
}

// questTags lists the catalog tags accepted by play.
func questTags() []string {
	var tags []string
	for _, d := range games.All() {
		tags = append(tags, string(d.Type))
	}
	return tags
}
