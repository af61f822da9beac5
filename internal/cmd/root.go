// Package cmd implements the debate command line.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the debate command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "debate",
		Short: "Moderated debates between two simulated famous people",
		Long: `debate runs a moderated, three-round debate between two simulated
debaters on a topic of your choice. A moderator checks that both debaters
are qualified, the debaters argue in turns, and the moderator declares
the winner.

Configuration comes from the environment (LLM_BASE_URL, LLM_MODEL,
DEBATE_MODE=MOCK, DATABASE_URL, ...).`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newRunCommand(),
		newServeCommand(),
		newWatchCommand(),
		newUsageCommand(),
		newModelsCommand(),
	)
	return root
}
