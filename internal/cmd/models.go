package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models served by the LLM endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cmd, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			models, err := a.svc.ListModels(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range models {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.ID, m.OwnedBy)
			}
			return nil
		},
	}
}
