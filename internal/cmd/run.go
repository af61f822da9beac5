package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkcg-learning/debate/internal/config"
	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/pipeline"
)

type runOptions struct {
	input  domain.DebateInput
	rounds int
	asJSON bool
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one debate in the terminal",
		Long: `Run one debate and print the transcript as it happens.
Values not given as flags are asked for on standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDebate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.input.Topic, "topic", "", "debate topic")
	cmd.Flags().StringVar(&opts.input.DebaterAName, "a", "", "name of debater A (famous person)")
	cmd.Flags().StringVar(&opts.input.DebaterBName, "b", "", "name of debater B (famous person)")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 0, "number of rounds (default DEBATE_ROUNDS)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON instead of the transcript")
	return cmd
}

func runDebate(cmd *cobra.Command, opts *runOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := newApp(ctx, cmd, func(cfg *config.Config) {
		if opts.rounds > 0 {
			cfg.Rounds = opts.rounds
		}
	})
	if err != nil {
		return err
	}
	defer a.Close()

	promptOut := out
	if opts.asJSON {
		promptOut = cmd.ErrOrStderr()
	}
	input, err := promptInput(cmd.InOrStdin(), promptOut, opts.input)
	if err != nil {
		return err
	}

	var observer pipeline.Observer
	if !opts.asJSON {
		observer = newPrinter(out)
	}

	result, runErr := a.svc.RunDebate(ctx, input, observer)
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	}
	return runErr
}
