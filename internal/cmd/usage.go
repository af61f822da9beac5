package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jkcg-learning/debate/internal/domain"
)

func newUsageCommand() *cobra.Command {
	var (
		stages []string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "usage RUN_ID",
		Short: "Show the language model calls metered for a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsage(cmd, args[0], stages, asJSON)
		},
	}

	cmd.Flags().StringSliceVar(&stages, "stage", nil, "only show calls of these stages")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func runUsage(cmd *cobra.Command, runID string, stageNames []string, asJSON bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a, err := newApp(ctx, cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	stages := make([]domain.Stage, 0, len(stageNames))
	for _, s := range stageNames {
		stages = append(stages, domain.Stage(strings.TrimSpace(s)))
	}

	report, err := a.svc.GetUsage(ctx, runID, stages)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			return fmt.Errorf("no calls recorded for run %s", runID)
		}
		return err
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CALL\tSTAGE\tROLE\tMODEL\tLATENCY\tTOKENS\tERROR")
	for _, c := range report.Calls {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%dms\t%d\t%s\n", c.CallID, c.Stage, c.Role, c.Model, c.LatencyMs, c.TotalTokens, c.Error)
	}
	tw.Flush()

	s := report.Summary
	fmt.Fprintf(out, "\n%d calls (%d failed), %d tokens, %dms total\n", s.Calls, s.FailedCalls, s.TotalTokens, s.LatencyMs)
	return nil
}
