package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkcg-learning/debate/internal/adapter/stream"
	"github.com/jkcg-learning/debate/internal/domain"
)

func newWatchCommand() *cobra.Command {
	var (
		addr  string
		input domain.DebateInput
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Start a debate on a running server and follow it live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, addr, input)
		},
	}

	cmd.Flags().StringVar(&addr, "url", "ws://localhost:8080/v1/debates/stream", "debate stream WebSocket URL")
	cmd.Flags().StringVar(&input.Topic, "topic", "", "debate topic")
	cmd.Flags().StringVar(&input.DebaterAName, "a", "", "name of debater A (famous person)")
	cmd.Flags().StringVar(&input.DebaterBName, "b", "", "name of debater B (famous person)")
	return cmd
}

func runWatch(cmd *cobra.Command, addr string, input domain.DebateInput) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	input, err := promptInput(cmd.InOrStdin(), out, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Connecting to %s...\n", addr)
	client, err := stream.Dial(ctx, addr)
	if err != nil {
		return err
	}
	defer client.Close()

	result, err := client.Watch(ctx, input, newPrinter(out).OnEvent)
	if err != nil {
		var runErr *stream.RunError
		if errors.As(err, &runErr) {
			return fmt.Errorf("debate failed: %s", runErr.Message)
		}
		return err
	}

	fmt.Fprintf(out, "\nRun %s finished with status %s\n", result.RunID, result.Status)
	return nil
}
