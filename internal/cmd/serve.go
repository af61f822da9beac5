package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jkcg-learning/debate/internal/config"
	transport "github.com/jkcg-learning/debate/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the debate HTTP and WebSocket API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "HTTP port (default HTTP_PORT)")
	return cmd
}

// runServe blocks until the command context is cancelled, then shuts the
// server down gracefully.
func runServe(cmd *cobra.Command, port int) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cmd, func(cfg *config.Config) {
		if port > 0 {
			cfg.HTTPPort = port
		}
	})
	if err != nil {
		return err
	}
	defer a.Close()

	server := transport.NewServer(a.svc, a.logger)

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", a.cfg.HTTPPort)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.logger.Info("debate API started",
		"port", a.cfg.HTTPPort,
		"database", a.cfg.DatabaseURL,
		"llm_base_url", a.cfg.LLMBaseURL,
		"mock", a.cfg.UseMockLLM(),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down debate API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("failed to shutdown server gracefully", "error", err.Error())
	}

	a.logger.Info("debate API stopped")
	return nil
}
