package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkcg-learning/debate/internal/adapter/llm"
	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/config"
	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/policy"
	store "github.com/jkcg-learning/debate/internal/repository"
	"github.com/jkcg-learning/debate/internal/service"
)

// app holds the wired dependencies shared by the commands.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	store  *store.SQLiteStore
	svc    *service.Service
}

// newApp loads configuration, applies flag overrides and wires the service.
func newApp(ctx context.Context, cmd *cobra.Command, override func(*config.Config)) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if override != nil {
		override(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	catalog, err := agent.LoadCatalog(cfg.PersonasFile)
	if err != nil {
		db.Close()
		return nil, err
	}

	engine, err := policy.LoadEngine(ctx, cfg.PolicyFile)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize policy engine: %w", err)
	}

	client := llm.NewLLMClient(cfg, logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  db,
		svc:    service.New(db, client, catalog, engine, cfg, logger),
	}, nil
}

// Close releases the usage ledger.
func (a *app) Close() error {
	return a.store.Close()
}
