package service

import (
	"context"
	"fmt"

	"github.com/jkcg-learning/debate/internal/adapter/llm"
	"github.com/jkcg-learning/debate/internal/domain"
)

// GetUsage returns the metered calls of a run.
func (s *Service) GetUsage(ctx context.Context, runID string, stages []domain.Stage) (*domain.UsageReport, error) {
	calls, err := s.store.ListCalls(ctx, runID, stages, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	if len(calls) == 0 {
		return nil, domain.ErrRunNotFound
	}
	return &domain.UsageReport{
		Summary: domain.Summarize(runID, calls),
		Calls:   calls,
	}, nil
}

// ListModels lists the models the LLM endpoint serves.
func (s *Service) ListModels(ctx context.Context) ([]llm.Model, error) {
	models, err := s.llmClient.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return models, nil
}
