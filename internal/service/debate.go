package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/pipeline"
	"github.com/jkcg-learning/debate/internal/runctx"
)

// RunDebate runs one debate to completion. observer may be nil. On a stage
// failure the result carries the partial session and the error is returned
// alongside it.
func (s *Service) RunDebate(ctx context.Context, input domain.DebateInput, observer pipeline.Observer) (*domain.DebateResult, error) {
	runID := "run_" + uuid.New().String()[:8]
	ctx = runctx.WithRunID(ctx, runID)

	opts := []pipeline.Option{
		pipeline.WithRounds(s.config.Rounds),
		pipeline.WithLogger(s.logger),
	}
	if observer != nil {
		opts = append(opts, pipeline.WithObserver(observer))
	}
	orchestrator := pipeline.New(s.agents(), s.personas, s.judge, opts...)

	session, err := orchestrator.Run(ctx, input)
	result := &domain.DebateResult{
		RunID:   runID,
		Status:  session.Status(),
		Session: session,
	}
	if err != nil {
		result.Status = domain.RunStatusFailed
		result.Error = err.Error()
		return result, err
	}
	return result, nil
}
