// Package runctx carries the identity of the in-flight debate run on a context.
package runctx

import (
	"context"

	"github.com/jkcg-learning/debate/internal/domain"
)

type runIDContextKey struct{}

type stageContextKey struct{}

// WithRunID stores a run identifier in context.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDContextKey{}, runID)
}

// RunIDFromContext returns the run identifier stored in context.
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(runIDContextKey{}).(string)
	return value
}

// WithStage stores the current pipeline stage in context.
func WithStage(ctx context.Context, stage domain.Stage) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, stageContextKey{}, stage)
}

// StageFromContext returns the pipeline stage stored in context.
func StageFromContext(ctx context.Context) domain.Stage {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(stageContextKey{}).(domain.Stage)
	return value
}
