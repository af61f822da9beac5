package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/runctx"
)

// Orchestrator runs the debate stages in order.
type Orchestrator struct {
	stages   []Stage
	rounds   int
	observer Observer
	clock    func() time.Time
	logger   *logging.Logger
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithRounds sets the number of argument rounds. Values below one keep the
// default.
func WithRounds(n int) Option {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.rounds = n
		}
	}
}

// WithObserver sets the receiver of pipeline events.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) {
		o.observer = obs
	}
}

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(o *Orchestrator) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger sets the logger for stage tracing.
func WithLogger(l *logging.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an orchestrator running TopicIntake, QualificationGate,
// DebateLoop and Adjudication against agents.
func New(agents Agents, personas PersonaCatalog, judge QualificationJudge, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		rounds: domain.DefaultRounds,
		clock:  time.Now,
		logger: logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}

	o.stages = []Stage{
		TopicIntake{},
		QualificationGate{Moderator: agents.Moderator, Personas: personas, Judge: judge},
		DebateLoop{DebaterA: agents.DebaterA, DebaterB: agents.DebaterB, Rounds: o.rounds},
		Adjudication{Moderator: agents.Moderator, Personas: personas},
	}
	return o
}

// Rounds returns the configured round count.
func (o *Orchestrator) Rounds() int {
	return o.rounds
}

// Run executes the pipeline for input. Abort outcomes return the session with
// a nil error. A stage error returns the partially filled session together
// with an error naming the stage. The run ID is taken from ctx when present.
func (o *Orchestrator) Run(ctx context.Context, input domain.DebateInput) (*domain.DebateSession, error) {
	runID := runctx.RunIDFromContext(ctx)
	if runID == "" {
		runID = "run_" + uuid.New().String()[:8]
		ctx = runctx.WithRunID(ctx, runID)
	}
	logger := o.logger.WithRun(runID)

	run := &Run{
		ID:      runID,
		Input:   input,
		Session: domain.NewDebateSession(),
	}
	run.emit = func(eventType domain.EventType, payload interface{}) {
		o.emit(logger, runID, eventType, payload)
	}

	start := o.clock()
	normalized := input.Normalize()
	run.Emit(domain.EventTypeRunStarted, domain.RunStartedPayload{
		Topic:        normalized.Topic,
		DebaterAName: normalized.DebaterAName,
		DebaterBName: normalized.DebaterBName,
		Rounds:       o.rounds,
	})
	logger.Info("debate started", "topic", normalized.Topic, "rounds", o.rounds)

	for _, stage := range o.stages {
		name := stage.Name()
		stageLogger := logger.WithStage(string(name))

		if err := ctx.Err(); err != nil {
			return run.Session, o.fail(run, stageLogger, name, err)
		}

		stageStart := o.clock()
		run.Emit(domain.EventTypeStageStarted, domain.StagePayload{Stage: name})
		stageLogger.Info("stage started")

		outcome, err := stage.Run(runctx.WithStage(ctx, name), run)
		if err != nil {
			return run.Session, o.fail(run, stageLogger, name, err)
		}

		durationMs := o.clock().Sub(stageStart).Milliseconds()
		run.Emit(domain.EventTypeStageFinished, domain.StagePayload{Stage: name, DurationMs: durationMs})
		stageLogger.Info("stage finished", "duration_ms", durationMs)

		if outcome.Aborted {
			run.Session.Abort(outcome.Reason)
			run.Emit(domain.EventTypeRunAborted, domain.RunAbortedPayload{
				Stage:  name,
				Reason: run.Session.AbortReason,
				Note:   run.Session.QualificationNote,
			})
			stageLogger.Info("debate aborted", "reason", string(run.Session.AbortReason))
			return run.Session, nil
		}
	}

	durationMs := o.clock().Sub(start).Milliseconds()
	run.Emit(domain.EventTypeRunDone, domain.RunDonePayload{
		Rounds:     len(run.Session.History),
		DurationMs: durationMs,
	})
	logger.Info("debate finished", "rounds", len(run.Session.History), "duration_ms", durationMs)
	return run.Session, nil
}

func (o *Orchestrator) fail(run *Run, logger *logging.Logger, stage domain.Stage, cause error) error {
	err := fmt.Errorf("stage %s: %w", stage, cause)
	run.Emit(domain.EventTypeRunFailed, domain.RunFailedPayload{Stage: stage, Message: err.Error()})
	logger.Error("debate failed", "error", err.Error())
	return err
}

// emit builds the event and hands it to the observer.
func (o *Orchestrator) emit(logger *logging.Logger, runID string, eventType domain.EventType, payload interface{}) {
	if o.observer == nil {
		return
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Warn("failed to marshal event payload", "type", string(eventType), "error", err.Error())
		return
	}

	o.observer.OnEvent(domain.Event{
		EventID: "evt_" + uuid.New().String()[:8],
		RunID:   runID,
		Ts:      o.clock().UnixMilli(),
		Type:    eventType,
		Payload: payloadBytes,
	})
}
