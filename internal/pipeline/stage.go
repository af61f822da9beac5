package pipeline

import (
	"context"

	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/policy"
)

// Outcome tells the orchestrator whether to run the next stage.
type Outcome struct {
	Aborted bool
	Reason  domain.AbortReason
}

// Continue lets the pipeline proceed to the next stage.
var Continue = Outcome{}

// AbortWith stops the pipeline for reason.
func AbortWith(reason domain.AbortReason) Outcome {
	return Outcome{Aborted: true, Reason: reason}
}

// Stage is one step of the debate pipeline.
type Stage interface {
	Name() domain.Stage
	Run(ctx context.Context, run *Run) (Outcome, error)
}

// Run is the state of one pipeline invocation. The session is owned
// exclusively by the invocation.
type Run struct {
	ID      string
	Input   domain.DebateInput
	Session *domain.DebateSession

	emit func(eventType domain.EventType, payload interface{})
}

// Emit publishes a stage event for the run.
func (r *Run) Emit(eventType domain.EventType, payload interface{}) {
	if r.emit != nil {
		r.emit(eventType, payload)
	}
}

// Agents are the language agents a debate talks to. The moderator is shared
// by qualification, trait lookup and adjudication.
type Agents struct {
	Moderator agent.LanguageAgent
	DebaterA  agent.LanguageAgent
	DebaterB  agent.LanguageAgent
}

// PersonaCatalog builds the personas handed to the agents.
type PersonaCatalog interface {
	Moderator() domain.Persona
	Debater(side domain.Side, fields agent.DebaterFields) (domain.Persona, error)
}

// QualificationJudge turns the moderator's qualification text into a
// structured verdict.
type QualificationJudge interface {
	EvaluateQualification(ctx context.Context, in policy.QualificationInput) (domain.Qualification, error)
}

// Observer receives pipeline events in emission order.
type Observer interface {
	OnEvent(event domain.Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(event domain.Event)

// OnEvent calls f.
func (f ObserverFunc) OnEvent(event domain.Event) {
	f(event)
}

// Compile-time interface checks.
var (
	_ PersonaCatalog     = (*agent.Catalog)(nil)
	_ QualificationJudge = (*policy.Engine)(nil)
)
