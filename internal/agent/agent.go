// Package agent provides the LanguageAgent capability used by the debate
// pipeline: a persona plus a prompt in, a text response out.
package agent

import (
	"context"

	"github.com/jkcg-learning/debate/internal/domain"
)

// LanguageAgent produces a text response for a prompt in the voice of a persona.
// Implementations own timeouts; callers never retry.
type LanguageAgent interface {
	Respond(ctx context.Context, persona domain.Persona, prompt string) (string, error)
}

// Func adapts a plain function to LanguageAgent.
type Func func(ctx context.Context, persona domain.Persona, prompt string) (string, error)

// Respond calls f.
func (f Func) Respond(ctx context.Context, persona domain.Persona, prompt string) (string, error) {
	return f(ctx, persona, prompt)
}

// Recorder receives metadata for every model call an LLMAgent makes.
type Recorder interface {
	RecordCall(ctx context.Context, call domain.LLMCall) error
}
