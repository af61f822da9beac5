package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jkcg-learning/debate/internal/adapter/llm"
	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/runctx"
)

// LLMAgent answers prompts through a chat completion endpoint. The persona
// becomes the system message and the prompt the single user message, so the
// agent keeps no conversation state between calls.
type LLMAgent struct {
	client      llm.LLMClient
	model       string
	temperature *float64
	recorder    Recorder
	logger      *logging.Logger
	clock       func() time.Time
}

// Option customizes an LLMAgent.
type Option func(*LLMAgent)

// WithTemperature sets the sampling temperature sent with every request.
func WithTemperature(t float64) Option {
	return func(a *LLMAgent) {
		a.temperature = &t
	}
}

// WithRecorder meters every call into r.
func WithRecorder(r Recorder) Option {
	return func(a *LLMAgent) {
		a.recorder = r
	}
}

// WithLogger sets the logger used for call tracing.
func WithLogger(l *logging.Logger) Option {
	return func(a *LLMAgent) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock injects a deterministic clock (primarily for tests).
func WithClock(clock func() time.Time) Option {
	return func(a *LLMAgent) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// NewLLMAgent creates an agent backed by client using model.
func NewLLMAgent(client llm.LLMClient, model string, opts ...Option) *LLMAgent {
	a := &LLMAgent{
		client: client,
		model:  model,
		logger: logging.NopLogger(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Ensure LLMAgent implements LanguageAgent.
var _ LanguageAgent = (*LLMAgent)(nil)

// Respond sends one chat completion and returns the first choice verbatim.
func (a *LLMAgent) Respond(ctx context.Context, persona domain.Persona, prompt string) (string, error) {
	req := &llm.ChatCompletionRequest{
		Model: a.model,
		Messages: []llm.ChatMessage{
			{Role: llm.RoleSystem, Content: persona.SystemPrompt()},
			{Role: llm.RoleUser, Content: prompt},
		},
		Temperature: a.temperature,
		User:        runctx.RunIDFromContext(ctx),
	}

	start := a.clock()
	resp, err := a.client.CreateChatCompletion(ctx, req)
	call := domain.LLMCall{
		CallID:    "call_" + uuid.New().String()[:8],
		RunID:     runctx.RunIDFromContext(ctx),
		Stage:     runctx.StageFromContext(ctx),
		Role:      persona.Role,
		Model:     a.model,
		LatencyMs: a.clock().Sub(start).Milliseconds(),
		CreatedAt: start.UTC(),
	}

	if err != nil {
		call.Error = err.Error()
		a.record(ctx, call)
		return "", fmt.Errorf("language agent %q: %w", persona.Role, err)
	}

	if resp.Model != "" {
		call.Model = resp.Model
	}
	if resp.Usage != nil {
		call.PromptTokens = resp.Usage.PromptTokens
		call.CompletionTokens = resp.Usage.CompletionTokens
		call.TotalTokens = resp.Usage.TotalTokens
	}

	text := resp.Content()
	if strings.TrimSpace(text) == "" {
		call.Error = domain.ErrEmptyResponse.Error()
		a.record(ctx, call)
		return "", fmt.Errorf("language agent %q: %w", persona.Role, domain.ErrEmptyResponse)
	}

	a.record(ctx, call)
	a.logger.Debug("language agent responded",
		"role", persona.Role,
		"stage", string(call.Stage),
		"latency_ms", call.LatencyMs,
		"total_tokens", call.TotalTokens,
	)
	return text, nil
}

func (a *LLMAgent) record(ctx context.Context, call domain.LLMCall) {
	if a.recorder == nil {
		return
	}
	// Metering must never fail the run.
	if err := a.recorder.RecordCall(ctx, call); err != nil {
		a.logger.Warn("failed to record llm call", "call_id", call.CallID, "error", err.Error())
	}
}
