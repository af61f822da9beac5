package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebateInputComplete(t *testing.T) {
	tests := []struct {
		name  string
		input DebateInput
		want  bool
	}{
		{"all set", DebateInput{"Pineapple on pizza", "Alice", "Bob"}, true},
		{"empty topic", DebateInput{"", "Alice", "Bob"}, false},
		{"blank a", DebateInput{"T", "   ", "Bob"}, false},
		{"empty b", DebateInput{"T", "Alice", ""}, false},
		{"tabs only", DebateInput{"\t\n", "Alice", "Bob"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Complete())
		})
	}
}

func TestDebateInputNormalize(t *testing.T) {
	got := DebateInput{"  Pineapple on pizza ", " Alice", "Bob\n"}.Normalize()
	assert.Equal(t, DebateInput{"Pineapple on pizza", "Alice", "Bob"}, got)
}

func TestSessionAbortIsSticky(t *testing.T) {
	s := NewDebateSession()
	s.Abort(AbortReasonNotQualified)
	s.Abort(AbortReasonMissingInput)

	assert.True(t, s.Aborted)
	assert.Equal(t, AbortReasonNotQualified, s.AbortReason)
	assert.Equal(t, RunStatusAborted, s.Status())
}

func TestSessionAppendRoundOrder(t *testing.T) {
	s := NewDebateSession()
	require.NoError(t, s.AppendRound(Round{Index: 0, ArgumentA: "a0", ArgumentB: "b0"}))
	assert.Error(t, s.AppendRound(Round{Index: 2}))
	require.NoError(t, s.AppendRound(Round{Index: 1, ArgumentA: "a1", ArgumentB: "b1"}))
	assert.Len(t, s.History, 2)
}

func TestSessionJSONHidesPersonas(t *testing.T) {
	s := NewDebateSession()
	s.DebaterA = Persona{Role: "Alice", Backstory: "secret"}
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), `"history":[]`)
}

func TestPersonaSystemPrompt(t *testing.T) {
	p := Persona{Role: "Alice", Goal: "win", Backstory: "A chemist."}
	assert.Equal(t, "You are Alice.\nYour goal: win\nA chemist.", p.SystemPrompt())
	assert.Equal(t, p.SystemPrompt(), p.SystemPrompt())
	assert.True(t, Persona{}.IsZero())
}

func TestSummarize(t *testing.T) {
	sum := Summarize("r1", []LLMCall{
		{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15, LatencyMs: 100},
		{Error: "boom", LatencyMs: 20},
	})
	assert.Equal(t, UsageSummary{
		RunID: "r1", Calls: 2, FailedCalls: 1,
		PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15, LatencyMs: 120,
	}, sum)
}
