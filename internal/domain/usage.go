package domain

import "time"

// LLMCall is one metered language agent call. It carries metadata only: no
// prompt or response text is kept.
type LLMCall struct {
	CallID           string    `json:"call_id"`
	RunID            string    `json:"run_id"`
	Stage            Stage     `json:"stage"`
	Role             string    `json:"role"`
	Model            string    `json:"model"`
	LatencyMs        int64     `json:"latency_ms"`
	PromptTokens     int       `json:"prompt_tokens,omitempty"`
	CompletionTokens int       `json:"completion_tokens,omitempty"`
	TotalTokens      int       `json:"total_tokens,omitempty"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// UsageSummary aggregates the calls of one run.
type UsageSummary struct {
	RunID            string `json:"run_id"`
	Calls            int    `json:"calls"`
	FailedCalls      int    `json:"failed_calls"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	LatencyMs        int64  `json:"latency_ms"`
}

// Summarize folds calls into a usage summary.
func Summarize(runID string, calls []LLMCall) UsageSummary {
	sum := UsageSummary{RunID: runID, Calls: len(calls)}
	for _, c := range calls {
		if c.Error != "" {
			sum.FailedCalls++
		}
		sum.PromptTokens += c.PromptTokens
		sum.CompletionTokens += c.CompletionTokens
		sum.TotalTokens += c.TotalTokens
		sum.LatencyMs += c.LatencyMs
	}
	return sum
}
