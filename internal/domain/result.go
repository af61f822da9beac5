package domain

// DebateResult is what a caller gets back for one run.
type DebateResult struct {
	RunID   string         `json:"run_id"`
	Status  RunStatus      `json:"status"`
	Session *DebateSession `json:"session"`
	Error   string         `json:"error,omitempty"`
}

// UsageReport lists the metered calls of a run with their totals.
type UsageReport struct {
	Summary UsageSummary `json:"summary"`
	Calls   []LLMCall    `json:"calls"`
}
