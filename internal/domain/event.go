package domain

import "encoding/json"

// Event represents a pipeline event emitted while a debate runs.
type Event struct {
	EventID string          `json:"event_id"`
	RunID   string          `json:"run_id"`
	Ts      int64           `json:"ts"` // Unix milliseconds
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RunStartedPayload is the payload for run_started event.
type RunStartedPayload struct {
	Topic        string `json:"topic"`
	DebaterAName string `json:"debater_a_name"`
	DebaterBName string `json:"debater_b_name"`
	Rounds       int    `json:"rounds"`
}

// StagePayload is the payload for stage_started and stage_finished events.
type StagePayload struct {
	Stage      Stage `json:"stage"`
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// QualificationPayload is the payload for qualification_checked event.
type QualificationPayload struct {
	Qualification Qualification `json:"qualification"`
	Note          string        `json:"note"`
}

// TraitsPayload is the payload for traits_resolved event.
type TraitsPayload struct {
	DebaterATraits string `json:"debater_a_traits"`
	DebaterBTraits string `json:"debater_b_traits"`
}

// ArgumentPayload is the payload for argument_delivered event.
type ArgumentPayload struct {
	Round    int    `json:"round"`
	Side     Side   `json:"side"`
	Speaker  string `json:"speaker"`
	Argument string `json:"argument"`
}

// RoundPayload is the payload for round_completed event.
type RoundPayload struct {
	Round Round `json:"round"`
}

// VerdictPayload is the payload for verdict_announced event.
type VerdictPayload struct {
	Announcement string `json:"announcement"`
}

// RunAbortedPayload is the payload for run_aborted event.
type RunAbortedPayload struct {
	Stage  Stage       `json:"stage"`
	Reason AbortReason `json:"reason"`
	Note   string      `json:"note,omitempty"`
}

// RunFailedPayload is the payload for run_failed event.
type RunFailedPayload struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// RunDonePayload is the payload for run_done event.
type RunDonePayload struct {
	Rounds     int   `json:"rounds"`
	DurationMs int64 `json:"duration_ms"`
}
