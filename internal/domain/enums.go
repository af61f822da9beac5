// Package domain defines the core domain models for the debate orchestrator.
package domain

// RunStatus represents the status of a debate run.
type RunStatus string

const (
	RunStatusRunning RunStatus = "RUNNING"
	RunStatusAborted RunStatus = "ABORTED"
	RunStatusDone    RunStatus = "DONE"
	RunStatusFailed  RunStatus = "FAILED"
)

// AbortReason records why a pipeline stopped early.
type AbortReason string

const (
	AbortReasonNone         AbortReason = ""
	AbortReasonMissingInput AbortReason = "missing_input"
	AbortReasonNotQualified AbortReason = "not_qualified"
)

// Qualification is the structured verdict of the qualification check.
type Qualification string

const (
	QualificationUnknown      Qualification = ""
	QualificationQualified    Qualification = "qualified"
	QualificationNotQualified Qualification = "not_qualified"
)

// Stage names a pipeline stage.
type Stage string

const (
	StageTopicIntake       Stage = "topic_intake"
	StageQualificationGate Stage = "qualification_gate"
	StageDebateLoop        Stage = "debate_loop"
	StageAdjudication      Stage = "adjudication"
)

// Side identifies one of the two debaters.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// EventType represents the type of a pipeline event.
type EventType string

const (
	EventTypeRunStarted           EventType = "run_started"
	EventTypeStageStarted         EventType = "stage_started"
	EventTypeStageFinished        EventType = "stage_finished"
	EventTypeQualificationChecked EventType = "qualification_checked"
	EventTypeTraitsResolved       EventType = "traits_resolved"
	EventTypeArgumentDelivered    EventType = "argument_delivered"
	EventTypeRoundCompleted       EventType = "round_completed"
	EventTypeVerdictAnnounced     EventType = "verdict_announced"
	EventTypeRunAborted           EventType = "run_aborted"
	EventTypeRunFailed            EventType = "run_failed"
	EventTypeRunDone              EventType = "run_done"
)
