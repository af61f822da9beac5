// Package protocol defines the WebSocket messages of the debate stream.
package protocol

import (
	"time"

	"github.com/jkcg-learning/debate/internal/domain"
)

// Message types from client to server
const (
	TypeStart  = "start"
	TypeCancel = "cancel"
)

// Message types from server to client
const (
	TypeEvent  = "event"
	TypeResult = "result"
	TypeError  = "error"
)

// Error codes
const (
	ErrorCodeInvalidMessage = "INVALID_MESSAGE"
	ErrorCodeRunFailed      = "RUN_FAILED"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type  string `json:"type"`
	Ts    int64  `json:"ts"`
	RunID string `json:"run_id,omitempty"`
}

// NewBase returns a BaseMessage stamped with the current time.
func NewBase(msgType, runID string) BaseMessage {
	return BaseMessage{Type: msgType, Ts: time.Now().UnixMilli(), RunID: runID}
}

// StartMessage is sent by the client to start a debate.
type StartMessage struct {
	BaseMessage
	domain.DebateInput
}

// CancelMessage is sent by the client to stop the running debate.
type CancelMessage struct {
	BaseMessage
}

// EventMessage carries one pipeline event.
type EventMessage struct {
	BaseMessage
	Event domain.Event `json:"event"`
}

// ResultMessage is sent once the debate finished or aborted.
type ResultMessage struct {
	BaseMessage
	Result *domain.DebateResult `json:"result"`
}

// ErrorMessage is sent on protocol errors and failed runs.
type ErrorMessage struct {
	BaseMessage
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Result  *domain.DebateResult `json:"result,omitempty"`
}
