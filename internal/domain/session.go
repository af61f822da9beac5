package domain

import (
	"errors"
	"strings"
)

// DefaultRounds is the number of argument rounds in a debate.
const DefaultRounds = 3

var (
	// ErrEmptyResponse indicates the language model returned no usable text.
	ErrEmptyResponse = errors.New("empty response from language agent")
	// ErrRunNotFound indicates no usage was recorded for a run ID.
	ErrRunNotFound = errors.New("run not found")
)

// DebateInput is the raw input supplied by the caller before a run starts.
type DebateInput struct {
	Topic        string `json:"topic"`
	DebaterAName string `json:"debater_a_name"`
	DebaterBName string `json:"debater_b_name"`
}

// Normalize returns the input with surrounding whitespace removed.
func (in DebateInput) Normalize() DebateInput {
	return DebateInput{
		Topic:        strings.TrimSpace(in.Topic),
		DebaterAName: strings.TrimSpace(in.DebaterAName),
		DebaterBName: strings.TrimSpace(in.DebaterBName),
	}
}

// Complete reports whether every field is non-empty after trimming.
func (in DebateInput) Complete() bool {
	n := in.Normalize()
	return n.Topic != "" && n.DebaterAName != "" && n.DebaterBName != ""
}

// Persona is the role description handed to a language agent.
type Persona struct {
	Role      string `json:"role"`
	Goal      string `json:"goal,omitempty"`
	Backstory string `json:"backstory"`
}

// IsZero reports whether the persona has not been built yet.
func (p Persona) IsZero() bool {
	return p.Role == "" && p.Goal == "" && p.Backstory == ""
}

// SystemPrompt renders the persona as the system message for a model.
func (p Persona) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are ")
	sb.WriteString(p.Role)
	sb.WriteString(".\n")
	if p.Goal != "" {
		sb.WriteString("Your goal: ")
		sb.WriteString(p.Goal)
		sb.WriteString("\n")
	}
	sb.WriteString(p.Backstory)
	return sb.String()
}

// Round is one exchange: debater A's argument followed by debater B's.
type Round struct {
	Index     int    `json:"index"`
	ArgumentA string `json:"argument_a"`
	ArgumentB string `json:"argument_b"`
}

// DebateSession holds all mutable state for one run. It is owned by a single
// pipeline invocation and never shared.
type DebateSession struct {
	Topic              string        `json:"topic"`
	DebaterAName       string        `json:"debater_a_name"`
	DebaterBName       string        `json:"debater_b_name"`
	DebaterATraits     string        `json:"debater_a_traits,omitempty"`
	DebaterBTraits     string        `json:"debater_b_traits,omitempty"`
	DebaterA           Persona       `json:"-"`
	DebaterB           Persona       `json:"-"`
	Aborted            bool          `json:"aborted"`
	AbortReason        AbortReason   `json:"abort_reason,omitempty"`
	Qualification      Qualification `json:"qualification,omitempty"`
	QualificationNote  string        `json:"qualification_note,omitempty"`
	History            []Round       `json:"history"`
	WinnerAnnouncement string        `json:"winner_announcement,omitempty"`
}

// NewDebateSession returns an empty session ready for intake.
func NewDebateSession() *DebateSession {
	return &DebateSession{History: []Round{}}
}

// Abort marks the session aborted. The flag is sticky.
func (s *DebateSession) Abort(reason AbortReason) {
	s.Aborted = true
	if s.AbortReason == AbortReasonNone {
		s.AbortReason = reason
	}
}

// AppendRound records a completed round. Rounds must arrive in order.
func (s *DebateSession) AppendRound(r Round) error {
	if r.Index != len(s.History) {
		return errors.New("round index out of order")
	}
	s.History = append(s.History, r)
	return nil
}

// Name returns the debater name for a side.
func (s *DebateSession) Name(side Side) string {
	if side == SideB {
		return s.DebaterBName
	}
	return s.DebaterAName
}

// Status derives the run status from the session.
func (s *DebateSession) Status() RunStatus {
	switch {
	case s.Aborted:
		return RunStatusAborted
	case s.WinnerAnnouncement != "":
		return RunStatusDone
	default:
		return RunStatusRunning
	}
}
