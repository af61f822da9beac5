package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jkcg-learning/debate/internal/domain"
)

// printer renders pipeline events as the console transcript.
// The topic line is held back until intake has accepted the input.
type printer struct {
	w     io.Writer
	topic string
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

// OnEvent implements pipeline.Observer.
func (p *printer) OnEvent(ev domain.Event) {
	switch ev.Type {
	case domain.EventTypeRunStarted:
		var payload domain.RunStartedPayload
		if json.Unmarshal(ev.Payload, &payload) == nil {
			p.topic = payload.Topic
		}

	case domain.EventTypeStageStarted:
		var payload domain.StagePayload
		if json.Unmarshal(ev.Payload, &payload) == nil && payload.Stage == domain.StageQualificationGate {
			fmt.Fprintf(p.w, "Topic Provided: %s\n", p.topic)
		}

	case domain.EventTypeQualificationChecked:
		var payload domain.QualificationPayload
		if json.Unmarshal(ev.Payload, &payload) == nil && payload.Qualification == domain.QualificationQualified {
			fmt.Fprintf(p.w, "Qualification Check: %s\n", payload.Note)
		}

	case domain.EventTypeArgumentDelivered:
		var payload domain.ArgumentPayload
		if json.Unmarshal(ev.Payload, &payload) != nil {
			return
		}
		if payload.Side == domain.SideA {
			fmt.Fprintf(p.w, "\n--- Debate Round %d ---\n\n", payload.Round+1)
		}
		fmt.Fprintf(p.w, "%s:\n%s\n\n", payload.Speaker, payload.Argument)

	case domain.EventTypeVerdictAnnounced:
		var payload domain.VerdictPayload
		if json.Unmarshal(ev.Payload, &payload) == nil {
			fmt.Fprintf(p.w, "Winner Announcement:\n\n%s\n", payload.Announcement)
		}

	case domain.EventTypeRunAborted:
		var payload domain.RunAbortedPayload
		if json.Unmarshal(ev.Payload, &payload) != nil {
			return
		}
		switch payload.Reason {
		case domain.AbortReasonMissingInput:
			fmt.Fprintln(p.w, "Missing topic or debater names. Aborting debate.")
		case domain.AbortReasonNotQualified:
			fmt.Fprintln(p.w, "Debaters are not qualified. Aborting debate.")
		}
		fmt.Fprintln(p.w, "Debate aborted. No winner declared.")

	case domain.EventTypeRunFailed:
		var payload domain.RunFailedPayload
		if json.Unmarshal(ev.Payload, &payload) == nil {
			fmt.Fprintf(p.w, "Debate failed: %s\n", payload.Message)
		}
	}
}
