package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/domain"
)

// Adjudication asks the moderator to judge the whole transcript.
type Adjudication struct {
	Moderator agent.LanguageAgent
	Personas  PersonaCatalog
}

// Name implements Stage.
func (Adjudication) Name() domain.Stage { return domain.StageAdjudication }

// Run stores the moderator's raw answer as the winner announcement.
func (a Adjudication) Run(ctx context.Context, run *Run) (Outcome, error) {
	if a.Moderator == nil || a.Personas == nil {
		return Continue, errors.New("adjudication is not configured")
	}

	s := run.Session
	announcement, err := a.Moderator.Respond(ctx, a.Personas.Moderator(), VerdictPrompt(s.DebaterAName, s.DebaterBName, s.History))
	if err != nil {
		return Continue, fmt.Errorf("verdict: %w", err)
	}
	s.WinnerAnnouncement = announcement
	run.Emit(domain.EventTypeVerdictAnnounced, domain.VerdictPayload{Announcement: announcement})
	return Continue, nil
}
