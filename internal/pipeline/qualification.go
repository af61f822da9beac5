package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/policy"
)

// QualificationGate asks the moderator whether the debaters suit the topic,
// then resolves their traits and builds their personas.
type QualificationGate struct {
	Moderator agent.LanguageAgent
	Personas  PersonaCatalog
	Judge     QualificationJudge
}

// Name implements Stage.
func (QualificationGate) Name() domain.Stage { return domain.StageQualificationGate }

// Run makes one moderator call for the verdict and, when qualified, one per
// debater for traits.
func (g QualificationGate) Run(ctx context.Context, run *Run) (Outcome, error) {
	if g.Moderator == nil || g.Personas == nil || g.Judge == nil {
		return Continue, errors.New("qualification gate is not configured")
	}

	s := run.Session
	moderator := g.Personas.Moderator()

	note, err := g.Moderator.Respond(ctx, moderator, QualificationPrompt(s.DebaterAName, s.DebaterBName, s.Topic))
	if err != nil {
		return Continue, fmt.Errorf("qualification check: %w", err)
	}
	s.QualificationNote = note

	verdict, err := g.Judge.EvaluateQualification(ctx, policy.QualificationInput{
		Topic:    s.Topic,
		DebaterA: s.DebaterAName,
		DebaterB: s.DebaterBName,
		Response: note,
	})
	if err != nil {
		return Continue, fmt.Errorf("qualification policy: %w", err)
	}
	s.Qualification = verdict
	run.Emit(domain.EventTypeQualificationChecked, domain.QualificationPayload{
		Qualification: verdict,
		Note:          note,
	})

	if verdict == domain.QualificationNotQualified {
		return AbortWith(domain.AbortReasonNotQualified), nil
	}

	traitsA, err := g.traits(ctx, moderator, s.DebaterAName)
	if err != nil {
		return Continue, err
	}
	traitsB, err := g.traits(ctx, moderator, s.DebaterBName)
	if err != nil {
		return Continue, err
	}
	s.DebaterATraits = traitsA
	s.DebaterBTraits = traitsB
	run.Emit(domain.EventTypeTraitsResolved, domain.TraitsPayload{
		DebaterATraits: traitsA,
		DebaterBTraits: traitsB,
	})

	s.DebaterA, err = g.Personas.Debater(domain.SideA, agent.DebaterFields{Name: s.DebaterAName, Topic: s.Topic, Traits: traitsA})
	if err != nil {
		return Continue, fmt.Errorf("build persona for %s: %w", s.DebaterAName, err)
	}
	s.DebaterB, err = g.Personas.Debater(domain.SideB, agent.DebaterFields{Name: s.DebaterBName, Topic: s.Topic, Traits: traitsB})
	if err != nil {
		return Continue, fmt.Errorf("build persona for %s: %w", s.DebaterBName, err)
	}

	return Continue, nil
}

func (g QualificationGate) traits(ctx context.Context, moderator domain.Persona, name string) (string, error) {
	text, err := g.Moderator.Respond(ctx, moderator, TraitsPrompt(name))
	if err != nil {
		return "", fmt.Errorf("traits for %s: %w", name, err)
	}
	return strings.TrimSpace(text), nil
}
