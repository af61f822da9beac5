package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/domain"
)

// DebateLoop drives the alternating argument rounds.
type DebateLoop struct {
	DebaterA agent.LanguageAgent
	DebaterB agent.LanguageAgent
	Rounds   int
}

// Name implements Stage.
func (DebateLoop) Name() domain.Stage { return domain.StageDebateLoop }

// Run produces exactly Rounds rounds. Within a round A speaks first and B
// answers with A's fresh argument in view.
func (l DebateLoop) Run(ctx context.Context, run *Run) (Outcome, error) {
	if l.DebaterA == nil || l.DebaterB == nil {
		return Continue, errors.New("debate loop is not configured")
	}
	s := run.Session
	if s.DebaterA.IsZero() || s.DebaterB.IsZero() {
		return Continue, errors.New("debater personas have not been built")
	}

	rounds := l.Rounds
	if rounds < 1 {
		rounds = domain.DefaultRounds
	}

	for i := len(s.History); i < rounds; i++ {
		prior := PriorRounds(s.DebaterAName, s.DebaterBName, s.History)
		var opponentLast string
		if i > 0 {
			opponentLast = s.History[i-1].ArgumentB
		}

		argA, err := l.turn(ctx, run, l.DebaterA, domain.SideA, i,
			DebaterAPrompt(s.Topic, i, s.DebaterAName, prior, opponentLast))
		if err != nil {
			return Continue, err
		}
		argB, err := l.turn(ctx, run, l.DebaterB, domain.SideB, i,
			DebaterBPrompt(s.Topic, i, s.DebaterBName, prior, argA))
		if err != nil {
			return Continue, err
		}

		round := domain.Round{Index: i, ArgumentA: argA, ArgumentB: argB}
		if err := s.AppendRound(round); err != nil {
			return Continue, err
		}
		run.Emit(domain.EventTypeRoundCompleted, domain.RoundPayload{Round: round})
	}

	return Continue, nil
}

func (l DebateLoop) turn(ctx context.Context, run *Run, speaker agent.LanguageAgent, side domain.Side, round int, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s := run.Session
	persona := s.DebaterA
	if side == domain.SideB {
		persona = s.DebaterB
	}
	name := s.Name(side)

	argument, err := speaker.Respond(ctx, persona, prompt)
	if err != nil {
		return "", fmt.Errorf("round %d, %s: %w", round+1, name, err)
	}

	run.Emit(domain.EventTypeArgumentDelivered, domain.ArgumentPayload{
		Round:    round,
		Side:     side,
		Speaker:  name,
		Argument: argument,
	})
	return argument, nil
}
