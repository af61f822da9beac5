package pipeline

import (
	"context"

	"github.com/jkcg-learning/debate/internal/domain"
)

// TopicIntake validates the raw input and copies it into the session.
type TopicIntake struct{}

// Name implements Stage.
func (TopicIntake) Name() domain.Stage { return domain.StageTopicIntake }

// Run aborts with missing_input when any field is blank after trimming.
func (TopicIntake) Run(_ context.Context, run *Run) (Outcome, error) {
	in := run.Input.Normalize()
	if !in.Complete() {
		return AbortWith(domain.AbortReasonMissingInput), nil
	}

	run.Session.Topic = in.Topic
	run.Session.DebaterAName = in.DebaterAName
	run.Session.DebaterBName = in.DebaterBName
	return Continue, nil
}
