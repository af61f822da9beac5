// Package policy evaluates the moderator's qualification verdict with OPA.
package policy

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/open-policy-agent/opa/rego"

	"github.com/jkcg-learning/debate/internal/domain"
)

// DefaultQuery is the rule the engine reads the decision from.
const DefaultQuery = "data.debate.qualification.decision"

// DefaultPolicy is the embedded qualification policy.
//
//go:embed qualification.rego
var DefaultPolicy string

// QualificationInput is the document handed to the policy as input.
type QualificationInput struct {
	Topic    string
	DebaterA string
	DebaterB string
	Response string
}

// Engine is the OPA policy engine. The prepared query is safe for
// concurrent evaluation.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a policy engine from rego source.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query(DefaultQuery),
		rego.Module("qualification.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// NewDefaultEngine creates an engine running the embedded policy.
func NewDefaultEngine(ctx context.Context) (*Engine, error) {
	return NewEngine(ctx, DefaultPolicy)
}

// LoadEngine reads rego source from path, or uses the embedded policy when
// path is empty.
func LoadEngine(ctx context.Context, path string) (*Engine, error) {
	if strings.TrimSpace(path) == "" {
		return NewDefaultEngine(ctx)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", path, err)
	}
	return NewEngine(ctx, string(data))
}

// EvaluateQualification maps the moderator's free-text verdict to a
// structured qualification.
func (e *Engine) EvaluateQualification(ctx context.Context, in QualificationInput) (domain.Qualification, error) {
	input := map[string]interface{}{
		"topic":     in.Topic,
		"debater_a": in.DebaterA,
		"debater_b": in.DebaterB,
		"response":  in.Response,
	}

	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return domain.QualificationUnknown, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return domain.QualificationUnknown, fmt.Errorf("policy produced no decision")
	}

	s, ok := results[0].Expressions[0].Value.(string)
	if !ok {
		return domain.QualificationUnknown, fmt.Errorf("policy decision has type %T, want string", results[0].Expressions[0].Value)
	}

	switch q := domain.Qualification(s); q {
	case domain.QualificationQualified, domain.QualificationNotQualified:
		return q, nil
	default:
		return domain.QualificationUnknown, fmt.Errorf("unknown policy decision %q", s)
	}
}
