package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/domain"
	"github.com/jkcg-learning/debate/internal/policy"
	"github.com/jkcg-learning/debate/internal/runctx"
)

type recordedCall struct {
	Agent   string
	Stage   domain.Stage
	RunID   string
	Persona domain.Persona
	Prompt  string
}

// script records every call made by the agents it hands out.
type script struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (s *script) agent(name string, reply func(n int, prompt string) (string, error)) agent.LanguageAgent {
	n := 0
	return agent.Func(func(ctx context.Context, persona domain.Persona, prompt string) (string, error) {
		s.mu.Lock()
		s.calls = append(s.calls, recordedCall{
			Agent:   name,
			Stage:   runctx.StageFromContext(ctx),
			RunID:   runctx.RunIDFromContext(ctx),
			Persona: persona,
			Prompt:  prompt,
		})
		n++
		i := n
		s.mu.Unlock()
		return reply(i, prompt)
	})
}

func (s *script) callsBy(name string) []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []recordedCall
	for _, c := range s.calls {
		if c.Agent == name {
			out = append(out, c)
		}
	}
	return out
}

func (s *script) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// moderatorReply answers the three moderator prompts.
func moderatorReply(qualification string) func(int, string) (string, error) {
	return func(_ int, prompt string) (string, error) {
		switch {
		case strings.HasPrefix(prompt, "Verify if"):
			return qualification, nil
		case strings.HasPrefix(prompt, "Provide a brief description of"):
			name := strings.TrimPrefix(prompt, "Provide a brief description of ")
			name = name[:strings.Index(name, ",")]
			return "  " + name + " is sharp.\n", nil
		case strings.HasPrefix(prompt, "Based on the following debate"):
			return "Alice wins on evidence.", nil
		}
		return "", fmt.Errorf("unexpected moderator prompt %q", prompt)
	}
}

// numbered answers with prefix plus the call number: A1, A2, ...
func numbered(prefix string) func(int, string) (string, error) {
	return func(n int, _ string) (string, error) {
		return fmt.Sprintf("%s%d", prefix, n), nil
	}
}

type fixture struct {
	script *script
	agents Agents
	events []domain.Event
}

func newFixture(qualification string) *fixture {
	s := &script{}
	return &fixture{
		script: s,
		agents: Agents{
			Moderator: s.agent("moderator", moderatorReply(qualification)),
			DebaterA:  s.agent("a", numbered("A")),
			DebaterB:  s.agent("b", numbered("B")),
		},
	}
}

func (f *fixture) orchestrator(t *testing.T, opts ...Option) *Orchestrator {
	t.Helper()
	catalog, err := agent.DefaultCatalog()
	require.NoError(t, err)
	judge, err := policy.NewDefaultEngine(context.Background())
	require.NoError(t, err)

	opts = append([]Option{WithObserver(ObserverFunc(func(e domain.Event) {
		f.events = append(f.events, e)
	}))}, opts...)
	return New(f.agents, catalog, judge, opts...)
}

func (f *fixture) eventTypes() []domain.EventType {
	out := make([]domain.EventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

var pizza = domain.DebateInput{Topic: "Pineapple on pizza", DebaterAName: "Alice", DebaterBName: "Bob"}
