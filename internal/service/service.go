// Package service is the application layer: it assembles a debate pipeline
// per run and meters every language agent call into the usage ledger.
package service

import (
	"github.com/jkcg-learning/debate/internal/adapter/llm"
	"github.com/jkcg-learning/debate/internal/agent"
	"github.com/jkcg-learning/debate/internal/config"
	"github.com/jkcg-learning/debate/internal/logging"
	"github.com/jkcg-learning/debate/internal/pipeline"
	store "github.com/jkcg-learning/debate/internal/repository"
)

type Service struct {
	store     store.Store
	llmClient llm.LLMClient
	personas  pipeline.PersonaCatalog
	judge     pipeline.QualificationJudge
	config    *config.Config
	logger    *logging.Logger
}

func New(store store.Store, llmClient llm.LLMClient, personas pipeline.PersonaCatalog, judge pipeline.QualificationJudge, cfg *config.Config, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Service{
		store:     store,
		llmClient: llmClient,
		personas:  personas,
		judge:     judge,
		config:    cfg,
		logger:    logger,
	}
}

// agents returns the language agents for one run. All three roles share one
// stateless LLM agent; the persona passed per call sets the voice.
func (s *Service) agents() pipeline.Agents {
	a := agent.NewLLMAgent(s.llmClient, s.config.LLMModel,
		agent.WithTemperature(s.config.LLMTemperature),
		agent.WithRecorder(s.store),
		agent.WithLogger(s.logger),
	)
	return pipeline.Agents{Moderator: a, DebaterA: a, DebaterB: a}
}
