package llm

import (
	"github.com/jkcg-learning/debate/internal/config"
	"github.com/jkcg-learning/debate/internal/logging"
)

// NewLLMClient creates an LLM client from configuration.
// DEBATE_MODE=MOCK returns a MockClient; otherwise a real Client.
func NewLLMClient(cfg *config.Config, logger *logging.Logger) LLMClient {
	if cfg.UseMockLLM() {
		logger.Info("DEBATE_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	logger.Info("using LLM endpoint", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	return NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout())
}
