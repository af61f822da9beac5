package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockClient is a deterministic LLMClient for local runs and tests. It
// recognises the debate prompts and answers each in kind.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements LLMClient interface.
var _ LLMClient = (*MockClient)(nil)

// CreateChatCompletion returns a mock response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	responseContent := m.generateMockResponse(req)
	promptTokens := m.estimateTokens(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index: 0,
				Message: &ChatMessage{
					Role:    RoleAssistant,
					Content: responseContent,
				},
				FinishReason: "stop",
			},
		},
		Usage: &Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: len(responseContent) / 4,
			TotalTokens:      promptTokens + len(responseContent)/4,
		},
		SystemFingerprint: "mock-fp",
	}, nil
}

// ListModels returns a list of mock models.
func (m *MockClient) ListModels(ctx context.Context) ([]Model, error) {
	return []Model{
		{
			ID:      "mock-debater",
			Object:  "model",
			Created: time.Now().Unix(),
			OwnedBy: "mock",
		},
	}, nil
}

// generateMockResponse generates a mock response based on the request.
func (m *MockClient) generateMockResponse(req *ChatCompletionRequest) string {
	var system, lastUserMessage string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		msg := req.Messages[i]
		if msg.Role == RoleUser && lastUserMessage == "" {
			lastUserMessage = msg.Content
		}
		if msg.Role == RoleSystem && system == "" {
			system = msg.Content
		}
	}

	switch {
	case lastUserMessage == "":
		return "[MOCK] This is a mock response from the LLM client."
	case strings.HasPrefix(lastUserMessage, "Verify if"):
		return "[MOCK] Both are qualified to debate this topic."
	case strings.HasPrefix(lastUserMessage, "Provide a brief description of"):
		name := strings.TrimPrefix(lastUserMessage, "Provide a brief description of ")
		if i := strings.Index(name, ","); i > 0 {
			name = name[:i]
		}
		return fmt.Sprintf("[MOCK] %s is articulate, well read and debates with calm persistence.", name)
	case strings.HasPrefix(lastUserMessage, "Debate Topic:"):
		header := strings.SplitN(lastUserMessage, "\n", 4)
		round := ""
		if len(header) > 1 {
			round = header[1]
		}
		return fmt.Sprintf("[MOCK] %s: %s argues the point.", round, speaker(system))
	case strings.HasPrefix(lastUserMessage, "Based on the following debate"):
		return "[MOCK] After weighing every round, the winner is the first debater for the stronger evidence."
	}

	return fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUserMessage, 100))
}

// speaker extracts the role from a persona system prompt ("You are X.").
func speaker(system string) string {
	line, _, _ := strings.Cut(system, "\n")
	line = strings.TrimSuffix(strings.TrimPrefix(line, "You are "), ".")
	if line == "" {
		return "the debater"
	}
	return line
}

// estimateTokens provides a rough token count estimate.
func (m *MockClient) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
