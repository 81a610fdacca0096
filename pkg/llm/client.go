package llm

import (
	"context"
	"log/slog"
	"strings"
)

// Generator produces text from a prompt. Each implementation wraps one
// external text-generation capability.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// New selects a Generator from the configured provider name and API keys.
// Missing credentials fall back to the deterministic mock client so the
// pipeline stays runnable without network access.
func New(provider, openAIKey, anthropicKey, model string) Generator {
	switch strings.ToLower(provider) {
	case "anthropic":
		if anthropicKey != "" {
			return NewAnthropicClient(anthropicKey, model)
		}
	default:
		if openAIKey != "" {
			return NewOpenAIClient(openAIKey, model)
		}
	}

	slog.Warn("no LLM credentials configured, using mock generator")
	return MockClient{}
}
