package llm

import "context"

const mockPrefixChars = 400

// MockClient echoes a prefix of the prompt. It stands in for a real
// generation backend when no credentials are configured, so every response is
// deterministic and produced without network access.
type MockClient struct{}

func (MockClient) Generate(_ context.Context, prompt string, _ int, _ float64) (string, error) {
	if len(prompt) > mockPrefixChars {
		prompt = prompt[:mockPrefixChars] + "..."
	}
	return "[MOCK LLM RESPONSE] " + prompt, nil
}
