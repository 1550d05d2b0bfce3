package llm

import "time"

// GroqProvider talks to Groq's OpenAI-compatible endpoint.
type GroqProvider struct {
	*OpenAIProvider
}

func NewGroqProvider(apiKey, model string, timeout time.Duration) *GroqProvider {
	if model == "" {
		model = "llama-3.1-8b-instant"
	}
	return &GroqProvider{
		OpenAIProvider: newOpenAICompatible("groq", "https://api.groq.com/openai/v1", apiKey, model, timeout),
	}
}
