package llm

import "time"

type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(apiKey, model string, timeout time.Duration) *OpenRouterProvider {
	if model == "" {
		model = "meta-llama/llama-3.1-8b-instruct"
	}
	return &OpenRouterProvider{
		OpenAIProvider: newOpenAICompatible("openrouter", "https://openrouter.ai/api/v1", apiKey, model, timeout),
	}
}
