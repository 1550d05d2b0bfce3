package llm

import "time"

type CustomProvider struct {
	*OpenAIProvider
}

func NewCustomProvider(baseURL, apiKey, model string, timeout time.Duration) *CustomProvider {
	return &CustomProvider{
		OpenAIProvider: newOpenAICompatible("custom", baseURL, apiKey, model, timeout),
	}
}
