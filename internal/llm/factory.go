package llm

import (
	"fmt"
	"strings"

	"github.com/sant0-9/icebreak/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := cfg.ResolvedModel()

	switch cfg.Provider {
	case "worker":
		return NewWorkerProvider(cfg.Endpoint, cfg.Timeout), nil

	case "ollama":
		p, err := NewOllamaProvider(cfg.BaseURL, model, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return p, nil

	case "openai":
		p := NewOpenAIProvider(cfg.APIKey, model, cfg.Timeout)
		if cfg.BaseURL != "" {
			p.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		return p, nil

	case "groq":
		return NewGroqProvider(cfg.APIKey, model, cfg.Timeout), nil

	case "openrouter":
		return NewOpenRouterProvider(cfg.APIKey, model, cfg.Timeout), nil

	case "custom":
		return NewCustomProvider(cfg.BaseURL, cfg.APIKey, model, cfg.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
