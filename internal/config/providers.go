package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	KeyEnv       string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:          "worker",
		Name:        "Worker",
		Description: "Hosted prompt endpoint, no key",
		NeedsAPIKey: false,
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		NeedsAPIKey:  false,
		Models:       []string{"llama3.2:3b", "llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.2:3b",
	},
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT-4o family",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o-mini", "gpt-4o"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Description:  "Very fast, cheap",
		NeedsAPIKey:  true,
		KeyEnv:       "GROQ_API_KEY",
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.1-8b-instant", "llama-3.3-70b-versatile"},
		DefaultModel: "llama-3.1-8b-instant",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENROUTER_API_KEY",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"meta-llama/llama-3.1-8b-instruct", "openai/gpt-4o-mini"},
		DefaultModel: "meta-llama/llama-3.1-8b-instruct",
	},
	{
		ID:          "custom",
		Name:        "Custom",
		Description: "Any OpenAI-compatible base URL",
		NeedsAPIKey: false,
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// ProviderIndex returns the position of id in Providers, or 0 when unknown.
func ProviderIndex(id string) int {
	for i, p := range Providers {
		if p.ID == id {
			return i
		}
	}
	return 0
}
