package tui

import (
	"strings"
)

// errorHints suggests next steps for a failure message.
func errorHints(errMsg string, provider string) []string {
	errLower := strings.ToLower(errMsg)

	switch {
	// Auth
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "status 401") || strings.Contains(errLower, "unauthorized"):
		return []string{
			"Check your API key in ~/.config/icebreak/config.yaml",
			"Or press [s] to open settings",
		}
	case strings.Contains(errLower, "status 429") || strings.Contains(errLower, "rate limit"):
		return []string{
			"You've hit the rate limit",
			"Wait a moment and try again",
		}
	// Local server down
	case provider == "ollama" && strings.Contains(errLower, "request failed"):
		return []string{
			"Make sure Ollama is running: ollama serve",
			"Or switch provider in settings",
		}
	case strings.Contains(errLower, "connection") || strings.Contains(errLower, "connect") ||
		strings.Contains(errLower, "timeout") || strings.Contains(errLower, "no such host"):
		return []string{
			"Check your internet connection",
			"Or check the endpoint in settings",
		}
	// Payload
	case strings.Contains(errLower, "could not find response text"):
		return []string{
			"The endpoint answered in an unexpected format",
			"Check the endpoint in settings",
		}
	}
	return nil
}
