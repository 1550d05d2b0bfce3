package tui

import (
	"strings"

	"github.com/sant0-9/icebreak/internal/tui/styles"
)

// styles returns the styles for the active theme.
func (a *App) styles() styles.Styles {
	return styles.For(a.state.themes.Current())
}

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
