package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	st := a.styles()
	var b strings.Builder

	// Title
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Title.Render("Help")))
	b.WriteString("\n\n")

	// Buttons
	buttons := []string{
		"  i              Icebreaker question",
		"  f              Weird fact",
		"  j              Joke",
		"  w              Weather conversation starter",
		"  t              Next color theme",
	}
	buttonsBox := st.Box.Copy().
		Width(50).
		Render(strings.Join(buttons, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, buttonsBox))
	b.WriteString("\n\n")

	// Commands
	shortcuts := []string{
		"  Tab/Shift+Tab  Move between fields",
		"  Left/Right     Change context, persona or button",
		"  Enter          Press the focused button",
		"  s              Settings",
		"  Esc            Go back / Quit",
	}

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Subtitle.Render("Keyboard Shortcuts")))
	b.WriteString("\n\n")

	shortcutsBox := st.Box.Copy().
		Width(50).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.StatusBar.Render("[Esc] Back")))

	return a.centerVertically(b.String())
}
