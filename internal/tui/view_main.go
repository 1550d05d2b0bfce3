package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/icebreak/internal/config"
	"github.com/sant0-9/icebreak/internal/prompts"
	"github.com/sant0-9/icebreak/internal/session"
)

const logo = `
 ██╗ ██████╗███████╗██████╗ ██████╗ ███████╗ █████╗ ██╗  ██╗
 ██║██╔════╝██╔════╝██╔══██╗██╔══██╗██╔════╝██╔══██╗██║ ██╔╝
 ██║██║     █████╗  ██████╔╝██████╔╝█████╗  ███████║█████╔╝
 ██║██║     ██╔══╝  ██╔══██╗██╔══██╗██╔══╝  ██╔══██║██╔═██╗
 ██║╚██████╗███████╗██████╔╝██║  ██║███████╗██║  ██║██║  ██╗
 ╚═╝ ╚═════╝╚══════╝╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝
`

const logoWidth = 62

func (a *App) renderMain() string {
	st := a.styles()

	// Logo
	header := st.Logo.Render("icebreak")
	if a.width >= logoWidth {
		header = st.Logo.Render(logo)
	}
	subtitle := st.Subtitle.Render("Conversation starters for any room")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		header,
		subtitle,
		"",
		a.renderSelectors(),
		"",
		a.renderButtons(),
		"",
		a.renderDisplay(),
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Status bar
	statusLine := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.renderProviderStatus()),
		lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			st.StatusBar.Render("[Tab] Field  [←/→] Change  [Enter] Go  [?] Help  [s] Settings  [Esc] Quit")),
	)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

func (a *App) renderSelectors() string {
	s := a.state
	contexts := prompts.Contexts()
	personas := prompts.Personas()

	rows := []string{
		a.selectorRow("Context", contexts[s.contextIdx].Label, s.focus == focusContext),
		a.selectorRow("Persona", personas[s.personaIdx].Label, s.focus == focusPersona),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) selectorRow(label, value string, focused bool) string {
	st := a.styles()
	v := fmt.Sprintf("  %s  ", value)
	if focused {
		v = st.Focused.Render(fmt.Sprintf("◀ %s ▶", value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, st.Label.Render(label+":"), v)
}

func (a *App) renderButtons() string {
	st := a.styles()
	s := a.state

	labels := make([]string, 0, themeButton+1)
	for _, k := range prompts.Kinds() {
		labels = append(labels, k.Label)
	}
	labels = append(labels, "🎨 Theme") // always last

	rendered := make([]string, len(labels))
	for i, label := range labels {
		if s.focus == focusButtons && i == s.buttonIdx {
			rendered[i] = st.ButtonFocused.Render(label)
		} else {
			rendered[i] = st.Button.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (a *App) renderDisplay() string {
	st := a.styles()
	status, text := a.state.orch.Surface().Snapshot()

	width := min(60, a.width-4)
	if width < 20 {
		width = 20
	}

	var body string
	box := st.Box.Copy().Width(width)

	switch status {
	case session.StatusLoading:
		// Spinner
		body = a.state.spinner.View() + " " + text
	case session.StatusFailed:
		box = box.BorderForeground(st.Palette.Error)
		body = st.Error.Render(text)
		if hints := errorHints(text, a.state.config.Provider); len(hints) > 0 {
			body += "\n\n" + st.Subtitle.Render(strings.Join(hints, "\n"))
		}
	case session.StatusSuccess:
		box = box.BorderForeground(st.Palette.Success)
		body = st.Success.Render(text)
	default:
		body = text
		if body == "" {
			body = st.Subtitle.Render("Pick a context and persona, then press a button.")
		}
	}

	return box.Render(body)
}

func (a *App) renderProviderStatus() string {
	st := a.styles()
	s := a.state

	name := s.config.Provider
	if p := config.GetProvider(name); p != nil {
		name = p.Name
	}

	switch {
	case s.providerError != nil:
		return st.Error.Render(fmt.Sprintf("%s: %s", name, truncate(s.providerError.Error(), 60)))
	case s.providerReady:
		return lipgloss.NewStyle().Foreground(st.Palette.Success).Render(name + " ● ready")
	default:
		return st.StatusBar.Render(name + " ○ connecting...")
	}
}
