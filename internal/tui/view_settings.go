package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/icebreak/internal/config"
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch s.settingsMode {
	case "provider":
		switch {
		case key.Matches(msg, keys.Up):
			s.settingsSelected = step(s.settingsSelected, -1, len(config.Providers))
		case key.Matches(msg, keys.Down):
			s.settingsSelected = step(s.settingsSelected, 1, len(config.Providers))
		case key.Matches(msg, keys.Enter):
			next := withProvider(*s.saved, config.Providers[s.settingsSelected])
			if next.Provider == "custom" {
				// A custom provider has no usable default, so ask for its URL first.
				s.settingsDraft = &next
				s.settingsError = nil
				return a.editEndpoint(next.TargetURL())
			}
			return a.saveConfig(next)
		}
		return nil

	case "endpoint", "apikey":
		if key.Matches(msg, keys.Enter) {
			next := s.editable()
			value := strings.TrimSpace(s.settingsInput.Value())
			if s.settingsMode == "apikey" {
				next.APIKey = value
			} else {
				next.SetTargetURL(value)
			}
			return a.saveConfig(next)
		}
		var cmd tea.Cmd
		s.settingsInput, cmd = s.settingsInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "p":
		s.settingsMode = "provider"
		s.settingsSelected = config.ProviderIndex(s.saved.Provider)
	case "e":
		return a.editEndpoint(s.saved.TargetURL())
	case "k":
		s.settingsMode = "apikey"
		s.settingsInput.EchoMode = textinput.EchoPassword
		s.settingsInput.Placeholder = "Paste your API key here..."
		s.settingsInput.Reset()
		s.settingsInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (a *App) editEndpoint(current string) tea.Cmd {
	s := a.state
	s.settingsMode = "endpoint"
	s.settingsInput.EchoMode = textinput.EchoNormal
	s.settingsInput.Placeholder = "https://..."
	s.settingsInput.SetValue(current)
	s.settingsInput.Focus()
	return textinput.Blink
}

// withProvider switches cfg to p, resetting the model and key. Keys from the
// environment are applied when the config is used, not stored.
func withProvider(cfg config.Config, p config.ProviderInfo) config.Config {
	if cfg.Provider == p.ID {
		return cfg
	}
	cfg.Provider = p.ID
	cfg.Model = p.DefaultModel
	cfg.APIKey = ""
	return cfg
}

func (a *App) renderSettings() string {
	switch a.state.settingsMode {
	case "provider":
		return a.renderSettingsProvider()
	case "endpoint":
		if a.state.settingsDraft != nil {
			return a.renderSettingsInput("Custom Base URL", "An OpenAI-compatible API, e.g. http://localhost:1234/v1")
		}
		return a.renderSettingsInput("Edit Endpoint", "Where prompts are sent")
	case "apikey":
		return a.renderSettingsInput("Update API Key", "Enter your new API key")
	default:
		return a.renderSettingsMain()
	}
}

func (a *App) renderSettingsMain() string {
	st := a.styles()
	cfg := a.state.config
	var b strings.Builder

	// Title
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Title.Render("Settings")))
	b.WriteString("\n\n")

	// Current config
	providerName := cfg.Provider
	if p := config.GetProvider(cfg.Provider); p != nil {
		providerName = p.Name
	}
	endpoint := cfg.TargetURL()
	if endpoint == "" {
		endpoint = "(default)"
	}
	model := cfg.ResolvedModel()
	if model == "" {
		model = "(server default)"
	}

	configLines := []string{
		fmt.Sprintf("  Provider: %s", providerName),
		fmt.Sprintf("  Endpoint: %s", truncate(endpoint, 36)),
		fmt.Sprintf("  Model:    %s", model),
		fmt.Sprintf("  API Key:  %s", cfg.MaskedAPIKey()),
		fmt.Sprintf("  File:     %s", configFileLabel()),
	}
	configBox := st.Box.Copy().
		Width(50).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, configBox))
	b.WriteString("\n\n")

	// Actions
	actions := []string{
		"  [p] Change provider",
		"  [e] Edit endpoint",
		"  [k] Update API key",
	}
	actionsBox := st.Box.Copy().
		Width(50).
		Render(strings.Join(actions, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, actionsBox))
	b.WriteString("\n\n")

	a.writeSettingsError(&b)

	// Instructions
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.StatusBar.Render("[Esc] Back")))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsProvider() string {
	st := a.styles()
	var b strings.Builder

	// Title
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Title.Render("Select Provider")))
	b.WriteString("\n\n")

	// Provider list
	var lines []string
	for i, p := range config.Providers {
		cursor := "  "
		if i == a.state.settingsSelected {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, p.Name, p.Description)
		if i == a.state.settingsSelected {
			line = st.Focused.Render(line)
		}
		lines = append(lines, line)
	}

	listBox := st.Box.Copy().
		Width(50).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	a.writeSettingsError(&b)

	// Instructions
	instructions := st.StatusBar.Render("[Up/Down] Navigate  [Enter] Select  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderSettingsInput(title, desc string) string {
	st := a.styles()
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Title.Render(title)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, st.Subtitle.Render(desc)))
	b.WriteString("\n\n")

	// Input
	inputBox := st.Box.Copy().
		Width(50).
		BorderForeground(st.Palette.Primary).
		Render(a.state.settingsInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	a.writeSettingsError(&b)

	// Instructions
	instructions := st.StatusBar.Render("[Enter] Save  [Esc] Cancel")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func configFileLabel() string {
	if !config.Exists() {
		return "(no config file)"
	}
	path, err := config.ConfigPath()
	if err != nil {
		return "(unknown)"
	}
	return truncate(path, 36)
}

func (a *App) writeSettingsError(b *strings.Builder) {
	if a.state.settingsError == nil {
		return
	}
	msg := a.styles().Error.Render(a.state.settingsError.Error())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
	b.WriteString("\n\n")
}
