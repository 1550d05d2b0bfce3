package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/icebreak/internal/config"
	"github.com/sant0-9/icebreak/internal/llm"
	"github.com/sant0-9/icebreak/internal/prompts"
	"github.com/sant0-9/icebreak/internal/session"
)

type view int

const (
	viewMain view = iota
	viewSettings
	viewHelp
)

const pingTimeout = 5 * time.Second

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

// NewApp builds the TUI. saved is the config file as stored, cfg the same
// with this run's environment and flag overrides applied. A provider that
// fails to build is reported in the status bar; the app still starts.
func NewApp(saved, cfg *config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	provider, err := llm.NewProvider(cfg)
	a := newApp(saved, cfg, provider, log)
	if err != nil {
		log.Warn("provider unavailable", zap.String("provider", cfg.Provider), zap.Error(err))
		a.state.providerError = err
	}
	return a
}

func newApp(saved, cfg *config.Config, provider llm.Provider, log *zap.Logger) *App {
	s := newState(saved, cfg, log)
	s.orch = session.New(provider, session.SelectorFunc(s.selection), session.NewSurface(), log)

	return &App{
		view:  viewMain,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	provider := a.state.orch.Provider()
	if provider == nil {
		return tea.WindowSize()
	}
	return tea.Batch(tea.WindowSize(), a.pingProvider(provider))
}

func (a *App) pingProvider(provider llm.Provider) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}
		return providerReadyMsg{}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case spinner.TickMsg:
		if !a.state.loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case resultMsg:
		a.state.orch.Apply(msg.outcome)
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.providerError = nil
		return a, nil

	case providerErrorMsg:
		a.state.providerReady = false
		a.state.providerError = msg.error
		a.state.log.Warn("provider ping failed", zap.Error(msg.error))
		return a, nil

	case configSavedMsg:
		a.state.saved = msg.saved
		a.state.config = msg.cfg
		a.state.orch.SetProvider(msg.provider)
		a.state.settingsMode = ""
		a.state.settingsError = nil
		a.state.settingsDraft = nil
		a.state.providerReady = false
		a.state.providerError = nil
		a.state.settingsInput.Blur()
		a.state.log.Info("config saved", zap.String("provider", msg.cfg.Provider))
		return a, a.pingProvider(msg.provider)

	case configErrorMsg:
		a.state.settingsError = msg.error
		return a, nil
	}

	if a.view == viewSettings && a.state.settingsInput.Focused() {
		var cmd tea.Cmd
		a.state.settingsInput, cmd = a.state.settingsInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Back):
		if a.view == viewSettings && a.state.settingsMode != "" {
			a.leaveSettingsMode()
			return nil
		}
		if a.view != viewMain {
			a.view = viewMain
			return nil
		}
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Help) {
			a.view = viewMain
		}
		return nil
	}

	return a.handleMainKey(msg)
}

func (a *App) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	for _, hk := range kindHotkeys {
		if key.Matches(msg, *hk.binding) {
			return a.startRequest(hk.kind)
		}
	}

	switch {
	case key.Matches(msg, keys.Help):
		a.view = viewHelp

	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		s.settingsMode = ""
		s.settingsError = nil

	case key.Matches(msg, keys.Theme):
		a.cycleTheme()

	case key.Matches(msg, keys.FocusNext):
		s.focus = focus(step(int(s.focus), 1, int(focusCount)))

	case key.Matches(msg, keys.FocusPrev):
		s.focus = focus(step(int(s.focus), -1, int(focusCount)))

	case key.Matches(msg, keys.Left):
		a.moveSelection(-1)

	case key.Matches(msg, keys.Right):
		a.moveSelection(1)

	case key.Matches(msg, keys.Enter):
		if s.focus == focusButtons {
			return a.activateButton(s.buttonIdx)
		}
	}

	return nil
}

func (a *App) moveSelection(delta int) {
	s := a.state
	switch s.focus {
	case focusContext:
		s.contextIdx = step(s.contextIdx, delta, len(prompts.Contexts()))
	case focusPersona:
		s.personaIdx = step(s.personaIdx, delta, len(prompts.Personas()))
	case focusButtons:
		s.buttonIdx = step(s.buttonIdx, delta, themeButton+1)
	}
}

func (a *App) activateButton(idx int) tea.Cmd {
	if idx == themeButton {
		a.cycleTheme()
		return nil
	}
	return a.startRequest(prompts.Kinds()[idx].Kind)
}

// startRequest stamps a ticket and runs it off the update loop.
func (a *App) startRequest(kind prompts.Kind) tea.Cmd {
	ticket := a.state.orch.Begin(kind)
	return tea.Batch(a.state.spinner.Tick, a.generate(ticket))
}

func (a *App) generate(ticket *session.Ticket) tea.Cmd {
	orch := a.state.orch
	return func() tea.Msg {
		return resultMsg{orch.Execute(context.Background(), ticket)}
	}
}

func (a *App) cycleTheme() {
	text := a.state.themes.Next()
	a.state.orch.Surface().Set(session.StatusIdle, text)
	a.state.log.Debug("theme changed", zap.String("theme", a.state.themes.Current()))
}

type resultMsg struct{ outcome session.Outcome }
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type configSavedMsg struct {
	saved    *config.Config
	cfg      *config.Config
	provider llm.Provider
}
type configErrorMsg struct{ error }

// saveConfig validates next by building its provider with the environment
// applied, then writes next to disk without it.
func (a *App) saveConfig(next config.Config) tea.Cmd {
	return func() tea.Msg {
		effective := next
		effective.ApplyEnv()

		provider, err := llm.NewProvider(&effective)
		if err != nil {
			return configErrorMsg{err}
		}
		if err := next.Save(); err != nil {
			return configErrorMsg{err}
		}
		return configSavedMsg{saved: &next, cfg: &effective, provider: provider}
	}
}

func (a *App) leaveSettingsMode() {
	a.state.settingsMode = ""
	a.state.settingsError = nil
	a.state.settingsDraft = nil
	a.state.settingsInput.Blur()
	a.state.settingsInput.Reset()
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderMain()
	}
}
