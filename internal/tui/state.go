package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sant0-9/icebreak/internal/config"
	"github.com/sant0-9/icebreak/internal/prompts"
	"github.com/sant0-9/icebreak/internal/session"
	"github.com/sant0-9/icebreak/internal/theme"
)

type focus int

const (
	focusContext focus = iota
	focusPersona
	focusButtons
	focusCount
)

// themeButton is the index of the theme button, after the request kinds.
var themeButton = len(prompts.Kinds())

type state struct {
	// Config
	saved  *config.Config
	config *config.Config
	log    *zap.Logger

	// Selectors
	focus      focus
	contextIdx int
	personaIdx int
	buttonIdx  int

	// Requests
	orch    *session.Orchestrator
	spinner spinner.Model
	themes  theme.Cycler

	// Provider
	providerReady bool
	providerError error

	// Settings
	settingsMode     string
	settingsSelected int
	settingsInput    textinput.Model
	settingsError    error
	settingsDraft    *config.Config
}

// newState keeps saved, the file contents settings edits start from, apart
// from cfg, the config in effect for this run.
func newState(saved, cfg *config.Config, log *zap.Logger) *state {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	input := textinput.New()
	input.CharLimit = 300
	input.Width = 46

	return &state{
		saved:         saved,
		config:        cfg,
		log:           log,
		spinner:       sp,
		settingsInput: input,
	}
}

func (s *state) selection() session.Selection {
	return session.Selection{
		Context: prompts.Contexts()[s.contextIdx].Key,
		Persona: prompts.Personas()[s.personaIdx].Key,
	}
}

// editable is the config a settings change applies to: a pending draft, or
// what is on disk.
func (s *state) editable() config.Config {
	if s.settingsDraft != nil {
		return *s.settingsDraft
	}
	return *s.saved
}

func (s *state) loading() bool {
	return s.orch.Surface().Status() == session.StatusLoading
}

// step moves idx by delta, wrapping within n.
func step(idx, delta, n int) int {
	return ((idx+delta)%n + n) % n
}
