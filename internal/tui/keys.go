package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/sant0-9/icebreak/internal/prompts"
)

type keyMap struct {
	Quit      key.Binding
	Back      key.Binding
	Help      key.Binding
	Settings  key.Binding
	Enter     key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding

	Icebreaker key.Binding
	Fact       key.Binding
	Joke       key.Binding
	Weather    key.Binding
	Theme      key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left/h", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("right/l", "next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "down"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	FocusPrev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),

	Icebreaker: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "icebreaker"),
	),
	Fact: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "weird fact"),
	),
	Joke: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("j", "joke"),
	),
	Weather: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "weather"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
}

// kindHotkeys maps the request hotkeys to their kinds.
var kindHotkeys = []struct {
	binding *key.Binding
	kind    prompts.Kind
}{
	{&keys.Icebreaker, prompts.KindIcebreaker},
	{&keys.Fact, prompts.KindFact},
	{&keys.Joke, prompts.KindJoke},
	{&keys.Weather, prompts.KindWeather},
}
