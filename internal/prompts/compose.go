package prompts

import (
	"fmt"
	"strings"
)

// Kind is one of the canned generation tasks.
type Kind string

const (
	KindIcebreaker Kind = "icebreaker"
	KindFact       Kind = "fact"
	KindJoke       Kind = "joke"
	KindWeather    Kind = "weather"
)

var taskInstructions = map[Kind]string{
	KindIcebreaker: "Generate a fun and engaging icebreaker question or conversation starter that would help people get to know each other better. Keep it light and friendly.",
	KindFact:       "Share a surprising and unusual fact that most people don't know. Make it interesting and fun!",
	KindJoke:       "Tell me a light-hearted, clean joke that would make people laugh. Keep it appropriate for the setting.",
	KindWeather:    "Generate a weather-related conversation prompt or question that encourages people to share what the weather is like where they are and how it affects their day.",
}

type KindOption struct {
	Kind  Kind
	Label string
}

var kindOptions = []KindOption{
	{KindIcebreaker, "🧊 Icebreaker"},
	{KindFact, "🤯 Weird Fact"},
	{KindJoke, "😂 Joke"},
	{KindWeather, "🌤 Weather"},
}

// Kinds returns the request kinds in button order.
func Kinds() []KindOption {
	out := make([]KindOption, len(kindOptions))
	copy(out, kindOptions)
	return out
}

func (k Kind) Valid() bool {
	_, ok := taskInstructions[k]
	return ok
}

// ParseKind accepts a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown request kind %q (want icebreaker, fact, joke or weather)", s)
	}
	return k, nil
}

// TaskInstruction returns the task sentence for kind. It panics on a kind
// outside the closed set.
func TaskInstruction(kind Kind) string {
	s, ok := taskInstructions[kind]
	if !ok {
		panic(fmt.Sprintf("prompts: unknown request kind %q", kind))
	}
	return s
}

// Compose joins persona, context and task sentences with single spaces, in
// that order.
func Compose(kind Kind, context ContextKey, persona PersonaKey) string {
	return PersonaInstruction(persona) + " " + ContextInstruction(context) + " " + TaskInstruction(kind)
}
