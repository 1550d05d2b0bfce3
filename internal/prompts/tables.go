// Package prompts holds the context and persona instruction tables and
// composes the single prompt string sent to the generator.
package prompts

// ContextKey names the social setting a prompt is written for.
type ContextKey string

const (
	ContextTeam       ContextKey = "team"
	ContextClassroom  ContextKey = "classroom"
	ContextGameNight  ContextKey = "gamenight"
	ContextParty      ContextKey = "party"
	ContextNetworking ContextKey = "networking"
	ContextDefault    ContextKey = "default"
)

// PersonaKey names the voice the generator should answer in.
type PersonaKey string

const (
	PersonaFriendly     PersonaKey = "friendly"
	PersonaCasual       PersonaKey = "casual"
	PersonaSassy        PersonaKey = "sassy"
	PersonaProfessor    PersonaKey = "professor"
	PersonaEnthusiastic PersonaKey = "enthusiastic"
	PersonaZen          PersonaKey = "zen"
	PersonaDefault      PersonaKey = "default"
)

const (
	defaultContextInstruction = "This is for a general setting. Keep it friendly and appropriate for any situation."
	defaultPersonaInstruction = "Respond in a friendly, helpful tone."
)

var contextInstructions = map[ContextKey]string{
	ContextTeam:       "This is for a team meeting at work. Keep it professional but friendly, appropriate for coworkers.",
	ContextClassroom:  "This is for a classroom setting with students. Keep it educational, age-appropriate, and engaging for learning.",
	ContextGameNight:  "This is for a game night with friends. Make it fun, playful, and entertaining for a casual social gathering.",
	ContextParty:      "This is for a party or social event. Make it lively, fun, and great for mingling and socializing.",
	ContextNetworking: "This is for a networking event. Keep it professional, interesting, and good for making business connections.",
	ContextDefault:    defaultContextInstruction,
}

var personaInstructions = map[PersonaKey]string{
	PersonaFriendly:     "Respond in a warm, approachable tone like a friendly coworker. Be helpful and supportive.",
	PersonaCasual:       "Respond in the voice of a friendly, casual intern who uses emojis. Keep it relaxed, fun, and conversational. Use relevant emojis throughout your response to add personality! 😊",
	PersonaSassy:        "Respond with a bit of sass and attitude like a witty intern. Be playful, slightly cheeky, but still helpful. Add some humor and personality!",
	PersonaProfessor:    "Respond in an educational, scholarly tone like a professor. Be informative, articulate, and use a more academic style. You may include interesting context or background information.",
	PersonaEnthusiastic: "Respond with high energy and enthusiasm like an excited friend! Use exclamation points and show genuine excitement about everything!",
	PersonaZen:          "Respond in a calm, peaceful, and mindful tone like a zen master. Be thoughtful and serene in your responses.",
	PersonaDefault:      defaultPersonaInstruction,
}

// ContextInstruction returns the setting sentence for key. Unknown keys,
// including the empty key, get the general-setting sentence.
func ContextInstruction(key ContextKey) string {
	if s, ok := contextInstructions[key]; ok {
		return s
	}
	return defaultContextInstruction
}

// PersonaInstruction returns the tone sentence for key. Unknown keys get the
// plain friendly sentence.
func PersonaInstruction(key PersonaKey) string {
	if s, ok := personaInstructions[key]; ok {
		return s
	}
	return defaultPersonaInstruction
}

type ContextOption struct {
	Key   ContextKey
	Label string
}

type PersonaOption struct {
	Key   PersonaKey
	Label string
}

var contextOptions = []ContextOption{
	{ContextDefault, "General"},
	{ContextTeam, "Team Meeting"},
	{ContextClassroom, "Classroom"},
	{ContextGameNight, "Game Night"},
	{ContextParty, "Party"},
	{ContextNetworking, "Networking Event"},
}

var personaOptions = []PersonaOption{
	{PersonaDefault, "Default"},
	{PersonaFriendly, "Friendly Coworker"},
	{PersonaCasual, "Casual Intern"},
	{PersonaSassy, "Sassy Intern"},
	{PersonaProfessor, "Professor"},
	{PersonaEnthusiastic, "Enthusiastic Friend"},
	{PersonaZen, "Zen Master"},
}

// Contexts returns the selectable contexts in display order.
func Contexts() []ContextOption {
	out := make([]ContextOption, len(contextOptions))
	copy(out, contextOptions)
	return out
}

// Personas returns the selectable personas in display order.
func Personas() []PersonaOption {
	out := make([]PersonaOption, len(personaOptions))
	copy(out, personaOptions)
	return out
}
