package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
}

var palettes = map[string]Palette{
	"default": {
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Success:   lipgloss.Color("#10B981"),
		Error:     lipgloss.Color("#EF4444"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#F9FAFB"),
	},
	"theme-ocean": {
		Primary:   lipgloss.Color("#0EA5E9"),
		Secondary: lipgloss.Color("#2DD4BF"),
		Success:   lipgloss.Color("#34D399"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#64748B"),
		Text:      lipgloss.Color("#E0F2FE"),
	},
	"theme-sunset": {
		Primary:   lipgloss.Color("#F97316"),
		Secondary: lipgloss.Color("#F43F5E"),
		Success:   lipgloss.Color("#FBBF24"),
		Error:     lipgloss.Color("#DC2626"),
		Muted:     lipgloss.Color("#A8A29E"),
		Text:      lipgloss.Color("#FFF7ED"),
	},
	"theme-forest": {
		Primary:   lipgloss.Color("#16A34A"),
		Secondary: lipgloss.Color("#84CC16"),
		Success:   lipgloss.Color("#4ADE80"),
		Error:     lipgloss.Color("#EA580C"),
		Muted:     lipgloss.Color("#78716C"),
		Text:      lipgloss.Color("#F0FDF4"),
	},
	"theme-purple": {
		Primary:   lipgloss.Color("#A855F7"),
		Secondary: lipgloss.Color("#EC4899"),
		Success:   lipgloss.Color("#C084FC"),
		Error:     lipgloss.Color("#F43F5E"),
		Muted:     lipgloss.Color("#8B8B9E"),
		Text:      lipgloss.Color("#FAF5FF"),
	},
}

// PaletteFor returns the palette for a theme name, falling back to default.
func PaletteFor(theme string) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes["default"]
}

// Styles are the lipgloss styles rendered with one palette.
type Styles struct {
	Palette Palette

	Logo          lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Box           lipgloss.Style
	StatusBar     lipgloss.Style
	Label         lipgloss.Style
	Focused       lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Center        lipgloss.Style
}

// For builds the styles for a theme name.
func For(theme string) Styles {
	p := PaletteFor(theme)

	return Styles{
		Palette: p,

		Logo: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Muted),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Width(10),

		Focused: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Primary).
			Bold(true).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(p.Text),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Center: lipgloss.NewStyle().
			Align(lipgloss.Center),
	}
}
