package ui

import "github.com/charmbracelet/lipgloss"

// ThemeMode selects which palette the dashboard renders with.
type ThemeMode int

const (
	// ThemeAuto picks light or dark from the terminal background.
	ThemeAuto ThemeMode = iota
	ThemeLight
	ThemeDark
)

// String returns the mode name as stored in preferences.
func (m ThemeMode) String() string {
	switch m {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// ParseThemeMode maps a preference value to a mode. Unknown values fall
// back to auto.
func ParseThemeMode(s string) ThemeMode {
	switch s {
	case "light":
		return ThemeLight
	case "dark":
		return ThemeDark
	default:
		return ThemeAuto
	}
}

// NextThemeMode cycles auto -> light -> dark -> auto.
func NextThemeMode(m ThemeMode) ThemeMode {
	switch m {
	case ThemeAuto:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeAuto
	}
}

// ResolveTheme returns the palette for a mode. Auto asks the terminal
// whether its background is dark.
func ResolveTheme(mode ThemeMode) Theme {
	switch mode {
	case ThemeLight:
		return AmberLight()
	case ThemeDark:
		return AmberDark()
	default:
		if lipgloss.HasDarkBackground() {
			return AmberDark()
		}
		return AmberLight()
	}
}

// Theme defines the dashboard color palette. All values are hex strings.
type Theme struct {
	Name string

	// Backgrounds
	Bg       string // main background
	PanelBg  string // panel interior
	SelectBg string // selection bar
	DimBg    string // de-emphasized fill

	// Borders
	Border       string // unfocused panel frame
	BorderActive string // focused panel frame

	// Text
	Text     string // primary text
	Subtext  string // secondary text
	Muted    string // hints and placeholders
	OnAccent string // text on accent backgrounds

	// Accents
	Accent    string // amber
	AccentAlt string // copper
	Green     string // success
	Yellow    string // caution
	Red       string // errors
	Orange    string // attention
}

// AmberLight is the warm parchment palette for light terminals.
func AmberLight() Theme {
	return Theme{
		Name:         "light",
		Bg:           "#FCF9F2",
		PanelBg:      "#F8F4EB",
		SelectBg:     "#E6DCC8",
		DimBg:        "#B4AFA5",
		Border:       "#C8B9A5",
		BorderActive: "#B4823C",
		Text:         "#3C3228",
		Subtext:      "#6E5F50",
		Muted:        "#968778",
		OnAccent:     "#FFFCF5",
		Accent:       "#B4823C",
		AccentAlt:    "#966441",
		Green:        "#648C50",
		Yellow:       "#BEA064",
		Red:          "#B4645A",
		Orange:       "#AF7D50",
	}
}

// AmberDark is the dim barrel-room palette for dark terminals.
func AmberDark() Theme {
	return Theme{
		Name:         "dark",
		Bg:           "#1E1A16",
		PanelBg:      "#26211C",
		SelectBg:     "#3C342D",
		DimBg:        "#120F0C",
		Border:       "#413A32",
		BorderActive: "#C89B50",
		Text:         "#D2C8B9",
		Subtext:      "#918778",
		Muted:        "#695F55",
		OnAccent:     "#1E1A16",
		Accent:       "#C89B50",
		AccentAlt:    "#AF784B",
		Green:        "#82A55F",
		Yellow:       "#C3A569",
		Red:          "#B96E64",
		Orange:       "#B48255",
	}
}

// Styles holds lipgloss styles derived from a theme.
type Styles struct {
	Text      lipgloss.Style
	Subtext   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	AccentAlt lipgloss.Style
	Green     lipgloss.Style
	Yellow    lipgloss.Style
	Red       lipgloss.Style
	Orange    lipgloss.Style

	Badge       lipgloss.Style // app name chip in the header
	Selected    lipgloss.Style // highlighted list row
	Panel       lipgloss.Style // unfocused panel frame
	PanelActive lipgloss.Style // focused panel frame
	Title       lipgloss.Style // panel title line
	TitleActive lipgloss.Style // panel title line when focused
	Footer      lipgloss.Style // key legend at the bottom
}

// Styles builds the style set for the theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Subtext:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Subtext)),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		AccentAlt: lipgloss.NewStyle().Foreground(lipgloss.Color(t.AccentAlt)),
		Green:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Green)),
		Yellow:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Yellow)),
		Red:       lipgloss.NewStyle().Foreground(lipgloss.Color(t.Red)),
		Orange:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Orange)),

		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.OnAccent)).
			Bold(true).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectBg)).
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)),
		PanelActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderActive)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Subtext)).
			Bold(true),
		TitleActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Subtext)).
			Background(lipgloss.Color(t.DimBg)),
	}
}
