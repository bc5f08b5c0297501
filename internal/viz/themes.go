package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tesseract/internal/config"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Line       lipgloss.Color
	Background lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeMidnight = Theme{
		Name:       "midnight",
		Line:       lipgloss.Color(config.DefaultLineColor.Hex()),
		Background: lipgloss.Color(config.DefaultBackground.Hex()),
		Accent:     lipgloss.Color("#7aa2ff"),
		Text:       lipgloss.Color("#e0e8ff"),
		Muted:      lipgloss.Color("#56607a"),
	}

	ThemeAmber = Theme{
		Name:       "amber",
		Line:       lipgloss.Color("#ffb000"),
		Background: lipgloss.Color("#140c00"),
		Accent:     lipgloss.Color("#ffd27f"),
		Text:       lipgloss.Color("#ffe6b3"),
		Muted:      lipgloss.Color("#7a5a1a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Line:       lipgloss.Color("#00ff00"), // Green phosphor
		Background: lipgloss.Color("#001100"),
		Accent:     lipgloss.Color("#88ff88"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Line:       lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
	}

	// All available themes
	Themes = []Theme{
		ThemeMidnight,
		ThemeAmber,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to midnight.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
