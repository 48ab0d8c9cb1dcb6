package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Running   lipgloss.Color
	Paused    lipgloss.Color
}

var (
	ThemeLab = Theme{
		Name:      "lab",
		Primary:   lipgloss.Color("#00cccc"),
		Secondary: lipgloss.Color("#66aaff"),
		Accent:    lipgloss.Color("#ff88ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666688"),
		Running:   lipgloss.Color("#00ff88"),
		Paused:    lipgloss.Color("#ffaa00"),
	}

	ThemeChalkboard = Theme{
		Name:      "chalkboard",
		Primary:   lipgloss.Color("#e8e8d0"),
		Secondary: lipgloss.Color("#a8d8a8"),
		Accent:    lipgloss.Color("#ffd866"),
		Text:      lipgloss.Color("#f4f4e8"),
		Muted:     lipgloss.Color("#5e7560"),
		Running:   lipgloss.Color("#a8d8a8"),
		Paused:    lipgloss.Color("#ffd866"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Running:   lipgloss.Color("#88ff88"),
		Paused:    lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Running:   lipgloss.Color("#00ff00"),
		Paused:    lipgloss.Color("#ffaa00"),
	}

	// Default theme
	CurrentTheme = ThemeLab

	Themes = []Theme{
		ThemeLab,
		ThemeChalkboard,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeLab
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return
		}
	}
	CurrentTheme = ThemeLab
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
