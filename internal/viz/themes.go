package viz

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("viz: unknown theme")

// Theme defines the color scheme of the timer. Text and Ring are the
// resting colors; the pulse colors are the far end of each oscillation.
// All colors are "#rrggbb".
type Theme struct {
	Name      string
	Title     lipgloss.Color
	Text      lipgloss.Color
	TextPulse lipgloss.Color
	Ring      lipgloss.Color
	RingPulse lipgloss.Color
	Button    lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:      "classic",
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		TextPulse: lipgloss.Color("#ffff00"), // Yellow
		Ring:      lipgloss.Color("#ffffff"),
		RingPulse: lipgloss.Color("#888888"), // Gray
		Button:    lipgloss.Color("#6200ee"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#03dac5"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Title:     lipgloss.Color("#00ffff"), // Cyan
		Text:      lipgloss.Color("#ff00ff"), // Magenta
		TextPulse: lipgloss.Color("#ffff00"),
		Ring:      lipgloss.Color("#00ffff"),
		RingPulse: lipgloss.Color("#ff00ff"),
		Button:    lipgloss.Color("#ff00ff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Title:     lipgloss.Color("#00ff00"), // Green phosphor
		Text:      lipgloss.Color("#00ff00"),
		TextPulse: lipgloss.Color("#88ff88"),
		Ring:      lipgloss.Color("#00cc00"),
		RingPulse: lipgloss.Color("#005500"),
		Button:    lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Title:     lipgloss.Color("#e0f0ff"),
		Text:      lipgloss.Color("#e0f0ff"),
		TextPulse: lipgloss.Color("#ffd700"),
		Ring:      lipgloss.Color("#00a8cc"),
		RingPulse: lipgloss.Color("#0077be"), // Ocean blue
		Button:    lipgloss.Color("#0077be"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Title:     lipgloss.Color("#fff5f5"),
		Text:      lipgloss.Color("#fff5f5"),
		TextPulse: lipgloss.Color("#feca57"),
		Ring:      lipgloss.Color("#ff6b6b"), // Coral
		RingPulse: lipgloss.Color("#ff9ff3"),
		Button:    lipgloss.Color("#ff6b6b"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	// All available themes, in cycling order
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return ThemeClassic, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
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
