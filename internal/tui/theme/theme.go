// Package theme defines color themes for the aisle dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Surface      lipgloss.Color // card/panel backgrounds
	Border       lipgloss.Color // subtle borders
	BorderAccent lipgloss.Color // accent borders for focus states
	TextDim      lipgloss.Color // hints, disabled
	TextMuted    lipgloss.Color // labels, metadata
	TextPrimary  lipgloss.Color // primary content
	Accent       lipgloss.Color // active states, selection cursor
	Green        lipgloss.Color // paid amounts, synced state
	Orange       lipgloss.Color // warnings, stale sync
	Red          lipgloss.Color // errors, deselected amounts
	Yellow       lipgloss.Color // highlights
}

// Active is the currently selected theme.
var Active = Blush

// Blush is the default theme, warm rose on dark.
var Blush = Theme{
	Name:         "blush",
	Surface:      lipgloss.Color("#1C1B1A"),
	Border:       lipgloss.Color("#403E3C"),
	BorderAccent: lipgloss.Color("#CE5D97"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#CE5D97"),
	Green:        lipgloss.Color("#879A39"),
	Orange:       lipgloss.Color("#DA702C"),
	Red:          lipgloss.Color("#D14D41"),
	Yellow:       lipgloss.Color("#D0A215"),
}

// Sage is a muted green alternative.
var Sage = Theme{
	Name:         "sage",
	Surface:      lipgloss.Color("#171C19"),
	Border:       lipgloss.Color("#3A443E"),
	BorderAccent: lipgloss.Color("#8CA98C"),
	TextDim:      lipgloss.Color("#4E584F"),
	TextMuted:    lipgloss.Color("#8A948B"),
	TextPrimary:  lipgloss.Color("#F2F6F0"),
	Accent:       lipgloss.Color("#8CA98C"),
	Green:        lipgloss.Color("#A3B859"),
	Orange:       lipgloss.Color("#D99A5B"),
	Red:          lipgloss.Color("#C96A60"),
	Yellow:       lipgloss.Color("#D4B35E"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Surface:      lipgloss.Color("0"),
	Border:       lipgloss.Color("8"),
	BorderAccent: lipgloss.Color("5"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("5"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{Blush, Sage, Terminal}

// ByName returns a theme by its name, defaulting to Blush.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Blush
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
