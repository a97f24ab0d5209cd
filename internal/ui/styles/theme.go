package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - active tab, commit direction
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgPanel lipgloss.Color // Panel background
	BgBar   lipgloss.Color // Tab bar background at full opacity

	// Borders
	Border      lipgloss.Color // Panel border while collapsed
	BorderFocus lipgloss.Color // Panel border while expanded/dragged

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base   lipgloss.Style // Default text
	Muted  lipgloss.Style // Dimmed text
	Subtle lipgloss.Style // Very dim text
	Title  lipgloss.Style // Bold, bright
	Accent lipgloss.Style // Primary accent
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#e0e0e0"),
	FgMuted:  lipgloss.Color("#9a9a9a"),
	FgSubtle: lipgloss.Color("#616161"),

	BgPanel: lipgloss.Color("#16161e"),
	BgBar:   lipgloss.Color("#101018"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),
}

// Current returns the active theme.
func Current() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for the theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Base:   lipgloss.NewStyle().Foreground(t.FgBase),
			Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:  lipgloss.NewStyle().Foreground(t.FgBase).Bold(true),
			Accent: lipgloss.NewStyle().Foreground(t.Primary),
		}
	}
	return t.styles
}
