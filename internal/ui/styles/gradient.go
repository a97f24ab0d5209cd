package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, true, from, to)
}

// ApplyGradient renders text with a horizontal color gradient.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	return applyGradient(text, false, from, to)
}

func applyGradient(text string, bold bool, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 0 {
		return ""
	}

	if len(clusters) == 1 {
		style := lipgloss.NewStyle().Foreground(from)
		if bold {
			style = style.Bold(true)
		}
		return style.Render(text)
	}

	c1 := ParseColor(from)
	c2 := ParseColor(to)

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c1.BlendHcl(c2, t).Hex()))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}

	return b.String()
}

// Blend returns the color t of the way from one color to another, blended
// in HCL space for perceptually uniform transitions.
func Blend(from, to colorful.Color, t float64) colorful.Color {
	return from.BlendHcl(to, t).Clamped()
}

// AlphaBlend composites a foreground color over a background color at the
// given opacity, the terminal's stand-in for translucency.
func AlphaBlend(fg, bg colorful.Color, alpha float64) colorful.Color {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	return colorful.Color{
		R: fg.R*alpha + bg.R*(1-alpha),
		G: fg.G*alpha + bg.G*(1-alpha),
		B: fg.B*alpha + bg.B*(1-alpha),
	}.Clamped()
}

// ParseColor converts a lipgloss hex color into a colorful.Color, falling
// back to neutral gray for ANSI palette values.
func ParseColor(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	cf, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return cf
}
