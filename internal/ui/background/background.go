// Package background renders the decorative animated gradient backdrop: a
// vertical gradient that slowly cycles through a palette. It is purely
// decorative and never interacts with the transition coordinator.
package background

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

// CycleDuration is the time one palette stop takes to fade into the next.
const CycleDuration = 8 * time.Second

// Model holds the palette and the current cycle phase.
type Model struct {
	palette []colorful.Color
	phase   float64 // in [0, len(palette))
}

// New builds a background from hex palette colors. Unparseable entries are
// skipped; a single-color fallback is used when nothing parses.
func New(hexes []string) Model {
	var palette []colorful.Color
	for _, h := range hexes {
		if c, err := colorful.Hex(h); err == nil {
			palette = append(palette, c)
		}
	}
	if len(palette) == 0 {
		palette = []colorful.Color{styles.ParseColor(lipgloss.Color("#1a1a2e"))}
	}
	return Model{palette: palette}
}

// Advance moves the cycle phase forward by dt.
func (m *Model) Advance(dt time.Duration) {
	m.phase += dt.Seconds() / CycleDuration.Seconds()
	for m.phase >= float64(len(m.palette)) {
		m.phase -= float64(len(m.palette))
	}
}

// ColorAt returns the gradient color at a row, used by the tab bar for its
// translucency blend.
func (m Model) ColorAt(row, height int) colorful.Color {
	if height <= 1 {
		return m.top()
	}
	t := float64(row) / float64(height-1)
	return styles.Blend(m.top(), m.bottom(), t)
}

// View renders the full-screen gradient.
func (m Model) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	var b strings.Builder
	for row := range height {
		style := lipgloss.NewStyle().Background(lipgloss.Color(m.ColorAt(row, height).Hex()))
		b.WriteString(style.Render(line))
		if row < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// top and bottom are the two current gradient stops; the phase slides both
// through the palette so the whole backdrop drifts over time.
func (m Model) top() colorful.Color {
	return m.stop(0)
}

func (m Model) bottom() colorful.Color {
	return m.stop(1)
}

func (m Model) stop(offset int) colorful.Color {
	n := len(m.palette)
	if n == 1 {
		return m.palette[0]
	}
	i := int(m.phase)
	frac := m.phase - float64(i)
	from := m.palette[(i+offset)%n]
	to := m.palette[(i+offset+1)%n]
	return styles.Blend(from, to, frac)
}
