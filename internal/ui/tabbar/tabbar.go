// Package tabbar renders the translucent bottom tab bar. Translucency is an
// alpha blend of the bar's colors over the background gradient color at its
// row; the alpha is the chrome property group the transition coordinator
// animates, so the bar melts away as the panel expands.
package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/miniplayer/internal/ui/render"
	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

// Tab is one entry in the bar.
type Tab struct {
	Icon  string
	Label string
}

// DefaultTabs returns the demo's static tab set.
func DefaultTabs() []Tab {
	return []Tab{
		{Icon: "♫", Label: "Listen"},
		{Icon: "◎", Label: "Browse"},
		{Icon: "⌕", Label: "Search"},
	}
}

// View renders the bar at the given width and opacity over the background
// color behind it. At alpha 0 the bar is invisible (pure background).
func View(tabs []Tab, active int, width int, alpha float64, behind colorful.Color) string {
	t := styles.Current()

	barBg := styles.AlphaBlend(styles.ParseColor(t.BgBar), behind, alpha)
	fgBase := styles.AlphaBlend(styles.ParseColor(t.FgMuted), barBg, alpha)
	fgActive := styles.AlphaBlend(styles.ParseColor(t.Primary), barBg, alpha)

	bgColor := lipgloss.Color(barBg.Hex())
	cellW := 0
	if len(tabs) > 0 {
		cellW = width / len(tabs)
	}

	var b strings.Builder
	used := 0
	for i, tab := range tabs {
		fg := fgBase
		if i == active {
			fg = fgActive
		}
		w := cellW
		if i == len(tabs)-1 {
			w = width - used
		}
		label := render.Center(tab.Icon+" "+tab.Label, w)
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg.Hex())).
			Background(bgColor)
		b.WriteString(style.Render(render.Truncate(label, w)))
		used += w
	}
	if used < width {
		b.WriteString(lipgloss.NewStyle().Background(bgColor).Render(strings.Repeat(" ", width-used)))
	}
	return b.String()
}
