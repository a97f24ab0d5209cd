package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/miniplayer/internal/keymap"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
	"github.com/llehouerou/miniplayer/internal/ui/overlay"
	"github.com/llehouerou/miniplayer/internal/ui/panel"
	"github.com/llehouerou/miniplayer/internal/ui/render"
	"github.com/llehouerou/miniplayer/internal/ui/styles"
	"github.com/llehouerou/miniplayer/internal/ui/tabbar"
)

// View implements tea.Model.
func (m Model) View() string {
	v := m.view
	if !v.sized || v.width <= 0 || v.height <= 0 {
		return ""
	}

	base := m.bg.View(v.width, v.height)

	tabRow := layout.TabBarRow(v.height)
	bar := tabbar.View(m.tabs, 0, v.width, v.chromeAlpha, m.bg.ColorAt(tabRow, v.height))
	base = overlay.ComposeAt(base, bar, v.width, tabRow, 0)

	sheet := m.panel.View(panel.State{
		Rect:     v.rect,
		Radius:   v.radius,
		Dragging: m.recognizer.Dragging(),
		Track:    m.track,
	})
	base = overlay.ComposeAt(base, sheet, v.width, v.rect.Y, v.rect.X)

	if m.showHelp {
		help := m.helpView()
		row := max((v.height-lipgloss.Height(help))/2, 0)
		col := max((v.width-lipgloss.Width(help))/2, 0)
		base = overlay.ComposeAt(base, help, v.width, row, col)
	}

	return base
}

func (m Model) helpView() string {
	t := styles.Current()
	s := t.S()

	var b strings.Builder
	b.WriteString(s.Title.Render("miniplayer"))
	b.WriteString("\n")
	b.WriteString(render.Separator(30))

	for _, context := range []string{"panel", "global"} {
		b.WriteString("\n")
		for _, bind := range keymap.ForContext(context) {
			keys := s.Accent.Render(render.Pad(strings.Join(bind.Keys, ", "), 22))
			b.WriteString("\n" + keys + s.Muted.Render(bind.Description))
		}
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2).
		Render(b.String())
}
