package styles

import "github.com/charmbracelet/lipgloss"

// roundedRadiusMin is the corner radius at which the panel border switches
// from square to rounded corners.
const roundedRadiusMin = 4.0

// PanelBorder returns the border set for a corner radius. Cell grids cannot
// draw fractional radii, so the radius selects between square and rounded
// corner glyphs.
func PanelBorder(radius float64) lipgloss.Border {
	if radius >= roundedRadiusMin {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}

// PanelStyle returns the panel frame style for the given corner radius and
// drag state.
func PanelStyle(radius float64, active bool) lipgloss.Style {
	t := Current()
	border := t.Border
	if active {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(PanelBorder(radius)).
		BorderForeground(border).
		Background(t.BgPanel)
}
