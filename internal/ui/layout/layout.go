// Package layout provides pure functions for panel geometry calculations.
package layout

import "github.com/llehouerou/miniplayer/internal/transition"

// CollapsedHeight is the height of the docked mini player, borders included.
const CollapsedHeight = 3

// TabBarHeight is the height of the bottom tab bar.
const TabBarHeight = 1

// ExpandedTopMargin is the number of background rows left visible above the
// expanded sheet.
const ExpandedTopMargin = 1

// ExpandedSideMargin is the number of background columns left visible on
// each side of the expanded sheet.
const ExpandedSideMargin = 2

// CollapsedRadius and ExpandedRadius are the corner radii for the two panel
// states. The renderer maps the radius to a corner glyph set.
const (
	CollapsedRadius = 0.0
	ExpandedRadius  = 10.0
)

// Rect is a panel frame in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PanelRect returns the target frame for a panel state in a viewport of the
// given size. Collapsed docks a full-width bar above the tab bar; Expanded
// is an inset sheet covering most of the screen, tab bar included.
func PanelRect(state transition.State, width, height int) Rect {
	if state == transition.Expanded {
		return Rect{
			X: ExpandedSideMargin,
			Y: ExpandedTopMargin,
			W: max(width-2*ExpandedSideMargin, 0),
			H: max(height-ExpandedTopMargin, 0),
		}
	}
	return Rect{
		X: 0,
		Y: max(height-TabBarHeight-CollapsedHeight, 0),
		W: width,
		H: CollapsedHeight,
	}
}

// CornerRadius returns the target corner radius for a panel state.
func CornerRadius(state transition.State) float64 {
	if state == transition.Expanded {
		return ExpandedRadius
	}
	return CollapsedRadius
}

// ChromeAlpha returns the tab bar opacity for a panel state: fully visible
// while collapsed, faded out behind the expanded sheet.
func ChromeAlpha(state transition.State) float64 {
	if state == transition.Expanded {
		return 0
	}
	return 1
}

// TravelExtent returns the vertical drag distance separating the two panel
// states: the expanded height minus the collapsed height.
func TravelExtent(width, height int) float64 {
	d := PanelRect(transition.Expanded, width, height).H - CollapsedHeight
	if d < 1 {
		d = 1
	}
	return float64(d)
}

// TabBarRow returns the 0-based row the tab bar occupies.
func TabBarRow(height int) int {
	return max(height-TabBarHeight, 0)
}

// Interpolate returns the frame t of the way from one rectangle to another.
func Interpolate(from, to Rect, t float64) Rect {
	return Rect{
		X: lerpInt(from.X, to.X, t),
		Y: lerpInt(from.Y, to.Y, t),
		W: lerpInt(from.W, to.W, t),
		H: lerpInt(from.H, to.H, t),
	}
}

// Lerp returns the value t of the way from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpInt(a, b int, t float64) int {
	return a + int(float64(b-a)*t+0.5*sign(float64(b-a)))
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
