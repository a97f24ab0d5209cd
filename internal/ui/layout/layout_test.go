package layout

import (
	"testing"

	"github.com/llehouerou/miniplayer/internal/transition"
)

func TestPanelRect_Collapsed(t *testing.T) {
	r := PanelRect(transition.Collapsed, 80, 24)

	if r.W != 80 {
		t.Errorf("W = %d, want full width 80", r.W)
	}
	if r.H != CollapsedHeight {
		t.Errorf("H = %d, want %d", r.H, CollapsedHeight)
	}
	if r.Y != 24-TabBarHeight-CollapsedHeight {
		t.Errorf("Y = %d, want docked above tab bar", r.Y)
	}
}

func TestPanelRect_Expanded(t *testing.T) {
	r := PanelRect(transition.Expanded, 80, 24)

	if r.X != ExpandedSideMargin {
		t.Errorf("X = %d, want %d", r.X, ExpandedSideMargin)
	}
	if r.Y != ExpandedTopMargin {
		t.Errorf("Y = %d, want %d", r.Y, ExpandedTopMargin)
	}
	if r.W != 80-2*ExpandedSideMargin {
		t.Errorf("W = %d, want inset width", r.W)
	}
	// Expanded sheet covers the tab bar row.
	if r.Y+r.H != 24 {
		t.Errorf("bottom edge = %d, want 24", r.Y+r.H)
	}
}

func TestPanelRect_TinyViewport(t *testing.T) {
	// Degenerate sizes must not produce negative dimensions.
	for _, state := range []transition.State{transition.Collapsed, transition.Expanded} {
		r := PanelRect(state, 0, 0)
		if r.W < 0 || r.H < 0 || r.Y < 0 {
			t.Errorf("%v: degenerate rect %+v", state, r)
		}
	}
}

func TestTravelExtent(t *testing.T) {
	got := TravelExtent(80, 24)
	want := float64((24 - ExpandedTopMargin) - CollapsedHeight)
	if got != want {
		t.Errorf("TravelExtent = %v, want %v", got, want)
	}

	if TravelExtent(10, 2) < 1 {
		t.Error("TravelExtent must stay positive for tiny viewports")
	}
}

func TestCornerRadius(t *testing.T) {
	if CornerRadius(transition.Collapsed) != CollapsedRadius {
		t.Error("collapsed radius mismatch")
	}
	if CornerRadius(transition.Expanded) != ExpandedRadius {
		t.Error("expanded radius mismatch")
	}
}

func TestChromeAlpha(t *testing.T) {
	if ChromeAlpha(transition.Collapsed) != 1 {
		t.Error("tab bar should be opaque while collapsed")
	}
	if ChromeAlpha(transition.Expanded) != 0 {
		t.Error("tab bar should be faded while expanded")
	}
}

func TestInterpolate_Endpoints(t *testing.T) {
	from := PanelRect(transition.Collapsed, 80, 24)
	to := PanelRect(transition.Expanded, 80, 24)

	if got := Interpolate(from, to, 0); got != from {
		t.Errorf("t=0: got %+v, want %+v", got, from)
	}
	if got := Interpolate(from, to, 1); got != to {
		t.Errorf("t=1: got %+v, want %+v", got, to)
	}
}

func TestInterpolate_Midpoint(t *testing.T) {
	from := Rect{X: 0, Y: 20, W: 80, H: 3}
	to := Rect{X: 2, Y: 1, W: 76, H: 23}

	mid := Interpolate(from, to, 0.5)

	if mid.Y <= to.Y || mid.Y >= from.Y {
		t.Errorf("mid.Y = %d, want strictly between %d and %d", mid.Y, to.Y, from.Y)
	}
	if mid.H <= from.H || mid.H >= to.H {
		t.Errorf("mid.H = %d, want strictly between %d and %d", mid.H, from.H, to.H)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 10, H: 4}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{11, 6, true},
		{12, 3, false},
		{2, 7, false},
		{1, 3, false},
		{5, 5, true},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
