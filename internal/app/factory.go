package app

import (
	"time"

	"github.com/llehouerou/miniplayer/internal/anim"
	"github.com/llehouerou/miniplayer/internal/transition"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// viewState holds the viewport size and the property values the animation
// handles interpolate. The handles' mutator closures write here; the view
// reads it every frame. Single-threaded by the bubbletea update loop.
type viewState struct {
	width  int
	height int
	sized  bool

	rect        layout.Rect
	radius      float64
	chromeAlpha float64
}

// snap resets the interpolated values to the resting geometry of a state.
func (v *viewState) snap(state transition.State) {
	v.rect = layout.PanelRect(state, v.width, v.height)
	v.radius = layout.CornerRadius(state)
	v.chromeAlpha = layout.ChromeAlpha(state)
}

// handleFactory builds the three animation handles of a session: frame,
// corner radius, and tab bar chrome. Geometry is consulted fresh for every
// session and never cached across sessions.
type handleFactory struct {
	animator *anim.Animator
	view     *viewState
	duration time.Duration
}

func (f *handleFactory) Handles(target transition.State) []transition.Handle {
	origin := target.Successor()
	w, h := f.view.width, f.view.height

	fromRect := layout.PanelRect(origin, w, h)
	toRect := layout.PanelRect(target, w, h)
	fromRadius := layout.CornerRadius(origin)
	toRadius := layout.CornerRadius(target)
	fromAlpha := layout.ChromeAlpha(origin)
	toAlpha := layout.ChromeAlpha(target)

	v := f.view
	frame := f.animator.New(f.duration, transition.CurveEaseInOut, func(t float64) {
		v.rect = layout.Interpolate(fromRect, toRect, t)
	})
	corner := f.animator.New(f.duration, transition.CurveEaseInOut, func(t float64) {
		v.radius = layout.Lerp(fromRadius, toRadius, t)
	})
	chrome := f.animator.New(f.duration, transition.CurveEaseInOut, func(t float64) {
		v.chromeAlpha = layout.Lerp(fromAlpha, toAlpha, t)
	})

	// The frame handle is primary: its End completion advances the state.
	return []transition.Handle{frame, corner, chrome}
}

func (f *handleFactory) TravelExtent() float64 {
	return layout.TravelExtent(f.view.width, f.view.height)
}
