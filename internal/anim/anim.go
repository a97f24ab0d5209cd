// Package anim is the tick-driven animation runtime behind the transition
// coordinator's handles. The application advances it from its frame tick;
// every animation reports completion through a one-shot callback on that
// same tick, never from another goroutine.
package anim

import (
	"time"

	"github.com/fogleman/ease"

	"github.com/llehouerou/miniplayer/internal/transition"
)

// Animator owns the live animations and advances them by wall-clock steps.
type Animator struct {
	live []*Animation
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// New builds an animation running over d with the given curve. apply
// receives the eased completion fraction on every change, including the
// exact endpoint value when the animation finishes.
func (a *Animator) New(d time.Duration, curve transition.Curve, apply func(float64)) *Animation {
	if d <= 0 {
		d = time.Millisecond
	}
	an := &Animation{
		duration: d,
		curve:    curve,
		apply:    apply,
	}
	a.live = append(a.live, an)
	return an
}

// Step advances every running animation by dt and fires completion
// callbacks for those that reached an endpoint. Finished animations are
// dropped from the live set.
func (a *Animator) Step(dt time.Duration) {
	for _, an := range a.live {
		an.step(dt)
	}
	kept := a.live[:0]
	for _, an := range a.live {
		if !an.finished {
			kept = append(kept, an)
		}
	}
	a.live = kept
}

// Idle reports whether no animation is currently running.
func (a *Animator) Idle() bool {
	for _, an := range a.live {
		if an.running && !an.paused {
			return false
		}
	}
	return true
}

// Animation is one animated property change. It satisfies
// transition.Handle.
type Animation struct {
	duration time.Duration
	curve    transition.Curve
	apply    func(float64)

	fraction float64 // linear progress, clamped to [0,1]
	speed    float64 // fractions per second for the current run
	reversed bool
	running  bool
	paused   bool
	finished bool

	onComplete func(transition.Endpoint)
}

// Start begins or resumes the run toward the target at the base rate.
func (an *Animation) Start() {
	if an.finished {
		return
	}
	an.running = true
	an.paused = false
	an.speed = 1 / an.duration.Seconds()
}

// Pause freezes the animation at its current fraction.
func (an *Animation) Pause() {
	an.paused = true
}

// SetFraction scrubs to f. Out-of-range values are clamped here; callers
// never clamp.
func (an *Animation) SetFraction(f float64) {
	if an.finished {
		return
	}
	an.fraction = clamp(f)
	an.apply(an.eased())
}

// Fraction returns the current linear completion fraction.
func (an *Animation) Fraction() float64 {
	return an.fraction
}

// SetReversed flips the run direction.
func (an *Animation) SetReversed(reversed bool) {
	an.reversed = reversed
}

// Reversed reports the current run direction.
func (an *Animation) Reversed() bool {
	return an.reversed
}

// Continue resumes toward the current direction's endpoint. A
// durationFactor of 0 keeps the base rate, so the remaining distance takes
// the time remaining; larger values rescale the base duration.
func (an *Animation) Continue(curve transition.Curve, durationFactor float64) {
	if an.finished {
		return
	}
	an.curve = curve
	d := an.duration
	if durationFactor > 0 {
		d = time.Duration(float64(an.duration) * durationFactor)
	}
	if d <= 0 {
		d = time.Millisecond
	}
	an.speed = 1 / d.Seconds()
	an.running = true
	an.paused = false
}

// OnComplete registers the completion callback. It fires exactly once, with
// the endpoint the animation finished at.
func (an *Animation) OnComplete(fn func(transition.Endpoint)) {
	an.onComplete = fn
}

func (an *Animation) step(dt time.Duration) {
	if !an.running || an.paused || an.finished {
		return
	}
	df := dt.Seconds() * an.speed
	if an.reversed {
		an.fraction -= df
	} else {
		an.fraction += df
	}
	an.fraction = clamp(an.fraction)

	switch {
	case !an.reversed && an.fraction >= 1:
		an.finish(transition.EndpointEnd)
	case an.reversed && an.fraction <= 0:
		an.finish(transition.EndpointStart)
	default:
		an.apply(an.eased())
	}
}

func (an *Animation) finish(ep transition.Endpoint) {
	an.finished = true
	an.running = false
	if ep == transition.EndpointEnd {
		an.fraction = 1
	} else {
		an.fraction = 0
	}
	an.apply(an.fraction)
	if fn := an.onComplete; fn != nil {
		an.onComplete = nil
		fn(ep)
	}
}

func (an *Animation) eased() float64 {
	switch an.curve {
	case transition.CurveEaseOut:
		return ease.OutCubic(an.fraction)
	case transition.CurveEaseInOut:
		return ease.InOutCubic(an.fraction)
	default:
		return an.fraction
	}
}

func clamp(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
