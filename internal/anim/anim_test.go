package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/miniplayer/internal/transition"
)

var _ transition.Handle = (*Animation)(nil)

func TestAnimation_RunsToEnd(t *testing.T) {
	a := NewAnimator()
	var last float64
	an := a.New(100*time.Millisecond, transition.CurveLinear, func(f float64) { last = f })

	var endpoint *transition.Endpoint
	an.OnComplete(func(ep transition.Endpoint) { endpoint = &ep })

	an.Start()
	for range 20 {
		a.Step(10 * time.Millisecond)
	}

	assert.NotNil(t, endpoint)
	assert.Equal(t, transition.EndpointEnd, *endpoint)
	assert.Equal(t, 1.0, last, "apply must receive the exact endpoint value")
	assert.True(t, a.Idle())
}

func TestAnimation_CompletionFiresOnce(t *testing.T) {
	a := NewAnimator()
	an := a.New(50*time.Millisecond, transition.CurveLinear, func(float64) {})

	fired := 0
	an.OnComplete(func(transition.Endpoint) { fired++ })

	an.Start()
	for range 20 {
		a.Step(10 * time.Millisecond)
	}

	assert.Equal(t, 1, fired)
}

func TestAnimation_ScrubWhilePaused(t *testing.T) {
	a := NewAnimator()
	var applied []float64
	an := a.New(time.Second, transition.CurveLinear, func(f float64) { applied = append(applied, f) })

	an.Start()
	an.Pause()
	an.SetFraction(0.3)
	an.SetFraction(0.7)
	a.Step(50 * time.Millisecond) // paused, must not advance

	assert.Equal(t, []float64{0.3, 0.7}, applied)
	assert.Equal(t, 0.7, an.Fraction())
}

func TestAnimation_SetFractionClamps(t *testing.T) {
	a := NewAnimator()
	an := a.New(time.Second, transition.CurveLinear, func(float64) {})
	an.Start()
	an.Pause()

	an.SetFraction(1.4)
	assert.Equal(t, 1.0, an.Fraction())

	an.SetFraction(-0.2)
	assert.Equal(t, 0.0, an.Fraction())
}

func TestAnimation_ReversedRunsToStart(t *testing.T) {
	a := NewAnimator()
	an := a.New(100*time.Millisecond, transition.CurveLinear, func(float64) {})

	var endpoint *transition.Endpoint
	an.OnComplete(func(ep transition.Endpoint) { endpoint = &ep })

	an.Start()
	an.Pause()
	an.SetFraction(0.4)
	an.SetReversed(true)
	an.Continue(transition.CurveEaseInOut, 0.5)

	for range 20 {
		a.Step(10 * time.Millisecond)
	}

	assert.NotNil(t, endpoint)
	assert.Equal(t, transition.EndpointStart, *endpoint)
	assert.Equal(t, 0.0, an.Fraction())
}

func TestAnimation_DurationFactorScalesRate(t *testing.T) {
	a := NewAnimator()
	fast := a.New(100*time.Millisecond, transition.CurveLinear, func(float64) {})
	slow := a.New(100*time.Millisecond, transition.CurveLinear, func(float64) {})

	fast.Start()
	fast.Pause()
	fast.Continue(transition.CurveLinear, 0) // base rate

	slow.Start()
	slow.Pause()
	slow.Continue(transition.CurveLinear, 2) // double duration

	a.Step(50 * time.Millisecond)

	assert.InDelta(t, 0.5, fast.Fraction(), 1e-9)
	assert.InDelta(t, 0.25, slow.Fraction(), 1e-9)
}

func TestAnimation_EaseOutAppliesCurve(t *testing.T) {
	a := NewAnimator()
	var last float64
	an := a.New(100*time.Millisecond, transition.CurveEaseOut, func(f float64) { last = f })

	an.Start()
	a.Step(50 * time.Millisecond)

	// OutCubic(0.5) = 1 - 0.5^3 = 0.875: ease-out runs ahead of linear.
	assert.InDelta(t, 0.875, last, 1e-9)
	assert.InDelta(t, 0.5, an.Fraction(), 1e-9, "Fraction stays linear")
}

func TestAnimator_IdleWithPausedAnimations(t *testing.T) {
	a := NewAnimator()
	an := a.New(time.Second, transition.CurveLinear, func(float64) {})

	assert.True(t, a.Idle())

	an.Start()
	assert.False(t, a.Idle())

	an.Pause()
	assert.True(t, a.Idle())
}
