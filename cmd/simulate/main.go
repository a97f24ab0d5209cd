// Simulate runs a scripted gesture sequence against the transition
// coordinator with recording handles and prints the resulting timeline.
// Useful for poking at threshold/duration settings without a terminal UI.
package main

import (
	"log"
	"time"

	"github.com/llehouerou/miniplayer/internal/anim"
	"github.com/llehouerou/miniplayer/internal/config"
	"github.com/llehouerou/miniplayer/internal/transition"
)

// loggingFactory builds real animation handles whose mutators log the eased
// fraction of the primary property group.
type loggingFactory struct {
	animator *anim.Animator
	travel   float64
	duration time.Duration
}

func (f *loggingFactory) Handles(target transition.State) []transition.Handle {
	log.Printf("session: building handles toward %s", target)
	frame := f.animator.New(f.duration, transition.CurveEaseInOut, func(t float64) {
		log.Printf("  frame   -> %.3f", t)
	})
	corner := f.animator.New(f.duration, transition.CurveEaseInOut, func(float64) {})
	chrome := f.animator.New(f.duration, transition.CurveEaseInOut, func(float64) {})
	return []transition.Handle{frame, corner, chrome}
}

func (f *loggingFactory) TravelExtent() float64 { return f.travel }

func main() {
	log.SetFlags(0)

	cfg := config.Default()
	animator := anim.NewAnimator()
	factory := &loggingFactory{
		animator: animator,
		travel:   20,
		duration: cfg.Transition.Duration(),
	}
	coord := transition.New(transition.Config{
		CommitThreshold:      cfg.Transition.CommitThreshold,
		CancelDurationFactor: cfg.Transition.CancelDurationFactor,
	}, factory)

	step := func(label string) {
		log.Printf("-- %s", label)
		for coord.Active() {
			animator.Step(16 * time.Millisecond)
		}
		log.Printf("   state=%s", coord.State())
	}

	log.Printf("threshold=%.2f cancel_factor=%.2f duration=%s",
		cfg.Transition.CommitThreshold, cfg.Transition.CancelDurationFactor,
		cfg.Transition.Duration())

	coord.OnTap()
	step("tap: full expansion")

	coord.OnGestureBegin()
	coord.OnGestureChange(3) // drag down 3 of 20 cells
	coord.OnGestureEnd(3)
	step("short drag down: cancelled, still expanded")

	coord.OnGestureBegin()
	coord.OnGestureChange(14)
	coord.OnGestureEnd(14)
	step("long drag down: committed collapse")

	coord.OnTap()
	animator.Step(100 * time.Millisecond)
	coord.OnTap() // reverse in flight
	step("tap, tap again mid-flight: reversed back")
}
