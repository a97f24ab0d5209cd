package transition

// Endpoint reports which end of its range an animation finished at.
type Endpoint int

const (
	// EndpointStart means the animation finished back at its starting
	// values (a cancelled or reversed run).
	EndpointStart Endpoint = iota
	// EndpointEnd means the animation finished at its target values.
	EndpointEnd
)

func (e Endpoint) String() string {
	if e == EndpointEnd {
		return "end"
	}
	return "start"
}

// Curve names the timing curve a continuation should use. Handles interpret
// the curve; the coordinator only selects one.
type Curve int

const (
	CurveLinear Curve = iota
	CurveEaseOut
	CurveEaseInOut
)

// Handle is one independently progressable, pausable, reversible animated
// property change. The coordinator is polymorphic over this capability set
// and does not know what property a handle animates.
type Handle interface {
	// Start begins or resumes the animation toward its target.
	Start()

	// Pause freezes the animation at its current fraction so it can be
	// scrubbed with SetFraction.
	Pause()

	// SetFraction scrubs a paused animation to completion fraction f.
	// Implementations clamp to [0,1]; callers do not.
	SetFraction(f float64)

	// Fraction returns the current completion fraction.
	Fraction() float64

	// SetReversed flips the direction the animation runs in.
	SetReversed(reversed bool)

	// Reversed reports whether the animation currently runs backward.
	Reversed() bool

	// Continue resumes a paused animation toward its current direction's
	// endpoint. A durationFactor of 0 means "use the time remaining at
	// the base rate"; larger values scale the base duration for the
	// continuation.
	Continue(curve Curve, durationFactor float64)

	// OnComplete registers the one-shot completion callback. The
	// coordinator registers exactly one per handle; a handle must fire it
	// exactly once, at a defined endpoint, for every run.
	OnComplete(fn func(Endpoint))
}

// Factory builds the animation handles for one transition session.
type Factory interface {
	// Handles returns one handle per animated property group for a
	// transition to target. Order must be stable for the life of the
	// session; the first handle is the primary (frame) handle, whose End
	// completion advances the persisted panel state.
	Handles(target State) []Handle

	// TravelExtent returns the drag distance separating the two panel
	// states in the gesture's coordinate space.
	TravelExtent() float64
}

// Normalize maps a raw gesture delta along the dominant axis to a nominal
// completion fraction. Dragging up expands and dragging down collapses, so
// the sign flips when the target is Expanded. The result is not clamped;
// handles clamp on write.
func Normalize(delta, travel float64, target State) float64 {
	if travel <= 0 {
		return 0
	}
	if target == Expanded {
		delta = -delta
	}
	return delta / travel
}
