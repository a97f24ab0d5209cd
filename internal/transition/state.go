// Package transition implements the panel transition coordinator: a small
// state machine that drives a group of concurrent, interruptible animations
// between the collapsed and expanded panel states using gesture-reported
// progress.
//
// The coordinator never owns the gesture source or the rendering system; it
// consumes tap and drag events and issues commands to animation handles
// built by an external factory.
package transition

// State identifies one of the two panel positions.
type State int

const (
	Collapsed State = iota
	Expanded
)

// Successor returns the state a transition from s targets. Toggling is
// total and symmetric; there is no third state.
func (s State) Successor() State {
	if s == Collapsed {
		return Expanded
	}
	return Collapsed
}

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}
