// Package gesture classifies terminal mouse input into the tap and drag
// events the transition coordinator consumes: a press and release without
// movement is a tap; a press followed by motion beyond the slop begins a
// drag that reports its vertical displacement until release.
package gesture

import tea "github.com/charmbracelet/bubbletea"

// Kind identifies a recognized gesture event.
type Kind int

const (
	None Kind = iota
	Tap
	Begin
	Change
	End
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case Begin:
		return "begin"
	case Change:
		return "change"
	case End:
		return "end"
	}
	return "none"
}

// Event is one recognized gesture event. Delta is the vertical displacement
// from the press origin in cells, positive downward. X and Y are the press
// origin, used by the caller for hit testing.
type Event struct {
	Kind  Kind
	Delta float64
	X, Y  int
}

// Slop is the vertical movement in cells below which a press and release
// still counts as a tap.
const Slop = 1

// Recognizer turns a stream of mouse messages into gesture events. It emits
// at most one event per message and guarantees the begin/change/end ordering
// the coordinator relies on.
type Recognizer struct {
	pressed  bool
	dragging bool
	startX   int
	startY   int
}

// Update consumes one mouse message and returns the event it completes, if
// any.
func (r *Recognizer) Update(msg tea.MouseMsg) Event {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Event{}
		}
		r.pressed = true
		r.dragging = false
		r.startX, r.startY = msg.X, msg.Y

	case tea.MouseActionMotion:
		if !r.pressed {
			return Event{}
		}
		dy := msg.Y - r.startY
		if !r.dragging {
			if abs(dy) <= Slop {
				return Event{}
			}
			r.dragging = true
			return Event{Kind: Begin, X: r.startX, Y: r.startY}
		}
		return Event{Kind: Change, Delta: float64(dy), X: r.startX, Y: r.startY}

	case tea.MouseActionRelease:
		if !r.pressed {
			return Event{}
		}
		r.pressed = false
		if !r.dragging {
			return Event{Kind: Tap, X: r.startX, Y: r.startY}
		}
		r.dragging = false
		return Event{Kind: End, Delta: float64(msg.Y - r.startY), X: r.startX, Y: r.startY}
	}
	return Event{}
}

// Dragging reports whether a drag is in progress.
func (r *Recognizer) Dragging() bool {
	return r.dragging
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
