package gesture

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func TestRecognizer_Tap(t *testing.T) {
	var r Recognizer

	if ev := r.Update(press(10, 20)); ev.Kind != None {
		t.Errorf("press emitted %v, want None", ev.Kind)
	}
	ev := r.Update(release(10, 20))

	if ev.Kind != Tap {
		t.Fatalf("Kind = %v, want Tap", ev.Kind)
	}
	if ev.X != 10 || ev.Y != 20 {
		t.Errorf("origin = (%d, %d), want press position", ev.X, ev.Y)
	}
}

func TestRecognizer_TapWithinSlop(t *testing.T) {
	var r Recognizer
	r.Update(press(10, 20))
	r.Update(motion(10, 21)) // jitter within slop

	ev := r.Update(release(10, 21))

	if ev.Kind != Tap {
		t.Errorf("Kind = %v, want Tap (movement within slop)", ev.Kind)
	}
}

func TestRecognizer_DragSequence(t *testing.T) {
	var r Recognizer
	r.Update(press(10, 20))

	ev := r.Update(motion(10, 17))
	if ev.Kind != Begin {
		t.Fatalf("first motion beyond slop = %v, want Begin", ev.Kind)
	}
	if !r.Dragging() {
		t.Error("Dragging() should be true after Begin")
	}

	ev = r.Update(motion(10, 14))
	if ev.Kind != Change || ev.Delta != -6 {
		t.Errorf("motion = (%v, %v), want (Change, -6)", ev.Kind, ev.Delta)
	}

	ev = r.Update(release(10, 12))
	if ev.Kind != End || ev.Delta != -8 {
		t.Errorf("release = (%v, %v), want (End, -8)", ev.Kind, ev.Delta)
	}
	if r.Dragging() {
		t.Error("Dragging() should be false after End")
	}
}

func TestRecognizer_DownwardDragPositiveDelta(t *testing.T) {
	var r Recognizer
	r.Update(press(5, 5))
	r.Update(motion(5, 8))

	ev := r.Update(motion(5, 10))

	if ev.Delta != 5 {
		t.Errorf("Delta = %v, want +5 for a downward drag", ev.Delta)
	}
}

func TestRecognizer_MotionWithoutPressIgnored(t *testing.T) {
	var r Recognizer

	if ev := r.Update(motion(3, 3)); ev.Kind != None {
		t.Errorf("hover motion = %v, want None", ev.Kind)
	}
	if ev := r.Update(release(3, 3)); ev.Kind != None {
		t.Errorf("stray release = %v, want None", ev.Kind)
	}
}

func TestRecognizer_NonLeftButtonIgnored(t *testing.T) {
	var r Recognizer

	msg := tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if ev := r.Update(msg); ev.Kind != None {
		t.Errorf("right press = %v, want None", ev.Kind)
	}
	if ev := r.Update(release(1, 1)); ev.Kind != None {
		t.Errorf("release without tracked press = %v, want None", ev.Kind)
	}
}
