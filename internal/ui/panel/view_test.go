package panel

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/llehouerou/miniplayer/internal/transition"
	"github.com/llehouerou/miniplayer/internal/ui/layout"
)

// stripANSI removes ANSI escape codes from a string for easier testing.
func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

func testTrack() Track {
	return Track{
		Title:    "Midnight City",
		Artist:   "M83",
		Album:    "Hurry Up, We're Dreaming",
		Elapsed:  83 * time.Second,
		Duration: 243 * time.Second,
	}
}

func collapsedState() State {
	return State{
		Rect:   layout.PanelRect(transition.Collapsed, 80, 24),
		Radius: 0,
		Track:  testTrack(),
	}
}

func expandedState() State {
	return State{
		Rect:   layout.Rect{X: 2, Y: 1, W: 76, H: 23},
		Radius: 10,
		Track:  testTrack(),
	}
}

func TestView_CompactShowsTrackAndTime(t *testing.T) {
	m := New()

	out := stripANSI(m.View(collapsedState()))

	if !strings.Contains(out, "Midnight City") {
		t.Errorf("compact view should contain the title, got:\n%s", out)
	}
	if !strings.Contains(out, "1:23 / 4:03") {
		t.Errorf("compact view should contain elapsed/duration, got:\n%s", out)
	}
}

func TestView_CompactHeight(t *testing.T) {
	m := New()

	out := m.View(collapsedState())

	if got := strings.Count(out, "\n") + 1; got != layout.CollapsedHeight {
		t.Errorf("compact view has %d lines, want %d", got, layout.CollapsedHeight)
	}
}

func TestView_ExpandedShowsMetadataAndHint(t *testing.T) {
	m := New()

	out := stripANSI(m.View(expandedState()))

	for _, want := range []string{"Midnight City", "M83", "Hurry Up, We're Dreaming", "minimize", "34%"} {
		if !strings.Contains(out, want) {
			t.Errorf("expanded view should contain %q, got:\n%s", want, out)
		}
	}
}

func TestView_ExpandedHeightMatchesFrame(t *testing.T) {
	m := New()
	s := expandedState()

	out := m.View(s)

	if got := strings.Count(out, "\n") + 1; got != s.Rect.H {
		t.Errorf("expanded view has %d lines, want %d", got, s.Rect.H)
	}
}

func TestView_IntermediateFrames(t *testing.T) {
	// Every frame between the two states must render at exactly the
	// frame's height; the animation scrubs through all of them.
	m := New()
	track := testTrack()

	for h := 3; h <= 23; h++ {
		s := State{
			Rect:  layout.Rect{X: 0, Y: 0, W: 60, H: h},
			Track: track,
		}
		out := m.View(s)
		if got := strings.Count(out, "\n") + 1; got != h {
			t.Errorf("height %d: view has %d lines", h, got)
		}
	}
}

func TestView_TooSmallRendersNothing(t *testing.T) {
	m := New()

	if out := m.View(State{Rect: layout.Rect{W: 3, H: 2}}); out != "" {
		t.Errorf("tiny frame should render nothing, got %q", out)
	}
}

func TestTrack_Progress(t *testing.T) {
	if got := testTrack().Progress(); got < 0.34 || got > 0.35 {
		t.Errorf("Progress() = %v, want ~0.3415", got)
	}
	if (Track{}).Progress() != 0 {
		t.Error("zero duration should report zero progress")
	}
	over := Track{Elapsed: 10 * time.Second, Duration: 5 * time.Second}
	if over.Progress() != 1 {
		t.Error("progress must clamp at 1")
	}
}
