// Package panel renders the mini player sheet. The renderer is pure state
// in, string out: it draws whatever frame the transition handles have
// interpolated, switching between the compact one-row treatment and the
// expanded sheet as the frame grows.
package panel

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/miniplayer/internal/ui/layout"
	"github.com/llehouerou/miniplayer/internal/ui/render"
	"github.com/llehouerou/miniplayer/internal/ui/styles"
)

// expandedThreshold is the frame height at which the renderer switches from
// the compact row to the expanded sheet treatment.
const expandedThreshold = 6

// Track is the demo track shown in the player.
type Track struct {
	Title    string
	Artist   string
	Album    string
	Elapsed  time.Duration
	Duration time.Duration
}

// Progress returns the track completion ratio in [0,1].
func (t Track) Progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	p := float64(t.Elapsed) / float64(t.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// State holds everything needed to render the panel for one frame.
type State struct {
	Rect     layout.Rect
	Radius   float64
	Dragging bool
	Track    Track
}

// Model owns the stateful pieces of the renderer.
type Model struct {
	bar progress.Model
}

// New creates a panel renderer.
func New() Model {
	t := styles.Current()
	bar := progress.New(
		progress.WithGradient(string(t.Primary), string(t.Secondary)),
		progress.WithoutPercentage(),
	)
	return Model{bar: bar}
}

// View renders the panel at its current frame. Frames too small to hold a
// border render nothing.
func (m Model) View(s State) string {
	if s.Rect.W < 4 || s.Rect.H < 3 {
		return ""
	}

	innerW := s.Rect.W - 2
	innerH := s.Rect.H - 2

	var rows []string
	if s.Rect.H >= expandedThreshold {
		rows = m.expandedRows(s, innerW, innerH)
	} else {
		rows = m.compactRows(s, innerW, innerH)
	}

	for i, row := range rows {
		rows[i] = render.Pad(row, innerW)
	}

	return styles.PanelStyle(s.Radius, s.Dragging).
		Render(strings.Join(rows, "\n"))
}

func (m Model) compactRows(s State, innerW, innerH int) []string {
	t := styles.Current().S()

	title := render.Truncate(s.Track.Title, innerW/3)
	artist := render.Truncate(s.Track.Artist, innerW/4)
	left := " ▶ " + t.Title.Render(title) + "  " + t.Muted.Render(artist)

	timeStr := fmt.Sprintf("%s / %s ", formatDuration(s.Track.Elapsed), formatDuration(s.Track.Duration))
	right := t.Muted.Render(timeStr)

	barW := innerW - lipgloss.Width(left) - lipgloss.Width(right) - 4
	line := left
	if barW >= 10 {
		bar := m.bar
		bar.Width = barW
		line += "  " + bar.ViewAs(s.Track.Progress())
	}

	rows := make([]string, 0, innerH)
	rows = append(rows, render.Row(line, right, innerW))
	for len(rows) < innerH {
		rows = append(rows, "")
	}
	return rows
}

func (m Model) expandedRows(s State, innerW, innerH int) []string {
	theme := styles.Current()
	t := theme.S()

	rows := make([]string, 0, innerH)
	rows = append(rows, "")

	// Artwork placeholder: a soft block roughly a third of the sheet.
	artH := max(innerH/3, 3)
	artW := min(artH*4, innerW-8)
	art := t.Subtle.Render(strings.Repeat("▒", max(artW, 0)))
	for range artH {
		rows = append(rows, render.Center(art, innerW))
	}
	rows = append(rows, "")

	title := styles.ApplyBoldGradient(
		render.Truncate(s.Track.Title, innerW-4), theme.Primary, theme.Secondary)
	rows = append(rows, render.Center(title, innerW))
	rows = append(rows, render.Center(t.Muted.Render(render.Truncate(s.Track.Artist, innerW-4)), innerW))
	if s.Track.Album != "" {
		rows = append(rows, render.Center(t.Subtle.Render(render.Truncate(s.Track.Album, innerW-4)), innerW))
	}
	rows = append(rows, "")

	barW := min(innerW-8, 60)
	if barW >= 10 {
		bar := m.bar
		bar.Width = barW
		rows = append(rows, render.Center(bar.ViewAs(s.Track.Progress()), innerW))
	}

	pct := humanize.FtoaWithDigits(s.Track.Progress()*100, 0) + "%"
	times := fmt.Sprintf("%s · %s · %s",
		formatDuration(s.Track.Elapsed), pct, formatDuration(s.Track.Duration))
	rows = append(rows, render.Center(t.Muted.Render(times), innerW))

	hint := t.Subtle.Render("tap or drag down to minimize")
	for len(rows) < innerH-1 {
		rows = append(rows, "")
	}
	if len(rows) < innerH {
		rows = append(rows, render.Center(hint, innerW))
	}

	return rows[:innerH]
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
