package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/miniplayer/internal/gesture"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case frameTickMsg:
		return m.handleFrameTick(), tickCmd(m.cfg.UI.FPS)
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.view.width = msg.Width
	m.view.height = msg.Height
	m.view.sized = true
	// Resizing mid-transition snaps to the persisted state; the session's
	// handles keep running against stale geometry and settle invisibly.
	m.view.snap(m.coord.State())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "enter":
		m.coord.OnTap()
	case "?":
		m.showHelp = !m.showHelp
	case "esc":
		m.showHelp = false
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	ev := m.recognizer.Update(msg)

	switch ev.Kind {
	case gesture.Tap:
		// A tap lands on the panel, or anywhere while a transition is in
		// flight (to reverse it).
		if m.view.rect.Contains(ev.X, ev.Y) || m.coord.Active() {
			m.coord.OnTap()
		}

	case gesture.Begin:
		m.dragFromPanel = m.view.rect.Contains(ev.X, ev.Y)
		if m.dragFromPanel {
			m.coord.OnGestureBegin()
		}

	case gesture.Change:
		if m.dragFromPanel {
			m.coord.OnGestureChange(ev.Delta)
		}

	case gesture.End:
		if m.dragFromPanel {
			m.coord.OnGestureEnd(ev.Delta)
			m.dragFromPanel = false
		}
	}

	return m
}

func (m Model) handleFrameTick() Model {
	dt := frameInterval(m.cfg.UI.FPS)

	m.animator.Step(dt)
	m.bg.Advance(dt)

	m.track.Elapsed += dt
	if m.track.Duration > 0 && m.track.Elapsed > m.track.Duration {
		m.track.Elapsed = 0
	}

	return m
}
