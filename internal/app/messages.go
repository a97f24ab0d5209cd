package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameTickMsg drives the animator and the background gradient.
type frameTickMsg time.Time

func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}
