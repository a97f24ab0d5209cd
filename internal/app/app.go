// Package app wires the transition coordinator, the animation runtime, the
// gesture recognizer and the view components into the root bubbletea model.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/miniplayer/internal/anim"
	"github.com/llehouerou/miniplayer/internal/config"
	"github.com/llehouerou/miniplayer/internal/gesture"
	"github.com/llehouerou/miniplayer/internal/transition"
	"github.com/llehouerou/miniplayer/internal/ui/background"
	"github.com/llehouerou/miniplayer/internal/ui/panel"
	"github.com/llehouerou/miniplayer/internal/ui/tabbar"
)

// Model is the root application model containing all state.
type Model struct {
	cfg *config.Config

	animator   *anim.Animator
	coord      *transition.Coordinator
	recognizer *gesture.Recognizer
	view       *viewState

	bg    background.Model
	panel panel.Model
	tabs  []tabbar.Tab

	track         panel.Track
	dragFromPanel bool
	showHelp      bool
}

// New creates the application model from configuration.
func New(cfg *config.Config) Model {
	animator := anim.NewAnimator()
	view := &viewState{}

	factory := &handleFactory{
		animator: animator,
		view:     view,
		duration: cfg.Transition.Duration(),
	}
	coordCfg := transition.Config{
		CommitThreshold:      cfg.Transition.CommitThreshold,
		CancelDurationFactor: cfg.Transition.CancelDurationFactor,
	}

	return Model{
		cfg:        cfg,
		animator:   animator,
		coord:      transition.New(coordCfg, factory),
		recognizer: &gesture.Recognizer{},
		view:       view,
		bg:         background.New(cfg.UI.Palette),
		panel:      panel.New(),
		tabs:       tabbar.DefaultTabs(),
		track: panel.Track{
			Title:    cfg.Track.Title,
			Artist:   cfg.Track.Artist,
			Album:    cfg.Track.Album,
			Duration: time.Duration(cfg.Track.DurationSec) * time.Second,
		},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.UI.FPS)
}

// State exposes the persisted panel state, used by tests.
func (m Model) State() transition.State {
	return m.coord.State()
}
