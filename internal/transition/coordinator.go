package transition

// Config holds the coordinator's two policy constants. Everything else in
// the state machine is mechanism.
type Config struct {
	// CommitThreshold is the minimum normalized release progress required
	// to complete rather than cancel an in-progress transition.
	CommitThreshold float64

	// CancelDurationFactor scales the base duration when a cancelled
	// session runs its handles back to their start values.
	CancelDurationFactor float64
}

// DefaultConfig returns the stock policy: commit at 20% release progress,
// cancel runs back at half the base duration.
func DefaultConfig() Config {
	return Config{
		CommitThreshold:      0.2,
		CancelDurationFactor: 0.5,
	}
}

// session is one in-progress transition. At most one exists at a time.
type session struct {
	target  State
	handles []Handle
	travel  float64

	// progressAtInterruption is the completion fraction the handles held
	// when the session was paused to be interactively driven. Zero for a
	// fresh session.
	progressAtInterruption float64

	// reversing tracks whether the handles currently run backward.
	reversing bool

	// settling is set once a commit/cancel decision has been made; the
	// session then only waits for completion callbacks and drops any new
	// gesture input.
	settling bool

	done            []bool
	completed       int
	primaryEndpoint Endpoint
}

// Coordinator owns the persisted panel state, the active session and its
// handle collection. All operations run on the program's single
// interaction thread; completion callbacks are delivered on that same
// thread.
type Coordinator struct {
	cfg     Config
	factory Factory
	state   State
	active  *session
}

// New creates an idle coordinator starting in the Collapsed state.
func New(cfg Config, factory Factory) *Coordinator {
	return &Coordinator{cfg: cfg, factory: factory, state: Collapsed}
}

// State returns the persisted panel state. It changes exactly once per
// committed session and never on a cancelled one.
func (c *Coordinator) State() State {
	return c.state
}

// Active reports whether a transition session is in flight.
func (c *Coordinator) Active() bool {
	return c.active != nil
}

// Settling reports whether the active session has had its commit/cancel
// decision made and is waiting for completion callbacks.
func (c *Coordinator) Settling() bool {
	return c.active != nil && c.active.settling
}

// Target returns the state the active session is transitioning to. Only
// meaningful while Active.
func (c *Coordinator) Target() State {
	if c.active == nil {
		return c.state
	}
	return c.active.target
}

// OnTap handles a self-contained tap. With no session in flight it starts a
// full, non-interactive run to the opposite state. Mid-transition it joins
// the running session by flipping every handle's direction in place; no new
// session is created.
func (c *Coordinator) OnTap() {
	if s := c.active; s != nil {
		for _, h := range s.handles {
			h.SetReversed(!h.Reversed())
		}
		s.reversing = !s.reversing
		return
	}

	s := c.newSession()
	s.settling = true
	c.active = s
	for _, h := range s.handles {
		h.Start()
	}
}

// OnGestureBegin starts an interactive session when none is active: handles
// are started and immediately paused so they can be scrubbed. If an
// interactive session is already in flight the handles are re-paused and the
// interruption progress re-captured. Input arriving while a session is
// settling is dropped, not queued.
func (c *Coordinator) OnGestureBegin() {
	if s := c.active; s != nil {
		if s.settling {
			return
		}
		for _, h := range s.handles {
			h.Pause()
		}
		s.progressAtInterruption = s.handles[0].Fraction()
		return
	}

	s := c.newSession()
	c.active = s
	for _, h := range s.handles {
		h.Start()
	}
	for _, h := range s.handles {
		h.Pause()
	}
	s.progressAtInterruption = s.handles[0].Fraction()
}

// OnGestureChange scrubs the active session to the completion fraction the
// delta maps to. Safe to call any number of times with stale or identical
// deltas; the broadcast is absolute, not cumulative. Ignored while idle or
// settling.
func (c *Coordinator) OnGestureChange(delta float64) {
	s := c.active
	if s == nil || s.settling {
		return
	}
	f := s.progressAtInterruption + Normalize(delta, s.travel, s.target)
	for _, h := range s.handles {
		h.SetFraction(f)
	}
}

// OnGestureEnd decides the active session's fate. Below the commit
// threshold the release carries too little intent: every handle is reversed
// and continued back to its start values. At or above it the handles run on
// to their target with an ease-out over the time remaining.
func (c *Coordinator) OnGestureEnd(delta float64) {
	s := c.active
	if s == nil || s.settling {
		return
	}
	f := s.progressAtInterruption + Normalize(delta, s.travel, s.target)
	s.settling = true

	if f < c.cfg.CommitThreshold {
		s.reversing = !s.reversing
		for _, h := range s.handles {
			h.SetReversed(!h.Reversed())
		}
		for _, h := range s.handles {
			h.Continue(CurveEaseInOut, c.cfg.CancelDurationFactor)
		}
		return
	}

	for _, h := range s.handles {
		h.Continue(CurveEaseOut, 0)
	}
}

// newSession builds a session targeting the opposite of the persisted state
// and registers one completion callback per handle. The factory is consulted
// fresh for every session; nothing is cached across sessions.
func (c *Coordinator) newSession() *session {
	target := c.state.Successor()
	handles := c.factory.Handles(target)
	s := &session{
		target:  target,
		handles: handles,
		travel:  c.factory.TravelExtent(),
		done:    make([]bool, len(handles)),
	}
	for i, h := range handles {
		h.OnComplete(c.completionFunc(s, i))
	}
	return s
}

func (c *Coordinator) completionFunc(s *session, idx int) func(Endpoint) {
	return func(ep Endpoint) {
		c.handleCompleted(s, idx, ep)
	}
}

// handleCompleted records one handle's completion. Stale sessions and
// duplicate callbacks are no-ops. When every handle has reported, the
// persisted state advances if and only if the primary handle finished at
// its End endpoint, and the session is torn down atomically.
func (c *Coordinator) handleCompleted(s *session, idx int, ep Endpoint) {
	if c.active != s || idx >= len(s.done) || s.done[idx] {
		return
	}
	s.done[idx] = true
	s.completed++
	if idx == 0 {
		s.primaryEndpoint = ep
	}
	if s.completed < len(s.handles) {
		return
	}

	if s.primaryEndpoint == EndpointEnd {
		c.state = c.state.Successor()
	}
	c.active = nil
}
