package game

// Phase is the exclusive state of a match. Transitions swap the whole
// phase; combinations are unrepresentable.
type Phase int

const (
	PhasePaused Phase = iota
	PhaseCountdown
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	}
	return "unknown"
}

// Callbacks are the hooks the simulation fires toward the UI and
// persistence layers. Nil callbacks are skipped.
type Callbacks struct {
	OnCountdownTick func(value int)
	OnPointStarted  func()
	OnPhaseChanged  func(phase Phase)
	OnGoalScored    func(scorer Side)
	OnBounce        func(kind Collision)
}

// Match owns the phase transitions, the countdown and the single
// snapshot slot. It manipulates ball and paddle geometry only through
// the three closures handed to it, not through an engine back-pointer.
type Match struct {
	phase        Phase
	pendingPause bool
	started      bool
	ambient      bool

	params    Params
	countdown *Countdown
	snapshot  *Snapshot

	launch  func()
	capture func() Snapshot
	restore func(Snapshot)

	cb Callbacks
}

func NewMatch(clock MatchClock, params Params, ambient bool,
	launch func(), capture func() Snapshot, restore func(Snapshot), cb Callbacks) *Match {
	return &Match{
		phase:     PhasePaused,
		ambient:   ambient,
		params:    params,
		countdown: NewCountdown(clock),
		launch:    launch,
		capture:   capture,
		restore:   restore,
		cb:        cb,
	}
}

func (m *Match) Phase() Phase {
	return m.phase
}

func (m *Match) PendingPause() bool {
	return m.pendingPause
}

// Started reports whether the first point of the match has begun.
func (m *Match) Started() bool {
	return m.started
}

// CountdownValue is the number currently displayed, zero outside a
// visible countdown.
func (m *Match) CountdownValue() int {
	return m.countdown.Value()
}

// StartGame begins the first point. Valid only from the pre-game paused
// state; anything else is a no-op.
func (m *Match) StartGame() {
	if m.phase != PhasePaused || m.started {
		return
	}
	m.started = true
	m.beginCountdown(false)
}

// Pause freezes play. From Playing it snapshots the geometry and pauses
// immediately; during a countdown the request is latched and applied
// once the countdown completes. Anywhere else it is a no-op.
func (m *Match) Pause() {
	switch m.phase {
	case PhasePlaying:
		s := m.capture()
		m.snapshot = &s
		m.setPhase(PhasePaused)
	case PhaseCountdown:
		m.pendingPause = true
	}
}

// Resume leaves the paused state through a fresh countdown, restoring
// the saved snapshot when the count completes. The very first resume of
// a match starts the game instead.
func (m *Match) Resume() {
	if m.phase != PhasePaused {
		return
	}
	if !m.started {
		m.StartGame()
		return
	}
	m.pendingPause = false
	m.beginCountdown(true)
}

// PointScored records a finished rally: the snapshot is dropped (the
// next point starts fresh), the match passes through Paused and
// immediately counts down into the next serve.
func (m *Match) PointScored() {
	if m.phase != PhasePlaying {
		return
	}
	m.snapshot = nil
	m.setPhase(PhasePaused)
	m.beginCountdown(false)
}

// ForceStop cancels any running countdown and parks the match in Paused
// with no snapshot. Used at teardown.
func (m *Match) ForceStop() {
	m.countdown.Cancel()
	m.pendingPause = false
	m.snapshot = nil
	m.setPhase(PhasePaused)
}

// beginCountdown runs the countdown and, on completion, either honors a
// latched pause request or enters play. withSnapshot selects a resumed
// rally (restore geometry) over a fresh serve (launch the ball). A
// resume with no saved snapshot, such as after a pause deferred through
// a serve countdown, serves fresh: the ball was never launched for that
// point, so there is no rally to restore.
func (m *Match) beginCountdown(withSnapshot bool) {
	m.setPhase(PhaseCountdown)

	done := func() {
		if m.pendingPause {
			m.pendingPause = false
			m.setPhase(PhasePaused)
			return
		}
		if withSnapshot && m.snapshot != nil {
			m.restore(*m.snapshot)
			m.snapshot = nil
			m.setPhase(PhasePlaying)
			return
		}
		m.launch()
		m.setPhase(PhasePlaying)
		if m.cb.OnPointStarted != nil {
			m.cb.OnPointStarted()
		}
	}

	if m.ambient {
		m.countdown.StartAmbient(m.params.AmbientDelay, done)
		return
	}
	m.countdown.Start(m.params.CountdownFrom, m.params.CountdownStep, m.params.SettleDelay,
		func(v int) {
			if m.cb.OnCountdownTick != nil {
				m.cb.OnCountdownTick(v)
			}
		}, done)
}

func (m *Match) setPhase(p Phase) {
	if m.phase == p {
		return
	}
	m.phase = p
	if m.cb.OnPhaseChanged != nil {
		m.cb.OnPhaseChanged(p)
	}
}
