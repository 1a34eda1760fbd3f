package game

import (
	"testing"
	"time"
)

type matchHarness struct {
	clock    *Clock
	m        *Match
	launched int
	captured int
	restored int
	points   int
	ticks    []int
	phases   []Phase
}

func newMatchHarness(t *testing.T, ambient bool) *matchHarness {
	t.Helper()
	h := &matchHarness{clock: NewClock()}
	cb := Callbacks{
		OnCountdownTick: func(v int) { h.ticks = append(h.ticks, v) },
		OnPointStarted:  func() { h.points++ },
		OnPhaseChanged:  func(p Phase) { h.phases = append(h.phases, p) },
	}
	h.m = NewMatch(h.clock, DefaultParams(), ambient,
		func() { h.launched++ },
		func() Snapshot { h.captured++; return Snapshot{BallX: 0.5, BallY: 0.5, Multiplier: 1} },
		func(Snapshot) { h.restored++ },
		cb)
	return h
}

// runCountdown advances through a full 3..0 countdown plus settle delay.
func (h *matchHarness) runCountdown() {
	h.clock.Advance(3 * time.Second)
	h.clock.Advance(50 * time.Millisecond)
}

func TestMatch_StartGame(t *testing.T) {
	h := newMatchHarness(t, false)

	if h.m.Phase() != PhasePaused {
		t.Fatalf("initial phase should be paused, got %v", h.m.Phase())
	}

	h.m.StartGame()
	if h.m.Phase() != PhaseCountdown {
		t.Fatalf("expected countdown, got %v", h.m.Phase())
	}
	if len(h.ticks) != 1 || h.ticks[0] != 3 {
		t.Fatalf("expected immediate countdown tick 3, got %v", h.ticks)
	}

	h.runCountdown()
	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing after countdown, got %v", h.m.Phase())
	}
	if h.launched != 1 {
		t.Errorf("expected 1 launch, got %d", h.launched)
	}
	if h.points != 1 {
		t.Errorf("expected onPointStarted once, got %d", h.points)
	}
}

func TestMatch_StartGameOnlyOnce(t *testing.T) {
	h := newMatchHarness(t, false)

	h.m.StartGame()
	h.m.StartGame() // no-op while counting down
	h.runCountdown()
	h.m.StartGame() // no-op while playing

	if h.launched != 1 {
		t.Errorf("expected a single launch, got %d", h.launched)
	}
}

func TestMatch_PauseResumeRestoresOnce(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()
	h.runCountdown()

	h.m.Pause()
	if h.m.Phase() != PhasePaused {
		t.Fatalf("expected paused, got %v", h.m.Phase())
	}
	if h.captured != 1 {
		t.Fatalf("expected one snapshot capture, got %d", h.captured)
	}

	h.m.Resume()
	if h.m.Phase() != PhaseCountdown {
		t.Fatalf("expected countdown on resume, got %v", h.m.Phase())
	}
	h.runCountdown()
	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing after resume countdown, got %v", h.m.Phase())
	}
	if h.restored != 1 {
		t.Errorf("expected one restore, got %d", h.restored)
	}
	// A resumed rally is not a new point.
	if h.launched != 1 {
		t.Errorf("resume must not relaunch, launches=%d", h.launched)
	}
	if h.points != 1 {
		t.Errorf("resume must not fire onPointStarted, got %d", h.points)
	}

	// A second pause/resume captures and consumes a fresh snapshot; the
	// old one has been discarded.
	h.m.Pause()
	h.m.Resume()
	h.runCountdown()
	if h.captured != 2 || h.restored != 2 {
		t.Errorf("expected capture/restore 2/2, got %d/%d", h.captured, h.restored)
	}
}

func TestMatch_FirstResumeStartsGame(t *testing.T) {
	h := newMatchHarness(t, false)

	h.m.Resume()
	if h.m.Phase() != PhaseCountdown {
		t.Fatalf("expected countdown, got %v", h.m.Phase())
	}
	h.runCountdown()
	if h.launched != 1 || h.points != 1 {
		t.Errorf("first resume should behave like start: launches=%d points=%d", h.launched, h.points)
	}
}

func TestMatch_PauseDuringCountdownDefers(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()

	// Let the count reach 2, then request a pause.
	h.clock.Advance(time.Second)
	if len(h.ticks) != 2 || h.ticks[1] != 2 {
		t.Fatalf("expected count at 2, got %v", h.ticks)
	}
	h.m.Pause()

	if h.m.Phase() != PhaseCountdown {
		t.Fatalf("pause during countdown must not change phase, got %v", h.m.Phase())
	}
	if !h.m.PendingPause() {
		t.Fatal("expected pendingPause latched")
	}

	// Countdown completes into Paused instead of Playing.
	h.clock.Advance(2 * time.Second)
	h.clock.Advance(50 * time.Millisecond)
	if h.m.Phase() != PhasePaused {
		t.Fatalf("expected paused after deferred pause, got %v", h.m.Phase())
	}
	if h.m.PendingPause() {
		t.Error("pendingPause not cleared")
	}
	if h.launched != 0 {
		t.Errorf("ball launched despite deferred pause, launches=%d", h.launched)
	}
}

func TestMatch_ResumeAfterDeferredPauseServesFresh(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()

	// Defer a pause through the serve countdown; the ball is never
	// launched, so there is no snapshot to resume from.
	h.clock.Advance(time.Second)
	h.m.Pause()
	h.runCountdown()
	if h.m.Phase() != PhasePaused {
		t.Fatalf("expected paused after deferred pause, got %v", h.m.Phase())
	}

	h.m.Resume()
	h.runCountdown()

	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing after resume, got %v", h.m.Phase())
	}
	if h.launched != 1 {
		t.Errorf("resume without a snapshot must serve fresh, launches=%d", h.launched)
	}
	if h.restored != 0 {
		t.Errorf("nothing to restore, restores=%d", h.restored)
	}
	if h.points != 1 {
		t.Errorf("expected onPointStarted once, got %d", h.points)
	}
}

func TestMatch_ResumeAfterDeferredPausePostGoalServesFresh(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()
	h.runCountdown()

	// A goal drops the snapshot and counts down into the next serve;
	// pausing during that countdown parks the match with no ball in
	// flight.
	h.m.PointScored()
	h.clock.Advance(time.Second)
	h.m.Pause()
	h.runCountdown()
	if h.m.Phase() != PhasePaused {
		t.Fatalf("expected paused after deferred pause, got %v", h.m.Phase())
	}
	if h.launched != 1 {
		t.Fatalf("expected only the first serve so far, launches=%d", h.launched)
	}

	h.m.Resume()
	h.runCountdown()

	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing after resume, got %v", h.m.Phase())
	}
	if h.launched != 2 {
		t.Errorf("resume must re-serve the interrupted point, launches=%d", h.launched)
	}
	if h.points != 2 {
		t.Errorf("expected onPointStarted for both serves, got %d", h.points)
	}
}

func TestMatch_PendingPauseOnlyDuringCountdown(t *testing.T) {
	h := newMatchHarness(t, false)

	h.m.Pause() // paused already: no-op, no latch
	if h.m.PendingPause() {
		t.Fatal("pendingPause latched outside countdown")
	}

	h.m.StartGame()
	h.runCountdown()
	h.m.Pause() // from playing: immediate, no latch
	if h.m.PendingPause() {
		t.Error("pendingPause latched on an immediate pause")
	}
}

func TestMatch_PointScored(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()
	h.runCountdown()
	h.phases = nil

	h.m.PointScored()

	// Transient pass through Paused, then straight into Countdown.
	if len(h.phases) != 2 || h.phases[0] != PhasePaused || h.phases[1] != PhaseCountdown {
		t.Fatalf("expected [paused countdown], got %v", h.phases)
	}

	h.runCountdown()
	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing, got %v", h.m.Phase())
	}
	if h.launched != 2 {
		t.Errorf("expected relaunch for the new point, launches=%d", h.launched)
	}
	if h.points != 2 {
		t.Errorf("expected onPointStarted for the new point, got %d", h.points)
	}
	// The next point starts fresh: nothing to restore.
	if h.restored != 0 {
		t.Errorf("point transition must not restore a snapshot, got %d", h.restored)
	}
}

func TestMatch_ForceStop(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()
	h.clock.Advance(time.Second)

	h.m.ForceStop()
	if h.m.Phase() != PhasePaused {
		t.Fatalf("expected paused after force stop, got %v", h.m.Phase())
	}

	// The cancelled countdown must never complete.
	h.clock.Advance(10 * time.Second)
	if h.m.Phase() != PhasePaused {
		t.Errorf("phase drifted after force stop: %v", h.m.Phase())
	}
	if h.launched != 0 {
		t.Errorf("launch fired after force stop, launches=%d", h.launched)
	}
}

func TestMatch_MisuseIsNoOp(t *testing.T) {
	h := newMatchHarness(t, false)
	h.m.StartGame()
	h.runCountdown()

	h.m.Resume() // not paused
	if h.m.Phase() != PhasePlaying {
		t.Errorf("resume while playing changed phase to %v", h.m.Phase())
	}

	h.m.PointScored()
	h.m.PointScored() // second call while counting down: no-op
	h.runCountdown()
	if h.launched != 2 {
		t.Errorf("duplicate pointScored caused extra launches: %d", h.launched)
	}
}

func TestMatch_Ambient(t *testing.T) {
	h := newMatchHarness(t, true)
	h.m.StartGame()

	if len(h.ticks) != 0 {
		t.Fatalf("ambient mode must not announce countdown ticks, got %v", h.ticks)
	}
	h.clock.Advance(500 * time.Millisecond)
	if h.m.Phase() != PhasePlaying {
		t.Fatalf("expected playing after ambient delay, got %v", h.m.Phase())
	}
	if h.launched != 1 {
		t.Errorf("expected launch, got %d", h.launched)
	}
}
