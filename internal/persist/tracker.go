package persist

import (
	"context"
	"io"
	"log"
	"time"
)

// Tracker bridges simulation events to the Store. It creates the match
// record lazily when gameplay actually begins, attributes each goal with
// the elapsed play time (wall clock minus paused time) since the
// previous goal, and goes quiet once the match is marked completed.
//
// Store failures are logged and swallowed: a failed match creation is
// retried on the next goal, a failed goal record is not (duplicate
// suppression belongs to the service).
type Tracker struct {
	store   Store
	player1 int64
	player2 int64
	logger  *log.Logger
	now     func() time.Time

	matchID   int64
	created   bool
	completed bool

	segmentStart time.Time // start of the current goal interval
	pausedAt     time.Time
	pausedTotal  time.Duration
	paused       bool
}

// NewTracker builds a tracker reporting failures through logger. The
// terminal belongs to the UI, so a nil logger discards instead of
// falling back to stderr.
func NewTracker(store Store, player1, player2 int64, logger *log.Logger) *Tracker {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Tracker{
		store:   store,
		player1: player1,
		player2: player2,
		logger:  logger,
		now:     time.Now,
	}
}

// MatchStarted marks the beginning of gameplay. The match record is
// created on the spot; on failure the created flag stays down so the
// next goal retries it.
func (t *Tracker) MatchStarted(ctx context.Context) {
	if t.created || t.completed {
		return
	}
	t.segmentStart = t.now()
	t.pausedTotal = 0
	t.createMatch(ctx)
}

// Paused and Resumed bracket intervals that must not count toward goal
// durations.
func (t *Tracker) Paused() {
	if t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.now()
}

func (t *Tracker) Resumed() {
	if !t.paused {
		return
	}
	t.paused = false
	t.pausedTotal += t.now().Sub(t.pausedAt)
}

// GoalScored records one point for the given player. Skipped entirely
// once the match is completed.
func (t *Tracker) GoalScored(ctx context.Context, scorerID int64) {
	if t.completed {
		return
	}
	if !t.created {
		t.createMatch(ctx)
		if !t.created {
			return
		}
	}

	duration := t.segmentDuration()
	t.resetSegment()

	if _, err := t.store.RecordGoal(ctx, t.matchID, scorerID, duration); err != nil {
		t.logger.Printf("persist: record goal failed: %v", err)
	}
}

// Completed stops all further persistence for this match.
func (t *Tracker) Completed() {
	t.completed = true
}

func (t *Tracker) createMatch(ctx context.Context) {
	match, err := t.store.CreateMatch(ctx, t.player1, t.player2)
	if err != nil {
		t.logger.Printf("persist: create match failed: %v", err)
		return
	}
	t.matchID = match.ID
	t.created = true
}

// segmentDuration is the play time since the previous goal (or match
// start), with paused intervals subtracted.
func (t *Tracker) segmentDuration() int64 {
	elapsed := t.now().Sub(t.segmentStart) - t.pausedTotal
	if t.paused {
		elapsed -= t.now().Sub(t.pausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return int64(elapsed / time.Second)
}

func (t *Tracker) resetSegment() {
	t.segmentStart = t.now()
	t.pausedTotal = 0
	if t.paused {
		t.pausedAt = t.now()
	}
}
