package game

import (
	"math"
	"time"
)

// Engine orchestrates one fixed-timestep update of the whole simulation:
// ball integration, collision resolution, state transitions and paddle
// control, in that order, so an AI never targets a trajectory from
// before this frame's reflections.
type Engine struct {
	params Params
	w, h   float64

	clock     *Clock
	ball      *Ball
	left      *Paddle
	right     *Paddle
	predictor *Predictor
	match     *Match

	cb       Callbacks
	watchdog Handle
}

// NewEngine builds an engine for the given court size and player kinds.
// Two Background paddles put the match in ambient mode: a short silent
// delay replaces the visible countdown.
func NewEngine(w, h int, leftKind, rightKind Kind, params Params, cb Callbacks) *Engine {
	e := &Engine{
		params:    params,
		clock:     NewClock(),
		ball:      &Ball{},
		left:      NewPaddle(SideLeft, leftKind),
		right:     NewPaddle(SideRight, rightKind),
		predictor: &Predictor{Debounce: params.PredictDebounce, AccelRate: params.AccelRate, AccelMax: params.AccelMax},
		cb:        cb,
	}
	ambient := leftKind == KindBackground && rightKind == KindBackground
	e.match = NewMatch(e.clock, params, ambient, e.launchBall, e.capture, e.restoreSnapshot, cb)

	e.applyGeometry(float64(w), float64(h))
	e.ball.Restart(e.w, e.h)
	e.left.SetCenterY(e.h/2, e.h)
	e.right.SetCenterY(e.h/2, e.h)
	return e
}

// applyGeometry derives every size-dependent quantity from the court.
func (e *Engine) applyGeometry(w, h float64) {
	e.w, e.h = w, h

	e.ball.Radius = w * e.params.BallRadiusFrac
	e.ball.BaseSpeed = w * e.params.BaseSpeedFrac

	for _, p := range []*Paddle{e.left, e.right} {
		p.Width = w * e.params.PaddleWidthFrac
		p.Height = h * e.params.PaddleHeightFrac
		p.Speed = h * e.params.PaddleSpeedFrac
	}
	e.left.X = 0
	e.right.X = w - e.right.Width
}

// Resize rebuilds the court geometry, carrying relative positions over
// through a snapshot so a rally in progress keeps its shape.
func (e *Engine) Resize(w, h int) {
	s := e.capture()
	e.applyGeometry(float64(w), float64(h))
	e.restoreSnapshot(s)
}

// Tick advances the simulation by dt. Timers (countdown, watchdog) fire
// first, then the ball moves and collides, then paddles steer and move.
func (e *Engine) Tick(dt time.Duration) {
	e.clock.Advance(dt)
	step := dt.Seconds()

	playing := e.match.Phase() == PhasePlaying

	if playing && !e.ball.Destroyed {
		e.ball.Integrate(step)
		switch ResolveBallCollisions(e.ball, e.left, e.right, e.w, e.h, e.params.AccelRate, e.params.AccelMax) {
		case CollisionWall:
			if e.cb.OnBounce != nil {
				e.cb.OnBounce(CollisionWall)
			}
		case CollisionPaddle:
			if e.cb.OnBounce != nil {
				e.cb.OnBounce(CollisionPaddle)
			}
		case CollisionExit:
			scorer := SideLeft
			if e.ball.ExitedLeft {
				scorer = SideRight
			}
			e.paddle(scorer).Score++
			if e.cb.OnGoalScored != nil {
				e.cb.OnGoalScored(scorer)
			}
			e.match.PointScored()
		}
		playing = e.match.Phase() == PhasePlaying
	}

	now := e.clock.Now().Seconds()
	pairs := [2][2]*Paddle{{e.left, e.right}, {e.right, e.left}}
	for _, pair := range pairs {
		p, opp := pair[0], pair[1]
		if p.Kind == KindHuman {
			p.Move(step, e.h)
			continue
		}
		if !playing {
			p.Direction = DirNone
			continue
		}
		if p.Kind == KindAI {
			e.predictor.Retarget(p, opp, e.ball, e.h, now)
		}
		p.Control(e.ball, e.h, e.params.AIRecedeTime)
		p.Move(step, e.h)
	}
}

// launchBall serves a fresh point and forces an immediate prediction on
// the next tick for both paddles.
func (e *Engine) launchBall() {
	e.ball.Restart(e.w, e.h)
	e.ball.Launch()
	e.left.LastPredictAt = math.Inf(-1)
	e.right.LastPredictAt = math.Inf(-1)
}

func (e *Engine) capture() Snapshot {
	return CaptureSnapshot(e.ball, e.left, e.right, e.w, e.h)
}

func (e *Engine) restoreSnapshot(s Snapshot) {
	s.Restore(e.ball, e.left, e.right, e.w, e.h)
}

func (e *Engine) paddle(s Side) *Paddle {
	if s == SideLeft {
		return e.left
	}
	return e.right
}

// SetIntent feeds an input-layer direction to a human paddle. Intents
// for computer paddles are ignored.
func (e *Engine) SetIntent(side Side, dir Direction) {
	p := e.paddle(side)
	if p.Kind != KindHuman {
		return
	}
	p.Direction = dir
}

// SetTimeLimit arms the match watchdog, replacing any previous one. A
// non-positive duration disarms it.
func (e *Engine) SetTimeLimit(d time.Duration, fn func()) {
	if e.watchdog != 0 {
		e.clock.Cancel(e.watchdog)
		e.watchdog = 0
	}
	if d <= 0 {
		return
	}
	e.watchdog = e.clock.After(d, func() {
		e.watchdog = 0
		fn()
	})
}

func (e *Engine) Start() { e.match.StartGame() }

func (e *Engine) Pause() { e.match.Pause() }

func (e *Engine) Resume() { e.match.Resume() }

// Stop tears the match down: countdown and watchdog cancelled, phase
// parked in Paused.
func (e *Engine) Stop() {
	if e.watchdog != 0 {
		e.clock.Cancel(e.watchdog)
		e.watchdog = 0
	}
	e.match.ForceStop()
}

func (e *Engine) Ball() *Ball { return e.ball }

func (e *Engine) Left() *Paddle { return e.left }

func (e *Engine) Right() *Paddle { return e.right }

func (e *Engine) Match() *Match { return e.match }

func (e *Engine) Size() (int, int) { return int(e.w), int(e.h) }

func (e *Engine) Scores() (int, int) { return e.left.Score, e.right.Score }

func (e *Engine) Now() time.Duration { return e.clock.Now() }

func (e *Engine) Params() Params { return e.params }

// Winner polls for a finished match; the state machine itself has no
// terminal state, the orchestrator checks scores after each tick.
func (e *Engine) Winner(pointsToWin int) (Side, bool) {
	if e.left.Score >= pointsToWin {
		return SideLeft, true
	}
	if e.right.Score >= pointsToWin {
		return SideRight, true
	}
	return SideLeft, false
}
