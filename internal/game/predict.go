package game

import "math"

// MaxBounces bounds the look-ahead: if the trajectory has not reached
// the predicting paddle's line after this many reflections, the
// prediction degrades to the paddle's current center.
const MaxBounces = 10

type hitKind int

const (
	hitNone hitKind = iota
	hitTop
	hitBottom
	hitOpponent
	hitOwn
)

// Predictor computes where the ball will cross a paddle's contact line,
// following up to MaxBounces reflections off the walls and the opposing
// paddle's line. The opponent line is treated as a fixed reflector; the
// opponent's actual movement is not modelled.
type Predictor struct {
	// Debounce is the minimum interval between recomputations per
	// paddle, in seconds.
	Debounce  float64
	AccelRate float64
	AccelMax  float64
}

// Retarget refreshes p.TargetY from the ball's current trajectory. The
// recomputation is debounced per paddle; a stationary ball aims the
// paddle at its own current center.
func (pr *Predictor) Retarget(p, opp *Paddle, ball *Ball, courtH, now float64) {
	if ball.Vel.X == 0 && ball.Vel.Y == 0 {
		p.TargetY = p.CenterY()
		return
	}
	if now-p.LastPredictAt < pr.Debounce {
		return
	}
	p.LastPredictAt = now
	p.TargetY = pr.impactY(p, opp, ball, courtH)
}

// impactY walks the trajectory with an explicit cursor. Each step picks
// the earliest strictly-positive collision among top wall, bottom wall,
// opponent line and own line, in that enumeration order on exact ties.
func (pr *Predictor) impactY(p, opp *Paddle, ball *Ball, courtH float64) float64 {
	pos := ball.Pos
	vel := ball.Vel
	mult := ball.SpeedMultiplier
	ownX := p.Face()
	oppX := opp.Face()
	half := p.Height / 2

	for i := 0; i < MaxBounces; i++ {
		candidates := [4]struct {
			t float64
			k hitKind
		}{
			{timeToLine(pos.Y, vel.Y, 0), hitTop},
			{timeToLine(pos.Y, vel.Y, courtH), hitBottom},
			{timeToLine(pos.X, vel.X, oppX), hitOpponent},
			{timeToLine(pos.X, vel.X, ownX), hitOwn},
		}

		best := math.Inf(1)
		kind := hitNone
		for _, c := range candidates {
			if c.t < best {
				best = c.t
				kind = c.k
			}
		}

		switch kind {
		case hitNone:
			return p.CenterY()
		case hitOwn:
			y := pos.Y + vel.Y*best
			return clampF(y, half, courtH-half)
		case hitTop, hitBottom:
			pos = pos.Add(vel.Scale(best))
			vel.Y = -vel.Y
		case hitOpponent:
			pos = pos.Add(vel.Scale(best))
			vel.X = -vel.X
		}

		// Mirror the bounce speed-up so the simulated timing stays
		// consistent with what the resolver will actually do.
		mult = math.Min(mult+pr.AccelRate, pr.AccelMax)
		vel = vel.WithLen(ball.BaseSpeed * mult)
	}

	return p.CenterY()
}

// timeToLine returns the time for a point at x moving at v to reach the
// line, or +Inf when the velocity is zero or points away from it.
func timeToLine(x, v, line float64) float64 {
	if v == 0 {
		return math.Inf(1)
	}
	t := (line - x) / v
	if t <= 0 {
		return math.Inf(1)
	}
	return t
}
