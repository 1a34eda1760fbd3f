package game

import "math"

// Control decides this tick's direction for computer-driven paddles.
// Human paddles keep their externally supplied intent untouched.
func (p *Paddle) Control(ball *Ball, courtH, recedeTime float64) {
	switch p.Kind {
	case KindAI:
		p.Direction = p.steerAI(ball, courtH, recedeTime)
	case KindBackground:
		p.Direction = p.steerBackground(ball, courtH)
	}
}

// steerAI chases the predicted impact point. When the ball recedes and
// is far enough away it drifts back to center instead, which keeps the
// paddle from twitching around a stale target.
func (p *Paddle) steerAI(ball *Ball, courtH, recedeTime float64) Direction {
	target := clampF(p.TargetY, p.Height/2, courtH-p.Height/2)
	if p.movingAway(ball) && p.timeToReach(ball) > recedeTime {
		target = courtH / 2
	}
	return p.stepToward(target)
}

// steerBackground is the ambient-mode heuristic: center when the ball
// recedes, otherwise track its raw Y. No prediction, deliberately weak.
func (p *Paddle) steerBackground(ball *Ball, courtH float64) Direction {
	target := ball.Pos.Y
	if p.movingAway(ball) {
		target = courtH / 2
	}
	return p.stepToward(target)
}

// movingAway reports whether the ball is travelling toward the far side.
func (p *Paddle) movingAway(b *Ball) bool {
	if p.Side == SideLeft {
		return b.Vel.X > 0
	}
	return b.Vel.X < 0
}

// timeToReach estimates seconds until the ball reaches this paddle's
// line at its current horizontal speed.
func (p *Paddle) timeToReach(b *Ball) float64 {
	vx := math.Abs(b.Vel.X)
	if vx == 0 {
		return math.Inf(1)
	}
	return math.Abs(b.Pos.X-p.Face()) / vx
}

func (p *Paddle) stepToward(target float64) Direction {
	delta := target - p.CenterY()
	if math.Abs(delta) <= p.Height*DeadzoneFrac {
		return DirNone
	}
	if delta < 0 {
		return DirUp
	}
	return DirDown
}
