package game

import "math"

// Collision identifies what the ball hit during a resolution pass.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionPaddle
	CollisionExit
)

// ResolveBallCollisions reflects the ball off the top/bottom walls and
// the paddles, applying the speed-up step on every bounce, and flags a
// horizontal exit. The exit flag is the only scoring signal in the
// simulation. At most one collision is resolved per call.
func ResolveBallCollisions(ball *Ball, left, right *Paddle, w, h, accelRate, accelMax float64) Collision {
	if ball.Destroyed {
		return CollisionNone
	}

	// Walls. The velocity-sign guard keeps a clamped ball from
	// re-reflecting on the next tick.
	if ball.Pos.Y-ball.Radius <= 0 && ball.Vel.Y < 0 {
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = ball.Radius
		ball.Accelerate(accelRate, accelMax)
		return CollisionWall
	}
	if ball.Pos.Y+ball.Radius >= h && ball.Vel.Y > 0 {
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.Y = h - ball.Radius
		ball.Accelerate(accelRate, accelMax)
		return CollisionWall
	}

	// Paddles: leading edge against the contact face, only while moving
	// toward it.
	if ball.Vel.X < 0 && hitsPaddle(ball, left) {
		bounceOffPaddle(ball, left, accelRate, accelMax)
		return CollisionPaddle
	}
	if ball.Vel.X > 0 && hitsPaddle(ball, right) {
		bounceOffPaddle(ball, right, accelRate, accelMax)
		return CollisionPaddle
	}

	if ball.Pos.X < 0 {
		ball.Destroyed = true
		ball.ExitedLeft = true
		return CollisionExit
	}
	if ball.Pos.X > w {
		ball.Destroyed = true
		ball.ExitedLeft = false
		return CollisionExit
	}

	return CollisionNone
}

func hitsPaddle(b *Ball, p *Paddle) bool {
	if b.Pos.Y+b.Radius < p.Y || b.Pos.Y-b.Radius > p.Y+p.Height {
		return false
	}
	if p.Side == SideLeft {
		return b.Pos.X-b.Radius <= p.Face() && b.Pos.X >= p.X
	}
	return b.Pos.X+b.Radius >= p.Face() && b.Pos.X <= p.X+p.Width
}

// bounceOffPaddle reverses the horizontal direction and redirects the
// ball according to where it struck relative to the paddle center. The
// offset-to-angle mapping is deterministic, so identical hits always
// produce identical rebounds.
func bounceOffPaddle(b *Ball, p *Paddle, accelRate, accelMax float64) {
	rel := (b.Pos.Y - p.CenterY()) / (p.Height / 2)
	rel = clampF(rel, -1, 1)
	angle := rel * MaxBounceAngle

	speed := b.Speed()
	dir := 1.0
	if b.Vel.X > 0 {
		dir = -1
	}
	b.Vel = Vec{dir * speed * math.Cos(angle), speed * math.Sin(angle)}

	// Re-seat outside the face so the same contact cannot trigger twice.
	if p.Side == SideLeft {
		b.Pos.X = p.Face() + b.Radius
	} else {
		b.Pos.X = p.Face() - b.Radius
	}

	b.Accelerate(accelRate, accelMax)
}
