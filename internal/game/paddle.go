package game

import "math"

// Direction is a discrete movement intent.
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

// Side is which half of the court a paddle defends.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Kind selects the per-tick control policy for a paddle.
type Kind int

const (
	KindHuman Kind = iota
	KindAI
	KindBackground
)

// Paddle is one of the two player bars. Y is the top edge; the invariant
// 0 <= Y <= courtHeight-Height holds after every Move.
type Paddle struct {
	Side   Side
	Kind   Kind
	X      float64 // left edge, fixed per side
	Y      float64
	Width  float64
	Height float64
	Speed  float64
	Score  int

	Direction Direction

	// TargetY is the last predicted impact center (AI paddles only).
	TargetY       float64
	LastPredictAt float64
}

func NewPaddle(side Side, kind Kind) *Paddle {
	return &Paddle{
		Side:          side,
		Kind:          kind,
		LastPredictAt: math.Inf(-1),
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// SetCenterY positions the paddle by its center, clamped to the court.
func (p *Paddle) SetCenterY(cy, courtH float64) {
	p.Y = cy - p.Height/2
	p.Clamp(courtH)
}

// Face is the X of the paddle's contact edge, the side the ball strikes.
func (p *Paddle) Face() float64 {
	if p.Side == SideLeft {
		return p.X + p.Width
	}
	return p.X
}

// Move integrates one tick of movement and clamps to the court.
func (p *Paddle) Move(dt, courtH float64) {
	switch p.Direction {
	case DirUp:
		p.Y -= p.Speed * dt
	case DirDown:
		p.Y += p.Speed * dt
	}
	p.Clamp(courtH)
}

func (p *Paddle) Clamp(courtH float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if max := courtH - p.Height; p.Y > max {
		p.Y = max
	}
}
