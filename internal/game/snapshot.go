package game

// Snapshot is a resolution-independent capture of the match geometry,
// taken before a pause or resize and restored on the following resume.
// Storing fractions instead of pixels lets a restore target a court of a
// different size without desyncing positions.
type Snapshot struct {
	BallX, BallY float64 // fractions of court width/height
	DirX, DirY   float64 // unit velocity direction
	Multiplier   float64
	LeftCenter   float64 // paddle center as fraction of court height
	RightCenter  float64
}

// CaptureSnapshot records normalized geometry for the current court size.
func CaptureSnapshot(ball *Ball, left, right *Paddle, w, h float64) Snapshot {
	dir := ball.Vel.Normalize()
	return Snapshot{
		BallX:       ball.Pos.X / w,
		BallY:       ball.Pos.Y / h,
		DirX:        dir.X,
		DirY:        dir.Y,
		Multiplier:  ball.SpeedMultiplier,
		LeftCenter:  left.CenterY() / h,
		RightCenter: right.CenterY() / h,
	}
}

// Restore re-applies the snapshot against the (possibly different)
// current court size. A snapshot of a stationary ball restores a
// stationary ball.
func (s Snapshot) Restore(ball *Ball, left, right *Paddle, w, h float64) {
	ball.Pos = Vec{s.BallX * w, s.BallY * h}
	ball.SpeedMultiplier = s.Multiplier
	ball.Vel = Vec{s.DirX, s.DirY}.WithLen(ball.Speed())
	left.SetCenterY(s.LeftCenter*h, h)
	right.SetCenterY(s.RightCenter*h, h)
}
