package game

import (
	"math"
	"time"
)

// Size-relative and pacing defaults. Lengths are fractions of the court
// dimension they derive from, so a resize keeps the game proportional.
const (
	DefaultBaseSpeedFrac    = 0.5   // ball crosses the court in 2s at 1x
	DefaultBallRadiusFrac   = 0.01  // of court width
	DefaultPaddleWidthFrac  = 0.015 // of court width
	DefaultPaddleHeightFrac = 0.2   // of court height
	DefaultPaddleSpeedFrac  = 0.9   // of court height per second

	DefaultAccelRate = 0.05
	DefaultAccelMax  = 2.5

	InitialMultiplier = 1.0

	// Launch angles are measured from the horizontal. The ball always
	// serves with some vertical component but never near-vertical.
	MinLaunchAngle = math.Pi / 12
	MaxLaunchAngle = math.Pi / 4

	MaxBounceAngle = math.Pi / 3

	// DeadzoneFrac is the steering deadzone as a fraction of paddle
	// height, to keep AI paddles from oscillating around their target.
	DeadzoneFrac = 0.25
)

// Params are the physics and pacing knobs of a match. Start from
// DefaultParams; the zero value is not meaningful.
type Params struct {
	BaseSpeedFrac    float64
	BallRadiusFrac   float64
	PaddleWidthFrac  float64
	PaddleHeightFrac float64
	PaddleSpeedFrac  float64

	AccelRate float64
	AccelMax  float64

	// PredictDebounce is the minimum interval between AI trajectory
	// recomputations, in seconds.
	PredictDebounce float64
	// AIRecedeTime is the time-to-arrival beyond which an AI paddle
	// drifts back to center instead of chasing its target.
	AIRecedeTime float64

	CountdownFrom int
	CountdownStep time.Duration
	SettleDelay   time.Duration
	AmbientDelay  time.Duration
}

func DefaultParams() Params {
	return Params{
		BaseSpeedFrac:    DefaultBaseSpeedFrac,
		BallRadiusFrac:   DefaultBallRadiusFrac,
		PaddleWidthFrac:  DefaultPaddleWidthFrac,
		PaddleHeightFrac: DefaultPaddleHeightFrac,
		PaddleSpeedFrac:  DefaultPaddleSpeedFrac,
		AccelRate:        DefaultAccelRate,
		AccelMax:         DefaultAccelMax,
		PredictDebounce:  1.0,
		AIRecedeTime:     1.0,
		CountdownFrom:    3,
		CountdownStep:    time.Second,
		SettleDelay:      50 * time.Millisecond,
		AmbientDelay:     500 * time.Millisecond,
	}
}
