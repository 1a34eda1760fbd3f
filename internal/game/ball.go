package game

import (
	"math"
	"math/rand"
)

// Ball is the single match ball. It is created once and recycled between
// points: Restart recenters it with zero velocity, Launch serves it.
// Going out of horizontal bounds only flags it destroyed, it is never
// deallocated.
type Ball struct {
	Body
	Radius          float64
	BaseSpeed       float64
	SpeedMultiplier float64
	Destroyed       bool
	ExitedLeft      bool
}

// Speed is the target velocity magnitude at the current multiplier.
func (b *Ball) Speed() float64 {
	return b.BaseSpeed * b.SpeedMultiplier
}

// Restart recenters the ball with zero velocity, ahead of a launch.
func (b *Ball) Restart(w, h float64) {
	b.Pos = Vec{w / 2, h / 2}
	b.Vel = Vec{}
	b.Destroyed = false
	b.ExitedLeft = false
}

// Launch serves the ball: multiplier back to initial, a random angle
// inside the safe band, random vertical and horizontal signs.
func (b *Ball) Launch() {
	b.SpeedMultiplier = InitialMultiplier
	angle := MinLaunchAngle + rand.Float64()*(MaxLaunchAngle-MinLaunchAngle)
	v := Vec{math.Cos(angle), math.Sin(angle)}
	if rand.Intn(2) == 0 {
		v.X = -v.X
	}
	if rand.Intn(2) == 0 {
		v.Y = -v.Y
	}
	b.Vel = v.WithLen(b.Speed())
	b.Destroyed = false
	b.ExitedLeft = false
}

// Accelerate applies one bounce speed-up step: the multiplier grows by
// rate up to max and the velocity is rescaled to the new magnitude.
// A stationary ball stays stationary.
func (b *Ball) Accelerate(rate, max float64) {
	b.SpeedMultiplier = math.Min(b.SpeedMultiplier+rate, max)
	b.Vel = b.Vel.WithLen(b.Speed())
}
