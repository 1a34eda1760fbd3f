package game

import (
	"math"
	"testing"
)

func newTestBall() *Ball {
	b := &Ball{BaseSpeed: 400, SpeedMultiplier: InitialMultiplier, Radius: 8}
	b.Restart(800, 600)
	return b
}

func TestVec_NormalizeZero(t *testing.T) {
	v := Vec{}.Normalize()
	if v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero vector, got (%f,%f)", v.X, v.Y)
	}

	v = Vec{}.WithLen(100)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero vector from WithLen, got (%f,%f)", v.X, v.Y)
	}
}

func TestVec_WithLen(t *testing.T) {
	v := Vec{3, 4}.WithLen(10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("expected length 10, got %f", v.Len())
	}
	if v.X <= 0 || v.Y <= 0 {
		t.Errorf("direction not preserved: (%f,%f)", v.X, v.Y)
	}
}

func TestBody_Integrate(t *testing.T) {
	b := Body{Pos: Vec{10, 20}, Vel: Vec{100, -50}}
	b.Integrate(0.5)
	if b.Pos.X != 60 || b.Pos.Y != -5 {
		t.Errorf("expected (60,-5), got (%f,%f)", b.Pos.X, b.Pos.Y)
	}
}

func TestBall_Restart(t *testing.T) {
	b := newTestBall()
	b.Pos = Vec{12, 34}
	b.Vel = Vec{1, 2}
	b.Destroyed = true
	b.ExitedLeft = true

	b.Restart(800, 600)

	if b.Pos.X != 400 || b.Pos.Y != 300 {
		t.Errorf("expected centered ball, got (%f,%f)", b.Pos.X, b.Pos.Y)
	}
	if b.Vel.X != 0 || b.Vel.Y != 0 {
		t.Errorf("expected zero velocity, got (%f,%f)", b.Vel.X, b.Vel.Y)
	}
	if b.Destroyed || b.ExitedLeft {
		t.Error("expected destroyed/exitedLeft cleared")
	}
}

func TestBall_Launch(t *testing.T) {
	for i := 0; i < 100; i++ {
		b := newTestBall()
		b.SpeedMultiplier = 2.0

		b.Launch()

		if b.SpeedMultiplier != InitialMultiplier {
			t.Fatalf("expected multiplier reset to %f, got %f", InitialMultiplier, b.SpeedMultiplier)
		}
		if math.Abs(b.Vel.Len()-b.Speed()) > 1e-9 {
			t.Fatalf("expected |v|=%f, got %f", b.Speed(), b.Vel.Len())
		}
		// Never fully horizontal, never steeper than the launch band.
		angle := math.Abs(math.Atan2(b.Vel.Y, math.Abs(b.Vel.X)))
		if angle < MinLaunchAngle-1e-9 || angle > MaxLaunchAngle+1e-9 {
			t.Fatalf("launch angle %f outside [%f,%f]", angle, MinLaunchAngle, MaxLaunchAngle)
		}
	}
}

func TestBall_AccelerateMonotonic(t *testing.T) {
	b := newTestBall()
	b.Launch()

	prev := b.SpeedMultiplier
	for i := 0; i < 100; i++ {
		b.Accelerate(DefaultAccelRate, DefaultAccelMax)
		if b.SpeedMultiplier < prev {
			t.Fatalf("multiplier decreased: %f -> %f", prev, b.SpeedMultiplier)
		}
		if b.SpeedMultiplier > DefaultAccelMax {
			t.Fatalf("multiplier exceeded cap: %f", b.SpeedMultiplier)
		}
		if math.Abs(b.Vel.Len()-b.Speed()) > 1e-6 {
			t.Fatalf("velocity magnitude %f diverged from %f", b.Vel.Len(), b.Speed())
		}
		prev = b.SpeedMultiplier
	}
	if b.SpeedMultiplier != DefaultAccelMax {
		t.Errorf("expected multiplier saturated at %f, got %f", DefaultAccelMax, b.SpeedMultiplier)
	}
}

func TestBall_AccelerateStationary(t *testing.T) {
	b := newTestBall()

	b.Accelerate(DefaultAccelRate, DefaultAccelMax)

	if b.Vel.X != 0 || b.Vel.Y != 0 {
		t.Errorf("expected stationary ball to stay stationary, got (%f,%f)", b.Vel.X, b.Vel.Y)
	}
}
