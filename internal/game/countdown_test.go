package game

import (
	"testing"
	"time"
)

func TestCountdown_Sequence(t *testing.T) {
	c := NewClock()
	cd := NewCountdown(c)

	var ticks []int
	done := false
	cd.Start(3, time.Second, 50*time.Millisecond,
		func(v int) { ticks = append(ticks, v) },
		func() { done = true })

	if len(ticks) != 1 || ticks[0] != 3 {
		t.Fatalf("expected immediate tick 3, got %v", ticks)
	}
	if !cd.Active() {
		t.Fatal("countdown not active after Start")
	}

	c.Advance(time.Second)
	c.Advance(time.Second)
	if len(ticks) != 3 || ticks[1] != 2 || ticks[2] != 1 {
		t.Fatalf("expected ticks [3 2 1], got %v", ticks)
	}
	if done {
		t.Fatal("completed before reaching zero")
	}

	// Reaching zero starts the settle delay; completion fires after it.
	c.Advance(time.Second)
	if done {
		t.Fatal("completed before settle delay")
	}
	c.Advance(50 * time.Millisecond)
	if !done {
		t.Fatal("expected completion after settle delay")
	}
	if cd.Active() {
		t.Error("countdown still active after completion")
	}
	if len(ticks) != 3 {
		t.Errorf("zero must not be announced as a tick, got %v", ticks)
	}
}

func TestCountdown_RestartCancelsPrevious(t *testing.T) {
	c := NewClock()
	cd := NewCountdown(c)

	firstDone := false
	cd.Start(3, time.Second, 50*time.Millisecond, nil, func() { firstDone = true })
	c.Advance(time.Second)

	secondDone := false
	cd.Start(3, time.Second, 50*time.Millisecond, nil, func() { secondDone = true })

	// Running the first sequence out must only complete the second run.
	c.Advance(10 * time.Second)
	if firstDone {
		t.Error("superseded countdown completed")
	}
	if !secondDone {
		t.Error("restarted countdown never completed")
	}
}

func TestCountdown_Cancel(t *testing.T) {
	c := NewClock()
	cd := NewCountdown(c)

	done := false
	cd.Start(3, time.Second, 50*time.Millisecond, nil, func() { done = true })
	cd.Cancel()

	c.Advance(10 * time.Second)
	if done {
		t.Error("cancelled countdown completed")
	}
	if cd.Active() {
		t.Error("cancelled countdown still active")
	}
}

func TestCountdown_Ambient(t *testing.T) {
	c := NewClock()
	cd := NewCountdown(c)

	done := false
	cd.StartAmbient(500*time.Millisecond, func() { done = true })

	c.Advance(499 * time.Millisecond)
	if done {
		t.Fatal("ambient delay completed early")
	}
	c.Advance(time.Millisecond)
	if !done {
		t.Fatal("ambient delay never completed")
	}
}
