package game

import "time"

// Handle identifies a scheduled timer. The zero Handle is never issued,
// so it can be used as a "nothing scheduled" sentinel.
type Handle int

// MatchClock is the narrow timing capability handed to components that
// need to schedule work, instead of a back-reference to the engine.
type MatchClock interface {
	After(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

type timer struct {
	remaining time.Duration
	interval  time.Duration // zero for one-shot
	fn        func()
}

// Clock is a tick-driven timer wheel. All timers fire inside Advance on
// the caller's goroutine; there is no background scheduling, which keeps
// the whole simulation single-threaded and deterministic under test.
type Clock struct {
	now    time.Duration
	next   Handle
	order  []Handle
	timers map[Handle]*timer
}

func NewClock() *Clock {
	return &Clock{timers: make(map[Handle]*timer)}
}

// Now is the total time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// After schedules fn to run once, d from now.
func (c *Clock) After(d time.Duration, fn func()) Handle {
	return c.add(&timer{remaining: d, fn: fn})
}

// Every schedules fn to run every d, first firing d from now.
func (c *Clock) Every(d time.Duration, fn func()) Handle {
	return c.add(&timer{remaining: d, interval: d, fn: fn})
}

func (c *Clock) add(t *timer) Handle {
	c.next++
	h := c.next
	c.timers[h] = t
	c.order = append(c.order, h)
	return h
}

// Cancel stops a timer. Unknown or already-fired handles are no-ops.
func (c *Clock) Cancel(h Handle) {
	c.remove(h)
}

func (c *Clock) remove(h Handle) {
	if _, ok := c.timers[h]; !ok {
		return
	}
	delete(c.timers, h)
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Advance moves time forward by dt, firing every timer that comes due in
// scheduling order. Callbacks may schedule or cancel timers; a timer
// scheduled during Advance first fires on a later call.
func (c *Clock) Advance(dt time.Duration) {
	c.now += dt

	due := append([]Handle(nil), c.order...)
	for _, h := range due {
		t, ok := c.timers[h]
		if !ok {
			continue // cancelled by an earlier callback
		}
		t.remaining -= dt
		for t.remaining <= 0 {
			if t.interval > 0 {
				t.remaining += t.interval
				t.fn()
				if _, ok := c.timers[h]; !ok {
					break
				}
			} else {
				c.remove(h)
				t.fn()
				break
			}
		}
	}
}
