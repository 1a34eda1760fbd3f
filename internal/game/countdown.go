package game

import "time"

// Countdown drives the pre-point sequence. Only one run can be active at
// a time: starting a new run always cancels the previous one first, so
// two overlapping countdowns are structurally impossible.
type Countdown struct {
	clock  MatchClock
	tick   Handle
	settle Handle
	value  int
	active bool
}

func NewCountdown(clock MatchClock) *Countdown {
	return &Countdown{clock: clock}
}

// Start begins a visible countdown, invoking onTick with from
// immediately and again for each value down to 1, then onDone after a
// short settle delay once the count reaches zero.
func (cd *Countdown) Start(from int, step, settle time.Duration, onTick func(int), onDone func()) {
	cd.Cancel()
	cd.active = true
	cd.value = from
	if onTick != nil {
		onTick(from)
	}
	cd.tick = cd.clock.Every(step, func() {
		cd.value--
		if cd.value > 0 {
			if onTick != nil {
				onTick(cd.value)
			}
			return
		}
		cd.clock.Cancel(cd.tick)
		cd.tick = 0
		cd.settle = cd.clock.After(settle, func() {
			cd.settle = 0
			cd.active = false
			onDone()
		})
	})
}

// StartAmbient waits a single fixed delay with no visible ticks; used by
// the background/demo mode.
func (cd *Countdown) StartAmbient(delay time.Duration, onDone func()) {
	cd.Cancel()
	cd.active = true
	cd.settle = cd.clock.After(delay, func() {
		cd.settle = 0
		cd.active = false
		onDone()
	})
}

// Cancel stops any active run without firing its completion callback.
func (cd *Countdown) Cancel() {
	if cd.tick != 0 {
		cd.clock.Cancel(cd.tick)
		cd.tick = 0
	}
	if cd.settle != 0 {
		cd.clock.Cancel(cd.settle)
		cd.settle = 0
	}
	cd.active = false
}

func (cd *Countdown) Active() bool {
	return cd.active
}

// Value is the number currently displayed, zero once the count is over.
func (cd *Countdown) Value() int {
	if !cd.active {
		return 0
	}
	return cd.value
}
