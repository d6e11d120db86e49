package countdown

import (
	"fmt"
	"time"
)

const (
	DefaultSeconds  = 60
	DefaultInterval = time.Second
)

// Phase is the externally visible state of a Timer.
type Phase int

const (
	PhaseStopped Phase = iota
	PhaseRunning
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "stopped"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Timer is a countdown from an initial number of seconds to zero.
// The zero value is not usable; construct with New.
type Timer struct {
	initial     int
	remaining   int
	running     bool
	epoch       uint64
	ticks       int
	resetOnStop bool
}

// New returns a stopped timer at seconds. With resetOnStop set, stopping a
// running timer restores the initial value instead of pausing.
func New(seconds int, resetOnStop bool) (Timer, error) {
	if seconds <= 0 {
		return Timer{}, fmt.Errorf("%w: got %d", ErrInvalidSeconds, seconds)
	}
	return Timer{
		initial:     seconds,
		remaining:   seconds,
		resetOnStop: resetOnStop,
	}, nil
}

func (t *Timer) Initial() int { return t.initial }
func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Running() bool { return t.running }
func (t *Timer) Epoch() uint64 { return t.epoch }
func (t *Timer) ResetOnStop() bool { return t.resetOnStop }

// Ticks returns the number of decrements since the timer was last rearmed.
func (t *Timer) Ticks() int { return t.ticks }

// Phase derives the phase from the current state.
func (t *Timer) Phase() Phase {
	switch {
	case t.remaining == 0:
		return PhaseFinished
	case t.running:
		return PhaseRunning
	default:
		return PhaseStopped
	}
}

// Active reports whether the count is non-zero. Animations key off this.
func (t *Timer) Active() bool { return t.remaining != 0 }

// Fraction returns remaining/initial in [0,1].
func (t *Timer) Fraction() float64 {
	if t.initial == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.initial)
}

// Toggle starts a stopped timer, stops a running one and rearms a finished
// one. It reports whether the caller must arm a tick chain for the new
// epoch.
func (t *Timer) Toggle() bool {
	switch t.Phase() {
	case PhaseRunning:
		t.running = false
		t.epoch++
		if t.resetOnStop {
			t.remaining = t.initial
			t.ticks = 0
		}
		return false
	case PhaseFinished:
		t.remaining = t.initial
		t.ticks = 0
	}
	t.running = true
	t.epoch++
	return true
}

// Tick applies one tick armed at epoch. Ticks from a stale epoch, or
// arriving while stopped or at zero, are dropped. It reports whether the
// next tick of the chain should be scheduled.
func (t *Timer) Tick(epoch uint64) bool {
	if epoch != t.epoch || !t.running || t.remaining == 0 {
		return false
	}
	t.remaining--
	t.ticks++
	if t.remaining == 0 {
		t.running = false
		return false
	}
	return true
}

// Reset stops the timer and restores the initial value.
func (t *Timer) Reset() {
	t.remaining = t.initial
	t.running = false
	t.ticks = 0
	t.epoch++
}

// Cancel invalidates any pending tick without touching the count.
func (t *Timer) Cancel() {
	t.running = false
	t.epoch++
}
