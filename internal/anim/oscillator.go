package anim

import (
	"fmt"
	"time"
)

const DefaultPeriod = 2000 * time.Millisecond

// Oscillator is a tween that plays forward over Period, then in reverse
// over Period, repeating indefinitely.
type Oscillator struct {
	Period time.Duration
	Ease   Easing
}

func NewOscillator(period time.Duration, ease Easing) (Oscillator, error) {
	if period <= 0 {
		return Oscillator{}, fmt.Errorf("%w: got %s", ErrInvalidPeriod, period)
	}
	if ease == nil {
		ease = Linear
	}
	return Oscillator{Period: period, Ease: ease}, nil
}

// Linear returns the un-eased position in [0,1] after elapsed time: a
// triangle wave rising over the first period and falling over the second.
func (o Oscillator) Linear(elapsed time.Duration) float64 {
	if o.Period <= 0 {
		return 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	cycle := elapsed % (2 * o.Period)
	if cycle <= o.Period {
		return clamp01(float64(cycle) / float64(o.Period))
	}
	return clamp01(1 - float64(cycle-o.Period)/float64(o.Period))
}

// At returns the eased position in [0,1] after elapsed time. The reverse
// leg replays the forward curve backwards.
func (o Oscillator) At(elapsed time.Duration) float64 {
	p := o.Linear(elapsed)
	if o.Ease == nil {
		return p
	}
	return clamp01(o.Ease(p))
}

// Samples evaluates n evenly spaced points across one full
// forward+reverse cycle.
func (o Oscillator) Samples(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = o.At(0)
		return out
	}
	span := 2 * o.Period
	for i := range out {
		out[i] = o.At(time.Duration(int64(span) * int64(i) / int64(n-1)))
	}
	return out
}
