package anim

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// DriverState is the two-state lifecycle of a Driver.
type DriverState int

const (
	DriverIdle DriverState = iota
	DriverOscillating
)

func (s DriverState) String() string {
	if s == DriverOscillating {
		return "oscillating"
	}
	return "idle"
}

// Sample is one evaluated frame of the progress animation.
type Sample struct {
	Fraction  float64
	Text      colorful.Color
	Indicator colorful.Color
}

// Driver runs the indicator fill and the two color pulses off a single
// oscillator. It restarts only when its driving predicate changes, never
// on re-render.
type Driver struct {
	osc       Oscillator
	text      ColorTween
	indicator ColorTween
	state     DriverState
	start     time.Time
	restarts  int
}

func NewDriver(osc Oscillator, text, indicator ColorTween) Driver {
	return Driver{osc: osc, text: text, indicator: indicator}
}

func (d *Driver) State() DriverState { return d.state }

// Restarts counts Idle to Oscillating transitions.
func (d *Driver) Restarts() int { return d.restarts }

// SetColors swaps the color endpoints without restarting the animation.
func (d *Driver) SetColors(text, indicator ColorTween) {
	d.text = text
	d.indicator = indicator
}

// Sync aligns the driver with the predicate at now. It reports whether a
// transition happened.
func (d *Driver) Sync(active bool, now time.Time) bool {
	switch {
	case active && d.state == DriverIdle:
		d.state = DriverOscillating
		d.start = now
		d.restarts++
		return true
	case !active && d.state == DriverOscillating:
		d.state = DriverIdle
		d.start = time.Time{}
		return true
	}
	return false
}

// Stop forces the driver idle.
func (d *Driver) Stop() {
	d.Sync(false, time.Time{})
}

// Sample evaluates the animation at now. An idle driver rests with a full
// indicator in the starting colors.
func (d *Driver) Sample(now time.Time) Sample {
	if d.state == DriverIdle {
		return Sample{Fraction: 1, Text: d.text.From, Indicator: d.indicator.From}
	}
	p := d.osc.At(now.Sub(d.start))
	return Sample{
		Fraction:  p,
		Text:      d.text.At(p),
		Indicator: d.indicator.At(p),
	}
}
