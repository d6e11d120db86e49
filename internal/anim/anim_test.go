package anim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	for _, name := range EasingNames() {
		ease, err := EasingByName(name)
		require.NoError(t, err)

		assert.Equal(t, 0.0, ease(0), "%s(0)", name)
		assert.Equal(t, 1.0, ease(1), "%s(1)", name)

		prev := 0.0
		for i := 0; i <= 100; i++ {
			v := ease(float64(i) / 100)
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
			assert.GreaterOrEqual(t, v+1e-6, prev, "%s not monotonic at %d", name, i)
			prev = v
		}
	}
}

func TestFastOutSlowInShape(t *testing.T) {
	// front-loaded: past the midpoint well before half time
	assert.Greater(t, FastOutSlowIn(0.5), 0.7)
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-3)
}

func TestEasingByNameUnknown(t *testing.T) {
	_, err := EasingByName("bounce")
	assert.True(t, errors.Is(err, ErrUnknownEasing))
}

func TestOscillatorTriangle(t *testing.T) {
	osc, err := NewOscillator(DefaultPeriod, Linear)
	require.NoError(t, err)

	tests := []struct {
		elapsed  time.Duration
		expected float64
	}{
		{0, 0},
		{500 * time.Millisecond, 0.25},
		{1000 * time.Millisecond, 0.5},
		{2000 * time.Millisecond, 1},
		{3000 * time.Millisecond, 0.5},
		{4000 * time.Millisecond, 0},
		{4500 * time.Millisecond, 0.25},
		{-time.Second, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, osc.At(tt.elapsed), 1e-9, "elapsed %s", tt.elapsed)
	}
}

func TestOscillatorFractionBounded(t *testing.T) {
	osc, err := NewOscillator(DefaultPeriod, FastOutSlowIn)
	require.NoError(t, err)

	for ms := int64(0); ms < 20000; ms += 37 {
		v := osc.At(time.Duration(ms) * time.Millisecond)
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("fraction out of range at %dms: %f", ms, v)
		}
	}
	samples := osc.Samples(9)
	require.Len(t, samples, 9)
	assert.Equal(t, 0.0, samples[0])
	assert.Equal(t, 1.0, samples[4])
	assert.Equal(t, 0.0, samples[8])
}

func TestNewOscillatorInvalid(t *testing.T) {
	_, err := NewOscillator(0, nil)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	osc, err := NewOscillator(time.Second, nil)
	require.NoError(t, err)
	assert.NotNil(t, osc.Ease)
}

func TestColorTween(t *testing.T) {
	tw, err := NewColorTween("#ffffff", "#ffff00")
	require.NoError(t, err)

	assert.Equal(t, "#ffffff", tw.Hex(0))
	assert.Equal(t, "#ffff00", tw.Hex(1))
	assert.Equal(t, "#ffff00", tw.Hex(3))

	_, err = NewColorTween("white", "#ffff00")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func newTestDriver(t *testing.T) Driver {
	t.Helper()
	osc, err := NewOscillator(DefaultPeriod, Linear)
	require.NoError(t, err)
	text, err := NewColorTween("#ffffff", "#ffff00")
	require.NoError(t, err)
	ring, err := NewColorTween("#ffffff", "#808080")
	require.NoError(t, err)
	return NewDriver(osc, text, ring)
}

func TestDriverRestartsOnlyOnTransition(t *testing.T) {
	d := newTestDriver(t)
	t0 := time.Unix(1000, 0)

	assert.True(t, d.Sync(true, t0))
	assert.Equal(t, DriverOscillating, d.State())

	// re-syncing with the same predicate keeps the original start
	for i := 1; i <= 5; i++ {
		assert.False(t, d.Sync(true, t0.Add(time.Duration(i)*time.Second)))
	}
	assert.Equal(t, 1, d.Restarts())
	assert.InDelta(t, 0.5, d.Sample(t0.Add(time.Second)).Fraction, 1e-9)

	assert.True(t, d.Sync(false, t0.Add(6*time.Second)))
	assert.Equal(t, DriverIdle, d.State())

	assert.True(t, d.Sync(true, t0.Add(7*time.Second)))
	assert.Equal(t, 2, d.Restarts())
	assert.InDelta(t, 0.0, d.Sample(t0.Add(7*time.Second)).Fraction, 1e-9)
}

func TestDriverIdleSample(t *testing.T) {
	d := newTestDriver(t)
	s := d.Sample(time.Now())
	assert.Equal(t, 1.0, s.Fraction)
	assert.Equal(t, "#ffffff", s.Text.Hex())
	assert.Equal(t, "#ffffff", s.Indicator.Hex())

	d.Sync(true, time.Unix(0, 0))
	s = d.Sample(time.Unix(2, 0))
	assert.Equal(t, "#ffff00", s.Text.Hex())
	assert.Equal(t, "#808080", s.Indicator.Hex())

	d.Stop()
	assert.Equal(t, DriverIdle, d.State())
}
