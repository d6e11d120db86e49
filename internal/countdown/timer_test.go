package countdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositive(t *testing.T) {
	for _, seconds := range []int{0, -1, -60} {
		_, err := New(seconds, false)
		if !errors.Is(err, ErrInvalidSeconds) {
			t.Errorf("seconds %d: expected ErrInvalidSeconds, got %v", seconds, err)
		}
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	tm, err := New(3, false)
	require.NoError(t, err)

	tm.Toggle()
	for i := 0; i < 10; i++ {
		tm.Tick(tm.Epoch())
		assert.GreaterOrEqual(t, tm.Remaining(), 0)
	}
	assert.Equal(t, 0, tm.Remaining())
	assert.Equal(t, 3, tm.Ticks())
}

func TestMonotonicUnderToggleSequences(t *testing.T) {
	// t = toggle, k = tick on the live epoch, s = tick on a stale epoch
	sequences := []string{
		"kkkk",
		"tkkkk",
		"tktktktk",
		"ttkkttkk",
		"tkkstkks",
		"tttttkkkkk",
	}

	for _, seq := range sequences {
		tm, err := New(5, false)
		require.NoError(t, err)

		var stale uint64
		prev := tm.Remaining()
		for _, op := range seq {
			running := tm.Running()
			switch op {
			case 't':
				stale = tm.Epoch()
				tm.Toggle()
			case 'k':
				tm.Tick(tm.Epoch())
			case 's':
				tm.Tick(stale)
			}
			cur := tm.Remaining()
			assert.LessOrEqual(t, cur, prev, "seq %q: remaining increased", seq)
			if !running && op != 't' {
				assert.Equal(t, prev, cur, "seq %q: decremented while stopped", seq)
			}
			prev = cur
		}
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseStopped, "stopped"},
		{PhaseRunning, "running"},
		{PhaseFinished, "finished"},
		{Phase(9), "phase(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.phase.String())
	}
}

func TestResetAndCancel(t *testing.T) {
	tm, err := New(10, false)
	require.NoError(t, err)

	tm.Toggle()
	epoch := tm.Epoch()
	tm.Tick(epoch)
	tm.Tick(epoch)

	tm.Cancel()
	assert.False(t, tm.Running())
	assert.Equal(t, 8, tm.Remaining())
	assert.False(t, tm.Tick(epoch))

	tm.Reset()
	assert.Equal(t, 10, tm.Remaining())
	assert.Equal(t, PhaseStopped, tm.Phase())
	assert.InDelta(t, 1.0, tm.Fraction(), 1e-9)
}
