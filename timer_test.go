package jetlag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer_Once(t *testing.T) {
	timer := NewTimer(time.Second, TimerModeOnce)

	require.Equal(t, 0, timer.Tick(500*time.Millisecond))
	require.InDelta(t, 0.5, timer.Fraction(), 1e-9)
	require.False(t, timer.Finished())

	require.Equal(t, 1, timer.Tick(time.Second))
	require.True(t, timer.Finished())
	require.Equal(t, time.Duration(0), timer.Remaining())

	// does not fire again
	require.Equal(t, 0, timer.Tick(time.Second))

	timer.Reset()
	require.False(t, timer.Finished())
	require.Equal(t, time.Second, timer.Remaining())
}

func TestTimer_Repeating(t *testing.T) {
	timer := NewTimer(time.Second, TimerModeRepeating)

	require.Equal(t, 3, timer.Tick(3500*time.Millisecond))
	require.Equal(t, 500*time.Millisecond, timer.Remaining())
	require.Equal(t, 1, timer.Tick(500*time.Millisecond))
	require.False(t, timer.Finished())
}

func TestFixedTime_Accumulate(t *testing.T) {
	ft := NewFixedTime(10*time.Millisecond, 0)

	require.Equal(t, 0, ft.Accumulate(5*time.Millisecond))
	require.Equal(t, 1, ft.Accumulate(5*time.Millisecond))
	require.Equal(t, 2, ft.Accumulate(25*time.Millisecond))
	require.Equal(t, 5*time.Millisecond, ft.Overstep())
	require.Equal(t, 30*time.Millisecond, ft.Elapsed)
}

func TestFixedTime_MaxSteps(t *testing.T) {
	ft := NewFixedTime(10*time.Millisecond, 3)

	require.Equal(t, 3, ft.Accumulate(time.Second+5*time.Millisecond))
	require.Equal(t, 5*time.Millisecond, ft.Overstep())
	require.Equal(t, 30*time.Millisecond, ft.Elapsed)
}
