package jetlag

import (
	"math"
	"time"
)

type TimerMode uint8

const (
	TimerModeOnce TimerMode = iota
	TimerModeRepeating
)

// Timer is either a one shot or a repeating timer with a specific duration.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     TimerMode

	finished bool
}

func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

// Tick adds the given amount of time to the Timer and returns how often the
// timer finished during this tick. A repeating 1s timer ticked with 3.5s
// finishes three times.
func (t *Timer) Tick(delta time.Duration) int {
	if t.finished || t.duration <= 0 {
		return 0
	}

	t.elapsed += delta

	if t.elapsed < t.duration {
		return 0
	}

	if t.mode == TimerModeOnce {
		t.elapsed = t.duration
		t.finished = true
		return 1
	}

	count := min(math.MaxInt32, int64(t.elapsed/t.duration))
	t.elapsed = t.elapsed % t.duration

	return int(count)
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Remaining() time.Duration {
	return t.duration - t.elapsed
}

// Fraction of the duration that has passed. A fresh timer returns 0.
func (t *Timer) Fraction() float64 {
	return float64(t.elapsed) / float64(t.duration)
}

// Finished returns true once a one shot timer has fired. Repeating timers never finish.
func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
