package stage

import (
	"time"
)

// Phase of a scene tick that is measured.
type Phase uint8

const (
	PhasePhysics Phase = iota
	PhaseEvents
	PhaseTimers

	phaseCount
)

var phaseNames = [phaseCount]string{
	PhasePhysics: "physics",
	PhaseEvents:  "events",
	PhaseTimers:  "timers",
}

func (p Phase) String() string {
	if p >= phaseCount {
		return "unknown"
	}

	return phaseNames[p]
}

type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
	}

	t.MovingAverage = (95*t.MovingAverage + 5*d) / 100

	t.Count += 1

	return t
}

// TimingStats collects the time spent in each phase of the ticks of the world scene.
type TimingStats struct {
	ByPhase [phaseCount]Timings
}

func (t *TimingStats) Measure(phase Phase) TimingStopwatch {
	startTime := time.Now()

	return TimingStopwatch{
		Stop: func() {
			t.ByPhase[phase] = t.ByPhase[phase].Add(time.Since(startTime))
		},
	}
}

// Phases returns all phases in the order they run in.
func (t *TimingStats) Phases() []Phase {
	return []Phase{PhasePhysics, PhaseEvents, PhaseTimers}
}

type TimingStopwatch struct {
	Stop func()
}
