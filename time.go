package jetlag

import (
	"time"
)

// FixedTime hands out the time passed between frames in steps of a fixed size.
// Time that does not fill a whole step is carried over to the next frame.
//
// The default StepInterval is 1/60s.
type FixedTime struct {
	Elapsed      time.Duration
	StepInterval time.Duration

	// Upper limit of steps per frame. Time beyond it is dropped, so a long
	// pause does not make the simulation run a burst of steps. Zero means unlimited.
	MaxSteps int

	overstep time.Duration
}

func NewFixedTime(stepInterval time.Duration, maxSteps int) FixedTime {
	if stepInterval <= 0 {
		stepInterval = time.Second / 60
	}

	return FixedTime{
		StepInterval: stepInterval,
		MaxSteps:     maxSteps,
	}
}

// Accumulate adds the frame time and returns the number of steps to run now.
func (ft *FixedTime) Accumulate(delta time.Duration) int {
	ft.overstep += delta

	steps := int(ft.overstep / ft.StepInterval)
	if ft.MaxSteps > 0 && steps > ft.MaxSteps {
		steps = ft.MaxSteps
		ft.overstep = ft.overstep % ft.StepInterval
	} else {
		ft.overstep -= time.Duration(steps) * ft.StepInterval
	}

	ft.Elapsed += time.Duration(steps) * ft.StepInterval

	return steps
}

// DeltaSecs is the length of one step in seconds.
func (ft *FixedTime) DeltaSecs() float64 {
	return ft.StepInterval.Seconds()
}

// Overstep returns the time carried over to the next frame.
func (ft *FixedTime) Overstep() time.Duration {
	return ft.overstep
}
