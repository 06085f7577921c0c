package physics

import (
	"github.com/oliverbestmann/jetlag/gm"
)

// Config configures a World.
type Config struct {
	// Gravity applied to all dynamic bodies. Y grows downwards.
	Gravity gm.Vec

	// Number of equally sized sub steps a single World.Step is split into.
	Substeps uint

	// Number of iterations of the impulse solver.
	Iterations uint

	// Chipmunk only reports contacts between overlapping shapes. Edge
	// comparisons for sticky sides allow this much overlap.
	EdgeTolerance float64
}

func DefaultConfig() Config {
	return Config{
		Gravity:       gm.Vec{Y: 10},
		Substeps:      1,
		Iterations:    10,
		EdgeTolerance: 0.2,
	}
}

// Material describes the surface of a body.
type Material struct {
	Density    float64
	Elasticity float64
	Friction   float64
}

func DefaultMaterial() Material {
	return Material{
		Density:    1,
		Elasticity: 0,
		Friction:   0.5,
	}
}
