package physics

import (
	"log/slog"
	"math"
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/assert"
)

// CollisionType is assigned to every shape created by a World.
const CollisionType cp.CollisionType = 1

// World owns a chipmunk space and keeps track of the simulation clock.
type World struct {
	config Config
	space  *cp.Space

	elapsed  time.Duration
	stepping bool

	// pinned bodies and the body they are pinned to
	pins map[*RigidBody]*RigidBody
}

func NewWorld(config Config) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector(config.Gravity))
	space.Iterations = max(1, config.Iterations)

	return &World{
		config: config,
		space:  space,
		pins:   map[*RigidBody]*RigidBody{},
	}
}

func (w *World) Config() Config {
	return w.config
}

// Space returns the chipmunk space. Collision handlers are registered on it.
func (w *World) Space() *cp.Space {
	return w.space
}

// Elapsed returns the simulation time.
func (w *World) Elapsed() time.Duration {
	return w.elapsed
}

// Stepping returns true while Step is on the call stack.
func (w *World) Stepping() bool {
	return w.stepping
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.stepping = true
	defer func() { w.stepping = false }()

	substeps := max(1, w.config.Substeps)
	for range substeps {
		w.space.Step(dt / float64(substeps))
	}

	w.elapsed += time.Duration(math.Round(dt * float64(time.Second)))
}

// NewBody creates a new body and adds it to the world.
func (w *World) NewBody(def BodyDef) *RigidBody {
	assert.That(def.Shape != nil, "physics: body definition without a shape")

	if def.Material == (Material{}) {
		def.Material = DefaultMaterial()
	}

	var body *cp.Body

	switch def.Type {
	case BodyStatic:
		body = cp.NewStaticBody()
	case BodyKinematic:
		body = cp.NewKinematicBody()
	default:
		mass := def.Material.Density * def.Shape.Area()
		assert.That(mass > 0, "physics: dynamic body needs a positive mass, got %f", mass)

		moment := def.Shape.Moment(mass)
		if def.FixedRotation {
			moment = math.Inf(1)
		}

		body = cp.NewBody(mass, moment)
	}

	body.SetPosition(cp.Vector(def.Center))

	shape := def.Shape.MakeShape(body)
	shape.SetElasticity(def.Material.Elasticity)
	shape.SetFriction(def.Material.Friction)
	shape.SetSensor(def.Sensor)
	shape.SetCollisionType(CollisionType)

	size := def.Shape.Size()

	rb := &RigidBody{
		world:  w,
		body:   body,
		shape:  shape,
		sensor: def.Sensor,
		W:      size.X,
		H:      size.Y,
	}

	w.add(rb)

	return rb
}

func (w *World) add(rb *RigidBody) {
	assert.That(!w.stepping, "physics: cannot add a body while the world is stepping")

	w.space.AddBody(rb.body)
	w.space.AddShape(rb.shape)
	rb.enabled = true
}

// Remove takes the body out of the simulation. Joints holding
// the body, or holding other bodies to it, are broken.
func (w *World) Remove(rb *RigidBody) {
	assert.That(!w.stepping, "physics: cannot remove a body while the world is stepping")

	if !rb.enabled {
		return
	}

	for other, anchor := range w.pins {
		if other == rb || anchor == rb {
			w.Unpin(other, 0)
		}
	}

	w.space.RemoveShape(rb.shape)
	w.space.RemoveBody(rb.body)
	rb.enabled = false
}

// Pin fuses other to anchor at the given point in world space. Both anchor
// points of the joint are the same point, so the joint acts like a zero length
// distance joint. The joint is stored in other.DistJoint.
func (w *World) Pin(anchor, other *RigidBody, point gm.Vec) *cp.Constraint {
	assert.That(!w.stepping, "physics: cannot create a joint while the world is stepping")

	p := cp.Vector(point)

	joint := cp.NewPivotJoint2(anchor.body, other.body, anchor.body.WorldToLocal(p), other.body.WorldToLocal(p))
	joint.SetCollideBodies(true)
	w.space.AddConstraint(joint)

	other.DistJoint = joint
	w.pins[other] = anchor

	slog.Debug("Pinned body",
		slog.String("point", point.String()),
		slog.Duration("elapsed", w.elapsed))

	return joint
}

// Unpin breaks the joint holding rb on a sticky surface, if any. The body will
// not stick to anything again for the given delay.
func (w *World) Unpin(rb *RigidBody, delay time.Duration) {
	assert.That(!w.stepping, "physics: cannot remove a joint while the world is stepping")

	if rb.DistJoint != nil {
		w.space.RemoveConstraint(rb.DistJoint)
		rb.DistJoint = nil
		delete(w.pins, rb)
	}

	rb.StickyDelay = w.elapsed + delay
}
