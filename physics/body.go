package physics

import (
	"slices"
	"time"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/set"
)

type BodyType uint8

const (
	BodyDynamic BodyType = iota
	BodyStatic
	BodyKinematic
)

// PassThroughId is an opaque tag. Two bodies sharing a tag never collide.
type PassThroughId int

// BodyDef describes a body to create with World.NewBody.
type BodyDef struct {
	Type     BodyType
	Center   gm.Vec
	Shape    ToShape
	Material Material

	// A sensor reports contacts but never takes part in collision resolution.
	Sensor bool

	// Prevents the body from rotating.
	FixedRotation bool
}

// RigidBody wraps a chipmunk body and its shape together with
// the collision state chipmunk does not know about.
type RigidBody struct {
	world *World
	body  *cp.Body
	shape *cp.Shape

	enabled bool
	sensor  bool

	// W and H are the width and height of the bounding box of the body.
	W, H float64

	// The only side that registers contacts. SideNone for a normal solid body.
	SingleRigidSide Side

	// Sides that fuse other bodies to this one on contact.
	StickySides []Side

	// Simulation time before which this body does not stick to anything.
	StickyDelay time.Duration

	// The joint holding this body on a sticky surface, or nil.
	DistJoint *cp.Constraint

	passThrough set.Set[PassThroughId]
}

// Body returns the underlying chipmunk body.
func (rb *RigidBody) Body() *cp.Body {
	return rb.body
}

// Shape returns the underlying chipmunk shape.
func (rb *RigidBody) Shape() *cp.Shape {
	return rb.shape
}

// Sensor returns true if the body only reports contacts.
func (rb *RigidBody) Sensor() bool {
	return rb.sensor
}

func (rb *RigidBody) World() *World {
	return rb.world
}

func (rb *RigidBody) Center() gm.Vec {
	return gm.Vec(rb.body.Position())
}

func (rb *RigidBody) SetCenter(center gm.Vec) {
	rb.body.SetPosition(cp.Vector(center))

	if rb.enabled && rb.body.GetType() == cp.BODY_STATIC {
		rb.world.space.ReindexShape(rb.shape)
	}
}

func (rb *RigidBody) Velocity() gm.Vec {
	return gm.Vec(rb.body.Velocity())
}

func (rb *RigidBody) SetVelocity(velocity gm.Vec) {
	rb.body.SetVelocity(velocity.X, velocity.Y)
}

// Bounds returns the bounding box of the body, computed from
// its center and its width and height.
func (rb *RigidBody) Bounds() gm.Rect {
	return gm.RectWithCenterAndSize(rb.Center(), gm.Vec{X: rb.W, Y: rb.H})
}

// Dynamic returns true if the body is moved by the simulation.
func (rb *RigidBody) Dynamic() bool {
	return rb.body.GetType() == cp.BODY_DYNAMIC
}

func (rb *RigidBody) Kinematic() bool {
	return rb.body.GetType() == cp.BODY_KINEMATIC
}

func (rb *RigidBody) IsSticky() bool {
	return len(rb.StickySides) > 0
}

func (rb *RigidBody) HasStickySide(side Side) bool {
	return slices.Contains(rb.StickySides, side)
}

func (rb *RigidBody) AddPassThrough(ids ...PassThroughId) {
	for _, id := range ids {
		rb.passThrough.Insert(id)
	}
}

func (rb *RigidBody) RemovePassThrough(ids ...PassThroughId) {
	for _, id := range ids {
		rb.passThrough.Remove(id)
	}
}

// SharesPassThrough returns true if both bodies carry at least one common pass through id.
func (rb *RigidBody) SharesPassThrough(other *RigidBody) bool {
	return rb.passThrough.Intersects(&other.passThrough)
}

func (rb *RigidBody) Enabled() bool {
	return rb.enabled
}

// SetEnabled adds the body to or removes it from its world.
// Must not be called while the world is stepping.
func (rb *RigidBody) SetEnabled(enabled bool) {
	switch {
	case enabled && !rb.enabled:
		rb.world.add(rb)
	case !enabled && rb.enabled:
		rb.world.Remove(rb)
	}
}
