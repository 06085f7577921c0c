package collision

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

// manifold gives lazy access to the geometry of a contact.
type manifold interface {
	// FirstPoint returns the first contact point in world space.
	FirstPoint() (gm.Vec, bool)
}

type arbiterManifold struct {
	arb *cp.Arbiter
}

func (m arbiterManifold) FirstPoint() (gm.Vec, bool) {
	set := m.arb.ContactPointSet()
	if set.Count == 0 {
		return gm.Vec{}, false
	}

	point := set.Points[0]
	return gm.Vec(point.PointA).Add(gm.Vec(point.PointB)).Mul(0.5), true
}

// shouldCollide decides if the contact between a and b is resolved during this step.
// Returning false ignores the contact for the current step only.
func (s *Advanced) shouldCollide(a, b *jetlag.Actor, m manifold) bool {
	if a.Body == nil || b.Body == nil {
		return true
	}

	bodyA, bodyB := a.Body, b.Body

	if wall, other, ok := oneSidedPair(bodyA, bodyB); ok && other.DistJoint == nil {
		if passesOneSided(wall, other, s.world.Config().EdgeTolerance) {
			return false
		}
	}

	// when both bodies are sticky and the first one refuses, the second one may still attach
	if bodyA.IsSticky() && s.stick(bodyA, bodyB, m) {
		return true
	}

	if bodyB.IsSticky() && s.stick(bodyB, bodyA, m) {
		return true
	}

	if bodyA.SharesPassThrough(bodyB) {
		return false
	}

	if jetlag.Exempt(a.Role, b.Role) {
		return false
	}

	return true
}

// oneSidedPair returns the one sided body and the other body, if exactly
// one of both bodies is one sided.
func oneSidedPair(a, b *physics.RigidBody) (wall, other *physics.RigidBody, ok bool) {
	switch {
	case a.SingleRigidSide != physics.SideNone && b.SingleRigidSide == physics.SideNone:
		return a, b, true

	case b.SingleRigidSide != physics.SideNone && a.SingleRigidSide == physics.SideNone:
		return b, a, true

	default:
		return nil, nil, false
	}
}

// passesOneSided returns true if other approaches the wall from one of its open sides.
// A body resting on the rigid side overlaps it a little and is never let through.
func passesOneSided(wall, other *physics.RigidBody, tolerance float64) bool {
	if touchesSide(wall, other, wall.SingleRigidSide, tolerance) {
		return false
	}

	w := wall.Bounds()
	o := other.Bounds()
	velocity := other.Velocity()

	switch wall.SingleRigidSide {
	case physics.SideTop:
		return o.Bottom() >= w.Top() && velocity.Y <= 0

	case physics.SideBottom:
		return o.Top() <= w.Bottom() && velocity.Y >= 0

	case physics.SideLeft:
		return o.Right() >= w.Left() && velocity.X <= 0

	case physics.SideRight:
		return o.Left() <= w.Right() && velocity.X >= 0

	default:
		return false
	}
}

// touchesSide returns true if other lies on the outside of the given side of
// body, overlapping it by at most tolerance.
func touchesSide(body, other *physics.RigidBody, side physics.Side, tolerance float64) bool {
	b := body.Bounds()
	o := other.Bounds()

	switch side {
	case physics.SideTop:
		return o.Bottom() <= b.Top()+tolerance

	case physics.SideBottom:
		return o.Top() >= b.Bottom()-tolerance

	case physics.SideLeft:
		return o.Right() <= b.Left()+tolerance

	case physics.SideRight:
		return o.Left() >= b.Right()-tolerance

	default:
		return false
	}
}

// stick tries to fuse other onto one of the sticky sides of sticky. The joint
// itself is created after the physics step. Returns true if other will be attached.
func (s *Advanced) stick(sticky, other *physics.RigidBody, m manifold) bool {
	if other.DistJoint != nil || s.world.Elapsed() < other.StickyDelay {
		return false
	}

	// static and kinematic bodies can not be held by a joint
	if !other.Dynamic() {
		return false
	}

	if !stickySideEngaged(sticky, other, s.world.Config().EdgeTolerance) {
		return false
	}

	point, ok := m.FirstPoint()
	if !ok {
		return false
	}

	world := s.world

	s.push(func() {
		// the contact may be reported more than once before the joint exists
		if other.DistJoint != nil || !other.Enabled() || !sticky.Enabled() {
			return
		}

		other.SetVelocity(gm.VecZero)
		world.Pin(sticky, other, point)
	})

	return true
}

func stickySideEngaged(sticky, other *physics.RigidBody, tolerance float64) bool {
	for _, side := range sticky.StickySides {
		if touchesSide(sticky, other, side, tolerance) {
			return true
		}
	}

	return false
}
