package collision

import (
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

// contactListener adapts the chipmunk collision callbacks to the collision system.
// All callbacks run inside the physics step.
type contactListener struct {
	system *Advanced
}

func (l *contactListener) register(space *cp.Space) {
	handler := space.NewCollisionHandler(physics.CollisionType, physics.CollisionType)
	handler.BeginFunc = l.Begin
	handler.PreSolveFunc = l.PreSolve
	handler.PostSolveFunc = l.PostSolve
	handler.SeparateFunc = l.Separate
}

func (l *contactListener) Begin(arb *cp.Arbiter, _ *cp.Space, _ any) bool {
	if a, b, ok := actorsOf(arb); ok {
		l.system.beginContact(a, b, captureContact(arb))
	}

	// the pre solve callback decides about the contact
	return true
}

func (l *contactListener) PreSolve(arb *cp.Arbiter, _ *cp.Space, _ any) bool {
	a, b, ok := actorsOf(arb)
	if !ok {
		return true
	}

	return l.system.shouldCollide(a, b, arbiterManifold{arb: arb})
}

func (l *contactListener) PostSolve(*cp.Arbiter, *cp.Space, any) {
}

func (l *contactListener) Separate(arb *cp.Arbiter, _ *cp.Space, _ any) {
	if a, b, ok := actorsOf(arb); ok {
		l.system.endContact(a, b)
	}
}

// beginContact dispatches the contact to the role of a, and to the role of b
// if a did not handle it.
func (s *Advanced) beginContact(a, b *jetlag.Actor, contact jetlag.Contact) {
	s.push(func() {
		if !s.Collide(a, b, contact) {
			s.Collide(b, a, contact)
		}
	})
}

// endContact fires the oldest end contact handler registered for the pair.
func (s *Advanced) endContact(a, b *jetlag.Actor) {
	handler, ok := s.endContacts.take(a, b)
	if !ok {
		return
	}

	s.push(func() {
		slog.Debug("End contact",
			slog.Any("a", handler.a),
			slog.Any("b", handler.b))

		handler.callback(handler.a, handler.b)
	})
}

func actorsOf(arb *cp.Arbiter) (*jetlag.Actor, *jetlag.Actor, bool) {
	bodyA, bodyB := arb.Bodies()

	a, okA := jetlag.ActorOf(bodyA)
	b, okB := jetlag.ActorOf(bodyB)

	return a, b, okA && okB
}

// captureContact copies the contact geometry, as the arbiter is only
// valid during the callback.
func captureContact(arb *cp.Arbiter) jetlag.Contact {
	set := arb.ContactPointSet()

	contact := jetlag.Contact{
		Normal: gm.Vec(set.Normal),
		Points: make([]gm.Vec, 0, set.Count),
	}

	for idx := range set.Count {
		point := set.Points[idx]
		contact.Points = append(contact.Points, gm.Vec(point.PointA).Add(gm.Vec(point.PointB)).Mul(0.5))
	}

	return contact
}
