// Package collision decides which contacts the physics world resolves and
// routes contacts to the roles of the actors involved.
//
// All gameplay reactions to a contact are pushed onto the event queue of the
// scene and run after the physics step finished. Nothing in here mutates the
// world while it is stepping.
package collision

import (
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/assert"
	"github.com/oliverbestmann/jetlag/physics"
)

// System is the collision system of a scene.
type System interface {
	World() *physics.World

	// ActorsAt returns all enabled actors whose body overlaps the given point.
	// The order of the actors is unspecified.
	ActorsAt(point gm.Vec) []*jetlag.Actor
}

// Basic only answers spatial queries. HUD and overlay scenes use it.
type Basic struct {
	world *physics.World
}

var _ System = (*Basic)(nil)

func NewBasic(world *physics.World) *Basic {
	assert.NotNil(world, "collision: system needs a world")
	return &Basic{world: world}
}

func (s *Basic) World() *physics.World {
	return s.world
}

func (s *Basic) ActorsAt(point gm.Vec) []*jetlag.Actor {
	return actorsAt(s.world, point)
}

// Advanced additionally filters contacts, routes begin and end of contacts to
// the roles of the actors and manages end contact handlers. World scenes use it.
type Advanced struct {
	Basic

	// Collide runs the collision handler of the first actor. Defaults to jetlag.Collide.
	Collide jetlag.CollideFunc

	events      *jetlag.EventQueue
	endContacts endContactRegistry
}

var _ System = (*Advanced)(nil)

// NewAdvanced creates a new collision system and registers its contact
// listener with the world. Reactions to contacts are pushed to events.
func NewAdvanced(world *physics.World, events *jetlag.EventQueue) *Advanced {
	system := &Advanced{
		Basic:   *NewBasic(world),
		Collide: jetlag.Collide,
	}

	system.SetEventQueue(events)

	listener := &contactListener{system: system}
	listener.register(world.Space())

	return system
}

// SetEventQueue wires the system to the event queue of a scene.
func (s *Advanced) SetEventQueue(events *jetlag.EventQueue) {
	assert.NotNil(events, "collision: advanced collision system needs an event queue")
	s.events = events
}

// AddEndContactHandler registers a callback that runs once the next time
// the two actors stop touching. The callback receives the actors in the
// order they were registered with. Registering the same pair multiple
// times registers multiple independent callbacks.
func (s *Advanced) AddEndContactHandler(a, b *jetlag.Actor, callback EndContactFunc) {
	assert.That(a != nil && b != nil, "collision: end contact handler needs two actors")
	assert.That(callback != nil, "collision: end contact handler without a callback")

	s.endContacts.add(a, b, callback)
}

// CancelEndContactHandlers removes all pending end contact handlers of the
// pair, in either order, and returns how many were removed.
func (s *Advanced) CancelEndContactHandlers(a, b *jetlag.Actor) int {
	return s.endContacts.cancel(a, b)
}

// PendingEndContactHandlers returns the number of registered handlers that did not fire yet.
func (s *Advanced) PendingEndContactHandlers() int {
	return len(s.endContacts.handlers)
}

func (s *Advanced) push(event func()) {
	s.events.Push(event)
}
