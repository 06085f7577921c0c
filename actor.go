// Package jetlag holds the actors of the engine, their roles and the queue of
// deferred events that reactions to contacts run through.
package jetlag

import (
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

// Actor is anything that lives in a scene: a rigid body together with a role.
type Actor struct {
	Name string
	Body *physics.RigidBody
	Role *Role

	// Tap is called when the actor is tapped. Return true to consume the tap.
	Tap func(actor *Actor, point gm.Vec) bool

	enabled bool
}

// NewActor creates a new enabled actor. The actor is stored in the user data of
// the body, so the physics callbacks can find it again.
func NewActor(name string, body *physics.RigidBody, role *Role) *Actor {
	actor := &Actor{
		Name:    name,
		Body:    body,
		Role:    role,
		enabled: true,
	}

	if body != nil {
		body.Body().UserData = actor
	}

	return actor
}

// ActorOf returns the live actor owning the given body. Bodies that do not
// belong to an actor, or actors without a rigid body, are not reported.
func ActorOf(body *cp.Body) (*Actor, bool) {
	if body == nil {
		return nil, false
	}

	actor, ok := body.UserData.(*Actor)
	if !ok || actor == nil || actor.Body == nil {
		return nil, false
	}

	return actor, true
}

func (a *Actor) Enabled() bool {
	return a.enabled
}

// Remove disables the actor and takes its body out of the world.
// Must not be called while the world is stepping.
func (a *Actor) Remove() {
	if !a.enabled {
		return
	}

	a.enabled = false

	if a.Body != nil {
		a.Body.SetEnabled(false)
	}

	slog.Debug("Removed actor", slog.Any("actor", a))
}

func (a *Actor) Kind() RoleKind {
	if a.Role == nil {
		return RoleNone
	}

	return a.Role.Kind
}

func (a *Actor) String() string {
	if a.Name != "" {
		return a.Name
	}

	return a.Kind().String()
}

func (a *Actor) LogValue() slog.Value {
	return slog.StringValue(a.String())
}
