package stage

import (
	"log/slog"
	"slices"
	"time"

	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/collision"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/internal/assert"
	"github.com/oliverbestmann/jetlag/physics"
)

type SceneKind uint8

const (
	// SceneWorld holds the level. Its collision system filters and routes contacts.
	SceneWorld SceneKind = iota

	// SceneHud is drawn on top of the world and has no gravity.
	SceneHud

	// SceneOverlay pauses the world while it is shown.
	SceneOverlay
)

func (k SceneKind) String() string {
	switch k {
	case SceneWorld:
		return "world"
	case SceneHud:
		return "hud"
	case SceneOverlay:
		return "overlay"
	default:
		return "unknown"
	}
}

type scheduledTimer struct {
	timer    *jetlag.Timer
	callback func()
}

// Scene is a physics world together with its actors, its deferred events
// and its timers.
type Scene struct {
	kind      SceneKind
	world     *physics.World
	collision collision.System

	// only set for world scenes
	advanced *collision.Advanced

	events jetlag.EventQueue
	actors []*jetlag.Actor
	timers []scheduledTimer
	paths  []*Path

	stats *TimingStats
}

func NewScene(kind SceneKind, config physics.Config) *Scene {
	if kind == SceneHud {
		config.Gravity = gm.VecZero
	}

	scene := &Scene{
		kind:  kind,
		world: physics.NewWorld(config),
	}

	switch kind {
	case SceneWorld:
		scene.advanced = collision.NewAdvanced(scene.world, &scene.events)
		scene.collision = scene.advanced

	default:
		scene.collision = collision.NewBasic(scene.world)
	}

	slog.Debug("Created scene", slog.String("kind", kind.String()))

	return scene
}

func (s *Scene) Kind() SceneKind {
	return s.kind
}

func (s *Scene) World() *physics.World {
	return s.world
}

func (s *Scene) Collision() collision.System {
	return s.collision
}

func (s *Scene) Events() *jetlag.EventQueue {
	return &s.events
}

// NewActor creates a body in the world of this scene and adds an actor owning it.
func (s *Scene) NewActor(name string, def physics.BodyDef, role *jetlag.Role) *jetlag.Actor {
	actor := jetlag.NewActor(name, s.world.NewBody(def), role)
	s.AddActor(actor)
	return actor
}

func (s *Scene) AddActor(actor *jetlag.Actor) {
	assert.That(actor.Body == nil || actor.Body.World() == s.world,
		"stage: actor %q lives in a different world", actor.Name)

	s.actors = append(s.actors, actor)
}

// Actors returns the enabled actors of the scene.
func (s *Scene) Actors() []*jetlag.Actor {
	var actors []*jetlag.Actor
	for _, actor := range s.actors {
		if actor.Enabled() {
			actors = append(actors, actor)
		}
	}

	return actors
}

func (s *Scene) ActorsAt(point gm.Vec) []*jetlag.Actor {
	return s.collision.ActorsAt(point)
}

// AddEndContactHandler registers a one shot callback that runs once a and b stop touching.
// Only world scenes track the end of contacts.
func (s *Scene) AddEndContactHandler(a, b *jetlag.Actor, callback collision.EndContactFunc) {
	assert.That(s.advanced != nil, "stage: %s scene does not track contacts", s.kind)
	s.advanced.AddEndContactHandler(a, b, callback)
}

// Defer runs the event after the next physics step.
func (s *Scene) Defer(event func()) {
	s.events.Push(event)
}

// AddTimer calls the callback each time the timer fires. One shot timers
// are dropped after firing.
func (s *Scene) AddTimer(timer *jetlag.Timer, callback func()) {
	assert.NotNil(timer, "stage: timer must not be nil")
	s.timers = append(s.timers, scheduledTimer{timer: timer, callback: callback})
}

// AddPath moves the actor of the path with every tick of the scene.
func (s *Scene) AddPath(path *Path) {
	assert.That(path.actor.Body.World() == s.world, "stage: path moves an actor of a different world")
	s.paths = append(s.paths, path)
}

// Tick advances the scene by one fixed step: the physics world steps first,
// then all deferred events run, then the timers.
func (s *Scene) Tick(dt time.Duration) {
	sw := s.measure(PhasePhysics)
	s.stepPaths(dt)
	s.world.Step(dt.Seconds())
	sw.Stop()

	sw = s.measure(PhaseEvents)
	s.events.Drain()
	sw.Stop()

	sw = s.measure(PhaseTimers)
	s.tickTimers(dt)
	sw.Stop()

	s.actors = slices.DeleteFunc(s.actors, func(actor *jetlag.Actor) bool {
		return !actor.Enabled()
	})
}

func (s *Scene) tickTimers(dt time.Duration) {
	// timers added by a callback start ticking with the next step
	timers := s.timers

	for _, scheduled := range timers {
		fired := scheduled.timer.Tick(dt)
		for range fired {
			if scheduled.callback != nil {
				scheduled.callback()
			}
		}
	}

	s.timers = slices.DeleteFunc(s.timers, func(scheduled scheduledTimer) bool {
		return scheduled.timer.Finished()
	})
}

func (s *Scene) stepPaths(dt time.Duration) {
	for _, path := range s.paths {
		path.step(dt)
	}

	s.paths = slices.DeleteFunc(s.paths, func(path *Path) bool {
		return path.stopped
	})
}

func (s *Scene) measure(phase Phase) TimingStopwatch {
	if s.stats == nil {
		return TimingStopwatch{Stop: func() {}}
	}

	return s.stats.Measure(phase)
}

// Destroy removes all actors from the world and drops pending events and timers.
func (s *Scene) Destroy() {
	for _, actor := range s.actors {
		actor.Remove()
	}

	s.actors = nil
	s.timers = nil
	s.paths = nil
	s.events.Clear()

	slog.Debug("Destroyed scene", slog.String("kind", s.kind.String()))
}
