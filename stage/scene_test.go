package stage

import (
	"testing"
	"time"

	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
	"github.com/stretchr/testify/require"
)

const step = time.Second / 60

func boxDef(typ physics.BodyType, center gm.Vec, w, h float64) physics.BodyDef {
	return physics.BodyDef{
		Type:          typ,
		Center:        center,
		Shape:         physics.BoxShape{Width: w, Height: h},
		FixedRotation: true,
	}
}

func TestScene_HudHasNoGravity(t *testing.T) {
	hud := NewScene(SceneHud, physics.DefaultConfig())
	button := hud.NewActor("button", boxDef(physics.BodyDynamic, gm.Vec{X: 1, Y: 1}, 1, 1), nil)

	for range 30 {
		hud.Tick(step)
	}

	require.Equal(t, gm.Vec{X: 1, Y: 1}, button.Body.Center())
}

func TestScene_EndContactOnlyInWorld(t *testing.T) {
	hud := NewScene(SceneHud, physics.DefaultConfig())
	a := hud.NewActor("a", boxDef(physics.BodyStatic, gm.Vec{}, 1, 1), nil)
	b := hud.NewActor("b", boxDef(physics.BodyStatic, gm.Vec{X: 2}, 1, 1), nil)

	require.Panics(t, func() {
		hud.AddEndContactHandler(a, b, func(_, _ *jetlag.Actor) {})
	})

	world := NewScene(SceneWorld, physics.DefaultConfig())
	c := world.NewActor("c", boxDef(physics.BodyStatic, gm.Vec{}, 1, 1), nil)
	d := world.NewActor("d", boxDef(physics.BodyStatic, gm.Vec{X: 2}, 1, 1), nil)

	require.NotPanics(t, func() {
		world.AddEndContactHandler(c, d, func(_, _ *jetlag.Actor) {})
	})
}

func TestScene_AddActorFromOtherWorld(t *testing.T) {
	first := NewScene(SceneWorld, physics.DefaultConfig())
	second := NewScene(SceneWorld, physics.DefaultConfig())

	actor := jetlag.NewActor("box", first.World().NewBody(boxDef(physics.BodyStatic, gm.Vec{}, 1, 1)), nil)

	require.Panics(t, func() { second.AddActor(actor) })
}

func TestScene_TickOrder(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	var order []string

	timer := jetlag.NewTimer(step, jetlag.TimerModeOnce)
	scene.AddTimer(&timer, func() {
		require.False(t, scene.World().Stepping())
		order = append(order, "timer")
	})

	scene.Defer(func() {
		require.False(t, scene.World().Stepping())
		require.Equal(t, step, scene.World().Elapsed())
		order = append(order, "event")

		// runs with the next tick
		scene.Defer(func() { order = append(order, "nested") })
	})

	scene.Tick(step)
	require.Equal(t, []string{"event", "timer"}, order)

	scene.Tick(step)
	require.Equal(t, []string{"event", "timer", "nested"}, order)
}

func TestScene_RepeatingTimer(t *testing.T) {
	scene := NewScene(SceneHud, physics.DefaultConfig())

	var count int

	timer := jetlag.NewTimer(2*step, jetlag.TimerModeRepeating)
	scene.AddTimer(&timer, func() { count++ })

	for range 10 {
		scene.Tick(step)
	}

	require.Equal(t, 5, count)
}

func TestScene_Destroy(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	floor := scene.NewActor("floor", boxDef(physics.BodyStatic, gm.Vec{Y: 5}, 10, 1), nil)
	scene.NewActor("hero", boxDef(physics.BodyDynamic, gm.Vec{Y: 4.2}, 0.5, 0.5), nil)

	require.Len(t, scene.Actors(), 2)

	var fired bool
	scene.Defer(func() { fired = true })

	scene.Destroy()
	require.Empty(t, scene.Actors())
	require.Empty(t, scene.ActorsAt(floor.Body.Center()))
	require.Equal(t, 0, scene.Events().Len())

	scene.Tick(step)
	require.False(t, fired)
}

func TestScene_RemovedActorsAreDropped(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	box := scene.NewActor("box", boxDef(physics.BodyStatic, gm.Vec{}, 1, 1), nil)
	scene.NewActor("other", boxDef(physics.BodyStatic, gm.Vec{X: 3}, 1, 1), nil)

	scene.Defer(box.Remove)
	scene.Tick(step)

	require.Len(t, scene.Actors(), 1)
	require.Equal(t, "other", scene.Actors()[0].Name)
}
