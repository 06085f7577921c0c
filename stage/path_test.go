package stage

import (
	"testing"
	"time"

	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestPath_MovesKinematicActor(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	platform := scene.NewActor("platform", boxDef(physics.BodyKinematic, gm.Vec{X: 7, Y: 7}, 2, 0.25), nil)

	path := NewPath(platform, []gm.Vec{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}}, time.Second/2, ease.Linear)
	scene.AddPath(path)

	// placed at the first point
	require.Equal(t, gm.Vec{}, platform.Body.Center())

	for range 15 {
		scene.Tick(step)
	}

	require.InDelta(t, 2, platform.Body.Center().X, 0.05)
	require.InDelta(t, 0, platform.Body.Center().Y, 0.05)

	for range 60 {
		scene.Tick(step)
	}

	require.True(t, path.Finished())
	require.InDelta(t, 4, platform.Body.Center().X, 0.05)
	require.InDelta(t, 2, platform.Body.Center().Y, 0.05)
	require.Equal(t, gm.VecZero, platform.Body.Velocity())
}

func TestPath_Loop(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	platform := scene.NewActor("platform", boxDef(physics.BodyKinematic, gm.Vec{}, 2, 0.25), nil)

	path := NewPath(platform, []gm.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}}, time.Second/2, ease.Linear)
	path.Loop = true
	scene.AddPath(path)

	maxX := 0.0

	for range 58 {
		scene.Tick(step)
		maxX = max(maxX, platform.Body.Center().X)
	}

	require.False(t, path.Finished())
	require.InDelta(t, 2, maxX, 0.1)
	require.InDelta(t, 0, platform.Body.Center().X, 0.3)
}

func TestPath_NeedsKinematicActor(t *testing.T) {
	scene := NewScene(SceneWorld, physics.DefaultConfig())

	box := scene.NewActor("box", boxDef(physics.BodyDynamic, gm.Vec{}, 1, 1), nil)

	require.Panics(t, func() {
		NewPath(box, []gm.Vec{{}, {X: 1}}, time.Second, nil)
	})
}
