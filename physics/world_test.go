package physics

import (
	"testing"
	"time"

	"github.com/oliverbestmann/jetlag/gm"
	"github.com/stretchr/testify/require"
)

func newBox(world *World, typ BodyType, center gm.Vec, w, h float64) *RigidBody {
	return world.NewBody(BodyDef{
		Type:   typ,
		Center: center,
		Shape:  BoxShape{Width: w, Height: h},
	})
}

func TestWorld_NewBody(t *testing.T) {
	world := NewWorld(DefaultConfig())

	rb := newBox(world, BodyDynamic, gm.Vec{X: 2, Y: 4}, 0.5, 1)
	require.True(t, rb.Enabled())
	require.Equal(t, 0.5, rb.W)
	require.Equal(t, 1.0, rb.H)
	require.Equal(t, gm.Vec{X: 2, Y: 4}, rb.Center())
	require.Equal(t, 3.5, rb.Bounds().Top())
	require.Equal(t, 4.5, rb.Bounds().Bottom())
	require.Equal(t, SideNone, rb.SingleRigidSide)
	require.Nil(t, rb.DistJoint)

	circle := world.NewBody(BodyDef{Type: BodyStatic, Shape: CircleShape{Radius: 2}})
	require.Equal(t, 4.0, circle.W)
	require.Equal(t, 4.0, circle.H)
}

func TestWorld_StepFallsDown(t *testing.T) {
	world := NewWorld(DefaultConfig())

	rb := newBox(world, BodyDynamic, gm.Vec{X: 0, Y: 0}, 1, 1)

	for range 30 {
		world.Step(1.0 / 60)
	}

	// gravity points down, which is +y
	require.Greater(t, rb.Center().Y, 0.5)
	require.Greater(t, rb.Velocity().Y, 0.0)
	require.InDelta(t, 0.5, world.Elapsed().Seconds(), 1e-6)
	require.False(t, world.Stepping())
}

func TestWorld_Substeps(t *testing.T) {
	config := DefaultConfig()
	config.Substeps = 4

	world := NewWorld(config)
	world.Step(0.25)

	require.InDelta(t, 0.25, world.Elapsed().Seconds(), 1e-6)
}

func TestRigidBody_PassThrough(t *testing.T) {
	world := NewWorld(DefaultConfig())

	a := newBox(world, BodyDynamic, gm.Vec{}, 1, 1)
	b := newBox(world, BodyDynamic, gm.Vec{X: 5}, 1, 1)

	require.False(t, a.SharesPassThrough(b))

	a.AddPassThrough(7, 8)
	require.False(t, a.SharesPassThrough(b))

	b.AddPassThrough(7)
	require.True(t, a.SharesPassThrough(b))
	require.True(t, b.SharesPassThrough(a))

	b.RemovePassThrough(7)
	require.False(t, b.SharesPassThrough(a))
}

func TestWorld_PinAndUnpin(t *testing.T) {
	world := NewWorld(DefaultConfig())

	platform := newBox(world, BodyStatic, gm.Vec{X: 2, Y: 6}, 2, 0.25)
	box := world.NewBody(BodyDef{
		Center:        gm.Vec{X: 2, Y: 5.6},
		Shape:         BoxShape{Width: 0.5, Height: 0.5},
		FixedRotation: true,
	})

	joint := world.Pin(platform, box, gm.Vec{X: 2, Y: 5.875})
	require.NotNil(t, joint)
	require.Same(t, joint, box.DistJoint)

	for range 60 {
		world.Step(1.0 / 60)
	}

	// the joint keeps the box where it was pinned
	require.InDelta(t, 5.6, box.Center().Y, 0.05)

	world.Unpin(box, time.Second)
	require.Nil(t, box.DistJoint)
	require.Equal(t, world.Elapsed()+time.Second, box.StickyDelay)
}

func TestWorld_RemoveBreaksPins(t *testing.T) {
	world := NewWorld(DefaultConfig())

	platform := newBox(world, BodyStatic, gm.Vec{X: 2, Y: 6}, 2, 0.25)
	box := newBox(world, BodyDynamic, gm.Vec{X: 2, Y: 5.6}, 0.5, 0.5)
	world.Pin(platform, box, gm.Vec{X: 2, Y: 5.875})

	platform.SetEnabled(false)
	require.False(t, platform.Enabled())
	require.Nil(t, box.DistJoint)

	platform.SetEnabled(true)
	require.True(t, platform.Enabled())
}

func TestWorld_MutationWhileSteppingPanics(t *testing.T) {
	world := NewWorld(DefaultConfig())

	platform := newBox(world, BodyStatic, gm.Vec{}, 1, 1)
	box := newBox(world, BodyDynamic, gm.Vec{Y: -1}, 1, 1)

	world.stepping = true

	require.Panics(t, func() { world.Pin(platform, box, gm.Vec{}) })
	require.Panics(t, func() { world.Remove(box) })
}

func TestRigidBody_Kinds(t *testing.T) {
	world := NewWorld(DefaultConfig())

	dynamic := newBox(world, BodyDynamic, gm.Vec{}, 1, 1)
	require.True(t, dynamic.Dynamic())
	require.False(t, dynamic.Kinematic())

	kinematic := newBox(world, BodyKinematic, gm.Vec{}, 1, 1)
	require.True(t, kinematic.Kinematic())
	require.False(t, kinematic.Dynamic())

	sensor := world.NewBody(BodyDef{Type: BodyStatic, Shape: CircleShape{Radius: 1}, Sensor: true})
	require.True(t, sensor.Sensor())
	require.False(t, sensor.Dynamic())
	require.False(t, dynamic.Sensor())
}
