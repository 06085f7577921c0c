package main

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/jetlagebiten"
	"github.com/oliverbestmann/jetlag/physics"
	"github.com/oliverbestmann/jetlag/stage"
	"github.com/tanema/gween/ease"
)

// crates with this id fall through each other
const ghostCrates physics.PassThroughId = 1

// Level builds a small level showing one sided platforms, sticky platforms,
// pass through bodies and the roles.
type Level struct {
	Stage *stage.Stage
	Game  *jetlagebiten.Game

	hero *jetlag.Actor
}

func box(typ physics.BodyType, center gm.Vec, w, h float64) physics.BodyDef {
	return physics.BodyDef{
		Type:          typ,
		Center:        center,
		Shape:         physics.BoxShape{Width: w, Height: h},
		FixedRotation: true,
	}
}

func (l *Level) Build() {
	world := l.Stage.World()

	obstacle := func() *jetlag.Role {
		return &jetlag.Role{Kind: jetlag.RoleObstacle}
	}

	world.NewActor("floor", box(physics.BodyStatic, gm.Vec{X: 10, Y: 11}, 24, 1), obstacle())
	world.NewActor("wall", box(physics.BodyStatic, gm.Vec{X: -1.5, Y: 6}, 1, 12), obstacle())

	// jump through from below, land on top
	ledge := world.NewActor("ledge", box(physics.BodyStatic, gm.Vec{X: 6, Y: 7.5}, 3, 0.25), obstacle())
	ledge.Body.SingleRigidSide = physics.SideTop

	// a moving platform that holds everything landing on it
	lift := world.NewActor("lift", box(physics.BodyKinematic, gm.Vec{X: 11, Y: 8}, 3, 0.25), obstacle())
	lift.Body.SingleRigidSide = physics.SideTop
	lift.Body.StickySides = []physics.Side{physics.SideTop}

	path := stage.NewPath(lift, []gm.Vec{{X: 11, Y: 8}, {X: 15, Y: 4}}, 3*time.Second, ease.InOutQuad)
	path.Loop = true
	world.AddPath(path)

	for idx := range 3 {
		crate := world.NewActor("crate", box(physics.BodyDynamic, gm.Vec{X: 3, Y: 2 - 1.2*float64(idx)}, 0.8, 0.8), obstacle())
		crate.Body.AddPassThrough(ghostCrates)
	}

	l.hero = world.NewActor("hero", box(physics.BodyDynamic, gm.Vec{X: 1, Y: 10}, 0.8, 0.8), &jetlag.Role{
		Kind:     jetlag.RoleHero,
		Strength: 2,
		OnDefeated: func(self, by *jetlag.Actor) {
			slog.Info("Hero was defeated", slog.Any("by", by))
			l.showOverlay("defeated")
		},
	})

	l.hero.Tap = l.jump

	world.NewActor("enemy", box(physics.BodyDynamic, gm.Vec{X: 8, Y: 10}, 0.8, 0.8), &jetlag.Role{
		Kind:     jetlag.RoleEnemy,
		Strength: 1,
		Damage:   1,
	})

	goodie := physics.BodyDef{
		Type:   physics.BodyStatic,
		Center: gm.Vec{X: 6, Y: 6.5},
		Shape:  physics.CircleShape{Radius: 0.3},
		Sensor: true,
	}

	world.NewActor("goodie", goodie, &jetlag.Role{
		Kind: jetlag.RoleGoodie,
		Trigger: func(self, other *jetlag.Actor, contact jetlag.Contact) {
			slog.Info("Collected goodie", slog.Int("collected", other.Role.Collected))
		},
	})

	destination := box(physics.BodyStatic, gm.Vec{X: 18, Y: 9.5}, 1, 2)
	destination.Sensor = true

	world.NewActor("destination", destination, &jetlag.Role{
		Kind:     jetlag.RoleDestination,
		Capacity: 1,
		Trigger: func(self, other *jetlag.Actor, contact jetlag.Contact) {
			slog.Info("Hero arrived")
			l.showOverlay("won")
		},
	})

	l.buildHud()

	l.Game.Camera.Center = gm.Vec{X: 8, Y: 6}
	l.Game.Camera.Follow(l.hero, 0.1)
}

func (l *Level) buildHud() {
	hud := l.Stage.Hud()

	restart := hud.NewActor("restart", box(physics.BodyStatic, gm.Vec{X: 1, Y: 0.6}, 1.6, 0.8), nil)
	restart.Tap = func(actor *jetlag.Actor, point gm.Vec) bool {
		l.restart()
		return true
	}
}

// jump lets the hero jump. A hero held by a sticky platform is released first.
func (l *Level) jump(hero *jetlag.Actor, point gm.Vec) bool {
	world := l.Stage.World()

	body := hero.Body
	if body.DistJoint != nil {
		world.World().Unpin(body, 500*time.Millisecond)
	}

	body.SetVelocity(gm.Vec{X: 3, Y: -8})

	// the hero is on the ground again once it leaves the surface it jumped off
	for _, other := range world.ActorsAt(body.Center().Add(gm.Vec{Y: body.H/2 + 0.05})) {
		if other == hero {
			continue
		}

		world.AddEndContactHandler(hero, other, func(a, b *jetlag.Actor) {
			slog.Debug("Hero took off", slog.Any("from", b))
		})
	}

	return true
}

func (l *Level) showOverlay(reason string) {
	overlay := l.Stage.SetOverlay()

	dismiss := overlay.NewActor("dismiss", box(physics.BodyStatic, gm.Vec{X: 8, Y: 6}, 16, 12), nil)
	dismiss.Tap = func(actor *jetlag.Actor, point gm.Vec) bool {
		slog.Info("Restarting level", slog.String("reason", reason))
		l.restart()
		return true
	}
}

func (l *Level) restart() {
	// tap handlers run between frames, so the scenes can be rebuilt right away
	l.Stage.Reset()
	l.Game.Camera.Unfollow()
	l.Build()
}
