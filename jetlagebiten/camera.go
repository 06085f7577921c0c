package jetlagebiten

import (
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type scrollTween struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

// Camera maps world coordinates in meters to screen pixels.
type Camera struct {
	// Center is the point in the world shown in the center of the screen.
	Center gm.Vec

	// Scale in pixels per meter.
	Scale float64

	follow     *jetlag.Actor
	followLerp float64

	scroll *scrollTween
}

func NewCamera(scale float64) *Camera {
	return &Camera{Scale: scale}
}

// Follow keeps the actor in the center of the screen. A lerp of
// 1 snaps to the actor, lower values follow smoothly.
func (c *Camera) Follow(actor *jetlag.Actor, lerp float64) {
	c.follow = actor
	c.followLerp = lerp
}

func (c *Camera) Unfollow() {
	c.follow = nil
}

// ScrollTo animates the center of the camera to the target over duration seconds.
// Following an actor takes precedence over scrolling.
func (c *Camera) ScrollTo(target gm.Vec, duration float32, easeFn ease.TweenFunc) {
	c.scroll = &scrollTween{
		x: gween.New(float32(c.Center.X), float32(target.X), duration, easeFn),
		y: gween.New(float32(c.Center.Y), float32(target.Y), duration, easeFn),
	}
}

// Update advances following and scrolling by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.follow != nil && c.follow.Enabled() && c.follow.Body != nil {
		target := c.follow.Body.Center()
		c.Center = c.Center.Add(target.Sub(c.Center).Mul(c.followLerp))
		return
	}

	if c.scroll == nil {
		return
	}

	if !c.scroll.doneX {
		value, done := c.scroll.x.Update(dt)
		c.Center.X = float64(value)
		c.scroll.doneX = done
	}

	if !c.scroll.doneY {
		value, done := c.scroll.y.Update(dt)
		c.Center.Y = float64(value)
		c.scroll.doneY = done
	}

	if c.scroll.doneX && c.scroll.doneY {
		c.scroll = nil
	}
}

// WorldToScreen converts a point in the world to a point on a screen of the given size.
func (c *Camera) WorldToScreen(point gm.Vec, screenSize gm.Vec) gm.Vec {
	return point.Sub(c.Center).Mul(c.Scale).Add(screenSize.Mul(0.5))
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(point gm.Vec, screenSize gm.Vec) gm.Vec {
	return point.Sub(screenSize.Mul(0.5)).Mul(1 / c.Scale).Add(c.Center)
}
