package jetlagebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

var (
	colorSolid     = cp.FColor{G: 1, A: 1}
	colorOneSided  = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 1}
	colorSticky    = cp.FColor{R: 1, G: 0.85, A: 1}
	colorPinned    = cp.FColor{R: 1, G: 0.4, B: 0.9, A: 1}
	colorSensor    = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.5}
	colorNoActor   = cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
	colorOutline   = cp.FColor{R: 1, G: 1, B: 1, A: 1}
	colorJoint     = cp.FColor{R: 1, G: 0.75, A: 1}
	colorCollision = cp.FColor{R: 1, A: 1}
)

// DrawWorld draws the shapes, joints and contacts of the world onto the image.
func DrawWorld(image *ebiten.Image, world *physics.World, camera *Camera) {
	cp.DrawSpace(world.Space(), debugImage{
		Image:      image,
		Camera:     camera,
		ScreenSize: imageSizeOf(image),
	})
}

type debugImage struct {
	Image      *ebiten.Image
	Camera     *Camera
	ScreenSize gm.Vec
}

func (d debugImage) toScreen(v cp.Vector) gm.Vec {
	return d.Camera.WorldToScreen(gm.Vec(v), d.ScreenSize)
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	dpo := &vector.DrawPathOptions{}
	dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
	vector.FillPath(d.Image, &p, &vector.FillOptions{}, dpo)

	*dpo = vector.DrawPathOptions{}
	dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
	vector.StrokePath(d.Image, &p, &vector.StrokeOptions{Width: 1}, dpo)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data any) {
	center := d.toScreen(pos)
	radius *= d.Camera.Scale

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(radius), 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(float32(center.X), float32(center.Y))
	p.LineTo(float32(center.X+math.Cos(angle)*radius), float32(center.Y+math.Sin(angle)*radius))

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data any) {
	ta := d.toScreen(a)
	tb := d.toScreen(b)

	var p vector.Path
	p.MoveTo(float32(ta.X), float32(ta.Y))
	p.LineTo(float32(tb.X), float32(tb.Y))
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data any) {
	d.DrawSegment(a, b, outline, data)
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data any) {
	if count == 0 {
		return
	}

	var p vector.Path

	first := d.toScreen(verts[0])
	p.MoveTo(float32(first.X), float32(first.Y))

	for _, vert := range verts[1:count] {
		point := d.toScreen(vert)
		p.LineTo(float32(point.X), float32(point.Y))
	}

	p.Close()

	fill.A *= 0.5
	d.draw(p, outline, fill)
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data any) {
	center := d.toScreen(pos)

	var p vector.Path
	p.Arc(float32(center.X), float32(center.Y), float32(size/2), 0, math.Pi*2, vector.Clockwise)
	d.draw(p, fill, fill)
}

func (d debugImage) Flags() uint {
	return 0
}

func (d debugImage) OutlineColor() cp.FColor {
	return colorOutline
}

func (d debugImage) ShapeColor(shape *cp.Shape, data any) cp.FColor {
	actor, ok := jetlag.ActorOf(shape.Body())
	if !ok {
		return colorNoActor
	}

	return bodyColor(actor.Body)
}

func bodyColor(body *physics.RigidBody) cp.FColor {
	switch {
	case body.Sensor():
		return colorSensor
	case body.DistJoint != nil:
		return colorPinned
	case body.IsSticky():
		return colorSticky
	case body.SingleRigidSide != physics.SideNone:
		return colorOneSided
	default:
		return colorSolid
	}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return colorJoint
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return colorCollision
}

func (d debugImage) Data() any {
	return nil
}

func imageSizeOf(image *ebiten.Image) gm.Vec {
	bounds := image.Bounds()
	return gm.Vec{X: float64(bounds.Dx()), Y: float64(bounds.Dy())}
}
