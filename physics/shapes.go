package physics

import (
	"math"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/jetlag/gm"
)

// ToShape describes the geometry of a body, relative to the body's center.
type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape

	// Size is the size of the axis aligned bounding box of the shape.
	Size() gm.Vec

	Area() float64
	Moment(mass float64) float64
}

type BoxShape struct {
	Width, Height float64
}

func (s BoxShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, s.Width, s.Height, 0)
}

func (s BoxShape) Size() gm.Vec {
	return gm.Vec{X: s.Width, Y: s.Height}
}

func (s BoxShape) Area() float64 {
	return s.Width * s.Height
}

func (s BoxShape) Moment(mass float64) float64 {
	return cp.MomentForBox(mass, s.Width, s.Height)
}

type CircleShape struct {
	Radius float64
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, cp.Vector{})
}

func (s CircleShape) Size() gm.Vec {
	return gm.VecSplat(2 * s.Radius)
}

func (s CircleShape) Area() float64 {
	return math.Pi * s.Radius * s.Radius
}

func (s CircleShape) Moment(mass float64) float64 {
	return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
}

// PolygonShape is the convex hull of the given points.
type PolygonShape struct {
	Points []gm.Vec
	Radius float64
}

func (s PolygonShape) MakeShape(body *cp.Body) *cp.Shape {
	verts := s.vertices()
	return cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), s.Radius)
}

func (s PolygonShape) Size() gm.Vec {
	if len(s.Points) == 0 {
		return gm.VecZero
	}

	bounds := gm.RectWithPoints(s.Points[0], s.Points[0])
	for _, point := range s.Points[1:] {
		bounds.Min = gm.Vec{X: min(bounds.Min.X, point.X), Y: min(bounds.Min.Y, point.Y)}
		bounds.Max = gm.Vec{X: max(bounds.Max.X, point.X), Y: max(bounds.Max.Y, point.Y)}
	}

	return bounds.Grow(s.Radius).Size()
}

func (s PolygonShape) Area() float64 {
	verts := s.vertices()
	return cp.AreaForPoly(len(verts), verts, s.Radius)
}

func (s PolygonShape) Moment(mass float64) float64 {
	verts := s.vertices()
	return cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, s.Radius)
}

func (s PolygonShape) vertices() []cp.Vector {
	verts := make([]cp.Vector, len(s.Points))
	for idx, point := range s.Points {
		verts[idx] = cp.Vector(point)
	}

	return verts
}
