package gm

import (
	"fmt"
)

// Rect is an axis aligned rectangle. Y grows downwards, so Min is the top left corner.
type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: Vec{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Top() float64 {
	return r.Min.Y
}

func (r Rect) Bottom() float64 {
	return r.Max.Y
}

func (r Rect) Left() float64 {
	return r.Min.X
}

func (r Rect) Right() float64 {
	return r.Max.X
}

// Grow extends the rectangle by amount in every direction.
func (r Rect) Grow(amount float64) Rect {
	return Rect{
		Min: r.Min.Sub(VecSplat(amount)),
		Max: r.Max.Add(VecSplat(amount)),
	}
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Overlaps returns true if both rectangles share at least one point.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X <= other.Max.X && other.Min.X <= r.Max.X &&
		r.Min.Y <= other.Max.Y && other.Min.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
