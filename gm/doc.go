// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec and an axis aligned
// rectangle named Rect. Both use screen coordinates: the y axis points down,
// so the top edge of a Rect has the smaller y value.
package gm
