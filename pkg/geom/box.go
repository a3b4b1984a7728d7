// Package geom provides shared geometry types for terrain mesh generation.
package geom

import "github.com/go-gl/mathgl/mgl32"

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Empty returns a box that contains nothing. Expanding it by any point
// yields a box containing exactly that point.
func Empty() Box3 {
	return Box3{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
}

// FromExtents returns the box spanning [min, max].
func FromExtents(min, max mgl32.Vec3) Box3 {
	return Box3{Min: min, Max: max}
}

// FromPoints returns the smallest box containing every point.
func FromPoints(points []mgl32.Vec3) Box3 {
	b := Empty()
	for _, p := range points {
		b = b.ExpandPoint(p)
	}
	return b
}

// ExpandPoint returns the box grown to contain p.
func (b Box3) ExpandPoint(p mgl32.Vec3) Box3 {
	return Box3{
		Min: mgl32.Vec3{min(b.Min.X(), p.X()), min(b.Min.Y(), p.Y()), min(b.Min.Z(), p.Z())},
		Max: mgl32.Vec3{max(b.Max.X(), p.X()), max(b.Max.Y(), p.Y()), max(b.Max.Z(), p.Z())},
	}
}

// Union returns the box containing both boxes.
func (b Box3) Union(other Box3) Box3 {
	return b.ExpandPoint(other.Min).ExpandPoint(other.Max)
}

// Contains reports whether p lies inside the box (inclusive).
func (b Box3) Contains(p mgl32.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Center returns the box midpoint.
func (b Box3) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extents along each axis.
func (b Box3) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}
