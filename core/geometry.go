// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/geometry.go
// Summary: Geometry primitives for the shared keyboard coordinate space.
// Usage: Used by layout, gesture tracking and the callout controllers.

package core

// Point is a position in the shared keyboard coordinate space.
type Point struct {
	X, Y float64
}

// Size is a width/height pair. The zero value means "not measured".
type Size struct {
	W, H float64
}

// IsZero reports whether the size has no extent.
func (s Size) IsZero() bool { return s.W == 0 && s.H == 0 }

// Rect defines a rectangle by origin and size. The zero value means
// "no frame".
type Rect struct {
	X, Y, W, H float64
}

// IsZero reports whether the rect is the zero rect.
func (r Rect) IsZero() bool { return r == Rect{} }

// Size returns the rect's extent.
func (r Rect) Size() Size { return Size{W: r.W, H: r.H} }

// Origin returns the rect's top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// MidX returns the horizontal center of the rect.
func (r Rect) MidX() float64 { return r.X + r.W/2 }

// MaxX returns the right edge of the rect.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge of the rect.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
