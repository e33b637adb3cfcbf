// seehuhn.de/go/curve - integer Bézier curves and adaptive flattening
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package curve

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// IntRect is an axis-aligned rectangle on the grid, with inclusive
// bounds.  The empty rectangle has Min > Max.
type IntRect struct {
	Min, Max IntPoint
}

// EmptyIntRect returns a rectangle which contains no points.
// Adding a point to it gives the rectangle consisting of that point.
func EmptyIntRect() IntRect {
	return IntRect{
		Min: IntPoint{X: math.MaxInt64, Y: math.MaxInt64},
		Max: IntPoint{X: math.MinInt64, Y: math.MinInt64},
	}
}

// IntRectOf returns the smallest rectangle containing all of the points.
func IntRectOf(points ...IntPoint) IntRect {
	r := EmptyIntRect()
	for _, p := range points {
		r.Add(p)
	}
	return r
}

// Add enlarges r to contain p.
func (r *IntRect) Add(p IntPoint) {
	r.Min.X = min(r.Min.X, p.X)
	r.Min.Y = min(r.Min.Y, p.Y)
	r.Max.X = max(r.Max.X, p.X)
	r.Max.Y = max(r.Max.Y, p.Y)
}

// Union enlarges r to contain all points of s.
func (r *IntRect) Union(s IntRect) {
	if s.IsEmpty() {
		return
	}
	r.Add(s.Min)
	r.Add(s.Max)
}

// IsEmpty reports whether r contains no points.
func (r IntRect) IsEmpty() bool {
	return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y
}

// IntersectsInclusive reports whether r and s share at least one point,
// including points on the boundary.
func (r IntRect) IntersectsInclusive(s IntRect) bool {
	x := r.Min.X <= s.Max.X && r.Max.X >= s.Min.X
	y := r.Min.Y <= s.Max.Y && r.Max.Y >= s.Min.Y
	return x && y
}

// IntersectsExclusive reports whether the interiors of r and s overlap.
func (r IntRect) IntersectsExclusive(s IntRect) bool {
	x := r.Min.X < s.Max.X && r.Max.X > s.Min.X
	y := r.Min.Y < s.Max.Y && r.Max.Y > s.Min.Y
	return x && y
}

// Rect converts a grid rectangle to a geom rectangle in float units.
// The empty rectangle maps to the zero rect.Rect.
func (g Grid) Rect(r IntRect) rect.Rect {
	if r.IsEmpty() {
		return rect.Rect{}
	}
	return rect.Rect{
		LLx: g.IntToFloat(r.Min.X),
		LLy: g.IntToFloat(r.Min.Y),
		URx: g.IntToFloat(r.Max.X),
		URy: g.IntToFloat(r.Max.Y),
	}
}
