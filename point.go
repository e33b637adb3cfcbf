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

	"seehuhn.de/go/geom/vec"
)

// Point is a position in the floating point authoring domain.
type Point struct {
	X, Y float64
}

// Offset is a displacement in the floating point domain, for example the
// vector from an anchor to one of its handles.
type Offset struct {
	X, Y float64
}

// PointFromVec converts a geom vector to a Point.
func PointFromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec2 converts p to a geom vector.
func (p Point) Vec2() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddOffset returns p moved by o.
func (p Point) AddOffset(o Offset) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// OffsetTo returns the displacement from p to q.
func (p Point) OffsetTo(q Point) Offset {
	return Offset{X: q.X - p.X, Y: q.Y - p.Y}
}

// SqrLength returns the squared distance of p from the origin.
func (p Point) SqrLength() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Length returns the distance of p from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Normalized returns p scaled to unit length.
// The zero vector is returned unchanged.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Vec2 converts o to a geom vector.
func (o Offset) Vec2() vec.Vec2 {
	return vec.Vec2{X: o.X, Y: o.Y}
}

// Length returns the length of the displacement.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}
