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

	"golang.org/x/image/math/fixed"
)

// Quantizer is implemented by floating point values which have a
// fixed-point counterpart T.
type Quantizer[T any] interface {
	ToFixed(g Grid) T
}

// Dequantizer is implemented by fixed-point values which have a floating
// point counterpart T.
type Dequantizer[T any] interface {
	ToFloat(g Grid) T
}

var (
	_ Quantizer[IntPoint]        = Point{}
	_ Quantizer[IntOffset]       = Offset{}
	_ Quantizer[IntBezierAnchor] = BezierAnchor{}
	_ Quantizer[IntBezierPath]   = BezierPath{}
	_ Dequantizer[Point]         = IntPoint{}
	_ Dequantizer[Offset]        = IntOffset{}
	_ Dequantizer[BezierAnchor]  = IntBezierAnchor{}
	_ Dequantizer[BezierPath]    = IntBezierPath{}
)

// Quantize maps p onto the grid g.
func Quantize(g Grid, p Point) IntPoint {
	return p.ToFixed(g)
}

// Dequantize maps a grid point back to floating point.
func Dequantize(g Grid, p IntPoint) Point {
	return p.ToFloat(g)
}

// ToFixed maps p onto the grid g.
func (p Point) ToFixed(g Grid) IntPoint {
	return IntPoint{X: g.FloatToInt(p.X), Y: g.FloatToInt(p.Y)}
}

// ToFixed maps o onto the grid g.
func (o Offset) ToFixed(g Grid) IntOffset {
	return IntOffset{X: g.FloatToInt(o.X), Y: g.FloatToInt(o.Y)}
}

// ToFloat maps p back to floating point.
func (p IntPoint) ToFloat(g Grid) Point {
	return Point{X: g.IntToFloat(p.X), Y: g.IntToFloat(p.Y)}
}

// ToFloat maps o back to floating point.
func (o IntOffset) ToFloat(g Grid) Offset {
	return Offset{X: g.IntToFloat(o.X), Y: g.IntToFloat(o.Y)}
}

// Point26_6 converts a grid point to 26.6 fixed point in float units, as
// used by golang.org/x/image.  Coordinates outside the 26.6 range saturate.
func (g Grid) Point26_6(p IntPoint) fixed.Point26_6 {
	return fixed.Point26_6{X: g.int26_6(p.X), Y: g.int26_6(p.Y)}
}

func (g Grid) int26_6(a int64) fixed.Int26_6 {
	v := math.Round(g.IntToFloat(a) * 64)
	switch {
	case v >= math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	case v <= math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(v)
}
