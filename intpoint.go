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

import "fmt"

// IntPoint is a position on the fixed-point grid.
//
// Coordinates are 64 bits wide so that squares and cross products of
// coordinates up to about 10^12 can be formed without overflow.
type IntPoint struct {
	X, Y int64
}

// IntOffset is a displacement on the fixed-point grid.
type IntOffset struct {
	X, Y int64
}

const (
	// DirUnit is the length of direction vectors returned by
	// [IntPoint.Normalized10Bit].
	DirUnit = 1 << dirBits

	dirBits = 10

	// maxSafeBits is the largest bit length of the squared length for
	// which coord<<dirBits cannot overflow int64.
	maxSafeBits = 63 - dirBits
)

// Add returns p + q.
func (p IntPoint) Add(q IntPoint) IntPoint {
	return IntPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p IntPoint) Sub(q IntPoint) IntPoint {
	return IntPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddOffset returns p moved by o.
func (p IntPoint) AddOffset(o IntOffset) IntPoint {
	return IntPoint{X: p.X + o.X, Y: p.Y + o.Y}
}

// SubOffset returns p moved by -o.
func (p IntPoint) SubOffset(o IntOffset) IntPoint {
	return IntPoint{X: p.X - o.X, Y: p.Y - o.Y}
}

// OffsetTo returns the displacement from p to q.
func (p IntPoint) OffsetTo(q IntPoint) IntOffset {
	return IntOffset{X: q.X - p.X, Y: q.Y - p.Y}
}

// Dot returns the dot product of p and q.
func (p IntPoint) Dot(q IntPoint) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the cross product of p and q.
func (p IntPoint) Cross(q IntPoint) int64 {
	return p.X*q.Y - p.Y*q.X
}

// IsZero reports whether p is the origin.
func (p IntPoint) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Normalized10Bit returns p scaled to length approximately [DirUnit].
//
// Dot products of two normalized vectors are then close to
// DirUnit^2 * cos(angle), which allows angle comparisons without floating
// point.  The squared length is formed in 128 bits.  Short vectors are
// shifted left before the division to keep precision; very long vectors
// have their length shifted right instead, so that nothing overflows.
//
// The division uses the integer square root of the squared length, which
// rounds down.  For short vectors this makes the result too long by up to
// a factor |p|/floor(|p|): (1, 1) maps to (1024, 1024) and (1, 2) to
// (512, 1024).  From length 32 on the excess is below about 3%.
//
// The zero vector has no direction and is returned unchanged.
func (p IntPoint) Normalized10Bit() IntPoint {
	if p.IsZero() {
		return p
	}

	sqrLen := sqrLength128(p.X, p.Y)
	l := sqrLen.isqrt()

	if sqrLen.log2() <= maxSafeBits {
		n := int64(l)
		return IntPoint{X: (p.X << dirBits) / n, Y: (p.Y << dirBits) / n}
	}

	n := int64(l >> dirBits)
	return IntPoint{X: p.X / n, Y: p.Y / n}
}

// isSmall reports whether the length of p has fewer than power bits.
// The zero vector is always small.
func (p IntPoint) isSmall(power uint32) bool {
	if p.IsZero() {
		return true
	}
	ax, ay := abs64(p.X), abs64(p.Y)
	if ilog2(ax) >= power || ilog2(ay) >= power {
		return false
	}
	// both coordinates are below 2^31, so the squares fit into 64 bits
	l := uint128{lo: ax*ax + ay*ay}.isqrt()
	return ilog2(l) < power
}

func (p IntPoint) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Point converts o to the position o relative to the origin.
func (o IntOffset) Point() IntPoint {
	return IntPoint{X: o.X, Y: o.Y}
}

// IsZero reports whether o is the zero displacement.
func (o IntOffset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}
