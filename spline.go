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

// MaxSplitFactor is the deepest subdivision supported by SplitAt.
// Parameter steps are 64-bit values, and the solver never splits beyond
// this depth.
const MaxSplitFactor = 62

// Spline is the curve between two consecutive anchors of a path.
//
// SplitAt(step, k) returns the point at parameter step/2^k, for
// 0 <= step <= 2^k.  It is a pure function of its arguments, so points can
// be recomputed on demand instead of being cached.
type Spline interface {
	Start() IntPoint
	End() IntPoint

	// StartDir and EndDir return the tangent directions at the two ends,
	// normalized to length DirUnit.  Degenerate tangents give the zero
	// vector.
	StartDir() IntPoint
	EndDir() IntPoint

	SplitAt(step uint64, splitFactor uint32) IntPoint

	// Bounds returns the bounding box of the control points, which
	// contains the whole curve.
	Bounds() IntRect
}

// LineSpline is a straight edge between two anchors without handles.
type LineSpline struct {
	A, B IntPoint
}

// CubeSpline is the curve between two anchors where exactly one of the
// facing handles is present.  M is the absolute position of that handle.
// This is a Bézier curve of degree 2.
type CubeSpline struct {
	A, M, B IntPoint
}

// QuadSpline is the curve between two anchors where both facing handles
// are present: AM is the out handle of A, BM the in handle of B.
// This is a Bézier curve of degree 3.
type QuadSpline struct {
	A, AM, BM, B IntPoint
}

// NewSpline returns the spline connecting anchor a to anchor b.
// The variant is chosen by the presence of a's out handle and b's in
// handle.
func NewSpline(a, b IntBezierAnchor) Spline {
	am, hasAM := a.HandleOutPoint()
	bm, hasBM := b.HandleInPoint()
	switch {
	case hasAM && hasBM:
		return QuadSpline{A: a.Point, AM: am, BM: bm, B: b.Point}
	case hasAM:
		return CubeSpline{A: a.Point, M: am, B: b.Point}
	case hasBM:
		return CubeSpline{A: a.Point, M: bm, B: b.Point}
	default:
		return LineSpline{A: a.Point, B: b.Point}
	}
}

// lerp returns the point at parameter step/2^k on the segment from a to b.
// Rounding is towards negative infinity, independently in each coordinate.
func lerp(a, b IntPoint, step uint64, k uint32) IntPoint {
	return IntPoint{
		X: a.X + mulShift(b.X-a.X, step, k),
		Y: a.Y + mulShift(b.Y-a.Y, step, k),
	}
}

func (s LineSpline) Start() IntPoint    { return s.A }
func (s LineSpline) End() IntPoint      { return s.B }
func (s LineSpline) StartDir() IntPoint { return s.B.Sub(s.A).Normalized10Bit() }
func (s LineSpline) EndDir() IntPoint   { return s.B.Sub(s.A).Normalized10Bit() }
func (s LineSpline) Bounds() IntRect    { return IntRectOf(s.A, s.B) }

func (s LineSpline) SplitAt(step uint64, splitFactor uint32) IntPoint {
	return lerp(s.A, s.B, step, splitFactor)
}

func (s CubeSpline) Start() IntPoint    { return s.A }
func (s CubeSpline) End() IntPoint      { return s.B }
func (s CubeSpline) StartDir() IntPoint { return s.M.Sub(s.A).Normalized10Bit() }
func (s CubeSpline) EndDir() IntPoint   { return s.B.Sub(s.M).Normalized10Bit() }
func (s CubeSpline) Bounds() IntRect    { return IntRectOf(s.A, s.M, s.B) }

func (s CubeSpline) SplitAt(step uint64, splitFactor uint32) IntPoint {
	p0 := lerp(s.A, s.M, step, splitFactor)
	p1 := lerp(s.M, s.B, step, splitFactor)
	return lerp(p0, p1, step, splitFactor)
}

func (s QuadSpline) Start() IntPoint    { return s.A }
func (s QuadSpline) End() IntPoint      { return s.B }
func (s QuadSpline) StartDir() IntPoint { return s.AM.Sub(s.A).Normalized10Bit() }
func (s QuadSpline) EndDir() IntPoint   { return s.B.Sub(s.BM).Normalized10Bit() }
func (s QuadSpline) Bounds() IntRect    { return IntRectOf(s.A, s.AM, s.BM, s.B) }

func (s QuadSpline) SplitAt(step uint64, splitFactor uint32) IntPoint {
	p0 := lerp(s.A, s.AM, step, splitFactor)
	p1 := lerp(s.AM, s.BM, step, splitFactor)
	p2 := lerp(s.BM, s.B, step, splitFactor)

	p10 := lerp(p0, p1, step, splitFactor)
	p11 := lerp(p1, p2, step, splitFactor)

	return lerp(p10, p11, step, splitFactor)
}
