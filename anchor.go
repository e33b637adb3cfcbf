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

// BezierAnchor is a point of a path together with its optional handles,
// in floating point.
//
// Handles are stored as offsets from Point, so moving the anchor moves its
// handles along.  A nil handle means that the path is straight on that
// side of the anchor.  Handle values are never modified in place, so
// copies of an anchor can share them.
type BezierAnchor struct {
	Point     Point
	HandleIn  *Offset
	HandleOut *Offset
}

// HandleInPoint returns the absolute position of the incoming handle.
func (a BezierAnchor) HandleInPoint() (Point, bool) {
	if a.HandleIn == nil {
		return Point{}, false
	}
	return a.Point.AddOffset(*a.HandleIn), true
}

// HandleOutPoint returns the absolute position of the outgoing handle.
func (a BezierAnchor) HandleOutPoint() (Point, bool) {
	if a.HandleOut == nil {
		return Point{}, false
	}
	return a.Point.AddOffset(*a.HandleOut), true
}

// MoveTo moves the anchor to p.  The handles keep their offsets.
func (a *BezierAnchor) MoveTo(p Point) {
	a.Point = p
}

// SetHandleInPoint places the incoming handle at the absolute position p.
func (a *BezierAnchor) SetHandleInPoint(p Point) {
	o := a.Point.OffsetTo(p)
	a.HandleIn = &o
}

// SetHandleOutPoint places the outgoing handle at the absolute position p.
func (a *BezierAnchor) SetHandleOutPoint(p Point) {
	o := a.Point.OffsetTo(p)
	a.HandleOut = &o
}

// ClearHandleIn removes the incoming handle.
func (a *BezierAnchor) ClearHandleIn() {
	a.HandleIn = nil
}

// ClearHandleOut removes the outgoing handle.
func (a *BezierAnchor) ClearHandleOut() {
	a.HandleOut = nil
}

// ToFixed maps a onto the grid g.  Handle offsets are quantized
// separately from the point, so handle positions stay on the grid.
func (a BezierAnchor) ToFixed(g Grid) IntBezierAnchor {
	res := IntBezierAnchor{Point: a.Point.ToFixed(g)}
	if a.HandleIn != nil {
		h := a.HandleIn.ToFixed(g)
		res.HandleIn = &h
	}
	if a.HandleOut != nil {
		h := a.HandleOut.ToFixed(g)
		res.HandleOut = &h
	}
	return res
}

// IntBezierAnchor is a point of a path together with its optional
// handles, on the fixed-point grid.  See [BezierAnchor].
type IntBezierAnchor struct {
	Point     IntPoint
	HandleIn  *IntOffset
	HandleOut *IntOffset
}

// HandleInPoint returns the absolute position of the incoming handle.
func (a IntBezierAnchor) HandleInPoint() (IntPoint, bool) {
	if a.HandleIn == nil {
		return IntPoint{}, false
	}
	return a.Point.AddOffset(*a.HandleIn), true
}

// HandleOutPoint returns the absolute position of the outgoing handle.
func (a IntBezierAnchor) HandleOutPoint() (IntPoint, bool) {
	if a.HandleOut == nil {
		return IntPoint{}, false
	}
	return a.Point.AddOffset(*a.HandleOut), true
}

// MoveTo moves the anchor to p.  The handles keep their offsets.
func (a *IntBezierAnchor) MoveTo(p IntPoint) {
	a.Point = p
}

// SetHandleInPoint places the incoming handle at the absolute position p.
func (a *IntBezierAnchor) SetHandleInPoint(p IntPoint) {
	o := a.Point.OffsetTo(p)
	a.HandleIn = &o
}

// SetHandleOutPoint places the outgoing handle at the absolute position p.
func (a *IntBezierAnchor) SetHandleOutPoint(p IntPoint) {
	o := a.Point.OffsetTo(p)
	a.HandleOut = &o
}

// ClearHandleIn removes the incoming handle.
func (a *IntBezierAnchor) ClearHandleIn() {
	a.HandleIn = nil
}

// ClearHandleOut removes the outgoing handle.
func (a *IntBezierAnchor) ClearHandleOut() {
	a.HandleOut = nil
}

// ToFloat maps a back to floating point.
func (a IntBezierAnchor) ToFloat(g Grid) BezierAnchor {
	res := BezierAnchor{Point: a.Point.ToFloat(g)}
	if a.HandleIn != nil {
		h := a.HandleIn.ToFloat(g)
		res.HandleIn = &h
	}
	if a.HandleOut != nil {
		h := a.HandleOut.ToFloat(g)
		res.HandleOut = &h
	}
	return res
}
