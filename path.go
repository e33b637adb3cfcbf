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
	"fmt"
	"iter"
)

// BezierPath is a sequence of anchors in floating point.  If Closed is
// set, an additional edge connects the last anchor back to the first.
type BezierPath struct {
	Anchors []BezierAnchor
	Closed  bool
}

// ToFixed maps all anchors of p onto the grid g.
func (p BezierPath) ToFixed(g Grid) IntBezierPath {
	res := IntBezierPath{
		Anchors: make([]IntBezierAnchor, len(p.Anchors)),
		Closed:  p.Closed,
	}
	for i, a := range p.Anchors {
		res.Anchors[i] = a.ToFixed(g)
	}
	return res
}

// RegularPoints quantizes p onto g and samples it as
// [IntBezierPath.RegularPoints] does.
func (p BezierPath) RegularPoints(g Grid, splitFactor uint32) ([]Point, error) {
	points, err := p.ToFixed(g).RegularPoints(splitFactor)
	if err != nil {
		return nil, err
	}
	return dequantizeAll(g, points), nil
}

// Approximate quantizes p onto g and flattens it as
// [IntBezierPath.Approximate] does.
func (p BezierPath) Approximate(g Grid, t Tolerance) ([]Point, error) {
	points, err := p.ToFixed(g).Approximate(t)
	if err != nil {
		return nil, err
	}
	return dequantizeAll(g, points), nil
}

func dequantizeAll(g Grid, points []IntPoint) []Point {
	if points == nil {
		return nil
	}
	res := make([]Point, len(points))
	for i, q := range points {
		res[i] = q.ToFloat(g)
	}
	return res
}

// IntBezierPath is a sequence of anchors on the fixed-point grid.  See
// [BezierPath].
type IntBezierPath struct {
	Anchors []IntBezierAnchor
	Closed  bool
}

// ToFloat maps all anchors of p back to floating point.
func (p IntBezierPath) ToFloat(g Grid) BezierPath {
	res := BezierPath{
		Anchors: make([]BezierAnchor, len(p.Anchors)),
		Closed:  p.Closed,
	}
	for i, a := range p.Anchors {
		res.Anchors[i] = a.ToFloat(g)
	}
	return res
}

// Edges returns the number of splines in p.
// A closed path with a single anchor has one edge, from the anchor back to
// itself.
func (p IntBezierPath) Edges() int {
	n := len(p.Anchors)
	switch {
	case n == 0:
		return 0
	case p.Closed:
		return n
	default:
		return n - 1
	}
}

// Spline returns edge i of p, for 0 <= i < p.Edges().
func (p IntBezierPath) Spline(i int) Spline {
	n := len(p.Anchors)
	return NewSpline(p.Anchors[i], p.Anchors[(i+1)%n])
}

// Splines iterates over the edges of p, together with their index.
func (p IntBezierPath) Splines() iter.Seq2[int, Spline] {
	return func(yield func(int, Spline) bool) {
		for i := range p.Edges() {
			if !yield(i, p.Spline(i)) {
				return
			}
		}
	}
}

// MaxRegularPoints is the largest number of samples which
// [IntBezierPath.RegularPoints] returns.  Use [RegularPoints] on the
// individual splines for denser sampling.
const MaxRegularPoints = 1 << 24

// RegularPoints samples every edge of p at 2^splitFactor evenly spaced
// parameters.
//
// A closed path gives len(p.Anchors)<<splitFactor points; the first point
// is not repeated at the end.  An open path gives one point per sample
// and ends with the last anchor.  A path without anchors gives nil.
// If the edges of p would give more than MaxRegularPoints samples,
// ErrSplitFactor is returned.
func (p IntBezierPath) RegularPoints(splitFactor uint32) ([]IntPoint, error) {
	if splitFactor > MaxSplitFactor {
		return nil, fmt.Errorf("%w: %d > %d", ErrSplitFactor, splitFactor, MaxSplitFactor)
	}
	if len(p.Anchors) == 0 {
		return nil, nil
	}
	edges := uint64(p.Edges())
	if edges > uint64(MaxRegularPoints)>>splitFactor {
		return nil, fmt.Errorf("%w: %d edges at split factor %d exceed %d points",
			ErrSplitFactor, edges, splitFactor, MaxRegularPoints)
	}

	points := make([]IntPoint, 0, p.Edges()<<splitFactor+1)
	for _, s := range p.Splines() {
		points = appendRegular(points, s, splitFactor)
	}
	if !p.Closed {
		points = append(points, p.Anchors[len(p.Anchors)-1].Point)
	}
	return points, nil
}

// ApproximateSegments flattens every edge of p with [Approximate].
// The Edge field of each result identifies the spline it belongs to.
func (p IntBezierPath) ApproximateSegments(t Tolerance) ([]Short, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	var res []Short
	for i, s := range p.Splines() {
		shorts := approximate(s, t)
		for j := range shorts {
			shorts[j].Edge = i
		}
		res = append(res, shorts...)
	}
	return res, nil
}

// Approximate flattens p into a polyline.  The conventions for the end
// points are the same as for [IntBezierPath.RegularPoints].
func (p IntBezierPath) Approximate(t Tolerance) ([]IntPoint, error) {
	shorts, err := p.ApproximateSegments(t)
	if err != nil {
		return nil, err
	}
	switch {
	case len(p.Anchors) == 0:
		return nil, nil
	case len(shorts) == 0:
		return []IntPoint{p.Anchors[0].Point}, nil
	}

	points := make([]IntPoint, 0, len(shorts)+1)
	for _, s := range shorts {
		points = append(points, s.A)
	}
	if !p.Closed {
		points = append(points, shorts[len(shorts)-1].B)
	}
	return points, nil
}

// Bounds returns the bounding box of all anchors and handles of p.
func (p IntBezierPath) Bounds() IntRect {
	r := EmptyIntRect()
	for _, a := range p.Anchors {
		r.Add(a.Point)
		if h, ok := a.HandleInPoint(); ok {
			r.Add(h)
		}
		if h, ok := a.HandleOutPoint(); ok {
			r.Add(h)
		}
	}
	return r
}
