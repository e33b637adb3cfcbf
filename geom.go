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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// AppendTo appends p to d as a single subpath and returns d.
//
// Edges without handles become straight lines, edges with one handle
// become quadratic segments and edges with two handles become cubic
// segments.  A closed path ends with an explicit edge back to the first
// anchor, followed by Close.  A path without anchors leaves d unchanged.
func (p BezierPath) AppendTo(d *path.Data) *path.Data {
	n := len(p.Anchors)
	if n == 0 {
		return d
	}

	d = d.MoveTo(p.Anchors[0].Point.Vec2())
	edges := n - 1
	if p.Closed {
		edges = n
	}
	for i := range edges {
		a := p.Anchors[i]
		b := p.Anchors[(i+1)%n]
		out, hasOut := a.HandleOutPoint()
		in, hasIn := b.HandleInPoint()
		switch {
		case hasOut && hasIn:
			d = d.CubeTo(out.Vec2(), in.Vec2(), b.Point.Vec2())
		case hasOut:
			d = d.QuadTo(out.Vec2(), b.Point.Vec2())
		case hasIn:
			d = d.QuadTo(in.Vec2(), b.Point.Vec2())
		default:
			d = d.LineTo(b.Point.Vec2())
		}
	}
	if p.Closed {
		d = d.Close()
	}
	return d
}

// Path converts p to a new geom path.
func (p BezierPath) Path() *path.Data {
	return p.AppendTo(&path.Data{})
}

// PathsFromGeom converts a geom path into one BezierPath per subpath.
//
// A quadratic segment becomes an outgoing handle on the previous anchor.
// A cubic segment sets the outgoing handle of the previous anchor and the
// incoming handle of the new one.  When a closed subpath ends on its
// starting point, the final anchor is merged into the first.  Drawing
// commands outside a subpath are ignored.
func PathsFromGeom(p path.Path) ([]BezierPath, error) {
	var res []BezierPath
	var cur *BezierPath

	flush := func() {
		if cur != nil {
			res = append(res, *cur)
			cur = nil
		}
	}
	last := func() *BezierAnchor {
		return &cur.Anchors[len(cur.Anchors)-1]
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = &BezierPath{
				Anchors: []BezierAnchor{{Point: PointFromVec(pts[0])}},
			}

		case path.CmdLineTo:
			if cur == nil {
				continue
			}
			cur.Anchors = append(cur.Anchors, BezierAnchor{Point: PointFromVec(pts[0])})

		case path.CmdQuadTo:
			if cur == nil {
				continue
			}
			last().SetHandleOutPoint(PointFromVec(pts[0]))
			cur.Anchors = append(cur.Anchors, BezierAnchor{Point: PointFromVec(pts[1])})

		case path.CmdCubeTo:
			if cur == nil {
				continue
			}
			last().SetHandleOutPoint(PointFromVec(pts[0]))
			next := BezierAnchor{Point: PointFromVec(pts[2])}
			next.SetHandleInPoint(PointFromVec(pts[1]))
			cur.Anchors = append(cur.Anchors, next)

		case path.CmdClose:
			if cur == nil {
				continue
			}
			if n := len(cur.Anchors); n > 1 && cur.Anchors[n-1].Point == cur.Anchors[0].Point {
				cur.Anchors[0].HandleIn = cur.Anchors[n-1].HandleIn
				cur.Anchors = cur.Anchors[:n-1]
			}
			cur.Closed = true
			flush()

		default:
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedCommand, cmd)
		}
	}
	flush()

	return res, nil
}

// Transform applies the affine map m to p.  Anchor points get the full
// map, handle offsets only its linear part.
func (p BezierPath) Transform(m matrix.Matrix) BezierPath {
	res := BezierPath{
		Anchors: make([]BezierAnchor, len(p.Anchors)),
		Closed:  p.Closed,
	}
	for i, a := range p.Anchors {
		b := BezierAnchor{
			Point: Point{
				X: m[0]*a.Point.X + m[2]*a.Point.Y + m[4],
				Y: m[1]*a.Point.X + m[3]*a.Point.Y + m[5],
			},
		}
		if a.HandleIn != nil {
			h := transformOffset(m, *a.HandleIn)
			b.HandleIn = &h
		}
		if a.HandleOut != nil {
			h := transformOffset(m, *a.HandleOut)
			b.HandleOut = &h
		}
		res.Anchors[i] = b
	}
	return res
}

func transformOffset(m matrix.Matrix, o Offset) Offset {
	return Offset{
		X: m[0]*o.X + m[2]*o.Y,
		Y: m[1]*o.X + m[3]*o.Y,
	}
}
