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

// Package testcases contains reference curves shared by the tests and by
// the export and genpdf tools.
package testcases

import (
	"seehuhn.de/go/curve"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// TestCase defines a single reference curve.
type TestCase struct {
	Name   string           // lowercase a-z, 0-9 and _ only
	Path   curve.BezierPath // the geometry, in float units
	Width  int              // plot width in points
	Height int              // plot height in points
	CTM    matrix.Matrix    // transformation matrix (zero-value means no transform)
}

// Geometry returns the path of tc with the CTM applied.
func (tc TestCase) Geometry() curve.BezierPath {
	if tc.CTM == (matrix.Matrix{}) || tc.CTM == matrix.Identity {
		return tc.Path
	}
	return tc.Path.Transform(tc.CTM)
}

// pt is a helper to create a curve.Point from x, y coordinates.
func pt(x, y float64) curve.Point {
	return curve.Point{X: x, Y: y}
}

// corner returns an anchor without handles.
func corner(x, y float64) curve.BezierAnchor {
	return curve.BezierAnchor{Point: pt(x, y)}
}

// smooth returns an anchor with collinear handles: the outgoing handle at
// offset (dx, dy), the incoming handle mirrored.
func smooth(x, y, dx, dy float64) curve.BezierAnchor {
	return curve.BezierAnchor{
		Point:     pt(x, y),
		HandleIn:  &curve.Offset{X: -dx, Y: -dy},
		HandleOut: &curve.Offset{X: dx, Y: dy},
	}
}

// fromGeom converts a geom path with a single subpath.  It panics on
// malformed input, since fixtures are fixed at compile time.
func fromGeom(p *path.Data) curve.BezierPath {
	paths, err := curve.PathsFromGeom(p.Iter())
	if err != nil {
		panic(err)
	}
	if len(paths) != 1 {
		panic("testcases: expected exactly one subpath")
	}
	return paths[0]
}
