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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// geomCases are built as geom paths and converted on load.
var geomCases = []TestCase{
	{
		Name:   "quadratic_open",
		Path:   fromGeom(quadraticCurveOpen(10, 90, 60, 10, 110, 90)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "cubic_open",
		Path:   fromGeom(cubicCurveOpen(10, 90, 30, 10, 90, 10, 110, 90)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "s_curve_quadratic",
		Path:   fromGeom(sCurveQuadratic(10, 50, 110, 50)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "circle",
		Path:   fromGeom(circle(60, 60, 40)),
		Width:  120,
		Height: 120,
	},
	{
		Name:   "ellipse",
		Path:   fromGeom(ellipse(60, 50, 50, 20)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "ellipse_rotate_30deg",
		Path:   fromGeom(ellipse(0, 0, 50, 20)),
		Width:  120,
		Height: 120,
		CTM:    matrix.RotateDeg(30).Translate(60, 60),
	},
	{
		Name:   "circle_scale_10x",
		Path:   fromGeom(circle(0, 0, 5)),
		Width:  120,
		Height: 120,
		CTM:    matrix.Scale(10, 10).Translate(60, 60),
	},
}

// quadraticCurveOpen builds an open path with a quadratic Bezier curve.
func quadraticCurveOpen(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		QuadTo(vec.Vec2{X: cx, Y: cy}, vec.Vec2{X: x2, Y: y2})
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		CubeTo(vec.Vec2{X: c1x, Y: c1y}, vec.Vec2{X: c2x, Y: c2y}, vec.Vec2{X: x2, Y: y2})
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x1, Y: y1}).
		QuadTo(vec.Vec2{X: (x1 + midX) / 2, Y: y1 - 40}, vec.Vec2{X: midX, Y: midY}). // first curves up
		QuadTo(vec.Vec2{X: (midX + x2) / 2, Y: y2 + 40}, vec.Vec2{X: x2, Y: y2}).     // second curves down
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
// The path returns to its start point before closing.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + rx, Y: cy}). // start at right
		CubeTo(vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry}).
		CubeTo(vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - rx, Y: cy}).
		CubeTo(vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry}).
		CubeTo(vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + rx, Y: cy}).
		Close()
}
