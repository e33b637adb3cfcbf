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

import "seehuhn.de/go/curve"

// splineCases hold a single edge each.
var splineCases = []TestCase{
	{
		Name:   "line",
		Path:   edge(corner(10, 10), corner(110, 90)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "one_handle",
		Path:   edge(withOut(corner(10, 10), 0, 80), corner(110, 90)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "one_handle_in",
		Path:   edge(corner(10, 10), withIn(corner(110, 10), 0, 80)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "arch",
		Path:   edge(withOut(corner(10, 10), 0, 50), withIn(corner(110, 10), 0, 50)),
		Width:  120,
		Height: 70,
	},
	{
		Name:   "s_curve",
		Path:   edge(withOut(corner(10, 50), 40, 60), withIn(corner(110, 50), -40, -60)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "loop",
		Path:   edge(withOut(corner(20, 20), 120, 60), withIn(corner(100, 20), -120, 60)),
		Width:  120,
		Height: 80,
	},
	{
		Name:   "handles_on_ends",
		Path:   edge(withOut(corner(10, 10), 0, 0), withIn(corner(110, 90), 0, 0)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "degenerate",
		Path:   edge(corner(60, 50), corner(60, 50)),
		Width:  120,
		Height: 100,
	},
	{
		Name:   "tiny",
		Path:   edge(withOut(corner(60, 50), 0.0001, 0.0002), corner(60.0002, 50)),
		Width:  120,
		Height: 100,
	},
}

// edge returns the open path from a to b.
func edge(a, b curve.BezierAnchor) curve.BezierPath {
	return curve.BezierPath{Anchors: []curve.BezierAnchor{a, b}}
}

// withIn returns a with its incoming handle at offset (dx, dy).
func withIn(a curve.BezierAnchor, dx, dy float64) curve.BezierAnchor {
	a.HandleIn = &curve.Offset{X: dx, Y: dy}
	return a
}

// withOut returns a with its outgoing handle at offset (dx, dy).
func withOut(a curve.BezierAnchor, dx, dy float64) curve.BezierAnchor {
	a.HandleOut = &curve.Offset{X: dx, Y: dy}
	return a
}
