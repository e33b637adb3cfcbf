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
	"math"

	"seehuhn.de/go/curve"
)

var pathCases = []TestCase{
	{
		Name:   "diamond",
		Path:   diamond(60, 60, 40, 4),
		Width:  120,
		Height: 120,
	},
	{
		Name:   "circle",
		Path:   kappaCircle(60, 60, 40),
		Width:  120,
		Height: 120,
	},
	{
		Name:   "star",
		Path:   star(60, 60, 45, 20, 5),
		Width:  120,
		Height: 120,
	},
	{
		Name: "polyline_open",
		Path: curve.BezierPath{
			Anchors: []curve.BezierAnchor{
				corner(10, 10), corner(40, 90), corner(70, 20), corner(110, 80),
			},
		},
		Width:  120,
		Height: 100,
	},
	{
		Name: "mixed_open",
		Path: curve.BezierPath{
			Anchors: []curve.BezierAnchor{
				corner(10, 50),
				smooth(40, 20, 15, 0),
				corner(70, 50),
				withIn(corner(110, 80), 0, -40),
			},
		},
		Width:  120,
		Height: 100,
	},
	{
		Name: "teardrop",
		Path: curve.BezierPath{
			Anchors: []curve.BezierAnchor{
				{
					Point:     pt(60, 10),
					HandleIn:  &curve.Offset{X: -70, Y: 90},
					HandleOut: &curve.Offset{X: 70, Y: 90},
				},
			},
			Closed: true,
		},
		Width:  120,
		Height: 100,
	},
	{
		Name: "single_point",
		Path: curve.BezierPath{
			Anchors: []curve.BezierAnchor{corner(60, 50)},
		},
		Width:  120,
		Height: 100,
	},
}

// diamond builds a closed path through the four points at distance r
// from (cx, cy) along the axes.  Every anchor has handles of length h
// tangent to the circle through the anchors.
func diamond(cx, cy, r, h float64) curve.BezierPath {
	return curve.BezierPath{
		Anchors: []curve.BezierAnchor{
			smooth(cx-r, cy, 0, h),
			smooth(cx, cy+r, h, 0),
			smooth(cx+r, cy, 0, -h),
			smooth(cx, cy-r, -h, 0),
		},
		Closed: true,
	}
}

// kappaCircle builds a circle from four anchors whose handles give the
// usual cubic approximation of a quarter circle.
func kappaCircle(cx, cy, r float64) curve.BezierPath {
	return diamond(cx, cy, r, r*kappa)
}

// star builds a closed polygon alternating between the outer and inner
// radius.
func star(cx, cy, outer, inner float64, n int) curve.BezierPath {
	var res curve.BezierPath
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi/2 + float64(i)*math.Pi/float64(n)
		res.Anchors = append(res.Anchors, corner(cx+r*math.Cos(phi), cy+r*math.Sin(phi)))
	}
	res.Closed = true
	return res
}
