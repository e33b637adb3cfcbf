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
	"math/rand/v2"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestAnchorRoundTrip(t *testing.T) {
	g := DefaultGrid()
	cell := g.IntToFloat(g.CellSize())

	rng := rand.New(rand.NewPCG(7, 8))
	coord := func() float64 { return (rng.Float64() - 0.5) * 200 }
	for range 200 {
		a := BezierAnchor{
			Point:    Point{coord(), coord()},
			HandleIn: &Offset{coord(), coord()},
		}
		if rng.IntN(2) == 0 {
			a.HandleOut = &Offset{coord(), coord()}
		}

		b := a.ToFixed(g).ToFloat(g)
		if d := b.Point.Distance(a.Point); d > cell {
			t.Fatalf("point moved by %g", d)
		}
		if b.HandleIn == nil {
			t.Fatal("in handle lost")
		}
		if d := math.Hypot(b.HandleIn.X-a.HandleIn.X, b.HandleIn.Y-a.HandleIn.Y); d > cell {
			t.Fatalf("in handle moved by %g", d)
		}
		if (a.HandleOut == nil) != (b.HandleOut == nil) {
			t.Fatal("out handle presence changed")
		}
	}
}

func TestPathConversion(t *testing.T) {
	g := DebugGrid()
	p := BezierPath{
		Anchors: []BezierAnchor{
			{Point: Point{0, 0}, HandleOut: &Offset{0, 1}},
			{Point: Point{1, 0}, HandleIn: &Offset{0, 1}},
		},
		Closed: true,
	}
	q := Quantize(g, p.Anchors[1].Point)
	if q != (IntPoint{1 << 13, 0}) {
		t.Errorf("Quantize = %v", q)
	}
	if back := Dequantize(g, q); back != p.Anchors[1].Point {
		t.Errorf("Dequantize = %v", back)
	}

	ip := p.ToFixed(g)
	if !ip.Closed || len(ip.Anchors) != 2 {
		t.Fatalf("ToFixed = %+v", ip)
	}
	if h, ok := ip.Anchors[1].HandleInPoint(); !ok || h != (IntPoint{1 << 13, 1 << 13}) {
		t.Errorf("in handle at %v", h)
	}

	// the float path samples the same points as its fixed counterpart
	fp, err := p.RegularPoints(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	ipPoints, err := ip.RegularPoints(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(fp) != len(ipPoints) {
		t.Fatalf("%d float points, %d fixed points", len(fp), len(ipPoints))
	}
	for i := range fp {
		if fp[i] != ipPoints[i].ToFloat(g) {
			t.Errorf("point %d: %v != %v", i, fp[i], ipPoints[i])
		}
	}

	flat, err := p.Approximate(g, Tolerance{MinCos: 0.95, MinLen: 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(flat) < 4 || flat[0] != p.Anchors[0].Point {
		t.Errorf("Approximate = %v", flat)
	}
}

func TestPoint26_6(t *testing.T) {
	g := DefaultGrid()
	got := g.Point26_6(Point{1.5, -2.25}.ToFixed(g))
	want := fixed.Point26_6{X: 96, Y: -144}
	if got != want {
		t.Errorf("Point26_6 = %v, want %v", got, want)
	}

	huge := g.Point26_6(IntPoint{X: math.MaxInt64, Y: math.MinInt64})
	if huge.X != math.MaxInt32 || huge.Y != math.MinInt32 {
		t.Errorf("Point26_6 does not saturate: %v", huge)
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %g", got)
	}
	if got := p.SqrLength(); got != 25 {
		t.Errorf("SqrLength = %g", got)
	}
	if got := p.Normalized(); math.Abs(got.Length()-1) > 1e-15 {
		t.Errorf("Normalized = %v", got)
	}
	if got := (Point{}).Normalized(); !got.IsZero() {
		t.Errorf("zero Normalized = %v", got)
	}
	if got := p.Dot(Point{-4, 3}); got != 0 {
		t.Errorf("Dot = %g", got)
	}
	if got := PointFromVec(p.Vec2()); got != p {
		t.Errorf("vec round trip = %v", got)
	}
	if got := p.Add(Point{1, 1}).Sub(Point{1, 1}); got != p {
		t.Errorf("Add/Sub = %v", got)
	}
}
