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
	"errors"
	"math/rand/v2"
	"testing"
)

func TestSnap(t *testing.T) {
	g, err := NewGrid(0, 4)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		in, want int64
	}{
		{0, 0},
		{7, 0},
		{8, 16},
		{16, 16},
		{23, 16},
		{24, 32},
		{-7, 0},
		{-8, 0},
		{-9, -16},
		{-24, -16},
		{-25, -32},
	}
	for _, c := range cases {
		if got := g.snap(c.in); got != c.want {
			t.Errorf("snap(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNewGridErrors(t *testing.T) {
	cases := []struct {
		scalePower int
		sizePower  uint
	}{
		{0, 31},
		{60, 3},
		{-63, 0},
	}
	for _, c := range cases {
		_, err := NewGrid(c.scalePower, c.sizePower)
		if !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGrid(%d, %d): got %v, want ErrInvalidGrid",
				c.scalePower, c.sizePower, err)
		}
	}
}

func TestGridValues(t *testing.T) {
	g := DefaultGrid()
	if got := g.CellSize(); got != 16 {
		t.Errorf("CellSize() = %d, want 16", got)
	}
	if got := g.FloatToInt(1); got != 1<<24 {
		t.Errorf("FloatToInt(1) = %d, want %d", got, 1<<24)
	}
	if got := g.IntToFloat(3 << 23); got != 1.5 {
		t.Errorf("IntToFloat(3<<23) = %g, want 1.5", got)
	}
	if got := g.String(); got != "Grid(20, 4)" {
		t.Errorf("String() = %q", got)
	}
	if got := DebugGrid().String(); got != "Grid(10, 3)" {
		t.Errorf("DebugGrid().String() = %q", got)
	}
}

func TestGridRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, g := range []Grid{DefaultGrid(), DebugGrid()} {
		tol := g.IntToFloat(g.CellSize())
		for range 1000 {
			x := (rng.Float64() - 0.5) * 2000
			a := g.FloatToInt(x)
			if !g.IsAligned(a) {
				t.Fatalf("%v: FloatToInt(%g) = %d is not aligned", g, x, a)
			}
			if back := g.IntToFloat(a); back < x-tol || back > x+tol {
				t.Fatalf("%v: %g -> %d -> %g", g, x, a, back)
			}
		}
	}
}
