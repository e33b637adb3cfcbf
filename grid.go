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
	"math"
)

// Grid maps floating point coordinates to fixed-point integers and back.
//
// A float value x is scaled by 2^(scalePower+sizePower) and then snapped to
// a multiple of 2^sizePower, the cell size.  The zero value is not useful;
// use [NewGrid] or [DefaultGrid].
//
// Grid values are immutable and can be shared freely.
type Grid struct {
	sizePower     uint
	scaleToInt    float64 // 2^(scalePower+sizePower)
	scaleToFloat  float64 // 2^-(scalePower+sizePower)
	remainderMask int64   // 2^sizePower - 1
}

// maxGridExponent bounds scalePower+sizePower so that both scale factors
// are normal float64 values and small integers survive the round trip.
const maxGridExponent = 62

// NewGrid returns a grid with 2^scalePower fixed-point units per float
// unit, snapped to cells of 2^sizePower units.
func NewGrid(scalePower int, sizePower uint) (Grid, error) {
	if sizePower >= 31 {
		return Grid{}, fmt.Errorf("%w: size power %d, must be below 31",
			ErrInvalidGrid, sizePower)
	}
	e := scalePower + int(sizePower)
	if e < -maxGridExponent || e > maxGridExponent {
		return Grid{}, fmt.Errorf("%w: total exponent %d outside [%d, %d]",
			ErrInvalidGrid, e, -maxGridExponent, maxGridExponent)
	}
	g := Grid{
		sizePower:     sizePower,
		scaleToInt:    math.Ldexp(1, e),
		scaleToFloat:  math.Ldexp(1, -e),
		remainderMask: 1<<sizePower - 1,
	}
	return g, nil
}

// DefaultGrid returns the grid (20, 4): one float unit is 2^24 fixed-point
// units, snapped to cells of 16.
func DefaultGrid() Grid {
	g, _ := NewGrid(20, 4)
	return g
}

// DebugGrid returns the coarse grid (10, 3), which keeps coordinates small
// enough to read in test output.
func DebugGrid() Grid {
	g, _ := NewGrid(10, 3)
	return g
}

// CellSize returns the snapping cell size in fixed-point units.
func (g Grid) CellSize() int64 {
	return g.remainderMask + 1
}

// IsAligned reports whether a lies on a cell boundary.
func (g Grid) IsAligned(a int64) bool {
	return a&g.remainderMask == 0
}

// snap rounds a to the nearest multiple of the cell size.
// The bit just below the cell boundary decides the rounding direction,
// so exact halves round up.
func (g Grid) snap(a int64) int64 {
	p := g.sizePower
	s := ((a << 1) >> p) & 1
	c := a >> p
	return (c + s) << p
}

// IntToFloat converts a fixed-point value to float.
func (g Grid) IntToFloat(a int64) float64 {
	return float64(a) * g.scaleToFloat
}

// FloatToInt converts a float value to fixed point, snapped to the grid.
// Values whose scaled magnitude exceeds the int64 range are not handled.
func (g Grid) FloatToInt(a float64) int64 {
	return g.snap(int64(a * g.scaleToInt))
}

func (g Grid) String() string {
	e := int(math.Round(math.Log2(g.scaleToInt)))
	return fmt.Sprintf("Grid(%d, %d)", e-int(g.sizePower), g.sizePower)
}
