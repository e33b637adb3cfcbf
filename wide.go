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
	"math/bits"
)

// uint128 is an unsigned 128-bit integer, used for intermediate products
// which do not fit into 64 bits.
type uint128 struct {
	hi, lo uint64
}

func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi: hi, lo: lo}
}

func (x uint128) add(y uint128) uint128 {
	lo, c := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, c)
	return uint128{hi: hi, lo: lo}
}

func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// log2 returns floor(log2(x)), or 0 for x == 0.
func (x uint128) log2() uint32 {
	if x.hi != 0 {
		return uint32(64 + bits.Len64(x.hi) - 1)
	}
	return ilog2(x.lo)
}

// isqrt returns floor(sqrt(x)).
func (x uint128) isqrt() uint64 {
	if x.hi == 0 && x.lo == 0 {
		return 0
	}

	// The float estimate is within a few ulps; one Newton step brings it
	// to within one unit and the loops below fix the rest.
	f := math.Sqrt(math.Ldexp(float64(x.hi), 64) + float64(x.lo))
	var s uint64
	switch {
	case f >= 1<<64:
		s = math.MaxUint64
	case f < 1:
		s = 1
	default:
		s = uint64(f)
	}
	if x.hi < s {
		q, _ := bits.Div64(x.hi, x.lo, s)
		s = s/2 + q/2 + (s & q & 1)
	}
	for mul64(s, s).cmp(x) > 0 {
		s--
	}
	for s < math.MaxUint64 && mul64(s+1, s+1).cmp(x) <= 0 {
		s++
	}
	return s
}

// ilog2 returns floor(log2(x)), or 0 for x == 0.
func ilog2(x uint64) uint32 {
	if x == 0 {
		return 0
	}
	return uint32(bits.Len64(x) - 1)
}

// abs64 returns |x| as an unsigned value; this is exact for math.MinInt64.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// sqrLength128 returns x*x + y*y without overflow.
func sqrLength128(x, y int64) uint128 {
	ax, ay := abs64(x), abs64(y)
	return mul64(ax, ax).add(mul64(ay, ay))
}

// mulShift returns floor(x * step / 2^k), computed with a 128-bit
// intermediate product.  The result wraps if it does not fit into int64.
// k must be below 64.
func mulShift(x int64, step uint64, k uint32) int64 {
	p := mul64(abs64(x), step)
	q := p.lo>>k | p.hi<<(64-k) // p.hi<<64 is 0 in Go
	if x >= 0 {
		return int64(q)
	}
	// floor of a negative quotient rounds away from zero
	if p.lo&(1<<k-1) != 0 {
		q++
	}
	return -int64(q)
}
