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
	"math"
)

// RegularPoints returns the points of s at the evenly spaced parameters
// i/2^splitFactor.  The start point is included if withStart is set, the
// end point if withEnd is set, so the sequence has between 2^splitFactor-1
// and 2^splitFactor+1 elements.
//
// The sequence is lazy and can be iterated any number of times.
func RegularPoints(s Spline, splitFactor uint32, withStart, withEnd bool) (iter.Seq[IntPoint], error) {
	if splitFactor > MaxSplitFactor {
		return nil, fmt.Errorf("%w: %d > %d", ErrSplitFactor, splitFactor, MaxSplitFactor)
	}

	count := uint64(1) << splitFactor
	if withEnd {
		count++
	}
	first := uint64(1)
	if withStart {
		first = 0
	}

	seq := func(yield func(IntPoint) bool) {
		for i := first; i < count; i++ {
			if !yield(s.SplitAt(i, splitFactor)) {
				return
			}
		}
	}
	return seq, nil
}

// appendRegular appends the points of s at parameters i/2^splitFactor
// for 0 <= i < 2^splitFactor.
func appendRegular(points []IntPoint, s Spline, splitFactor uint32) []IntPoint {
	n := uint64(1) << splitFactor
	for i := range n {
		points = append(points, s.SplitAt(i, splitFactor))
	}
	return points
}

// avgLenSplitFactor is the subdivision used for length estimates.
const avgLenSplitFactor = 4

// AvgLength estimates the length of s as the total length of the
// polyline through its regular points at the given split factor.
func AvgLength(s Spline, splitFactor uint32) uint64 {
	if _, isLine := s.(LineSpline); isLine {
		splitFactor = 0
	}
	splitFactor = min(splitFactor, 24)

	n := uint64(1) << splitFactor
	var total float64
	prev := s.Start()
	for i := uint64(1); i <= n; i++ {
		p := s.SplitAt(i, splitFactor)
		total += math.Hypot(float64(p.X-prev.X), float64(p.Y-prev.Y))
		prev = p
	}
	if total >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(total)
}

// EstimateSplitFactor returns a subdivision depth for regular sampling
// which gives chords of roughly four grid units along s.
func EstimateSplitFactor(s Spline) uint32 {
	l := AvgLength(s, avgLenSplitFactor)
	if l < 4 {
		return 0
	}
	return ilog2(l) - 2
}
