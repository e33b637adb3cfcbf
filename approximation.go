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

// Tolerance controls adaptive flattening.
type Tolerance struct {
	// MinCos is the cosine of the largest allowed angle between a chord
	// and its neighbours (or the curve tangent at either end).  Values
	// closer to 1 give more segments.  It is used with a resolution of
	// 1/1024.  Must not exceed 1.
	MinCos float64

	// MinLen is the length in grid units below which a segment is never
	// split, whatever its angle.  Only the bit length of MinLen matters.
	// Must be in the range 1 <= MinLen < 2^31.
	//
	// Independent of MinLen, chords spanning at most one grid unit per
	// coordinate are not split again, and neither are chords which a
	// split leaves unchanged.
	MinLen int64
}

// Validate checks that t guarantees termination of the solver.
func (t Tolerance) Validate() error {
	switch {
	case math.IsNaN(t.MinCos) || t.MinCos > 1:
		return fmt.Errorf("%w: MinCos %g, must be at most 1", ErrInvalidTolerance, t.MinCos)
	case t.MinLen <= 0:
		return fmt.Errorf("%w: MinLen %d, must be positive", ErrInvalidTolerance, t.MinLen)
	case t.MinLen >= 1<<31:
		return fmt.Errorf("%w: MinLen %d, must be below 2^31", ErrInvalidTolerance, t.MinLen)
	}
	return nil
}

// threshold returns MinCos in units of DirUnit^2, the scale of dot
// products between normalized directions.
func (t Tolerance) threshold() int64 {
	c := max(t.MinCos, -1)
	return int64(math.Round(c*DirUnit)) << dirBits
}

// Short is a chord of a flattened spline.
//
// The chord runs from A to B and covers the parameter range
// [Step/2^SplitFactor, (Step+1)/2^SplitFactor] of the spline.  Dir is
// B-A normalized to length DirUnit.
type Short struct {
	Step        uint64
	SplitFactor uint32
	Dir         IntPoint
	A, B        IntPoint

	// Edge is the index of the spline within its path.  It is zero for
	// results of [Approximate].
	Edge int
}

// Approximate flattens s into chords.
//
// Starting from the single chord Start-End, every chord whose direction
// differs from the direction of its predecessor or successor by more than
// the tolerance is bisected at the parameter midpoint.  The tangents at
// the ends of s stand in for the missing neighbours of the first and last
// chord.  A chord shorter than t.MinLen is not split further.  The
// process is repeated until no chord needs splitting.
//
// A spline whose control points all coincide gives a single chord of
// length zero.
func Approximate(s Spline, t Tolerance) ([]Short, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return approximate(s, t), nil
}

// ApproximatePoints flattens s as [Approximate] does and returns the
// vertices of the resulting polyline, including both end points.
func ApproximatePoints(s Spline, t Tolerance) ([]IntPoint, error) {
	shorts, err := Approximate(s, t)
	if err != nil {
		return nil, err
	}
	return appendShortPoints(nil, shorts), nil
}

func appendShortPoints(points []IntPoint, shorts []Short) []IntPoint {
	for _, s := range shorts {
		points = append(points, s.A)
	}
	return append(points, shorts[len(shorts)-1].B)
}

func approximate(s Spline, t Tolerance) []Short {
	a, b := s.Start(), s.End()
	root := Short{Dir: b.Sub(a).Normalized10Bit(), A: a, B: b}

	bbox := s.Bounds()
	if bbox.Min == bbox.Max {
		return []Short{root}
	}

	sv := &solver{
		minCos:      t.threshold(),
		startDir:    s.StartDir(),
		endDir:      s.EndDir(),
		minLenPower: ilog2(uint64(t.MinLen)),
		spline:      s,
		segments:    newLinkList([]Short{root}),
	}
	res := sv.process()

	Logger().Debug("approximate",
		"rounds", sv.rounds,
		"splits", sv.splits,
		"segments", len(res))

	return res
}

// solver holds the working state of one Approximate call.
type solver struct {
	minCos           int64
	startDir, endDir IntPoint
	minLenPower      uint32
	spline           Spline
	segments         *linkList[Short]

	rounds, splits int
}

func (sv *solver) process() []Short {
	queue := make([]uint32, 1, 16)
	queue[0] = 0
	toSplit := make([]uint32, 0, 16)

	for len(queue) > 0 {
		sv.rounds++

		// decide for the whole round before any chord changes, so that
		// every test sees the directions of the previous round
		for _, index := range queue {
			if sv.splitTest(index) {
				toSplit = append(toSplit, index)
			}
		}

		queue = queue[:0]
		for _, index := range toSplit {
			queue = sv.split(index, queue)
		}
		toSplit = toSplit[:0]
	}

	res := make([]Short, 0, sv.segments.len())
	for _, short := range sv.segments.walk(0) {
		res = append(res, short)
	}
	return res
}

// splitTest reports whether the chord at index bends too sharply against
// one of its neighbours.
func (sv *solver) splitTest(index uint32) bool {
	n := sv.segments.get(index)
	dir := n.item.Dir

	prevDir := sv.startDir
	if n.prev != emptyRef {
		prevDir = sv.segments.get(n.prev).item.Dir
	}
	if dir.Dot(prevDir) < sv.minCos {
		return true
	}

	nextDir := sv.endDir
	if n.next != emptyRef {
		nextDir = sv.segments.get(n.next).item.Dir
	}
	return dir.Dot(nextDir) < sv.minCos
}

// split bisects the chord at index, using the point of the spline at the
// parameter midpoint.  Children which are long enough for further
// splitting are appended to queue.
func (sv *solver) split(index uint32, queue []uint32) []uint32 {
	short := sv.segments.get(index).item
	sv.splits++

	k := short.SplitFactor + 1
	step := short.Step << 1
	m := sv.spline.SplitAt(step+1, k)
	ma := m.Sub(short.A)
	bm := short.B.Sub(m)

	s0 := Short{
		Step:        step,
		SplitFactor: k,
		Dir:         ma.Normalized10Bit(),
		A:           short.A,
		B:           m,
	}
	s1 := Short{
		Step:        step + 1,
		SplitFactor: k,
		Dir:         bm.Normalized10Bit(),
		A:           m,
		B:           short.B,
	}

	i0, i1 := sv.segments.splitAt(index, s0, s1)

	if k >= MaxSplitFactor {
		return queue
	}
	if sv.refinable(ma, bm) {
		queue = append(queue, i0)
	}
	if sv.refinable(bm, ma) {
		queue = append(queue, i1)
	}
	return queue
}

// refinable reports whether a child chord is worth testing again.  The
// sibling is the other half of the same split.  A chord within one grid
// unit in both coordinates cannot shrink, and a zero sibling means the
// split reproduced the parent chord on the grid.
func (sv *solver) refinable(chord, sibling IntPoint) bool {
	if sibling.IsZero() || (abs64(chord.X) <= 1 && abs64(chord.Y) <= 1) {
		return false
	}
	return !chord.isSmall(sv.minLenPower)
}
