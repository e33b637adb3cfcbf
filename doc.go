// Package curve implements Bézier paths on an integer grid and flattens
// them into polylines.
//
// Paths are authored in floating point ([BezierPath]) and quantized onto a
// fixed-point [Grid] before any evaluation ([IntBezierPath]).  Each edge
// between two anchors becomes a [Spline]: a straight [LineSpline], a
// [CubeSpline] with one control point, or a [QuadSpline] with two.
// Curves can be sampled at a fixed resolution ([RegularPoints]) or
// flattened adaptively ([Approximate]), where segments are bisected until
// the angle between neighbouring chords is below a tolerance or the
// segments become too short to matter.
//
// All evaluation uses integer arithmetic, so results are identical on all
// platforms.
package curve

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
