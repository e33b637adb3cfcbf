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

// Command genpdf plots the test cases.
// For every test case it writes a PDF showing the handles, the exact
// curve and the adaptive polyline with its vertices.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/curve"
	"seehuhn.de/go/curve/internal/settings"
	"seehuhn.de/go/curve/testcases"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	cfg, err := settings.Load(*configFile)
	if err != nil {
		panic(err)
	}
	logger, closeLog := settings.NewLogger(cfg.Logging, os.Stderr)
	defer closeLog()
	curve.SetLogger(logger)

	g, err := cfg.CurveGrid()
	if err != nil {
		panic(err)
	}
	tol, err := cfg.CurveTolerance()
	if err != nil {
		panic(err)
	}

	plotDir := filepath.Join(cfg.Output.Dir, "plots")
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(plotDir, name+".pdf")

			n, err := generatePDF(tc, g, tol, pdfPath)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			logger.Info("plotted", slog.String("case", name), slog.Int("vertices", n))
		}
	}
}

// generatePDF writes the plot for tc and returns the number of polyline
// vertices.
func generatePDF(tc testcases.TestCase, g curve.Grid, tol curve.Tolerance, pdfPath string) (int, error) {
	geom := tc.Geometry()
	polyline, err := geom.Approximate(g, tol)
	if err != nil {
		return 0, err
	}

	// Page size in points
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return 0, err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	// handles
	var spokes [][2]curve.Point
	for _, a := range geom.Anchors {
		for _, h := range handles(a) {
			spokes = append(spokes, [2]curve.Point{a.Point, h})
		}
	}
	if len(spokes) > 0 {
		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(0.3)
		page.SetLineDash([]float64{1, 1}, 0)
		for _, s := range spokes {
			page.MoveTo(s[0].X, s[0].Y)
			page.LineTo(s[1].X, s[1].Y)
		}
		page.Stroke()
		page.SetLineDash(nil, 0)
	}

	// exact curve - PDF doesn't support quadratic segments
	page.SetStrokeColor(color.DeviceGray(0.75))
	page.SetLineWidth(2)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	for cmd, pts := range geom.Path().Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	page.Stroke()

	// flattened polyline
	if len(polyline) > 0 {
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(0.4)
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineJoin(graphics.LineJoinMiter)
		page.SetMiterLimit(10)
		page.MoveTo(polyline[0].X, polyline[0].Y)
		for _, p := range polyline[1:] {
			page.LineTo(p.X, p.Y)
		}
		if geom.Closed {
			page.ClosePath()
		}
		page.Stroke()

		page.SetFillColor(color.DeviceGray(0))
		for _, p := range polyline {
			page.Rectangle(p.X-0.6, p.Y-0.6, 1.2, 1.2)
		}
		page.Fill()
	}

	return len(polyline), page.Close()
}

func handles(a curve.BezierAnchor) []curve.Point {
	var res []curve.Point
	if h, ok := a.HandleInPoint(); ok {
		res = append(res, h)
	}
	if h, ok := a.HandleOutPoint(); ok {
		res = append(res, h)
	}
	return res
}
