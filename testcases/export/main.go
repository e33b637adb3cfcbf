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

// Command export writes the flattened test cases to JSON, for comparison
// with other implementations.  Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

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

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		panic(err)
	}
	fname := filepath.Join(cfg.Output.Dir, "flattened.json")
	f, err := os.Create(fname)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := writeJSON(f, cfg); err != nil {
		panic(err)
	}
	logger.Info("wrote test cases", "file", fname)
}

type jsonOutput struct {
	Grid      jsonGrid       `json:"grid"`
	Tolerance jsonTolerance  `json:"tolerance"`
	TestCases []jsonTestCase `json:"testcases"`
}

type jsonGrid struct {
	ScalePower int   `json:"scale_power"`
	SizePower  uint  `json:"size_power"`
	CellSize   int64 `json:"cell_size"`
}

type jsonTolerance struct {
	MinCos float64 `json:"min_cos"`
	MinLen int64   `json:"min_len"`
}

type jsonTestCase struct {
	Name        string        `json:"name"`
	Closed      bool          `json:"closed"`
	Anchors     []jsonAnchor  `json:"anchors"`
	SplitFactor uint32        `json:"split_factor"`
	Regular     [][2]float64  `json:"regular"`
	Adaptive    [][2]float64  `json:"adaptive"`
	Segments    []jsonSegment `json:"segments"`
}

type jsonAnchor struct {
	Point     [2]float64  `json:"point"`
	HandleIn  *[2]float64 `json:"handle_in"`
	HandleOut *[2]float64 `json:"handle_out"`
}

type jsonSegment struct {
	Edge        int    `json:"edge"`
	Step        uint64 `json:"step"`
	SplitFactor uint32 `json:"split_factor"`
}

// writeJSON flattens all test cases with the settings in cfg and writes
// the result to w.
func writeJSON(w io.Writer, cfg settings.Settings) error {
	g, err := cfg.CurveGrid()
	if err != nil {
		return err
	}
	tol, err := cfg.CurveTolerance()
	if err != nil {
		return err
	}

	out := jsonOutput{
		Grid: jsonGrid{
			ScalePower: cfg.Grid.ScalePower,
			SizePower:  cfg.Grid.SizePower,
			CellSize:   g.CellSize(),
		},
		Tolerance: jsonTolerance{MinCos: tol.MinCos, MinLen: tol.MinLen},
		TestCases: []jsonTestCase{},
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := toJSON(g, tol, cfg, tc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			jtc.Name = name
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(g curve.Grid, tol curve.Tolerance, cfg settings.Settings, tc testcases.TestCase) (jsonTestCase, error) {
	p := tc.Geometry().ToFixed(g)

	sf, err := cfg.SplitFactor(p)
	if err != nil {
		return jsonTestCase{}, err
	}
	regular, err := p.RegularPoints(sf)
	if err != nil {
		return jsonTestCase{}, err
	}
	shorts, err := p.ApproximateSegments(tol)
	if err != nil {
		return jsonTestCase{}, err
	}
	adaptive, err := p.Approximate(tol)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Closed:      p.Closed,
		Anchors:     []jsonAnchor{},
		SplitFactor: sf,
		Regular:     pointsToJSON(g, regular),
		Adaptive:    pointsToJSON(g, adaptive),
		Segments:    []jsonSegment{},
	}
	for _, a := range p.ToFloat(g).Anchors {
		ja := jsonAnchor{Point: [2]float64{a.Point.X, a.Point.Y}}
		if h, ok := a.HandleInPoint(); ok {
			ja.HandleIn = &[2]float64{h.X, h.Y}
		}
		if h, ok := a.HandleOutPoint(); ok {
			ja.HandleOut = &[2]float64{h.X, h.Y}
		}
		jtc.Anchors = append(jtc.Anchors, ja)
	}
	for _, s := range shorts {
		jtc.Segments = append(jtc.Segments, jsonSegment{
			Edge:        s.Edge,
			Step:        s.Step,
			SplitFactor: s.SplitFactor,
		})
	}
	return jtc, nil
}

func pointsToJSON(g curve.Grid, points []curve.IntPoint) [][2]float64 {
	res := make([][2]float64, len(points))
	for i, q := range points {
		p := q.ToFloat(g)
		res[i] = [2]float64{p.X, p.Y}
	}
	return res
}
