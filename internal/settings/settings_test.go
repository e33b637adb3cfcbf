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

package settings

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/curve"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "curve.yaml")
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Defaults() {
		t.Errorf("Load(\"\") = %#v, want defaults", cfg)
	}

	g, err := cfg.CurveGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g != curve.DefaultGrid() {
		t.Errorf("default grid = %v, want %v", g, curve.DefaultGrid())
	}
	if _, err := cfg.CurveTolerance(); err != nil {
		t.Errorf("default tolerance: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	fname := writeConfig(t, `
grid:
  scale_power: 10
  size_power: 3
tolerance:
  min_cos: 0.9
sampling:
  split_factor: 0
logging:
  level: DEBUG
`)
	cfg, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid != (GridConfig{ScalePower: 10, SizePower: 3}) {
		t.Errorf("Grid = %#v", cfg.Grid)
	}
	if cfg.Tolerance.MinCos != 0.9 {
		t.Errorf("MinCos = %g, want 0.9", cfg.Tolerance.MinCos)
	}
	if cfg.Tolerance.MinLen != Defaults().Tolerance.MinLen {
		t.Errorf("MinLen = %d, want default", cfg.Tolerance.MinLen)
	}
	if cfg.Sampling.SplitFactor != 0 {
		t.Errorf("SplitFactor = %d, want explicit 0", cfg.Sampling.SplitFactor)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.Output.Dir != "testdata" {
		t.Errorf("Output.Dir = %q, want default", cfg.Output.Dir)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
	if _, err := Load(writeConfig(t, "grid: [1, 2")); err == nil {
		t.Error("malformed YAML accepted")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvScalePower, "12")
	t.Setenv(EnvMinLen, "256")
	t.Setenv(EnvSplitFactor, "3")
	t.Setenv(EnvMaxPoints, "100")
	t.Setenv(EnvLogLevel, "Warn")
	t.Setenv(EnvOutputDir, " out ")

	fname := writeConfig(t, "grid:\n  scale_power: 8\n")
	cfg, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid.ScalePower != 12 {
		t.Errorf("ScalePower = %d, want env value 12", cfg.Grid.ScalePower)
	}
	if cfg.Tolerance.MinLen != 256 {
		t.Errorf("MinLen = %d, want 256", cfg.Tolerance.MinLen)
	}
	if cfg.Sampling.SplitFactor != 3 {
		t.Errorf("SplitFactor = %d, want 3", cfg.Sampling.SplitFactor)
	}
	if cfg.Sampling.MaxPoints != 100 {
		t.Errorf("MaxPoints = %d, want 100", cfg.Sampling.MaxPoints)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "warn")
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "out")
	}
}

func TestEnvOverrideInvalid(t *testing.T) {
	t.Setenv(EnvMinCos, "very")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), EnvMinCos) {
		t.Errorf("invalid %s: got %v", EnvMinCos, err)
	}
}

func TestLoadExplicitZero(t *testing.T) {
	fname := writeConfig(t, `
grid:
  scale_power: 0
  size_power: 0
tolerance:
  min_cos: 0
`)
	cfg, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Grid != (GridConfig{}) {
		t.Errorf("Grid = %#v, want explicit zeros", cfg.Grid)
	}
	if cfg.Tolerance.MinCos != 0 {
		t.Errorf("MinCos = %g, want explicit 0", cfg.Tolerance.MinCos)
	}
	if cfg.Tolerance.MinLen != Defaults().Tolerance.MinLen {
		t.Errorf("MinLen = %d, want default", cfg.Tolerance.MinLen)
	}

	g, err := cfg.CurveGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g.String() != "Grid(0, 0)" {
		t.Errorf("CurveGrid() = %v", g)
	}
	if _, err := cfg.CurveTolerance(); err != nil {
		t.Errorf("CurveTolerance() = %v", err)
	}
}

func TestLoadEmptyStrings(t *testing.T) {
	fname := writeConfig(t, `
logging:
  level: "  "
  format: ""
output:
  dir: ""
`)
	cfg, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Defaults() {
		t.Errorf("empty strings changed settings: %#v", cfg)
	}
}

func TestInvalidValues(t *testing.T) {
	cfg := Defaults()
	cfg.Grid.SizePower = 40
	if _, err := cfg.CurveGrid(); !errors.Is(err, curve.ErrInvalidGrid) {
		t.Errorf("CurveGrid: got %v, want ErrInvalidGrid", err)
	}

	cfg = Defaults()
	cfg.Tolerance.MinLen = 0
	if _, err := cfg.CurveTolerance(); !errors.Is(err, curve.ErrInvalidTolerance) {
		t.Errorf("CurveTolerance: got %v, want ErrInvalidTolerance", err)
	}

	cfg = Defaults()
	cfg.Sampling.SplitFactor = 63
	if _, err := cfg.SplitFactor(curve.IntBezierPath{}); !errors.Is(err, curve.ErrSplitFactor) {
		t.Errorf("SplitFactor: got %v, want ErrSplitFactor", err)
	}
}

func TestSplitFactorAuto(t *testing.T) {
	p := curve.IntBezierPath{
		Anchors: []curve.IntBezierAnchor{
			{Point: curve.IntPoint{X: 0, Y: 0}},
			{Point: curve.IntPoint{X: 100, Y: 100}},
			{Point: curve.IntPoint{X: 101, Y: 100}},
		},
	}
	cfg := Defaults()
	sf, err := cfg.SplitFactor(p)
	if err != nil {
		t.Fatal(err)
	}
	// the longest edge has length 141
	if sf != 5 {
		t.Errorf("SplitFactor = %d, want 5", sf)
	}
}

func TestSplitFactorMaxPoints(t *testing.T) {
	p := curve.IntBezierPath{
		Anchors: []curve.IntBezierAnchor{
			{Point: curve.IntPoint{X: 0, Y: 0}},
			{Point: curve.IntPoint{X: 100, Y: 100}},
			{Point: curve.IntPoint{X: 101, Y: 100}},
		},
	}
	cases := []struct {
		maxPoints int
		want      uint32
	}{
		{0, 5},
		{64, 5},
		{63, 4},
		{40, 4},
		{3, 0},
		{1, 0},
	}
	for _, c := range cases {
		cfg := Defaults()
		cfg.Sampling.MaxPoints = c.maxPoints
		sf, err := cfg.SplitFactor(p)
		if err != nil {
			t.Fatal(err)
		}
		if sf != c.want {
			t.Errorf("MaxPoints %d: SplitFactor = %d, want %d", c.maxPoints, sf, c.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	fname := filepath.Join(t.TempDir(), "curve.log")
	logger, closeLog := NewLogger(LoggingConfig{Level: "warn", File: fname}, buf)

	logger.Info("hidden")
	logger.Warn("shown", "n", 7)
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(buf.String(), "n=7") {
		t.Errorf("console output %q lacks attribute", buf.String())
	}

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"shown"`) {
		t.Errorf("log file %q lacks record", data)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
