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

// Package settings holds the configuration of the command line tools.
//
// Settings are read from an optional YAML file and can be overridden by
// CURVE_* environment variables.
package settings

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/curve"
)

// Settings is the complete tool configuration.
type Settings struct {
	Grid      GridConfig      `yaml:"grid"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
}

// GridConfig selects the fixed-point grid, see [curve.NewGrid].
type GridConfig struct {
	ScalePower int  `yaml:"scale_power"`
	SizePower  uint `yaml:"size_power"`
}

// ToleranceConfig mirrors [curve.Tolerance].
type ToleranceConfig struct {
	MinCos float64 `yaml:"min_cos"`
	MinLen int64   `yaml:"min_len"`
}

// SamplingConfig controls regular sampling.
type SamplingConfig struct {
	// SplitFactor is the subdivision depth per edge.  A negative value
	// selects the depth from the estimated curve length.
	SplitFactor int `yaml:"split_factor"`

	// MaxPoints bounds the number of samples per path when the split
	// factor is selected automatically.  Zero or negative means no bound.
	MaxPoints int `yaml:"max_points"`
}

// LoggingConfig controls the diagnostic output of the tools.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // optional rotated log file
}

// OutputConfig controls where the tools write their results.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Defaults returns the built-in configuration.
func Defaults() Settings {
	return Settings{
		Grid:      GridConfig{ScalePower: 20, SizePower: 4},
		Tolerance: ToleranceConfig{MinCos: 0.995, MinLen: 1 << 14},
		Sampling:  SamplingConfig{SplitFactor: -1, MaxPoints: 1 << 12},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		Output:    OutputConfig{Dir: "testdata"},
	}
}

// Environment variables which override the configuration file.
const (
	EnvScalePower  = "CURVE_GRID_SCALE_POWER"
	EnvSizePower   = "CURVE_GRID_SIZE_POWER"
	EnvMinCos      = "CURVE_MIN_COS"
	EnvMinLen      = "CURVE_MIN_LEN"
	EnvSplitFactor = "CURVE_SPLIT_FACTOR"
	EnvMaxPoints   = "CURVE_MAX_POINTS"
	EnvLogLevel    = "CURVE_LOG_LEVEL"
	EnvLogFormat   = "CURVE_LOG_FORMAT"
	EnvLogFile     = "CURVE_LOG_FILE"
	EnvOutputDir   = "CURVE_OUTPUT_DIR"
)

// Load returns the defaults, merged with the YAML file at path and then
// with the environment overrides.  An empty path skips the file.
func Load(path string) (Settings, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		// fields missing from the file keep their default values
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("%s: %w", path, err)
		}
		cfg.normalize()
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// normalize cleans up the string fields.  Fields set to the empty string
// revert to their defaults.
func (cfg *Settings) normalize() {
	def := Defaults()
	clean := func(v *string, fallback string, lower bool) {
		*v = strings.TrimSpace(*v)
		if lower {
			*v = strings.ToLower(*v)
		}
		if *v == "" {
			*v = fallback
		}
	}
	clean(&cfg.Logging.Level, def.Logging.Level, true)
	clean(&cfg.Logging.Format, def.Logging.Format, true)
	clean(&cfg.Logging.File, def.Logging.File, false)
	clean(&cfg.Output.Dir, def.Output.Dir, false)
}

func applyEnvOverrides(cfg *Settings) error {
	if v, ok := lookup(EnvScalePower); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvScalePower, err)
		}
		cfg.Grid.ScalePower = n
	}
	if v, ok := lookup(EnvSizePower); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSizePower, err)
		}
		cfg.Grid.SizePower = uint(n)
	}
	if v, ok := lookup(EnvMinCos); ok {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinCos, err)
		}
		cfg.Tolerance.MinCos = x
	}
	if v, ok := lookup(EnvMinLen); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMinLen, err)
		}
		cfg.Tolerance.MinLen = n
	}
	if v, ok := lookup(EnvSplitFactor); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSplitFactor, err)
		}
		cfg.Sampling.SplitFactor = n
	}
	if v, ok := lookup(EnvMaxPoints); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxPoints, err)
		}
		cfg.Sampling.MaxPoints = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFormat); ok {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.Output.Dir = v
	}
	return nil
}

func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

// CurveGrid returns the configured grid.
func (s Settings) CurveGrid() (curve.Grid, error) {
	return curve.NewGrid(s.Grid.ScalePower, s.Grid.SizePower)
}

// CurveTolerance returns the configured tolerance, after validation.
func (s Settings) CurveTolerance() (curve.Tolerance, error) {
	t := curve.Tolerance{MinCos: s.Tolerance.MinCos, MinLen: s.Tolerance.MinLen}
	if err := t.Validate(); err != nil {
		return curve.Tolerance{}, err
	}
	return t, nil
}

// SplitFactor returns the subdivision depth to use for p.  With automatic
// sampling this is the largest estimate over all edges of p, reduced
// until the edges of p give at most Sampling.MaxPoints samples.
func (s Settings) SplitFactor(p curve.IntBezierPath) (uint32, error) {
	if s.Sampling.SplitFactor >= 0 {
		if s.Sampling.SplitFactor > curve.MaxSplitFactor {
			return 0, fmt.Errorf("%w: %d", curve.ErrSplitFactor, s.Sampling.SplitFactor)
		}
		return uint32(s.Sampling.SplitFactor), nil
	}
	var sf uint32
	for _, spline := range p.Splines() {
		sf = max(sf, curve.EstimateSplitFactor(spline))
	}
	if limit := s.Sampling.MaxPoints; limit > 0 {
		edges := uint64(p.Edges())
		for sf > 0 && edges > uint64(limit)>>sf {
			sf--
		}
	}
	return sf, nil
}
