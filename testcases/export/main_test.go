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

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"seehuhn.de/go/curve"
	"seehuhn.de/go/curve/internal/settings"
)

func TestOutputConformsToSchema(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeJSON(buf, settings.Defaults()); err != nil {
		t.Fatal(err)
	}

	schemaBytes, err := os.ReadFile("flattened.schema.json")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	docLoader := gojsonschema.NewBytesLoader(buf.Bytes())

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		t.Fatalf("schema validate error: %v", err)
	}
	if !result.Valid() {
		for _, e := range result.Errors() {
			t.Logf("schema error: %s", e)
		}
		t.Fatalf("output does not conform to schema")
	}
}

func TestOutputPointCounts(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Sampling.SplitFactor = 2

	buf := &bytes.Buffer{}
	if err := writeJSON(buf, cfg); err != nil {
		t.Fatal(err)
	}
	var out jsonOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}

	found := false
	for _, tc := range out.TestCases {
		n := len(tc.Anchors)
		want := (n-1)<<2 + 1
		if tc.Closed {
			want = n << 2
		}
		if len(tc.Regular) != want {
			t.Errorf("%s: %d regular points, want %d", tc.Name, len(tc.Regular), want)
		}
		if len(tc.Adaptive) == 0 {
			t.Errorf("%s: no adaptive points", tc.Name)
		}
		if tc.Name == "path_diamond" {
			found = true
		}
	}
	if !found {
		t.Error("path_diamond missing from output")
	}
}

func TestInvalidTolerance(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Tolerance.MinLen = -1
	err := writeJSON(&bytes.Buffer{}, cfg)
	if !errors.Is(err, curve.ErrInvalidTolerance) {
		t.Errorf("got %v, want ErrInvalidTolerance", err)
	}
}
