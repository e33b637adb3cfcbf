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

import "errors"

var (
	// ErrInvalidGrid is returned by [NewGrid] for exponents which do not
	// fit into 64-bit arithmetic.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidTolerance is returned when flattening parameters would
	// not guarantee termination.
	ErrInvalidTolerance = errors.New("invalid tolerance")

	// ErrSplitFactor is returned for subdivision depths above
	// [MaxSplitFactor].
	ErrSplitFactor = errors.New("split factor out of range")

	// ErrUnsupportedCommand is returned when a geom path contains a
	// command which has no Bézier anchor representation.
	ErrUnsupportedCommand = errors.New("unsupported path command")
)
