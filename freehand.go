// seehuhn.de/go/freehand - pressure-sensitive freehand strokes
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

// Package freehand computes the outlines of pressure-sensitive freehand
// strokes.
//
// The input is a time ordered sequence of points, as recorded from a mouse,
// a touch screen or a stylus, optionally with pressure. The output is a
// closed polygon which, when filled, looks like an ink stroke whose width
// follows the pressure or the drawing speed.
//
// Stroke generation runs in two stages. [StrokePoints] cleans up and
// resamples the input and assigns a pressure to every point.
// [OutlinePoints] then offsets these points to both sides of the stroke and
// adds caps, tapers and corner pivots. [GetStroke] runs both stages. For
// strokes which are still being drawn, a [Stroker] can be used to avoid
// repeated allocations.
//
// The package only computes geometry. Rendering the outline is left to the
// caller; any polygon filler using the nonzero winding rule will do.
package freehand

//go:generate go run ./testcases/export

import "seehuhn.de/go/geom/vec"

// GetStroke computes the outline polygon of a stroke through the given
// input points. This is [Normalize], [StrokePoints] and [OutlinePoints] in
// sequence. The points can be a slice of any sample type; use []Sample to
// mix different shapes in one stroke.
//
// Invalid options or input values are reported as a [*ValidationError]
// before any geometry is computed.
func GetStroke[S Sample](points []S, opts Options) ([]vec.Vec2, error) {
	in, ok := any(points).([]InputPoint)
	if !ok {
		var err error
		in, err = Normalize(points)
		if err != nil {
			Logger().Debug("input rejected", "err", err)
			return nil, err
		}
	}
	s := NewStroker(opts)
	return s.stroke(in)
}
