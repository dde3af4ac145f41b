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

package freehand

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Stroker turns freehand input into stroke outlines. A Stroker can either
// be used to compute many independent strokes with the same options, or to
// follow a stroke while it is being drawn: samples are added one at a time
// with [Stroker.Add] and the current outline is obtained with
// [Stroker.Outline]. Internal buffers grow as needed but never shrink, so
// repeated use does not allocate in steady state.
//
// Every call recomputes the outline from scratch, so the result after a
// sequence of samples is the same as the result of [GetStroke] on these
// samples.
//
// A Stroker is not safe for concurrent use.
type Stroker struct {
	Options

	samples []InputPoint // input accumulated by Add

	// Internal buffers (reused across calls)
	clean    []InputPoint  // deduplicated input with final pressures
	points   []StrokePoint // resampled stroke points
	left     []vec.Vec2    // offset points on the left side, start to end
	right    []vec.Vec2    // offset points on the right side, start to end
	outline  []vec.Vec2    // assembled outline polygon
	smoothed []vec.Vec2    // copy of the outline used by the smoothing pass
}

// NewStroker creates a new Stroker which uses the given options.
func NewStroker(opts Options) *Stroker {
	return &Stroker{Options: opts}
}

// Add appends a sample to the current stroke. Samples with non-finite
// coordinates or pressure are rejected with a [*ValidationError].
func (s *Stroker) Add(sample Sample) error {
	if sample == nil {
		return invalid(fmt.Sprintf("points[%d]", len(s.samples)), "missing sample")
	}
	p := sample.inputPoint()
	if err := checkInputPoint(len(s.samples), p); err != nil {
		return err
	}
	p.Pressure = clamp01(p.Pressure)
	s.samples = append(s.samples, p)
	return nil
}

// Len returns the number of samples in the current stroke.
func (s *Stroker) Len() int {
	return len(s.samples)
}

// Reset discards all samples, so that a new stroke can be started.
func (s *Stroker) Reset() {
	s.samples = s.samples[:0]
}

// Outline returns the outline of the current stroke. The returned slice
// is only valid until the next call to a method of s.
func (s *Stroker) Outline() ([]vec.Vec2, error) {
	return s.stroke(s.samples)
}

// Finish returns the outline of the current stroke, treating the stroke as
// complete (see [Options.Last]). The returned slice is only valid until
// the next call to a method of s.
func (s *Stroker) Finish() ([]vec.Vec2, error) {
	last := s.Last
	s.Last = true
	defer func() { s.Last = last }()
	return s.stroke(s.samples)
}

// stroke runs both stages on the given input.
func (s *Stroker) stroke(in []InputPoint) ([]vec.Vec2, error) {
	pts, err := s.strokePoints(in)
	if err != nil {
		return nil, err
	}
	return s.outlinePoints(pts)
}
