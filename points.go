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
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// rateOfPressureChange limits how fast simulated pressure follows
	// changes of drawing speed.
	rateOfPressureChange = 0.275

	// pressureWarmup is the number of leading points used to settle the
	// simulated pressure before the first point is assigned.
	pressureWarmup = 10

	// dedupFactor times streamline times size is the distance below which
	// consecutive input points are merged.
	dedupFactor = 0.05

	// spacingFactor times streamline times size is the resampling step.
	spacingFactor = 0.25

	// Input vertices turning by more than 45° are kept by the resampler.
	cornerKeepCos = math.Sqrt2 / 2

	// The resampler widens its spacing when a stroke would otherwise get
	// more than max(minSampleBudget, samplesPerInput*n) points, for n
	// input points.
	minSampleBudget = 1024
	samplesPerInput = 16
)

// StrokePoint is a resampled point along the centre line of a stroke.
type StrokePoint struct {
	// Point is the position of the point.
	Point vec.Vec2

	// Pressure is the final pressure in [0, 1], either taken from the
	// input or simulated.
	Pressure float64

	// Vector is the unit direction of travel from this point to the next.
	// The last point repeats the direction of its incoming segment. A
	// single-point stroke has a zero vector.
	Vector vec.Vec2

	// Distance is the distance to the previous point.
	Distance float64

	// RunningLength is the length of the stroke from the first point up to
	// this point.
	RunningLength float64
}

// StrokePoints converts input points into evenly spaced stroke points with
// pressure, direction and arc length information.
//
// Empty input gives an empty result and input where all points coincide
// gives a single point. Invalid options or non-finite input values are
// reported as a [*ValidationError].
func StrokePoints(points []InputPoint, opts Options) ([]StrokePoint, error) {
	s := NewStroker(opts)
	return s.strokePoints(points)
}

// strokePoints implements StrokePoints, using the buffers of s.
// The result aliases s.points.
func (s *Stroker) strokePoints(in []InputPoint) ([]StrokePoint, error) {
	if err := s.Options.Validate(); err != nil {
		Logger().Debug("options rejected", "err", err)
		return nil, err
	}
	if err := checkInput(in); err != nil {
		Logger().Debug("input rejected", "err", err)
		return nil, err
	}

	s.points = s.points[:0]
	if len(in) == 0 {
		Logger().Debug("empty stroke")
		return s.points, nil
	}

	s.dedup(in)
	if len(s.clean) == 1 {
		p := s.clean[0]
		if s.SimulatePressure {
			p.Pressure = DefaultPressure
		}
		Logger().Debug("single point stroke", "points", len(in))
		s.points = append(s.points, StrokePoint{
			Point:    vec.Vec2{X: p.X, Y: p.Y},
			Pressure: p.Pressure,
		})
		return s.points, nil
	}

	if len(s.clean) == 2 {
		// extra points keep tapers working on very short strokes
		a, b := s.clean[0], s.clean[1]
		s.clean = s.clean[:1]
		for i := 1; i <= 4; i++ {
			s.clean = append(s.clean, lerpInput(a, b, float64(i)/4))
		}
	}

	if s.SimulatePressure {
		s.simulatePressure()
	}

	if s.Streamline > 0 {
		s.resample(spacingFactor * s.Streamline * s.Size)
	} else {
		for _, p := range s.clean {
			s.points = append(s.points, StrokePoint{
				Point:    vec.Vec2{X: p.X, Y: p.Y},
				Pressure: p.Pressure,
			})
		}
	}

	s.measure()
	return s.points, nil
}

// dedup copies the input into s.clean, clamping pressures and dropping
// points which are too close to their predecessor. The first and the last
// input point are always represented, unless they coincide exactly with
// the point before them.
func (s *Stroker) dedup(in []InputPoint) {
	eps := dedupFactor * s.Streamline * s.Size
	eps2 := eps * eps

	first := in[0]
	first.Pressure = clamp01(first.Pressure)
	s.clean = append(s.clean[:0], first)

	n := len(in)
	for i := 1; i < n; i++ {
		p := in[i]
		p.Pressure = clamp01(p.Pressure)

		prev := &s.clean[len(s.clean)-1]
		dx, dy := p.X-prev.X, p.Y-prev.Y
		d2 := dx*dx + dy*dy
		switch {
		case d2 > eps2:
			s.clean = append(s.clean, p)
		case i < n-1 || d2 == 0:
			// merged into the previous point
		case len(s.clean) > 1:
			*prev = p
		default:
			s.clean = append(s.clean, p)
		}
	}
}

// simulatePressure replaces the pressures in s.clean by values derived
// from the drawing speed: slow movement increases the pressure.
func (s *Stroker) simulatePressure() {
	pts := s.clean
	n := len(pts)

	prev := DefaultPressure
	for i := 1; i < min(n, pressureWarmup); i++ {
		p := simulatedPressure(prev, inputDist(pts[i-1], pts[i]), s.Size)
		prev = (prev + p) / 2
	}

	pts[0].Pressure = DefaultPressure
	for i := 1; i < n-1; i++ {
		prev = simulatedPressure(prev, inputDist(pts[i-1], pts[i]), s.Size)
		pts[i].Pressure = prev
	}
	pts[n-1].Pressure = DefaultPressure
}

// simulatedPressure moves the pressure prev towards a target which
// depends on the distance travelled since the last point.
func simulatedPressure(prev, distance, size float64) float64 {
	sp := min(1, distance/size)
	rp := min(1, 1-sp)
	return clamp01(prev + (rp-prev)*(sp*rateOfPressureChange))
}

// resample places stroke points along the polyline s.clean, one every
// spacing units of arc length. The end points and sharp corners of the
// polyline are always included; an interpolated point which would end up
// closer than spacing/2 to one of these is merged into it.
//
// For strokes which are very long compared to the spacing, the spacing is
// increased so that the number of points stays proportional to the number
// of input points.
func (s *Stroker) resample(spacing float64) {
	pts := s.clean
	n := len(pts)

	total := 0.0
	for i := 1; i < n; i++ {
		total += inputDist(pts[i-1], pts[i])
	}
	budget := max(minSampleBudget, samplesPerInput*n)
	spacing = max(spacing, total/float64(budget))
	if spacing <= 0 {
		// underflow for tiny strokes
		for _, p := range pts {
			s.emit(p)
		}
		return
	}

	s.emit(pts[0])
	lastFixed := 0

	remaining := spacing // arc length until the next sample
	for i := 1; i < n; i++ {
		a, b := pts[i-1], pts[i]
		segLen := inputDist(a, b)

		pos := remaining
		for pos < segLen {
			s.emit(lerpInput(a, b, pos/segLen))
			pos += spacing
		}
		remaining = pos - segLen

		if i == n-1 || s.isSharpVertex(i) {
			if spacing-remaining < spacing/2 && len(s.points)-1 > lastFixed {
				s.points = s.points[:len(s.points)-1]
			}
			s.emit(b)
			lastFixed = len(s.points) - 1
			remaining = spacing
		}
	}
}

// isSharpVertex reports whether the polyline s.clean turns by more than
// 45° at the interior vertex i.
func (s *Stroker) isSharpVertex(i int) bool {
	a, b, c := s.clean[i-1], s.clean[i], s.clean[i+1]
	in := unit(vec.Vec2{X: b.X - a.X, Y: b.Y - a.Y})
	out := unit(vec.Vec2{X: c.X - b.X, Y: c.Y - b.Y})
	return in.Dot(out) < cornerKeepCos
}

// emit appends p to s.points, skipping exact repetitions.
func (s *Stroker) emit(p InputPoint) {
	pt := vec.Vec2{X: p.X, Y: p.Y}
	if k := len(s.points); k > 0 && s.points[k-1].Point == pt {
		return
	}
	s.points = append(s.points, StrokePoint{Point: pt, Pressure: p.Pressure})
}

// measure fills in Vector, Distance and RunningLength of s.points.
func (s *Stroker) measure() {
	pts := s.points
	total := 0.0
	for i := 1; i < len(pts); i++ {
		d := pts[i].Point.Sub(pts[i-1].Point)
		l := length(d)
		total += l
		pts[i].Distance = l
		pts[i].RunningLength = total
		pts[i-1].Vector = unit(d)
	}
	if n := len(pts); n > 1 {
		pts[n-1].Vector = pts[n-2].Vector
	}
}

func lerpInput(a, b InputPoint, t float64) InputPoint {
	return InputPoint{
		X:        a.X + (b.X-a.X)*t,
		Y:        a.Y + (b.Y-a.Y)*t,
		Pressure: a.Pressure + (b.Pressure-a.Pressure)*t,
	}
}

func inputDist(a, b InputPoint) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// checkInput verifies that all input points are finite and that the
// length of the stroke can be represented.
func checkInput(in []InputPoint) error {
	total := 0.0
	for i, p := range in {
		if err := checkInputPoint(i, p); err != nil {
			return err
		}
		if i > 0 {
			total += inputDist(in[i-1], p)
			if math.IsInf(total, 0) {
				return invalid(fmt.Sprintf("points[%d]", i), "stroke length overflows")
			}
		}
	}
	return nil
}

func checkStrokePoint(i int, p StrokePoint) error {
	if !isFinite(p.Point) || !isFinite(p.Vector) ||
		math.IsNaN(p.Pressure) || math.IsInf(p.Pressure, 0) ||
		math.IsNaN(p.RunningLength) || math.IsInf(p.RunningLength, 0) {
		return invalid(fmt.Sprintf("points[%d]", i), "non-finite stroke point")
	}
	return nil
}
