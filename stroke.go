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
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// capSweep is the rotation used for round caps and corners. The tiny
	// overshoot avoids a gap where the two sides of the outline meet.
	capSweep = math.Pi + 1e-4

	capSteps    = 13 // vertices of a round start cap and of a dot
	cornerSteps = 13 // segments of the arc around a sharp corner
	endCapSteps = 29 // vertices of a round end cap

	// Points closer than this to the end of the stroke are skipped, since
	// the final input samples are often noisy.
	endNoiseLength = 3

	// minRadius keeps tapered ends from collapsing to a single point.
	minRadius = 0.01
)

// OutlinePoints computes the closed outline polygon around a sequence of
// stroke points, as returned by [StrokePoints]. The outline runs along the
// left side of the stroke, around the end, back along the right side and
// around the start. The polygon is implicitly closed; the first vertex is
// not repeated.
//
// Empty input gives an empty outline and a single point gives a dot of
// diameter opts.Size. Invalid options or non-finite points are reported
// as a [*ValidationError].
func OutlinePoints(points []StrokePoint, opts Options) ([]vec.Vec2, error) {
	s := NewStroker(opts)
	return s.outlinePoints(points)
}

// outlinePoints implements OutlinePoints, using the buffers of s.
// The result aliases s.outline.
func (s *Stroker) outlinePoints(pts []StrokePoint) ([]vec.Vec2, error) {
	if err := s.Options.Validate(); err != nil {
		Logger().Debug("options rejected", "err", err)
		return nil, err
	}
	for i, p := range pts {
		if err := checkStrokePoint(i, p); err != nil {
			Logger().Debug("stroke points rejected", "err", err)
			return nil, err
		}
	}

	s.outline = s.outline[:0]
	switch len(pts) {
	case 0:
		return s.outline, nil
	case 1:
		s.addDot(pts[0].Point, s.Size/2)
		s.smoothOutline()
		return s.outline, nil
	}

	s.buildSides(pts)

	n := len(pts)
	first := pts[0].Point
	last := pts[n-1].Point
	lastDir := pts[n-2].Vector
	lastRadius := s.radiusAt(pts, n-1)

	s.outline = append(s.outline, s.left...)
	s.addEnd(last, lastDir, lastRadius)
	for i := len(s.right) - 1; i >= 0; i-- {
		s.outline = append(s.outline, s.right[i])
	}
	s.addStart(first)

	s.smoothOutline()
	return s.outline, nil
}

// buildSides computes the left and right offset points of the stroke into
// s.left and s.right. Both lists run from the start to the end of the
// stroke. "Left" is the side reached by turning counter-clockwise in
// y-down coordinates.
func (s *Stroker) buildSides(pts []StrokePoint) {
	s.left = s.left[:0]
	s.right = s.right[:0]

	n := len(pts)
	totalLength := pts[n-1].RunningLength
	minDist2 := (s.Size * s.Smoothing) * (s.Size * s.Smoothing)

	prevDir := pts[0].Vector // direction into the last regular point
	prevSharp := false
	var pl, pr vec.Vec2
	var holdL, holdR bool // the side has not yet moved past a mitred corner
	for i, p := range pts {
		isLast := i == n-1
		if !isLast && totalLength-p.RunningLength < endNoiseLength {
			continue
		}

		radius := s.radiusAt(pts, i)

		in := p.Vector
		if i > 0 {
			in = pts[i-1].Vector
		}
		out := p.Vector
		nextDot := 1.0
		if !isLast {
			nextDot = in.Dot(out)
		}

		isSharp := in.Dot(prevDir) < 0 && !prevSharp
		isNextSharp := nextDot < 0
		if isSharp || isNextSharp {
			// Swing around the corner point.  Both sides trace the same
			// half circle, so the outline stays connected however sharp
			// the turn is.
			offset := normal(prevDir).Mul(radius)
			for k := 0; k <= cornerSteps; k++ {
				t := float64(k) / cornerSteps
				pl = rotateAround(p.Point.Sub(offset), p.Point, capSweep*t)
				pr = rotateAround(p.Point.Add(offset), p.Point, -capSweep*t)
				s.left = append(s.left, pl)
				s.right = append(s.right, pr)
			}
			prevSharp = isNextSharp
			holdL, holdR = false, false
			continue
		}
		prevSharp = false

		if isLast {
			offset := normal(in).Mul(radius)
			s.left = append(s.left, p.Point.Sub(offset))
			s.right = append(s.right, p.Point.Add(offset))
			continue
		}

		// Blend the incoming and outgoing directions, more so at sharper
		// turns.
		offset := normal(lerp(out, in, nextDot)).Mul(radius)
		mitre := false
		if mid := unit(in.Add(out)); nextDot < cornerKeepCos && mid.Dot(in) > 0 {
			// Mitre the corner.  The inner side then meets where the two
			// offset lines cross, instead of folding back onto the centre
			// line.
			offset = normal(mid).Mul(radius / mid.Dot(in))
			mitre = true
		}

		tl := p.Point.Sub(offset)
		tr := p.Point.Add(offset)
		if mitre && len(s.left) > 0 && len(s.right) > 0 {
			s.left = trimAhead(s.left, tl, in)
			s.right = trimAhead(s.right, tr, in)
			pl = s.left[len(s.left)-1]
			pr = s.right[len(s.right)-1]
			holdL, holdR = true, true
		}

		if i <= 1 || keepSidePoint(pl, tl, in, minDist2, holdL) {
			s.left = append(s.left, tl)
			pl = tl
			holdL = mitre
		}
		if i <= 1 || keepSidePoint(pr, tr, in, minDist2, holdR) {
			s.right = append(s.right, tr)
			pr = tr
			holdR = mitre
		}

		prevDir = in
	}
}

// trimAhead removes trailing points of one side of the stroke which lie
// beyond q in direction dir. The first point is always kept.
func trimAhead(side []vec.Vec2, q, dir vec.Vec2) []vec.Vec2 {
	for len(side) > 1 && side[len(side)-1].Sub(q).Dot(dir) > 0 {
		side = side[:len(side)-1]
	}
	return side
}

// keepSidePoint reports whether q is added after prev to one side of the
// stroke. Points closer than the minimum distance are dropped. While hold
// is set, q must also be ahead of prev in direction dir.
func keepSidePoint(prev, q, dir vec.Vec2, minDist2 float64, hold bool) bool {
	if dist2(prev, q) <= minDist2 {
		return false
	}
	return !hold || q.Sub(prev).Dot(dir) > 0
}

// radiusAt returns the radius of the stroke at pts[i], including the
// effect of tapers.
func (s *Stroker) radiusAt(pts []StrokePoint, i int) float64 {
	p := pts[i]
	totalLength := pts[len(pts)-1].RunningLength

	radius := StrokeRadius(s.Size, s.Thinning, p.Pressure, s.Easing)

	scale := 1.0
	if taper := s.startTaper(totalLength); p.RunningLength < taper {
		ease := s.Start.Easing.orDefault(EaseOutQuad)
		scale = min(scale, ease.at(p.RunningLength/taper))
	}
	if taper := s.endTaper(totalLength); totalLength-p.RunningLength < taper {
		ease := s.End.Easing.orDefault(EaseOutCubic)
		scale = min(scale, ease.at((totalLength-p.RunningLength)/taper))
	}
	if scale < 1 {
		radius = max(minRadius, radius*scale)
	}
	return radius
}

// startTaper returns the length of the start taper, or 0 if the start is
// not tapered.
func (s *Stroker) startTaper(totalLength float64) float64 {
	if !s.startTapered() {
		return 0
	}
	return s.resolveTaper(s.Start.Taper, totalLength)
}

// endTaper returns the length of the end taper, or 0 if the end is not
// tapered. Incomplete strokes have no end taper.
func (s *Stroker) endTaper(totalLength float64) float64 {
	if !s.endTapered() {
		return 0
	}
	return s.resolveTaper(s.End.Taper, totalLength)
}

// A round cap takes precedence over a taper.
func (s *Stroker) startTapered() bool {
	return !s.Start.Cap && s.Start.Taper > 0
}

func (s *Stroker) endTapered() bool {
	return s.Last && !s.End.Cap && s.End.Taper > 0
}

func (s *Stroker) resolveTaper(taper, totalLength float64) float64 {
	if math.IsInf(taper, 1) {
		return max(s.Size, totalLength)
	}
	return taper
}

// addEnd appends the end cap to s.outline. It starts on the left side of
// the stroke and finishes on the right side. Without a round cap the
// outline meets the centre line at the last point.
func (s *Stroker) addEnd(last, dir vec.Vec2, radius float64) {
	if s.Last && s.End.Cap {
		left := last.Sub(normal(dir).Mul(radius))
		s.addArc(last, left, 3*capSweep, endCapSteps)
		return
	}
	s.outline = append(s.outline, last)
}

// addStart appends the start cap to s.outline. It starts on the right side
// of the stroke and finishes on the left side.
func (s *Stroker) addStart(first vec.Vec2) {
	switch {
	case s.Start.Cap:
		s.addArc(first, s.right[0], capSweep, capSteps)
	case s.startTapered():
		// the outline already narrows to a point
	default:
		s.outline = append(s.outline, first)
	}
}

// addArc appends the points obtained by rotating start around center in
// the given number of equal steps. The start point itself is not added.
func (s *Stroker) addArc(center, start vec.Vec2, sweep float64, steps int) {
	for k := 1; k <= steps; k++ {
		t := float64(k) / float64(steps)
		s.outline = append(s.outline, rotateAround(start, center, sweep*t))
	}
}

// addDot appends a regular polygon approximating a circle.
func (s *Stroker) addDot(center vec.Vec2, radius float64) {
	start := center.Add(vec.Vec2{X: 1, Y: -1}.Mul(radius / math.Sqrt2))
	for k := range capSteps {
		angle := 2 * math.Pi * float64(k) / capSteps
		s.outline = append(s.outline, rotateAround(start, center, angle))
	}
}

// smoothOutline moves every vertex of the closed polygon s.outline towards
// the midpoint of its neighbours.
func (s *Stroker) smoothOutline() {
	w := s.Smoothing / 2
	n := len(s.outline)
	if w == 0 || n < 3 {
		return
	}

	s.smoothed = append(s.smoothed[:0], s.outline...)
	for i := range n {
		prev := s.smoothed[(i+n-1)%n]
		next := s.smoothed[(i+1)%n]
		s.outline[i] = s.smoothed[i].Mul(1 - w).Add(prev.Mul(w / 2)).Add(next.Mul(w / 2))
	}
}
