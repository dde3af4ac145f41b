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

// normal returns d rotated by 90° (counter-clockwise in y-up coordinates).
func normal(d vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -d.Y, Y: d.X}
}

// unit returns d scaled to length 1, or the zero vector if d has no length.
func unit(d vec.Vec2) vec.Vec2 {
	l := length(d)
	if l == 0 {
		return vec.Vec2{}
	}
	return d.Mul(1 / l)
}

// length returns the length of d, without overflow for large vectors.
func length(d vec.Vec2) float64 {
	return math.Hypot(d.X, d.Y)
}

// lerp interpolates linearly from a (t=0) to b (t=1).
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// dist2 returns the squared distance between a and b.
func dist2(a, b vec.Vec2) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// rotateAround rotates p around c by the given angle in radians.
func rotateAround(p, c vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	d := p.Sub(c)
	return vec.Vec2{
		X: c.X + d.X*cos - d.Y*sin,
		Y: c.Y + d.X*sin + d.Y*cos,
	}
}

// isFinite reports whether both coordinates of v are finite.
func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}
