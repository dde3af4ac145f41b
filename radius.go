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

// StrokeRadius returns the radius of a stroke with the given size at a
// point with the given pressure. Thinning controls how strongly pressure
// affects the radius: at thinning 0 the radius is always size/2, at
// thinning 1 it ranges from 0 (no pressure) to size (full pressure), and
// negative thinning reverses the effect. The easing is applied to the
// interpolated pressure; nil means [Linear].
//
// The result is never negative and never exceeds size.
func StrokeRadius(size, thinning, pressure float64, easing Easing) float64 {
	if thinning == 0 {
		return size / 2
	}
	easing = easing.orDefault(Linear)
	return size * easing.at(0.5-thinning*(0.5-clamp01(pressure)))
}
