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
	"maps"
	"math"
	"slices"
)

// Easing maps a parameter in [0, 1] to a value that is normally also in
// [0, 1]. Easings shape how pressure translates into radius, and how the
// radius grows inside start and end tapers. Results outside [0, 1] are
// clamped before use, and NaN is treated as 0.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInQuad starts slowly and accelerates.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad starts quickly and decelerates. It is the default easing of
// start tapers.
func EaseOutQuad(t float64) float64 { return t * (2 - t) }

// EaseInOutQuad accelerates until t=0.5 and decelerates afterwards.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseInCubic is a steeper version of EaseInQuad.
func EaseInCubic(t float64) float64 { return t * t * t }

// EaseOutCubic is a steeper version of EaseOutQuad. It is the default
// easing of end tapers.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// EaseInOutCubic accelerates until t=0.5 and decelerates afterwards.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

var easings = map[string]Easing{
	"linear":         Linear,
	"easeInQuad":     EaseInQuad,
	"easeOutQuad":    EaseOutQuad,
	"easeInOutQuad":  EaseInOutQuad,
	"easeInCubic":    EaseInCubic,
	"easeOutCubic":   EaseOutCubic,
	"easeInOutCubic": EaseInOutCubic,
}

// LookupEasing returns the named easing. Valid names are listed by
// [EasingNames].
func LookupEasing(name string) (Easing, bool) {
	e, ok := easings[name]
	return e, ok
}

// EasingNames returns the names accepted by [LookupEasing], sorted.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(easings))
}

// orDefault returns e, or def if e is nil.
func (e Easing) orDefault(def Easing) Easing {
	if e == nil {
		return def
	}
	return e
}

// at evaluates e at t, clamping the result to [0, 1].
func (e Easing) at(t float64) float64 {
	v := e(t)
	if math.IsNaN(v) {
		return 0
	}
	return clamp01(v)
}
