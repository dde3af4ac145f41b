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

package testcases

import "math"

// TestCase defines a single freehand stroke.
type TestCase struct {
	Name    string      // lowercase a-z, 0-9 and _ only
	Points  [][]float64 // input samples, [x, y] or [x, y, pressure]
	Options string      // options as a JSON object, "" for the defaults
	Width   int         // canvas width in pixels
	Height  int         // canvas height in pixels
}

// line samples n evenly spaced points from (x1, y1) to (x2, y2).
func line(x1, y1, x2, y2 float64, n int) [][]float64 {
	res := make([][]float64, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		res[i] = []float64{x1 + (x2-x1)*t, y1 + (y2-y1)*t}
	}
	return res
}

// polyline samples points every step units along the polyline through the
// given vertices, which are given as x, y pairs. All vertices are included.
func polyline(step float64, xy ...float64) [][]float64 {
	res := [][]float64{{xy[0], xy[1]}}
	for i := 2; i+1 < len(xy); i += 2 {
		x0, y0 := xy[i-2], xy[i-1]
		x1, y1 := xy[i], xy[i+1]
		n := max(1, int(math.Ceil(math.Hypot(x1-x0, y1-y0)/step)))
		for j := 1; j <= n; j++ {
			t := float64(j) / float64(n)
			res = append(res, []float64{x0 + (x1-x0)*t, y0 + (y1-y0)*t})
		}
	}
	return res
}

// withPressure adds a pressure value to every point. The pressure function
// is evaluated at the relative position t in [0, 1] of the point within
// the list.
func withPressure(pts [][]float64, pressure func(t float64) float64) [][]float64 {
	res := make([][]float64, len(pts))
	for i, p := range pts {
		t := 0.0
		if len(pts) > 1 {
			t = float64(i) / float64(len(pts)-1)
		}
		res[i] = []float64{p[0], p[1], pressure(t)}
	}
	return res
}

// wave samples a sine wave from x1 to x2 around the line y = cy.
func wave(x1, cy, x2, amplitude, periods float64, n int) [][]float64 {
	res := make([][]float64, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		res[i] = []float64{
			x1 + (x2-x1)*t,
			cy + amplitude*math.Sin(2*math.Pi*periods*t),
		}
	}
	return res
}

// spiral samples an Archimedean spiral, 32 points per turn.
func spiral(cx, cy, rMin, rMax, turns float64) [][]float64 {
	steps := max(8, int(turns*32))
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	res := make([][]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		res = append(res, []float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return res
}

// circle samples a full circle, ending where it starts.
func circle(cx, cy, r float64, n int) [][]float64 {
	res := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		res[i] = []float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return res
}

// figureEight samples a lemniscate of Gerono centred at (cx, cy).
func figureEight(cx, cy, size float64, n int) [][]float64 {
	res := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(angle)
		res[i] = []float64{cx + size/2*sin, cy + size/2*sin*cos}
	}
	return res
}

// zigzag samples a zigzag line with the given number of segments.
func zigzag(x1, cy, x2, amplitude float64, segments int, step float64) [][]float64 {
	segWidth := (x2 - x1) / float64(segments)
	xy := []float64{x1, cy}
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		xy = append(xy, x1+float64(i)*segWidth, y)
	}
	return polyline(step, xy...)
}

// uTurn samples a U-shaped stroke: down, a half circle of radius r, and
// up again.
func uTurn(cx, top, bottom, r float64, step float64) [][]float64 {
	res := polyline(step, cx-r, top, cx-r, bottom)
	n := max(4, int(math.Ceil(math.Pi*r/step)))
	for i := 1; i <= n; i++ {
		angle := math.Pi * float64(i) / float64(n)
		res = append(res, []float64{cx - r*math.Cos(angle), bottom + r*math.Sin(angle)})
	}
	return append(res, polyline(step, cx+r, bottom, cx+r, top)[1:]...)
}
