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
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freehand/testcases"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// loadCase decodes the input points and options of a test case.
func loadCase(t testing.TB, tc testcases.TestCase) ([]InputPoint, Options) {
	t.Helper()

	data, err := json.Marshal(tc.Points)
	if err != nil {
		t.Fatal(err)
	}
	points, err := ParseInput(data)
	if err != nil {
		t.Fatalf("points: %v", err)
	}

	opts := DefaultOptions()
	if tc.Options != "" {
		opts, err = ParseOptions([]byte(tc.Options))
		if err != nil {
			t.Fatalf("options: %v", err)
		}
	}
	return points, opts
}

// signedArea returns the area of a closed polygon, using the shoelace
// formula.
func signedArea(poly []vec.Vec2) float64 {
	var sum float64
	for i, a := range poly {
		b := poly[(i+1)%len(poly)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// polylineLength returns the length of the polyline through the input
// points.
func polylineLength(points []InputPoint) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
	}
	return total
}

// horizontal returns n evenly spaced input points from (0, 0) to
// (length, 0).
func horizontal(length float64, n int) []InputPoint {
	res := make([]InputPoint, n)
	for i := range n {
		res[i] = InputPoint{X: length * float64(i) / float64(n-1), Pressure: DefaultPressure}
	}
	return res
}
