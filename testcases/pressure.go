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

var pressureCases = []TestCase{
	{
		Name:    "pressure_ramp",
		Points:  withPressure(line(16, 64, 112, 64, 25), func(t float64) float64 { return t }),
		Options: `{"simulatePressure": false, "size": 24, "thinning": 0.8, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name: "pressure_bumps",
		Points: withPressure(line(16, 64, 112, 64, 49), func(t float64) float64 {
			return 0.5 + 0.5*math.Sin(4*math.Pi*t)
		}),
		Options: `{"simulatePressure": false, "size": 24, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "pressure_negative_thinning",
		Points:  withPressure(line(16, 64, 112, 64, 25), func(t float64) float64 { return t }),
		Options: `{"simulatePressure": false, "size": 24, "thinning": -0.7, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "pressure_out_of_range",
		Points:  withPressure(line(16, 64, 112, 64, 25), func(t float64) float64 { return 3*t - 1 }),
		Options: `{"simulatePressure": false, "size": 24, "thinning": 1, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "pressure_eased",
		Points:  withPressure(line(16, 64, 112, 64, 25), func(t float64) float64 { return t }),
		Options: `{"simulatePressure": false, "size": 24, "easing": "easeInOutCubic", "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		// slow at both ends, fast in the middle
		Name: "pressure_speed",
		Points: func() [][]float64 {
			var pts [][]float64
			x := 16.0
			for i := 0; x < 112; i++ {
				pts = append(pts, []float64{x, 64})
				x += 1 + 6*math.Sin(math.Pi*float64(i)/30)
			}
			return pts
		}(),
		Options: `{"size": 20, "thinning": 0.9, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name: "pressure_mixed_input",
		Points: [][]float64{
			{16, 64}, {28, 64, 0.2}, {40, 64}, {52, 64, 0.9},
			{64, 64}, {76, 64, 0.9}, {88, 64}, {100, 64, 0.2}, {112, 64},
		},
		Options: `{"simulatePressure": false, "size": 24, "last": true}`,
		Width:   128,
		Height:  128,
	},
}
