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

var taperCases = []TestCase{
	{
		Name:    "taper_start",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "start": {"cap": false, "taper": 40}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_end",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "end": {"cap": false, "taper": 40}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_both",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "start": {"cap": false, "taper": 30}, "end": {"cap": false, "taper": 30}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_full",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "start": {"cap": false, "taper": true}, "end": {"cap": false, "taper": true}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_eased",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "start": {"cap": false, "taper": 50, "easing": "easeInCubic"}, "end": {"cap": false, "taper": 50, "easing": "linear"}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_long",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "start": {"cap": false, "taper": 500}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_short_stroke",
		Points:  [][]float64{{56, 64}, {72, 64}},
		Options: `{"size": 20, "start": {"cap": false, "taper": true}, "end": {"cap": false, "taper": true}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "taper_live",
		Points:  line(16, 64, 112, 64, 25),
		Options: `{"size": 20, "end": {"cap": false, "taper": 40}}`,
		Width:   128,
		Height:  128,
	},
}
