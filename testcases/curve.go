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

var curveCases = []TestCase{
	{
		Name:    "wave",
		Points:  wave(12, 64, 116, 24, 2, 80),
		Options: `{"size": 10, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "wave_flat",
		Points:  wave(12, 64, 116, 8, 1, 60),
		Options: `{"size": 10, "thinning": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "spiral",
		Points:  spiral(64, 64, 4, 52, 3),
		Options: `{"size": 8, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "circle",
		Points:  circle(64, 64, 40, 64),
		Options: `{"size": 12, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "figure_eight",
		Points:  figureEight(64, 64, 100, 96),
		Options: `{"size": 10, "start": {"cap": false, "taper": 30}, "end": {"cap": false, "taper": 30}, "last": true}`,
		Width:   128,
		Height:  128,
	},
}
