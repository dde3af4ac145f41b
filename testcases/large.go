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

// largeCases contains strokes which are long compared to the stroke size.
// Without a limit, the resampler would place millions of points along
// these.
var largeCases = []TestCase{
	{
		Name:    "large_tiny_size",
		Points:  [][]float64{{16, 64}, {112, 64}},
		Options: `{"size": 1e-6, "smoothing": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "large_hairline",
		Points:  polyline(4, 8, 8, 120, 8, 120, 120, 8, 120, 8, 16),
		Options: `{"size": 0.05, "smoothing": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "large_spiral",
		Points:  spiral(64, 64, 2, 60, 12),
		Options: `{"size": 0.2, "smoothing": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
}
