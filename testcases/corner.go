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

var cornerCases = []TestCase{
	{
		Name:    "corner_right",
		Points:  polyline(4, 16, 100, 100, 100, 100, 16),
		Options: `{"size": 20, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_obtuse",
		Points:  polyline(4, 16, 96, 64, 48, 112, 96),
		Options: `{"size": 16, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_acute",
		Points:  polyline(4, 16, 112, 64, 16, 84, 112),
		Options: `{"size": 16, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_reverse",
		Points:  polyline(4, 16, 64, 112, 64, 40, 64),
		Options: `{"size": 16, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_zigzag",
		Points:  zigzag(12, 64, 116, 30, 5, 4),
		Options: `{"size": 12, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_uturn",
		Points:  uTurn(64, 16, 80, 12, 3),
		Options: `{"size": 14, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "corner_raw",
		Points:  polyline(4, 16, 100, 100, 100, 100, 16),
		Options: `{"size": 20, "streamline": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
}
