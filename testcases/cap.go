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

var capCases = []TestCase{
	{
		Name:    "cap_round",
		Points:  line(24, 64, 104, 64, 21),
		Options: `{"size": 24, "thinning": 0, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "cap_none",
		Points:  line(24, 64, 104, 64, 21),
		Options: `{"size": 24, "thinning": 0, "start": {"cap": false}, "end": {"cap": false}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "cap_live",
		Points:  line(24, 64, 104, 64, 21),
		Options: `{"size": 24, "thinning": 0}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "cap_round_over_taper",
		Points:  line(24, 64, 104, 64, 21),
		Options: `{"size": 24, "thinning": 0, "start": {"cap": true, "taper": 40}, "end": {"cap": true, "taper": 40}, "last": true}`,
		Width:   128,
		Height:  128,
	},
	{
		Name:    "cap_mixed",
		Points:  line(24, 64, 104, 64, 21),
		Options: `{"size": 24, "thinning": 0, "start": {"cap": false}, "end": {"cap": true}, "last": true}`,
		Width:   128,
		Height:  128,
	},
}
