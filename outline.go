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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// OutlinePath converts an outline polygon into a closed path, ready to be
// filled with the nonzero winding rule. An empty outline gives an empty
// path.
func OutlinePath(outline []vec.Vec2) *path.Data {
	p := &path.Data{}
	if len(outline) == 0 {
		return p
	}
	p = p.MoveTo(outline[0])
	for _, v := range outline[1:] {
		p = p.LineTo(v)
	}
	return p.Close()
}

// OutlineBounds returns the smallest rectangle containing all vertices of
// an outline. An empty outline gives the zero rectangle.
func OutlineBounds(outline []vec.Vec2) rect.Rect {
	if len(outline) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, v := range outline {
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}
