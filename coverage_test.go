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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/freehand/testcases"
)

// rasterise fills the outline into an alpha mask of the given size.
func rasterise(r *vector.Rasterizer, outline []vec.Vec2, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Reset(width, height)
	if len(outline) < 3 {
		return dst
	}
	r.MoveTo(float32(outline[0].X), float32(outline[0].Y))
	for _, v := range outline[1:] {
		r.LineTo(float32(v.X), float32(v.Y))
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{255}), image.Point{})
	return dst
}

// TestCoverage fills the outlines of simple strokes and checks that the
// stroke covers its own centre line.
func TestCoverage(t *testing.T) {
	r := vector.NewRasterizer(1, 1)
	for _, category := range []string{"basic", "cap"} {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				in, opts := loadCase(t, tc)
				outline, err := GetStroke(in, opts)
				if err != nil {
					t.Fatal(err)
				}
				mask := rasterise(r, outline, tc.Width, tc.Height)

				var total int
				for _, a := range mask.Pix {
					total += int(a)
				}
				if total == 0 {
					t.Fatal("outline covers no pixels")
				}

				// End points are excluded since the outline may narrow to
				// them.
				check := in
				if len(in) > 1 {
					check = in[1 : len(in)-1]
				}
				for _, p := range check {
					x, y := int(p.X), int(p.Y)
					sum := int(mask.AlphaAt(x-1, y-1).A) + int(mask.AlphaAt(x, y-1).A) +
						int(mask.AlphaAt(x-1, y).A) + int(mask.AlphaAt(x, y).A)
					if sum/4 < 160 {
						t.Errorf("point (%g, %g): coverage %d/255", p.X, p.Y, sum/4)
					}
				}
			})
		}
	}
}

func TestOutlinePath(t *testing.T) {
	outline := []vec.Vec2{{X: 1, Y: 2}, {X: 5, Y: 2}, {X: 5, Y: 7}, {X: 1, Y: 6}}

	p := OutlinePath(outline)
	diff(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, p.Cmds)
	diff(t, outline, p.Coords)

	diff(t, rect.Rect{LLx: 1, LLy: 2, URx: 5, URy: 7}, OutlineBounds(outline))

	if p := OutlinePath(nil); len(p.Cmds) != 0 {
		t.Errorf("empty outline gives %d commands", len(p.Cmds))
	}
	diff(t, rect.Rect{}, OutlineBounds(nil))
}
