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

// Command genpdf draws the outlines of all test cases, for visual
// inspection. For every test case it writes a PDF file showing the filled
// outline together with the input points, and a PNG file with the outline
// rasterised at one pixel per unit.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/freehand"
	"seehuhn.de/go/freehand/testcases"
)

const outDir = "testdata/preview"

// margin is added around the page, in PDF points.
const margin = 4

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			points, opts, err := load(tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			outline, err := freehand.GetStroke(points, opts)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, points, outline, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			pngPath := filepath.Join(outDir, name+".png")
			if err := generatePNG(tc, outline, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			slog.Info("generated", "case", name, "vertices", len(outline))
		}
	}
}

func generatePDF(tc testcases.TestCase, points []freehand.InputPoint, outline []vec.Vec2, pdfPath string) error {
	// The page shows the canvas, enlarged if the outline sticks out.
	box := rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
	if len(outline) > 0 {
		b := freehand.OutlineBounds(outline)
		box.LLx = min(box.LLx, b.LLx)
		box.LLy = min(box.LLy, b.LLy)
		box.URx = max(box.URx, b.URx)
		box.URy = max(box.URy, b.URy)
	}
	if box.LLx < 0 || box.LLy < 0 || box.URx > float64(tc.Width) || box.URy > float64(tc.Height) {
		slog.Warn("outline exceeds canvas", "case", tc.Name, "box", box)
	}
	box.LLx -= margin
	box.LLy -= margin
	box.URx += margin
	box.URy += margin

	paper := &pdf.Rectangle{
		URx: box.URx - box.LLx,
		URy: box.URy - box.LLy,
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, -box.LLx, box.URy})

	// drawPath appends p to the current path and reports whether it
	// contains any line segments.
	drawPath := func(p *path.Data) bool {
		drawn := false
		for cmd, pts := range p.Iter() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
				drawn = true
			case path.CmdClose:
				page.ClosePath()
			}
		}
		return drawn
	}

	// canvas
	page.SetFillColor(color.DeviceGray(0.95))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// stroke outline
	page.SetFillColor(color.DeviceGray(0.1))
	if drawPath(freehand.OutlinePath(outline)) {
		page.Fill()
	}

	// input points, joined by a thin line
	if len(points) > 1 {
		centre := &path.Data{}
		centre = centre.MoveTo(vec.Vec2{X: points[0].X, Y: points[0].Y})
		for _, p := range points[1:] {
			centre = centre.LineTo(vec.Vec2{X: p.X, Y: p.Y})
		}
		page.SetStrokeColor(color.DeviceGray(0.6))
		page.SetLineWidth(0.25)
		page.SetLineCap(graphics.LineCapRound)
		page.SetLineJoin(graphics.LineJoinRound)
		if drawPath(centre) {
			page.Stroke()
		}
	}

	return page.Close()
}

func generatePNG(tc testcases.TestCase, outline []vec.Vec2, pngPath string) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	if len(outline) > 2 {
		r := vector.NewRasterizer(tc.Width, tc.Height)
		r.MoveTo(float32(outline[0].X), float32(outline[0].Y))
		for _, v := range outline[1:] {
			r.LineTo(float32(v.X), float32(v.Y))
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.Black, image.Point{})
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// load decodes the input points and options of a test case.
func load(tc testcases.TestCase) ([]freehand.InputPoint, freehand.Options, error) {
	data, err := json.Marshal(tc.Points)
	if err != nil {
		return nil, freehand.Options{}, err
	}
	points, err := freehand.ParseInput(data)
	if err != nil {
		return nil, freehand.Options{}, err
	}

	opts := freehand.DefaultOptions()
	if tc.Options != "" {
		opts, err = freehand.ParseOptions([]byte(tc.Options))
		if err != nil {
			return nil, freehand.Options{}, err
		}
	}
	return points, opts, nil
}
