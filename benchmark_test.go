package freehand

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/freehand/testcases"
)

// wavePoints samples n points along a sine wave with varying pressure.
func wavePoints(n int) []InputPoint {
	res := make([]InputPoint, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		res[i] = InputPoint{
			X:        1000 * t,
			Y:        100 * math.Sin(8*math.Pi*t),
			Pressure: 0.5 + 0.4*math.Sin(3*math.Pi*t),
		}
	}
	return res
}

// BenchmarkStroke measures steady-state performance of a reused Stroker.
func BenchmarkStroke(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, n := range sizes {
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			points := wavePoints(n)
			s := NewStroker(DefaultOptions())
			s.Last = true

			b.ReportAllocs()
			for b.Loop() {
				if _, err := s.stroke(points); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkGetStroke measures the package-level function, which allocates
// fresh buffers on every call.
func BenchmarkGetStroke(b *testing.B) {
	points := wavePoints(200)
	opts := DefaultOptions()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := GetStroke(points, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLive simulates drawing: the outline is recomputed after every
// new sample.
func BenchmarkLive(b *testing.B) {
	points := wavePoints(200)
	s := NewStroker(DefaultOptions())

	b.ReportAllocs()
	for b.Loop() {
		s.Reset()
		for _, p := range points {
			if err := s.Add(p); err != nil {
				b.Fatal(err)
			}
			if _, err := s.Outline(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkRasteriseAll measures computing and filling the outlines of all
// test cases, reusing a single Stroker and rasterizer.
func BenchmarkRasteriseAll(b *testing.B) {
	type prepared struct {
		points        []InputPoint
		opts          Options
		width, height int
	}
	var cases []prepared
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			points, opts := loadCase(b, tc)
			cases = append(cases, prepared{points, opts, tc.Width, tc.Height})
		}
	}

	s := NewStroker(Options{})
	r := vector.NewRasterizer(1, 1)

	b.ResetTimer()
	for b.Loop() {
		for _, c := range cases {
			s.Options = c.opts
			outline, err := s.stroke(c.points)
			if err != nil {
				b.Fatal(err)
			}
			rasterise(r, outline, c.width, c.height)
		}
	}
}
