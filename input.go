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
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// DefaultPressure is used for input points which carry no pressure.
const DefaultPressure = 0.5

// InputPoint is a normalised input sample.
type InputPoint struct {
	X, Y float64

	// Pressure is the stylus pressure. Values outside [0, 1] are clamped
	// before use.
	Pressure float64
}

// Sample is one raw input sample in any of the accepted shapes: [Pair],
// [Triple], [Record], or an already normalised [InputPoint].
type Sample interface {
	inputPoint() InputPoint
}

// Pair is an input sample without pressure information.
type Pair struct{ X, Y float64 }

// Triple is an input sample with pressure.
type Triple struct{ X, Y, Pressure float64 }

// Record is a labeled input sample with optional pressure.
type Record struct {
	X, Y     float64
	Pressure *float64
}

func (p Pair) inputPoint() InputPoint {
	return InputPoint{X: p.X, Y: p.Y, Pressure: DefaultPressure}
}

func (p Triple) inputPoint() InputPoint {
	return InputPoint{X: p.X, Y: p.Y, Pressure: p.Pressure}
}

func (p Record) inputPoint() InputPoint {
	pressure := DefaultPressure
	if p.Pressure != nil {
		pressure = *p.Pressure
	}
	return InputPoint{X: p.X, Y: p.Y, Pressure: pressure}
}

func (p InputPoint) inputPoint() InputPoint {
	return p
}

// Normalize converts raw samples into input points. Pressures are clamped
// to [0, 1]. Non-finite coordinates or pressures are reported as a
// [*ValidationError].
func Normalize[S Sample](samples []S) ([]InputPoint, error) {
	res := make([]InputPoint, len(samples))
	for i, s := range samples {
		if any(s) == nil {
			return nil, invalid(fmt.Sprintf("points[%d]", i), "missing sample")
		}
		p := s.inputPoint()
		if err := checkInputPoint(i, p); err != nil {
			return nil, err
		}
		p.Pressure = clamp01(p.Pressure)
		res[i] = p
	}
	return res, nil
}

func checkInputPoint(i int, p InputPoint) error {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return invalid(fmt.Sprintf("points[%d]", i), "non-finite coordinates (%g, %g)", p.X, p.Y)
	}
	if math.IsNaN(p.Pressure) || math.IsInf(p.Pressure, 0) {
		return invalid(fmt.Sprintf("points[%d]", i), "non-finite pressure %g", p.Pressure)
	}
	return nil
}

type recordJSON struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Pressure *float64 `json:"pressure"`
}

// ParseInput decodes input points from a JSON array. Each element is
// either an array [x, y], an array [x, y, pressure], or an object with
// the keys "x", "y" and the optional key "pressure". Different shapes can
// be mixed within one array.
func ParseInput(data []byte) ([]InputPoint, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, decodeError("points", err)
	}

	samples := make([]Sample, len(elems))
	for i, elem := range elems {
		field := fmt.Sprintf("points[%d]", i)
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 {
			return nil, invalid(field, "empty element")
		}

		switch elem[0] {
		case '[':
			var coords []float64
			if err := json.Unmarshal(elem, &coords); err != nil {
				return nil, decodeError(field, err)
			}
			switch len(coords) {
			case 2:
				samples[i] = Pair{X: coords[0], Y: coords[1]}
			case 3:
				samples[i] = Triple{X: coords[0], Y: coords[1], Pressure: coords[2]}
			default:
				return nil, invalid(field, "expected 2 or 3 numbers, got %d", len(coords))
			}

		case '{':
			var rec recordJSON
			dec := json.NewDecoder(bytes.NewReader(elem))
			dec.DisallowUnknownFields()
			if err := dec.Decode(&rec); err != nil {
				return nil, decodeError(field, err)
			}
			if rec.X == nil || rec.Y == nil {
				return nil, invalid(field, "record needs both \"x\" and \"y\"")
			}
			samples[i] = Record{X: *rec.X, Y: *rec.Y, Pressure: rec.Pressure}

		default:
			return nil, invalid(field, "expected an array or an object")
		}
	}

	return Normalize(samples)
}
