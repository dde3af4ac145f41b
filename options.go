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
	"errors"
	"io"
	"math"
	"strings"
)

// Default option values, as returned by [DefaultOptions].
const (
	DefaultSize       = 16.0
	DefaultThinning   = 0.5
	DefaultSmoothing  = 0.5
	DefaultStreamline = 0.5
)

// Options controls both stages of stroke generation.
//
// The zero value is not valid, since Size must be positive. Start from
// [DefaultOptions] and change the fields you need.
type Options struct {
	// Size is the base diameter of the stroke. Must be positive.
	Size float64

	// Thinning is the effect of pressure on the stroke's width, in [-1, 1].
	// Positive values make high pressure wider, negative values make it
	// thinner, and 0 gives a uniform width of Size.
	Thinning float64

	// Smoothing softens the outline, in [0, 1].
	Smoothing float64

	// Streamline controls how aggressively the input is resampled, in
	// [0, 1]. Zero keeps the input points unchanged.
	Streamline float64

	// SimulatePressure derives pressure from the drawing speed instead of
	// using the pressure of the input points.
	SimulatePressure bool

	// Easing is applied to the pressure when computing the radius.
	// Nil means [Linear].
	Easing Easing

	// Start and End shape the two extremities of the stroke.
	Start, End Terminal

	// Last indicates that the input stroke is complete. While a stroke is
	// still being drawn, its end is left pointed and End is ignored.
	Last bool
}

// Terminal describes the shape of one end of a stroke.
type Terminal struct {
	// Cap draws a rounded cap. If Cap is false and Taper is positive the
	// stroke is tapered instead; otherwise the outline narrows straight to
	// the end point of the centre line.
	Cap bool

	// Taper is the length over which the radius grows from zero to its full
	// value. Must not be negative. [math.Inf] tapers over the whole stroke.
	Taper float64

	// Easing shapes the taper. Nil means [EaseOutQuad] at the start and
	// [EaseOutCubic] at the end.
	Easing Easing
}

// DefaultOptions returns the default options: size 16, thinning,
// smoothing and streamline 0.5, simulated pressure, round caps at both
// ends, no tapers, and an incomplete stroke.
func DefaultOptions() Options {
	return Options{
		Size:             DefaultSize,
		Thinning:         DefaultThinning,
		Smoothing:        DefaultSmoothing,
		Streamline:       DefaultStreamline,
		SimulatePressure: true,
		Start:            Terminal{Cap: true},
		End:              Terminal{Cap: true},
	}
}

// Validate checks that all option values are in range. The returned error,
// if any, is a [*ValidationError].
func (o *Options) Validate() error {
	if !(o.Size > 0) || math.IsInf(o.Size, 0) {
		return invalid("size", "must be positive and finite, got %g", o.Size)
	}
	if !(o.Thinning >= -1 && o.Thinning <= 1) {
		return invalid("thinning", "must be in [-1, 1], got %g", o.Thinning)
	}
	if !(o.Smoothing >= 0 && o.Smoothing <= 1) {
		return invalid("smoothing", "must be in [0, 1], got %g", o.Smoothing)
	}
	if !(o.Streamline >= 0 && o.Streamline <= 1) {
		return invalid("streamline", "must be in [0, 1], got %g", o.Streamline)
	}
	if !(o.Start.Taper >= 0) {
		return invalid("start.taper", "must not be negative, got %g", o.Start.Taper)
	}
	if !(o.End.Taper >= 0) {
		return invalid("end.taper", "must not be negative, got %g", o.End.Taper)
	}
	return nil
}

type optionsJSON struct {
	Size             *float64      `json:"size"`
	Thinning         *float64      `json:"thinning"`
	Smoothing        *float64      `json:"smoothing"`
	Streamline       *float64      `json:"streamline"`
	Easing           *string       `json:"easing"`
	SimulatePressure *bool         `json:"simulatePressure"`
	Last             *bool         `json:"last"`
	Start            *terminalJSON `json:"start"`
	End              *terminalJSON `json:"end"`
}

type terminalJSON struct {
	Cap    *bool           `json:"cap"`
	Taper  json.RawMessage `json:"taper"`
	Easing *string         `json:"easing"`
}

// ParseOptions decodes options from a JSON object. Keys which are not
// present keep their default value. Recognised keys are "size",
// "thinning", "smoothing", "streamline", "easing", "simulatePressure",
// "last", "start" and "end"; "start" and "end" are objects with the keys
// "cap", "taper" and "easing". A taper of true means the whole stroke.
// Easings are given by name, see [EasingNames].
//
// Unknown keys, malformed values and out-of-range values are reported as
// a [*ValidationError].
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()

	var raw optionsJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return Options{}, decodeError("options", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Options{}, invalid("options", "unexpected data after JSON object")
	}

	if raw.Size != nil {
		opts.Size = *raw.Size
	}
	if raw.Thinning != nil {
		opts.Thinning = *raw.Thinning
	}
	if raw.Smoothing != nil {
		opts.Smoothing = *raw.Smoothing
	}
	if raw.Streamline != nil {
		opts.Streamline = *raw.Streamline
	}
	if raw.SimulatePressure != nil {
		opts.SimulatePressure = *raw.SimulatePressure
	}
	if raw.Last != nil {
		opts.Last = *raw.Last
	}
	if raw.Easing != nil {
		e, ok := LookupEasing(*raw.Easing)
		if !ok {
			return Options{}, invalid("easing", "unknown easing %q", *raw.Easing)
		}
		opts.Easing = e
	}
	if err := raw.Start.apply(&opts.Start, "start"); err != nil {
		return Options{}, err
	}
	if err := raw.End.apply(&opts.End, "end"); err != nil {
		return Options{}, err
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// OptionsFromMap is like [ParseOptions], but takes the options as a map.
// The map values must be representable in JSON.
func OptionsFromMap(m map[string]any) (Options, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Options{}, invalid("options", "%v", err)
	}
	return ParseOptions(data)
}

func (t *terminalJSON) apply(term *Terminal, prefix string) error {
	if t == nil {
		return nil
	}
	if t.Cap != nil {
		term.Cap = *t.Cap
	}
	if len(t.Taper) > 0 {
		taper, err := parseTaper(t.Taper)
		if err != nil {
			return invalid(prefix+".taper", "%v", err)
		}
		term.Taper = taper
	}
	if t.Easing != nil {
		e, ok := LookupEasing(*t.Easing)
		if !ok {
			return invalid(prefix+".easing", "unknown easing %q", *t.Easing)
		}
		term.Easing = e
	}
	return nil
}

// parseTaper accepts a number or a boolean. True means "the whole
// stroke" and is represented as +Inf.
func parseTaper(data json.RawMessage) (float64, error) {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			return math.Inf(1), nil
		}
		return 0, nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return 0, errors.New("must be a number or a boolean")
	}
	return x, nil
}

// decodeError converts a JSON decoding error into a ValidationError.
func decodeError(what string, err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return invalid(typeErr.Field, "cannot use JSON %s as %s", typeErr.Value, typeErr.Type)
	}
	msg := strings.TrimPrefix(err.Error(), "json: ")
	return invalid(what, "%s", msg)
}
