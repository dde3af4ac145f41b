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
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.Validate(); err != nil {
		t.Fatal(err)
	}
	if opts.Size != 16 || !opts.SimulatePressure || !opts.Start.Cap || !opts.End.Cap || opts.Last {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*Options)
		field string
	}{
		{"size_zero", func(o *Options) { o.Size = 0 }, "size"},
		{"size_negative", func(o *Options) { o.Size = -1 }, "size"},
		{"size_nan", func(o *Options) { o.Size = math.NaN() }, "size"},
		{"size_inf", func(o *Options) { o.Size = math.Inf(1) }, "size"},
		{"thinning_large", func(o *Options) { o.Thinning = 1.5 }, "thinning"},
		{"thinning_nan", func(o *Options) { o.Thinning = math.NaN() }, "thinning"},
		{"smoothing_negative", func(o *Options) { o.Smoothing = -0.1 }, "smoothing"},
		{"streamline_large", func(o *Options) { o.Streamline = 2 }, "streamline"},
		{"start_taper_negative", func(o *Options) { o.Start.Taper = -1 }, "start.taper"},
		{"end_taper_nan", func(o *Options) { o.End.Taper = math.NaN() }, "end.taper"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			c.edit(&opts)
			err := opts.Validate()
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != c.field {
				t.Errorf("field: got %q, want %q", vErr.Field, c.field)
			}
		})
	}

	opts := DefaultOptions()
	opts.Start.Taper = math.Inf(1)
	opts.Thinning = -1
	if err := opts.Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions([]byte(`{
		"size": 8,
		"thinning": -0.3,
		"smoothing": 0.2,
		"easing": "easeInQuad",
		"simulatePressure": false,
		"start": {"cap": false, "taper": true},
		"end": {"taper": 20, "easing": "linear"},
		"last": true
	}`))
	if err != nil {
		t.Fatal(err)
	}

	want := Options{
		Size:       8,
		Thinning:   -0.3,
		Smoothing:  0.2,
		Streamline: DefaultStreamline,
		Start:      Terminal{Taper: math.Inf(1)},
		End:        Terminal{Cap: true, Taper: 20},
		Last:       true,
	}
	diff(t, want, opts, cmpopts.IgnoreFields(Options{}, "Easing", "Start.Easing", "End.Easing"))

	if opts.Easing == nil || opts.Easing(0.5) != 0.25 {
		t.Error("easing not set to easeInQuad")
	}
	if opts.Start.Easing != nil {
		t.Error("start easing should be unset")
	}
	if opts.End.Easing == nil || opts.End.Easing(0.3) != 0.3 {
		t.Error("end easing not set to linear")
	}
}

func TestParseOptionsEmpty(t *testing.T) {
	opts, err := ParseOptions([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultOptions(), opts, cmpopts.IgnoreFields(Options{}, "Easing", "Start.Easing", "End.Easing"))
}

func TestParseOptionsErrors(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		field string
	}{
		{"size_negative", `{"size": -1}`, "size"},
		{"size_string", `{"size": "big"}`, "size"},
		{"unknown_key", `{"bogusOption": 1}`, "options"},
		{"unknown_nested_key", `{"start": {"bogus": 1}}`, "options"},
		{"unknown_easing", `{"easing": "wobbly"}`, "easing"},
		{"unknown_end_easing", `{"end": {"easing": "wobbly"}}`, "end.easing"},
		{"taper_string", `{"start": {"taper": "long"}}`, "start.taper"},
		{"taper_negative", `{"end": {"taper": -3}}`, "end.taper"},
		{"trailing_data", `{} {}`, "options"},
		{"malformed", `{"size": `, "options"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseOptions([]byte(c.in))
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != c.field {
				t.Errorf("field: got %q, want %q (%v)", vErr.Field, c.field, err)
			}
		})
	}
}

func TestOptionsFromMap(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{
		"size":  10.0,
		"start": map[string]any{"cap": false, "taper": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Size != 10 || !math.IsInf(opts.Start.Taper, 1) || opts.Start.Cap {
		t.Errorf("unexpected options: %+v", opts)
	}

	_, err = OptionsFromMap(map[string]any{"bogusOption": true})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
