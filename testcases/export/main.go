// Command export writes the outlines of all test cases to JSON, so that
// changes to the stroke geometry can be reviewed with a diff.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/freehand"
	"seehuhn.de/go/freehand/testcases"
)

const outFile = "testdata/outlines.json"

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			jtc, err := toJSON(name, tc)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			slog.Info("exported", "case", name, "vertices", len(jtc.Outline))
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
	slog.Info("done", "file", outFile, "cases", len(out.TestCases))
}

type jsonTestCase struct {
	Name    string          `json:"name"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Points  [][]float64     `json:"points"`
	Options json.RawMessage `json:"options,omitempty"`
	Outline [][2]float64    `json:"outline"`
}

func toJSON(name string, tc testcases.TestCase) (jsonTestCase, error) {
	points, opts, err := load(tc)
	if err != nil {
		return jsonTestCase{}, err
	}
	outline, err := freehand.GetStroke(points, opts)
	if err != nil {
		return jsonTestCase{}, err
	}

	jtc := jsonTestCase{
		Name:    name,
		Width:   tc.Width,
		Height:  tc.Height,
		Points:  tc.Points,
		Outline: make([][2]float64, len(outline)),
	}
	if tc.Options != "" {
		jtc.Options = json.RawMessage(tc.Options)
	}
	for i, v := range outline {
		jtc.Outline[i] = [2]float64{v.X, v.Y}
	}
	return jtc, nil
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
