// Command export writes the ridge paths of all presets to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fingerprint/pattern"
	"seehuhn.de/go/fingerprint/presets"
)

func main() {
	outName := flag.String("o", "testdata/presets.json", "output file")
	flag.Parse()

	var out struct {
		Presets []jsonPreset `json:"presets"`
	}

	for _, category := range slices.Sorted(maps.Keys(presets.All)) {
		for _, p := range presets.All[category] {
			out.Presets = append(out.Presets, toJSON(category, p))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outName), 0755); err != nil {
		panic(err)
	}
	f, err := os.Create(*outName)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonPreset struct {
	Name           string        `json:"name"`
	Kind           string        `json:"kind"`
	Variation      int           `json:"variation,omitempty"`
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	Ridges         int           `json:"ridges"`
	PointsPerRidge int           `json:"points_per_ridge"`
	Center         [2]float64    `json:"center"`
	MaxRadius      float64       `json:"max_radius"`
	Style          string        `json:"style"`
	Paths          [][][]float64 `json:"paths"`
}

func toJSON(category string, p presets.Preset) jsonPreset {
	pat := p.Pattern()
	jp := jsonPreset{
		Name:           presets.FullName(category, p),
		Kind:           pat.Kind().String(),
		Width:          pat.Width,
		Height:         pat.Height,
		Ridges:         pat.Ridges,
		PointsPerRidge: pat.PointsPerRidge,
		Center:         [2]float64{pat.Center.X, pat.Center.Y},
		MaxRadius:      pat.MaxRadius,
		Style:          pat.Style().Mode.String(),
		Paths:          make([][][]float64, len(pat.Paths)),
	}
	if p.Kind == pattern.KindPlainArch {
		jp.Variation = p.Variation
	}
	for r, path := range pat.Paths {
		pts := make([][]float64, len(path))
		for i, pt := range path {
			pts[i] = []float64{pt.X, pt.Y, pt.T, float64(pt.Tag)}
		}
		jp.Paths[r] = pts
	}
	return jp
}
