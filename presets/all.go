// seehuhn.de/go/fingerprint - animated fingerprint ridge patterns
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

package presets

import (
	"fmt"

	"seehuhn.de/go/fingerprint/pattern"
)

// All contains all presets, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Preset{
	"whorl":   whorlPresets,
	"loop":    loopPresets,
	"arch":    archPresets,
	"tented":  tentedPresets,
	"double":  doublePresets,
	"density": densityPresets,
}

var whorlPresets = []Preset{
	{Name: "default", Kind: pattern.KindWhorl, Width: 400, Height: 400},
	{Name: "landscape", Kind: pattern.KindWhorl, Width: 640, Height: 360},
	{Name: "portrait", Kind: pattern.KindWhorl, Width: 300, Height: 480},
}

var loopPresets = []Preset{
	{Name: "default", Kind: pattern.KindRadialLoop, Width: 400, Height: 400},
	{Name: "small", Kind: pattern.KindRadialLoop, Width: 160, Height: 120},
}

var archPresets = archVariations()

func archVariations() []Preset {
	var res []Preset
	for v := range pattern.PlainArchVariations {
		res = append(res, Preset{
			Name:      fmt.Sprintf("variation_%02d", v),
			Kind:      pattern.KindPlainArch,
			Variation: v,
			Width:     480,
			Height:    360,
		})
	}
	return res
}

var tentedPresets = []Preset{
	{Name: "default", Kind: pattern.KindTentedArch, Width: 480, Height: 360},
	{Name: "square", Kind: pattern.KindTentedArch, Width: 400, Height: 400},
}

var doublePresets = []Preset{
	{Name: "cores", Kind: pattern.KindDoubleLoop, Width: 400, Height: 400,
		Params: pattern.Params{PointsPerRidge: 120}},
	{Name: "spine", Kind: pattern.KindDoubleLoop, Spine: 8, Width: 400, Height: 400,
		Params: pattern.Params{PointsPerRidge: 120}},
}

var densityPresets = []Preset{
	{Name: "sparse_whorl", Kind: pattern.KindWhorl, Width: 400, Height: 400,
		Params: pattern.Params{Ridges: 5, PointsPerRidge: 20}},
	{Name: "dense_whorl", Kind: pattern.KindWhorl, Width: 400, Height: 400,
		Params: pattern.Params{Ridges: 30, PointsPerRidge: 80}},
	{Name: "single_arch", Kind: pattern.KindPlainArch, Width: 400, Height: 300,
		Params: pattern.Params{Ridges: 1}},
	{Name: "wide_tent", Kind: pattern.KindTentedArch, Width: 400, Height: 400,
		Params: pattern.Params{RadiusFraction: 0.45}},
}

// Find returns the preset with the given full name, as returned by
// FullName.
func Find(fullName string) (string, Preset, bool) {
	for category, list := range All {
		for _, p := range list {
			if FullName(category, p) == fullName {
				return category, p, true
			}
		}
	}
	return "", Preset{}, false
}
