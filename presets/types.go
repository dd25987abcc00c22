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

// Package presets is a catalogue of fingerprint pattern configurations.
//
// The presets are used by the tests of the drawing surfaces, by the
// JSON exporter in presets/export, and by presets/genpdf, which writes
// PDF and PNG proofs of every preset.
package presets

import (
	"seehuhn.de/go/fingerprint/pattern"
)

// Preset describes one pattern snapshot.
type Preset struct {
	Name      string       // lowercase a-z, 0-9 and _ only
	Kind      pattern.Kind // the generator to use
	Variation int          // plain arch style variation
	Spine     int          // double loop spine ridges
	Width     int          // canvas width in pixels
	Height    int          // canvas height in pixels

	// Params are the density parameters.  Zero fields are replaced by
	// the values in pattern.DefaultParams.
	Params pattern.Params
}

// Generator returns the generator described by the preset.
func (p Preset) Generator() pattern.Generator {
	switch p.Kind {
	case pattern.KindRadialLoop:
		return pattern.RadialLoop{}
	case pattern.KindPlainArch:
		return pattern.PlainArch{Variation: p.Variation}
	case pattern.KindTentedArch:
		return pattern.TentedArch{}
	case pattern.KindDoubleLoop:
		return pattern.DoubleLoop{SpineRidges: p.Spine}
	default:
		return pattern.Whorl{}
	}
}

// Density returns the density parameters with defaults filled in.
func (p Preset) Density() pattern.Params {
	d := p.Params
	if d.RadiusFraction == 0 {
		d.RadiusFraction = pattern.DefaultParams.RadiusFraction
	}
	if d.Ridges == 0 {
		d.Ridges = pattern.DefaultParams.Ridges
	}
	if d.PointsPerRidge == 0 {
		d.PointsPerRidge = pattern.DefaultParams.PointsPerRidge
	}
	return d
}

// Pattern generates the pattern described by the preset.
func (p Preset) Pattern() *pattern.Pattern {
	return pattern.New(p.Generator(), p.Width, p.Height, p.Density())
}

// FullName returns the category and name, joined by an underscore.
func FullName(category string, p Preset) string {
	return category + "_" + p.Name
}
