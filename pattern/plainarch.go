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

package pattern

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// PlainArchVariations is the number of distinct plain arch styles.
const PlainArchVariations = 12

// ArchStyle scales the geometry of a plain arch.
type ArchStyle struct {
	Width   float64 // arch width multiplier
	Height  float64 // arch height multiplier
	Spacing float64 // ridge spacing multiplier
	Flow    float64 // amplitude of the flow noise, relative to the arch height
}

// PlainArchStyle returns the style of variation i.  Width, height and
// ridge spacing grow with i, so that consecutive variations are visibly
// different.  The index is taken modulo [PlainArchVariations].
func PlainArchStyle(i int) ArchStyle {
	i %= PlainArchVariations
	if i < 0 {
		i += PlainArchVariations
	}
	f := float64(i)
	return ArchStyle{
		Width:   (1.1 + 0.08*f) / 1.1,
		Height:  (0.7 + 0.04*f) / 0.7,
		Spacing: (2.2 + 0.2*f) / 2.2,
		Flow:    0.15 * (1 + 0.05*f),
	}
}

// PlainArch generates two stacked, overlapping arches.  Ridges are laid
// out in parallel layers perpendicular to the arch, and the second arch
// is shifted to the right so that both remain visible.
type PlainArch struct {
	Variation int
}

// Kind implements the [Generator] interface.
func (PlainArch) Kind() Kind { return KindPlainArch }

// Style implements the [Generator] interface.
func (PlainArch) Style() Style {
	return Style{Mode: TriColor, Palette: Ramp{Blue, Purple, Pink}}
}

const (
	archSpacing      = 1.8 // base distance between ridges
	archSecondOffset = 50  // horizontal shift of the second arch, in pixels
	archTrimStart    = 0.04
	archTrimEnd      = 0.96
	archTaper        = 0.15 // length of the end taper, in units of t
)

// Generate implements the [Generator] interface.
func (a PlainArch) Generate(m *Model) []Path {
	st := PlainArchStyle(a.Variation)
	paths := make([]Path, 0, 2*m.Ridges)
	for q := range 2 * m.Ridges {
		paths = append(paths, plainArchRidge(m, st, q))
	}
	return paths
}

func plainArchRidge(m *Model, st ArchStyle, q int) Path {
	arch := q / m.Ridges
	layer := float64(q%m.Ridges) - float64(m.Ridges)/2
	af := float64(arch)
	qf := float64(q)

	width := m.MaxRadius * (1.4 + 0.3*af) * st.Width
	height := m.MaxRadius * (0.9 + 0.2*af) * st.Height

	n := m.PointsPerRidge
	path := make(Path, 0, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		if t < archTrimStart || t > archTrimEnd {
			continue
		}
		taper := smootherstep(min(t, 1-t) / archTaper)

		w := width + taper*(2*math.Sin(t*math.Pi*2.2+qf*0.5)+
			math.Sin(t*math.Pi*3.8+qf*0.3)+
			0.5*math.Sin(t*math.Pi*6.1+qf*0.7))
		p := vec.Vec2{
			X: m.Center.X - w/2 + t*w,
			Y: m.Center.Y + height*(0.3+0.4*af),
		}
		p.Y -= math.Sin(t*math.Pi) * height * 0.7

		flow := math.Sin(t*math.Pi*1.5+qf*0.2)*0.15 +
			math.Sin(t*math.Pi*2.8+qf*0.4)*0.08 +
			math.Sin(t*math.Pi*4.2+qf*0.6)*0.04
		p.Y -= taper * flow * height * st.Flow

		spacing := archSpacing*st.Spacing + taper*(0.6*math.Sin(t*math.Pi*2.1+qf*0.4)+
			0.3*math.Sin(t*math.Pi*4.3+qf*0.7)+
			0.15*math.Sin(t*math.Pi*6.5+qf*1.1)+
			0.08*math.Sin(t*math.Pi*9.2+qf*1.3)+
			0.04*math.Sin(t*math.Pi*13.1+qf*1.7))
		perp := normalize(vec.Vec2{X: -math.Cos(t*math.Pi) * height, Y: 1})
		p = p.Add(perp.Mul(layer * spacing))

		if arch == 1 {
			p.X += archSecondOffset
		}
		path = append(path, Point{Vec2: p, T: t})
	}
	return path
}
