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
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// The three colours of the fingerprint palette.
var (
	Blue   = color.NRGBA{R: 0x00, G: 0xbf, B: 0xff, A: 0xff}
	Purple = color.NRGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
	Pink   = color.NRGBA{R: 0xff, G: 0x69, B: 0xb4, A: 0xff}
)

// Lerp interpolates between a and b in RGB space.  The parameter t is
// clamped to [0, 1], and every channel is rounded to the nearest integer.
// The result is always opaque.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	r, g, bl := toColorful(a).BlendRgb(toColorful(b), t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Ramp is a three-stop colour gradient.  The first half of the ramp runs
// from the first to the second colour, the second half from the second to
// the third colour.
type Ramp [3]color.NRGBA

// DefaultRamp runs from blue over purple to pink.
var DefaultRamp = Ramp{Blue, Purple, Pink}

// At returns the ramp colour for t in [0, 1].  Values outside this range
// are clamped.
func (r Ramp) At(t float64) color.NRGBA {
	t = clamp01(t)
	if t < 0.5 {
		return Lerp(r[0], r[1], t*2)
	}
	return Lerp(r[1], r[2], (t-0.5)*2)
}

// Band returns the flat colour of band i (0, 1 or 2).
// Out of range indices are clamped.
func (r Ramp) Band(i int) color.NRGBA {
	return r[max(0, min(2, i))]
}
