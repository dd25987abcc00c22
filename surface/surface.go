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

// Package surface provides drawing targets for fingerprint patterns.
//
// All surfaces implement the same small contract: they report their size
// in pixels, can be cleared, and paint filled circles with a straight
// alpha colour, composited source-over.  Image and Vector are raster
// surfaces backed by an [image.RGBA]; GG paints through a gogpu/gg
// context; PDF keeps the dots and writes them as a vector page; Recorder
// only logs the calls.
package surface

import (
	"image"
	"image/color"
	"image/draw"
)

// Common background colours.
var (
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.NRGBA{A: 255}
)

// premultiply converts a straight alpha colour to the premultiplied form
// used by [image.RGBA].
func premultiply(c color.NRGBA) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fill sets every pixel of img to bg.
func fill(img *image.RGBA, bg color.NRGBA) {
	if bg.A == 0 {
		clear(img.Pix)
		return
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(premultiply(bg)), image.Point{}, draw.Src)
}

// alpha8 converts an opacity in [0, 1] to an 8-bit value.
func alpha8(alpha float64) uint8 {
	return uint8(max(0, min(1, alpha))*255 + 0.5)
}
