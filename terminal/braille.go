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

package terminal

import (
	"image"
	"image/color"
)

// brailleBits maps a dot position (column, row) inside a character cell
// to its bit in the braille code point.
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const brailleBase = 0x2800

// Cell is one terminal character of a braille rendering.
type Cell struct {
	Rune  rune
	Color color.NRGBA
}

// Blank reports whether no dot of the cell is set.
func (c Cell) Blank() bool {
	return c.Rune == brailleBase || c.Rune == 0
}

// Braille converts the 2×4 pixel block of img at character position
// (col, row) into a braille character.  A dot is set if the alpha of the
// pixel is at least threshold.  The colour of the cell is the average
// colour of the pixels which are set.  Pixels outside img are unset.
func Braille(img *image.RGBA, col, row int, threshold uint8) Cell {
	var bits uint
	var r, g, b, n uint32
	x0 := img.Rect.Min.X + 2*col
	y0 := img.Rect.Min.Y + 4*row
	for dx := range 2 {
		for dy := range 4 {
			p := image.Pt(x0+dx, y0+dy)
			if !p.In(img.Rect) {
				continue
			}
			c := img.RGBAAt(p.X, p.Y)
			if c.A == 0 || c.A < threshold {
				continue
			}
			bits |= 1 << brailleBits[dx][dy]
			// un-premultiply
			r += uint32(c.R) * 255 / uint32(c.A)
			g += uint32(c.G) * 255 / uint32(c.A)
			b += uint32(c.B) * 255 / uint32(c.A)
			n++
		}
	}

	cell := Cell{Rune: rune(brailleBase + bits)}
	if n > 0 {
		cell.Color = color.NRGBA{
			R: uint8(min(255, r/n)),
			G: uint8(min(255, g/n)),
			B: uint8(min(255, b/n)),
			A: 255,
		}
	}
	return cell
}

// cells returns the size of img in character cells, rounding up.
func cells(img *image.RGBA) (cols, rows int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return (w + 1) / 2, (h + 3) / 4
}
