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

package surface

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fingerprint/raster"
)

// Image is a raster surface which uses the anti-aliasing rasteriser from
// the raster package.
//
// An Image can be created with a scale factor, in which case drawing
// coordinates are multiplied by the scale before rasterisation.  This is
// useful for rendering high resolution stills.
type Image struct {
	// Background is the colour used by Clear.  The zero value clears to
	// transparent black.
	Background color.NRGBA

	width, height int
	scale         float64
	img           *image.RGBA
	r             *raster.Rasteriser
	circle        path.Data

	// colour of the dot currently being painted, premultiplied by 1
	src   [3]float32
	alpha float32
	emit  func(y, xMin int, coverage []float32)
}

// dotFlatness gives visually round dots down to a radius of one pixel.
const dotFlatness = 0.05

// NewImage allocates an image surface of the given size.
func NewImage(width, height int) *Image {
	return NewScaledImage(width, height, 1)
}

// NewScaledImage allocates an image surface with the given logical size,
// backed by a pixel buffer which is scale times larger in each direction.
func NewScaledImage(width, height int, scale float64) *Image {
	s := &Image{scale: scale}
	s.r = raster.NewRasteriser(rect.Rect{})
	s.r.Flatness = dotFlatness
	s.r.CTM = matrix.Scale(scale, scale)
	s.emit = s.blendRow
	s.Resize(width, height)
	return s
}

// Size returns the logical size of the surface.
func (s *Image) Size() (int, int) {
	return s.width, s.height
}

// Resize reallocates the pixel buffer.  The contents are cleared.
func (s *Image) Resize(width, height int) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	pw := int(math.Ceil(float64(s.width) * s.scale))
	ph := int(math.Ceil(float64(s.height) * s.scale))
	s.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	s.r.Clip = rect.Rect{URx: float64(pw), URy: float64(ph)}
	fill(s.img, s.Background)
}

// Clear fills the surface with the background colour.
func (s *Image) Clear() {
	fill(s.img, s.Background)
}

// FillCircle paints a disk.
func (s *Image) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	alpha *= float64(col.A) / 255
	if radius <= 0 || alpha <= 0 {
		return
	}
	s.src = [3]float32{float32(col.R), float32(col.G), float32(col.B)}
	s.alpha = float32(min(alpha, 1))
	raster.Circle(&s.circle, center, radius)
	s.r.Fill(&s.circle, s.emit)
}

// blendRow composites one row of coverage onto the pixel buffer.
func (s *Image) blendRow(y, xMin int, coverage []float32) {
	off := s.img.PixOffset(xMin, y)
	pix := s.img.Pix[off : off+4*len(coverage)]
	for i, c := range coverage {
		a := c * s.alpha
		if a <= 0 {
			continue
		}
		p := pix[4*i : 4*i+4 : 4*i+4]
		keep := 1 - a
		p[0] = uint8(s.src[0]*a + float32(p[0])*keep + 0.5)
		p[1] = uint8(s.src[1]*a + float32(p[1])*keep + 0.5)
		p[2] = uint8(s.src[2]*a + float32(p[2])*keep + 0.5)
		p[3] = uint8(255*a + float32(p[3])*keep + 0.5)
	}
}

// RGBA returns the pixel buffer.  The image is owned by the surface and
// changes when the surface is drawn on.
func (s *Image) RGBA() *image.RGBA {
	return s.img
}
