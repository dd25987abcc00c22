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
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// Vector is a raster surface which uses golang.org/x/image/vector for
// anti-aliasing.  Each dot is rasterised into a mask covering only its
// bounding box, clipped to the surface.
type Vector struct {
	// Background is the colour used by Clear.
	Background color.NRGBA

	img *image.RGBA
	z   *vector.Rasterizer
	src *image.Uniform
}

// NewVector allocates a vector surface of the given size.
func NewVector(width, height int) *Vector {
	s := &Vector{
		z:   vector.NewRasterizer(0, 0),
		src: image.NewUniform(color.NRGBA{}),
	}
	s.Resize(width, height)
	return s
}

// Size returns the size of the surface in pixels.
func (s *Vector) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the pixel buffer.  The contents are cleared.
func (s *Vector) Resize(width, height int) {
	s.img = image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	fill(s.img, s.Background)
}

// Clear fills the surface with the background colour.
func (s *Vector) Clear() {
	fill(s.img, s.Background)
}

// FillCircle paints a disk.
func (s *Vector) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	a := alpha8(alpha * float64(col.A) / 255)
	if radius <= 0 || a == 0 {
		return
	}

	box := image.Rect(
		int(math.Floor(center.X-radius)), int(math.Floor(center.Y-radius)),
		int(math.Ceil(center.X+radius)), int(math.Ceil(center.Y+radius)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	// circle coordinates relative to the mask origin
	cx := float32(center.X - float64(box.Min.X))
	cy := float32(center.Y - float64(box.Min.Y))
	r := float32(radius)
	k := r * 0.5522847498

	s.z.Reset(box.Dx(), box.Dy())
	s.z.DrawOp = draw.Over
	s.z.MoveTo(cx+r, cy)
	s.z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	s.z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	s.z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	s.z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	s.z.ClosePath()

	s.src.C = color.NRGBA{R: col.R, G: col.G, B: col.B, A: a}
	s.z.Draw(s.img, box, s.src, image.Point{})
}

// RGBA returns the pixel buffer.
func (s *Vector) RGBA() *image.RGBA {
	return s.img
}
