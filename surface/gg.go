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
	"io"

	"github.com/gogpu/gg"
	"seehuhn.de/go/geom/vec"
)

// GG is a surface which paints through a gogpu/gg drawing context.
type GG struct {
	// Background is the colour used by Clear.
	Background color.NRGBA

	dc  *gg.Context
	err error
}

// NewGG creates a gg context of the given size.
func NewGG(width, height int) *GG {
	return &GG{dc: gg.NewContext(max(width, 1), max(height, 1))}
}

// Size returns the size of the surface in pixels.
func (s *GG) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize changes the size of the drawing context.  The contents are
// cleared.
func (s *GG) Resize(width, height int) {
	s.keep(s.dc.Resize(max(width, 1), max(height, 1)))
	s.Clear()
}

// Clear fills the context with the background colour.
func (s *GG) Clear() {
	if s.Background.A == 0 {
		s.dc.Clear()
		return
	}
	bg := s.Background
	s.dc.ClearWithColor(gg.RGBA2(float64(bg.R)/255, float64(bg.G)/255, float64(bg.B)/255, float64(bg.A)/255))
}

// FillCircle paints a disk.
func (s *GG) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	alpha *= float64(col.A) / 255
	if radius <= 0 || alpha <= 0 {
		return
	}
	s.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, min(alpha, 1))
	s.dc.DrawCircle(center.X, center.Y, radius)
	s.keep(s.dc.Fill())
}

// keep records the first error returned by the drawing context.
func (s *GG) keep(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Err returns the first error reported by the drawing context, if any.
func (s *GG) Err() error {
	return s.err
}

// Flush completes pending drawing operations.  It returns the first
// error reported by the drawing context since the surface was created.
func (s *GG) Flush() error {
	s.keep(s.dc.FlushGPU())
	return s.err
}

// Image returns the current contents of the context.
func (s *GG) Image() image.Image {
	s.keep(s.dc.FlushGPU())
	return s.dc.Image()
}

// EncodePNG writes the current contents of the context as a PNG image.
func (s *GG) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (s *GG) Close() error {
	return s.dc.Close()
}
