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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/fingerprint/raster"
)

// PDF is a surface which collects dots and writes them as a single page
// PDF file.  Dots are painted in grey on a white page: each dot is
// rendered with the grey value it would have if composited onto white
// paper.  This gives a print proof of the ridge structure.
//
// One unit in drawing coordinates is one PDF point.
type PDF struct {
	width, height int
	dots          []pdfDot
}

type pdfDot struct {
	center vec.Vec2
	radius float64
	gray   float64
}

// NewPDF creates an empty PDF surface with the given page size in points.
func NewPDF(width, height int) *PDF {
	return &PDF{width: width, height: height}
}

// Size returns the page size.
func (s *PDF) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the page size and removes all dots.
func (s *PDF) Resize(width, height int) {
	s.width = width
	s.height = height
	s.Clear()
}

// Clear removes all dots.
func (s *PDF) Clear() {
	s.dots = s.dots[:0]
}

// Len returns the number of dots collected since the last Clear.
func (s *PDF) Len() int {
	return len(s.dots)
}

// FillCircle records a disk.
func (s *PDF) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	alpha = min(1, alpha*float64(col.A)/255)
	if radius <= 0 || alpha <= 0 {
		return
	}
	s.dots = append(s.dots, pdfDot{
		center: center,
		radius: radius,
		gray:   1 - alpha*(1-luma(col)),
	})
}

// luma returns the relative luminance of c in [0, 1].
func luma(c color.NRGBA) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// WriteFile writes the collected dots to a PDF file.
func (s *PDF) WriteFile(fname string) error {
	w, h := float64(s.width), float64(s.height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(pdfcolor.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left, drawing coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	var p path.Data
	gray := -1.0
	for _, d := range s.dots {
		if d.gray != gray {
			gray = d.gray
			page.SetFillColor(pdfcolor.DeviceGray(gray))
		}
		raster.Circle(&p, d.center, d.radius)
		k := 0
		for _, cmd := range p.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(p.Coords[k].X, p.Coords[k].Y)
				k++
			case path.CmdCubeTo:
				c := p.Coords[k : k+3]
				page.CurveTo(c[0].X, c[0].Y, c[1].X, c[1].Y, c[2].X, c[2].Y)
				k += 3
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Fill()
	}

	return page.Close()
}
