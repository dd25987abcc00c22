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

// Package terminal shows fingerprint animations in a text terminal.
//
// Every character cell displays a 2×4 block of pixels as a braille
// pattern, coloured with the average colour of the pixels which are set.
package terminal

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/fingerprint/surface"
)

// DefaultZoom is the number of drawing units per braille dot used by
// NewScreen.
const DefaultZoom = 4

// Screen is a drawing surface backed by a tcell screen.
//
// Drawing goes to an off-screen image, which is copied to the terminal
// by Flush.  The drawing coordinates are Zoom times finer than the
// braille dots, so that patterns are laid out as if for a larger canvas.
type Screen struct {
	// Threshold is the minimum pixel alpha for a braille dot to be set.
	Threshold uint8

	scr   tcell.Screen
	zoom  float64
	img   *surface.Image
	style tcell.Style
}

// NewScreen returns a surface which covers the whole of scr.
// The tcell screen must have been initialised.
func NewScreen(scr tcell.Screen, zoom float64) *Screen {
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	s := &Screen{
		Threshold: 64,
		scr:       scr,
		zoom:      zoom,
		style:     tcell.StyleDefault,
	}
	cols, rows := scr.Size()
	size := s.DrawingSize(cols, rows)
	s.img = surface.NewScaledImage(size.X, size.Y, 1/zoom)
	return s
}

// DrawingSize converts a terminal size in character cells into the size
// of the drawing area.
func (s *Screen) DrawingSize(cols, rows int) image.Point {
	return image.Pt(
		int(math.Round(float64(2*cols)*s.zoom)),
		int(math.Round(float64(4*rows)*s.zoom)))
}

// Size returns the size of the drawing area.
func (s *Screen) Size() (int, int) {
	return s.img.Size()
}

// Resize changes the size of the drawing area.
func (s *Screen) Resize(width, height int) {
	s.img.Resize(width, height)
}

// Clear erases the off-screen image.
func (s *Screen) Clear() {
	s.img.Clear()
}

// FillCircle paints a disk onto the off-screen image.
func (s *Screen) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	s.img.FillCircle(center, radius, col, alpha)
}

// Flush copies the off-screen image to the terminal.
func (s *Screen) Flush() error {
	img := s.img.RGBA()
	imgCols, imgRows := cells(img)
	cols, rows := s.scr.Size()
	for row := range rows {
		for col := range cols {
			var cell Cell
			if col < imgCols && row < imgRows {
				cell = Braille(img, col, row, s.Threshold)
			}
			if cell.Blank() {
				s.scr.SetContent(col, row, ' ', nil, s.style)
				continue
			}
			fg := tcell.NewRGBColor(int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B))
			s.scr.SetContent(col, row, cell.Rune, nil, s.style.Foreground(fg))
		}
	}
	s.scr.Show()
	return nil
}
