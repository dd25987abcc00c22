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

	"seehuhn.de/go/geom/vec"
)

// Dot is one recorded FillCircle call.
type Dot struct {
	Center vec.Vec2
	Radius float64
	Color  color.NRGBA
	Alpha  float64
}

// Recorder is a surface which records the dots painted since the last
// call to Clear.  It is used to inspect render passes.
type Recorder struct {
	Width, Height int

	// Dots lists the dots painted since the last Clear.
	Dots []Dot

	// Clears counts the calls to Clear.
	Clears int
}

// NewRecorder returns a recorder which reports the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size returns the configured size.
func (s *Recorder) Size() (int, int) {
	return s.Width, s.Height
}

// Resize changes the reported size and clears the recorded dots.
func (s *Recorder) Resize(width, height int) {
	s.Width = width
	s.Height = height
	s.Clear()
}

// Clear removes all recorded dots.
func (s *Recorder) Clear() {
	s.Dots = s.Dots[:0]
	s.Clears++
}

// FillCircle records a dot.
func (s *Recorder) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	s.Dots = append(s.Dots, Dot{Center: center, Radius: radius, Color: col, Alpha: alpha})
}
