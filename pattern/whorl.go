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

// Whorl generates concentric elliptical spirals.  Ridge r makes between
// 2.2 and 4.7 turns, with more turns for the outer ridges, and is sampled
// proportionally to its number of turns.
type Whorl struct{}

// Kind implements the [Generator] interface.
func (Whorl) Kind() Kind { return KindWhorl }

// Style implements the [Generator] interface.
func (Whorl) Style() Style { return Style{Mode: Gradient, Palette: DefaultRamp} }

// Generate implements the [Generator] interface.
func (Whorl) Generate(m *Model) []Path {
	paths := make([]Path, 0, m.Ridges)
	for r := range m.Ridges {
		paths = append(paths, whorlRidge(m, r, m.baseOffset(r)))
	}
	return paths
}

func whorlRidge(m *Model, r int, base float64) Path {
	rf := float64(r)
	turns := 2.2 + 2.5*rf/float64(m.Ridges)
	total := float64(m.PointsPerRidge) * turns
	n := int(math.Ceil(total))

	path := make(Path, 0, n)
	for i := range n {
		t := float64(i) / total
		theta := t * 2 * math.Pi * turns

		flow := math.Sin(theta*1.2+rf*0.18)*0.18 +
			math.Sin(theta*3.1+rf*0.5)*0.07
		rr := base + t*13 + math.Sin(theta*2.5+rf*0.7)*2

		s, c := math.Sincos(theta + flow)
		pos := vec.Vec2{
			X: m.Center.X + rr*c*0.7,
			Y: m.Center.Y + rr*s*1.15,
		}
		path = append(path, Point{Vec2: pos, T: t})
	}
	return path
}
