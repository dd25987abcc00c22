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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// rotation returns the matrix which rotates the plane by angle (in
// radians) about the centre c.  In canvas coordinates, where y grows
// downwards, positive angles turn clockwise on screen.
func rotation(c vec.Vec2, angle float64) matrix.Matrix {
	s, co := math.Sincos(angle)
	return matrix.Matrix{
		co, s,
		-s, co,
		c.X - c.X*co + c.Y*s, c.Y - c.X*s - c.Y*co,
	}
}

// apply maps v through the affine transformation m.
func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// polar returns the unit vector at the given angle.
func polar(angle float64) vec.Vec2 {
	s, c := math.Sincos(angle)
	return vec.Vec2{X: c, Y: s}
}

// normalize returns v scaled to unit length.  The zero vector is returned
// unchanged.
func normalize(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

func clamp01(x float64) float64 {
	return max(0, min(1, x))
}

// smoothstep is the cubic Hermite step 3x²-2x³ on [0, 1].
func smoothstep(x float64) float64 {
	x = clamp01(x)
	return x * x * (3 - 2*x)
}

// smootherstep is the quintic step 6x⁵-15x⁴+10x³ on [0, 1].
func smootherstep(x float64) float64 {
	x = clamp01(x)
	return x * x * x * (x*(x*6-15) + 10)
}

// seamMask is a narrow Gaussian bump centred on t = 0.5.
func seamMask(t float64) float64 {
	d := (t - 0.5) / 0.05
	return math.Exp(-d * d)
}
