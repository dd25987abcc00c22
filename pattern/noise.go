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

import "math"

// Hash returns a pseudo-random value in [0, 1) which depends only on the
// pair (a, b).  It is used wherever a drawing decision must not change
// when the same point is drawn again.
func Hash(a, b float64) float64 {
	s := math.Sin(a*127.1+b*311.7) * 43758.5453123
	f := s - math.Floor(s)
	if f >= 1 {
		// s was a tiny negative number and the subtraction rounded up
		return 0
	}
	return f
}
