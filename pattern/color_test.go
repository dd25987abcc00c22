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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	pairs := [][2]color.NRGBA{
		{Blue, Purple},
		{Purple, Pink},
		{Pink, Blue},
	}
	for _, p := range pairs {
		assert.Equal(t, p[0], Lerp(p[0], p[1], 0))
		assert.Equal(t, p[1], Lerp(p[0], p[1], 1))
	}
}

func TestLerpClamp(t *testing.T) {
	assert.Equal(t, Blue, Lerp(Blue, Pink, -3))
	assert.Equal(t, Pink, Lerp(Blue, Pink, 7))
}

func TestLerpMidpoint(t *testing.T) {
	a := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.NRGBA{R: 100, G: 200, B: 0, A: 255}
	got := Lerp(a, b, 0.25)
	assert.Equal(t, color.NRGBA{R: 25, G: 125, B: 150, A: 255}, got)
}

func TestRamp(t *testing.T) {
	assert.Equal(t, Blue, DefaultRamp.At(0))
	assert.Equal(t, Purple, DefaultRamp.At(0.5))
	assert.Equal(t, Pink, DefaultRamp.At(1))
	assert.Equal(t, Pink, DefaultRamp.At(1.5))

	// every channel moves monotonically within each half
	prev := DefaultRamp.At(0)
	for i := 1; i <= 50; i++ {
		cur := DefaultRamp.At(float64(i) / 100)
		assert.GreaterOrEqual(t, cur.R, prev.R)
		assert.LessOrEqual(t, cur.G, prev.G)
		prev = cur
	}
}

func TestRampBand(t *testing.T) {
	r := Ramp{Blue, Pink, Purple}
	assert.Equal(t, Blue, r.Band(-1))
	assert.Equal(t, Pink, r.Band(1))
	assert.Equal(t, Purple, r.Band(2))
	assert.Equal(t, Purple, r.Band(5))
}
