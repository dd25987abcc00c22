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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

type dot struct {
	center vec.Vec2
	radius float64
	col    color.NRGBA
	alpha  float64
}

type dotCanvas struct {
	dots []dot
}

func (c *dotCanvas) FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64) {
	c.dots = append(c.dots, dot{center, radius, col, alpha})
}

func revealAll(p *Pattern) []int {
	res := make([]int, len(p.Paths))
	for r, path := range p.Paths {
		res[r] = len(path)
	}
	return res
}

func TestFade(t *testing.T) {
	assert.Equal(t, 1.0, Fade(0))
	assert.Equal(t, 1.0, Fade(0.78))
	assert.Equal(t, 0.0, Fade(1))
	assert.InDelta(t, 0.5, Fade(0.88), 1e-12)

	prev := Fade(0)
	for i := 1; i <= 1000; i++ {
		f := Fade(float64(i) / 1000)
		require.LessOrEqual(t, f, prev)
		require.GreaterOrEqual(t, f, 0.0)
		prev = f
	}
}

func TestDotSize(t *testing.T) {
	for r := range 20 {
		for i := range 200 {
			s := DotSize(r, i)
			if s < 0.9-1e-12 || s > 3.3+1e-12 {
				t.Fatalf("DotSize(%d, %d) = %g", r, i, s)
			}
		}
	}
}

func TestDrawGradientPrefix(t *testing.T) {
	p := New(Whorl{}, 640, 480, DefaultParams)
	revealed := make([]int, len(p.Paths))
	revealed[0] = 3
	revealed[2] = 1_000_000 // clamped to the ridge length

	c := &dotCanvas{}
	p.Draw(c, revealed, DrawOptions{})
	require.Len(t, c.dots, 3+len(p.Paths[2]))

	for i := range 3 {
		pt := p.Paths[0][i]
		assert.Equal(t, pt.Vec2, c.dots[i].center)
		assert.Equal(t, DotSize(0, i), c.dots[i].radius)
	}
	assert.Equal(t, Blue, c.dots[0].col)
	assert.Equal(t, alphaBase, c.dots[0].alpha)
}

func TestDrawShortRevealSlice(t *testing.T) {
	p := New(RadialLoop{}, 640, 480, DefaultParams)
	c := &dotCanvas{}
	p.Draw(c, []int{2}, DrawOptions{})
	assert.Len(t, c.dots, 2)
}

func TestDrawSkipsEmptyRidge(t *testing.T) {
	p := &Pattern{gen: Whorl{}}
	p.Ridges = 2
	p.Paths = []Path{
		{},
		{{Vec2: vec.Vec2{X: 1, Y: 2}, T: 0.5}},
	}
	c := &dotCanvas{}
	p.Draw(c, []int{5, 5}, DrawOptions{})
	require.Len(t, c.dots, 1)
	assert.Equal(t, Purple, c.dots[0].col)
}

func TestDrawTriColor(t *testing.T) {
	p := New(PlainArch{}, 640, 480, DefaultParams)
	revealed := make([]int, len(p.Paths))
	for r := range revealed {
		revealed[r] = 5
	}

	c := &dotCanvas{}
	p.Draw(c, revealed, DrawOptions{})
	require.Len(t, c.dots, 3*len(p.Paths)) // points 0, 2 and 4

	// the first third of each arch is blue, the last third pink
	assert.Equal(t, Blue, c.dots[0].col)
	assert.Equal(t, Pink, c.dots[3*14].col)
	assert.Equal(t, Blue, c.dots[3*15].col)

	for _, d := range c.dots {
		assert.Equal(t, alphaBase, d.alpha)
	}
}

func TestDrawJitter(t *testing.T) {
	p := New(TentedArch{}, 640, 480, DefaultParams)
	all := revealAll(p)

	a := &dotCanvas{}
	b := &dotCanvas{}
	p.Draw(a, all, DrawOptions{Jitter: JitterStable})
	p.Draw(b, all, DrawOptions{Jitter: JitterStable})
	require.Equal(t, a.dots, b.dots)

	i := 0
	for r, path := range p.Paths {
		for k := 0; k < len(path); k += 2 {
			d := a.dots[i].center.Sub(path[k].Vec2)
			require.LessOrEqual(t, math.Abs(d.X), jitterRange/2, "ridge %d", r)
			require.LessOrEqual(t, math.Abs(d.Y), jitterRange/2, "ridge %d", r)
			i++
		}
	}

	f1 := &dotCanvas{}
	f2 := &dotCanvas{}
	p.Draw(f1, all, DrawOptions{Jitter: JitterFlicker, Rand: rand.New(rand.NewPCG(1, 1))})
	p.Draw(f2, all, DrawOptions{Jitter: JitterFlicker, Rand: rand.New(rand.NewPCG(2, 2))})
	require.Len(t, f2.dots, len(f1.dots))
	assert.NotEqual(t, f1.dots, f2.dots)
}

func TestDrawSeam(t *testing.T) {
	p := New(DoubleLoop{SpineRidges: 3}, 640, 480, Params{RadiusFraction: 0.32, Ridges: 15, PointsPerRidge: 120})
	revealed := make([]int, len(p.Paths))
	revealed[0] = 20

	c := &dotCanvas{}
	p.Draw(c, revealed, DrawOptions{})
	require.Len(t, c.dots, 40)
	for k := 0; k < len(c.dots); k += 2 {
		under, main := c.dots[k], c.dots[k+1]
		assert.Equal(t, 1.0, under.alpha)
		assert.InDelta(t, main.radius*1.15, under.radius, 1e-12)
		assert.Equal(t, under.center, main.center)
		assert.LessOrEqual(t, main.alpha, 1.0)
	}
	// the first point of a core ridge is invisible
	assert.Equal(t, 0.0, c.dots[1].alpha)

	// spine ridges are drawn without underlay
	for r := range revealed {
		revealed[r] = 0
	}
	spine := len(p.Paths) - 1
	revealed[spine] = len(p.Paths[spine])
	c = &dotCanvas{}
	p.Draw(c, revealed, DrawOptions{})
	assert.GreaterOrEqual(t, len(c.dots), len(p.Paths[spine]))
	for _, d := range c.dots {
		assert.Less(t, d.alpha, 1.0)
	}
}

func TestSeamColors(t *testing.T) {
	p := New(DoubleLoop{}, 640, 480, DefaultParams)
	cols := seamColors(p.Paths, DefaultRamp)
	require.Len(t, cols, 12)
	assert.Equal(t, Blue, cols[0])
	assert.Equal(t, Purple, cols[6])
}
