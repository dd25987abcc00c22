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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

var allGenerators = []Generator{
	Whorl{},
	RadialLoop{},
	PlainArch{},
	TentedArch{},
	DoubleLoop{},
}

func TestPathCounts(t *testing.T) {
	for _, ridges := range []int{1, 15, 50} {
		want := map[Kind]int{
			KindWhorl:      ridges,
			KindRadialLoop: ridges,
			KindPlainArch:  2 * ridges,
			KindTentedArch: 3*ridges + 18,
			KindDoubleLoop: 12,
		}
		for _, gen := range allGenerators {
			name := fmt.Sprintf("%s_%d", gen.Kind(), ridges)
			t.Run(name, func(t *testing.T) {
				p := New(gen, 640, 480, Params{RadiusFraction: 0.32, Ridges: ridges, PointsPerRidge: 50})
				assert.Len(t, p.Paths, want[gen.Kind()])
			})
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, gen := range allGenerators {
		t.Run(gen.Kind().String(), func(t *testing.T) {
			a := New(gen, 800, 600, DefaultParams)
			b := New(gen, 800, 600, DefaultParams)
			require.Equal(t, a.Paths, b.Paths)
		})
	}
}

func TestGeneratedPoints(t *testing.T) {
	for _, gen := range allGenerators {
		t.Run(gen.Kind().String(), func(t *testing.T) {
			p := New(gen, 800, 600, DefaultParams)
			for r, path := range p.Paths {
				require.NotEmpty(t, path, "ridge %d", r)
				for i, pt := range path {
					if pt.T < 0 || pt.T > 1 {
						t.Fatalf("ridge %d point %d: t=%g", r, i, pt.T)
					}
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
						t.Fatalf("ridge %d point %d: NaN position", r, i)
					}
				}
			}
		})
	}
}

func TestGenerateScalesWithCanvas(t *testing.T) {
	small := New(Whorl{}, 400, 300, DefaultParams)
	large := New(Whorl{}, 800, 600, DefaultParams)
	assert.Equal(t, 300*0.32, small.MaxRadius)
	assert.Equal(t, vec.Vec2{X: 400, Y: 300}, large.Center)
	require.Len(t, large.Paths, len(small.Paths))
	for r := range small.Paths {
		assert.Len(t, large.Paths[r], len(small.Paths[r]))
	}
}

func TestNewModel(t *testing.T) {
	m := NewModel(640, 480, DefaultParams)
	assert.Equal(t, vec.Vec2{X: 320, Y: 240}, m.Center)
	assert.InDelta(t, 480*0.32, m.MaxRadius, 1e-9)
	assert.Empty(t, m.Paths)

	p := New(Whorl{}, 640, 480, DefaultParams)
	assert.Equal(t, m.Width, p.Width)
	assert.Equal(t, m.Height, p.Height)
	assert.Equal(t, m.Center, p.Center)
	assert.Equal(t, m.MaxRadius, p.MaxRadius)
	assert.Equal(t, DefaultParams.Ridges, p.Ridges)
	assert.Equal(t, DefaultParams.PointsPerRidge, p.PointsPerRidge)
}

func TestWhorlTurns(t *testing.T) {
	p := New(Whorl{}, 640, 480, DefaultParams)
	for r := 1; r < len(p.Paths); r++ {
		assert.GreaterOrEqual(t, len(p.Paths[r]), len(p.Paths[r-1]))
	}
	// at least 2.2 turns worth of samples on every ridge
	assert.GreaterOrEqual(t, len(p.Paths[0]), 110)
}

func TestRadialLoopNesting(t *testing.T) {
	p := New(RadialLoop{}, 640, 480, DefaultParams)
	last := p.Paths[len(p.Paths)-1]
	first := p.Paths[0]

	// the innermost ridges carry nested loops and trails, the outermost
	// ridge carries neither
	turns := 1.0 + 0.3*float64(len(p.Paths)-1)/float64(p.Ridges)
	assert.Equal(t, int(math.Ceil(50*turns)), len(last))
	assert.Greater(t, len(first), 4*50)
}

func TestPlainArchVariations(t *testing.T) {
	base := New(PlainArch{}, 640, 480, DefaultParams)
	for i := 1; i < PlainArchVariations; i++ {
		v := New(PlainArch{Variation: i}, 640, 480, DefaultParams)
		assert.NotEqual(t, base.Paths, v.Paths, "variation %d", i)
	}

	assert.Equal(t, PlainArchStyle(0), PlainArchStyle(PlainArchVariations))
	assert.Equal(t, PlainArchStyle(11), PlainArchStyle(-1))
	st := PlainArchStyle(0)
	assert.Equal(t, 1.0, st.Width)
	assert.Equal(t, 1.0, st.Height)
	assert.Equal(t, 1.0, st.Spacing)
}

func TestArchTrim(t *testing.T) {
	for _, gen := range []Generator{PlainArch{}, TentedArch{}} {
		p := New(gen, 640, 480, DefaultParams)
		for _, path := range p.Paths {
			for _, pt := range path {
				assert.GreaterOrEqual(t, pt.T, archTrimStart)
				assert.LessOrEqual(t, pt.T, archTrimEnd)
			}
		}
	}
}

func TestDoubleLoopTags(t *testing.T) {
	p := New(DoubleLoop{SpineRidges: 4}, 640, 480, Params{RadiusFraction: 0.32, Ridges: 15, PointsPerRidge: 120})
	require.Len(t, p.Paths, DoubleLoopRidges(4))
	for r, path := range p.Paths {
		want := TagNone
		switch {
		case r < coreRidges:
			want = TagRadialLeft
		case r < 2*coreRidges:
			want = TagRadialRight
		}
		require.NotEmpty(t, path)
		for _, pt := range path {
			require.Equal(t, want, pt.Tag, "ridge %d", r)
			if want != TagNone {
				require.LessOrEqual(t, pt.T, coreTrimEnd)
			}
		}
	}
}

func TestRotation(t *testing.T) {
	c := vec.Vec2{X: 10, Y: 20}
	m := rotation(c, math.Pi/2)
	fixed := apply(m, c)
	assert.InDelta(t, c.X, fixed.X, 1e-12)
	assert.InDelta(t, c.Y, fixed.Y, 1e-12)

	got := apply(m, vec.Vec2{X: 11, Y: 20})
	assert.InDelta(t, 10, got.X, 1e-12)
	assert.InDelta(t, 21, got.Y, 1e-12)

	back := apply(rotation(c, -math.Pi/2), got)
	assert.InDelta(t, 11, back.X, 1e-12)
	assert.InDelta(t, 20, back.Y, 1e-12)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("Tented_Arch")
	require.NoError(t, err)
	assert.Equal(t, KindTentedArch, got)

	_, err = ParseKind("spiral")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSteps(t *testing.T) {
	assert.Equal(t, 0.0, smoothstep(-1))
	assert.Equal(t, 1.0, smoothstep(2))
	assert.Equal(t, 0.5, smoothstep(0.5))
	assert.Equal(t, 0.5, smootherstep(0.5))
	assert.Equal(t, 1.0, seamMask(0.5))
	assert.Less(t, seamMask(0.7), 1e-6)
}
