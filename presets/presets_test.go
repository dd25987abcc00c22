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

package presets

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fingerprint/pattern"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, list := range All {
		require.Regexp(t, validName, category)
		for _, p := range list {
			full := FullName(category, p)
			assert.Regexp(t, validName, p.Name)
			assert.False(t, seen[full], "duplicate preset %s", full)
			seen[full] = true

			c, q, ok := Find(full)
			require.True(t, ok, full)
			assert.Equal(t, category, c)
			assert.Equal(t, p, q)
		}
	}
	_, _, ok := Find("whorl_missing")
	assert.False(t, ok)
}

// expectedPaths gives the number of ridges generated for a preset.
func expectedPaths(p Preset) int {
	ridges := p.Density().Ridges
	switch p.Kind {
	case pattern.KindPlainArch:
		return 2 * ridges
	case pattern.KindTentedArch:
		return pattern.TentedArchRidges(ridges)
	case pattern.KindDoubleLoop:
		return pattern.DoubleLoopRidges(p.Spine)
	default:
		return ridges
	}
}

func TestPresets(t *testing.T) {
	for category, list := range All {
		for _, p := range list {
			t.Run(FullName(category, p), func(t *testing.T) {
				pat := p.Pattern()
				assert.Equal(t, p.Kind, pat.Kind())
				assert.Equal(t, p.Width, pat.Width)
				assert.Equal(t, p.Height, pat.Height)
				require.Len(t, pat.Paths, expectedPaths(p))

				// Patterns may reach slightly beyond the canvas, but
				// never far.
				margin := float64(max(p.Width, p.Height))
				for r, path := range pat.Paths {
					for i, pt := range path {
						if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
							t.Fatalf("ridge %d point %d: NaN", r, i)
						}
						if pt.X < -margin || pt.X > float64(p.Width)+margin ||
							pt.Y < -margin || pt.Y > float64(p.Height)+margin {
							t.Fatalf("ridge %d point %d: (%g, %g) far outside",
								r, i, pt.X, pt.Y)
						}
					}
				}
			})
		}
	}
}

func TestDensity(t *testing.T) {
	d := Preset{}.Density()
	assert.Equal(t, pattern.DefaultParams, d)

	d = Preset{Params: pattern.Params{Ridges: 3}}.Density()
	assert.Equal(t, 3, d.Ridges)
	assert.Equal(t, pattern.DefaultParams.PointsPerRidge, d.PointsPerRidge)
}

func TestArchVariations(t *testing.T) {
	require.Len(t, All["arch"], pattern.PlainArchVariations)
	for v, p := range All["arch"] {
		assert.Equal(t, pattern.PlainArch{Variation: v}, p.Generator())
	}
}
