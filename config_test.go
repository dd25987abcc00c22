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

package fingerprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/fingerprint/pattern"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 15, cfg.Ridges)
	assert.Equal(t, 50, cfg.PointsPerRidge)
	assert.Equal(t, 1800*time.Millisecond, cfg.CompletionDelay)
	assert.Equal(t, 0.32, cfg.RadiusFraction)
	assert.Equal(t, 12, cfg.PlainArchVariations)
	assert.Equal(t, 0, cfg.SpineRidges)

	assert.Equal(t, 50, cfg.params(pattern.KindWhorl).PointsPerRidge)
	assert.Equal(t, 120, cfg.params(pattern.KindDoubleLoop).PointsPerRidge)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		err    error
	}{
		{"no ridges", func(c *Config) { c.Ridges = 0 }, ErrInvalidConfig},
		{"no points", func(c *Config) { c.PointsPerRidge = 0 }, ErrInvalidConfig},
		{"no loop points", func(c *Config) { c.RadialLoopPoints = -1 }, ErrInvalidConfig},
		{"no double loop points", func(c *Config) { c.DoubleLoopPoints = 0 }, ErrInvalidConfig},
		{"stalled", func(c *Config) { c.PointsPerFrame = 0 }, ErrInvalidConfig},
		{"negative delay", func(c *Config) { c.CompletionDelay = -time.Second }, ErrInvalidConfig},
		{"zero radius", func(c *Config) { c.RadiusFraction = 0 }, ErrInvalidConfig},
		{"huge radius", func(c *Config) { c.RadiusFraction = 1.5 }, ErrInvalidConfig},
		{"too many variations", func(c *Config) { c.PlainArchVariations = 13 }, ErrInvalidConfig},
		{"no variations", func(c *Config) { c.PlainArchVariations = 0 }, ErrInvalidConfig},
		{"negative spine", func(c *Config) { c.SpineRidges = -1 }, ErrInvalidConfig},
		{"bad jitter", func(c *Config) { c.Jitter = 7 }, ErrInvalidConfig},
		{"bad pattern", func(c *Config) { c.Patterns = []pattern.Kind{pattern.KindWhorl, 9} }, ErrUnknownPattern},
		{"zero delay", func(c *Config) { c.CompletionDelay = 0 }, nil},
		{"one ridge", func(c *Config) { c.Ridges = 1 }, nil},
		{"with spine", func(c *Config) { c.SpineRidges = 4 }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestCycle(t *testing.T) {
	cfg := DefaultConfig()
	steps, err := Cycle(&cfg)
	require.NoError(t, err)
	require.Len(t, steps, 4+pattern.PlainArchVariations)

	var kinds []pattern.Kind
	for i, s := range steps {
		if i == 0 || steps[i-1].Kind() != s.Kind() {
			kinds = append(kinds, s.Kind())
		}
	}
	assert.Equal(t, pattern.Kinds, kinds)

	for v := range pattern.PlainArchVariations {
		s := steps[2+v]
		assert.Equal(t, pattern.KindPlainArch, s.Kind())
		assert.Equal(t, v, s.Variation)
		assert.Equal(t, pattern.PlainArch{Variation: v}, s.Generator)
	}

	cfg.Patterns = []pattern.Kind{pattern.KindDoubleLoop, pattern.KindWhorl}
	cfg.SpineRidges = 3
	steps, err = Cycle(&cfg)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, pattern.DoubleLoop{SpineRidges: 3}, steps[0].Generator)
	assert.Equal(t, pattern.KindWhorl, steps[1].Kind())

	_, err = Generator(pattern.Kind(42), &cfg)
	assert.ErrorIs(t, err, ErrUnknownPattern)
}
