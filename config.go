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
	"fmt"
	"slices"
	"time"

	"seehuhn.de/go/fingerprint/pattern"
)

// Config holds the parameters of an animation.
// The zero value is not useful; start from [DefaultConfig].
type Config struct {
	// Ridges is the number of ridges per ridge set.
	Ridges int

	// PointsPerRidge is the number of samples per ridge of the whorl and
	// arch patterns.
	PointsPerRidge int

	// RadialLoopPoints and DoubleLoopPoints are the sample densities of
	// the two loop patterns.  The cores of the double loop use half of
	// DoubleLoopPoints.
	RadialLoopPoints int
	DoubleLoopPoints int

	// PointsPerFrame is the number of points revealed on every ridge
	// per animation frame.
	PointsPerFrame int

	// CompletionDelay is the time a completed pattern stays on screen
	// before the next pattern is generated.
	CompletionDelay time.Duration

	// RadiusFraction is the maximum ridge radius as a fraction of the
	// smaller surface dimension.
	RadiusFraction float64

	// PlainArchVariations is the number of style variations shown for
	// the plain arch before the cycle moves on.
	PlainArchVariations int

	// SpineRidges is the number of S-curve ridges connecting the two
	// cores of the double loop.
	SpineRidges int

	// Jitter selects the positional noise of the arch patterns.
	Jitter pattern.Jitter

	// Seed seeds the random source used for [pattern.JitterFlicker].
	Seed uint64

	// Patterns is the cycle order.  If empty, all kinds are shown in
	// the order given by [pattern.Kinds].
	Patterns []pattern.Kind
}

// DefaultConfig returns the default animation parameters.
func DefaultConfig() Config {
	return Config{
		Ridges:              pattern.DefaultParams.Ridges,
		PointsPerRidge:      pattern.DefaultParams.PointsPerRidge,
		RadialLoopPoints:    50,
		DoubleLoopPoints:    120,
		PointsPerFrame:      10,
		CompletionDelay:     1800 * time.Millisecond,
		RadiusFraction:      pattern.DefaultParams.RadiusFraction,
		PlainArchVariations: pattern.PlainArchVariations,
		SpineRidges:         0,
		Jitter:              pattern.JitterStable,
		Seed:                1,
	}
}

// Validate checks that all fields are in range.
// The returned error wraps [ErrInvalidConfig] or [ErrUnknownPattern].
func (c *Config) Validate() error {
	positive := []struct {
		name string
		val  int
	}{
		{"Ridges", c.Ridges},
		{"PointsPerRidge", c.PointsPerRidge},
		{"RadialLoopPoints", c.RadialLoopPoints},
		{"DoubleLoopPoints", c.DoubleLoopPoints},
		{"PointsPerFrame", c.PointsPerFrame},
	}
	for _, f := range positive {
		if f.val < 1 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidConfig, f.name, f.val)
		}
	}

	if c.CompletionDelay < 0 {
		return fmt.Errorf("%w: CompletionDelay = %s", ErrInvalidConfig, c.CompletionDelay)
	}
	if !(c.RadiusFraction > 0 && c.RadiusFraction <= 1) {
		return fmt.Errorf("%w: RadiusFraction = %g", ErrInvalidConfig, c.RadiusFraction)
	}
	if c.PlainArchVariations < 1 || c.PlainArchVariations > pattern.PlainArchVariations {
		return fmt.Errorf("%w: PlainArchVariations = %d", ErrInvalidConfig, c.PlainArchVariations)
	}
	if c.SpineRidges < 0 {
		return fmt.Errorf("%w: SpineRidges = %d", ErrInvalidConfig, c.SpineRidges)
	}
	if c.Jitter != pattern.JitterStable && c.Jitter != pattern.JitterFlicker {
		return fmt.Errorf("%w: Jitter = %d", ErrInvalidConfig, int(c.Jitter))
	}
	for _, k := range c.Patterns {
		if !slices.Contains(pattern.Kinds, k) {
			return fmt.Errorf("%w: %s", ErrUnknownPattern, k)
		}
	}
	return nil
}

// params returns the density parameters for a pattern of kind k.
func (c *Config) params(k pattern.Kind) pattern.Params {
	p := pattern.Params{
		RadiusFraction: c.RadiusFraction,
		Ridges:         c.Ridges,
		PointsPerRidge: c.PointsPerRidge,
	}
	switch k {
	case pattern.KindRadialLoop:
		p.PointsPerRidge = c.RadialLoopPoints
	case pattern.KindDoubleLoop:
		p.PointsPerRidge = c.DoubleLoopPoints
	}
	return p
}
