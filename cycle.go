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

	"seehuhn.de/go/fingerprint/pattern"
)

// A Step is one entry of the animation cycle.
type Step struct {
	Generator pattern.Generator

	// Variation is the style variation of a plain arch, or zero.
	Variation int
}

// Kind returns the pattern kind shown by the step.
func (s Step) Kind() pattern.Kind {
	return s.Generator.Kind()
}

// Generator returns the generator for a pattern kind, set up from cfg.
func Generator(k pattern.Kind, cfg *Config) (pattern.Generator, error) {
	switch k {
	case pattern.KindWhorl:
		return pattern.Whorl{}, nil
	case pattern.KindRadialLoop:
		return pattern.RadialLoop{}, nil
	case pattern.KindPlainArch:
		return pattern.PlainArch{}, nil
	case pattern.KindTentedArch:
		return pattern.TentedArch{}, nil
	case pattern.KindDoubleLoop:
		return pattern.DoubleLoop{SpineRidges: cfg.SpineRidges}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPattern, k)
	}
}

// Cycle expands the pattern order of cfg into the list of steps shown by
// the animation.  The plain arch contributes one step per variation.
func Cycle(cfg *Config) ([]Step, error) {
	kinds := cfg.Patterns
	if len(kinds) == 0 {
		kinds = pattern.Kinds
	}

	var steps []Step
	for _, k := range kinds {
		if k == pattern.KindPlainArch {
			for v := range cfg.PlainArchVariations {
				steps = append(steps, Step{
					Generator: pattern.PlainArch{Variation: v},
					Variation: v,
				})
			}
			continue
		}
		gen, err := Generator(k, cfg)
		if err != nil {
			return nil, err
		}
		steps = append(steps, Step{Generator: gen})
	}
	return steps, nil
}
