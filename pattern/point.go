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

// Package pattern generates procedural fingerprint ridge patterns.
//
// A pattern is a set of ridges, each an ordered list of sample points in
// canvas pixel coordinates. Every point carries a progress value t in
// [0, 1] which drives colouring and the end-of-ridge fade. Generators are
// pure functions of the canvas size and the density parameters: the same
// inputs always produce the same ridges.
package pattern

import (
	"seehuhn.de/go/geom/vec"
)

// Tag identifies the sub-structure a point belongs to.
type Tag uint8

// These are the valid point tags.
const (
	TagNone        Tag = iota // an ordinary ridge point
	TagRadialLeft             // part of the left core of a double loop
	TagRadialRight            // part of the right core of a double loop
)

func (t Tag) String() string {
	switch t {
	case TagNone:
		return "none"
	case TagRadialLeft:
		return "radial-left"
	case TagRadialRight:
		return "radial-right"
	default:
		return "invalid"
	}
}

// Point is a single sample on a ridge.
type Point struct {
	vec.Vec2

	// T is the progress along the ridge, between 0 and 1.
	T float64

	Tag Tag
}

// Path is one ridge: an ordered sequence of points.
// The draw order of the points is the order of the slice.
type Path []Point
