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

	"seehuhn.de/go/geom/vec"
)

// TentedArch generates three nested tented arches of decreasing size,
// each with a raised spike in the middle third, together with six short
// supporting curves below and to the left of the arches.  The arches are
// tilted by 10°.
type TentedArch struct{}

// Kind implements the [Generator] interface.
func (TentedArch) Kind() Kind { return KindTentedArch }

// Style implements the [Generator] interface.
func (TentedArch) Style() Style {
	return Style{Mode: TriColor, Palette: Ramp{Blue, Pink, Purple}}
}

const (
	tentTilt         = math.Pi / 18
	tentArchGap      = 35 // vertical distance between arches, in pixels
	tentSpikeStart   = 0.3
	tentSpikeEnd     = 0.7
	tentHills        = 12.0 // amplitude of the vertical undulation, in pixels
	tentCurveRidges  = 3    // ridges per supporting curve
	tentCurveSpacing = 2.5
	tentNorthwest    = 0.05
)

var tentSizes = [...]float64{1.0, 0.85, 0.70}

// tentCurve describes one of the supporting curves.  All lengths are
// relative to the maximum radius.
type tentCurve struct {
	vertical bool

	width, depth float64
	base         vec.Vec2 // offset of the curve origin from the centre
	pull         float64  // diagonal pull
	xOffset      float64  // horizontal curves only
	trailDown    float64  // vertical curves only
	tilt         float64
}

var tentCurves = [...]tentCurve{
	// below the arches
	{width: 0.6, depth: 0.24, base: vec.Vec2{Y: 0.35}, pull: 0.3, xOffset: 0.15, tilt: math.Pi/6 + math.Pi/36},
	{width: 0.5, depth: 0.1, base: vec.Vec2{Y: 0.35}, pull: 0.2, xOffset: 0.15, tilt: math.Pi/6 - math.Pi/72},
	{width: 0.35, depth: 0.05, base: vec.Vec2{Y: 0.05}, pull: 0.15, xOffset: -0.1, tilt: math.Pi / 9},
	{width: 0.25, depth: 0.05, base: vec.Vec2{Y: 0.35}, pull: 0.1, xOffset: 0.15, tilt: math.Pi/6 - math.Pi/72},

	// left of the arches
	{vertical: true, width: 1.6, depth: 0.25, base: vec.Vec2{X: -0.7, Y: 0.25}, pull: 0.2, trailDown: 0.3, tilt: math.Pi / 3},
	{vertical: true, width: 1.4, depth: 0.2, base: vec.Vec2{X: -0.8, Y: 0.3}, pull: 0.15, trailDown: 0.25, tilt: math.Pi / 3},
}

// TentedArchRidges returns the number of ridges generated for the given
// number of ridges per arch.
func TentedArchRidges(ridges int) int {
	return len(tentSizes)*ridges + len(tentCurves)*tentCurveRidges
}

// Generate implements the [Generator] interface.
func (TentedArch) Generate(m *Model) []Path {
	paths := make([]Path, 0, TentedArchRidges(m.Ridges))
	for q := range len(tentSizes) * m.Ridges {
		paths = append(paths, tentRidge(m, q))
	}
	for _, c := range tentCurves {
		for k := range tentCurveRidges {
			paths = append(paths, tentCurveRidge(m, c, k))
		}
	}
	return paths
}

// samples calls fn for every untrimmed sample position of a ridge.
func samples(n int, fn func(t float64)) {
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		if t < archTrimStart || t > archTrimEnd {
			continue
		}
		fn(t)
	}
}

func tentRidge(m *Model, q int) Path {
	arch := q / m.Ridges
	layer := float64(q%m.Ridges) - float64(m.Ridges)/2
	size := tentSizes[arch]
	qf := float64(q)

	spacing := 2.8 * size
	width := m.MaxRadius * 1.6 * size
	height := m.MaxRadius * 0.8 * size
	tilt := rotation(m.Center, tentTilt)

	path := make(Path, 0, m.PointsPerRidge)
	samples(m.PointsPerRidge, func(t float64) {
		p := vec.Vec2{
			X: m.Center.X - width/2 + t*width,
			Y: m.Center.Y + float64(arch-1)*tentArchGap + height*0.3,
		}

		tent := math.Sin(t*math.Pi) * height * 0.6
		slope := math.Cos(t*math.Pi) * height * 0.6
		if t > tentSpikeStart && t < tentSpikeEnd {
			st := (t - tentSpikeStart) / (tentSpikeEnd - tentSpikeStart)
			tent += math.Sin(st*math.Pi) * height * 0.6
			slope += math.Cos(st*math.Pi) * height * 0.6
		}
		p.Y -= tent

		// converge towards the centre line, strongest at the apex
		pull := math.Sin(t*math.Pi) * tent * 0.1
		p.X += (m.Center.X - p.X) * pull / width

		perp := normalize(vec.Vec2{X: -slope / width, Y: 1})
		p = p.Add(perp.Mul(layer * spacing))

		natural := math.Sin(t*math.Pi*2+qf*0.3)*0.5 + math.Sin(t*math.Pi*4+qf*0.7)*0.2
		p.X += natural
		p.Y += natural*0.3 + math.Sin(t*math.Pi*3)*tentHills

		path = append(path, Point{Vec2: apply(tilt, p), T: t})
	})
	return path
}

func tentCurveRidge(m *Model, c tentCurve, k int) Path {
	radius := m.MaxRadius
	width := radius * c.width
	depth := radius * c.depth
	base := m.Center.Add(c.base.Mul(radius))
	tilt := rotation(m.Center, c.tilt)

	path := make(Path, 0, m.PointsPerRidge)
	samples(m.PointsPerRidge, func(t float64) {
		bulge := math.Sin(t*math.Pi) * depth
		diag := (t - 0.5) * radius * c.pull

		var p vec.Vec2
		if c.vertical {
			p.X = base.X + bulge + diag
			p.Y = base.Y - width/2 + t*width + bulge*0.8 - t*c.trailDown*radius
		} else {
			p.X = m.Center.X - width/2 + t*width - radius*tentNorthwest + radius*c.xOffset
			p.Y = base.Y - bulge - diag
		}
		p.X += float64(k-1) * tentCurveSpacing

		path = append(path, Point{Vec2: apply(tilt, p), T: t})
	})
	return path
}
