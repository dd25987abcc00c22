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

// DoubleLoop generates two interlocking loop cores.  Each core is a
// scaled down [RadialLoop]; the right core is mirrored and turned by a
// quarter turn so that the two loops open towards each other.
//
// Optionally, SpineRidges S-shaped ridges are added which sweep from the
// left core through the centre into the right core.
type DoubleLoop struct {
	SpineRidges int
}

// Kind implements the [Generator] interface.
func (DoubleLoop) Kind() Kind { return KindDoubleLoop }

// Style implements the [Generator] interface.
func (DoubleLoop) Style() Style { return Style{Mode: Seam, Palette: DefaultRamp} }

const (
	coreRidges  = 6    // ridges per core
	coreScale   = 0.8  // scale applied to the core loops
	coreTrimEnd = 0.95 // core points beyond this progress value are dropped
)

// DoubleLoopRidges returns the number of ridges generated for a double
// loop with the given number of spine ridges.
func DoubleLoopRidges(spine int) int {
	return 2*coreRidges + max(spine, 0)
}

// Generate implements the [Generator] interface.
func (d DoubleLoop) Generate(m *Model) []Path {
	radius := m.MaxRadius
	sub := &Model{
		Width:          m.Width,
		Height:         m.Height,
		Center:         m.Center,
		MaxRadius:      radius * 0.74,
		Ridges:         coreRidges,
		PointsPerRidge: max(10, m.PointsPerRidge/2),
	}
	loops := RadialLoop{}.Generate(sub)

	leftCore := vec.Vec2{X: m.Center.X - radius*0.25 + radius*0.08, Y: m.Center.Y + radius*0.82 - radius*0.06}
	rightCore := vec.Vec2{X: m.Center.X + radius*0.25, Y: m.Center.Y - radius*0.10}
	leftTurn := rotation(m.Center, 6*math.Pi/180)
	rightTurn := rotation(m.Center, -102*math.Pi/180)

	paths := make([]Path, 0, DoubleLoopRidges(d.SpineRidges))
	for _, src := range loops {
		path := make(Path, 0, len(src))
		for _, pt := range src {
			if pt.T > coreTrimEnd {
				continue
			}
			p := leftCore.Add(pt.Sub(sub.Center).Mul(coreScale))
			path = append(path, Point{Vec2: apply(leftTurn, p), T: pt.T, Tag: TagRadialLeft})
		}
		paths = append(paths, path)
	}
	for _, src := range loops {
		path := make(Path, 0, len(src))
		for _, pt := range src {
			if pt.T > coreTrimEnd {
				continue
			}
			// mirrored horizontally
			p := vec.Vec2{
				X: rightCore.X - (pt.X-sub.Center.X)*coreScale,
				Y: rightCore.Y + (pt.Y-sub.Center.Y)*coreScale,
			}
			path = append(path, Point{Vec2: apply(rightTurn, p), T: pt.T, Tag: TagRadialRight})
		}
		paths = append(paths, path)
	}

	for r := range max(d.SpineRidges, 0) {
		paths = append(paths, d.spine(m, r))
	}
	return paths
}

// spine computes one S-shaped ridge connecting the two cores.
func (d DoubleLoop) spine(m *Model, r int) Path {
	radius := m.MaxRadius
	c := m.Center
	w := radius * 1.35
	h := radius * 0.95
	rf := float64(r)
	ridgeIndex := rf - float64(d.SpineRidges)/2
	outer := max(1, d.SpineRidges)

	turn := rotation(c, -65*math.Pi/180)
	final := rotation(c, 5*math.Pi/180)
	shift := vec.Vec2{X: radius * 0.5, Y: -radius * 0.4}
	pouch := vec.Vec2{X: c.X, Y: c.Y + radius*0.55}

	edgeBoost := 0.35
	switch r {
	case 0, outer - 1:
		edgeBoost = 1.0
	case 1, outer - 2:
		edgeBoost = 0.6
	}

	n := m.PointsPerRidge
	path := make(Path, 0, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		if t < 0.12 {
			continue
		}

		// The left half runs from the left core to the centre, the right
		// half from the right core to the centre.  sign flips the
		// direction of all displacements for the right half.
		half := t * 2
		sign := 1.0
		if t >= 0.5 {
			half = (t - 0.5) * 2
			sign = -1
		}
		start := vec.Vec2{X: c.X - sign*w*0.58, Y: c.Y + sign*h*0.40}
		core := vec.Vec2{X: c.X - sign*w*0.52, Y: c.Y + sign*h*0.36}

		p := start.Add(c.Sub(start).Mul(smootherstep(half)))
		coreFlow := math.Sin(half*math.Pi) * 0.2
		micro := math.Sin(half*math.Pi*3) * 0.08
		p.X += sign * (coreFlow*w*0.15 + micro*w*0.1)
		p.Y += sign * (coreFlow*h*0.12 + micro*h*0.08)

		// push away from the core near the start of each half
		away := p.Sub(core)
		dist := away.Length() + 1e-6
		influence := math.Exp(-math.Pow((half-0.18)/0.18, 2))
		p = p.Add(away.Mul(10 * influence / dist))

		if half > 0.3 && half < 0.9 {
			phase := (half - 0.3) * math.Pi / 0.6
			s := math.Sin(phase) * 0.8
			echo := math.Sin(phase+math.Pi*0.3) * 0.4
			hills := math.Sin(rf*0.3+half*math.Pi*1.5) * 0.12
			p.X += sign * (s*w*0.45 + echo*w*0.2 + hills*w*0.15)
			p.Y += sign * (s*h*0.4 + echo*h*0.15 + hills*h*0.12)
		}

		// ridge spacing, widest in the middle of each half and tapered
		// towards both ends of the ridge
		tail := clamp01(min(t, 1-t) / 0.15)
		mid := math.Sin(half * math.Pi)
		mask := (0.8 + 0.55*math.Pow(mid, 2.2)) * tail
		p.X += ridgeIndex * 12 * 0.8 * mask
		p.Y += ridgeIndex * 12 * 0.6 * mask

		noise := (0.18 + 0.82*mid) * tail
		flowX := math.Sin(t*math.Pi*1.2+rf*0.18)*0.18 + math.Sin(t*math.Pi*3.1+rf*0.5)*0.07
		flowY := math.Sin(t*math.Pi*1.5+rf*0.22)*0.15 + math.Sin(t*math.Pi*2.8+rf*0.4)*0.09
		p.X += flowX * noise * w * 0.3
		p.Y += flowY * noise * h * 0.25

		// gather the ridge ends into a pouch below the centre
		if t < 0.22 || t > 0.78 {
			var end float64
			if t < 0.5 {
				end = smoothstep((0.22 - t) / 0.22)
			} else {
				end = smoothstep((1 - t) / 0.22)
			}
			p.X += (pouch.X - p.X) * 0.45 * end * edgeBoost
			p.Y += (pouch.Y - p.Y) * 0.60 * end * edgeBoost
		}

		// converge at the seam, with neighbouring ridges interleaved
		seam := seamMask(t)
		p.X += (c.X - p.X) * 0.07 * seam
		p.Y += (c.Y - p.Y) * 0.035 * seam
		if r%2 == 0 {
			p.Y += 4.5 * seam
		} else {
			p.Y -= 4.5 * seam
		}

		p = apply(turn, p).Add(shift)
		path = append(path, Point{Vec2: apply(final, p), T: t})
	}
	return path
}
