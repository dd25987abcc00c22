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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// RadialLoop generates a single loop pattern.  The ridges wind around a
// core which sits above and to the left of the canvas centre.  The inner
// ridges are accompanied by up to three nested, recentred copies of the
// loop, and the inner 60% of the ridges throw out two trailing strands
// on both sides of the core.  The whole pattern is tilted by 30°.
type RadialLoop struct{}

// Kind implements the [Generator] interface.
func (RadialLoop) Kind() Kind { return KindRadialLoop }

// Style implements the [Generator] interface.
func (RadialLoop) Style() Style { return Style{Mode: Gradient, Palette: DefaultRamp} }

// Generate implements the [Generator] interface.
func (RadialLoop) Generate(m *Model) []Path {
	l := newLoopLayout(m)
	paths := make([]Path, 0, m.Ridges)
	for r := range m.Ridges {
		paths = append(paths, l.ridge(r))
	}
	return paths
}

const (
	loopTilt        = math.Pi / 6
	loopSpacing     = 2.5  // base distance between neighbouring ridges
	loopCoreDist    = 0.15 // core distance, relative to the radius
	loopTrailRidges = 0.6  // fraction of ridges which carry trails

	loopEnhanceStart = 0.8 * math.Pi
	loopEnhanceEnd   = 2.2 * math.Pi
)

// nestedLoop describes one recentred copy of the loop near the core.
type nestedLoop struct {
	scale    float64
	offset   vec.Vec2 // core shift relative to the parent core, times the radius
	coreDist float64  // relative to the radius
}

var nestedLoops = [...]nestedLoop{
	{scale: 0.925, offset: vec.Vec2{X: 0.05, Y: 0.02}, coreDist: 0.06},
	{scale: 0.7, offset: vec.Vec2{X: 0.02, Y: 0.01}, coreDist: 0.03},
	{scale: 0.6, offset: vec.Vec2{X: 0.01, Y: 0.005}, coreDist: 0.015},
}

// trailWindow is a range of loop angles over which trails are emitted.
type trailWindow struct {
	start, end float64
}

var trailWindows = [...]trailWindow{
	{1.2 * math.Pi, 1.9 * math.Pi},
	{0.1 * math.Pi, 0.8 * math.Pi},
}

type loopLayout struct {
	m    *Model
	core vec.Vec2
	tilt matrix.Matrix
}

func newLoopLayout(m *Model) *loopLayout {
	return &loopLayout{
		m: m,
		core: vec.Vec2{
			X: m.Center.X - m.MaxRadius*0.2,
			Y: m.Center.Y - m.MaxRadius*0.25,
		},
		tilt: rotation(m.Center, loopTilt),
	}
}

func (l *loopLayout) ridge(r int) Path {
	m := l.m
	rf := float64(r)
	turns := 1.0 + 0.3*rf/float64(m.Ridges)
	total := float64(m.PointsPerRidge) * turns
	n := int(math.Ceil(total))
	ridgeIndex := rf - float64(m.Ridges)/2
	coreDist := m.MaxRadius * loopCoreDist

	path := make(Path, 0, n)
	for i := range n {
		t := float64(i) / total
		theta := t * 2 * math.Pi * turns
		flow := math.Sin(theta*1.4+rf*0.15)*0.22 + math.Sin(theta*2.8+rf*0.4)*0.08
		rr := m.MaxRadius*0.4 + 8*math.Sin(theta*1.8+rf*0.6)

		p := l.loopPoint(l.core, rr, theta+flow)
		mult := l.spacing(p.Sub(l.core).Length(), coreDist)
		p = p.Add(polar(theta + flow).Mul(ridgeIndex * loopSpacing * mult))
		p = enhanceCore(p, l.core, theta, flow, coreDist)
		path = append(path, Point{Vec2: apply(l.tilt, p), T: t})

		// nested loops
		if rf < float64(m.Ridges)/3 {
			core := l.core
			limits := [...]float64{3, 6, 12}
			for k, nl := range nestedLoops {
				if rf >= float64(m.Ridges)/limits[k] {
					break
				}
				var q vec.Vec2
				q, core = l.nested(nl, core, rr, theta, flow, ridgeIndex)
				path = append(path, Point{Vec2: q, T: min(t+0.1*float64(k+1), 1)})
			}
		}

		// trailing strands
		if rf < float64(m.Ridges)*loopTrailRidges {
			k := 0
			for _, w := range trailWindows {
				if theta <= w.start || theta >= w.end {
					continue
				}
				trailT := (theta - w.start) / (w.end - w.start)
				for j := range 2 {
					q := l.trail(p, theta, trailT, j)
					path = append(path, Point{Vec2: q, T: min(t+0.15*float64(k+1), 1)})
					k++
				}
			}
		}
	}
	return path
}

// loopPoint places a point on the elongated ellipse around core.
func (l *loopLayout) loopPoint(core vec.Vec2, rr, angle float64) vec.Vec2 {
	s, c := math.Sincos(angle)
	return vec.Vec2{X: core.X + rr*c*0.6, Y: core.Y + rr*s*1.5}
}

// spacing returns the ridge spacing multiplier at distance d from the
// core: ridges are packed tightly close to the core and spread out
// further away.
func (l *loopLayout) spacing(d, coreDist float64) float64 {
	th := coreDist * 2
	if d < th {
		return 0.6 + 0.4*(d/th)
	}
	return 1.0 + 0.5*((d-th)/(l.m.MaxRadius*0.3))
}

// enhanceCore pulls points towards the core over the inner part of the
// loop, which sharpens the turn of the ridges.
func enhanceCore(p, core vec.Vec2, theta, flow, coreRadius float64) vec.Vec2 {
	if theta <= loopEnhanceStart || theta >= loopEnhanceEnd {
		return p
	}
	intensity := math.Sin((theta-loopEnhanceStart)/(loopEnhanceEnd-loopEnhanceStart)) * 0.4
	factor := 1 - intensity*0.6
	return core.Add(polar(theta + flow).Mul(coreRadius)).Add(p.Sub(core).Mul(factor))
}

// nested computes the point of a nested loop and returns it, already
// tilted, together with the core of the nested loop.
func (l *loopLayout) nested(nl nestedLoop, parent vec.Vec2, rr, theta, flow, ridgeIndex float64) (vec.Vec2, vec.Vec2) {
	radius := l.m.MaxRadius
	core := parent.Add(nl.offset.Mul(radius))
	p := l.loopPoint(core, rr*nl.scale, theta+flow)
	coreDist := radius * nl.coreDist
	mult := l.spacing(p.Sub(core).Length(), coreDist)
	p = p.Add(polar(theta + flow).Mul(ridgeIndex * loopSpacing * mult))
	p = enhanceCore(p, core, theta, flow, coreDist)
	return apply(l.tilt, p), core
}

// trail returns the j-th trail point emitted from the untilted loop point p.
func (l *loopLayout) trail(p vec.Vec2, theta, trailT float64, j int) vec.Vec2 {
	radius := l.m.MaxRadius
	jf := float64(j)
	angle := theta + 0.5*math.Pi + jf*0.08*math.Pi
	length := radius * (0.4 + 0.1*jf) * (1 + 0.4*trailT)
	curvature := math.Sin(trailT*math.Pi) * radius * 0.1
	q := p.Add(polar(angle).Mul(length)).Add(polar(angle + 0.5*math.Pi).Mul(curvature))
	return apply(l.tilt, q)
}
