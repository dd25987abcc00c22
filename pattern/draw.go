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

	"seehuhn.de/go/geom/vec"
)

// Canvas receives the dots of a render pass.  Alpha is in [0, 1] and is
// composited source-over with the straight-alpha colour col.
type Canvas interface {
	FillCircle(center vec.Vec2, radius float64, col color.NRGBA, alpha float64)
}

// Jitter selects how the positional noise of [TriColor] patterns is
// computed.
type Jitter int

const (
	// JitterStable derives the offset of each point from its ridge and
	// point index, so that redrawn points stay where they are.
	JitterStable Jitter = iota

	// JitterFlicker draws fresh random offsets on every render pass.
	JitterFlicker
)

func (j Jitter) String() string {
	switch j {
	case JitterStable:
		return "stable"
	case JitterFlicker:
		return "flicker"
	default:
		return "invalid"
	}
}

// DrawOptions control a render pass.
type DrawOptions struct {
	Jitter Jitter

	// Rand is the noise source for JitterFlicker.  If nil, a source with
	// a fixed seed is used.
	Rand *rand.Rand
}

// Parameters shared by all render modes.
const (
	fadeStart   = 0.78 // progress value where the end-of-ridge fade begins
	fadeSlope   = 5.0
	alphaBase   = 0.85
	jitterRange = 5.5
	endTaper    = 0.18 // length of the smooth end taper of Seam ridges
	armTaper    = 0.22 // length of the fade-in of spine ridges
)

// Fade returns the opacity factor for a point with progress t.  It is 1
// up to t = 0.78 and then decreases linearly, reaching 0 at t = 0.98.
func Fade(t float64) float64 {
	if t <= fadeStart {
		return 1
	}
	return max(0, 1-(t-fadeStart)*fadeSlope)
}

// DotSize returns the base radius of point i on ridge r.
// The result lies in [0.9, 3.3].
func DotSize(r, i int) float64 {
	return 2.1 + 1.2*math.Sin(float64(r)+float64(i)*0.13)
}

// Draw paints the first revealed[r] points of every ridge r onto c.
// Ridges without an entry in revealed are not drawn, and counts
// beyond the length of a ridge are ignored.  The canvas is not cleared.
func (p *Pattern) Draw(c Canvas, revealed []int, opt DrawOptions) {
	style := p.Style()
	switch style.Mode {
	case TriColor:
		rng := opt.Rand
		if opt.Jitter == JitterFlicker && rng == nil {
			rng = rand.New(rand.NewPCG(1, 2))
		}
		drawTriColor(c, p.Paths, revealed, p.Ridges, style.Palette, opt.Jitter, rng)
	case Seam:
		drawSeam(c, p.Paths, revealed, style.Palette)
	default:
		drawGradient(c, p.Paths, revealed, style.Palette)
	}
}

// visible returns the revealed prefix of ridge r.
func visible(paths []Path, revealed []int, r int) Path {
	if r >= len(revealed) {
		return nil
	}
	n := max(0, min(revealed[r], len(paths[r])))
	return paths[r][:n]
}

func drawGradient(c Canvas, paths []Path, revealed []int, ramp Ramp) {
	for r := range paths {
		for i, pt := range visible(paths, revealed, r) {
			c.FillCircle(pt.Vec2, DotSize(r, i), ramp.At(pt.T), alphaBase*Fade(pt.T))
		}
	}
}

func drawTriColor(c Canvas, paths []Path, revealed []int, ridges int, palette Ramp, jitter Jitter, rng *rand.Rand) {
	bandWidth := float64(ridges) / 3
	for r := range paths {
		band := 0
		if bandWidth > 0 {
			band = int(float64(r%ridges) / bandWidth)
		}
		col := palette.Band(band)

		for i, pt := range visible(paths, revealed, r) {
			if i%2 != 0 {
				continue
			}
			var dx, dy float64
			if jitter == JitterFlicker {
				dx = rng.Float64() - 0.5
				dy = rng.Float64() - 0.5
			} else {
				dx = Hash(float64(i), float64(r)+0.5) - 0.5
				dy = Hash(float64(i)+0.5, float64(r)) - 0.5
			}
			pos := vec.Vec2{X: pt.X + dx*jitterRange, Y: pt.Y + dy*jitterRange}
			c.FillCircle(pos, DotSize(r, i), col, alphaBase*Fade(pt.T))
		}
	}
}

// seamColors computes the colour of every ridge of a Seam pattern.  The
// left core runs through the first half of the palette, the right core
// through the second half, and spine ridges spread over the second half.
func seamColors(paths []Path, palette Ramp) []color.NRGBA {
	var count [3]int
	tags := make([]Tag, len(paths))
	for r, path := range paths {
		if len(path) > 0 {
			tags[r] = path[0].Tag
		}
		count[tags[r]]++
	}

	var seen [3]int
	cols := make([]color.NRGBA, len(paths))
	for r, tag := range tags {
		k := float64(seen[tag])
		n := float64(max(1, count[tag]))
		seen[tag]++
		switch tag {
		case TagRadialLeft:
			cols[r] = Lerp(palette[0], palette[1], k/n)
		default:
			cols[r] = Lerp(palette[1], palette[2], k/n)
		}
	}
	return cols
}

func drawSeam(c Canvas, paths []Path, revealed []int, palette Ramp) {
	cols := seamColors(paths, palette)
	spine := 0
	numSpine := 0
	for _, path := range paths {
		if len(path) > 0 && path[0].Tag == TagNone {
			numSpine++
		}
	}

	for r, path := range paths {
		col := cols[r]
		isSpine := len(path) > 0 && path[0].Tag == TagNone
		outer := false
		if isSpine {
			outer = spine == 0 || spine == numSpine-1
			spine++
		}
		rf := float64(r)

		for i, pt := range visible(paths, revealed, r) {
			t := pt.T
			fi := float64(i)
			seam := seamMask(t)
			alpha := min(1, alphaBase*Fade(t)*(1+0.12*seam))

			half := t * 2
			if t >= 0.5 {
				half = (t - 0.5) * 2
			}
			s := math.Sin(half * math.Pi)
			coreMask := 1 - s*s
			smooth := smoothstep(min(t/endTaper, (1-t)/endTaper))
			shrink := 1 - 0.15*(0.6*coreMask+0.4*seam)
			base := DotSize(r, i)

			if pt.Tag != TagNone {
				n := Hash(fi, rf)
				alpha *= smooth * (0.8 + 0.4*(n-0.5))
				flow := 1 + 0.10*math.Sin(t*math.Pi*2.2+rf*0.3) + 0.05*math.Sin(t*math.Pi*4.1+rf*0.5)
				size := base * shrink * (0.7 + 0.3*smooth) * (0.88 + 0.24*n) * flow

				// opaque underlay
				c.FillCircle(pt.Vec2, size*1.15, col, 1)
				c.FillCircle(pt.Vec2, size, col, alpha)
				continue
			}

			n := Hash(fi, rf+123.45)
			scale := smooth * (0.8 + 0.4*(n-0.5))
			if outer {
				scale *= 0.8 + 0.2*smooth
			}
			alpha *= scale
			flow := 1 + 0.10*math.Sin(t*math.Pi*2.0+rf*0.25) + 0.05*math.Sin(t*math.Pi*3.6+rf*0.45)
			size := base * shrink * (0.7 + 0.3*scale) * (0.88 + 0.24*n) * flow
			if t < armTaper {
				arm := smoothstep(t / armTaper)
				alpha *= arm
				size *= 0.7 + 0.3*arm
			}

			if (i+r)%3 == 0 {
				// a small satellite dot next to the ridge
				angle := Hash(fi+7.77, rf+6.66) * 2 * math.Pi
				dist := 2.6 + 1.8*Hash(fi+2.2, rf+4.4)
				sz := max(0.45, size*(0.30+0.20*Hash(fi+9.1, rf+3.3)))
				c.FillCircle(pt.Add(polar(angle).Mul(dist)), sz, col, alpha*0.5*scale)
			}
			c.FillCircle(pt.Vec2, size, col, alpha)
		}
	}
}
