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

package raster

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})

	coverage := make([]float32, 10)
	r.Fill(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		if math.Abs(float64(coverage[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, coverage[x])
		}
	}
}

// totalCoverage returns the summed coverage of p, and checks that all
// emitted values lie inside the clip rectangle.
func totalCoverage(t *testing.T, r *Rasteriser, p *path.Data) float64 {
	t.Helper()
	var sum float64
	r.Fill(p, func(y, xMin int, cov []float32) {
		if y < int(r.Clip.LLy) || y >= int(r.Clip.URy) {
			t.Errorf("row %d outside clip", y)
		}
		if xMin < int(r.Clip.LLx) || xMin+len(cov) > int(r.Clip.URx) {
			t.Errorf("row %d: columns [%d,%d) outside clip", y, xMin, xMin+len(cov))
		}
		for _, c := range cov {
			if c < 0 || c > 1 {
				t.Errorf("row %d: coverage %g out of range", y, c)
			}
			sum += float64(c)
		}
	})
	return sum
}

func TestCircleArea(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.Flatness = 0.01
	p := &path.Data{}
	for _, radius := range []float64{0.5, 1, 2.1, 3.3, 10, 25} {
		Circle(p, vec.Vec2{X: 32.3, Y: 31.7}, radius)
		got := totalCoverage(t, r, p)
		want := math.Pi * radius * radius
		if math.Abs(got-want) > 0.02*want+0.05 {
			t.Errorf("radius %g: area %g, want %g", radius, got, want)
		}
	}
}

func TestCircleClipped(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 20, URy: 20})
	r.Flatness = 0.01
	p := Circle(&path.Data{}, vec.Vec2{X: 0, Y: 10}, 5)
	got := totalCoverage(t, r, p)
	want := math.Pi * 25 / 2
	if math.Abs(got-want) > 0.02*want {
		t.Errorf("area %g, want %g", got, want)
	}

	// entirely outside
	Circle(p, vec.Vec2{X: -10, Y: -10}, 3)
	if got := totalCoverage(t, r, p); got != 0 {
		t.Errorf("area %g, want 0", got)
	}
}

func TestCTM(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 64, URy: 64})
	r.CTM = matrix.Scale(4, 4)
	r.Flatness = 0.01
	p := Circle(&path.Data{}, vec.Vec2{X: 8, Y: 8}, 2)
	got := totalCoverage(t, r, p)
	want := math.Pi * 64
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("area %g, want %g", got, want)
	}
}

func TestOpenPathIsClosed(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 1}).
		LineTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 1, Y: 5})

	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	if got := totalCoverage(t, r, open); math.Abs(got-16) > 1e-4 {
		t.Errorf("area %g, want 16", got)
	}
}

func TestOverlapNonZero(t *testing.T) {
	// two overlapping squares in the same direction fill their union
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 0}).
		LineTo(vec.Vec2{X: 4, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close().
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 2}).
		LineTo(vec.Vec2{X: 6, Y: 6}).
		LineTo(vec.Vec2{X: 2, Y: 6}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	if got := totalCoverage(t, r, p); math.Abs(got-28) > 1e-4 {
		t.Errorf("area %g, want 28", got)
	}
}

func TestFillAllocs(t *testing.T) {
	r := NewRasteriser(rect.Rect{URx: 100, URy: 100})
	p := Circle(&path.Data{}, vec.Vec2{X: 50, Y: 50}, 3)
	emit := func(y, xMin int, coverage []float32) {}
	r.Fill(p, emit)

	allocs := testing.AllocsPerRun(100, func() {
		Circle(p, vec.Vec2{X: 40, Y: 60}, 2.5)
		r.Fill(p, emit)
	})
	if allocs != 0 {
		t.Errorf("got %g allocations per fill, want 0", allocs)
	}
}

// BenchmarkDots measures the steady-state cost of filling a frame worth
// of small dots.
func BenchmarkDots(b *testing.B) {
	r := NewRasteriser(rect.Rect{URx: 800, URy: 600})
	p := &path.Data{}
	emit := func(y, xMin int, coverage []float32) {}

	for b.Loop() {
		for i := range 2000 {
			c := vec.Vec2{X: float64(i%40) * 20, Y: float64(i/40) * 12}
			Circle(p, c, 2.1+1.2*math.Sin(float64(i)*0.13))
			r.Fill(p, emit)
		}
	}
}
