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
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// Kind identifies one of the fingerprint pattern classes.
type Kind int

// These are the supported pattern kinds, in the order in which the
// animation cycles through them.
const (
	KindWhorl Kind = iota
	KindRadialLoop
	KindPlainArch
	KindTentedArch
	KindDoubleLoop
)

// Kinds lists all pattern kinds in cycle order.
var Kinds = []Kind{KindWhorl, KindRadialLoop, KindPlainArch, KindTentedArch, KindDoubleLoop}

var kindNames = [...]string{
	KindWhorl:      "whorl",
	KindRadialLoop: "radial-loop",
	KindPlainArch:  "plain-arch",
	KindTentedArch: "tented-arch",
	KindDoubleLoop: "double-loop",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ErrUnknownKind is returned by ParseKind for unrecognised names.
var ErrUnknownKind = errors.New("unknown pattern kind")

// ParseKind converts a name like "tented-arch" into a Kind.
// Underscores may be used in place of hyphens.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(s), "_", "-")
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RenderMode selects how the points of a pattern are painted.
type RenderMode int

// These are the render modes.
const (
	// Gradient colours every point by the ramp at its progress value.
	Gradient RenderMode = iota

	// TriColor paints every second point in the flat colour of the third
	// of the ridge set it belongs to, with a small positional jitter.
	TriColor

	// Seam colours each ridge by its position in the set, boosts the
	// alpha near the middle of the ridge and tapers the ends.  Points of
	// the two radial cores are redrawn with an opaque underlay.
	Seam
)

func (m RenderMode) String() string {
	switch m {
	case Gradient:
		return "gradient"
	case TriColor:
		return "tricolor"
	case Seam:
		return "seam"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Style describes how a generated pattern is drawn.
type Style struct {
	Mode    RenderMode
	Palette Ramp
}

// Params holds the density parameters of a pattern.
type Params struct {
	// RadiusFraction is the maximum ridge radius as a fraction of the
	// smaller canvas dimension.
	RadiusFraction float64

	// Ridges is the number of ridges per ridge set.
	Ridges int

	// PointsPerRidge is the base number of samples per ridge.
	PointsPerRidge int
}

// DefaultParams are the density parameters used unless configured otherwise.
var DefaultParams = Params{
	RadiusFraction: 0.32,
	Ridges:         15,
	PointsPerRidge: 50,
}

// Model is the geometry shared by all generators: the canvas the pattern
// is laid out for, together with the generated ridges.
type Model struct {
	Width, Height  int
	Center         vec.Vec2
	MaxRadius      float64
	Ridges         int
	PointsPerRidge int

	Paths []Path
}

// NewModel lays out an empty model for a canvas of the given size.
func NewModel(width, height int, p Params) *Model {
	return &Model{
		Width:          width,
		Height:         height,
		Center:         vec.Vec2{X: float64(width) / 2, Y: float64(height) / 2},
		MaxRadius:      float64(min(width, height)) * p.RadiusFraction,
		Ridges:         p.Ridges,
		PointsPerRidge: p.PointsPerRidge,
	}
}

// NumPoints returns the total number of points over all ridges.
func (m *Model) NumPoints() int {
	n := 0
	for _, p := range m.Paths {
		n += len(p)
	}
	return n
}

// baseOffset is the radial start of ridge r in the concentric layout.
func (m *Model) baseOffset(r int) float64 {
	return float64(r)/float64(m.Ridges)*(m.MaxRadius-10) + 10
}

// A Generator computes the ridges of one pattern kind.
//
// Generate must not modify m apart from reading its layout fields, and
// must return the same paths whenever it is called with the same layout.
type Generator interface {
	Kind() Kind
	Style() Style
	Generate(m *Model) []Path
}

// Pattern is a generator together with the model it has been laid out on.
type Pattern struct {
	Model
	gen Generator
}

// New lays out a pattern for the given canvas and generates its ridges.
func New(gen Generator, width, height int, p Params) *Pattern {
	pat := &Pattern{Model: *NewModel(width, height, p), gen: gen}
	pat.Paths = gen.Generate(&pat.Model)
	return pat
}

// Kind returns the kind of the underlying generator.
func (p *Pattern) Kind() Kind {
	return p.gen.Kind()
}

// Style returns the render style of the underlying generator.
func (p *Pattern) Style() Style {
	return p.gen.Style()
}
