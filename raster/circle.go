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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// Circle replaces the contents of p by a circle of the given centre and
// radius, made from four cubic Bézier segments, and returns p.  The
// buffers of p are reused.
func Circle(p *path.Data, c vec.Vec2, radius float64) *path.Data {
	k := radius * kappa
	p.Cmds = append(p.Cmds[:0],
		path.CmdMoveTo,
		path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo,
		path.CmdClose)
	p.Coords = append(p.Coords[:0],
		vec.Vec2{X: c.X + radius, Y: c.Y},

		vec.Vec2{X: c.X + radius, Y: c.Y + k},
		vec.Vec2{X: c.X + k, Y: c.Y + radius},
		vec.Vec2{X: c.X, Y: c.Y + radius},

		vec.Vec2{X: c.X - k, Y: c.Y + radius},
		vec.Vec2{X: c.X - radius, Y: c.Y + k},
		vec.Vec2{X: c.X - radius, Y: c.Y},

		vec.Vec2{X: c.X - radius, Y: c.Y - k},
		vec.Vec2{X: c.X - k, Y: c.Y - radius},
		vec.Vec2{X: c.X, Y: c.Y - radius},

		vec.Vec2{X: c.X + k, Y: c.Y - radius},
		vec.Vec2{X: c.X + radius, Y: c.Y - k},
		vec.Vec2{X: c.X + radius, Y: c.Y},
	)
	return p
}
