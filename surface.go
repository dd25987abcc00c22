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

import "seehuhn.de/go/fingerprint/pattern"

// Surface is the drawing target of an animation.
//
// Size reports the current dimensions in pixels.  Clear erases the
// whole surface.  Every frame is painted from scratch onto a cleared
// surface.
type Surface interface {
	Size() (width, height int)
	Clear()
	pattern.Canvas
}

// Resizer is implemented by surfaces which can change their size.
// The controller calls Resize before it regenerates the pattern.
type Resizer interface {
	Resize(width, height int)
}

// Flusher is implemented by surfaces which need an explicit step to
// make a painted frame visible.
type Flusher interface {
	Flush() error
}
