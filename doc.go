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

// Package fingerprint animates procedurally generated fingerprint ridge
// patterns.
//
// A [Controller] cycles through the pattern kinds of package
// [seehuhn.de/go/fingerprint/pattern].  Every pattern is revealed ridge
// by ridge, a fixed number of points per frame, and stays on screen for
// a short while once it is complete.  Frames are painted onto any
// [Surface]; package [seehuhn.de/go/fingerprint/surface] provides
// raster, vector and PDF implementations.
package fingerprint
