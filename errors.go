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

import "errors"

var (
	// ErrNoSurface is returned when a controller is created without a
	// drawing surface, or for a surface with zero area.
	ErrNoSurface = errors.New("no drawing surface")

	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownPattern is returned for a pattern name or kind which is
	// not part of the cycle.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrBusy is returned by Frame if another frame or a resize is
	// still in progress.
	ErrBusy = errors.New("frame in progress")
)
