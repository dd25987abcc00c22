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

// Animator tracks how many points of every ridge have been revealed.
//
// The counters are sized from the generated paths, so that there is
// exactly one counter per ridge whatever generator produced them.
type Animator struct {
	revealed []int
	lengths  []int
}

// Reset prepares the animator for a new set of paths.  All counters
// start at zero.  The internal buffers grow but never shrink.
func (a *Animator) Reset(paths []pattern.Path) {
	n := len(paths)
	if cap(a.revealed) < n {
		a.revealed = make([]int, n)
		a.lengths = make([]int, n)
	} else {
		a.revealed = a.revealed[:n]
		a.lengths = a.lengths[:n]
		clear(a.revealed)
	}
	for r, p := range paths {
		a.lengths[r] = len(p)
	}
}

// Advance reveals up to budget more points on every ridge.
// Counters never exceed the length of their ridge.
func (a *Animator) Advance(budget int) {
	for r, n := range a.lengths {
		a.revealed[r] = min(n, a.revealed[r]+budget)
	}
}

// Done reports whether all ridges are fully revealed.
// Empty ridges count as revealed.
func (a *Animator) Done() bool {
	for r, n := range a.lengths {
		if a.revealed[r] < n {
			return false
		}
	}
	return true
}

// Revealed returns the current counters, indexed like the paths.
// The slice is owned by the animator and changes on the next call to
// Advance or Reset.
func (a *Animator) Revealed() []int {
	return a.revealed
}
