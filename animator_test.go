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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/fingerprint/pattern"
)

func TestAnimatorMonotone(t *testing.T) {
	paths := []pattern.Path{
		make(pattern.Path, 7),
		make(pattern.Path, 25),
		nil,
		make(pattern.Path, 3),
	}

	var a Animator
	a.Reset(paths)
	assert.Equal(t, []int{0, 0, 0, 0}, a.Revealed())
	assert.False(t, a.Done())

	prev := make([]int, len(paths))
	for frame := 0; frame < 10; frame++ {
		a.Advance(4)
		for r, n := range a.Revealed() {
			assert.GreaterOrEqual(t, n, prev[r], "ridge %d, frame %d", r, frame)
			assert.LessOrEqual(t, n, len(paths[r]), "ridge %d, frame %d", r, frame)
			prev[r] = n
		}
	}
	assert.Equal(t, []int{7, 25, 0, 3}, a.Revealed())
	assert.True(t, a.Done())
}

func TestAnimatorSteps(t *testing.T) {
	paths := []pattern.Path{make(pattern.Path, 50), make(pattern.Path, 50)}
	var a Animator
	a.Reset(paths)
	for i := 1; i <= 5; i++ {
		assert.False(t, a.Done())
		a.Advance(10)
		assert.Equal(t, []int{10 * i, 10 * i}, a.Revealed())
	}
	assert.True(t, a.Done())
}

func TestAnimatorReset(t *testing.T) {
	var a Animator
	a.Reset([]pattern.Path{make(pattern.Path, 5), make(pattern.Path, 5), make(pattern.Path, 5)})
	a.Advance(3)

	a.Reset([]pattern.Path{make(pattern.Path, 2)})
	assert.Equal(t, []int{0}, a.Revealed())
	a.Advance(3)
	assert.Equal(t, []int{2}, a.Revealed())
	assert.True(t, a.Done())

	a.Reset(nil)
	assert.Empty(t, a.Revealed())
	assert.True(t, a.Done())
}
