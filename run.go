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
	"context"
	"errors"
	"image"
	"time"
)

// Run paints a frame for every time value received from frames and
// restarts the pattern for every size received from resizes.  It returns
// when ctx is cancelled, when frames is closed, or when painting a frame
// fails.
//
// Run processes all events on the calling goroutine, so frames never
// overlap.  A nil resizes channel is allowed.
func (c *Controller) Run(ctx context.Context, frames <-chan time.Time, resizes <-chan image.Point) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case size := <-resizes:
			if err := c.Resize(size.X, size.Y); err != nil {
				Logger().Warn("ignoring resize", "error", err)
			}

		case now, ok := <-frames:
			if !ok {
				return nil
			}
			err := c.Frame(now)
			if errors.Is(err, ErrBusy) {
				continue
			} else if err != nil {
				return err
			}
		}
	}
}

// Ticker returns a channel delivering the current time at the given frame
// rate, together with a function to stop it.
func Ticker(fps int) (<-chan time.Time, func()) {
	t := time.NewTicker(time.Second / time.Duration(max(1, fps)))
	return t.C, t.Stop
}
