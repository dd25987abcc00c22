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

package terminal

import (
	"context"
	"image"

	"github.com/gdamore/tcell/v2"
)

// Events starts a goroutine which reads the events of the tcell screen.
// A terminal resize is reported on the resizes channel, converted to a
// drawing size.  The quit channel is closed when the user presses
// Escape, Ctrl-C or q, or when ctx is cancelled.
//
// The goroutine stops once the tcell screen is finalised.
func (s *Screen) Events(ctx context.Context) (resizes <-chan image.Point, quit <-chan struct{}) {
	events := make(chan tcell.Event, 16)
	go readEvents(ctx, s.scr.PollEvent, events)

	rc := make(chan image.Point, 1)
	qc := make(chan struct{})
	go func() {
		defer close(qc)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if isQuit(ev) {
						return
					}
				case *tcell.EventResize:
					s.scr.Sync()
					cols, rows := ev.Size()
					select {
					case rc <- s.DrawingSize(cols, rows):
					case <-ctx.Done():
						return
					}
				}
			}
		}
	}()
	return rc, qc
}

// readEvents forwards the results of poll to events until poll returns
// nil or ctx is cancelled.  The events channel is closed on return.
func readEvents(ctx context.Context, poll func() tcell.Event, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
