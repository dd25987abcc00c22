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

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"time"

	"golang.org/x/image/colornames"

	"seehuhn.de/go/fingerprint"
	"seehuhn.de/go/fingerprint/surface"
)

// maxFrames limits the length of offline renderings.
const maxFrames = 10000

// rasterSurface is a surface whose contents can be read back.
type rasterSurface interface {
	fingerprint.Surface
	Snapshot() image.Image
}

type imageSurface struct{ *surface.Image }

func (s imageSurface) Snapshot() image.Image { return s.RGBA() }

type vectorSurface struct{ *surface.Vector }

func (s vectorSurface) Snapshot() image.Image { return s.RGBA() }

type ggSurface struct{ *surface.GG }

func (s ggSurface) Snapshot() image.Image { return s.Image() }

// parseBackground looks up a colour by its SVG name.
func parseBackground(name string) (color.NRGBA, error) {
	if name == "" || name == "transparent" {
		return color.NRGBA{}, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", name)
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}

// newSurface allocates a raster surface with the given background.
func newSurface(backend string, width, height int, bg color.NRGBA) (rasterSurface, func(), error) {
	switch backend {
	case "raster":
		s := surface.NewImage(width, height)
		s.Background = bg
		s.Clear()
		return imageSurface{s}, func() {}, nil
	case "vector":
		s := surface.NewVector(width, height)
		s.Background = bg
		s.Clear()
		return vectorSurface{s}, func() {}, nil
	case "gg":
		s := surface.NewGG(width, height)
		s.Background = bg
		s.Clear()
		return ggSurface{s}, func() { s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// advance paints frames starting at frame number first, until the current
// pattern is complete or limit frames have been painted.  It returns the
// number of the next frame.
func advance(c *fingerprint.Controller, clock func(int) time.Time, first, limit int, each func(i int) error) (int, error) {
	i := first
	for ; i < first+limit; i++ {
		if err := c.Frame(clock(i)); err != nil {
			return i, err
		}
		if each != nil {
			if err := each(i); err != nil {
				return i, err
			}
		}
		if c.Phase() == fingerprint.Complete {
			return i + 1, nil
		}
	}
	return i, nil
}

func writePNG(fname string, cfg fingerprint.Config, opt options, ctlOpts []fingerprint.Option) error {
	s, release, err := newSurface(opt.backend, opt.width, opt.height, opt.bg)
	if err != nil {
		return err
	}
	defer release()

	c, err := fingerprint.NewController(s, cfg, ctlOpts...)
	if err != nil {
		return err
	}
	clock := frameClock(opt.fps)
	if opt.frames > 0 {
		for i := range opt.frames {
			if err := c.Frame(clock(i)); err != nil {
				return err
			}
		}
	} else if _, err := advance(c, clock, 0, maxFrames, nil); err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, s.Snapshot())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// writeGIF records the reveal of one pattern as an animated GIF.  The last
// frame is shown for the completion delay.
func writeGIF(fname string, cfg fingerprint.Config, opt options, ctlOpts []fingerprint.Option) error {
	s, release, err := newSurface(opt.backend, opt.width, opt.height, opt.bg)
	if err != nil {
		return err
	}
	defer release()

	c, err := fingerprint.NewController(s, cfg, ctlOpts...)
	if err != nil {
		return err
	}

	// GIF delays are in units of 10ms; record at most 25 frames per second.
	every := max(1, opt.fps/25)
	delay := max(2, every*100/max(1, opt.fps))

	anim := &gif.GIF{}
	limit := maxFrames
	if opt.frames > 0 {
		limit = opt.frames
	}
	var last int
	record := func(i int) error {
		if i%every != 0 && c.Phase() != fingerprint.Complete {
			return nil
		}
		anim.Image = append(anim.Image, quantize(s.Snapshot()))
		anim.Delay = append(anim.Delay, delay)
		last = i
		return nil
	}
	if _, err := advance(c, frameClock(opt.fps), 0, limit, record); err != nil {
		return err
	}
	if n := len(anim.Delay); n > 0 && c.Phase() == fingerprint.Complete {
		anim.Delay[n-1] += int(cfg.CompletionDelay / (10 * time.Millisecond))
	}
	fingerprint.Logger().Debug("gif recorded", "frames", len(anim.Image), "last", last)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = gif.EncodeAll(f, anim)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// quantize converts img to the Plan 9 palette, using dithering.
func quantize(img image.Image) *image.Paletted {
	b := img.Bounds()
	pal := image.NewPaletted(b, palette.Plan9)
	draw.FloydSteinberg.Draw(pal, b, img, b.Min)
	return pal
}

func writePDF(fname string, cfg fingerprint.Config, opt options, ctlOpts []fingerprint.Option) error {
	s := surface.NewPDF(opt.width, opt.height)
	c, err := fingerprint.NewController(s, cfg, ctlOpts...)
	if err != nil {
		return err
	}
	if _, err := advance(c, frameClock(opt.fps), 0, maxFrames, nil); err != nil {
		return err
	}
	fingerprint.Logger().Info("writing pdf", "file", fname, "dots", s.Len())
	return s.WriteFile(fname)
}
