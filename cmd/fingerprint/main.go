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

// Command fingerprint shows animated fingerprint ridge patterns.
//
// By default the animation runs in the terminal, drawn with braille
// characters.  Alternatively, single frames can be written as PNG, a
// whole pattern reveal as an animated GIF, or a completed pattern as PDF.
//
// Usage:
//
//	fingerprint [flags]
//
// Examples:
//
//	fingerprint -pattern whorl,double-loop
//	fingerprint -out png -frames 20 -o frame.png
//	fingerprint -out gif -pattern tented-arch -o tented.gif
//	fingerprint -out pdf -pattern plain-arch -variation 5 -o arch.pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/fingerprint"
	"seehuhn.de/go/fingerprint/pattern"
	"seehuhn.de/go/fingerprint/terminal"
)

type options struct {
	out       string
	outName   string
	width     int
	height    int
	patterns  string
	variation int
	frames    int
	fps       int
	backend   string
	bg        color.NRGBA
	zoom      float64
	logFile   string
	verbose   bool
}

func main() {
	cfg := fingerprint.DefaultConfig()
	var opt options
	var jitter, bg string

	flag.StringVar(&opt.out, "out", "term", "output: term, png, gif or pdf")
	flag.StringVar(&opt.outName, "o", "", "output file (default fingerprint.<out>)")
	flag.IntVar(&opt.width, "w", 480, "image width in pixels")
	flag.IntVar(&opt.height, "h", 480, "image height in pixels")
	flag.StringVar(&opt.patterns, "pattern", "", "comma separated list of patterns to cycle through (default all)")
	flag.IntVar(&opt.variation, "variation", -1, "plain arch variation to start with")
	flag.IntVar(&opt.frames, "frames", 0, "number of frames to render (png: frame number, gif: maximum)")
	flag.IntVar(&opt.fps, "fps", 60, "frames per second")
	flag.StringVar(&opt.backend, "backend", "raster", "raster backend: raster, vector or gg")
	flag.StringVar(&bg, "bg", "white", "background colour name for png and gif output")
	flag.Float64Var(&opt.zoom, "zoom", terminal.DefaultZoom, "drawing units per braille dot (term only)")
	flag.StringVar(&opt.logFile, "log", "", "write log messages to this file instead of stderr")
	flag.BoolVar(&opt.verbose, "v", false, "enable debug logging")

	flag.IntVar(&cfg.Ridges, "ridges", cfg.Ridges, "number of ridges")
	flag.IntVar(&cfg.PointsPerRidge, "points", cfg.PointsPerRidge, "points per ridge")
	flag.IntVar(&cfg.PointsPerFrame, "per-frame", cfg.PointsPerFrame, "points revealed per ridge and frame")
	flag.DurationVar(&cfg.CompletionDelay, "delay", cfg.CompletionDelay, "pause after a completed pattern")
	flag.IntVar(&cfg.SpineRidges, "spine", cfg.SpineRidges, "S-curve ridges of the double loop")
	flag.StringVar(&jitter, "jitter", "stable", "arch jitter: stable or flicker")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for flicker jitter")
	flag.Parse()

	var err error
	opt.bg, err = parseBackground(bg)
	if err == nil {
		err = run(cfg, opt, jitter)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fingerprint: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg fingerprint.Config, opt options, jitter string) error {
	closeLog, err := setupLogging(opt)
	if err != nil {
		return err
	}
	defer closeLog()

	switch jitter {
	case "stable":
		cfg.Jitter = pattern.JitterStable
	case "flicker":
		cfg.Jitter = pattern.JitterFlicker
	default:
		return fmt.Errorf("%w: jitter %q", fingerprint.ErrInvalidConfig, jitter)
	}
	cfg.Patterns, err = parsePatterns(opt.patterns)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var ctlOpts []fingerprint.Option
	if opt.variation >= 0 {
		ctlOpts = append(ctlOpts, fingerprint.WithVariation(opt.variation))
	}

	outName := opt.outName
	if outName == "" {
		outName = "fingerprint." + opt.out
	}

	switch opt.out {
	case "term":
		return runTerminal(cfg, opt, ctlOpts)
	case "png":
		return writePNG(outName, cfg, opt, ctlOpts)
	case "gif":
		return writeGIF(outName, cfg, opt, ctlOpts)
	case "pdf":
		return writePDF(outName, cfg, opt, ctlOpts)
	default:
		return fmt.Errorf("unknown output %q", opt.out)
	}
}

// setupLogging installs the package logger.  Without -v, only warnings
// are shown.  In terminal mode, log output without a log file would
// disturb the display and is discarded.
func setupLogging(opt options) (func(), error) {
	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	switch {
	case opt.logFile != "":
		f, err := os.Create(opt.logFile)
		if err != nil {
			return nil, err
		}
		w = f
		closeLog = func() { f.Close() }
	case opt.out == "term":
		return closeLog, nil
	}

	fingerprint.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeLog, nil
}

// parsePatterns converts a comma separated list of pattern names.
func parsePatterns(s string) ([]pattern.Kind, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var kinds []pattern.Kind
	for name := range strings.SplitSeq(s, ",") {
		k, err := pattern.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", fingerprint.ErrUnknownPattern, name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func runTerminal(cfg fingerprint.Config, opt options, ctlOpts []fingerprint.Option) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	defer scr.Fini()

	s := terminal.NewScreen(scr, opt.zoom)
	c, err := fingerprint.NewController(s, cfg, ctlOpts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	resizes, quit := s.Events(ctx)
	go func() {
		<-quit
		cancel()
	}()

	ticks, stop := fingerprint.Ticker(opt.fps)
	defer stop()

	err = c.Run(ctx, ticks, resizes)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// frameClock returns the simulated time of frame i.
func frameClock(fps int) func(i int) time.Time {
	start := time.Unix(0, 0)
	step := time.Second / time.Duration(max(1, fps))
	return func(i int) time.Time {
		return start.Add(time.Duration(i) * step)
	}
}
