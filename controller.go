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
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"seehuhn.de/go/fingerprint/pattern"
)

// Phase is the state of the pattern currently on screen.
type Phase int

// These are the phases of a pattern.
const (
	// Generating means the pattern has just been generated and no
	// points are revealed yet.
	Generating Phase = iota

	// Revealing means that some ridges still have hidden points.
	Revealing

	// Complete means that all points are shown and the next pattern
	// is scheduled.
	Complete

	// Transitioning is the phase while the next pattern of the cycle is
	// being generated.
	Transitioning
)

func (p Phase) String() string {
	switch p {
	case Generating:
		return "generating"
	case Revealing:
		return "revealing"
	case Complete:
		return "complete"
	case Transitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// transition is a scheduled switch to the next pattern.  It only fires
// if the controller's epoch has not changed since it was scheduled.
type transition struct {
	due   time.Time
	epoch uint64
}

// Controller runs the pattern cycle on a surface.
//
// All methods are safe for concurrent use, but frames are never painted
// concurrently: Frame returns [ErrBusy] instead of waiting if another
// frame or a resize is in progress.
type Controller struct {
	mu sync.Mutex

	surface       Surface
	width, height int
	cfg           Config
	steps         []Step
	index         int

	pat   *pattern.Pattern
	anim  Animator
	phase Phase

	epoch   uint64
	pending *transition

	draw pattern.DrawOptions
}

// An Option modifies a controller at construction time.
type Option func(*Controller) error

// StartWith selects the first pattern of the cycle.
func StartWith(k pattern.Kind) Option {
	return func(c *Controller) error {
		for i, s := range c.steps {
			if s.Kind() == k {
				c.index = i
				return nil
			}
		}
		return fmt.Errorf("%w: %s not in cycle", ErrUnknownPattern, k)
	}
}

// WithVariation selects the plain arch variation to start with.
// This implies StartWith(pattern.KindPlainArch).
func WithVariation(v int) Option {
	return func(c *Controller) error {
		for i, s := range c.steps {
			if s.Kind() == pattern.KindPlainArch && s.Variation == v {
				c.index = i
				return nil
			}
		}
		return fmt.Errorf("%w: plain arch variation %d", ErrUnknownPattern, v)
	}
}

// WithRand sets the random source for [pattern.JitterFlicker].
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) error {
		c.draw.Rand = rng
		return nil
	}
}

// NewController creates a controller for the surface s and generates the
// first pattern.  Nothing is painted until the first call to Frame.
func NewController(s Surface, cfg Config, opts ...Option) (*Controller, error) {
	if s == nil {
		return nil, ErrNoSurface
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrNoSurface, w, h)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	steps, err := Cycle(&cfg)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		surface: s,
		cfg:     cfg,
		steps:   steps,
		draw: pattern.DrawOptions{
			Jitter: cfg.Jitter,
			Rand:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.width, c.height = w, h
	c.generate(w, h)
	return c, nil
}

// generate lays out the active step for a surface of size w×h and
// resets the reveal counters.  The caller must hold c.mu.
func (c *Controller) generate(w, h int) {
	step := c.steps[c.index]
	k := step.Kind()
	c.pat = pattern.New(step.Generator, w, h, c.cfg.params(k))
	c.anim.Reset(c.pat.Paths)
	c.phase = Generating
	c.pending = nil

	log := Logger()
	log.Debug("pattern generated",
		"pattern", k,
		"variation", step.Variation,
		"paths", len(c.pat.Paths),
		"points", c.pat.NumPoints())

	empty := 0
	for _, p := range c.pat.Paths {
		if len(p) == 0 {
			empty++
		}
	}
	if empty > 0 {
		log.Warn("skipping empty ridges", "pattern", k, "count", empty)
	}
}

// Frame advances the animation to time now and paints the frame.
//
// If the completion delay of a finished pattern has passed, the next
// pattern of the cycle is generated first.  Then every ridge is advanced
// by the configured number of points, the surface is cleared and all
// revealed points are painted.
func (c *Controller) Frame(now time.Time) error {
	if !c.mu.TryLock() {
		return ErrBusy
	}
	defer c.mu.Unlock()

	if c.phase == Complete && c.pending != nil &&
		c.pending.epoch == c.epoch && !now.Before(c.pending.due) {
		c.next()
	}

	if c.phase == Generating || c.phase == Revealing {
		c.phase = Revealing
		c.anim.Advance(c.cfg.PointsPerFrame)
		if c.anim.Done() {
			c.phase = Complete
			c.pending = &transition{
				due:   now.Add(c.cfg.CompletionDelay),
				epoch: c.epoch,
			}
		}
	}

	c.surface.Clear()
	c.pat.Draw(c.surface, c.anim.Revealed(), c.draw)
	if f, ok := c.surface.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// next moves on to the following step of the cycle.
// The caller must hold c.mu.
func (c *Controller) next() {
	c.phase = Transitioning
	from := c.steps[c.index]
	c.index = (c.index + 1) % len(c.steps)
	to := c.steps[c.index]
	Logger().Info("next pattern",
		"from", from.Kind(),
		"to", to.Kind(),
		"variation", to.Variation)

	c.generate(c.width, c.height)
}

// Resize adapts the animation to a new surface size.  Any scheduled
// transition is cancelled, the current pattern is generated again for
// the new size and the reveal starts over.  The surface is cleared.
//
// Surfaces which do not implement [Resizer] keep their size, but all
// later patterns are laid out for width×height.
//
// Unlike Frame, Resize waits for a frame in progress to finish.
func (c *Controller) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrNoSurface, width, height)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	c.width, c.height = width, height
	if r, ok := c.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	Logger().Info("restarting after resize",
		"pattern", c.steps[c.index].Kind(),
		"width", width,
		"height", height)
	c.generate(width, height)
	c.surface.Clear()
	return nil
}

// Phase returns the phase of the current pattern.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// ActivePattern returns the kind of the current pattern.
func (c *Controller) ActivePattern() pattern.Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.index].Kind()
}

// Variation returns the plain arch style variation of the current
// pattern.  For other kinds the result is zero.
func (c *Controller) Variation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps[c.index].Variation
}

// Revealed returns a copy of the reveal counters of the current pattern.
func (c *Controller) Revealed() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.anim.Revealed()...)
}

// Model returns the geometry of the current pattern.
// The model is replaced, never modified, when a new pattern is generated.
func (c *Controller) Model() *pattern.Model {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &c.pat.Model
}

// Pattern returns the current pattern.
func (c *Controller) Pattern() *pattern.Pattern {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pat
}
