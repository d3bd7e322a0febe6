// Package app wires a drawing surface, the clock loop and an output sink into
// one session.
package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rook-computer/clockface/internal/clock"
	"github.com/rook-computer/clockface/internal/display"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/render/vector"
	"github.com/rook-computer/clockface/internal/state"
)

// Console is taken over for the duration of a session, e.g. to keep the
// text cursor off a framebuffer.
type Console interface {
	Acquire() error
	Release() error
}

// Surface is a render.Surface whose pixels can be handed to a sink.
type Surface interface {
	render.Surface
	Image() image.Image
}

var errNoSink = errors.New("app: no display sink")

type App struct {
	Config  Config
	Sink    display.Sink
	Store   *state.Store
	Logger  Logger
	Console Console
}

func New(cfg Config, sink display.Sink, store *state.Store) *App {
	return &App{Config: cfg, Sink: sink, Store: store, Logger: NoopLogger{}}
}

// NewSurface creates the drawing surface selected by cfg.
func NewSurface(cfg Config) (Surface, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Antialias {
		return vector.New(cfg.Width, cfg.Height), nil
	}
	return rgbaCanvas{render.NewCanvas(cfg.Width, cfg.Height)}, nil
}

type rgbaCanvas struct{ *render.Canvas }

func (c rgbaCanvas) Image() image.Image { return c.Canvas.Image() }

func (a *App) logger() Logger {
	if a.Logger == nil {
		return NoopLogger{}
	}
	return a.Logger
}

func (a *App) newClock() (*clock.Clock, error) {
	if a.Sink == nil {
		return nil, errNoSink
	}
	surface, err := NewSurface(a.Config)
	if err != nil {
		return nil, err
	}
	cfg, err := a.Config.ClockConfig()
	if err != nil {
		return nil, err
	}
	cfg.Store = a.Store
	cfg.Logger = a.logger()
	cfg.Present = func() error { return a.Sink.Present(surface.Image()) }
	return clock.New(surface, cfg)
}

// Run renders until ctx is done or a frame fails, then releases the console
// and closes the sink. The sink is closed on every return, including
// configuration errors.
func (a *App) Run(ctx context.Context) (err error) {
	log := a.logger()
	if a.Sink == nil {
		return errNoSink
	}
	defer func() {
		if cerr := a.Sink.Close(); cerr != nil {
			log.Errorf("app", "closing display: %v", cerr)
			if err == nil {
				err = cerr
			}
		}
	}()

	c, err := a.newClock()
	if err != nil {
		return err
	}

	if a.Console != nil {
		// A console that cannot switch modes still shows the clock.
		_ = a.Console.Acquire()
		defer func() { _ = a.Console.Release() }()
	}

	log.Infof("app", "started (theme=%s font=%s size=%dx%d)", a.Config.Theme, a.Config.Font, a.Config.Width, a.Config.Height)
	if err := c.Run(ctx); err != nil {
		return err
	}
	log.Infof("app", "stopped")
	return nil
}

// RenderOnce draws and presents a single frame without closing the sink.
func (a *App) RenderOnce() error {
	c, err := a.newClock()
	if err != nil {
		return err
	}
	return c.Tick()
}
