// Package clock sequences the dial renderers into frames and repeats them
// on a fixed cadence.
package clock

import (
	"context"
	"fmt"
	"time"

	"github.com/rook-computer/clockface/internal/geometry"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/state"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultInterval is the pause between two frames.
const DefaultInterval = 10 * time.Second

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

type Config struct {
	Theme render.Theme
	// Font draws the digital label. Defaults to basicfont.Face7x13.
	Font font.Face
	// Margin between the face and the surface edge. Zero means
	// geometry.DefaultMargin; a negative value draws the face edge to edge.
	Margin   int
	Interval time.Duration

	Time  TimeSource
	Label LabelFunc
	// Delay defaults to a TimerDelay that wakes when Run's context ends.
	Delay Delay

	// Present is called after every fully drawn frame, e.g. to push the
	// surface to a display.
	Present func() error

	Store  *state.Store
	Logger Logger

	// SkipFailedFrames keeps Run going after a frame error instead of
	// returning it.
	SkipFailedFrames bool
}

// Clock owns the surface for the lifetime of a session.
type Clock struct {
	surface render.Surface
	face    geometry.Face
	cfg     Config
}

// New computes the face once from the surface bounds.
func New(surface render.Surface, cfg Config) (*Clock, error) {
	if cfg.Theme.Foreground == nil || cfg.Theme.Background == nil {
		cfg.Theme = render.Mono
	}
	if cfg.Font == nil {
		cfg.Font = basicfont.Face7x13
	}
	switch {
	case cfg.Margin == 0:
		cfg.Margin = geometry.DefaultMargin
	case cfg.Margin < 0:
		cfg.Margin = 0
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Time == nil {
		cfg.Time = SystemTime{}
	}
	if cfg.Label == nil {
		cfg.Label = FormatHMS
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	if cfg.Store != nil {
		cfg.Store.SetPhase(state.INITIALIZING)
	}

	bounds := surface.Bounds()
	face, err := geometry.NewFace(bounds, cfg.Margin)
	if err != nil {
		return nil, fmt.Errorf("surface %v: %w", bounds, err)
	}
	cfg.Logger.Infof("clock", "face center=%v diameter=%d", face.Center, face.Diameter)
	return &Clock{surface: surface, face: face, cfg: cfg}, nil
}

func (c *Clock) Face() geometry.Face { return c.face }

// RenderFrame draws one complete frame. Later steps occlude earlier ones, so
// the order is fixed: background, face, hands, decoration, label, cap. A
// failing step aborts the frame and leaves the surface partially drawn.
func (c *Clock) RenderFrame(hour, minute, second int, label string) error {
	theme := c.cfg.Theme
	hourAngle := geometry.HourToAngle(hour)
	minuteAngle := geometry.SexagesimalToAngle(minute)
	secondAngle := geometry.SexagesimalToAngle(second)

	if err := c.surface.Clear(theme.Background); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := render.DrawFace(c.surface, c.face, theme); err != nil {
		return fmt.Errorf("face: %w", err)
	}
	hands := []struct {
		name   string
		angle  float64
		offset int
	}{
		{"hour hand", hourAngle, render.HourHandOffset},
		{"minute hand", minuteAngle, render.MinuteHandOffset},
		{"second hand", secondAngle, render.SecondHandOffset},
	}
	for _, hand := range hands {
		if err := render.DrawHand(c.surface, c.face, theme, hand.angle, hand.offset); err != nil {
			return fmt.Errorf("%s: %w", hand.name, err)
		}
	}
	if err := render.DrawDecoration(c.surface, c.face, theme, secondAngle, render.DecorationOffset); err != nil {
		return fmt.Errorf("decoration: %w", err)
	}
	if err := render.DrawDigitalClock(c.surface, c.face, theme, render.Label{Text: label, Face: c.cfg.Font}); err != nil {
		return fmt.Errorf("digital clock: %w", err)
	}
	if err := render.DrawCenterCap(c.surface, c.face, theme); err != nil {
		return fmt.Errorf("center cap: %w", err)
	}
	return nil
}

// Tick renders and presents the current time once.
func (c *Clock) Tick() error {
	hour, minute, second := c.cfg.Time.Clock()
	label := c.cfg.Label(hour, minute, second)

	err := c.RenderFrame(hour, minute, second, label)
	if err == nil && c.cfg.Present != nil {
		if perr := c.cfg.Present(); perr != nil {
			err = fmt.Errorf("present: %w", perr)
		}
	}
	if err != nil {
		if c.cfg.Store != nil {
			c.cfg.Store.RecordFailure(err)
		}
		return err
	}
	if c.cfg.Store != nil {
		c.cfg.Store.RecordFrame(state.FrameInfo{
			At:     time.Now(),
			Hour:   hour,
			Minute: minute,
			Second: second,
			Label:  label,
		})
	}
	return nil
}

// Run renders a frame, sleeps for the interval and repeats until ctx is
// done. The stop signal is checked right after each sleep. A frame error
// ends the loop unless SkipFailedFrames is set.
func (c *Clock) Run(ctx context.Context) error {
	delay := c.cfg.Delay
	if delay == nil {
		delay = TimerDelay{Done: ctx.Done()}
	}
	if c.cfg.Store != nil {
		c.cfg.Store.SetPhase(state.RENDERING)
		defer c.cfg.Store.SetPhase(state.STOPPED)
	}
	c.cfg.Logger.Infof("clock", "rendering every %s", c.cfg.Interval)

	for {
		if err := c.Tick(); err != nil {
			if !c.cfg.SkipFailedFrames {
				c.cfg.Logger.Errorf("clock", "frame failed: %v", err)
				return err
			}
			c.cfg.Logger.Errorf("clock", "frame skipped: %v", err)
		}

		delay.Sleep(c.cfg.Interval)
		if ctx.Err() != nil {
			c.cfg.Logger.Infof("clock", "stopped")
			return nil
		}
	}
}
