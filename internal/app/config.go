package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rook-computer/clockface/internal/assets"
	"github.com/rook-computer/clockface/internal/clock"
	"github.com/rook-computer/clockface/internal/render"
)

const (
	EnvTheme     = "CLOCKFACE_THEME"
	EnvInterval  = "CLOCKFACE_INTERVAL"
	EnvTimezone  = "CLOCKFACE_TZ"
	EnvFont      = "CLOCKFACE_FONT"
	EnvFontSize  = "CLOCKFACE_FONT_SIZE"
	EnvAntialias = "CLOCKFACE_ANTIALIAS"
)

// Config selects how frames are drawn. The zero value is not usable; start
// from DefaultConfigFromEnv.
type Config struct {
	Theme    string
	Interval time.Duration
	// FixedTime pins the clock to "HH:MM:SS" instead of reading the system time.
	FixedTime string
	// Label replaces the HH:MM:SS readout with a constant text.
	Label    string
	Timezone string
	Font     string
	FontSize float64
	// Logical canvas size; sinks scale it to the device.
	Width  int
	Height int
	// Antialias draws with the vector surface instead of the exact raster.
	Antialias        bool
	SkipFailedFrames bool
}

func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		Theme:    "mono",
		Interval: clock.DefaultInterval,
		Font:     assets.FontBasic,
		FontSize: assets.DefaultFontSize,
		Width:    render.DefaultCanvasWidth,
		Height:   render.DefaultCanvasHeight,
	}
	if raw := os.Getenv(EnvTheme); raw != "" {
		cfg.Theme = raw
	}
	if raw := os.Getenv(EnvTimezone); raw != "" {
		cfg.Timezone = raw
	}
	if raw := os.Getenv(EnvFont); raw != "" {
		cfg.Font = raw
	}
	if raw := os.Getenv(EnvInterval); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a duration (got %q): %w", EnvInterval, raw, err)
		}
		cfg.Interval = parsed
	}
	if raw := os.Getenv(EnvFontSize); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a number (got %q): %w", EnvFontSize, raw, err)
		}
		cfg.FontSize = parsed
	}
	if raw := os.Getenv(EnvAntialias); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvAntialias, raw, err)
		}
		cfg.Antialias = parsed
	}
	return cfg, nil
}

// RegisterFlags binds the render settings to fs, using cfg as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: mono | rook; also configurable via "+EnvTheme)
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "pause between frames; also configurable via "+EnvInterval)
	fs.StringVar(&cfg.FixedTime, "time", cfg.FixedTime, "draw this HH:MM:SS instead of the system time")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "constant text for the digital readout instead of HH:MM:SS")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA time zone for the system time; also configurable via "+EnvTimezone)
	fs.StringVar(&cfg.Font, "font", cfg.Font, "label font: basic | gomono | gomono-tt; also configurable via "+EnvFont)
	fs.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "label size in points for scalable fonts; also configurable via "+EnvFontSize)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "logical canvas width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "logical canvas height in pixels")
	fs.BoolVar(&cfg.Antialias, "antialias", cfg.Antialias, "draw anti-aliased; also configurable via "+EnvAntialias)
	fs.BoolVar(&cfg.SkipFailedFrames, "skip-failed-frames", cfg.SkipFailedFrames, "keep running when a frame fails to draw or present")
}

// ClockConfig resolves the named settings into a clock.Config.
func (cfg Config) ClockConfig() (clock.Config, error) {
	theme, err := render.ThemeByName(cfg.Theme)
	if err != nil {
		return clock.Config{}, err
	}
	face, err := assets.Face(cfg.Font, cfg.FontSize)
	if err != nil {
		return clock.Config{}, err
	}

	out := clock.Config{
		Theme:            theme,
		Font:             face,
		Interval:         cfg.Interval,
		SkipFailedFrames: cfg.SkipFailedFrames,
	}
	if cfg.FixedTime != "" {
		fixed, err := clock.ParseFixedTime(cfg.FixedTime)
		if err != nil {
			return clock.Config{}, err
		}
		out.Time = fixed
	} else {
		system := clock.SystemTime{}
		if cfg.Timezone != "" {
			loc, err := time.LoadLocation(cfg.Timezone)
			if err != nil {
				return clock.Config{}, fmt.Errorf("time zone %q: %w", cfg.Timezone, err)
			}
			system.Location = loc
		}
		out.Time = system
	}
	if cfg.Label != "" {
		out.Label = clock.StaticLabel(cfg.Label)
	}
	return out, nil
}
