package clock

import (
	"fmt"
	"time"
)

// TimeSource reports the wall clock time to draw.
type TimeSource interface {
	Clock() (hour, minute, second int)
}

// SystemTime reads time.Now in Location, or in the local zone when nil.
type SystemTime struct {
	Location *time.Location
}

func (s SystemTime) Clock() (int, int, int) {
	now := time.Now()
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now.Clock()
}

// FixedTime always reports the same time. Useful for screenshots and tests.
type FixedTime struct {
	Hour, Minute, Second int
}

func (f FixedTime) Clock() (int, int, int) { return f.Hour, f.Minute, f.Second }

// ParseFixedTime parses "HH:MM:SS" (24 hour).
func ParseFixedTime(value string) (FixedTime, error) {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return FixedTime{}, fmt.Errorf("time %q must be HH:MM:SS: %w", value, err)
	}
	return FixedTime{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
}

// LabelFunc formats the digital readout for a time.
type LabelFunc func(hour, minute, second int) string

// FormatHMS renders a zero padded HH:MM:SS label.
func FormatHMS(hour, minute, second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// StaticLabel ignores the time and always shows text.
func StaticLabel(text string) LabelFunc {
	return func(int, int, int) string { return text }
}
