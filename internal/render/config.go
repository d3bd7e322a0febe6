package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// Dial dimensions in pixels. Offsets are added to the face radius.
const (
	FaceStrokeWidth = 2
	TickOffset      = -10
	LineWidth       = 1

	HourHandOffset   = -60
	MinuteHandOffset = -30
	SecondHandOffset = 0

	DecorationOffset = -20
	DecorationSize   = 11
	CenterCapSize    = 9

	// The label box grows by LabelPadding on the leading edges only; the
	// font's own cell already pads the trailing edges.
	LabelPadding         = 3
	LabelTrailingPadding = 1
	// The label sits this fraction of the face height above center.
	LabelOffsetDivisor = 4
)

// Logical canvas size used when no output device dictates one.
const (
	DefaultCanvasWidth  = 240
	DefaultCanvasHeight = 240
)

// Theme is the two-color scheme every renderer draws with.
type Theme struct {
	Foreground color.Color
	Background color.Color
}

var (
	Mono = Theme{
		Foreground: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Background: color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	}
	// Rook is the purple on yellow kiosk palette (#9000ff on #ffdc00).
	Rook = Theme{
		Foreground: color.RGBA{R: 0x90, G: 0x00, B: 0xFF, A: 0xFF},
		Background: color.RGBA{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF},
	}
)

var themes = map[string]Theme{
	"mono": Mono,
	"rook": Rook,
}

// ThemeByName looks up a named theme, ignoring case.
func ThemeByName(name string) (Theme, error) {
	theme, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return theme, nil
}

func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
