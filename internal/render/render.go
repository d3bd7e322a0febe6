package render

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// ErrNoFontFace is returned when text is drawn without a font face.
var ErrNoFontFace = errors.New("render: glyph run has no font face")

// Surface is the drawing target the dial renderers are written against.
// Implementations must not retain arguments past the call. Every primitive
// may fail; callers propagate the error without retrying.
type Surface interface {
	// Bounds returns the drawable area.
	Bounds() image.Rectangle
	Clear(c color.Color) error

	// DrawCircle draws a circle whose bounding square is size pixels wide,
	// centered on center.
	DrawCircle(center image.Point, size int, style Style) error
	DrawLine(from, to image.Point, style Style) error
	DrawRect(rect image.Rectangle, style Style) error
	DrawText(run GlyphRun) error
}

// Style describes how a primitive is stroked and filled. A nil color skips
// that part; a zero StrokeWidth skips the stroke.
type Style struct {
	StrokeColor color.Color
	StrokeWidth int
	FillColor   color.Color
}

func StrokeStyle(c color.Color, width int) Style {
	return Style{StrokeColor: c, StrokeWidth: width}
}

func FillStyle(c color.Color) Style { return Style{FillColor: c} }

func (s Style) stroked() bool { return s.StrokeColor != nil && s.StrokeWidth > 0 }
func (s Style) filled() bool  { return s.FillColor != nil }

// GlyphRun is a shaped line of text. Dot is the left end of the baseline.
type GlyphRun struct {
	Text  string
	Dot   image.Point
	Face  font.Face
	Color color.Color
}

// Bounds returns the cell box of the run: the advance width by the face's
// ascent plus descent, positioned relative to Dot.
func (run GlyphRun) Bounds() image.Rectangle {
	return TextBox(run.Face, run.Text).Add(run.Dot)
}

// TextBox measures text as if its baseline started at the origin.
func TextBox(face font.Face, text string) image.Rectangle {
	if face == nil {
		return image.Rectangle{}
	}
	metrics := face.Metrics()
	width := font.MeasureString(face, text).Ceil()
	return image.Rect(0, -metrics.Ascent.Ceil(), width, metrics.Descent.Ceil())
}
