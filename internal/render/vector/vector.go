// Package vector implements an anti-aliased render.Surface on top of
// fogleman/gg. Output is smoother than render.Canvas but not pixel exact
// across library versions.
package vector

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/rook-computer/clockface/internal/render"
)

type Surface struct {
	dc *gg.Context
}

func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

func (s *Surface) Clear(c color.Color) error {
	s.dc.SetColor(c)
	s.dc.Clear()
	return nil
}

func (s *Surface) DrawCircle(center image.Point, size int, style render.Style) error {
	if size <= 0 {
		return nil
	}
	// Match render.Canvas: the bounding square starts (size-1)/2 before center.
	half := (size - 1) / 2
	cx := float64(center.X-half) + float64(size)/2
	cy := float64(center.Y-half) + float64(size)/2
	radius := float64(size) / 2

	if style.FillColor != nil {
		s.dc.DrawCircle(cx, cy, radius)
		s.dc.SetColor(style.FillColor)
		s.dc.Fill()
	}
	if style.StrokeColor != nil && style.StrokeWidth > 0 {
		width := float64(style.StrokeWidth)
		s.dc.DrawCircle(cx, cy, radius-width/2)
		s.dc.SetColor(style.StrokeColor)
		s.dc.SetLineWidth(width)
		s.dc.Stroke()
	}
	return nil
}

func (s *Surface) DrawLine(from, to image.Point, style render.Style) error {
	if style.StrokeColor == nil || style.StrokeWidth <= 0 {
		return nil
	}
	s.dc.DrawLine(float64(from.X)+0.5, float64(from.Y)+0.5, float64(to.X)+0.5, float64(to.Y)+0.5)
	s.dc.SetColor(style.StrokeColor)
	s.dc.SetLineWidth(float64(style.StrokeWidth))
	s.dc.SetLineCap(gg.LineCapSquare)
	s.dc.Stroke()
	return nil
}

func (s *Surface) DrawRect(rect image.Rectangle, style render.Style) error {
	rect = rect.Canon()
	x, y := float64(rect.Min.X), float64(rect.Min.Y)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	if style.FillColor != nil {
		s.dc.DrawRectangle(x, y, w, h)
		s.dc.SetColor(style.FillColor)
		s.dc.Fill()
	}
	if style.StrokeColor != nil && style.StrokeWidth > 0 {
		inset := float64(style.StrokeWidth) / 2
		s.dc.DrawRectangle(x+inset, y+inset, w-2*inset, h-2*inset)
		s.dc.SetColor(style.StrokeColor)
		s.dc.SetLineWidth(float64(style.StrokeWidth))
		s.dc.Stroke()
	}
	return nil
}

func (s *Surface) DrawText(run render.GlyphRun) error {
	if run.Face == nil {
		return render.ErrNoFontFace
	}
	s.dc.SetFontFace(run.Face)
	s.dc.SetColor(run.Color)
	s.dc.DrawString(run.Text, float64(run.Dot.X), float64(run.Dot.Y))
	return nil
}
