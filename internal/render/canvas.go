package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
)

// Canvas is an offscreen RGBA surface. Primitives are rasterized by tinydraw
// on integer coordinates, so identical draw sequences always produce
// identical pixels.
//
// Canvas is also a drivers.Displayer; Display is a no-op.
type Canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*Canvas)(nil)

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the backing pixels. It is only valid until the next draw.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

func (c *Canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel ignores points outside the canvas.
func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c *Canvas) Display() error { return nil }

func (c *Canvas) Clear(col color.Color) error {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
	return nil
}

// DrawCircle draws a circle of radius (size-1)/2 around center. Odd sizes
// cover exactly size pixels; even sizes one less. The stroke is inside the
// circle, one concentric ring per pixel of width.
func (c *Canvas) DrawCircle(center image.Point, size int, style Style) error {
	if size <= 0 {
		return nil
	}
	x, y := int16(center.X), int16(center.Y)
	r := int16((size - 1) / 2)
	if style.filled() {
		tinydraw.FilledCircle(c, x, y, r, rgba(style.FillColor))
	}
	if style.stroked() {
		stroke := rgba(style.StrokeColor)
		for i := int16(0); i < int16(style.StrokeWidth) && r-i >= 0; i++ {
			tinydraw.Circle(c, x, y, r-i, stroke)
		}
	}
	return nil
}

// DrawLine includes both end points. Wider strokes stamp a square brush on
// every pixel of the line.
func (c *Canvas) DrawLine(from, to image.Point, style Style) error {
	if !style.stroked() {
		return nil
	}
	var dst drivers.Displayer = c
	if style.StrokeWidth > 1 {
		dst = brush{c: c, width: int16(style.StrokeWidth)}
	}
	tinydraw.Line(dst, int16(from.X), int16(from.Y), int16(to.X), int16(to.Y), rgba(style.StrokeColor))
	return nil
}

// DrawRect fills rect and strokes StrokeWidth pixels along its inside edge.
// rect.Max is exclusive.
func (c *Canvas) DrawRect(rect image.Rectangle, style Style) error {
	rect = rect.Canon()
	if rect.Empty() {
		return nil
	}
	if style.filled() {
		c.fillRect(rect, rgba(style.FillColor))
	}
	if style.stroked() {
		w := style.StrokeWidth
		stroke := rgba(style.StrokeColor)
		bands := []image.Rectangle{
			image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+w),
			image.Rect(rect.Min.X, rect.Max.Y-w, rect.Max.X, rect.Max.Y),
			image.Rect(rect.Min.X, rect.Min.Y+w, rect.Min.X+w, rect.Max.Y-w),
			image.Rect(rect.Max.X-w, rect.Min.Y+w, rect.Max.X, rect.Max.Y-w),
		}
		for _, band := range bands {
			c.fillRect(band.Intersect(rect), stroke)
		}
	}
	return nil
}

func (c *Canvas) fillRect(r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	// Only fails for empty rectangles.
	_ = tinydraw.FilledRectangle(c, int16(r.Min.X), int16(r.Min.Y), int16(r.Dx()), int16(r.Dy()), col)
}

func (c *Canvas) DrawText(run GlyphRun) error {
	if run.Face == nil {
		return ErrNoFontFace
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: run.Color},
		Face: run.Face,
		Dot:  fixed.P(run.Dot.X, run.Dot.Y),
	}
	drawer.DrawString(run.Text)
	return nil
}

// brush widens every pixel tinydraw plots into a width x width square.
type brush struct {
	c     *Canvas
	width int16
}

func (b brush) Size() (x, y int16) { return b.c.Size() }
func (b brush) Display() error     { return nil }

func (b brush) SetPixel(x, y int16, col color.RGBA) {
	half := (b.width - 1) / 2
	for dy := int16(0); dy < b.width; dy++ {
		for dx := int16(0); dx < b.width; dx++ {
			b.c.SetPixel(x-half+dx, y-half+dy, col)
		}
	}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
