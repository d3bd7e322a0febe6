package display

import (
	"image"

	"tinygo.org/x/drivers"
)

// Displayer presents frames on a TinyGo display driver, one SetPixel per
// pixel followed by Display.
type Displayer struct {
	Dev drivers.Displayer

	buffer *image.RGBA
}

func (d *Displayer) Present(img image.Image) error {
	w, h := d.Dev.Size()
	bounds := image.Rect(0, 0, int(w), int(h))
	if d.buffer == nil || d.buffer.Bounds() != bounds {
		d.buffer = image.NewRGBA(bounds)
	}
	blit(d.buffer, img, img.At(img.Bounds().Min.X, img.Bounds().Min.Y))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			d.Dev.SetPixel(int16(x), int16(y), d.buffer.RGBAAt(x, y))
		}
	}
	return d.Dev.Display()
}

func (d *Displayer) Close() error { return nil }
