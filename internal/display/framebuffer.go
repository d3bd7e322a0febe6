package display

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	fb "github.com/gonutz/framebuffer"
)

// DefaultFramebuffer is the Linux console framebuffer device.
const DefaultFramebuffer = "/dev/fb0"

// Framebuffer draws frames onto a Linux framebuffer device.
type Framebuffer struct {
	// Background paints the letterbox bars. Nil leaves them untouched.
	Background color.Color

	dst   draw.Image
	close func() error
}

func OpenFramebuffer(path string) (*Framebuffer, error) {
	if path == "" {
		path = DefaultFramebuffer
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return &Framebuffer{dst: dev, close: func() error { dev.Close(); return nil }}, nil
}

func (f *Framebuffer) Bounds() image.Rectangle { return f.dst.Bounds() }

func (f *Framebuffer) Present(img image.Image) error {
	blit(f.dst, img, f.Background)
	return nil
}

func (f *Framebuffer) Close() error {
	if f.close == nil {
		return nil
	}
	return f.close()
}
