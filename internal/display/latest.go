package display

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"sync"
)

var ErrNoFrame = errors.New("display: no frame presented yet")

// Latest keeps a copy of the last presented frame for concurrent readers.
type Latest struct {
	mu    sync.RWMutex
	frame *image.RGBA
}

func (l *Latest) Present(img image.Image) error {
	bounds := img.Bounds()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.frame == nil || l.frame.Bounds() != bounds {
		l.frame = image.NewRGBA(bounds)
	}
	draw.Draw(l.frame, bounds, img, bounds.Min, draw.Src)
	return nil
}

func (l *Latest) Close() error { return nil }

// Image returns a copy of the last frame.
func (l *Latest) Image() (image.Image, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.frame == nil {
		return nil, ErrNoFrame
	}
	frame := image.NewRGBA(l.frame.Bounds())
	copy(frame.Pix, l.frame.Pix)
	return frame, nil
}

func (l *Latest) WritePNG(w io.Writer) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.frame == nil {
		return ErrNoFrame
	}
	return png.Encode(w, l.frame)
}
