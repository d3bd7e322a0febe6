// Package display presents finished frames on output devices. Every sink
// scales the logical canvas into its own bounds, keeping the aspect ratio.
package display

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/clockface/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Sink receives every presented frame. Present must not retain img.
type Sink interface {
	Present(img image.Image) error
	Close() error
}

// Multi presents to several sinks in order and stops at the first error.
type Multi []Sink

func (m Multi) Present(img image.Image) error {
	for _, sink := range m {
		if err := sink.Present(img); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var errs []error
	for _, sink := range m {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// blit scales src into dst with nearest neighbour sampling, centered and
// letterboxed. Bars are painted with bg when it is not nil.
func blit(dst draw.Image, src image.Image, bg color.Color) image.Rectangle {
	target := layout.Fit(dst.Bounds(), src.Bounds().Size())
	if bg != nil && target != dst.Bounds() {
		bars := &image.Uniform{C: bg}
		bounds := dst.Bounds()
		draw.Draw(dst, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, target.Min.Y), bars, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(bounds.Min.X, target.Max.Y, bounds.Max.X, bounds.Max.Y), bars, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(bounds.Min.X, target.Min.Y, target.Min.X, target.Max.Y), bars, image.Point{}, draw.Src)
		draw.Draw(dst, image.Rect(target.Max.X, target.Min.Y, bounds.Max.X, target.Max.Y), bars, image.Point{}, draw.Src)
	}
	if target.Size() == src.Bounds().Size() {
		draw.Draw(dst, target, src, src.Bounds().Min, draw.Src)
		return target
	}
	xdraw.NearestNeighbor.Scale(dst, target, src, src.Bounds(), xdraw.Src, nil)
	return target
}
