// Package rendertest provides surfaces for testing code that draws.
package rendertest

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/rook-computer/clockface/internal/render"
)

type Op string

const (
	OpClear  Op = "clear"
	OpCircle Op = "circle"
	OpLine   Op = "line"
	OpRect   Op = "rect"
	OpText   Op = "text"
)

// Call is one recorded primitive. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	Color  color.Color
	Center image.Point
	Size   int
	From   image.Point
	To     image.Point
	Rect   image.Rectangle
	Style  render.Style
	Run    render.GlyphRun
}

func (c Call) String() string {
	switch c.Op {
	case OpCircle:
		return fmt.Sprintf("circle %v size=%d", c.Center, c.Size)
	case OpLine:
		return fmt.Sprintf("line %v-%v", c.From, c.To)
	case OpRect:
		return fmt.Sprintf("rect %v", c.Rect)
	case OpText:
		return fmt.Sprintf("text %q at %v", c.Run.Text, c.Run.Dot)
	}
	return string(c.Op)
}

// Recorder is a Surface that remembers every call instead of drawing.
type Recorder struct {
	Area  image.Rectangle
	Calls []Call
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Area: image.Rect(0, 0, width, height)}
}

func (r *Recorder) Bounds() image.Rectangle { return r.Area }

func (r *Recorder) Clear(c color.Color) error {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
	return nil
}

func (r *Recorder) DrawCircle(center image.Point, size int, style render.Style) error {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Center: center, Size: size, Style: style})
	return nil
}

func (r *Recorder) DrawLine(from, to image.Point, style render.Style) error {
	r.Calls = append(r.Calls, Call{Op: OpLine, From: from, To: to, Style: style})
	return nil
}

func (r *Recorder) DrawRect(rect image.Rectangle, style render.Style) error {
	r.Calls = append(r.Calls, Call{Op: OpRect, Rect: rect, Style: style})
	return nil
}

func (r *Recorder) DrawText(run render.GlyphRun) error {
	r.Calls = append(r.Calls, Call{Op: OpText, Run: run})
	return nil
}

// Ops lists the recorded operations in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

var ErrInjected = errors.New("rendertest: injected draw failure")

// Failing wraps a Surface and fails the call numbered FailAt (zero based,
// counted across all primitives). Calls after the failure go through again.
type Failing struct {
	render.Surface
	FailAt int
	Err    error

	calls int
}

func (f *Failing) fail() error {
	n := f.calls
	f.calls++
	if n != f.FailAt {
		return nil
	}
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

func (f *Failing) Clear(c color.Color) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Surface.Clear(c)
}

func (f *Failing) DrawCircle(center image.Point, size int, style render.Style) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Surface.DrawCircle(center, size, style)
}

func (f *Failing) DrawLine(from, to image.Point, style render.Style) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Surface.DrawLine(from, to, style)
}

func (f *Failing) DrawRect(rect image.Rectangle, style render.Style) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Surface.DrawRect(rect, style)
}

func (f *Failing) DrawText(run render.GlyphRun) error {
	if err := f.fail(); err != nil {
		return err
	}
	return f.Surface.DrawText(run)
}
