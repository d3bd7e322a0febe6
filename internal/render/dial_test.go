package render_test

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/rook-computer/clockface/internal/geometry"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/render/rendertest"
	"golang.org/x/image/font/basicfont"
)

var testFace = geometry.Face{Center: image.Pt(119, 119), Diameter: 230}

func TestDrawFace(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	if err := render.DrawFace(rec, testFace, render.Mono); err != nil {
		t.Fatal(err)
	}
	if len(rec.Calls) != 13 {
		t.Fatalf("got %d calls, want ring + 12 ticks", len(rec.Calls))
	}
	ring := rec.Calls[0]
	if ring.Op != rendertest.OpCircle || ring.Center != testFace.Center || ring.Size != testFace.Diameter {
		t.Errorf("ring = %v", ring)
	}
	if ring.Style.StrokeWidth != 2 || ring.Style.StrokeColor != render.Mono.Foreground || ring.Style.FillColor != nil {
		t.Errorf("ring style = %+v", ring.Style)
	}
	top := rec.Calls[1]
	if top.From != image.Pt(119, 4) || top.To != image.Pt(119, 14) {
		t.Errorf("12 o'clock tick = %v, want (119,4)-(119,14)", top)
	}
	three := rec.Calls[4]
	if three.From != image.Pt(234, 119) || three.To != image.Pt(224, 119) {
		t.Errorf("3 o'clock tick = %v, want (234,119)-(224,119)", three)
	}
	for _, c := range rec.Calls[1:] {
		if c.Op != rendertest.OpLine || c.Style.StrokeWidth != 1 {
			t.Errorf("tick %v has style %+v", c, c.Style)
		}
	}
}

func TestDrawHand(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	if err := render.DrawHand(rec, testFace, render.Mono, math.Pi/2, render.HourHandOffset); err != nil {
		t.Fatal(err)
	}
	c := rec.Calls[0]
	if c.From != testFace.Center {
		t.Errorf("hand starts at %v, want center", c.From)
	}
	if c.To != image.Pt(119+55, 119) {
		t.Errorf("hand ends at %v, want (174,119)", c.To)
	}
}

func TestDrawDecoration(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	if err := render.DrawDecoration(rec, testFace, render.Rook, 0, render.DecorationOffset); err != nil {
		t.Fatal(err)
	}
	c := rec.Calls[0]
	if c.Op != rendertest.OpCircle || c.Center != image.Pt(119, 119-95) || c.Size != 11 {
		t.Errorf("decoration = %v", c)
	}
	if c.Style.FillColor != render.Rook.Background || c.Style.StrokeColor != render.Rook.Foreground || c.Style.StrokeWidth != 1 {
		t.Errorf("decoration style = %+v", c.Style)
	}
}

func TestDrawDigitalClock(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	label := render.Label{Text: "Hello World", Face: basicfont.Face7x13}
	if err := render.DrawDigitalClock(rec, testFace, render.Mono, label); err != nil {
		t.Fatal(err)
	}
	if ops := rec.Ops(); len(ops) != 2 || ops[0] != rendertest.OpRect || ops[1] != rendertest.OpText {
		t.Fatalf("ops = %v, want rect then text", ops)
	}
	box, text := rec.Calls[0], rec.Calls[1]
	if text.Run.Dot != image.Pt(81, 67) {
		t.Errorf("text dot = %v, want (81,67)", text.Run.Dot)
	}
	if box.Rect != image.Rect(78, 53, 159, 70) {
		t.Errorf("backing = %v, want (78,53)-(159,70)", box.Rect)
	}
	textBox := text.Run.Bounds()
	if box.Rect.Size() != textBox.Size().Add(image.Pt(4, 4)) {
		t.Errorf("backing size %v, want text size %v + 4", box.Rect.Size(), textBox.Size())
	}
	if box.Style.FillColor != render.Mono.Foreground || text.Run.Color != render.Mono.Background {
		t.Errorf("label must contrast with its box: box %v text %v", box.Style.FillColor, text.Run.Color)
	}
	if mid := geometry.Center(textBox); mid.X != testFace.Center.X || mid.Y != testFace.Center.Y-57 {
		t.Errorf("text centered at %v, want (119,62)", mid)
	}
}

func TestDrawDigitalClock_NoFace(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	err := render.DrawDigitalClock(rec, testFace, render.Mono, render.Label{Text: "12:00:00"})
	if !errors.Is(err, render.ErrNoFontFace) {
		t.Errorf("err = %v, want ErrNoFontFace", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("drew %d primitives without a face", len(rec.Calls))
	}
}

func TestDrawCenterCap(t *testing.T) {
	rec := rendertest.NewRecorder(240, 240)
	_ = render.DrawCenterCap(rec, testFace, render.Mono)
	c := rec.Calls[0]
	if c.Center != testFace.Center || c.Size != 9 || c.Style.FillColor != render.Mono.Foreground || c.Style.StrokeWidth != 0 {
		t.Errorf("cap = %v style %+v", c, c.Style)
	}
}

func TestDrawFace_PropagatesSurfaceError(t *testing.T) {
	for _, failAt := range []int{0, 5} {
		surface := &rendertest.Failing{Surface: rendertest.NewRecorder(240, 240), FailAt: failAt}
		err := render.DrawFace(surface, testFace, render.Mono)
		if !errors.Is(err, rendertest.ErrInjected) {
			t.Errorf("failAt=%d: err = %v, want ErrInjected", failAt, err)
		}
	}
}
