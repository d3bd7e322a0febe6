package render_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/rook-computer/clockface/internal/render"
	"golang.org/x/image/font/basicfont"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
)

func pixel(c *render.Canvas, x, y int) color.RGBA { return c.Image().RGBAAt(x, y) }

func TestCanvas_Clear(t *testing.T) {
	c := render.NewCanvas(8, 4)
	if err := c.Clear(red); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			if got := pixel(c, x, y); got != red {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, got)
			}
		}
	}
}

func TestCanvas_FilledCircle(t *testing.T) {
	c := render.NewCanvas(40, 40)
	_ = c.Clear(black)
	if err := c.DrawCircle(image.Pt(20, 20), 9, render.FillStyle(white)); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{20, 20}, {16, 20}, {24, 20}, {20, 16}, {20, 24}} {
		if got := pixel(c, p.X, p.Y); got != white {
			t.Errorf("pixel %v = %v, want inside", p, got)
		}
	}
	for _, p := range []image.Point{{15, 20}, {25, 20}, {16, 16}, {24, 24}} {
		if got := pixel(c, p.X, p.Y); got != black {
			t.Errorf("pixel %v = %v, want outside", p, got)
		}
	}
}

func TestCanvas_StrokedCircleLeavesInside(t *testing.T) {
	c := render.NewCanvas(40, 40)
	_ = c.Clear(black)
	style := render.Style{StrokeColor: white, StrokeWidth: 1, FillColor: red}
	if err := c.DrawCircle(image.Pt(20, 20), 11, style); err != nil {
		t.Fatal(err)
	}
	if got := pixel(c, 20, 20); got != red {
		t.Errorf("center = %v, want fill", got)
	}
	if got := pixel(c, 15, 20); got != white {
		t.Errorf("rim = %v, want stroke", got)
	}
	if got := pixel(c, 14, 20); got != black {
		t.Errorf("outside = %v, want untouched", got)
	}

	ring := render.NewCanvas(40, 40)
	_ = ring.Clear(black)
	_ = ring.DrawCircle(image.Pt(20, 20), 30, render.StrokeStyle(white, 2))
	if got := pixel(ring, 20, 20); got != black {
		t.Errorf("stroke-only center = %v, want untouched", got)
	}
}

func TestCanvas_Line(t *testing.T) {
	c := render.NewCanvas(20, 20)
	_ = c.Clear(black)
	if err := c.DrawLine(image.Pt(2, 3), image.Pt(12, 3), render.StrokeStyle(white, 1)); err != nil {
		t.Fatal(err)
	}
	for x := 2; x <= 12; x++ {
		if got := pixel(c, x, 3); got != white {
			t.Errorf("pixel (%d,3) = %v, want line", x, got)
		}
	}
	if pixel(c, 13, 3) != black || pixel(c, 2, 4) != black {
		t.Errorf("line leaked outside its span")
	}

	_ = c.DrawLine(image.Pt(15, 15), image.Pt(5, 5), render.StrokeStyle(red, 1))
	for i := 5; i <= 15; i++ {
		if got := pixel(c, i, i); got != red {
			t.Errorf("diagonal pixel (%d,%d) = %v, want red", i, i, got)
		}
	}
}

func TestCanvas_LineWithoutStrokeIsNoop(t *testing.T) {
	c := render.NewCanvas(10, 10)
	_ = c.Clear(black)
	_ = c.DrawLine(image.Pt(0, 0), image.Pt(9, 9), render.FillStyle(white))
	if got := pixel(c, 5, 5); got != black {
		t.Errorf("pixel = %v, want untouched", got)
	}
}

func TestCanvas_Rect(t *testing.T) {
	c := render.NewCanvas(20, 20)
	_ = c.Clear(black)
	_ = c.DrawRect(image.Rect(2, 2, 10, 8), render.Style{StrokeColor: white, StrokeWidth: 1, FillColor: red})
	if got := pixel(c, 2, 2); got != white {
		t.Errorf("corner = %v, want stroke", got)
	}
	if got := pixel(c, 5, 5); got != red {
		t.Errorf("inside = %v, want fill", got)
	}
	if got := pixel(c, 10, 8); got != black {
		t.Errorf("max corner = %v, want untouched (exclusive)", got)
	}
}

func TestCanvas_StrokeOnlyRect(t *testing.T) {
	c := render.NewCanvas(20, 20)
	_ = c.Clear(black)
	if err := c.DrawRect(image.Rect(2, 2, 10, 8), render.StrokeStyle(white, 1)); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{2, 2}, {9, 2}, {2, 7}, {9, 7}, {5, 2}, {2, 5}, {9, 5}, {5, 7}} {
		if got := pixel(c, p.X, p.Y); got != white {
			t.Errorf("border %v = %v, want stroke", p, got)
		}
	}
	for _, p := range []image.Point{{3, 3}, {5, 5}, {8, 6}} {
		if got := pixel(c, p.X, p.Y); got != black {
			t.Errorf("interior %v = %v, want untouched", p, got)
		}
	}

	// A stroke wider than half the rectangle covers it.
	_ = c.DrawRect(image.Rect(12, 12, 16, 16), render.StrokeStyle(red, 3))
	if got := pixel(c, 14, 14); got != red {
		t.Errorf("thick stroke center = %v, want stroke", got)
	}
	if got := pixel(c, 16, 16); got != black {
		t.Errorf("thick stroke leaked to %v", got)
	}
}

func TestCanvas_WideLine(t *testing.T) {
	c := render.NewCanvas(20, 20)
	_ = c.Clear(black)
	_ = c.DrawLine(image.Pt(3, 10), image.Pt(15, 10), render.StrokeStyle(white, 3))
	for _, y := range []int{9, 10, 11} {
		if got := pixel(c, 8, y); got != white {
			t.Errorf("pixel (8,%d) = %v, want line", y, got)
		}
	}
	if pixel(c, 8, 8) != black || pixel(c, 8, 12) != black {
		t.Errorf("3px line is wider than 3px")
	}
}

func TestCanvas_Displayer(t *testing.T) {
	c := render.NewCanvas(30, 12)
	if w, h := c.Size(); w != 30 || h != 12 {
		t.Fatalf("Size = %dx%d", w, h)
	}
	c.SetPixel(4, 5, red)
	c.SetPixel(-1, 40, red)
	if got := pixel(c, 4, 5); got != red {
		t.Errorf("SetPixel = %v", got)
	}
	if err := c.Display(); err != nil {
		t.Errorf("Display: %v", err)
	}
}

func TestCanvas_Text(t *testing.T) {
	c := render.NewCanvas(100, 30)
	_ = c.Clear(black)
	run := render.GlyphRun{Text: "88:88", Dot: image.Pt(5, 20), Face: basicfont.Face7x13, Color: white}
	if err := c.DrawText(run); err != nil {
		t.Fatal(err)
	}
	box := run.Bounds()
	if box != image.Rect(5, 9, 40, 22) {
		t.Fatalf("run bounds = %v", box)
	}
	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			if pixel(c, x, y) == black {
				continue
			}
			lit++
			if !image.Pt(x, y).In(box) {
				t.Fatalf("glyph pixel (%d,%d) outside %v", x, y, box)
			}
		}
	}
	if lit == 0 {
		t.Errorf("no glyph pixels drawn")
	}

	if err := c.DrawText(render.GlyphRun{Text: "x"}); !errors.Is(err, render.ErrNoFontFace) {
		t.Errorf("nil face err = %v, want ErrNoFontFace", err)
	}
}

func TestThemeByName(t *testing.T) {
	theme, err := render.ThemeByName(" Rook ")
	if err != nil {
		t.Fatal(err)
	}
	if theme != render.Rook {
		t.Errorf("ThemeByName(rook) = %v", theme)
	}
	if _, err := render.ThemeByName("neon"); err == nil {
		t.Errorf("unknown theme accepted")
	}
}
