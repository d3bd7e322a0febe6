package layout

import (
	"image"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Normalize(image.Rectangle{Min: image.Pt(10, 8), Max: image.Pt(2, 4)})
	want := image.Rect(2, 4, 10, 8)
	if got != want {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestExpand(t *testing.T) {
	got := Expand(image.Rect(10, 10, 20, 23), 3, 1)
	want := image.Rect(7, 7, 21, 24)
	if got != want {
		t.Errorf("Expand = %v, want %v", got, want)
	}
	if got.Dx() != 14 || got.Dy() != 17 {
		t.Errorf("Expand size = %v, want text size + 4", got.Size())
	}
}

func TestFit(t *testing.T) {
	cases := []struct {
		name string
		rect image.Rectangle
		size image.Point
		want image.Rectangle
	}{
		{"square into landscape", image.Rect(0, 0, 1920, 1080), image.Pt(240, 240), image.Rect(420, 0, 1500, 1080)},
		{"square into portrait", image.Rect(0, 0, 100, 300), image.Pt(50, 50), image.Rect(0, 100, 100, 200)},
		{"same aspect", image.Rect(5, 5, 105, 55), image.Pt(20, 10), image.Rect(5, 5, 105, 55)},
		{"empty size", image.Rect(0, 0, 10, 10), image.Pt(0, 10), image.Rect(0, 0, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fit(tc.rect, tc.size); got != tc.want {
				t.Errorf("Fit = %v, want %v", got, tc.want)
			}
		})
	}
}
