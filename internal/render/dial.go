package render

import (
	"fmt"
	"image"

	"github.com/rook-computer/clockface/internal/geometry"
	"github.com/rook-computer/clockface/internal/render/layout"
	"golang.org/x/image/font"
)

// Label is the digital readout drawn above the dial center.
type Label struct {
	Text string
	Face font.Face
}

// DrawFace strokes the outer ring and the twelve hour graduations.
func DrawFace(s Surface, face geometry.Face, theme Theme) error {
	if err := s.DrawCircle(face.Center, face.Diameter, StrokeStyle(theme.Foreground, FaceStrokeWidth)); err != nil {
		return fmt.Errorf("face ring: %w", err)
	}
	tick := StrokeStyle(theme.Foreground, LineWidth)
	for hour := 0; hour < 12; hour++ {
		angle := geometry.HourToAngle(hour)
		start := geometry.Polar(face, angle, 0)
		end := geometry.Polar(face, angle, TickOffset)
		if err := s.DrawLine(start, end, tick); err != nil {
			return fmt.Errorf("graduation %d: %w", hour, err)
		}
	}
	return nil
}

// DrawHand draws a line from the center towards angle. lengthOffset shortens
// the hand relative to the face radius when negative.
func DrawHand(s Surface, face geometry.Face, theme Theme, angle float64, lengthOffset int) error {
	end := geometry.Polar(face, angle, lengthOffset)
	return s.DrawLine(face.Center, end, StrokeStyle(theme.Foreground, LineWidth))
}

// DrawDecoration places a small outlined disc on a hand. It must be drawn
// after the hand it decorates.
func DrawDecoration(s Surface, face geometry.Face, theme Theme, angle float64, offset int) error {
	position := geometry.Polar(face, angle, offset)
	return s.DrawCircle(position, DecorationSize, Style{
		FillColor:   theme.Background,
		StrokeColor: theme.Foreground,
		StrokeWidth: LineWidth,
	})
}

// LabelLayout returns where DrawDigitalClock puts the text baseline and the
// backing box for label on face.
func LabelLayout(face geometry.Face, label Label) (dot image.Point, backing image.Rectangle) {
	box := TextBox(label.Face, label.Text)
	dot = face.Center.
		Sub(geometry.Center(box)).
		Sub(image.Pt(0, face.Bounds().Dy()/LabelOffsetDivisor))
	backing = layout.Expand(box.Add(dot), LabelPadding, LabelTrailingPadding)
	return dot, backing
}

// DrawDigitalClock draws label centered horizontally, a quarter of the face
// height above center, on a foreground box with background colored glyphs.
func DrawDigitalClock(s Surface, face geometry.Face, theme Theme, label Label) error {
	if label.Face == nil {
		return ErrNoFontFace
	}
	dot, backing := LabelLayout(face, label)
	if err := s.DrawRect(backing, FillStyle(theme.Foreground)); err != nil {
		return fmt.Errorf("label box: %w", err)
	}
	if err := s.DrawText(GlyphRun{Text: label.Text, Dot: dot, Face: label.Face, Color: theme.Background}); err != nil {
		return fmt.Errorf("label text: %w", err)
	}
	return nil
}

// DrawCenterCap covers the point where the hands meet.
func DrawCenterCap(s Surface, face geometry.Face, theme Theme) error {
	return s.DrawCircle(face.Center, CenterCapSize, FillStyle(theme.Foreground))
}
