// Package geometry projects clock values onto a circular face.
//
// Angles are in radians, zero at 12 o'clock, increasing clockwise. Screen
// coordinates follow image.Point: x grows to the right, y grows downward.
package geometry

import (
	"errors"
	"image"
	"math"
)

// DefaultMargin is the gap kept between the face and the surface edge.
const DefaultMargin = 5

// ErrDegenerateFace is returned when the margin leaves no room for a face.
var ErrDegenerateFace = errors.New("geometry: face diameter must be positive")

// Face is the circular clock boundary every projection is relative to.
type Face struct {
	Center   image.Point
	Diameter int
}

// NewFace fits the largest centered circle into bounds, minus margin on every side.
func NewFace(bounds image.Rectangle, margin int) (Face, error) {
	bounds = bounds.Canon()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	diameter := side - 2*margin
	if diameter <= 0 {
		return Face{}, ErrDegenerateFace
	}
	return Face{Center: Center(bounds), Diameter: diameter}, nil
}

// Bounds returns the square enclosing the face circle.
func (f Face) Bounds() image.Rectangle {
	min := f.Center.Sub(image.Pt((f.Diameter-1)/2, (f.Diameter-1)/2))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(f.Diameter, f.Diameter))}
}

// Radius is half the diameter, unrounded.
func (f Face) Radius() float64 { return float64(f.Diameter) / 2 }

// Center returns the pixel at the middle of r. For even sizes the
// top-left of the four middle pixels is used.
func Center(r image.Rectangle) image.Point {
	size := r.Size()
	if size.X < 1 || size.Y < 1 {
		return r.Min
	}
	return r.Min.Add(image.Pt((size.X-1)/2, (size.Y-1)/2))
}

// HourToAngle folds a 24 hour value onto the 12 hour dial.
func HourToAngle(hour int) float64 {
	hour %= 12
	if hour < 0 {
		hour += 12
	}
	return float64(hour) / 12 * 2 * math.Pi
}

// SexagesimalToAngle maps a base 60 value (minutes or seconds) onto a full
// turn. Values outside 0-59 are not clamped.
func SexagesimalToAngle(value int) float64 {
	return float64(value) / 60 * 2 * math.Pi
}

// Polar projects angle onto a circle of radius face.Radius()+radiusOffset.
// Negative offsets move the point towards the center.
func Polar(face Face, angle float64, radiusOffset int) image.Point {
	radius := face.Radius() + float64(radiusOffset)
	return face.Center.Add(image.Pt(
		int(math.Sin(angle)*radius),
		int(-math.Cos(angle)*radius),
	))
}
