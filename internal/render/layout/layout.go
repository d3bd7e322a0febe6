package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Expand grows rect by leadPx on the top and left and by trailPx on the
// bottom and right.
func Expand(rect image.Rectangle, leadPx, trailPx int) image.Rectangle {
	rect = Normalize(rect)
	return image.Rect(rect.Min.X-leadPx, rect.Min.Y-leadPx, rect.Max.X+trailPx, rect.Max.Y+trailPx)
}

// Fit returns the largest rectangle with the aspect ratio of size that fits
// into rect, centered on both axes.
func Fit(rect image.Rectangle, size image.Point) image.Rectangle {
	rect = Normalize(rect)
	if size.X <= 0 || size.Y <= 0 || rect.Empty() {
		return image.Rectangle{Min: rect.Min, Max: rect.Min}
	}
	width := rect.Dx()
	height := width * size.Y / size.X
	if height > rect.Dy() {
		height = rect.Dy()
		width = height * size.X / size.Y
	}
	min := rect.Min.Add(image.Pt((rect.Dx()-width)/2, (rect.Dy()-height)/2))
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(width, height))}
}
