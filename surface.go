package glint

// Surface is the 2D drawing context the particle field and page render into.
type Surface interface {
	// Size returns the current pixel dimensions.
	Size() (w, h float64)
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a filled circle of radius r centered on (x, y).
	FillCircle(x, y, r float64, c Color)
	// Line strokes a segment. c.A carries the line opacity.
	Line(x1, y1, x2, y2, width float64, c Color)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(r Rect, c Color)
}

// TextSurface is implemented by surfaces that can draw labels.
type TextSurface interface {
	DrawText(x, y float64, text string, c Color)
}
