package glint

import (
	"math"
	"time"

	"github.com/tanema/gween"
)

// Viewport is the window onto the page: a fixed-size rectangle scrolled
// vertically through the document.
type Viewport struct {
	// ScrollY is the document offset of the viewport's top edge.
	ScrollY float64
	// Width and Height are the visible size in pixels.
	Width, Height float64
	// DocumentHeight is the scrollable height. ScrollY is clamped to
	// [0, DocumentHeight-Height].
	DocumentHeight float64

	scrollTween *gween.Tween
}

// NewViewport creates a viewport scrolled to the top.
func NewViewport(w, h, documentH float64) *Viewport {
	return &Viewport{Width: w, Height: h, DocumentHeight: documentH}
}

// Rect returns the visible area in document coordinates.
func (v *Viewport) Rect() Rect {
	return Rect{X: 0, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// MaxScroll returns the largest valid ScrollY.
func (v *Viewport) MaxScroll() float64 {
	return math.Max(0, v.DocumentHeight-v.Height)
}

// ScrollBy moves the viewport by dy pixels immediately, canceling any
// animated scroll.
func (v *Viewport) ScrollBy(dy float64) {
	v.scrollTween = nil
	v.ScrollY += dy
	v.clamp()
}

// ScrollTo animates the viewport to y over d. A non-positive duration jumps.
func (v *Viewport) ScrollTo(y float64, d time.Duration, fn EasingFunc) {
	y = math.Max(0, math.Min(y, v.MaxScroll()))
	if d <= 0 {
		v.scrollTween = nil
		v.ScrollY = y
		return
	}
	if fn == nil {
		fn = OutCubic
	}
	v.scrollTween = gween.New(float32(v.ScrollY), float32(y), float32(d.Seconds()), GweenFunc(fn))
}

// Scrolling reports whether an animated scroll is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// ToDocument converts a point in viewport coordinates to the document.
func (v *Viewport) ToDocument(x, y float64) (float64, float64) {
	return x, y + v.ScrollY
}

// ToScreen converts a document point to viewport coordinates.
func (v *Viewport) ToScreen(x, y float64) (float64, float64) {
	return x, y - v.ScrollY
}

// update advances an animated scroll by dt.
func (v *Viewport) update(dt time.Duration) {
	if v.scrollTween != nil {
		val, done := v.scrollTween.Update(float32(dt.Seconds()))
		v.ScrollY = float64(val)
		if done {
			v.scrollTween = nil
		}
	}
	v.clamp()
}

func (v *Viewport) clamp() {
	v.ScrollY = math.Max(0, math.Min(v.ScrollY, v.MaxScroll()))
}
