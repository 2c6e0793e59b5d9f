package glint

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an *ebiten.Image with the vector package.
type EbitenSurface struct {
	img        *ebiten.Image
	background Color
	antialias  bool
}

// NewEbitenSurface wraps img. Clear fills with background.
func NewEbitenSurface(img *ebiten.Image, background Color) *EbitenSurface {
	return &EbitenSurface{img: img, background: background, antialias: true}
}

// SetImage retargets the surface, typically to the screen handed to Draw.
func (s *EbitenSurface) SetImage(img *ebiten.Image) {
	s.img = img
}

// SetBackground changes the clear color.
func (s *EbitenSurface) SetBackground(c Color) {
	s.background = c
}

// IsDisposed reports whether there is no image to draw into.
func (s *EbitenSurface) IsDisposed() bool {
	return s.img == nil
}

func (s *EbitenSurface) Size() (w, h float64) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Clear() {
	if s.background.A == 0 {
		s.img.Clear()
		return
	}
	s.img.Fill(s.background.toRGBA())
}

func (s *EbitenSurface) FillCircle(x, y, r float64, c Color) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c.toRGBA(), s.antialias)
}

func (s *EbitenSurface) Line(x1, y1, x2, y2, width float64, c Color) {
	vector.StrokeLine(s.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c.toRGBA(), s.antialias)
}

func (s *EbitenSurface) FillRect(r Rect, c Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), s.antialias)
}

// DrawText prints text with the debug font. The debug font has a fixed
// color, so c is ignored.
func (s *EbitenSurface) DrawText(x, y float64, text string, _ Color) {
	ebitenutil.DebugPrintAt(s.img, text, int(x), int(y))
}
