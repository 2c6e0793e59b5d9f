package glint

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface renders onto a tcell screen. Pixel coordinates are mapped
// to cells of CellWidth x CellHeight pixels; alpha is blended against the
// background color since terminals have no per-cell transparency.
type TerminalSurface struct {
	screen     tcell.Screen
	CellWidth  float64
	CellHeight float64
	background Color
	closed     bool
}

// NewTerminalSurface wraps an initialized tcell screen.
func NewTerminalSurface(screen tcell.Screen, background Color) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		CellWidth:  8,
		CellHeight: 16,
		background: background,
	}
}

// SetBackground changes the clear color.
func (s *TerminalSurface) SetBackground(c Color) {
	s.background = c
}

// Close marks the surface unusable; a running particle field stops on its
// next frame.
func (s *TerminalSurface) Close() {
	s.closed = true
}

// IsDisposed reports whether Close was called.
func (s *TerminalSurface) IsDisposed() bool {
	return s.closed
}

func (s *TerminalSurface) Size() (w, h float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

func (s *TerminalSurface) Clear() {
	cols, rows := s.screen.Size()
	st := tcell.StyleDefault.Background(s.tcellColor(s.background))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (s *TerminalSurface) FillCircle(x, y, r float64, c Color) {
	glyph := '•'
	if r >= s.CellWidth/2 {
		glyph = '●'
	}
	s.put(x, y, glyph, c)
}

func (s *TerminalSurface) Line(x1, y1, x2, y2, width float64, c Color) {
	cx1, cy1 := s.cell(x1, y1)
	cx2, cy2 := s.cell(x2, y2)
	dx := abs(cx2 - cx1)
	dy := -abs(cy2 - cy1)
	sx, sy := 1, 1
	if cx1 > cx2 {
		sx = -1
	}
	if cy1 > cy2 {
		sy = -1
	}
	st := s.style(c)
	e := dx + dy
	for {
		s.screen.SetContent(cx1, cy1, '·', nil, st)
		if cx1 == cx2 && cy1 == cy2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx1 += sx
		}
		if e2 <= dx {
			e += dx
			cy1 += sy
		}
	}
}

func (s *TerminalSurface) FillRect(r Rect, c Color) {
	x0, y0 := s.cell(r.X, r.Y)
	x1 := max(x0, int(math.Ceil((r.X+r.Width)/s.CellWidth))-1)
	y1 := max(y0, int(math.Ceil((r.Y+r.Height)/s.CellHeight))-1)
	st := s.style(c)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.screen.SetContent(x, y, '█', nil, st)
		}
	}
}

// DrawText writes text left to right starting at the cell under (x, y).
func (s *TerminalSurface) DrawText(x, y float64, text string, c Color) {
	cx, cy := s.cell(x, y)
	st := s.style(c)
	for _, r := range text {
		s.screen.SetContent(cx, cy, r, nil, st)
		cx++
	}
}

// Show flushes pending cell writes to the terminal.
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

func (s *TerminalSurface) put(x, y float64, glyph rune, c Color) {
	cx, cy := s.cell(x, y)
	s.screen.SetContent(cx, cy, glyph, nil, s.style(c))
}

func (s *TerminalSurface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

// style blends c over the background and returns a foreground style.
func (s *TerminalSurface) style(c Color) tcell.Style {
	a := clamp01(c.A)
	blended := Color{
		R: lerp(s.background.R, c.R, a),
		G: lerp(s.background.G, c.G, a),
		B: lerp(s.background.B, c.B, a),
		A: 1,
	}
	return tcell.StyleDefault.
		Foreground(s.tcellColor(blended)).
		Background(s.tcellColor(s.background))
}

func (s *TerminalSurface) tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(
		int32(clamp01(c.R)*255+0.5),
		int32(clamp01(c.G)*255+0.5),
		int32(clamp01(c.B)*255+0.5),
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
