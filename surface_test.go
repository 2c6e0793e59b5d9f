package glint

type drawOp struct {
	kind           string
	x1, y1, x2, y2 float64
	r              float64
	c              Color
}

// recordingSurface captures draw calls instead of rasterizing them.
type recordingSurface struct {
	w, h     float64
	ops      []drawOp
	clears   int
	disposed bool
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) Clear() {
	s.clears++
	s.ops = s.ops[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", x1: x, y1: y, r: r, c: c})
}

func (s *recordingSurface) Line(x1, y1, x2, y2, width float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, r: width, c: c})
}

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", x1: r.X, y1: r.Y, x2: r.X + r.Width, y2: r.Y + r.Height, c: c})
}

func (s *recordingSurface) IsDisposed() bool { return s.disposed }

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) DrawText(x, y float64, text string, c Color) {
	s.ops = append(s.ops, drawOp{kind: "text:" + text, x1: x, y1: y, c: c})
}

func (s *recordingSurface) texts() []string {
	var out []string
	for _, op := range s.ops {
		if len(op.kind) > 5 && op.kind[:5] == "text:" {
			out = append(out, op.kind[5:])
		}
	}
	return out
}
