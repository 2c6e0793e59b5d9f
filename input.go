package glint

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scrolling input tuning.
const (
	WheelStep      = 60.0
	ArrowStep      = 40.0
	pageScrollFrac = 0.9
	keyScrollTime  = 400 * time.Millisecond
)

// inputState is the pointer state sampled since the last frame.
type inputState struct {
	pointerX, pointerY float64
	pointerIn          bool
	injectQueue        []syntheticEvent
}

// Pointer returns the last pointer position in viewport coordinates and
// whether the pointer is over the page.
func (p *Page) Pointer() (x, y float64, ok bool) {
	return p.input.pointerX, p.input.pointerY, p.input.pointerIn
}

// processInput is called from Page.Update. Injected events take priority;
// at most one is consumed per frame. Real input is read only while the page
// is driven by Run.
func (p *Page) processInput() {
	if p.processInjectedInput() {
		return
	}
	if p.live {
		p.readEbitenInput()
	}
}

func (p *Page) readEbitenInput() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if x >= 0 && y >= 0 && x < p.viewport.Width && y < p.viewport.Height {
		if x != p.input.pointerX || y != p.input.pointerY || !p.input.pointerIn {
			p.pointerMove(x, y)
		}
	} else if p.input.pointerIn {
		p.pointerLeave()
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		p.viewport.ScrollBy(-wy * WheelStep)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		p.ToggleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.viewport.ScrollTo(0, keyScrollTime, OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.viewport.ScrollTo(p.viewport.MaxScroll(), keyScrollTime, OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.viewport.ScrollTo(p.viewport.ScrollY+p.viewport.Height*pageScrollFrac, keyScrollTime, OutCubic)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.viewport.ScrollTo(p.viewport.ScrollY-p.viewport.Height*pageScrollFrac, keyScrollTime, OutCubic)
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		p.viewport.ScrollBy(ArrowStep)
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		p.viewport.ScrollBy(-ArrowStep)
	}
}

// pointerMove routes a pointer position (viewport coordinates) to the
// particle field and the magnetic elements.
func (p *Page) pointerMove(x, y float64) {
	p.input.pointerX, p.input.pointerY, p.input.pointerIn = x, y, true
	if p.field != nil {
		p.field.SetPointer(x, y)
	}
	dx, dy := p.viewport.ToDocument(x, y)
	for _, m := range p.magnetics {
		el := m.Element()
		wx, wy := el.WorldPosition()
		if (Rect{X: wx, Y: wy, Width: el.Width, Height: el.Height}).Contains(dx, dy) {
			m.Pointer(dx, dy)
		} else {
			m.Leave()
		}
	}
}

func (p *Page) pointerLeave() {
	p.input.pointerIn = false
	if p.field != nil {
		p.field.ClearPointer()
	}
	for _, m := range p.magnetics {
		m.Leave()
	}
}
