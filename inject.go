package glint

type syntheticKind uint8

const (
	syntheticMove syntheticKind = iota
	syntheticLeave
	syntheticScroll
)

// syntheticEvent is a single injected input event. Coordinates are in
// viewport space, matching what real pointer input reports.
type syntheticEvent struct {
	kind syntheticKind
	x, y float64
	dy   float64
}

// InjectPointer queues a pointer move to (x, y). The event is consumed on the
// next frame's processInput call.
func (p *Page) InjectPointer(x, y float64) {
	p.input.injectQueue = append(p.input.injectQueue, syntheticEvent{kind: syntheticMove, x: x, y: y})
}

// InjectPointerLeave queues the pointer leaving the page.
func (p *Page) InjectPointerLeave() {
	p.input.injectQueue = append(p.input.injectQueue, syntheticEvent{kind: syntheticLeave})
}

// InjectScroll queues a scroll by dy pixels.
func (p *Page) InjectScroll(dy float64) {
	p.input.injectQueue = append(p.input.injectQueue, syntheticEvent{kind: syntheticScroll, dy: dy})
}

// InjectSweep queues pointer moves linearly interpolated from (fromX, fromY)
// to (toX, toY) over frames frames (minimum 2).
func (p *Page) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		p.InjectPointer(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input should be skipped).
func (p *Page) processInjectedInput() bool {
	if len(p.input.injectQueue) == 0 {
		return false
	}
	evt := p.input.injectQueue[0]
	copy(p.input.injectQueue, p.input.injectQueue[1:])
	p.input.injectQueue = p.input.injectQueue[:len(p.input.injectQueue)-1]

	switch evt.kind {
	case syntheticMove:
		p.pointerMove(evt.x, evt.y)
	case syntheticLeave:
		p.pointerLeave()
	case syntheticScroll:
		p.viewport.ScrollBy(evt.dy)
	}
	return true
}
