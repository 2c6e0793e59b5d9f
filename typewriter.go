package glint

import "time"

// Typewriter timing defaults.
const (
	DefaultTypeSpeed = 50 * time.Millisecond
	CaretBlink       = 500 * time.Millisecond
)

// Typewriter types an element's text one rune at a time on the frame clock,
// then blinks a caret until stopped. The first rune appears when Start is
// called; each following rune appears Speed later.
type Typewriter struct {
	Speed time.Duration

	el    *Element
	text  []rune
	shown int
	caret bool

	clock   FrameClock
	handle  FrameHandle
	started time.Duration
	doneAt  time.Duration
	running bool
}

// NewTypewriter prepares to type text into el. A non-positive speed means
// DefaultTypeSpeed.
func NewTypewriter(el *Element, text string, speed time.Duration) *Typewriter {
	if speed <= 0 {
		speed = DefaultTypeSpeed
	}
	return &Typewriter{Speed: speed, el: el, text: []rune(text), caret: true}
}

// Start clears the element and begins typing.
func (tw *Typewriter) Start(clock FrameClock) {
	if tw.running {
		return
	}
	tw.clock = clock
	tw.running = true
	tw.started = clock.Now()
	tw.shown = 0
	tw.caret = true
	tw.doneAt = tw.started
	tw.el.Text = ""
	tw.advance(tw.started)
	tw.handle = clock.RequestFrame(tw.frame)
}

// Stop halts typing and blinking. The text typed so far stays.
func (tw *Typewriter) Stop() {
	if !tw.running {
		return
	}
	tw.running = false
	tw.clock.CancelFrame(tw.handle)
}

// Running reports whether the typewriter is still scheduled.
func (tw *Typewriter) Running() bool {
	return tw.running
}

// Done reports whether every rune has been typed.
func (tw *Typewriter) Done() bool {
	return tw.shown == len(tw.text)
}

// Shown returns the text typed so far.
func (tw *Typewriter) Shown() string {
	return string(tw.text[:tw.shown])
}

// CaretVisible reports whether the caret is currently drawn.
func (tw *Typewriter) CaretVisible() bool {
	return tw.caret
}

func (tw *Typewriter) frame(now time.Duration) {
	if !tw.running {
		return
	}
	if tw.el.IsDisposed() {
		tw.running = false
		return
	}
	tw.advance(now)
	tw.handle = tw.clock.RequestFrame(tw.frame)
}

func (tw *Typewriter) advance(now time.Duration) {
	if !tw.Done() {
		n := int((now-tw.started)/tw.Speed) + 1
		if n > len(tw.text) {
			n = len(tw.text)
		}
		if n != tw.shown {
			tw.shown = n
			tw.el.Text = string(tw.text[:n])
		}
		if !tw.Done() {
			return
		}
		tw.doneAt = tw.started + time.Duration(len(tw.text)-1)*tw.Speed
	}
	toggles := (now - tw.doneAt) / CaretBlink
	tw.caret = toggles%2 == 0
}
