package glint

import (
	"log"
	"time"
)

// FrameFunc is invoked once, before the next repaint, with the frame's
// monotonic timestamp.
type FrameFunc func(now time.Duration)

// FrameHandle identifies a pending frame callback. The zero handle is never
// issued.
type FrameHandle uint64

// FrameClock schedules one-shot per-frame callbacks. Continuous animation
// re-registers from inside its own callback.
type FrameClock interface {
	Now() time.Duration
	RequestFrame(fn FrameFunc) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameEntry struct {
	handle FrameHandle
	fn     FrameFunc
}

// FrameLoop is a FrameClock advanced explicitly, either by the ebiten game
// loop through Step or by tests through Advance.
//
// Callbacks registered while a frame is being dispatched run on the following
// frame, so every callback of frame N observes state as of the end of frame
// N-1. A callback that panics is logged and dropped; the rest of the frame
// still runs.
type FrameLoop struct {
	now     time.Duration
	next    FrameHandle
	pending []frameEntry
	running []frameEntry
	frames  uint64
}

// NewFrameLoop creates a FrameLoop at timestamp zero.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Now returns the timestamp of the most recently dispatched frame.
func (l *FrameLoop) Now() time.Duration {
	return l.now
}

// Frames returns the number of frames dispatched so far.
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}

// RequestFrame registers fn for the next frame.
func (l *FrameLoop) RequestFrame(fn FrameFunc) FrameHandle {
	l.next++
	l.pending = append(l.pending, frameEntry{handle: l.next, fn: fn})
	return l.next
}

// CancelFrame removes a pending callback. Unknown or already-run handles are
// ignored.
func (l *FrameLoop) CancelFrame(h FrameHandle) {
	for i, e := range l.pending {
		if e.handle == h {
			copy(l.pending[i:], l.pending[i+1:])
			l.pending[len(l.pending)-1] = frameEntry{}
			l.pending = l.pending[:len(l.pending)-1]
			return
		}
	}
}

// Step advances the clock by dt and dispatches one frame.
func (l *FrameLoop) Step(dt time.Duration) {
	l.Advance(l.now + dt)
}

// Advance sets the clock to now and dispatches one frame. Timestamps never
// move backwards; an earlier now is treated as the current time.
func (l *FrameLoop) Advance(now time.Duration) {
	if now > l.now {
		l.now = now
	}
	l.frames++

	// Swap buffers so re-registrations land in the next frame.
	l.running, l.pending = l.pending, l.running[:0]
	for i := range l.running {
		l.dispatch(l.running[i])
		l.running[i] = frameEntry{}
	}
	l.running = l.running[:0]
}

func (l *FrameLoop) dispatch(e frameEntry) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[glint] frame callback %d panicked: %v", e.handle, r)
		}
	}()
	e.fn(l.now)
}
