package glint

import (
	"testing"
	"time"
)

func TestFrameLoopRunsOncePerRegistration(t *testing.T) {
	loop := NewFrameLoop()
	calls := 0
	loop.RequestFrame(func(time.Duration) { calls++ })

	loop.Advance(16 * ms)
	loop.Advance(32 * ms)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestFrameLoopReRegistrationLandsNextFrame(t *testing.T) {
	loop := NewFrameLoop()
	var seen []time.Duration
	var fn FrameFunc
	fn = func(now time.Duration) {
		seen = append(seen, now)
		if len(seen) < 3 {
			loop.RequestFrame(fn)
		}
	}
	loop.RequestFrame(fn)

	loop.Advance(10 * ms)
	if len(seen) != 1 {
		t.Fatalf("callback ran %d times in one frame, want 1", len(seen))
	}
	loop.Step(10 * ms)
	loop.Step(10 * ms)
	loop.Step(10 * ms)
	want := []time.Duration{10 * ms, 20 * ms, 30 * ms}
	if len(seen) != len(want) {
		t.Fatalf("seen = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestFrameLoopCancel(t *testing.T) {
	loop := NewFrameLoop()
	called := false
	h := loop.RequestFrame(func(time.Duration) { called = true })
	loop.CancelFrame(h)
	loop.CancelFrame(h)
	loop.Advance(ms)
	if called {
		t.Error("canceled callback ran")
	}
}

func TestFrameLoopPanicIsolated(t *testing.T) {
	loop := NewFrameLoop()
	after := false
	loop.RequestFrame(func(time.Duration) { panic("boom") })
	loop.RequestFrame(func(time.Duration) { after = true })

	loop.Advance(ms)
	if !after {
		t.Error("sibling callback did not run after a panic")
	}
}

func TestFrameLoopTimeIsMonotonic(t *testing.T) {
	loop := NewFrameLoop()
	loop.Advance(50 * ms)
	loop.Advance(20 * ms)
	if loop.Now() != 50*ms {
		t.Errorf("Now = %v, want 50ms", loop.Now())
	}
	if loop.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", loop.Frames())
	}
}
