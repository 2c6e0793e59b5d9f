package glint

import (
	"testing"
	"time"
)

type sinkRecorder struct {
	events []RevealEvent
}

func (s *sinkRecorder) EmitReveal(ev RevealEvent) {
	s.events = append(s.events, ev)
}

var (
	viewTop    = Rect{Y: 0, Width: 800, Height: 600}
	viewBottom = Rect{Y: 400, Width: 800, Height: 600}
)

func newTestDispatcher(reduced bool) (*FrameLoop, *Runner, *Dispatcher) {
	loop := NewFrameLoop()
	r := NewRunner(loop, RunnerOptions{ReducedMotion: reduced})
	return loop, r, NewDispatcher(r)
}

func TestParseRevealKind(t *testing.T) {
	tests := []struct {
		in   string
		want RevealKind
	}{
		{"plain", RevealPlain},
		{"stagger", RevealStagger},
		{"Counter", RevealCounter},
		{"progress", RevealProgress},
		{"skills", RevealSkillBars},
	}
	for _, tt := range tests {
		got, err := ParseRevealKind(tt.in)
		if err != nil {
			t.Errorf("ParseRevealKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRevealKind(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "sparkle"} {
		if _, err := ParseRevealKind(bad); err == nil {
			t.Errorf("ParseRevealKind(%q): expected error", bad)
		}
	}
	if RevealKind(99).String() != "RevealKind(99)" {
		t.Errorf("String = %q", RevealKind(99).String())
	}
}

func TestDispatcherObserveHides(t *testing.T) {
	_, _, d := newTestDispatcher(false)
	el := NewElement("about", 0, 700, 800, 200)
	d.Observe(el, Reveal{Kind: RevealPlain})

	if el.Opacity != 0 || el.TranslateY != RevealOffsetY {
		t.Errorf("hidden state = (%v, %v), want (0, %v)", el.Opacity, el.TranslateY, RevealOffsetY)
	}
	if d.State(el) != RevealPending {
		t.Errorf("State = %v, want pending", d.State(el))
	}
	if d.State(NewElement("other", 0, 0, 1, 1)) != RevealUnobserved {
		t.Error("unregistered element should be unobserved")
	}
}

func TestDispatcherPlainReveal(t *testing.T) {
	loop, _, d := newTestDispatcher(false)
	el := NewElement("about", 0, 700, 800, 200)
	d.Observe(el, Reveal{Kind: RevealPlain})

	d.Update(viewTop)
	if d.State(el) != RevealPending {
		t.Fatal("below the fold should stay pending")
	}

	d.Update(viewBottom)
	if d.State(el) != RevealFired {
		t.Fatal("should fire once visible")
	}
	if !el.HasClass(ClassRevealed) {
		t.Error("missing revealed class")
	}

	loop.Advance(0)
	loop.Advance(RevealDuration)
	if el.Opacity != 1 || el.TranslateY != 0 {
		t.Errorf("revealed state = (%v, %v), want (1, 0)", el.Opacity, el.TranslateY)
	}
}

func TestDispatcherFlickerFiresOnce(t *testing.T) {
	loop, r, d := newTestDispatcher(false)
	sink := &sinkRecorder{}
	d.SetSink(sink)
	el := NewElement("stats", 0, 700, 800, 200)
	d.Observe(el, Reveal{Kind: RevealCounter, Target: 42})

	d.Update(viewBottom)
	active := r.Active()
	d.Update(viewTop)
	d.Update(viewBottom)
	d.Update(viewTop)
	d.Update(viewBottom)

	if d.Fired() != 1 {
		t.Errorf("Fired = %d, want 1", d.Fired())
	}
	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	if r.Active() != active {
		t.Errorf("Active = %d, want %d (no re-stacked tweens)", r.Active(), active)
	}
	if d.Trigger(el) {
		t.Error("Trigger after firing should report false")
	}
	if ev := sink.events[0]; ev.Name != "stats" || ev.Kind != RevealCounter || ev.ElementID != el.ID {
		t.Errorf("event = %+v", ev)
	}
	loop.Advance(0)
}

func TestDispatcherCounter(t *testing.T) {
	loop, _, d := newTestDispatcher(false)
	el := NewElement("projects", 0, 0, 100, 50)
	d.Observe(el, Reveal{Kind: RevealCounter, Target: 42})
	d.Update(viewTop)

	loop.Advance(0)
	loop.Advance(CounterDuration / 2)
	mid := el.Value
	if mid <= 0 || mid >= 42 {
		t.Errorf("Value at halfway = %v, want strictly between 0 and 42", mid)
	}
	// easeOutCubic(0.5) = 0.875
	if el.CounterText() != "36" {
		t.Errorf("CounterText = %q, want 36", el.CounterText())
	}

	loop.Advance(CounterDuration)
	if el.Value != 42 {
		t.Errorf("Value = %v, want exactly 42", el.Value)
	}
}

func TestDispatcherProgressIsImmediate(t *testing.T) {
	_, _, d := newTestDispatcher(false)
	el := NewElement("bar", 0, 0, 100, 10)
	d.Observe(el, Reveal{Kind: RevealProgress, Percent: 85})
	d.Update(viewTop)
	if el.Fill != 85 {
		t.Errorf("Fill = %v, want 85 without any frame", el.Fill)
	}
}

func TestDispatcherStagger(t *testing.T) {
	loop, _, d := newTestDispatcher(false)
	parent := NewElement("grid", 0, 0, 800, 300)
	kids := make([]*Element, 3)
	for i := range kids {
		kids[i] = NewElement("card", float64(i)*200, 0, 150, 150)
		parent.AddChild(kids[i])
	}
	d.Observe(parent, Reveal{Kind: RevealStagger})
	for _, k := range kids {
		if k.Opacity != 0 {
			t.Fatal("children should start hidden")
		}
	}

	d.Update(viewTop)
	loop.Advance(0)
	if !kids[0].HasClass(ClassAnimateIn) || kids[1].HasClass(ClassAnimateIn) {
		t.Error("only the first child should animate in at 0ms")
	}
	loop.Advance(StaggerStep)
	if !kids[1].HasClass(ClassAnimateIn) || kids[2].HasClass(ClassAnimateIn) {
		t.Error("second child should animate in at 100ms")
	}
	loop.Advance(2 * StaggerStep)
	if !kids[2].HasClass(ClassAnimateIn) {
		t.Error("third child should animate in at 200ms")
	}

	// Last child starts at 200ms and runs 600ms.
	loop.Advance(2*StaggerStep + RevealDuration)
	for i, k := range kids {
		if k.Opacity != 1 || k.TranslateY != 0 {
			t.Errorf("child %d = (%v, %v), want (1, 0)", i, k.Opacity, k.TranslateY)
		}
	}
}

func TestDispatcherCountersInsideStagger(t *testing.T) {
	loop, _, d := newTestDispatcher(false)
	parent := NewElement("stats", 0, 0, 800, 200)
	kids := make([]*Element, 4)
	for i := range kids {
		kids[i] = NewElement("stat", float64(i)*200, 0, 180, 120)
		parent.AddChild(kids[i])
	}
	d.Observe(parent, Reveal{Kind: RevealStagger})
	for i, k := range kids {
		d.Observe(k, Reveal{Kind: RevealCounter, Target: 10 * (i + 1)})
	}

	d.Update(viewTop)
	if d.Fired() != 5 {
		t.Fatalf("Fired = %d, want 5", d.Fired())
	}
	delays := d.entries[parent].group.Delays()
	if len(delays) != len(kids) {
		t.Fatalf("group members = %d, want %d", len(delays), len(kids))
	}
	for i, delay := range delays {
		if want := time.Duration(i) * StaggerStep; delay != want {
			t.Errorf("child %d delay = %v, want %v", i, delay, want)
		}
	}

	last := make([]float64, len(kids))
	for now := time.Duration(0); now <= CounterDuration+frame; now += frame {
		loop.Advance(now)
		for i, k := range kids {
			if k.Opacity < last[i] {
				t.Fatalf("t=%v child %d opacity fell %.3f -> %.3f", now, i, last[i], k.Opacity)
			}
			if now < time.Duration(i)*StaggerStep && k.Opacity != 0 {
				t.Fatalf("t=%v child %d opacity = %v before its stagger slot", now, i, k.Opacity)
			}
			last[i] = k.Opacity
		}
	}
	for i, k := range kids {
		if k.Opacity != 1 || k.TranslateY != 0 {
			t.Errorf("child %d = (%v, %v), want (1, 0)", i, k.Opacity, k.TranslateY)
		}
		if want := float64(10 * (i + 1)); k.Value != want {
			t.Errorf("child %d value = %v, want %v", i, k.Value, want)
		}
	}
}

func TestDispatcherIgnoresUnknownKind(t *testing.T) {
	_, _, d := newTestDispatcher(false)
	el := NewElement("odd", 0, 0, 100, 100)
	d.Observe(el, Reveal{Kind: RevealKind(9)})
	if d.State(el) != RevealUnobserved {
		t.Errorf("State = %v, want unobserved", d.State(el))
	}
	if el.Opacity != 1 {
		t.Errorf("Opacity = %v, unknown kind should not hide the element", el.Opacity)
	}
	d.Update(viewTop)
	if d.Trigger(el) || d.Fired() != 0 {
		t.Error("unknown kind should never fire")
	}
}

func TestDispatcherSkillBars(t *testing.T) {
	loop, _, d := newTestDispatcher(false)
	skills := NewElement("skills", 0, 0, 400, 100)
	targets := []float64{90, 75}
	for i, v := range targets {
		bar := NewElement("bar", 0, float64(i)*20, 400, 10)
		bar.Set(FieldTarget, v)
		skills.AddChild(bar)
	}
	d.Observe(skills, Reveal{Kind: RevealSkillBars})

	// 40% visible: below the 0.5 skill threshold.
	d.Update(Rect{Y: -60, Width: 800, Height: 100})
	if d.State(skills) != RevealPending {
		t.Fatal("skills should wait for half visibility")
	}

	d.Update(viewTop)
	loop.Advance(0)
	if got := skills.ChildAt(0).Fill; got != 90 {
		t.Errorf("bar 0 Fill = %v, want 90", got)
	}
	if got := skills.ChildAt(1).Fill; got != 0 {
		t.Errorf("bar 1 Fill = %v, want 0 before 200ms", got)
	}
	loop.Advance(SkillBarStep)
	if got := skills.ChildAt(1).Fill; got != 75 {
		t.Errorf("bar 1 Fill = %v, want 75", got)
	}
}

func TestDispatcherReducedMotion(t *testing.T) {
	loop, _, d := newTestDispatcher(true)
	el := NewElement("stats", 0, 0, 100, 50)
	d.Observe(el, Reveal{Kind: RevealCounter, Target: 7})
	d.Update(viewTop)

	if el.Opacity != 1 || el.TranslateY != 0 || el.Value != 7 {
		t.Errorf("reduced motion state = (%v, %v, %v), want (1, 0, 7)", el.Opacity, el.TranslateY, el.Value)
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", loop.Pending())
	}
}
