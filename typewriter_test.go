package glint

import "testing"

func TestTypewriterTypesOneRunePerStep(t *testing.T) {
	loop := NewFrameLoop()
	el := NewElement("tagline", 0, 0, 400, 20)
	el.Text = "placeholder"
	tw := NewTypewriter(el, "héllo", 0)

	tw.Start(loop)
	if el.Text != "h" {
		t.Fatalf("Text after Start = %q, want %q", el.Text, "h")
	}
	loop.Advance(49 * ms)
	if el.Text != "h" {
		t.Errorf("Text at 49ms = %q, want %q", el.Text, "h")
	}
	loop.Advance(50 * ms)
	if el.Text != "hé" {
		t.Errorf("Text at 50ms = %q, want %q", el.Text, "hé")
	}
	loop.Advance(5 * DefaultTypeSpeed)
	if el.Text != "héllo" || !tw.Done() {
		t.Errorf("Text = %q done=%v, want all runes", el.Text, tw.Done())
	}
}

func TestTypewriterCaretBlinks(t *testing.T) {
	loop := NewFrameLoop()
	el := NewElement("tagline", 0, 0, 400, 20)
	tw := NewTypewriter(el, "ab", 100*ms)
	tw.Start(loop)

	loop.Advance(100 * ms) // done at 100ms
	if !tw.Done() || !tw.CaretVisible() {
		t.Fatalf("done=%v caret=%v, want done with caret", tw.Done(), tw.CaretVisible())
	}
	loop.Advance(600 * ms)
	if tw.CaretVisible() {
		t.Error("caret should be hidden after one blink")
	}
	loop.Advance(1100 * ms)
	if !tw.CaretVisible() {
		t.Error("caret should be back after two blinks")
	}
}

func TestTypewriterStop(t *testing.T) {
	loop := NewFrameLoop()
	el := NewElement("tagline", 0, 0, 400, 20)
	tw := NewTypewriter(el, "abcdef", 10*ms)
	tw.Start(loop)
	loop.Advance(20 * ms)
	tw.Stop()
	loop.Advance(200 * ms)

	if el.Text != "abc" {
		t.Errorf("Text = %q, want %q", el.Text, "abc")
	}
	if tw.Running() || loop.Pending() != 0 {
		t.Errorf("running=%v pending=%d, want stopped", tw.Running(), loop.Pending())
	}
}

func TestTypewriterStopsOnDisposedElement(t *testing.T) {
	loop := NewFrameLoop()
	el := NewElement("tagline", 0, 0, 400, 20)
	tw := NewTypewriter(el, "abc", 10*ms)
	tw.Start(loop)
	el.Dispose()
	loop.Advance(10 * ms)
	if tw.Running() {
		t.Error("typewriter should stop when its element is disposed")
	}
}
