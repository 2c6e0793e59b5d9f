package glint

import (
	"math"
	"testing"
)

func TestIntersectionRatio(t *testing.T) {
	root := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name   string
		region Rect
		want   float64
	}{
		{"inside", Rect{X: 10, Y: 10, Width: 20, Height: 20}, 1},
		{"outside", Rect{X: 10, Y: 200, Width: 20, Height: 20}, 0},
		{"half", Rect{X: 0, Y: 50, Width: 100, Height: 100}, 0.5},
		{"tenth", Rect{X: 0, Y: 90, Width: 100, Height: 100}, 0.1},
		{"zero area inside", Rect{X: 50, Y: 50}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectionRatio(tt.region, root)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntersectionRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestObserverRootBottomMargin(t *testing.T) {
	o := NewObserver(0.1, 0.1)
	root := o.Root(Rect{X: 0, Y: 200, Width: 800, Height: 600})
	if root.Y != 200 || root.Height != 540 {
		t.Errorf("Root = %+v, want Y=200 Height=540", root)
	}
}

func TestObserverThresholdWithMargin(t *testing.T) {
	o := NewObserver(0.1, 0.1)
	// Effective root is y in [0, 540).
	el := NewElement("region", 0, 520, 100, 100)
	o.Observe(el)

	var got []Intersection
	o.Check(Rect{Width: 800, Height: 600}, func(ix Intersection) { got = append(got, ix) })
	// 20 of 100 rows inside the root: ratio 0.2 >= 0.1.
	if len(got) != 1 || !got[0].Visible {
		t.Fatalf("transitions = %+v, want one visible", got)
	}

	el.Y = 535
	got = nil
	o.Check(Rect{Width: 800, Height: 600}, func(ix Intersection) { got = append(got, ix) })
	// 5 rows inside: below threshold.
	if len(got) != 1 || got[0].Visible {
		t.Fatalf("transitions = %+v, want one hidden", got)
	}
}

func TestObserverReportsOnlyTransitions(t *testing.T) {
	o := NewObserver(0.1, 0)
	el := NewElement("region", 0, 0, 100, 100)
	o.Observe(el)
	o.Observe(el)
	if o.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after duplicate Observe", o.Len())
	}

	calls := 0
	for range 3 {
		o.Check(Rect{Width: 800, Height: 600}, func(Intersection) { calls++ })
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestObserverUnobserveInsideCallback(t *testing.T) {
	o := NewObserver(0, 0)
	a := NewElement("a", 0, 0, 10, 10)
	b := NewElement("b", 0, 20, 10, 10)
	o.Observe(a)
	o.Observe(b)

	var seen []string
	o.Check(Rect{Width: 100, Height: 100}, func(ix Intersection) {
		seen = append(seen, ix.Element.Name)
		o.Unobserve(ix.Element)
	})
	if len(seen) != 2 {
		t.Errorf("seen = %v, want both elements", seen)
	}
	if o.Len() != 0 {
		t.Errorf("Len = %d, want 0", o.Len())
	}
}

func TestObserverDropsDisposed(t *testing.T) {
	o := NewObserver(0.1, 0)
	el := NewElement("gone", 0, 0, 10, 10)
	o.Observe(el)
	el.Dispose()

	called := false
	o.Check(Rect{Width: 100, Height: 100}, func(Intersection) { called = true })
	if called {
		t.Error("disposed element should not be reported")
	}
	if o.Len() != 0 {
		t.Errorf("Len = %d, want 0", o.Len())
	}
}
