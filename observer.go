package glint

// Intersection reports a visibility transition of one observed element.
type Intersection struct {
	Element *Element
	Ratio   float64
	Visible bool
}

// Observer tracks which elements are visible in a scrolling viewport. An
// element counts as visible once at least Threshold of its area lies inside
// the viewport after BottomMargin (a fraction of the viewport height) has
// been cut from the viewport's bottom edge.
type Observer struct {
	Threshold    float64
	BottomMargin float64

	entries []observed
}

type observed struct {
	el      *Element
	visible bool
}

// NewObserver creates an Observer with the given threshold and bottom margin.
func NewObserver(threshold, bottomMargin float64) *Observer {
	return &Observer{Threshold: threshold, BottomMargin: bottomMargin}
}

// Observe starts tracking el. Observing an element twice is a no-op.
func (o *Observer) Observe(el *Element) {
	for _, e := range o.entries {
		if e.el == el {
			return
		}
	}
	o.entries = append(o.entries, observed{el: el})
}

// Unobserve stops tracking el.
func (o *Observer) Unobserve(el *Element) {
	for i, e := range o.entries {
		if e.el == el {
			copy(o.entries[i:], o.entries[i+1:])
			o.entries[len(o.entries)-1] = observed{}
			o.entries = o.entries[:len(o.entries)-1]
			return
		}
	}
}

// Len returns the number of observed elements.
func (o *Observer) Len() int {
	return len(o.entries)
}

// Root returns the effective intersection root for a viewport.
func (o *Observer) Root(viewport Rect) Rect {
	root := viewport
	root.Height -= viewport.Height * o.BottomMargin
	if root.Height < 0 {
		root.Height = 0
	}
	return root
}

// Check measures every observed element against viewport and calls fn for
// each element whose visibility changed since the previous Check. Disposed
// elements are dropped silently.
func (o *Observer) Check(viewport Rect, fn func(Intersection)) {
	root := o.Root(viewport)
	kept := o.entries[:0]
	var changes []Intersection
	for _, e := range o.entries {
		if e.el.IsDisposed() {
			continue
		}
		ratio := IntersectionRatio(e.el.Bounds(), root)
		visible := ratio > 0 && ratio >= o.Threshold
		if visible != e.visible {
			e.visible = visible
			changes = append(changes, Intersection{Element: e.el, Ratio: ratio, Visible: visible})
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(o.entries); i++ {
		o.entries[i] = observed{}
	}
	o.entries = kept

	// Callbacks run after bookkeeping so they may Unobserve safely.
	for _, ix := range changes {
		fn(ix)
	}
}

// IntersectionRatio returns the fraction of region's area inside root. A
// zero-area region reports 1 when it touches root.
func IntersectionRatio(region, root Rect) float64 {
	if !region.Intersects(root) {
		return 0
	}
	area := region.Area()
	if area == 0 {
		return 1
	}
	return region.Intersection(root).Area() / area
}
