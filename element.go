package glint

import (
	"math"
	"sort"
	"strconv"
)

// Animatable field names understood by Element.Set and Element.Get. Any other
// name is stored in the element's extra field map.
const (
	FieldOpacity    = "opacity"
	FieldTranslateX = "translateX"
	FieldTranslateY = "translateY"
	FieldScale      = "scale"
	FieldFill       = "fill"
	FieldValue      = "value"
	FieldTarget     = "target"
)

// Class names applied by the reveal dispatcher.
const (
	ClassRevealed  = "revealed"
	ClassAnimateIn = "animate-in"
)

// Target is a visual object whose named numeric fields an animation may
// overwrite.
type Target interface {
	Set(field string, value float64)
}

// elementIDCounter is a plain counter; the element tree is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is one region of the page: a box in document coordinates with a
// handful of animatable presentation fields. Elements form a tree; a child's
// X and Y are relative to its parent.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Layout (local)
	X, Y          float64
	Width, Height float64

	// Presentation
	Opacity    float64
	TranslateX float64
	TranslateY float64
	Scale      float64
	Fill       float64 // progress-bar fill, percent
	Value      float64 // counter value
	Color      Color
	Text       string
	Visible    bool

	// Metadata
	UserData any

	classes map[string]struct{}
	extra   map[string]float64

	disposed bool
}

// NewElement creates a visible, fully opaque element with the given layout.
func NewElement(name string, x, y, w, h float64) *Element {
	return &Element{
		ID:      nextElementID(),
		Name:    name,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Opacity: 1,
		Scale:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// Set writes a named field. Unknown names go to the extra field map.
func (e *Element) Set(field string, value float64) {
	switch field {
	case FieldOpacity:
		e.Opacity = value
	case FieldTranslateX:
		e.TranslateX = value
	case FieldTranslateY:
		e.TranslateY = value
	case FieldScale:
		e.Scale = value
	case FieldFill:
		e.Fill = value
	case FieldValue:
		e.Value = value
	default:
		if e.extra == nil {
			e.extra = make(map[string]float64)
		}
		e.extra[field] = value
	}
}

// Get reads a named field. Unknown names that were never set read as zero.
func (e *Element) Get(field string) float64 {
	switch field {
	case FieldOpacity:
		return e.Opacity
	case FieldTranslateX:
		return e.TranslateX
	case FieldTranslateY:
		return e.TranslateY
	case FieldScale:
		return e.Scale
	case FieldFill:
		return e.Fill
	case FieldValue:
		return e.Value
	}
	return e.extra[field]
}

// CounterText renders Value the way a counter displays it: floored to an
// integer.
func (e *Element) CounterText() string {
	return strconv.Itoa(int(math.Floor(e.Value)))
}

// --- Classes ---

// AddClass tags the element.
func (e *Element) AddClass(name string) {
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[name] = struct{}{}
}

// RemoveClass removes a tag. No-op if absent.
func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the element carries the tag.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// Classes returns the element's tags in sorted order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// --- Geometry ---

// WorldPosition returns the element's layout origin in document coordinates,
// ignoring translation.
func (e *Element) WorldPosition() (x, y float64) {
	for p := e; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// Bounds returns the element's box in document coordinates including the
// translation of the element and all of its ancestors.
func (e *Element) Bounds() Rect {
	var x, y float64
	for p := e; p != nil; p = p.Parent {
		x += p.X + p.TranslateX
		y += p.Y + p.TranslateY
	}
	return Rect{X: x, Y: y, Width: e.Width * e.Scale, Height: e.Height * e.Scale}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("glint: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("glint: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("glint: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) *Element {
	return e.children[index]
}

// Find returns the first element named name in this subtree (depth-first,
// including e itself), or nil.
func (e *Element) Find(name string) *Element {
	if e.Name == name {
		return e
	}
	for _, c := range e.children {
		if f := c.Find(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for e and every descendant in depth-first order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants. Animations targeting a disposed
// element stop on their next frame.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.UserData = nil
	e.classes = nil
	e.extra = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
