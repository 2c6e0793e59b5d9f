package glint

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Magnetic effect defaults.
const (
	DefaultMagneticDistance = 100.0
	magneticStrength        = 0.3
	magneticFrequency       = 6.0
	magneticDamping         = 1.0
)

// Magnetic pulls an element toward the pointer while the pointer is near its
// center. The element's translation follows the pull through a critically
// damped spring, so it also eases back to rest after Leave.
type Magnetic struct {
	// MaxDistance is the pull radius around the element's center.
	MaxDistance float64

	el            *Element
	spring        harmonica.Spring
	reducedMotion bool

	targetX, targetY float64
	x, vx            float64
	y, vy            float64
}

// NewMagnetic attaches a magnetic effect to el, stepped fps times per second.
func NewMagnetic(el *Element, fps int, reducedMotion bool) *Magnetic {
	if fps <= 0 {
		fps = 60
	}
	return &Magnetic{
		MaxDistance:   DefaultMagneticDistance,
		el:            el,
		spring:        harmonica.NewSpring(harmonica.FPS(fps), magneticFrequency, magneticDamping),
		reducedMotion: reducedMotion,
	}
}

// Element returns the element the effect moves.
func (m *Magnetic) Element() *Element {
	return m.el
}

// Pointer updates the pull for a pointer at (px, py) in document coordinates.
// The element's untranslated layout box is used so the pull does not chase
// its own offset.
func (m *Magnetic) Pointer(px, py float64) {
	if m.reducedMotion {
		return
	}
	wx, wy := m.el.WorldPosition()
	dx := px - (wx + m.el.Width/2)
	dy := py - (wy + m.el.Height/2)
	dist := math.Hypot(dx, dy)
	if dist >= m.MaxDistance {
		m.targetX, m.targetY = 0, 0
		return
	}
	force := (m.MaxDistance - dist) / m.MaxDistance
	m.targetX = dx * force * magneticStrength
	m.targetY = dy * force * magneticStrength
}

// Leave releases the pull; the element springs back to rest.
func (m *Magnetic) Leave() {
	m.targetX, m.targetY = 0, 0
}

// Target returns the offset the spring is heading for.
func (m *Magnetic) Target() (x, y float64) {
	return m.targetX, m.targetY
}

// Offset returns the current offset.
func (m *Magnetic) Offset() (x, y float64) {
	return m.x, m.y
}

// Update advances the spring one step and writes the offset to the element.
func (m *Magnetic) Update() {
	if m.reducedMotion {
		m.x, m.y, m.vx, m.vy = 0, 0, 0, 0
	} else {
		m.x, m.vx = m.spring.Update(m.x, m.vx, m.targetX)
		m.y, m.vy = m.spring.Update(m.y, m.vy, m.targetY)
	}
	m.el.Set(FieldTranslateX, m.x)
	m.el.Set(FieldTranslateY, m.y)
}
