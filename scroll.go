package glint

import "math"

// Scroll effect defaults.
const (
	DefaultParallaxSpeed = 0.5
	floatFrequency       = 0.01
	floatAmplitude       = 10.0
	floatBaseSpeed       = 0.5
	floatSpeedStep       = 0.1
)

type parallaxEntry struct {
	el    *Element
	speed float64
}

// ScrollEffects applies the continuous scroll-linked effects: parallax
// layers, floating decorations and the page scroll progress bar. Nothing is
// applied when reduced motion is on.
type ScrollEffects struct {
	reducedMotion bool
	parallax      []parallaxEntry
	floating      []*Element
	progress      *Element
}

// NewScrollEffects creates an empty effect set.
func NewScrollEffects(reducedMotion bool) *ScrollEffects {
	return &ScrollEffects{reducedMotion: reducedMotion}
}

// AddParallax moves el by scrollY*speed. A speed of zero means
// DefaultParallaxSpeed.
func (s *ScrollEffects) AddParallax(el *Element, speed float64) {
	if speed == 0 {
		speed = DefaultParallaxSpeed
	}
	s.parallax = append(s.parallax, parallaxEntry{el: el, speed: speed})
}

// AddFloating adds a floating decoration. Its index in the floating list
// sets its phase and amplitude.
func (s *ScrollEffects) AddFloating(el *Element) {
	s.floating = append(s.floating, el)
}

// SetProgress sets the element whose fill tracks scroll progress.
func (s *ScrollEffects) SetProgress(el *Element) {
	s.progress = el
}

// Update applies all effects for a scroll offset.
func (s *ScrollEffects) Update(scrollY, viewportH, documentH float64) {
	if s.reducedMotion {
		return
	}
	for _, p := range s.parallax {
		p.el.Set(FieldTranslateY, scrollY*p.speed)
	}
	for i, el := range s.floating {
		el.Set(FieldTranslateY, FloatOffset(scrollY, i))
	}
	if s.progress != nil {
		s.progress.Set(FieldFill, ScrollProgress(scrollY, viewportH, documentH))
	}
}

// FloatOffset returns the vertical offset of the i-th floating element.
func FloatOffset(scrollY float64, i int) float64 {
	speed := floatBaseSpeed + float64(i)*floatSpeedStep
	return math.Sin(scrollY*floatFrequency+float64(i)) * floatAmplitude * speed
}

// ScrollProgress returns how far the page has scrolled, as a percentage in
// [0, 100]. A document no taller than the viewport reads 0 at the top and
// 100 otherwise.
func ScrollProgress(scrollY, viewportH, documentH float64) float64 {
	span := documentH - viewportH
	if span <= 0 {
		if scrollY > 0 {
			return 100
		}
		return 0
	}
	return math.Max(0, math.Min(scrollY/span*100, 100))
}
