package glint

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// EasingFunc maps normalized progress in [0, 1] to eased progress. Every
// built-in curve returns exactly 0 at t=0 and exactly 1 at t=1; elastic and
// bounce curves may leave [0, 1] in between.
type EasingFunc func(t float64) float64

// Registry names of the built-in curves.
const (
	EaseLinear     = "linear"
	EaseOutCubic   = "easeOutCubic"
	EaseInOutCubic = "easeInOutCubic"
	EaseOutElastic = "easeOutElastic"
	EaseOutBounce  = "easeOutBounce"
)

// ErrUnknownEasing is returned when a curve name is not in the registry.
var ErrUnknownEasing = errors.New("glint: unknown easing")

var easings = map[string]EasingFunc{
	EaseLinear:     Linear,
	EaseOutCubic:   OutCubic,
	EaseInOutCubic: InOutCubic,
	EaseOutElastic: OutElastic,
	EaseOutBounce:  OutBounce,
}

// LookupEasing returns the registered curve with the given name.
func LookupEasing(name string) (EasingFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEasing, name)
	}
	return fn, nil
}

// EasingNames lists the registered curve names in a stable order.
func EasingNames() []string {
	return []string{EaseLinear, EaseOutCubic, EaseInOutCubic, EaseOutElastic, EaseOutBounce}
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// OutCubic decelerates: 1 - (1-t)^3.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutCubic accelerates through the first half and decelerates through the
// second.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// OutElastic overshoots and settles with a decaying sine.
func OutElastic(t float64) float64 {
	const c4 = (2 * math.Pi) / 3
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}

// OutBounce is the four-segment bounce-out curve.
func OutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t == 1:
		return 1
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// GweenFunc adapts fn to gween's (t, begin, change, duration) signature so a
// gween.Tween samples exactly this curve.
func GweenFunc(fn EasingFunc) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		p := float64(t) / float64(d)
		if p > 1 {
			p = 1
		}
		return b + c*float32(fn(p))
	}
}
