package glint

import (
	"errors"
	"fmt"
	"time"
)

// ThemeTransition is how long a theme switch takes to recolor the page.
const ThemeTransition = 300 * time.Millisecond

// ErrUnknownTheme is returned for a theme name with no palette.
var ErrUnknownTheme = errors.New("glint: unknown theme")

// Theme is a named palette.
type Theme struct {
	Name       string
	Background Color
	Surface    Color
	Text       Color
	Accent     Color
	Particle   Color
}

// Built-in palettes.
var (
	ThemeLight = Theme{
		Name:       "light",
		Background: RGBA(248, 250, 252, 1),
		Surface:    RGBA(255, 255, 255, 1),
		Text:       RGBA(30, 41, 59, 1),
		Accent:     RGBA(102, 126, 234, 1),
		Particle:   RGBA(102, 126, 234, 0.6),
	}
	ThemeDark = Theme{
		Name:       "dark",
		Background: RGBA(15, 23, 42, 1),
		Surface:    RGBA(30, 41, 59, 1),
		Text:       RGBA(241, 245, 249, 1),
		Accent:     RGBA(129, 140, 248, 1),
		Particle:   RGBA(129, 140, 248, 0.6),
	}
)

// LookupTheme returns the built-in palette called name.
func LookupTheme(name string) (Theme, error) {
	switch name {
	case ThemeLight.Name:
		return ThemeLight, nil
	case ThemeDark.Name:
		return ThemeDark, nil
	}
	return Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, name)
}

// Toggle returns the other built-in theme's name.
func (t Theme) Toggle() string {
	if t.Name == ThemeDark.Name {
		return ThemeLight.Name
	}
	return ThemeDark.Name
}

// Color channel field names understood by ColorTarget.
const (
	FieldRed   = "r"
	FieldGreen = "g"
	FieldBlue  = "b"
	FieldAlpha = "a"
)

// ColorTarget lets a tween drive the channels of a Color.
type ColorTarget struct {
	C *Color
}

// Set implements Target.
func (t ColorTarget) Set(field string, v float64) {
	switch field {
	case FieldRed:
		t.C.R = v
	case FieldGreen:
		t.C.G = v
	case FieldBlue:
		t.C.B = v
	case FieldAlpha:
		t.C.A = v
	}
}

// ColorValues returns c's channels as tween values.
func ColorValues(c Color) Values {
	return Values{FieldRed: c.R, FieldGreen: c.G, FieldBlue: c.B, FieldAlpha: c.A}
}
