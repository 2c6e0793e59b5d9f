package glint

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PageConfig describes a page: its window, palette, particle field, sections
// and the effects attached to them.
type PageConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// DocumentHeight is the scrollable height. Zero means the bottom of the
	// lowest section.
	DocumentHeight float64 `yaml:"documentHeight"`
	Theme          string  `yaml:"theme"`
	ReducedMotion  bool    `yaml:"reducedMotion"`

	Particles  ParticleConfig    `yaml:"particles"`
	Sections   []SectionConfig   `yaml:"sections"`
	Parallax   []ParallaxConfig  `yaml:"parallax"`
	Floating   []string          `yaml:"floating"`
	Magnetic   []string          `yaml:"magnetic"`
	Progress   string            `yaml:"progress"`
	Typewriter *TypewriterConfig `yaml:"typewriter"`
}

// ParticleConfig is the YAML form of FieldConfig. Zero values take the
// field defaults, except Count: an omitted count means the default of 50
// while an explicit 0 means an empty field.
type ParticleConfig struct {
	Disabled           bool    `yaml:"disabled"`
	Count              *int    `yaml:"count"`
	Speed              float64 `yaml:"speed"`
	Size               float64 `yaml:"size"`
	PointerRadius      float64 `yaml:"pointerRadius"`
	ConnectionDistance float64 `yaml:"connectionDistance"`
	LineWidth          float64 `yaml:"lineWidth"`
	Seed               uint64  `yaml:"seed"`
	Wander             float64 `yaml:"wander"`
}

// SectionConfig is one element of the page tree. Children are positioned
// relative to their section.
type SectionConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Text   string  `yaml:"text"`
	// Reveal is one of plain, stagger, counter, progress or skills. Empty
	// means the element is never observed.
	Reveal string `yaml:"reveal"`
	// Target is the counter end value, or a skill bar's fill percentage.
	Target float64 `yaml:"target"`
	// Percent is a progress bar's fill percentage.
	Percent  float64         `yaml:"percent"`
	Children []SectionConfig `yaml:"children"`
}

// ParallaxConfig attaches a parallax speed to a named element.
type ParallaxConfig struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"`
}

// TypewriterConfig types Text into a named element.
type TypewriterConfig struct {
	Name  string        `yaml:"name"`
	Text  string        `yaml:"text"`
	Speed time.Duration `yaml:"speed"`
}

// LoadPageConfig reads and validates a YAML page description.
func LoadPageConfig(path string) (*PageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page config: %w", err)
	}
	return ParsePageConfig(data)
}

// ParsePageConfig parses and validates a YAML page description.
func ParsePageConfig(data []byte) (*PageConfig, error) {
	var cfg PageConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse page config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid page config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the config for values the page cannot be built from.
func (c *PageConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.DocumentHeight < 0 {
		return fmt.Errorf("documentHeight must not be negative, got %.1f", c.DocumentHeight)
	}
	if c.Theme != "" {
		if _, err := LookupTheme(c.Theme); err != nil {
			return err
		}
	}
	if n := c.Particles.Count; n != nil && *n < 0 {
		return fmt.Errorf("particle count must not be negative, got %d", *n)
	}
	if c.Particles.Wander < 0 {
		return fmt.Errorf("particle wander must not be negative, got %.2f", c.Particles.Wander)
	}

	names := make(map[string]bool)
	for i := range c.Sections {
		if err := c.Sections[i].validate(names, false); err != nil {
			return err
		}
	}

	known := func(what, name string) error {
		if !names[name] {
			return fmt.Errorf("%s refers to unknown element %q", what, name)
		}
		return nil
	}
	for _, p := range c.Parallax {
		if err := known("parallax", p.Name); err != nil {
			return err
		}
	}
	for _, n := range c.Floating {
		if err := known("floating", n); err != nil {
			return err
		}
	}
	for _, n := range c.Magnetic {
		if err := known("magnetic", n); err != nil {
			return err
		}
	}
	if c.Progress != "" {
		if err := known("progress", c.Progress); err != nil {
			return err
		}
	}
	if tw := c.Typewriter; tw != nil {
		if err := known("typewriter", tw.Name); err != nil {
			return err
		}
		if tw.Speed < 0 {
			return fmt.Errorf("typewriter speed must not be negative, got %v", tw.Speed)
		}
	}
	return nil
}

func (s *SectionConfig) validate(names map[string]bool, inSkills bool) error {
	if s.Name == "" {
		return errors.New("section without a name")
	}
	if names[s.Name] {
		return fmt.Errorf("duplicate section name %q", s.Name)
	}
	names[s.Name] = true
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("section %q: size must not be negative", s.Name)
	}
	if inSkills && (s.Target < 0 || s.Target > 100) {
		return fmt.Errorf("section %q: skill target must be within [0, 100], got %.1f", s.Name, s.Target)
	}

	skills := false
	if s.Reveal != "" {
		kind, err := ParseRevealKind(s.Reveal)
		if err != nil {
			return fmt.Errorf("section %q: %w", s.Name, err)
		}
		switch kind {
		case RevealCounter:
			if s.Target <= 0 || s.Target != math.Trunc(s.Target) {
				return fmt.Errorf("section %q: counter needs a positive integer target, got %v", s.Name, s.Target)
			}
		case RevealProgress:
			if s.Percent < 0 || s.Percent > 100 {
				return fmt.Errorf("section %q: progress percent must be within [0, 100], got %.1f", s.Name, s.Percent)
			}
		case RevealSkillBars:
			skills = true
		}
	}
	for i := range s.Children {
		if err := s.Children[i].validate(names, skills); err != nil {
			return err
		}
	}
	return nil
}

// RevealSpec returns the reveal declared by the section, if any.
func (s *SectionConfig) RevealSpec() (Reveal, bool) {
	if s.Reveal == "" {
		return Reveal{}, false
	}
	kind, err := ParseRevealKind(s.Reveal)
	if err != nil {
		return Reveal{}, false
	}
	return Reveal{Kind: kind, Target: int(s.Target), Percent: s.Percent}, true
}

// FieldConfig converts to a particle field configuration.
func (p ParticleConfig) FieldConfig() FieldConfig {
	fc := FieldConfig{
		Speed:              p.Speed,
		Size:               p.Size,
		PointerRadius:      p.PointerRadius,
		ConnectionDistance: p.ConnectionDistance,
		LineWidth:          p.LineWidth,
		Seed:               p.Seed,
		Wander:             p.Wander,
	}
	if p.Count != nil {
		fc.Count = *p.Count
		if fc.Count == 0 {
			fc.Count = -1
		}
	}
	return fc
}
