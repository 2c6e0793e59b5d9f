package glint

import (
	"log"
	"math"
	"time"
)

// PageOptions configures collaborators a page does not build itself.
type PageOptions struct {
	// Preferences supplies and stores the theme choice. Nil means memory
	// only.
	Preferences *Preferences
	// Sink receives an event for every fired reveal.
	Sink RevealSink
	// TPS is the update rate the magnetic springs are tuned for
	// (default 60).
	TPS int
}

// Page composes a configured element tree with every animation subsystem and
// owns all of them. There is no global state; two pages never interact.
type Page struct {
	cfg      *PageConfig
	root     *Element
	byID     map[string]*Element
	counters map[*Element]bool

	loop       *FrameLoop
	runner     *Runner
	dispatcher *Dispatcher
	field      *ParticleField
	scroll     *ScrollEffects
	magnetics  []*Magnetic
	typewriter *Typewriter
	viewport   *Viewport

	prefs      *Preferences
	theme      Theme
	background Color
	themeTween *Completion

	input      inputState
	live       bool
	testRunner *TestRunner
	debug      bool
}

// NewPage builds a page from cfg. cfg must have passed Validate.
func NewPage(cfg *PageConfig, opts PageOptions) *Page {
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.Preferences == nil {
		opts.Preferences = NewPreferences(nil)
	}

	p := &Page{
		cfg:      cfg,
		root:     NewElement("root", 0, 0, float64(cfg.Width), float64(cfg.Height)),
		byID:     make(map[string]*Element),
		counters: make(map[*Element]bool),
		loop:     NewFrameLoop(),
		prefs:    opts.Preferences,
	}
	p.runner = NewRunner(p.loop, RunnerOptions{ReducedMotion: cfg.ReducedMotion})
	p.dispatcher = NewDispatcher(p.runner)
	p.dispatcher.SetSink(opts.Sink)
	p.scroll = NewScrollEffects(cfg.ReducedMotion)

	for i := range cfg.Sections {
		p.root.AddChild(p.build(&cfg.Sections[i], float64(cfg.Width)))
	}
	// Observe after the whole tree exists so stagger parents see their
	// children.
	for i := range cfg.Sections {
		p.observe(&cfg.Sections[i])
	}

	docH := cfg.DocumentHeight
	if docH == 0 {
		docH = float64(cfg.Height)
		for _, el := range p.root.Children() {
			docH = math.Max(docH, el.Y+el.Height)
		}
	}
	p.viewport = NewViewport(float64(cfg.Width), float64(cfg.Height), docH)

	p.theme = p.initialTheme()
	p.background = p.theme.Background

	if !cfg.Particles.Disabled {
		fc := cfg.Particles.FieldConfig()
		fc.Color = p.theme.Particle
		p.field = NewParticleField(Size{Width: float64(cfg.Width), Height: float64(cfg.Height)}, fc)
	}

	for _, par := range cfg.Parallax {
		p.scroll.AddParallax(p.byID[par.Name], par.Speed)
	}
	for _, name := range cfg.Floating {
		p.scroll.AddFloating(p.byID[name])
	}
	if cfg.Progress != "" {
		p.scroll.SetProgress(p.byID[cfg.Progress])
	}
	for _, name := range cfg.Magnetic {
		p.magnetics = append(p.magnetics, NewMagnetic(p.byID[name], opts.TPS, cfg.ReducedMotion))
	}
	if tw := cfg.Typewriter; tw != nil {
		p.typewriter = NewTypewriter(p.byID[tw.Name], tw.Text, tw.Speed)
		p.typewriter.Start(p.loop)
	}
	return p
}

func (p *Page) build(sc *SectionConfig, parentW float64) *Element {
	w := sc.Width
	if w == 0 {
		w = parentW
	}
	el := NewElement(sc.Name, sc.X, sc.Y, w, sc.Height)
	el.Text = sc.Text
	if sc.Target != 0 {
		el.Set(FieldTarget, sc.Target)
	}
	p.byID[sc.Name] = el
	for i := range sc.Children {
		el.AddChild(p.build(&sc.Children[i], w))
	}
	return el
}

func (p *Page) observe(sc *SectionConfig) {
	if r, ok := sc.RevealSpec(); ok {
		el := p.byID[sc.Name]
		p.dispatcher.Observe(el, r)
		if r.Kind == RevealCounter {
			p.counters[el] = true
		}
	}
	for i := range sc.Children {
		p.observe(&sc.Children[i])
	}
}

func (p *Page) initialTheme() Theme {
	for _, name := range []string{p.prefs.Theme(), p.cfg.Theme} {
		if name == "" {
			continue
		}
		if th, err := LookupTheme(name); err == nil {
			return th
		}
	}
	return ThemeLight
}

// Root returns the root element.
func (p *Page) Root() *Element { return p.root }

// Element returns the element called name, or nil.
func (p *Page) Element(name string) *Element { return p.byID[name] }

// Clock returns the page's frame loop.
func (p *Page) Clock() *FrameLoop { return p.loop }

// Runner returns the page's tween runner.
func (p *Page) Runner() *Runner { return p.runner }

// Dispatcher returns the page's reveal dispatcher.
func (p *Page) Dispatcher() *Dispatcher { return p.dispatcher }

// Field returns the particle field, or nil when particles are disabled.
func (p *Page) Field() *ParticleField { return p.field }

// Viewport returns the scrolling viewport.
func (p *Page) Viewport() *Viewport { return p.viewport }

// Typewriter returns the configured typewriter, or nil.
func (p *Page) Typewriter() *Typewriter { return p.typewriter }

// Magnetics returns the magnetic effects in config order.
func (p *Page) Magnetics() []*Magnetic { return p.magnetics }

// Theme returns the active theme.
func (p *Page) Theme() Theme { return p.theme }

// Background returns the current, possibly transitioning, background color.
func (p *Page) Background() Color { return p.background }

// SetTheme switches to the named theme: the background transitions over
// ThemeTransition, particles are recolored and the choice is saved. Setting
// the active theme again does nothing.
func (p *Page) SetTheme(name string) error {
	th, err := LookupTheme(name)
	if err != nil {
		return err
	}
	if th.Name == p.theme.Name {
		return nil
	}
	p.theme = th
	if p.themeTween != nil {
		p.themeTween.Cancel()
	}
	p.themeTween, err = p.runner.Run(ColorTarget{C: &p.background},
		ColorValues(p.background), ColorValues(th.Background),
		TweenOptions{Duration: ThemeTransition, Easing: EaseOutCubic})
	if err != nil {
		log.Printf("[glint] Warning: theme transition: %v", err)
		p.background = th.Background
	}
	if p.field != nil {
		p.field.SetColor(th.Particle)
	}
	if err := p.prefs.SetTheme(th.Name); err != nil {
		log.Printf("[glint] Warning: failed to save theme: %v", err)
	}
	return nil
}

// ToggleTheme switches between light and dark.
func (p *Page) ToggleTheme() {
	_ = p.SetTheme(p.theme.Toggle())
}

// Update advances the page by dt: queued input is applied, the frame loop
// runs its callbacks, continuous effects are stepped and newly visible
// regions are revealed.
func (p *Page) Update(dt time.Duration) {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInput()

	p.viewport.update(dt)
	p.loop.Step(dt)

	if p.field != nil {
		p.field.Update()
	}
	for _, m := range p.magnetics {
		m.Update()
	}
	p.scroll.Update(p.viewport.ScrollY, p.viewport.Height, p.viewport.DocumentHeight)
	p.dispatcher.Update(p.viewport.Rect())

	if p.debug {
		p.debugLog()
	}
}

// Draw renders the background, the particle field and every visible element
// onto s.
func (p *Page) Draw(s Surface) {
	w, h := s.Size()
	s.FillRect(Rect{Width: w, Height: h}, p.background)
	if p.field != nil {
		p.field.draw(s)
	}
	ts, _ := s.(TextSurface)
	for _, el := range p.root.Children() {
		p.drawElement(s, ts, el)
	}
}

func (p *Page) drawElement(s Surface, ts TextSurface, el *Element) {
	if !el.Visible || el.Opacity <= 0 {
		return
	}
	b := el.Bounds()
	b.Y -= p.viewport.ScrollY
	if !b.Intersects(Rect{Width: p.viewport.Width, Height: p.viewport.Height}) {
		// Children may still hang outside their parent.
		for _, c := range el.Children() {
			p.drawElement(s, ts, c)
		}
		return
	}
	alpha := clamp01(el.Opacity)
	if el.NumChildren() == 0 && el.Text == "" {
		s.FillRect(b, p.theme.Surface.WithAlpha(alpha))
	}
	if el.Fill > 0 {
		fill := b
		fill.Width = b.Width * math.Min(el.Fill, 100) / 100
		s.FillRect(fill, p.theme.Accent.WithAlpha(alpha))
	}
	if ts != nil {
		if label := p.label(el); label != "" {
			ts.DrawText(b.X, b.Y, label, p.theme.Text.WithAlpha(alpha))
		}
	}
	for _, c := range el.Children() {
		p.drawElement(s, ts, c)
	}
}

func (p *Page) label(el *Element) string {
	if p.counters[el] {
		return el.CounterText()
	}
	if p.typewriter != nil && el == p.typewriter.el && p.typewriter.CaretVisible() {
		return el.Text + "|"
	}
	return el.Text
}
