package glint

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// RevealKind selects what happens when a region is first revealed.
type RevealKind uint8

const (
	RevealPlain     RevealKind = iota // fade the region in
	RevealStagger                     // also fade its children in one after another
	RevealCounter                     // count Value up from 0 to Reveal.Target
	RevealProgress                    // set Fill to Reveal.Percent immediately
	RevealSkillBars                   // set each child's Fill to its own target field, staggered
)

// Reveal timing.
const (
	RevealDuration    = 600 * time.Millisecond
	RevealOffsetY     = 30.0
	StaggerStep       = 100 * time.Millisecond
	CounterDuration   = 2000 * time.Millisecond
	SkillBarStep      = 200 * time.Millisecond
	revealThreshold   = 0.1
	revealMargin      = 0.1
	skillBarThreshold = 0.5
)

var revealKindNames = [...]string{
	RevealPlain:     "plain",
	RevealStagger:   "stagger",
	RevealCounter:   "counter",
	RevealProgress:  "progress",
	RevealSkillBars: "skills",
}

func (k RevealKind) String() string {
	if int(k) < len(revealKindNames) {
		return revealKindNames[k]
	}
	return fmt.Sprintf("RevealKind(%d)", k)
}

// ErrUnknownRevealKind is returned by ParseRevealKind for an unknown name.
var ErrUnknownRevealKind = errors.New("glint: unknown reveal kind")

// ParseRevealKind maps a config name to a RevealKind.
func ParseRevealKind(s string) (RevealKind, error) {
	for k, name := range revealKindNames {
		if strings.EqualFold(s, name) {
			return RevealKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownRevealKind, s)
}

// Reveal declares a region's one-shot behavior.
type Reveal struct {
	Kind    RevealKind
	Target  int     // RevealCounter
	Percent float64 // RevealProgress
}

// RevealState is the trigger state of an observed region. Pending to Fired
// is one-way.
type RevealState uint8

const (
	RevealUnobserved RevealState = iota
	RevealPending
	RevealFired
)

// RevealEvent is emitted once per fired region.
type RevealEvent struct {
	Name      string
	ElementID uint32
	Kind      RevealKind
	At        time.Duration
}

// RevealSink receives reveal events, e.g. to forward them to an ECS world.
type RevealSink interface {
	EmitReveal(event RevealEvent)
}

type revealEntry struct {
	el      *Element
	reveal  Reveal
	state   RevealState
	counter *Completion
	group   *Group
}

// Dispatcher fires one-shot reveal behaviors the first time a region becomes
// visible. A region whose visibility flickers never fires twice.
type Dispatcher struct {
	runner  *Runner
	content *Observer
	skills  *Observer
	entries map[*Element]*revealEntry
	sink    RevealSink
	fired   int
}

// NewDispatcher creates a Dispatcher that starts its tweens on runner.
// Regions use a 10% visibility threshold with 10% of the viewport height cut
// from the bottom; skill-bar containers use a 50% threshold.
func NewDispatcher(runner *Runner) *Dispatcher {
	return &Dispatcher{
		runner:  runner,
		content: NewObserver(revealThreshold, revealMargin),
		skills:  NewObserver(skillBarThreshold, 0),
		entries: make(map[*Element]*revealEntry),
	}
}

// SetSink sets the optional reveal event sink.
func (d *Dispatcher) SetSink(sink RevealSink) {
	d.sink = sink
}

// Observe registers el with the given behavior and puts it in its hidden
// pre-reveal presentation. An unknown kind is logged and ignored.
func (d *Dispatcher) Observe(el *Element, r Reveal) {
	if int(r.Kind) >= len(revealKindNames) {
		log.Printf("[glint] Warning: element %q: %v not observed", el.Name, r.Kind)
		return
	}
	if _, ok := d.entries[el]; ok {
		return
	}
	d.entries[el] = &revealEntry{el: el, reveal: r, state: RevealPending}

	switch r.Kind {
	case RevealSkillBars:
		d.skills.Observe(el)
		for _, child := range el.Children() {
			child.Fill = 0
		}
		return
	case RevealStagger:
		for _, child := range el.Children() {
			child.Opacity = 0
			child.TranslateY = RevealOffsetY
		}
	}
	el.Opacity = 0
	el.TranslateY = RevealOffsetY
	d.content.Observe(el)
}

// State returns the trigger state of el.
func (d *Dispatcher) State(el *Element) RevealState {
	if e, ok := d.entries[el]; ok {
		return e.state
	}
	return RevealUnobserved
}

// Fired returns how many regions have fired.
func (d *Dispatcher) Fired() int {
	return d.fired
}

// Update checks every observed region against the viewport (document
// coordinates) and fires newly visible ones.
func (d *Dispatcher) Update(viewport Rect) {
	d.content.Check(viewport, d.onIntersect)
	d.skills.Check(viewport, d.onIntersect)
}

func (d *Dispatcher) onIntersect(ix Intersection) {
	if ix.Visible {
		d.Trigger(ix.Element)
	}
}

// Trigger fires el's behavior now, regardless of visibility. It reports
// whether anything fired; an already fired or unobserved element is ignored.
func (d *Dispatcher) Trigger(el *Element) bool {
	e, ok := d.entries[el]
	if !ok || e.state == RevealFired {
		return false
	}
	e.state = RevealFired
	d.fired++
	d.content.Unobserve(el)
	d.skills.Unobserve(el)

	el.AddClass(ClassRevealed)
	d.run(e)

	if d.sink != nil {
		d.sink.EmitReveal(RevealEvent{
			Name:      el.Name,
			ElementID: el.ID,
			Kind:      e.reveal.Kind,
			At:        d.runner.Clock().Now(),
		})
	}
	return true
}

var (
	hiddenValues  = Values{FieldOpacity: 0, FieldTranslateY: RevealOffsetY}
	revealedValue = Values{FieldOpacity: 1, FieldTranslateY: 0}
	fadeInOptions = TweenOptions{Duration: RevealDuration, Easing: EaseOutCubic}
)

// staggered reports whether el's fade is owned by a stagger parent's group.
func (d *Dispatcher) staggered(el *Element) bool {
	if el.Parent == nil {
		return false
	}
	e, ok := d.entries[el.Parent]
	return ok && e.reveal.Kind == RevealStagger
}

// fadeIn runs the standard presentation fade on el unless a stagger parent
// already animates it.
func (d *Dispatcher) fadeIn(el *Element) {
	if d.staggered(el) {
		return
	}
	if _, err := d.runner.Run(el, hiddenValues, revealedValue, fadeInOptions); err != nil {
		log.Printf("[glint] Warning: reveal %q: %v", el.Name, err)
	}
}

func (d *Dispatcher) run(e *revealEntry) {
	el := e.el
	var err error

	switch e.reveal.Kind {
	case RevealSkillBars:
		for i, child := range el.Children() {
			child := child
			target := child.Get(FieldTarget)
			d.runner.After(time.Duration(i)*SkillBarStep, func() {
				child.Set(FieldFill, target)
			})
		}
	case RevealPlain:
		d.fadeIn(el)
	case RevealStagger:
		d.fadeIn(el)
		children := el.Children()
		targets := make([]Target, len(children))
		for i, child := range children {
			child := child
			targets[i] = child
			d.runner.After(time.Duration(i)*StaggerStep, func() {
				child.AddClass(ClassAnimateIn)
			})
		}
		e.group, err = d.runner.RunGroup(targets, hiddenValues, revealedValue, GroupOptions{
			TweenOptions: fadeInOptions,
			Stagger:      StaggerStep,
		})
	case RevealCounter:
		d.fadeIn(el)
		e.counter, err = d.runner.Run(el,
			Values{FieldValue: 0},
			Values{FieldValue: float64(e.reveal.Target)},
			TweenOptions{Duration: CounterDuration, Easing: EaseOutCubic})
	case RevealProgress:
		d.fadeIn(el)
		el.Set(FieldFill, e.reveal.Percent)
	default:
		panic(fmt.Sprintf("glint: unhandled reveal kind %v", e.reveal.Kind))
	}
	if err != nil {
		log.Printf("[glint] Warning: reveal %q: %v", el.Name, err)
	}
}
