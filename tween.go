package glint

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tanema/gween"
)

// Tween construction and runtime errors.
var (
	ErrFieldMismatch   = errors.New("glint: tween start and end fields differ")
	ErrInvalidDuration = errors.New("glint: tween duration must be positive")
	ErrInvalidDelay    = errors.New("glint: tween delay must not be negative")
	ErrNilTarget       = errors.New("glint: tween target is nil")
	ErrTargetDisposed  = errors.New("glint: tween target disposed")
)

// Values is a set of named numeric fields, e.g. {"opacity": 0, "translateY": 30}.
type Values map[string]float64

// TweenOptions controls timing and easing of a single tween.
type TweenOptions struct {
	// Duration of the active phase. Must be positive.
	Duration time.Duration
	// Delay before the first sampled frame. Must not be negative.
	Delay time.Duration
	// Easing names a registered curve. Ignored when Ease is set. Empty means
	// easeOutCubic.
	Easing string
	// Ease is a custom curve that bypasses the registry.
	Ease EasingFunc
}

func (o TweenOptions) easing() (EasingFunc, error) {
	if o.Ease != nil {
		return o.Ease, nil
	}
	if o.Easing == "" {
		return OutCubic, nil
	}
	return LookupEasing(o.Easing)
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// ReducedMotion applies end values immediately instead of animating.
	// Read once at construction.
	ReducedMotion bool
}

// Runner starts tweens on a frame clock. Whatever composes the page owns
// its Runner; there is no package-level animation manager.
type Runner struct {
	clock         FrameClock
	reducedMotion bool
	active        int
}

// NewRunner creates a Runner that samples clock.
func NewRunner(clock FrameClock, opts RunnerOptions) *Runner {
	return &Runner{clock: clock, reducedMotion: opts.ReducedMotion}
}

// ReducedMotion reports whether the runner skips interpolation.
func (r *Runner) ReducedMotion() bool {
	return r.reducedMotion
}

// Active returns the number of tweens and timers that have not yet resolved
// or been canceled.
func (r *Runner) Active() int {
	return r.active
}

// Clock returns the frame clock the runner samples.
func (r *Runner) Clock() FrameClock {
	return r.clock
}

// Completion is the handle of one tween or timer. Done is closed exactly once
// when it resolves. A canceled handle never resolves; callers that need
// cleanup race Wait against their own deadline.
type Completion struct {
	once     sync.Once
	done     chan struct{}
	mu       sync.Mutex
	err      error
	resolved bool
	cancel   func()
	hooks    []func(error)
}

func newCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

func failedCompletion(err error) *Completion {
	c := newCompletion()
	c.resolve(err)
	return c
}

func (c *Completion) resolve(err error) {
	c.once.Do(func() {
		c.mu.Lock()
		c.err = err
		c.resolved = true
		hooks := c.hooks
		c.hooks = nil
		c.mu.Unlock()
		close(c.done)
		for _, fn := range hooks {
			fn(err)
		}
	})
}

// whenDone calls fn on resolution, or right away if already resolved.
func (c *Completion) whenDone(fn func(error)) {
	c.mu.Lock()
	if !c.resolved {
		c.hooks = append(c.hooks, fn)
		c.mu.Unlock()
		return
	}
	err := c.err
	c.mu.Unlock()
	fn(err)
}

// Done returns a channel closed when the handle resolves.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// Err returns the failure the handle resolved with, or nil.
func (c *Completion) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Completed reports whether the handle resolved successfully.
func (c *Completion) Completed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved && c.err == nil
}

// Cancel halts further field writes. It does not resolve the handle.
func (c *Completion) Cancel() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Wait blocks until the handle resolves or ctx ends.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

type tweenField struct {
	name     string
	from, to float64
	tw       *gween.Tween
}

// tween is one in-flight interpolation. It holds a non-owning reference to
// its target.
type tween struct {
	runner   *Runner
	target   Target
	fields   []tweenField
	duration time.Duration
	delay    time.Duration
	created  time.Duration
	start    time.Duration
	started  bool
	finished bool
	handle   FrameHandle
	done     *Completion
}

// Run interpolates every field of target from from to to. Construction
// problems are returned synchronously together with an already-failed handle.
func (r *Runner) Run(target Target, from, to Values, opts TweenOptions) (*Completion, error) {
	tw, err := r.newTween(target, from, to, opts)
	if err != nil {
		return failedCompletion(err), err
	}
	if r.reducedMotion {
		tw.snap()
		tw.done.resolve(nil)
		return tw.done, nil
	}
	r.active++
	tw.done.cancel = tw.cancel
	tw.handle = r.clock.RequestFrame(tw.frame)
	return tw.done, nil
}

func (r *Runner) newTween(target Target, from, to Values, opts TweenOptions) (*tween, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if opts.Duration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, opts.Duration)
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDelay, opts.Delay)
	}
	if err := matchFields(from, to); err != nil {
		return nil, err
	}
	fn, err := opts.easing()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(from))
	for name := range from {
		names = append(names, name)
	}
	sort.Strings(names)

	ms := float32(opts.Duration) / float32(time.Millisecond)
	easeFn := GweenFunc(fn)
	fields := make([]tweenField, len(names))
	for i, name := range names {
		fields[i] = tweenField{
			name: name,
			from: from[name],
			to:   to[name],
			tw:   gween.New(float32(from[name]), float32(to[name]), ms, easeFn),
		}
	}
	return &tween{
		runner:   r,
		target:   target,
		fields:   fields,
		duration: opts.Duration,
		delay:    opts.Delay,
		created:  r.clock.Now(),
		done:     newCompletion(),
	}, nil
}

func matchFields(from, to Values) error {
	for name := range from {
		if _, ok := to[name]; !ok {
			return fmt.Errorf("%w: %q has no end value", ErrFieldMismatch, name)
		}
	}
	for name := range to {
		if _, ok := from[name]; !ok {
			return fmt.Errorf("%w: %q has no start value", ErrFieldMismatch, name)
		}
	}
	return nil
}

// frame advances the tween to now and re-registers until it completes.
func (tw *tween) frame(now time.Duration) {
	if tw.finished {
		return
	}
	if d, ok := tw.target.(Disposable); ok && d.IsDisposed() {
		tw.finish(ErrTargetDisposed)
		return
	}

	if !tw.started {
		if now < tw.created+tw.delay {
			tw.handle = tw.runner.clock.RequestFrame(tw.frame)
			return
		}
		tw.started = true
		tw.start = now
	}

	elapsed := now - tw.start
	if elapsed >= tw.duration {
		tw.snap()
		tw.finish(nil)
		return
	}

	ms := float32(elapsed) / float32(time.Millisecond)
	for i := range tw.fields {
		f := &tw.fields[i]
		v, _ := f.tw.Set(ms)
		tw.target.Set(f.name, float64(v))
	}
	tw.handle = tw.runner.clock.RequestFrame(tw.frame)
}

// snap writes the exact end values, avoiding float drift from interpolation.
func (tw *tween) snap() {
	for _, f := range tw.fields {
		tw.target.Set(f.name, f.to)
	}
}

func (tw *tween) finish(err error) {
	tw.finished = true
	tw.runner.active--
	tw.done.resolve(err)
}

func (tw *tween) cancel() {
	if tw.finished {
		return
	}
	tw.finished = true
	tw.runner.active--
	tw.runner.clock.CancelFrame(tw.handle)
}
