package glint

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// GroupOptions extends TweenOptions with a per-member stagger. Member i
// starts after Delay + i*Stagger.
type GroupOptions struct {
	TweenOptions
	Stagger time.Duration
}

// Group tracks a batch of tweens launched by RunGroup. Done is closed once
// every member that was successfully constructed has resolved.
type Group struct {
	members []*Completion
	delays  []time.Duration
	err     error
	done    chan struct{}
}

// RunGroup launches one tween per target with staggered delays. Members that
// fail construction are skipped; their errors are joined and returned
// immediately, before any frame is sampled, and are also reported by
// Group.Err. The remaining members run normally.
func (r *Runner) RunGroup(targets []Target, from, to Values, opts GroupOptions) (*Group, error) {
	g := &Group{done: make(chan struct{})}
	var errs []error
	for i, target := range targets {
		o := opts.TweenOptions
		o.Delay = opts.Delay + time.Duration(i)*opts.Stagger
		c, err := r.Run(target, from, to, o)
		if err != nil {
			errs = append(errs, fmt.Errorf("member %d: %w", i, err))
			continue
		}
		g.members = append(g.members, c)
		g.delays = append(g.delays, o.Delay)
	}
	g.err = errors.Join(errs...)

	remaining := len(g.members)
	if remaining == 0 {
		close(g.done)
		return g, g.err
	}
	for _, m := range g.members {
		m.whenDone(func(error) {
			remaining--
			if remaining == 0 {
				close(g.done)
			}
		})
	}
	return g, g.err
}

// Done returns a channel closed when every running member has resolved.
// Canceling any member keeps it open.
func (g *Group) Done() <-chan struct{} {
	return g.done
}

// Err reports construction failures and, once Done is closed, the first
// runtime failure of any member.
func (g *Group) Err() error {
	select {
	case <-g.done:
	default:
		return g.err
	}
	errs := []error{g.err}
	for _, m := range g.members {
		errs = append(errs, m.Err())
	}
	return errors.Join(errs...)
}

// Members returns the handles of the successfully constructed members.
func (g *Group) Members() []*Completion {
	return g.members
}

// Delays returns the start delay assigned to each running member.
func (g *Group) Delays() []time.Duration {
	return g.delays
}

// Cancel cancels every member.
func (g *Group) Cancel() {
	for _, m := range g.members {
		m.Cancel()
	}
}

// Wait blocks until the group resolves or ctx ends.
func (g *Group) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// After calls fn on the first frame at least delay after now. Under reduced
// motion fn runs immediately.
func (r *Runner) After(delay time.Duration, fn func()) *Completion {
	c := newCompletion()
	if r.reducedMotion {
		fn()
		c.resolve(nil)
		return c
	}
	due := r.clock.Now() + delay
	var handle FrameHandle
	fired := false
	var tick FrameFunc
	tick = func(now time.Duration) {
		if fired {
			return
		}
		if now < due {
			handle = r.clock.RequestFrame(tick)
			return
		}
		fired = true
		r.active--
		fn()
		c.resolve(nil)
	}
	c.cancel = func() {
		if fired {
			return
		}
		fired = true
		r.active--
		r.clock.CancelFrame(handle)
	}
	r.active++
	handle = r.clock.RequestFrame(tick)
	return c
}
