package glint

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables per-frame stats on stderr.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// frameStats holds per-frame counters. Only gathered in debug mode.
type frameStats struct {
	frame     uint64
	scrollY   float64
	pending   int
	tweens    int
	particles int
	fired     int
}

func (p *Page) stats() frameStats {
	st := frameStats{
		frame:   p.loop.Frames(),
		scrollY: p.viewport.ScrollY,
		pending: p.loop.Pending(),
		tweens:  p.runner.Active(),
		fired:   p.dispatcher.Fired(),
	}
	if p.field != nil {
		st.particles = len(p.field.Particles())
	}
	return st
}

// debugLog prints frame stats to stderr.
func (p *Page) debugLog() {
	st := p.stats()
	_, _ = fmt.Fprintf(os.Stderr,
		"[glint] frame: %d | scroll: %.0f | callbacks: %d | tweens: %d | particles: %d | revealed: %d\n",
		st.frame, st.scrollY, st.pending, st.tweens, st.particles, st.fired)
}
