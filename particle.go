package glint

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/aquilax/go-perlin"
)

const (
	// pointerForce scales the per-frame velocity nudge inside the pointer
	// radius.
	pointerForce = 0.01
	// connectionAlpha scales the opacity of connection lines.
	connectionAlpha = 0.3
	// wanderScale maps pixel positions into noise space.
	wanderScale = 0.005
)

// Particle is one point of the field. Units are pixels and pixels per frame.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// FieldConfig controls how the particle field is seeded and drawn. Zero
// values fall back to the defaults noted on each field.
type FieldConfig struct {
	// Count is the fixed number of particles (default 50). A negative value
	// means zero particles.
	Count int
	// Speed scales initial velocities, drawn from [-Speed/2, Speed/2)
	// (default 1).
	Speed float64
	// Size sets the radius range [1, Size+1) (default 2).
	Size float64
	// PointerRadius is the pointer interaction radius (default 100).
	PointerRadius float64
	// ConnectionDistance is the maximum distance at which two particles are
	// joined by a line (default 150).
	ConnectionDistance float64
	// Color is used for particles and lines (default rgba(102,126,234,0.6)).
	Color Color
	// LineWidth is the connection stroke width (default 0.5).
	LineWidth float64
	// Seed makes seeding deterministic when non-zero.
	Seed uint64
	// Wander adds a Perlin-noise drift of this many pixels per frame² to
	// every particle. Zero disables it.
	Wander float64
}

// DefaultFieldConfig returns the stock hero-section configuration.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		Count:              50,
		Speed:              1,
		Size:               2,
		PointerRadius:      100,
		ConnectionDistance: 150,
		Color:              RGBA(102, 126, 234, 0.6),
		LineWidth:          0.5,
	}
}

func (c FieldConfig) withDefaults() FieldConfig {
	d := DefaultFieldConfig()
	if c.Count == 0 {
		c.Count = d.Count
	}
	if c.Count < 0 {
		c.Count = 0
	}
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	if c.Size == 0 {
		c.Size = d.Size
	}
	if c.PointerRadius == 0 {
		c.PointerRadius = d.PointerRadius
	}
	if c.ConnectionDistance == 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.Color == (Color{}) {
		c.Color = d.Color
	}
	if c.LineWidth == 0 {
		c.LineWidth = d.LineWidth
	}
	return c
}

// ParticleField simulates a fixed-size set of drifting particles that bounce
// off the field edges, are pushed by the pointer, and are joined by lines
// when close. Pair enumeration in Render is O(n²); the field is meant for
// tens of particles.
//
// Pointer repulsion accumulates into velocity with no damping or cap, so a
// particle that lingers near the pointer keeps speeding up. Callers that need
// bounded motion must clamp velocities themselves.
type ParticleField struct {
	config    FieldConfig
	size      Size
	particles []Particle
	rng       *rand.Rand
	noise     *perlin.Perlin

	pointerX, pointerY float64
	hasPointer         bool

	clock   FrameClock
	surface Surface
	handle  FrameHandle
	running bool
	frames  uint64
}

// NewParticleField creates a field of the given size and seeds its particles.
func NewParticleField(size Size, cfg FieldConfig) *ParticleField {
	cfg = cfg.withDefaults()
	f := &ParticleField{config: cfg, size: size}
	if cfg.Seed != 0 {
		f.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	} else {
		f.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Wander > 0 {
		f.noise = perlin.NewPerlin(2, 2, 3, f.rng.Int64())
	}
	f.seed()
	return f
}

// Config returns the field's effective configuration.
func (f *ParticleField) Config() FieldConfig {
	return f.config
}

// SetColor recolors particles and lines, e.g. on a theme change.
func (f *ParticleField) SetColor(c Color) {
	f.config.Color = c
}

// Size returns the current field dimensions.
func (f *ParticleField) Size() Size {
	return f.size
}

// Particles returns the particle slice. The returned slice MUST NOT be
// resized by the caller.
func (f *ParticleField) Particles() []Particle {
	return f.particles
}

// Resize discards every particle and reseeds at random positions within the
// new size. Identity and motion are not preserved.
func (f *ParticleField) Resize(size Size) {
	f.size = size
	f.seed()
}

// SetPointer records the pointer position used by the next Update.
func (f *ParticleField) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
	f.hasPointer = true
}

// ClearPointer removes the pointer; no repulsion is applied until the next
// SetPointer.
func (f *ParticleField) ClearPointer() {
	f.hasPointer = false
}

// Pointer returns the last pointer position and whether one is set.
func (f *ParticleField) Pointer() (x, y float64, ok bool) {
	return f.pointerX, f.pointerY, f.hasPointer
}

func (f *ParticleField) seed() {
	cfg := f.config
	if cap(f.particles) >= cfg.Count {
		f.particles = f.particles[:cfg.Count]
	} else {
		f.particles = make([]Particle, cfg.Count)
	}
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.rng.Float64() * f.size.Width,
			Y:      f.rng.Float64() * f.size.Height,
			VX:     (f.rng.Float64() - 0.5) * cfg.Speed,
			VY:     (f.rng.Float64() - 0.5) * cfg.Speed,
			Radius: f.rng.Float64()*cfg.Size + 1,
		}
	}
}

// Update advances every particle by one frame: integrate, reflect at the
// edges, apply wander drift if configured, then apply pointer repulsion.
func (f *ParticleField) Update() {
	w, h := f.size.Width, f.size.Height
	radius := f.config.PointerRadius

	for i := range f.particles {
		p := &f.particles[i]

		p.X += p.VX
		p.Y += p.VY

		// Sign flip only; a particle may overshoot by one frame's displacement.
		if p.X <= 0 || p.X >= w {
			p.VX = -p.VX
		}
		if p.Y <= 0 || p.Y >= h {
			p.VY = -p.VY
		}

		if f.noise != nil {
			angle := (f.noise.Noise2D(p.X*wanderScale, p.Y*wanderScale) + 1) * math.Pi
			p.VX += math.Cos(angle) * f.config.Wander
			p.VY += math.Sin(angle) * f.config.Wander
		}

		if !f.hasPointer {
			continue
		}
		dx := f.pointerX - p.X
		dy := f.pointerY - p.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < radius {
			force := (radius - dist) / radius
			p.VX += dx * force * pointerForce
			p.VY += dy * force * pointerForce
		}
	}
}

// ConnectionOpacity returns the line opacity for two particles dist apart:
// (1 - dist/maxDist) * 0.3 below maxDist, zero at or beyond it.
func ConnectionOpacity(dist, maxDist float64) float64 {
	if dist >= maxDist {
		return 0
	}
	return (1 - dist/maxDist) * connectionAlpha
}

// Render clears s, draws connection lines for every close pair, then draws
// every particle on top.
func (f *ParticleField) Render(s Surface) {
	s.Clear()
	f.draw(s)
}

// draw emits lines and particles without clearing.
func (f *ParticleField) draw(s Surface) {
	cfg := f.config
	maxDist := cfg.ConnectionDistance
	ps := f.particles

	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < maxDist {
				s.Line(ps[i].X, ps[i].Y, ps[j].X, ps[j].Y, cfg.LineWidth,
					cfg.Color.WithAlpha(ConnectionOpacity(dist, maxDist)))
			}
		}
	}
	for i := range ps {
		s.FillCircle(ps[i].X, ps[i].Y, ps[i].Radius, cfg.Color)
	}
}

// Tick advances one frame: Update then Render.
func (f *ParticleField) Tick(s Surface) {
	f.Update()
	f.Render(s)
	f.frames++
}

// Frames returns the number of ticks run so far.
func (f *ParticleField) Frames() uint64 {
	return f.frames
}

// Start begins ticking on every frame of clock, rendering into s. A stopped
// field is reseeded first. If s implements Disposable and reports disposed,
// the field stops on its next frame.
func (f *ParticleField) Start(clock FrameClock, s Surface) {
	if f.running {
		return
	}
	if f.particles == nil {
		f.seed()
	}
	f.clock = clock
	f.surface = s
	f.running = true
	f.handle = clock.RequestFrame(f.frame)
}

// Stop cancels the pending frame and discards all particles.
func (f *ParticleField) Stop() {
	if !f.running {
		return
	}
	f.running = false
	f.clock.CancelFrame(f.handle)
	f.particles = nil
	f.surface = nil
}

// Running reports whether the field is ticking on a clock.
func (f *ParticleField) Running() bool {
	return f.running
}

func (f *ParticleField) frame(time.Duration) {
	if !f.running {
		return
	}
	if d, ok := f.surface.(Disposable); ok && d.IsDisposed() {
		f.Stop()
		return
	}
	f.Tick(f.surface)
	f.handle = f.clock.RequestFrame(f.frame)
}
