package particle

import (
	"image/color"
	"math"
	"math/rand/v2"
)

// DefaultDensity is the canvas area, in square units, that accounts for one
// particle.
const DefaultDensity = 9000.0

// DefaultColor is the base particle tint; each particle gets a random alpha.
var DefaultColor = color.RGBA{R: 155, G: 112, B: 229, A: 255}

const (
	minRadius   = 1.0
	radiusRange = 5.0
	maxSpeed    = 0.25
)

// Options tune a Field.
type Options struct {
	// Density is the area per particle. Larger values mean fewer particles.
	Density float64
	// RepulsionRadius is the pointer's reach.
	RepulsionRadius float64
	// Color is the particle tint; alpha is randomised per particle.
	Color color.RGBA
	// Rand is the randomness source. Nil seeds a new one.
	Rand *rand.Rand
}

// Field owns the particle collection for one canvas.
type Field struct {
	opts      Options
	rng       *rand.Rand
	width     float64
	height    float64
	particles []Particle
}

// NewField returns an empty field; call Resize to populate it.
func NewField(opts Options) *Field {
	if opts.Density <= 0 {
		opts.Density = DefaultDensity
	}
	if opts.RepulsionRadius <= 0 {
		opts.RepulsionRadius = DefaultRepulsionRadius
	}
	if opts.Color == (color.RGBA{}) {
		opts.Color = DefaultColor
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{opts: opts, rng: rng}
}

// Count returns how many particles a width x height canvas holds.
func Count(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(width * height / density))
}

// Resize discards every particle and regenerates the field for the new
// canvas size.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	n := Count(width, height, f.opts.Density)
	f.particles = make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, f.spawn())
	}
}

func (f *Field) spawn() Particle {
	r := f.rng.Float64()*radiusRange + minRadius
	c := f.opts.Color
	c.A = uint8(f.rng.IntN(256))
	return Particle{
		X:      place(f.rng.Float64(), f.width, r),
		Y:      place(f.rng.Float64(), f.height, r),
		VX:     f.rng.Float64()*maxSpeed*2 - maxSpeed,
		VY:     f.rng.Float64()*maxSpeed*2 - maxSpeed,
		Radius: r,
		Color:  c,
	}
}

// place maps u in [0,1) to [r, extent-r). An axis narrower than the particle
// centres it instead.
func place(u, extent, r float64) float64 {
	if extent <= r*2 {
		return extent / 2
	}
	return u*(extent-r*2) + r
}

// Step advances every particle once, in field order.
func (f *Field) Step(pointer *Pointer) {
	for i := range f.particles {
		f.particles[i].Advance(f.width, f.height, pointer, f.opts.RepulsionRadius)
	}
}

// Particles returns the particles in field order. The slice is owned by the
// field and is only valid until the next Step or Resize.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Size returns the canvas dimensions.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}
