// Package particle implements the animated dot field drawn behind the task
// list: particles that drift, bounce off the canvas edges and shy away from
// the pointer.
package particle

import (
	"image/color"
	"math"
)

// DefaultRepulsionRadius is the distance within which the pointer pushes
// particles away.
const DefaultRepulsionRadius = 150.0

// Particle is a single background dot.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.RGBA
}

// Advance moves the particle forward one tick on a width x height canvas.
// Velocity components are negated when the particle's edge is past a wall,
// the pointer (if present and within radius) nudges it away, and finally the
// velocity is added to the position.
func (p *Particle) Advance(width, height float64, pointer *Pointer, radius float64) {
	if p.X+p.Radius > width || p.X-p.Radius < 0 {
		p.VX = -p.VX
	}
	if p.Y+p.Radius > height || p.Y-p.Radius < 0 {
		p.VY = -p.VY
	}

	if px, py, ok := pointer.Position(); ok {
		dx, dy := p.Repulsion(px, py, radius)
		p.X += dx
		p.Y += dy
	}

	p.X += p.VX
	p.Y += p.VY
}

// Repulsion returns the one-tick displacement the pointer at (px, py) applies
// to the particle. The magnitude falls off linearly from 1 at the pointer to 0
// at radius.
func (p *Particle) Repulsion(px, py, radius float64) (float64, float64) {
	f := Force(math.Hypot(px-p.X, py-p.Y), radius)
	if f == 0 {
		return 0, 0
	}
	angle := math.Atan2(py-p.Y, px-p.X)
	return -math.Cos(angle) * f, -math.Sin(angle) * f
}

// Force is the repulsion strength at distance d for the given radius.
func Force(d, radius float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	return (radius - d) / radius
}
