package particle

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestCountFollowsDensity(t *testing.T) {
	cases := []struct {
		w, h, density float64
		want          int
	}{
		{w: 640, h: 384, density: 9000, want: 27},
		{w: 1920, h: 1080, density: 9000, want: 230},
		{w: 90, h: 99, density: 9000, want: 0},
		{w: 0, h: 500, density: 9000, want: 0},
	}
	for _, tc := range cases {
		if got := Count(tc.w, tc.h, tc.density); got != tc.want {
			t.Fatalf("Count(%v, %v, %v) = %d, want %d", tc.w, tc.h, tc.density, got, tc.want)
		}
	}
}

func TestResizeRegeneratesField(t *testing.T) {
	f := NewField(Options{Rand: rand.New(rand.NewPCG(1, 2))})
	f.Resize(900, 900)
	if got := len(f.Particles()); got != 90 {
		t.Fatalf("expected 90 particles, got %d", got)
	}
	first := f.Particles()[0]

	f.Resize(300, 300)
	if got := len(f.Particles()); got != 10 {
		t.Fatalf("expected 10 particles after resize, got %d", got)
	}
	if f.Particles()[0] == first {
		t.Fatalf("expected particles to be regenerated, first particle unchanged")
	}
	if w, h := f.Size(); w != 300 || h != 300 {
		t.Fatalf("expected size 300x300, got %vx%v", w, h)
	}
}

func TestSpawnedParticlesAreInRange(t *testing.T) {
	f := NewField(Options{Rand: rand.New(rand.NewPCG(7, 7))})
	f.Resize(1200, 800)
	for i, p := range f.Particles() {
		if p.Radius < 1 || p.Radius >= 6 {
			t.Fatalf("particle %d radius %v out of [1,6)", i, p.Radius)
		}
		if p.X < p.Radius || p.X > 1200-p.Radius || p.Y < p.Radius || p.Y > 800-p.Radius {
			t.Fatalf("particle %d at (%v,%v) outside canvas minus radius", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Fatalf("particle %d velocity (%v,%v) too fast", i, p.VX, p.VY)
		}
		if p.Color.R != 155 || p.Color.G != 112 || p.Color.B != 229 {
			t.Fatalf("particle %d has unexpected tint %v", i, p.Color)
		}
	}
}

func TestSpawnOnNarrowCanvasStaysInside(t *testing.T) {
	f := NewField(Options{Rand: rand.New(rand.NewPCG(3, 3))})
	f.Resize(1, 9000)
	ps := f.Particles()
	if len(ps) != 1 {
		t.Fatalf("expected 1 particle, got %d", len(ps))
	}
	p := ps[0]
	if p.X != 0.5 {
		t.Fatalf("expected particle centred on the narrow axis, got x=%v", p.X)
	}
	if p.Y < p.Radius || p.Y > 9000-p.Radius {
		t.Fatalf("particle y %v outside canvas minus radius", p.Y)
	}
}

func TestAdvanceReflectsAtWalls(t *testing.T) {
	p := Particle{X: 99, Y: 50, VX: 0.2, VY: 0.1, Radius: 2}
	p.Advance(100, 100, nil, DefaultRepulsionRadius)
	if p.VX != -0.2 {
		t.Fatalf("expected VX flipped to -0.2, got %v", p.VX)
	}
	if p.VY != 0.1 {
		t.Fatalf("expected VY unchanged, got %v", p.VY)
	}
	if want := 99 - 0.2; math.Abs(p.X-want) > 1e-9 {
		t.Fatalf("expected X %v, got %v", want, p.X)
	}

	q := Particle{X: 50, Y: 1, VX: 0, VY: -0.2, Radius: 2}
	q.Advance(100, 100, nil, DefaultRepulsionRadius)
	if q.VY != 0.2 {
		t.Fatalf("expected VY flipped to 0.2, got %v", q.VY)
	}
}

func TestAdvanceFlipsOncePerCrossing(t *testing.T) {
	p := Particle{X: 97.9, Y: 50, VX: 0.25, Radius: 2}
	flips := 0
	prev := p.VX
	for i := 0; i < 20; i++ {
		p.Advance(100, 100, nil, DefaultRepulsionRadius)
		if p.VX != prev {
			flips++
			prev = p.VX
		}
	}
	if flips != 1 {
		t.Fatalf("expected exactly one bounce, got %d", flips)
	}
}

func TestAdvanceStaysNearCanvas(t *testing.T) {
	f := NewField(Options{Rand: rand.New(rand.NewPCG(3, 4))})
	f.Resize(1000, 800)
	ptr := &Pointer{}
	ptr.Move(500, 400)
	for frame := 0; frame < 2000; frame++ {
		f.Step(ptr)
		for i, p := range f.Particles() {
			slack := math.Hypot(p.VX, p.VY) + p.Radius
			if p.X < -slack || p.X > 1000+slack || p.Y < -slack || p.Y > 800+slack {
				t.Fatalf("frame %d: particle %d escaped to (%v,%v)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestForceFalloff(t *testing.T) {
	if got := Force(0, 150); got != 1 {
		t.Fatalf("expected full force at the pointer, got %v", got)
	}
	if got := Force(150, 150); got != 0 {
		t.Fatalf("expected no force at the radius, got %v", got)
	}
	if got := Force(400, 150); got != 0 {
		t.Fatalf("expected no force out of range, got %v", got)
	}
	prev := Force(0, 150)
	for d := 1.0; d < 150; d++ {
		f := Force(d, 150)
		if f >= prev {
			t.Fatalf("expected force to decrease at d=%v: %v >= %v", d, f, prev)
		}
		prev = f
	}
}

func TestRepulsionPushesAwayFromPointer(t *testing.T) {
	p := Particle{X: 100, Y: 100, Radius: 2}
	dx, dy := p.Repulsion(100+75, 100, 150)
	if math.Abs(dx+0.5) > 1e-9 || math.Abs(dy) > 1e-9 {
		t.Fatalf("expected (-0.5, 0), got (%v, %v)", dx, dy)
	}

	dx, dy = p.Repulsion(100, 100-30, 150)
	if math.Abs(dx) > 1e-9 || math.Abs(dy-0.8) > 1e-9 {
		t.Fatalf("expected (0, 0.8), got (%v, %v)", dx, dy)
	}

	dx, dy = p.Repulsion(400, 400, 150)
	if dx != 0 || dy != 0 {
		t.Fatalf("expected no displacement out of range, got (%v, %v)", dx, dy)
	}
}

func TestAdvanceIgnoresAbsentPointer(t *testing.T) {
	ptr := &Pointer{}
	ptr.Move(51, 50)
	ptr.Leave()
	p := Particle{X: 50, Y: 50, VX: 0.1, VY: 0.1, Radius: 2}
	p.Advance(100, 100, ptr, 150)
	if math.Abs(p.X-50.1) > 1e-9 || math.Abs(p.Y-50.1) > 1e-9 {
		t.Fatalf("expected pure integration, got (%v,%v)", p.X, p.Y)
	}
}

func TestRepulsionIsOneTickNudge(t *testing.T) {
	ptr := &Pointer{}
	ptr.Move(60, 50)
	p := Particle{X: 50, Y: 50, VX: 0.1, VY: 0, Radius: 2}
	p.Advance(100, 100, ptr, 150)
	if p.VX != 0.1 || p.VY != 0 {
		t.Fatalf("repulsion must not change velocity, got (%v,%v)", p.VX, p.VY)
	}
	want := 50 - (150-10)/150.0 + 0.1
	if math.Abs(p.X-want) > 1e-9 {
		t.Fatalf("expected X %v, got %v", want, p.X)
	}
}

func TestPointerNilIsAbsent(t *testing.T) {
	var ptr *Pointer
	if _, _, ok := ptr.Position(); ok {
		t.Fatalf("nil pointer must be absent")
	}
}
