package particle

// Pointer records the last known pointer coordinates. The zero value is an
// absent pointer. A nil *Pointer is also treated as absent.
type Pointer struct {
	x, y    float64
	present bool
}

// Move records a pointer position.
func (p *Pointer) Move(x, y float64) {
	p.x, p.y = x, y
	p.present = true
}

// Leave marks the pointer as absent.
func (p *Pointer) Leave() {
	p.x, p.y = 0, 0
	p.present = false
}

// Position returns the last known coordinates and whether the pointer is
// present.
func (p *Pointer) Position() (float64, float64, bool) {
	if p == nil || !p.present {
		return 0, 0, false
	}
	return p.x, p.y, true
}
