package particle

import "math"

// RadiusScale maps a particle's visual size to its collision radius.
const RadiusScale = 0.43

// State is the sleep state of a particle.
type State uint8

const (
	Awake State = iota
	Asleep
)

func (s State) String() string {
	switch s {
	case Awake:
		return "awake"
	case Asleep:
		return "asleep"
	}
	return "unknown"
}

// Particle is a single falling glyph. Position and velocity are mutated in
// place by the physics passes; the rest is fixed at construction or only
// changes through the sleep methods.
type Particle struct {
	X, Y   float64
	VX, VY float64

	glyph      string
	size       float64
	radius     float64
	state      State
	restFrames int
}

// New returns an awake particle with the given glyph, visual size, position
// and velocity. The collision radius is derived from size.
func New(glyph string, size, x, y, vx, vy float64) Particle {
	return Particle{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		glyph:  glyph,
		size:   size,
		radius: size * RadiusScale,
	}
}

func (p *Particle) Glyph() string   { return p.glyph }
func (p *Particle) Size() float64   { return p.size }
func (p *Particle) Radius() float64 { return p.radius }
func (p *Particle) State() State    { return p.state }
func (p *Particle) Asleep() bool    { return p.state == Asleep }
func (p *Particle) RestFrames() int { return p.restFrames }

// SpeedSq returns the squared magnitude of the velocity.
func (p *Particle) SpeedSq() float64 {
	return p.VX*p.VX + p.VY*p.VY
}

// Finite reports whether position and velocity are all finite.
func (p *Particle) Finite() bool {
	for _, v := range [4]float64{p.X, p.Y, p.VX, p.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rest counts one more frame spent at rest and returns the new count.
// It is a no-op once asleep.
func (p *Particle) Rest() int {
	if p.state == Awake {
		p.restFrames++
	}
	return p.restFrames
}

// Stir resets the rest counter of an awake particle.
func (p *Particle) Stir() {
	if p.state == Awake {
		p.restFrames = 0
	}
}

// Sleep freezes the particle: velocity becomes zero and the position snaps
// to the half-unit grid. Calling it on a sleeping particle does nothing.
func (p *Particle) Sleep() {
	if p.state == Asleep {
		return
	}
	p.state = Asleep
	p.VX, p.VY = 0, 0
	p.X = snapHalf(p.X)
	p.Y = snapHalf(p.Y)
}

// Displace moves the particle by (dx, dy) without changing its state or
// velocity. Collision correction applies it to the awake side of a
// contact only; sleeping bodies act as immovable obstacles.
func (p *Particle) Displace(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// Visual returns the render projection of the particle.
func (p *Particle) Visual() Visual {
	return Visual{Glyph: p.glyph, X: p.X, Y: p.Y, Size: p.size}
}

func snapHalf(v float64) float64 {
	// math.Round rounds half away from zero; the half-grid snap rounds half up.
	return math.Floor(v*2+0.5) / 2
}

// Visual is the read-only state a renderer needs for one particle.
type Visual struct {
	Glyph string
	X, Y  float64
	Size  float64
}
