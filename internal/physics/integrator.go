package physics

import "github.com/san-kum/emojidrop/internal/particle"

// Integrator applies gravity, drag and boundary response to awake particles.
type Integrator struct {
	params *Params
}

func NewIntegrator(p *Params) *Integrator {
	return &Integrator{params: p}
}

// Step advances p by one frame inside b. Sleeping particles are left alone.
func (in *Integrator) Step(p *particle.Particle, b particle.Bounds) {
	if p.Asleep() {
		return
	}
	prm := in.params

	p.VY += prm.Gravity
	p.VX *= prm.AirDrag
	p.VY *= prm.AirDrag
	p.X += p.VX
	p.Y += p.VY

	r := p.Radius()
	if p.X < r {
		p.X = r
		p.VX *= prm.WallBounce
	} else if p.X > b.Width-r {
		p.X = b.Width - r
		p.VX *= prm.WallBounce
	}

	// no ceiling: spawns start above the viewport and fall in
	if p.Y > b.Height-r {
		p.Y = b.Height - r
		p.VY *= prm.FloorBounce
		p.VX *= prm.FloorFriction
	}
}

// StepAll advances every particle in ps.
func (in *Integrator) StepAll(ps []particle.Particle, b particle.Bounds) {
	for i := range ps {
		in.Step(&ps[i], b)
	}
}
