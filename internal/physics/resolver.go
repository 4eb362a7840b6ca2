package physics

import (
	"math"

	"github.com/san-kum/emojidrop/internal/particle"
)

// coincidentSq is the squared distance under which two centres are treated
// as the same point and left unresolved.
const coincidentSq = 0.0001

// Resolver separates overlapping particles and redirects their velocities.
type Resolver struct {
	params *Params
}

func NewResolver(p *Params) *Resolver {
	return &Resolver{params: p}
}

// ResolveAll resolves every unordered pair in ps once and returns the number
// of contacts that were corrected.
func (rs *Resolver) ResolveAll(ps []particle.Particle) int {
	contacts := 0
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if rs.Resolve(&ps[i], &ps[j]) {
				contacts++
			}
		}
	}
	return contacts
}

// Resolve handles a single pair and reports whether they were in contact.
// A sleeping particle acts as an immovable obstacle: it is never displaced
// and its velocity stays zero.
func (rs *Resolver) Resolve(a, b *particle.Particle) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	minDist := a.Radius() + b.Radius()
	distSq := dx*dx + dy*dy

	if distSq <= coincidentSq || distSq >= minDist*minDist {
		return false
	}
	if a.Asleep() && b.Asleep() {
		return false
	}

	dist := math.Sqrt(distSq)
	nx, ny := dx/dist, dy/dist
	correction := (minDist - dist) * rs.params.Correction

	switch {
	case a.Asleep():
		b.Displace(nx*correction, ny*correction)
		rs.deflect(b, -nx, -ny)
	case b.Asleep():
		a.Displace(-nx*correction, -ny*correction)
		rs.deflect(a, nx, ny)
	default:
		half := correction * 0.5
		a.Displace(-nx*half, -ny*half)
		b.Displace(nx*half, ny*half)
		rs.exchange(a, b, nx, ny)
	}
	return true
}

// deflect cancels the component of p's velocity along (nx, ny), the
// direction towards the obstacle, when p is moving into it.
func (rs *Resolver) deflect(p *particle.Particle, nx, ny float64) {
	speed := p.VX*nx + p.VY*ny
	if speed <= 0 {
		return
	}
	p.VX -= speed * nx
	p.VY -= speed * ny
	p.VX *= rs.params.CollisionDamping
	p.VY *= rs.params.CollisionDamping
}

// exchange applies an equal and opposite impulse along the normal from a to
// b when the pair is closing.
func (rs *Resolver) exchange(a, b *particle.Particle, nx, ny float64) {
	sepSpeed := (b.VX-a.VX)*nx + (b.VY-a.VY)*ny
	if sepSpeed > 0 {
		return
	}

	impulse := -(1 + rs.params.Bounce) * sepSpeed * 0.5
	a.VX -= impulse * nx
	a.VY -= impulse * ny
	b.VX += impulse * nx
	b.VY += impulse * ny

	damp := rs.params.CollisionDamping
	a.VX *= damp
	a.VY *= damp
	b.VX *= damp
	b.VY *= damp
}
