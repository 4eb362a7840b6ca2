package physics

import (
	"math"

	"github.com/san-kum/emojidrop/internal/particle"
)

// SleepManager puts particles that have settled to sleep.
type SleepManager struct {
	params *Params
}

func NewSleepManager(p *Params) *SleepManager {
	return &SleepManager{params: p}
}

// Update counts p's rest frames and reports whether it fell asleep on this
// call. Only particles below the top SleepBand of the viewport accumulate
// rest, so bodies at the apex of a fall keep moving.
func (sm *SleepManager) Update(p *particle.Particle, b particle.Bounds) bool {
	if p.Asleep() {
		return false
	}
	if !p.Finite() {
		park(p, b)
		return true
	}

	prm := sm.params
	if p.SpeedSq() < prm.SleepSpeedSq && p.Y > b.Height*prm.SleepBand {
		p.Rest()
	} else {
		p.Stir()
	}

	if p.RestFrames() >= prm.SleepFrames {
		p.Sleep()
		return true
	}
	return false
}

// UpdateAll updates every particle in ps and returns how many fell asleep.
func (sm *SleepManager) UpdateAll(ps []particle.Particle, b particle.Bounds) int {
	slept := 0
	for i := range ps {
		if sm.Update(&ps[i], b) {
			slept++
		}
	}
	return slept
}

// park puts a particle whose state went non-finite to sleep on the floor.
func park(p *particle.Particle, b particle.Bounds) {
	r := p.Radius()
	if math.IsNaN(p.X) {
		p.X = b.Width / 2
	}
	p.X = b.ClampX(p.X, r)
	p.Y = b.Height - r
	p.Sleep()
}
