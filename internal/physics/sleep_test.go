package physics

import (
	"math"
	"testing"

	"github.com/san-kum/emojidrop/internal/particle"
)

func TestSleepAfterRestFrames(t *testing.T) {
	prm := DefaultParams()
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	p := particle.New("a", 50, 200.2, 300.3, 0.1, 0.1)
	for i := 1; i < prm.SleepFrames; i++ {
		if sm.Update(&p, b) {
			t.Fatalf("fell asleep after %d frames, want %d", i, prm.SleepFrames)
		}
		if p.RestFrames() != i {
			t.Fatalf("rest frames = %d, want %d", p.RestFrames(), i)
		}
	}

	if !sm.Update(&p, b) {
		t.Fatal("expected particle to fall asleep")
	}
	if p.VX != 0 || p.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (0, 0)", p.VX, p.VY)
	}
	if p.X != 200 || p.Y != 300.5 {
		t.Errorf("position = (%v, %v), want snapped (200, 300.5)", p.X, p.Y)
	}
	if sm.Update(&p, b) {
		t.Error("a sleeping particle must not report falling asleep again")
	}
}

func TestSleepBandGuard(t *testing.T) {
	prm := DefaultParams()
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	p := particle.New("a", 50, 200, 90, 0, 0)
	for i := 0; i < 50; i++ {
		sm.Update(&p, b)
	}

	if p.Asleep() || p.RestFrames() != 0 {
		t.Errorf("particle in the top band should stay awake, rest=%d", p.RestFrames())
	}
}

func TestSleepResetByMotion(t *testing.T) {
	prm := DefaultParams()
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	p := particle.New("a", 50, 200, 300, 0, 0)
	sm.Update(&p, b)
	sm.Update(&p, b)

	p.VX = 1
	sm.Update(&p, b)

	if p.RestFrames() != 0 {
		t.Errorf("rest frames = %d, want reset to 0", p.RestFrames())
	}
}

func TestSleepParksNonFinite(t *testing.T) {
	prm := DefaultParams()
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	p := particle.New("a", 100, math.NaN(), 200, math.Inf(1), 0)
	if !sm.Update(&p, b) {
		t.Fatal("non-finite particle should be parked")
	}
	if !p.Finite() || !p.Asleep() {
		t.Errorf("parked particle = %+v", p)
	}
	if p.X != 400 || p.Y != 357 {
		t.Errorf("parked at (%v, %v), want (400, 357)", p.X, p.Y)
	}
}

func TestSettleOnFloor(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	rs := NewResolver(&prm)
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	ps := []particle.Particle{particle.New("a", 100, 400, 340, 0, 5)}
	for frame := 0; frame < 200 && !ps[0].Asleep(); frame++ {
		in.StepAll(ps, b)
		rs.ResolveAll(ps)
		sm.UpdateAll(ps, b)
	}

	p := ps[0]
	if !p.Asleep() {
		t.Fatal("particle never came to rest")
	}
	if p.Y != 357 || p.VX != 0 || p.VY != 0 {
		t.Errorf("rest state = y %v v (%v, %v), want y 357 v (0, 0)", p.Y, p.VX, p.VY)
	}
}

func TestSleepersNeverSwap(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	rs := NewResolver(&prm)
	sm := NewSleepManager(&prm)
	b := particle.NewBounds(800, 400)

	ps := []particle.Particle{
		particle.New("a", 100, 300, 357, 0, 0),
		particle.New("b", 100, 340, 357, 0, 0),
	}
	ps[0].Sleep()
	ps[1].Sleep()
	before := [2]particle.Particle{ps[0], ps[1]}

	for i := 0; i < 20; i++ {
		in.StepAll(ps, b)
		rs.ResolveAll(ps)
		sm.UpdateAll(ps, b)
	}

	for i := range ps {
		if ps[i] != before[i] {
			t.Errorf("sleeper %d changed: %+v -> %+v", i, before[i], ps[i])
		}
	}
}
