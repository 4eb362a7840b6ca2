package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/emojidrop/internal/particle"
)

const eps = 1e-9

func TestIntegratorFreeFall(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(800, 600)

	p := particle.New("a", 50, 400, 100, 1, 0)
	in.Step(&p, b)

	wantVX := 1 * prm.AirDrag
	wantVY := prm.Gravity * prm.AirDrag
	if math.Abs(p.VX-wantVX) > eps || math.Abs(p.VY-wantVY) > eps {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", p.VX, p.VY, wantVX, wantVY)
	}
	if math.Abs(p.X-(400+wantVX)) > eps || math.Abs(p.Y-(100+wantVY)) > eps {
		t.Errorf("position = (%v, %v)", p.X, p.Y)
	}
}

func TestIntegratorWalls(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(800, 600)

	tests := []struct {
		name  string
		x, vx float64
		wantX func(r float64) float64
	}{
		{"left wall", 25, -10, func(r float64) float64 { return r }},
		{"right wall", 775, 10, func(r float64) float64 { return 800 - r }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := particle.New("a", 50, tt.x, 300, tt.vx, 0)
			in.Step(&p, b)

			if p.X != tt.wantX(p.Radius()) {
				t.Errorf("x = %v, want %v", p.X, tt.wantX(p.Radius()))
			}
			wantVX := tt.vx * prm.AirDrag * prm.WallBounce
			if math.Abs(p.VX-wantVX) > eps {
				t.Errorf("vx = %v, want %v", p.VX, wantVX)
			}
			if math.Signbit(p.VX) == math.Signbit(tt.vx) {
				t.Error("wall bounce should reverse horizontal velocity")
			}
		})
	}
}

func TestIntegratorFloor(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(800, 400)

	p := particle.New("a", 100, 400, 355, 2, 5)
	in.Step(&p, b)

	if p.Y != 400-p.Radius() {
		t.Errorf("y = %v, want %v", p.Y, 400-p.Radius())
	}
	wantVY := (5 + prm.Gravity) * prm.AirDrag * prm.FloorBounce
	if math.Abs(p.VY-wantVY) > eps {
		t.Errorf("vy = %v, want %v", p.VY, wantVY)
	}
	wantVX := 2 * prm.AirDrag * prm.FloorFriction
	if math.Abs(p.VX-wantVX) > eps {
		t.Errorf("vx = %v, want %v", p.VX, wantVX)
	}
}

func TestIntegratorNoCeiling(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(800, 600)

	p := particle.New("a", 50, 400, -80, 0, -3)
	in.Step(&p, b)

	if p.Y >= -80 {
		t.Errorf("particle above the viewport should keep rising, y = %v", p.Y)
	}
}

func TestIntegratorSkipsSleepers(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(800, 600)

	p := particle.New("a", 50, 400, 300, 0, 0)
	p.Sleep()
	in.Step(&p, b)

	if p.X != 400 || p.Y != 300 || p.VX != 0 || p.VY != 0 {
		t.Errorf("sleeping particle moved: %+v", p)
	}
}

func TestIntegratorKeepsBounds(t *testing.T) {
	prm := DefaultParams()
	in := NewIntegrator(&prm)
	b := particle.NewBounds(640, 480)
	rnd := rand.New(rand.NewSource(99))

	ps := make([]particle.Particle, 60)
	for i := range ps {
		size := particle.MinSize + rnd.Float64()*particle.SizeRange
		ps[i] = particle.New("a", size,
			rnd.Float64()*900-130, rnd.Float64()*700-200,
			rnd.NormFloat64()*30, rnd.NormFloat64()*30)
	}

	for frame := 0; frame < 300; frame++ {
		in.StepAll(ps, b)
		for i := range ps {
			p := &ps[i]
			r := p.Radius()
			if p.X < r || p.X > b.Width-r {
				t.Fatalf("frame %d particle %d: x = %v outside [%v, %v]", frame, i, p.X, r, b.Width-r)
			}
			if p.Y > b.Height-r {
				t.Fatalf("frame %d particle %d: y = %v below floor %v", frame, i, p.Y, b.Height-r)
			}
			if p.Radius() != p.Size()*particle.RadiusScale {
				t.Fatalf("particle %d radius changed", i)
			}
		}
	}
}
