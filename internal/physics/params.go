package physics

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrUnknownParam indicates SetParam was called with a name Params does not have.
	ErrUnknownParam = errors.New("physics: unknown parameter")

	// ErrParameterBounds indicates a parameter value is outside its valid range.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")
)

// Params are the per-frame constants of the integrator, resolver and sleep
// manager. Velocities are in viewport units per frame.
type Params struct {
	Gravity          float64
	AirDrag          float64
	WallBounce       float64
	FloorBounce      float64
	FloorFriction    float64
	Bounce           float64
	CollisionDamping float64
	Correction       float64
	SleepSpeedSq     float64
	SleepFrames      int
	SleepBand        float64
}

func DefaultParams() Params {
	return Params{
		Gravity:          0.22,
		AirDrag:          0.996,
		WallBounce:       -0.35,
		FloorBounce:      -0.08,
		FloorFriction:    0.86,
		Bounce:           0.02,
		CollisionDamping: 0.92,
		Correction:       0.75,
		SleepSpeedSq:     0.045,
		SleepFrames:      6,
		SleepBand:        0.25,
	}
}

// Validate checks every parameter against its legal range.
func (p *Params) Validate() error {
	values := p.GetParams()
	for _, name := range Names() {
		if err := checkParam(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Params) GetParams() map[string]float64 {
	return map[string]float64{
		"gravity":           p.Gravity,
		"air_drag":          p.AirDrag,
		"wall_bounce":       p.WallBounce,
		"floor_bounce":      p.FloorBounce,
		"floor_friction":    p.FloorFriction,
		"bounce":            p.Bounce,
		"collision_damping": p.CollisionDamping,
		"correction":        p.Correction,
		"sleep_speed_sq":    p.SleepSpeedSq,
		"sleep_frames":      float64(p.SleepFrames),
		"sleep_band":        p.SleepBand,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	if err := checkParam(name, value); err != nil {
		return err
	}
	switch name {
	case "gravity":
		p.Gravity = value
	case "air_drag":
		p.AirDrag = value
	case "wall_bounce":
		p.WallBounce = value
	case "floor_bounce":
		p.FloorBounce = value
	case "floor_friction":
		p.FloorFriction = value
	case "bounce":
		p.Bounce = value
	case "collision_damping":
		p.CollisionDamping = value
	case "correction":
		p.Correction = value
	case "sleep_speed_sq":
		p.SleepSpeedSq = value
	case "sleep_frames":
		p.SleepFrames = int(value)
	case "sleep_band":
		p.SleepBand = value
	}
	return nil
}

// Names lists every tunable parameter, sorted.
func Names() []string {
	names := make([]string, 0, len(paramRanges))
	for name := range paramRanges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type paramRange struct{ min, max float64 }

var paramRanges = map[string]paramRange{
	"gravity":           {-5, 5},
	"air_drag":          {0, 1},
	"wall_bounce":       {-1, 0},
	"floor_bounce":      {-1, 0},
	"floor_friction":    {0, 1},
	"bounce":            {0, 1},
	"collision_damping": {0, 1},
	"correction":        {0, 1},
	"sleep_speed_sq":    {0, 100},
	"sleep_frames":      {1, 10000},
	"sleep_band":        {0, 1},
}

func checkParam(name string, v float64) error {
	r, ok := paramRanges[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	if math.IsNaN(v) || v < r.min || v > r.max {
		return fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrParameterBounds, name, v, r.min, r.max)
	}
	return nil
}
