package config

import "sort"

type preset struct {
	about  string
	tweaks func(p *PhysicsConfig)
}

var presets = map[string]preset{
	"calm": {
		about:  "the stock constants",
		tweaks: func(p *PhysicsConfig) {},
	},
	"moon": {
		about: "low gravity, thin air",
		tweaks: func(p *PhysicsConfig) {
			p.Gravity = 0.06
			p.AirDrag = 0.999
			p.SleepFrames = 12
		},
	},
	"bouncy": {
		about: "lively walls, floor and contacts",
		tweaks: func(p *PhysicsConfig) {
			p.WallBounce = -0.8
			p.FloorBounce = -0.55
			p.FloorFriction = 0.97
			p.Bounce = 0.6
			p.CollisionDamping = 0.98
		},
	},
	"sticky": {
		about: "heavy damping, bodies rest almost at once",
		tweaks: func(p *PhysicsConfig) {
			p.Gravity = 0.3
			p.FloorFriction = 0.5
			p.CollisionDamping = 0.7
			p.SleepSpeedSq = 0.2
			p.SleepFrames = 3
		},
	},
}

// GetPreset returns a fresh default config with the named physics tweaks
// applied, or nil when there is no such preset.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.tweaks(&cfg.Physics)
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func PresetAbout(name string) string {
	return presets[name].about
}
